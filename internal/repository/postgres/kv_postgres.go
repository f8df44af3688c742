package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// KVRepo - хранилище ключ-значение поверх таблицы kv_store.
type KVRepo struct {
	db *pgxpool.Pool
}

// NewKVRepository - Создаёт KV-репозиторий на основе пула соединений.
func NewKVRepository(db *pgxpool.Pool) *KVRepo {
	return &KVRepo{db: db}
}

// EnsureSchema - создаёт таблицу kv_store, если её ещё нет.
func (r *KVRepo) EnsureSchema(ctx context.Context) error {
	const query = `
		CREATE TABLE IF NOT EXISTS kv_store (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	_, err := r.db.Exec(ctx, query)
	return err
}

// Read - значение по ключу. Отсутствие строки - это ok=false без ошибки.
func (r *KVRepo) Read(ctx context.Context, key string) (string, bool, error) {
	const query = `SELECT value FROM kv_store WHERE key = $1`

	var value string
	err := r.db.QueryRow(ctx, query, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Write - upsert значения целиком.
func (r *KVRepo) Write(ctx context.Context, key, value string) error {
	const query = `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value,
		              updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query, key, value, time.Now().UTC())
	return err
}

// Delete - удалить ключ. Идемпотентна.
func (r *KVRepo) Delete(ctx context.Context, key string) error {
	const query = `DELETE FROM kv_store WHERE key = $1`
	_, err := r.db.Exec(ctx, query, key)
	return err
}
