package watchlist

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"
)

// DefaultKey - ключ, под которым хранится список id монет.
const DefaultKey = "crypto-watchlist"

// KeyValue - внешнее хранилище ключ-значение (postgres или память).
type KeyValue interface {
	Read(ctx context.Context, key string) (value string, ok bool, err error)
	Write(ctx context.Context, key, value string) error
}

// Store - сохраняемый набор id монет "в избранном".
// Ошибки хранилища не пробрасываются: чтение деградирует до пустого списка,
// ошибки записи только логируются.
type Store struct {
	kv     KeyValue
	key    string
	logger *slog.Logger

	// сериализует read-modify-write внутри процесса
	mu sync.Mutex
}

// NewStore - конструктор; пустой key заменяется на DefaultKey.
func NewStore(kv KeyValue, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key, logger: logger}
}

// All - текущие id в порядке добавления.
func (s *Store) All(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Contains - есть ли id в списке
func (s *Store) Contains(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.load(ctx), id)
}

// Add - добавляет id, если его ещё нет. Идемпотентна.
func (s *Store) Add(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	if slices.Contains(ids, id) {
		return
	}
	s.save(ctx, append(ids, id))
}

// Remove - удаляет id, если он есть. Идемпотентна.
func (s *Store) Remove(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	s.save(ctx, slices.DeleteFunc(ids, func(v string) bool { return v == id }))
}

// Toggle - переключает членство и возвращает НОВОЕ состояние:
// true - id добавлен, false - удалён.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.load(ctx)
	if slices.Contains(ids, id) {
		s.save(ctx, slices.DeleteFunc(ids, func(v string) bool { return v == id }))
		return false
	}
	s.save(ctx, append(ids, id))
	return true
}

func (s *Store) load(ctx context.Context) []string {
	raw, ok, err := s.kv.Read(ctx, s.key)
	if err != nil {
		s.logger.Error("watchlist: read failed", slog.String("key", s.key), slog.Any("err", err))
		return []string{}
	}
	if !ok || raw == "" {
		return []string{}
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.logger.Warn("watchlist: stored value is not a string list", slog.String("key", s.key), slog.Any("err", err))
		return []string{}
	}

	// старые данные могли содержать дубли
	out := make([]string, 0, len(stored))
	for _, id := range stored {
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	return out
}

func (s *Store) save(ctx context.Context, ids []string) {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		s.logger.Error("watchlist: encode failed", slog.Any("err", err))
		return
	}
	if err := s.kv.Write(ctx, s.key, string(raw)); err != nil {
		s.logger.Error("watchlist: write failed", slog.String("key", s.key), slog.Any("err", err))
		return
	}
	s.logger.Debug("watchlist: saved", slog.Int("count", len(ids)))
}
