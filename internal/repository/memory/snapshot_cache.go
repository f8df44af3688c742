package memory

import (
	"context"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
)

// SnapshotCache - последний загруженный список монет.
// Каждое обновление заменяет список целиком, наружу отдаются копии.
type SnapshotCache struct {
	mu        sync.RWMutex
	coins     []domain.CoinSnapshot
	updatedAt time.Time
	loaded    bool
}

func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{}
}

// ReplaceSnapshots - заменить список монет новым снимком.
func (c *SnapshotCache) ReplaceSnapshots(_ context.Context, coins []domain.CoinSnapshot, at time.Time) error {
	cp := make([]domain.CoinSnapshot, len(coins))
	copy(cp, coins)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.coins = cp
	c.updatedAt = at
	c.loaded = true
	return nil
}

// LatestSnapshots - копия последнего списка и время обновления.
// До первой загрузки возвращает repository.ErrNotFound.
func (c *SnapshotCache) LatestSnapshots(_ context.Context) ([]domain.CoinSnapshot, time.Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, time.Time{}, repository.ErrNotFound
	}
	cp := make([]domain.CoinSnapshot, len(c.coins))
	copy(cp, c.coins)
	return cp, c.updatedAt, nil
}
