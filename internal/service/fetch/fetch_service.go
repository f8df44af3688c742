package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
)

type Service interface {
	FetchAndStore(ctx context.Context) error
}

// MarketsProvider - источник рыночных снимков (CoinGecko)
type MarketsProvider interface {
	FetchMarkets(ctx context.Context, limit int) ([]domain.CoinSnapshot, error)
}

// SnapshotWriter - куда складывается последний список монет
type SnapshotWriter interface {
	ReplaceSnapshots(ctx context.Context, coins []domain.CoinSnapshot, at time.Time) error
}

type fetchService struct {
	provider MarketsProvider
	cache    SnapshotWriter
	limit    int
	clock    Clock
	logger   *slog.Logger
}

// NewService - конструктор сервиса обновления рыночных данных.
func NewService(provider MarketsProvider, cache SnapshotWriter, limit int, logger *slog.Logger) Service {
	return NewServiceWithClock(provider, cache, limit, NewRealClock(), logger)
}

func NewServiceWithClock(provider MarketsProvider, cache SnapshotWriter, limit int, clock Clock, logger *slog.Logger) Service {
	return &fetchService{
		provider: provider,
		cache:    cache,
		limit:    limit,
		clock:    clock,
		logger:   logger,
	}
}

// FetchAndStore - запрашивает топ монет у провайдера и целиком заменяет ими кэш.
// Пустой ответ кэш не трогает: остаётся последний удачный список.
func (s *fetchService) FetchAndStore(ctx context.Context) error {
	coins, err := s.provider.FetchMarkets(ctx, s.limit)
	if err != nil {
		s.logger.Error("fetch markets", slog.Any("err", err))
		return fmt.Errorf("fetch markets: %w", err)
	}

	valid := make([]domain.CoinSnapshot, 0, len(coins))
	for _, c := range coins {
		if c.ID == "" {
			s.logger.Warn("skip coin without id", slog.String("symbol", c.Symbol))
			continue
		}
		valid = append(valid, c)
	}

	if len(valid) == 0 {
		s.logger.Warn("empty market response, keeping previous snapshot")
		return nil
	}

	if err := s.cache.ReplaceSnapshots(ctx, valid, s.clock.Now()); err != nil {
		s.logger.Error("store snapshots", slog.Any("err", err))
		return fmt.Errorf("store snapshots: %w", err)
	}

	s.logger.Debug("snapshots refreshed", slog.Int("count", len(valid)))
	return nil
}
