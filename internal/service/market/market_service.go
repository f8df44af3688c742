package market

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/filter"
)

// Чтение рынка: список с фильтрами, поиск, карточка монеты, история цены

const (
	MinHistoryDays = 1
	MaxHistoryDays = 365
)

type Service interface {
	// Coins - отфильтрованный и отсортированный список, обрезанный до лимита показа
	Coins(ctx context.Context, spec domain.FilterSpec) (CoinList, error)
	// Search - быстрый поиск по имени/символу
	Search(ctx context.Context, query string) ([]domain.CoinSnapshot, error)
	// Coin - одна монета: сначала кэш, потом провайдер
	Coin(ctx context.Context, id string) (domain.CoinSnapshot, error)
	// History - история цены за days дней
	History(ctx context.Context, id string, days int) (domain.PriceHistory, error)
	// Watched - монеты из списка ids, которые есть в текущем снимке, в порядке снимка
	Watched(ctx context.Context, ids []string) ([]domain.CoinSnapshot, error)
}

type SnapshotReader interface {
	LatestSnapshots(ctx context.Context) ([]domain.CoinSnapshot, time.Time, error)
}

type Provider interface {
	FetchCoin(ctx context.Context, id string) (domain.CoinSnapshot, error)
	FetchHistory(ctx context.Context, id string, days int) (domain.PriceHistory, error)
}

type Limits struct {
	Display      int
	Search       int
	SearchMinLen int
}

type CoinList struct {
	Coins             []domain.CoinSnapshot
	ActiveFilterCount int
	// Total - сколько монет прошло фильтр до обрезки
	Total     int
	UpdatedAt time.Time
}

type service struct {
	cache    SnapshotReader
	provider Provider
	limits   Limits
	logger   *slog.Logger
}

func NewService(cache SnapshotReader, provider Provider, limits Limits, logger *slog.Logger) Service {
	if limits.Display <= 0 {
		limits.Display = 30
	}
	if limits.Search <= 0 {
		limits.Search = 8
	}
	if limits.SearchMinLen <= 0 {
		limits.SearchMinLen = 2
	}
	return &service{
		cache:    cache,
		provider: provider,
		limits:   limits,
		logger:   logger,
	}
}

func (s *service) Coins(ctx context.Context, spec domain.FilterSpec) (CoinList, error) {
	coins, updatedAt, err := s.latest(ctx)
	if err != nil {
		return CoinList{}, err
	}

	filtered := filter.Apply(coins, spec)
	total := len(filtered)
	if len(filtered) > s.limits.Display {
		filtered = filtered[:s.limits.Display]
	}

	s.logger.Debug("coins filtered",
		slog.Int("in", len(coins)),
		slog.Int("matched", total),
		slog.String("sort_by", string(spec.SortBy)),
	)

	return CoinList{
		Coins:             filtered,
		ActiveFilterCount: filter.ActiveFilterCount(spec),
		Total:             total,
		UpdatedAt:         updatedAt,
	}, nil
}

func (s *service) Search(ctx context.Context, query string) ([]domain.CoinSnapshot, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < s.limits.SearchMinLen {
		return []domain.CoinSnapshot{}, nil
	}

	coins, _, err := s.latest(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.CoinSnapshot, 0, s.limits.Search)
	for _, c := range coins {
		if !filter.MatchesQuery(c, query) {
			continue
		}
		out = append(out, c)
		if len(out) == s.limits.Search {
			break
		}
	}
	return out, nil
}

func (s *service) Coin(ctx context.Context, id string) (domain.CoinSnapshot, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.CoinSnapshot{}, derrors.ErrBadRequest
	}

	coins, _, err := s.cache.LatestSnapshots(ctx)
	switch {
	case err == nil:
		for _, c := range coins {
			if c.ID == id {
				return c, nil
			}
		}
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Debug("snapshot not loaded yet, asking provider", slog.String("id", id))
	default:
		s.logger.Warn("snapshot read failed, asking provider", slog.String("id", id), slog.Any("err", err))
	}

	coin, err := s.provider.FetchCoin(ctx, id)
	if err != nil {
		return domain.CoinSnapshot{}, s.providerError("fetch coin", id, err)
	}
	return coin, nil
}

func (s *service) History(ctx context.Context, id string, days int) (domain.PriceHistory, error) {
	id = strings.TrimSpace(id)
	if id == "" || days < MinHistoryDays || days > MaxHistoryDays {
		return domain.PriceHistory{}, derrors.ErrBadRequest
	}

	h, err := s.provider.FetchHistory(ctx, id, days)
	if err != nil {
		return domain.PriceHistory{}, s.providerError("fetch history", id, err)
	}
	return h, nil
}

func (s *service) Watched(ctx context.Context, ids []string) ([]domain.CoinSnapshot, error) {
	if len(ids) == 0 {
		return []domain.CoinSnapshot{}, nil
	}

	coins, _, err := s.latest(ctx)
	if err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}

	out := make([]domain.CoinSnapshot, 0, len(ids))
	for _, c := range coins {
		if _, ok := want[c.ID]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *service) latest(ctx context.Context) ([]domain.CoinSnapshot, time.Time, error) {
	coins, updatedAt, err := s.cache.LatestSnapshots(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("market snapshot not loaded yet")
			return nil, time.Time{}, derrors.ErrMarketUnavailable
		}
		s.logger.Error("failed to read market snapshot", slog.Any("err", err))
		return nil, time.Time{}, derrors.ErrInternal
	}
	return coins, updatedAt, nil
}

func (s *service) providerError(op, id string, err error) error {
	if errors.Is(err, derrors.ErrCoinNotFound) {
		s.logger.Warn("coin not found", slog.String("op", op), slog.String("id", id))
		return derrors.ErrCoinNotFound
	}
	s.logger.Error("provider failed", slog.String("op", op), slog.String("id", id), slog.Any("err", err))
	return derrors.ErrMarketUnavailable
}
