package httptransport

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/market"
	"github.com/labstack/echo/v4"
)

const defaultHistoryDays = 7

// MarketService - чтение рынка.
type MarketService interface {
	Coins(ctx context.Context, spec domain.FilterSpec) (market.CoinList, error)
	Search(ctx context.Context, query string) ([]domain.CoinSnapshot, error)
	Coin(ctx context.Context, id string) (domain.CoinSnapshot, error)
	History(ctx context.Context, id string, days int) (domain.PriceHistory, error)
	Watched(ctx context.Context, ids []string) ([]domain.CoinSnapshot, error)
}

// WatchlistStore - избранные монеты.
type WatchlistStore interface {
	All(ctx context.Context) []string
	Add(ctx context.Context, id string)
	Remove(ctx context.Context, id string)
	Toggle(ctx context.Context, id string) bool
}

// Router - то, что умеет регистрировать маршруты (*echo.Echo или *echo.Group).
type Router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// MarketHandler - HTTP-handler для монет и избранного.
type MarketHandler struct {
	logger    *slog.Logger
	svc       MarketService
	watchlist WatchlistStore
	timeout   time.Duration
}

func NewMarketHandler(logger *slog.Logger, svc MarketService, watchlist WatchlistStore, timeout time.Duration) *MarketHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if svc == nil || watchlist == nil {
		log.Fatal("nil service")
	}
	if timeout <= 0 {
		timeout = time.Second * 3
	}
	return &MarketHandler{
		logger:    logger,
		svc:       svc,
		watchlist: watchlist,
		timeout:   timeout,
	}
}

func (h *MarketHandler) RegisterRoutes(r Router) {
	r.GET("/coins", h.GetCoins)
	r.GET("/coins/search", h.SearchCoins)
	r.GET("/coins/:id", h.GetCoin)
	r.GET("/coins/:id/history", h.GetHistory)

	r.GET("/watchlist", h.GetWatchlist)
	r.PUT("/watchlist/:id", h.AddToWatchlist)
	r.DELETE("/watchlist/:id", h.RemoveFromWatchlist)
	r.POST("/watchlist/:id/toggle", h.ToggleWatchlist)
}

func (h *MarketHandler) GetCoins(c echo.Context) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return writeError(c, h.logger, "GetCoins", err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.svc.Coins(ctx, spec)
	if err != nil {
		return writeError(c, h.logger, "GetCoins", err)
	}

	return c.JSON(http.StatusOK, CoinList{
		Coins:             makeCoins(list.Coins, h.watchedSet(ctx)),
		ActiveFilterCount: list.ActiveFilterCount,
		Total:             list.Total,
		UpdatedAt:         list.UpdatedAt,
	})
}

func (h *MarketHandler) SearchCoins(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	items, err := h.svc.Search(ctx, c.QueryParam("q"))
	if err != nil {
		return writeError(c, h.logger, "SearchCoins", err)
	}
	if len(items) == 0 {
		return c.JSON(http.StatusOK, []Coin{})
	}
	return c.JSON(http.StatusOK, makeCoins(items, h.watchedSet(ctx)))
}

func (h *MarketHandler) GetCoin(c echo.Context) error {
	id := coinID(c)
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id_required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	item, err := h.svc.Coin(ctx, id)
	if err != nil {
		return writeError(c, h.logger, "GetCoin", err)
	}
	return c.JSON(http.StatusOK, makeCoin(item, h.watchedSet(ctx)[item.ID]))
}

func (h *MarketHandler) GetHistory(c echo.Context) error {
	id := coinID(c)
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id_required"})
	}

	days := defaultHistoryDays
	if raw := strings.TrimSpace(c.QueryParam("days")); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad_request"})
		}
		days = v
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	hist, err := h.svc.History(ctx, id, days)
	if err != nil {
		return writeError(c, h.logger, "GetHistory", err)
	}
	return c.JSON(http.StatusOK, makeHistory(hist))
}

func (h *MarketHandler) GetWatchlist(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	ids := h.watchlist.All(ctx)
	coins, err := h.svc.Watched(ctx, ids)
	if err != nil {
		// пока рынок не загружен, отдаём хотя бы id
		if !errors.Is(err, derrors.ErrMarketUnavailable) {
			return writeError(c, h.logger, "GetWatchlist", err)
		}
		coins = nil
	}

	watched := make(map[string]bool, len(ids))
	for _, id := range ids {
		watched[id] = true
	}
	return c.JSON(http.StatusOK, WatchlistView{IDs: ids, Coins: makeCoins(coins, watched)})
}

func (h *MarketHandler) AddToWatchlist(c echo.Context) error {
	id := coinID(c)
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id_required"})
	}
	h.watchlist.Add(c.Request().Context(), id)
	return c.NoContent(http.StatusNoContent)
}

func (h *MarketHandler) RemoveFromWatchlist(c echo.Context) error {
	id := coinID(c)
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id_required"})
	}
	h.watchlist.Remove(c.Request().Context(), id)
	return c.NoContent(http.StatusNoContent)
}

func (h *MarketHandler) ToggleWatchlist(c echo.Context) error {
	id := coinID(c)
	if id == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id_required"})
	}
	watched := h.watchlist.Toggle(c.Request().Context(), id)
	return c.JSON(http.StatusOK, ToggleResult{ID: id, Watched: watched})
}

func (h *MarketHandler) watchedSet(ctx context.Context) map[string]bool {
	ids := h.watchlist.All(ctx)
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}

func coinID(c echo.Context) string {
	return strings.ToLower(strings.TrimSpace(c.Param("id")))
}
