package httptransport_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository/memory"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/auth"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/market"
	marketmocks "github.com/NastyaGoryachaya/crypto-tracker/internal/service/market/mocks"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/watchlist"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/transport/httptransport"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token"

var updated = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

type env struct {
	e         *echo.Echo
	market    *marketmocks.MockService
	watchlist *watchlist.Store
	auth      auth.Service
	kv        *memory.KVStore
}

func setup(t *testing.T) *env {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.Default()

	kv := memory.NewKVStore()
	wl := watchlist.NewStore(kv, "", log)
	authSvc := auth.NewService(kv, auth.Credentials{Email: "User@example.com", Password: "password123"}, log)
	require.NoError(t, kv.Write(context.Background(), "crypto-session:"+testToken, "true"))

	mkt := marketmocks.NewMockService(ctrl)
	e := httptransport.NewServer(log,
		httptransport.NewMarketHandler(log, mkt, wl, time.Second),
		httptransport.NewAuthHandler(log, authSvc, time.Second),
		authSvc,
	)
	return &env{e: e, market: mkt, watchlist: wl, auth: authSvc, kv: kv}
}

func (v *env) do(method, target, body string, authed bool) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if authed {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+testToken)
	}
	rec := httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	v := setup(t)
	rec := v.do(http.MethodGet, "/healthz", "", false)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_RequiresSession(t *testing.T) {
	v := setup(t)

	rec := v.do(http.MethodGet, "/api/coins", "", false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/api/watchlist", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer nope")
	rec = httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginLogout(t *testing.T) {
	v := setup(t)

	rec := v.do(http.MethodPost, "/api/login", `{"email":"User@example.com","password":"wrong"}`, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"invalid_credentials"}`, rec.Body.String())

	rec = v.do(http.MethodPost, "/api/login", `{"email":"User@example.com","password":"password123"}`, false)
	require.Equal(t, http.StatusOK, rec.Code)
	token := decode[map[string]string](t, rec)["token"]
	require.NotEmpty(t, token)
	require.True(t, v.auth.IsAuthenticated(context.Background(), token))

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set(echo.HeaderAuthorization, "bearer "+token)
	rec = httptest.NewRecorder()
	v.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.False(t, v.auth.IsAuthenticated(context.Background(), token))
}

func TestLogin_BadBody(t *testing.T) {
	v := setup(t)
	rec := v.do(http.MethodPost, "/api/login", `{"email":`, false)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCoins_ParsesSpecAndMarksWatched(t *testing.T) {
	v := setup(t)
	v.watchlist.Add(context.Background(), "ethereum")

	v.market.EXPECT().
		Coins(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, spec domain.FilterSpec) (market.CoinList, error) {
			require.Equal(t, "eth", spec.Query)
			require.NotNil(t, spec.PriceMin)
			require.Equal(t, 0.0, *spec.PriceMin)
			require.Nil(t, spec.PriceMax)
			require.NotNil(t, spec.RankMax)
			require.Equal(t, 10, *spec.RankMax)
			require.Equal(t, domain.SortByMarketCap, spec.SortBy)
			require.Equal(t, domain.SortDesc, spec.SortOrder)
			return market.CoinList{
				Coins: []domain.CoinSnapshot{
					{ID: "ethereum", Symbol: "eth", Name: "Ethereum", MarketCapRank: 2, PriceChangePercent24h: 1.5},
				},
				ActiveFilterCount: 3,
				Total:             1,
				UpdatedAt:         updated,
			}, nil
		})

	rec := v.do(http.MethodGet, "/api/coins?q=eth&price_min=0&rank_max=10&sort_by=market_cap&sort_order=DESC", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Coins []struct {
			ID      string  `json:"id"`
			Watched bool    `json:"watched"`
			Change  float64 `json:"price_change_percentage_24h"`
		} `json:"coins"`
		ActiveFilterCount int       `json:"active_filter_count"`
		Total             int       `json:"total"`
		UpdatedAt         time.Time `json:"updated_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Coins, 1)
	require.True(t, body.Coins[0].Watched)
	require.Equal(t, 1.5, body.Coins[0].Change)
	require.Equal(t, 3, body.ActiveFilterCount)
	require.Equal(t, 1, body.Total)
	require.True(t, updated.Equal(body.UpdatedAt))
}

func TestGetCoins_MalformedBound(t *testing.T) {
	v := setup(t)
	v.market.EXPECT().Coins(gomock.Any(), gomock.Any()).Times(0)

	for _, q := range []string{"price_min=abc", "rank_min=1.5", "market_cap_max=NaN"} {
		rec := v.do(http.MethodGet, "/api/coins?"+q, "", true)
		require.Equal(t, http.StatusBadRequest, rec.Code, q)
		require.JSONEq(t, `{"error":"bad_request"}`, rec.Body.String())
	}
}

func TestGetCoins_MarketUnavailable(t *testing.T) {
	v := setup(t)
	v.market.EXPECT().Coins(gomock.Any(), gomock.Any()).Return(market.CoinList{}, derrors.ErrMarketUnavailable)

	rec := v.do(http.MethodGet, "/api/coins", "", true)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.JSONEq(t, `{"error":"market_unavailable"}`, rec.Body.String())
}

func TestSearchCoins(t *testing.T) {
	v := setup(t)

	v.market.EXPECT().Search(gomock.Any(), "b").Return([]domain.CoinSnapshot{}, nil)
	rec := v.do(http.MethodGet, "/api/coins/search?q=b", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[]`, rec.Body.String())

	v.market.EXPECT().Search(gomock.Any(), "bit").Return([]domain.CoinSnapshot{{ID: "bitcoin"}}, nil)
	rec = v.do(http.MethodGet, "/api/coins/search?q=bit", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[[]map[string]any](t, rec), 1)
}

func TestGetCoin(t *testing.T) {
	v := setup(t)

	v.market.EXPECT().Coin(gomock.Any(), "bitcoin").Return(domain.CoinSnapshot{ID: "bitcoin", Name: "Bitcoin"}, nil)
	rec := v.do(http.MethodGet, "/api/coins/Bitcoin", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "Bitcoin", decode[map[string]any](t, rec)["name"])

	v.market.EXPECT().Coin(gomock.Any(), "nope").Return(domain.CoinSnapshot{}, derrors.ErrCoinNotFound)
	rec = v.do(http.MethodGet, "/api/coins/nope", "", true)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"coin_not_found"}`, rec.Body.String())

	v.market.EXPECT().Coin(gomock.Any(), "boom").Return(domain.CoinSnapshot{}, errors.New("unexpected"))
	rec = v.do(http.MethodGet, "/api/coins/boom", "", true)
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetHistory(t *testing.T) {
	v := setup(t)

	ts := time.UnixMilli(1756728000000).UTC()
	v.market.EXPECT().History(gomock.Any(), "bitcoin", 7).Return(domain.PriceHistory{
		CoinID: "bitcoin",
		Days:   7,
		Prices: []domain.PricePoint{{Timestamp: ts, Value: 65000.5}},
	}, nil)

	rec := v.do(http.MethodGet, "/api/coins/bitcoin/history", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t,
		`{"coin_id":"bitcoin","days":7,"prices":[[1756728000000,65000.5]],"market_caps":[],"total_volumes":[]}`,
		rec.Body.String())

	rec = v.do(http.MethodGet, "/api/coins/bitcoin/history?days=week", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	v.market.EXPECT().History(gomock.Any(), "bitcoin", 400).Return(domain.PriceHistory{}, derrors.ErrBadRequest)
	rec = v.do(http.MethodGet, "/api/coins/bitcoin/history?days=400", "", true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatchlistRoutes(t *testing.T) {
	v := setup(t)

	rec := v.do(http.MethodPut, "/api/watchlist/bitcoin", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = v.do(http.MethodPut, "/api/watchlist/solana", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = v.do(http.MethodPost, "/api/watchlist/solana/toggle", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"id":"solana","watched":false}`, rec.Body.String())

	rec = v.do(http.MethodPost, "/api/watchlist/ethereum/toggle", "", true)
	require.JSONEq(t, `{"id":"ethereum","watched":true}`, rec.Body.String())

	rec = v.do(http.MethodDelete, "/api/watchlist/bitcoin", "", true)
	require.Equal(t, http.StatusNoContent, rec.Code)

	v.market.EXPECT().Watched(gomock.Any(), []string{"ethereum"}).
		Return([]domain.CoinSnapshot{{ID: "ethereum", Name: "Ethereum"}}, nil)
	rec = v.do(http.MethodGet, "/api/watchlist", "", true)
	require.Equal(t, http.StatusOK, rec.Code)

	view := decode[struct {
		IDs   []string `json:"ids"`
		Coins []struct {
			ID      string `json:"id"`
			Watched bool   `json:"watched"`
		} `json:"coins"`
	}](t, rec)
	require.Equal(t, []string{"ethereum"}, view.IDs)
	require.Len(t, view.Coins, 1)
	require.True(t, view.Coins[0].Watched)

	raw, ok, err := v.kv.Read(context.Background(), watchlist.DefaultKey)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `["ethereum"]`, raw)
}

func TestWatchlist_MarketNotLoaded(t *testing.T) {
	v := setup(t)
	v.watchlist.Add(context.Background(), "bitcoin")

	v.market.EXPECT().Watched(gomock.Any(), []string{"bitcoin"}).Return(nil, derrors.ErrMarketUnavailable)
	rec := v.do(http.MethodGet, "/api/watchlist", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"ids":["bitcoin"],"coins":[]}`, rec.Body.String())
}
