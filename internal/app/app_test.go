package app

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	cfg := config.Config{}
	cfg.Server.Addr = "127.0.0.1:0"
	cfg.Server.RequestTimeout = time.Second
	cfg.CoinGecko.BaseURL = "http://127.0.0.1:0"
	cfg.Auth.Email = "User@example.com"
	cfg.Auth.Password = "password123"
	return cfg
}

func TestNewApp_InMemoryWiring(t *testing.T) {
	ctx := context.Background()
	a, err := NewApp(ctx, testConfig(), slog.Default(), nil)
	require.NoError(t, err)
	require.Nil(t, a.updater)
	require.Nil(t, a.bot)

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// вход -> список монет из кэша -> избранное
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"User@example.com","password":"password123"}`))
	req.Header.Set("Content-Type", "application/json")
	a.e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "token")

	require.NoError(t, a.cache.ReplaceSnapshots(ctx, []domain.CoinSnapshot{
		{ID: "bitcoin", Name: "Bitcoin", Symbol: "btc", MarketCapRank: 1},
	}, time.Now().UTC()))

	list, err := a.market.Coins(ctx, domain.DefaultFilterSpec())
	require.NoError(t, err)
	require.Len(t, list.Coins, 1)

	require.True(t, a.watchlist.Toggle(ctx, "bitcoin"))
	watched, err := a.market.Watched(ctx, a.watchlist.All(ctx))
	require.NoError(t, err)
	require.Len(t, watched, 1)
}

func TestNewApp_TelegramWithoutToken(t *testing.T) {
	cfg := testConfig()
	cfg.Telegram.Enabled = true

	_, err := NewApp(context.Background(), cfg, slog.Default(), nil)
	require.Error(t, err)
}

func TestNewApp_SchedulerEnabled(t *testing.T) {
	cfg := testConfig()
	cfg.Scheduler.Enabled = true
	cfg.Scheduler.Interval = time.Minute

	a, err := NewApp(context.Background(), cfg, slog.Default(), nil)
	require.NoError(t, err)
	require.NotNil(t, a.updater)
}

func TestRun_StopsServerOnCancel(t *testing.T) {
	a, err := NewApp(context.Background(), testConfig(), slog.Default(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	var addr string
	require.Eventually(t, func() bool {
		la := a.e.ListenerAddr()
		if la == nil {
			return false
		}
		addr = la.String()
		return true
	}, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + addr + "/healthz")
	require.NoError(t, err)
	_ = resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	conn, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
	if err == nil {
		_ = conn.Close()
	}
	require.Error(t, err, "server still accepts connections on %s", addr)
}
