package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/repository/memory"
	repopg "github.com/NastyaGoryachaya/crypto-tracker/internal/repository/postgres"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/scheduler"
	authsvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/auth"
	fetchsvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
	marketsvc "github.com/NastyaGoryachaya/crypto-tracker/internal/service/market"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/watchlist"
	botpkg "github.com/NastyaGoryachaya/crypto-tracker/internal/transport/bot"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
)

const shutdownTimeout = 5 * time.Second

// KVStore - хранилище избранного и сессий (postgres или память)
type KVStore interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type App struct {
	cfg config.Config
	log *slog.Logger

	db   *pgxpool.Pool
	e    *echo.Echo
	serv *http.Server

	kv    KVStore
	cache *memory.SnapshotCache

	market    marketsvc.Service
	fetch     fetchsvc.Service
	auth      authsvc.Service
	watchlist *watchlist.Store

	updater *scheduler.Scheduler

	bot *botpkg.Bot
}

// NewApp - собирает зависимости. db == nil означает хранение в памяти.
func NewApp(ctx context.Context, cfg config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	if db != nil {
		repo := repopg.NewKVRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Error("kv schema init failed", slog.String("error", err.Error()))
			return nil, fmt.Errorf("ensure kv schema: %w", err)
		}
		app.kv = repo
	} else {
		log.Warn("postgres disabled, watchlist and sessions are kept in memory")
		app.kv = memory.NewKVStore()
	}

	app.cache = memory.NewSnapshotCache()
	provider := api_client.NewClient(cfg.CoinGecko)

	app.watchlist = watchlist.NewStore(app.kv, watchlist.DefaultKey, log)
	app.auth = authsvc.NewService(app.kv, authsvc.Credentials{
		Email:    cfg.Auth.Email,
		Password: cfg.Auth.Password,
	}, log)
	app.market = marketsvc.NewService(app.cache, provider, marketsvc.Limits{
		Display:      cfg.Market.DisplayLimit,
		Search:       cfg.Market.SearchLimit,
		SearchMinLen: cfg.Market.SearchMinLen,
	}, log)
	app.fetch = fetchsvc.NewService(provider, app.cache, cfg.CoinGecko.Limit, log)

	app.e = httptransport.NewServer(log,
		httptransport.NewMarketHandler(log, app.market, app.watchlist, cfg.Server.RequestTimeout),
		httptransport.NewAuthHandler(log, app.auth, cfg.Server.RequestTimeout),
		app.auth,
	)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      app.e,
	}

	if cfg.Scheduler.Enabled {
		app.updater = scheduler.NewScheduler(app.fetch, cfg.Scheduler.Interval, log)
	}

	if cfg.Telegram.Enabled {
		// Если бот включён, отсутствие токена - ошибка конфигурации
		token := strings.TrimSpace(cfg.Telegram.Token)
		if token == "" {
			log.Error("telegram enabled but TELEGRAM_BOT_TOKEN is empty")
			return nil, errors.New("telegram token is empty")
		}

		botApp, err := botpkg.New(
			botpkg.Config{Token: token, LongPollTimeout: 10 * time.Second},
			app.market,
			app.watchlist,
			log,
		)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		app.bot = botApp
	}

	log.Info("app initialized",
		slog.Bool("postgres", db != nil),
		slog.Bool("scheduler", app.updater != nil),
		slog.Bool("telegram", app.bot != nil),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.updater != nil {
		a.log.Info("starting updater")
		go a.updater.Start(ctx)
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		go a.bot.Start()
	}

	errCh := make(chan error, 1)
	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errCh:
	}

	if err := a.Shutdown(context.Background()); err != nil {
		return errors.Join(runErr, err)
	}
	return runErr
}

func (a *App) Shutdown(ctx context.Context) error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = shutdownTimeout
	}
	shCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// StartServer не привязывает a.serv к echo, поэтому гасим сам сервер
	var shutdownErr error
	if a.serv != nil {
		if err := a.serv.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
			shutdownErr = err
		}
	}

	if a.bot != nil {
		a.bot.Stop()
	}

	if a.db != nil {
		a.db.Close()
	}

	a.log.Info("application stopped")
	return shutdownErr
}
