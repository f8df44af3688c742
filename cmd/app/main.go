package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/app"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/infra/db"
	"github.com/NastyaGoryachaya/crypto-tracker/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/gommon/log"
)

func main() {
	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("config load failed: ", err)
		os.Exit(1)
	}

	lg := logger.New(&cfg.Logger, os.Stdout)

	var pool *pgxpool.Pool
	if cfg.Postgres.Enabled {
		pool, err = db.NewPool(&cfg.Postgres)
		if err != nil {
			lg.Error("postgres connect failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	application, err := app.NewApp(ctx, *cfg, lg, pool)
	if err != nil {
		lg.Error("app init failed", slog.String("error", err.Error()))
		if pool != nil {
			pool.Close()
		}
		os.Exit(1)
	}

	if err := application.Run(ctx); err != nil {
		lg.Error("application stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lg.Info("crypto-tracker stopped")
}
