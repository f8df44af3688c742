package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/fetch"
)

const defaultInterval = time.Minute

type Scheduler struct {
	fetchService fetch.Service
	interval     time.Duration
	logger       *slog.Logger
}

// NewScheduler - конструктор планировщика фонового обновления рынка
func NewScheduler(fetchService fetch.Service, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Scheduler{
		fetchService: fetchService,
		interval:     interval,
		logger:       logger,
	}
}

// Start - первый запуск сразу, дальше по тикеру до отмены контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	s.logger.Debug("tick: refreshing market snapshot")
	if err := s.fetchService.FetchAndStore(ctx); err != nil {
		if ctx.Err() != nil {
			return
		}
		s.logger.Error("tick: refresh failed", slog.Any("err", err))
		return
	}
	s.logger.Debug("tick: completed")
}
