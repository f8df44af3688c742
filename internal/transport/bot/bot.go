package bot

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/service/market"
	"gopkg.in/telebot.v4"
)

type MarketReader interface {
	Coins(ctx context.Context, spec domain.FilterSpec) (market.CoinList, error)
	Coin(ctx context.Context, id string) (domain.CoinSnapshot, error)
	Watched(ctx context.Context, ids []string) ([]domain.CoinSnapshot, error)
}

type WatchlistStore interface {
	All(ctx context.Context) []string
	Add(ctx context.Context, id string)
	Remove(ctx context.Context, id string)
	Contains(ctx context.Context, id string) bool
}

type Config struct {
	Token           string
	LongPollTimeout time.Duration
}

// Bot - Telegram-бот поверх рынка и избранного
type Bot struct {
	bot       *telebot.Bot
	market    MarketReader
	watchlist WatchlistStore
	logger    *slog.Logger

	stopOnce sync.Once
}

// New создаёт бота и регистрирует команды
func New(cfg Config, market MarketReader, watchlist WatchlistStore, logger *slog.Logger) (*Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}

	b, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		bot:       b,
		market:    market,
		watchlist: watchlist,
		logger:    logger,
	}

	b.Handle("/start", bot.handleStart)
	b.Handle("/top", bot.handleTop)
	b.Handle("/coin", bot.handleCoin)
	b.Handle("/watch", bot.handleWatch)
	b.Handle("/unwatch", bot.handleUnwatch)
	b.Handle("/watchlist", bot.handleWatchlist)
	return bot, nil
}

// Start запускает long polling и блокируется до Stop
func (b *Bot) Start() {
	b.logger.Info("telegram bot started", slog.String("username", b.bot.Me.Username))
	b.bot.Start()
}

// Stop останавливает бота; повторный вызов ничего не делает
func (b *Bot) Stop() {
	b.stopOnce.Do(b.bot.Stop)
}
