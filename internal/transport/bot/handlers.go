package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/pkg/botfmt"
	"gopkg.in/telebot.v4"
)

const (
	defaultTop = 10
	maxTop     = 30

	replyInternal   = "Внутренняя ошибка сервиса, попробуйте позже"
	replyNoMarket   = "Данные рынка ещё загружаются, попробуйте через минуту"
	replyNoCoin     = "Монета не найдена"
	replyNeedCoinID = "Укажи id монеты, например: %s bitcoin"
)

var ErrInvalidCount = errors.New("invalid count")

const helpText = "Привет! Доступные команды:\n" +
	"/top [n] - топ монет по капитализации (по умолчанию 10, максимум 30)\n" +
	"/coin {id} - подробности по монете (bitcoin, ethereum)\n" +
	"/watch {id} - добавить в избранное\n" +
	"/unwatch {id} - убрать из избранного\n" +
	"/watchlist - избранные монеты"

func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

func (b *Bot) handleTop(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return c.Send(b.topReply(ctx, c.Args()))
}

func (b *Bot) handleCoin(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Send(b.coinReply(ctx, c.Args()))
}

func (b *Bot) handleWatch(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return c.Send(b.watchReply(ctx, c.Args()))
}

func (b *Bot) handleUnwatch(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return c.Send(b.unwatchReply(ctx, c.Args()))
}

func (b *Bot) handleWatchlist(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return c.Send(b.watchlistReply(ctx))
}

// topReply - /top [n]: первые n монет по рангу
func (b *Bot) topReply(ctx context.Context, args []string) string {
	n := defaultTop
	if len(args) > 0 {
		v, err := parseCount(args[0])
		if err != nil {
			return fmt.Sprintf("Некорректное число. Пример: /top 10 (от 1 до %d)", maxTop)
		}
		n = v
	}

	list, err := b.market.Coins(ctx, domain.DefaultFilterSpec())
	if err != nil {
		return b.errorReply("top", err)
	}
	coins := list.Coins
	if len(coins) > n {
		coins = coins[:n]
	}
	if len(coins) == 0 {
		return replyNoMarket
	}

	var bld strings.Builder
	for _, c := range coins {
		bld.WriteString(botfmt.FormatCoinLine(c))
		bld.WriteByte('\n')
	}
	return bld.String()
}

func (b *Bot) coinReply(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf(replyNeedCoinID, "/coin")
	}
	coin, err := b.market.Coin(ctx, normalizeID(args[0]))
	if err != nil {
		return b.errorReply("coin", err)
	}

	text := botfmt.FormatCoinDetails(coin)
	if b.watchlist.Contains(ctx, coin.ID) {
		text += "\n★ В избранном"
	}
	return text
}

// watchReply - добавляет только монеты, которые знает рынок
func (b *Bot) watchReply(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf(replyNeedCoinID, "/watch")
	}
	coin, err := b.market.Coin(ctx, normalizeID(args[0]))
	if err != nil {
		return b.errorReply("watch", err)
	}
	if b.watchlist.Contains(ctx, coin.ID) {
		return fmt.Sprintf("%s уже в избранном", coin.Name)
	}
	b.watchlist.Add(ctx, coin.ID)
	return fmt.Sprintf("%s добавлена в избранное", coin.Name)
}

func (b *Bot) unwatchReply(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf(replyNeedCoinID, "/unwatch")
	}
	id := normalizeID(args[0])
	if !b.watchlist.Contains(ctx, id) {
		return fmt.Sprintf("%s нет в избранном", id)
	}
	b.watchlist.Remove(ctx, id)
	return fmt.Sprintf("%s убрана из избранного", id)
}

func (b *Bot) watchlistReply(ctx context.Context) string {
	ids := b.watchlist.All(ctx)
	if len(ids) == 0 {
		return "Избранное пусто. Добавь монету: /watch bitcoin"
	}

	coins, err := b.market.Watched(ctx, ids)
	if err != nil && !errors.Is(err, errs.ErrMarketUnavailable) {
		return b.errorReply("watchlist", err)
	}

	var bld strings.Builder
	seen := make(map[string]bool, len(coins))
	for _, c := range coins {
		seen[c.ID] = true
		bld.WriteString(botfmt.FormatCoinLine(c))
		bld.WriteByte('\n')
	}
	// монеты вне текущего топа показываем просто id
	for _, id := range ids {
		if !seen[id] {
			bld.WriteString(id)
			bld.WriteString(" | нет данных\n")
		}
	}
	return bld.String()
}

func (b *Bot) errorReply(op string, err error) string {
	switch {
	case errors.Is(err, errs.ErrCoinNotFound), errors.Is(err, errs.ErrBadRequest):
		return replyNoCoin
	case errors.Is(err, errs.ErrMarketUnavailable):
		return replyNoMarket
	default:
		b.logger.Error("bot command failed", slog.String("op", op), slog.Any("err", err))
		return replyInternal
	}
}

// parseCount - число монет для /top, от 1 до maxTop
func parseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 || n > maxTop {
		return 0, ErrInvalidCount
	}
	return n, nil
}

func normalizeID(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
