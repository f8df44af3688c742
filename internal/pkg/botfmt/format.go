package botfmt

import (
	"fmt"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
	trillion = decimal.NewFromInt(1_000_000_000_000)
)

// FormatCoinLine - короткая строка для /top и /watchlist
func FormatCoinLine(c domain.CoinSnapshot) string {
	return fmt.Sprintf("#%d %s (%s) | %s | %s",
		c.MarketCapRank,
		c.Name,
		strings.ToUpper(c.Symbol),
		HumanPrice(c.CurrentPrice),
		HumanPercent(c.PriceChangePercent24h),
	)
}

// FormatCoinDetails - подробное сообщение для /coin {id}
func FormatCoinDetails(c domain.CoinSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s\n", strings.ToUpper(c.Symbol), c.Name)
	fmt.Fprintf(&b, "Ранг: #%d\n", c.MarketCapRank)
	fmt.Fprintf(&b, "Текущая цена: %s\n", HumanPrice(c.CurrentPrice))
	fmt.Fprintf(&b, "Изменение за 24ч: %s\n", HumanPercent(c.PriceChangePercent24h))
	if c.PriceChangePercent7d != nil {
		fmt.Fprintf(&b, "Изменение за 7д: %s\n", HumanPercent(*c.PriceChangePercent7d))
	}
	if c.PriceChangePercent30d != nil {
		fmt.Fprintf(&b, "Изменение за 30д: %s\n", HumanPercent(*c.PriceChangePercent30d))
	}
	fmt.Fprintf(&b, "Капитализация: %s\n", HumanCompact(c.MarketCap))
	fmt.Fprintf(&b, "Объём за 24ч: %s\n", HumanCompact(c.TotalVolume))
	if c.MaxSupply != nil {
		fmt.Fprintf(&b, "Предложение: %s / %s\n", HumanCompact(c.CirculatingSupply), HumanCompact(*c.MaxSupply))
	} else {
		fmt.Fprintf(&b, "Предложение: %s\n", HumanCompact(c.CirculatingSupply))
	}
	fmt.Fprintf(&b, "Обновлено: %s", c.UpdatedAt.UTC().Format("15:04:05"))
	return b.String()
}

// HumanPrice - от 1$ два знака, мельче до 6 значащих после запятой.
func HumanPrice(v float64) string {
	d := decimal.NewFromFloat(v)
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return "$" + d.StringFixed(2)
	}
	return "$" + d.Round(6).String()
}

// HumanPercent - знак всегда, два знака после запятой.
func HumanPercent(v float64) string {
	d := decimal.NewFromFloat(v).Round(2)
	sign := ""
	if d.IsPositive() {
		sign = "+"
	}
	return sign + d.StringFixed(2) + "%"
}

// HumanCompact - 1.28T, 400.00B, 8.00M
func HumanCompact(v float64) string {
	d := decimal.NewFromFloat(v)
	abs := d.Abs()
	switch {
	case abs.GreaterThanOrEqual(trillion):
		return d.Div(trillion).StringFixed(2) + "T"
	case abs.GreaterThanOrEqual(billion):
		return d.Div(billion).StringFixed(2) + "B"
	case abs.GreaterThanOrEqual(million):
		return d.Div(million).StringFixed(2) + "M"
	case abs.GreaterThanOrEqual(thousand):
		return d.Div(thousand).StringFixed(2) + "K"
	default:
		return d.StringFixed(2)
	}
}
