package filter

import (
	"cmp"
	"slices"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
)

// Фильтрация и сортировка списка монет. Чистые функции: вход не меняется,
// одинаковый вход даёт одинаковый порядок.

// Apply - отбирает монеты, подходящие под все заданные границы и поиск,
// и сортирует их стабильно по выбранному полю.
// Перевёрнутые границы (min > max) не считаются ошибкой и дают пустой результат.
func Apply(coins []domain.CoinSnapshot, spec domain.FilterSpec) []domain.CoinSnapshot {
	out := make([]domain.CoinSnapshot, 0, len(coins))
	for _, c := range coins {
		if matches(c, spec) {
			out = append(out, c)
		}
	}

	by, order := spec.EffectiveSort()
	key := keyFunc(by)
	// всё, кроме asc, сортируется по убыванию
	desc := order != domain.SortAsc

	slices.SortStableFunc(out, func(a, b domain.CoinSnapshot) int {
		r := cmp.Compare(key(a), key(b))
		if desc {
			return -r
		}
		return r
	})
	return out
}

// ActiveFilterCount - число активных фильтров для бейджа:
// по одному на каждую заданную границу и ещё один, если сортировка не rank/asc.
// Поисковая строка не считается.
func ActiveFilterCount(spec domain.FilterSpec) int {
	count := 0
	for _, set := range []bool{
		spec.PriceMin != nil,
		spec.PriceMax != nil,
		spec.RankMin != nil,
		spec.RankMax != nil,
		spec.MarketCapMin != nil,
		spec.MarketCapMax != nil,
	} {
		if set {
			count++
		}
	}

	by, order := spec.EffectiveSort()
	if by != domain.SortByRank || order != domain.SortAsc {
		count++
	}
	return count
}

// MatchesQuery - регистронезависимый поиск подстроки в имени или символе.
// Пустой запрос подходит всем.
func MatchesQuery(c domain.CoinSnapshot, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Symbol), q)
}

func matches(c domain.CoinSnapshot, spec domain.FilterSpec) bool {
	if spec.PriceMin != nil && c.CurrentPrice < *spec.PriceMin {
		return false
	}
	if spec.PriceMax != nil && c.CurrentPrice > *spec.PriceMax {
		return false
	}
	if spec.RankMin != nil && c.MarketCapRank < *spec.RankMin {
		return false
	}
	if spec.RankMax != nil && c.MarketCapRank > *spec.RankMax {
		return false
	}
	if spec.MarketCapMin != nil && c.MarketCap < *spec.MarketCapMin {
		return false
	}
	if spec.MarketCapMax != nil && c.MarketCap > *spec.MarketCapMax {
		return false
	}
	return MatchesQuery(c, spec.Query)
}

// keyFunc - извлечение ключа сортировки; неизвестное поле = rank.
func keyFunc(by domain.SortBy) func(domain.CoinSnapshot) float64 {
	switch by {
	case domain.SortByPrice:
		return func(c domain.CoinSnapshot) float64 { return c.CurrentPrice }
	case domain.SortByMarketCap:
		return func(c domain.CoinSnapshot) float64 { return c.MarketCap }
	case domain.SortByChange24h:
		return func(c domain.CoinSnapshot) float64 { return c.PriceChangePercent24h }
	case domain.SortByVolume:
		return func(c domain.CoinSnapshot) float64 { return c.TotalVolume }
	default:
		return func(c domain.CoinSnapshot) float64 { return float64(c.MarketCapRank) }
	}
}
