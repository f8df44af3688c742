package domain

// SortBy - поле сортировки списка монет.
type SortBy string

const (
	SortByRank      SortBy = "rank"
	SortByPrice     SortBy = "price"
	SortByMarketCap SortBy = "market_cap"
	SortByChange24h SortBy = "change_24h"
	SortByVolume    SortBy = "volume"
)

// SortOrder - направление сортировки.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// FilterSpec - поиск, диапазоны и сортировка для списка монет.
// nil-граница означает "не задано" и не равна нулю. Границы включительные.
type FilterSpec struct {
	Query string

	PriceMin *float64
	PriceMax *float64

	RankMin *int
	RankMax *int

	MarketCapMin *float64
	MarketCapMax *float64

	SortBy    SortBy
	SortOrder SortOrder
}

// DefaultFilterSpec - состояние "без фильтров": rank / asc.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{SortBy: SortByRank, SortOrder: SortAsc}
}

// EffectiveSort - сортировка с учётом пустых значений (пусто = по умолчанию).
func (f FilterSpec) EffectiveSort() (SortBy, SortOrder) {
	by, order := f.SortBy, f.SortOrder
	if by == "" {
		by = SortByRank
	}
	if order == "" {
		order = SortAsc
	}
	return by, order
}
