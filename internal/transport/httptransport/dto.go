package httptransport

import (
	"strconv"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
)

// Percent - процентное изменение, в JSON с 3 знаками после запятой.
type Percent float64

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p), 'f', 3, 64)), nil
}

// Coin - DTO монеты для ответа API.
type Coin struct {
	ID                string    `json:"id"`
	Symbol            string    `json:"symbol"`
	Name              string    `json:"name"`
	Image             string    `json:"image,omitempty"`
	CurrentPrice      float64   `json:"current_price"`
	MarketCap         float64   `json:"market_cap"`
	MarketCapRank     int       `json:"market_cap_rank"`
	TotalVolume       float64   `json:"total_volume"`
	CirculatingSupply float64   `json:"circulating_supply"`
	MaxSupply         *float64  `json:"max_supply"`
	Change24h         Percent   `json:"price_change_percentage_24h"`
	Change7d          *Percent  `json:"price_change_percentage_7d,omitempty"`
	Change30d         *Percent  `json:"price_change_percentage_30d,omitempty"`
	UpdatedAt         time.Time `json:"last_updated"`
	Watched           bool      `json:"watched"`
}

func makeCoin(s domain.CoinSnapshot, watched bool) Coin {
	c := Coin{
		ID:                s.ID,
		Symbol:            s.Symbol,
		Name:              s.Name,
		Image:             s.Image,
		CurrentPrice:      s.CurrentPrice,
		MarketCap:         s.MarketCap,
		MarketCapRank:     s.MarketCapRank,
		TotalVolume:       s.TotalVolume,
		CirculatingSupply: s.CirculatingSupply,
		MaxSupply:         s.MaxSupply,
		Change24h:         Percent(s.PriceChangePercent24h),
		UpdatedAt:         s.UpdatedAt,
		Watched:           watched,
	}
	if s.PriceChangePercent7d != nil {
		p := Percent(*s.PriceChangePercent7d)
		c.Change7d = &p
	}
	if s.PriceChangePercent30d != nil {
		p := Percent(*s.PriceChangePercent30d)
		c.Change30d = &p
	}
	return c
}

func makeCoins(items []domain.CoinSnapshot, watched map[string]bool) []Coin {
	out := make([]Coin, 0, len(items))
	for _, item := range items {
		out = append(out, makeCoin(item, watched[item.ID]))
	}
	return out
}

type CoinList struct {
	Coins             []Coin    `json:"coins"`
	ActiveFilterCount int       `json:"active_filter_count"`
	Total             int       `json:"total"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Point - пара [ms, value], как её отдаёт CoinGecko.
type Point struct {
	Timestamp time.Time
	Value     float64
}

func (p Point) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendInt(b, p.Timestamp.UnixMilli(), 10)
	b = append(b, ',')
	b = strconv.AppendFloat(b, p.Value, 'f', -1, 64)
	b = append(b, ']')
	return b, nil
}

type History struct {
	CoinID       string  `json:"coin_id"`
	Days         int     `json:"days"`
	Prices       []Point `json:"prices"`
	MarketCaps   []Point `json:"market_caps"`
	TotalVolumes []Point `json:"total_volumes"`
}

func makeHistory(h domain.PriceHistory) History {
	return History{
		CoinID:       h.CoinID,
		Days:         h.Days,
		Prices:       makePoints(h.Prices),
		MarketCaps:   makePoints(h.MarketCaps),
		TotalVolumes: makePoints(h.TotalVolumes),
	}
}

func makePoints(in []domain.PricePoint) []Point {
	out := make([]Point, 0, len(in))
	for _, p := range in {
		out = append(out, Point{Timestamp: p.Timestamp, Value: p.Value})
	}
	return out
}

type WatchlistView struct {
	IDs   []string `json:"ids"`
	Coins []Coin   `json:"coins"`
}

type ToggleResult struct {
	ID      string `json:"id"`
	Watched bool   `json:"watched"`
}
