package domain

import "time"

// CoinSnapshot - рыночный снимок одной монеты на момент загрузки.
// Стабильным между обновлениями считается только ID.
type CoinSnapshot struct {
	ID                    string    `json:"id"`     // bitcoin, ethereum
	Symbol                string    `json:"symbol"` // btc, eth
	Name                  string    `json:"name"`
	Image                 string    `json:"image,omitempty"`
	CurrentPrice          float64   `json:"current_price"`
	MarketCap             float64   `json:"market_cap"`
	MarketCapRank         int       `json:"market_cap_rank"`
	TotalVolume           float64   `json:"total_volume"`
	CirculatingSupply     float64   `json:"circulating_supply"`
	MaxSupply             *float64  `json:"max_supply,omitempty"`
	PriceChangePercent24h float64   `json:"price_change_percentage_24h"`
	PriceChangePercent7d  *float64  `json:"price_change_percentage_7d,omitempty"`
	PriceChangePercent30d *float64  `json:"price_change_percentage_30d,omitempty"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// PricePoint - одна точка графика: время и значение.
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// PriceHistory - история монеты за окно в днях
type PriceHistory struct {
	CoinID       string       `json:"coin_id"`
	Days         int          `json:"days"`
	Prices       []PricePoint `json:"prices"`
	MarketCaps   []PricePoint `json:"market_caps"`
	TotalVolumes []PricePoint `json:"total_volumes"`
}
