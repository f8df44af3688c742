package api_client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/config"
	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
)

type Client struct {
	cfg        config.CoinGeckoConfig
	httpClient *http.Client
	now        func() time.Time
}

// marketResponse - структура для парсинга ответа /coins/markets
type marketResponse struct {
	ID                   string   `json:"id"`
	Symbol               string   `json:"symbol"`
	Name                 string   `json:"name"`
	Image                string   `json:"image"`
	CurrentPrice         float64  `json:"current_price"`
	MarketCap            float64  `json:"market_cap"`
	MarketCapRank        *int     `json:"market_cap_rank"`
	TotalVolume          float64  `json:"total_volume"`
	CirculatingSupply    float64  `json:"circulating_supply"`
	MaxSupply            *float64 `json:"max_supply"`
	PriceChange24h       float64  `json:"price_change_percentage_24h"`
	PriceChange7dInCurr  *float64 `json:"price_change_percentage_7d_in_currency"`
	PriceChange30dInCurr *float64 `json:"price_change_percentage_30d_in_currency"`
	LastUpdated          string   `json:"last_updated"`
}

// marketChartResponse - ответ /coins/{id}/market_chart: пары [ms, value]
type marketChartResponse struct {
	Prices       [][2]float64 `json:"prices"`
	MarketCaps   [][2]float64 `json:"market_caps"`
	TotalVolumes [][2]float64 `json:"total_volumes"`
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg config.CoinGeckoConfig) *Client {
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		now: func() time.Time { return time.Now().UTC() },
	}
}

// FetchMarkets - топ монет по капитализации
func (c *Client) FetchMarkets(ctx context.Context, limit int) ([]domain.CoinSnapshot, error) {
	if limit <= 0 {
		limit = c.cfg.Limit
	}
	if limit <= 0 {
		limit = 100
	}
	q := c.marketsQuery()
	q.Set("per_page", strconv.Itoa(limit))

	var data []marketResponse
	if err := c.get(ctx, []string{"coins", "markets"}, q, &data); err != nil {
		return nil, err
	}

	fetchedAt := c.now()
	out := make([]domain.CoinSnapshot, 0, len(data))
	for _, d := range data {
		out = append(out, toSnapshot(d, fetchedAt))
	}
	return out, nil
}

// FetchCoin - один снимок по id; пустой ответ = монета не найдена
func (c *Client) FetchCoin(ctx context.Context, id string) (domain.CoinSnapshot, error) {
	q := c.marketsQuery()
	q.Set("ids", id)
	q.Set("per_page", "1")

	var data []marketResponse
	if err := c.get(ctx, []string{"coins", "markets"}, q, &data); err != nil {
		return domain.CoinSnapshot{}, err
	}
	if len(data) == 0 {
		return domain.CoinSnapshot{}, fmt.Errorf("coin %q: %w", id, errs.ErrCoinNotFound)
	}
	return toSnapshot(data[0], c.now()), nil
}

// FetchHistory - история цены за days дней; до 7 дней почасовая, дальше дневная
func (c *Client) FetchHistory(ctx context.Context, id string, days int) (domain.PriceHistory, error) {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(c.cfg.Currency))
	q.Set("days", strconv.Itoa(days))
	q.Set("interval", historyInterval(days))

	var data marketChartResponse
	if err := c.get(ctx, []string{"coins", id, "market_chart"}, q, &data); err != nil {
		return domain.PriceHistory{}, err
	}
	return domain.PriceHistory{
		CoinID:       id,
		Days:         days,
		Prices:       toPoints(data.Prices),
		MarketCaps:   toPoints(data.MarketCaps),
		TotalVolumes: toPoints(data.TotalVolumes),
	}, nil
}

func historyInterval(days int) string {
	if days <= 7 {
		return "hourly"
	}
	return "daily"
}

func (c *Client) marketsQuery() url.Values {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(c.cfg.Currency))
	q.Set("order", "market_cap_desc")
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", "24h,7d,30d")
	return q
}

func (c *Client) get(ctx context.Context, path []string, q url.Values, dst any) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u = u.JoinPath(path...)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	ua := c.cfg.UserAgent
	if ua == "" {
		ua = "crypto-tracker/1.0 (+https://github.com/NastyaGoryachaya/crypto-tracker)"
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("request failed: %s: %w", resp.Status, errs.ErrCoinNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func toSnapshot(d marketResponse, fetchedAt time.Time) domain.CoinSnapshot {
	s := domain.CoinSnapshot{
		ID:                    d.ID,
		Symbol:                d.Symbol,
		Name:                  d.Name,
		Image:                 d.Image,
		CurrentPrice:          d.CurrentPrice,
		MarketCap:             d.MarketCap,
		TotalVolume:           d.TotalVolume,
		CirculatingSupply:     d.CirculatingSupply,
		MaxSupply:             d.MaxSupply,
		PriceChangePercent24h: d.PriceChange24h,
		PriceChangePercent7d:  d.PriceChange7dInCurr,
		PriceChangePercent30d: d.PriceChange30dInCurr,
		UpdatedAt:             fetchedAt,
	}
	// у новых монет ранга может не быть
	if d.MarketCapRank != nil {
		s.MarketCapRank = *d.MarketCapRank
	}
	// предпочтительно время API; fallback на время загрузки
	if ts, err := time.Parse(time.RFC3339, d.LastUpdated); err == nil {
		s.UpdatedAt = ts.UTC()
	}
	return s
}

func toPoints(raw [][2]float64) []domain.PricePoint {
	out := make([]domain.PricePoint, 0, len(raw))
	for _, p := range raw {
		out = append(out, domain.PricePoint{
			Timestamp: time.UnixMilli(int64(p[0])).UTC(),
			Value:     p[1],
		})
	}
	return out
}
