package httptransport

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/NastyaGoryachaya/crypto-tracker/internal/domain"
	derrors "github.com/NastyaGoryachaya/crypto-tracker/internal/errors"
	"github.com/labstack/echo/v4"
)

// parseFilterSpec - FilterSpec из query-параметров. Пустой параметр = граница не задана.
func parseFilterSpec(c echo.Context) (domain.FilterSpec, error) {
	spec := domain.FilterSpec{
		Query:     c.QueryParam("q"),
		SortBy:    domain.SortBy(strings.ToLower(strings.TrimSpace(c.QueryParam("sort_by")))),
		SortOrder: domain.SortOrder(strings.ToLower(strings.TrimSpace(c.QueryParam("sort_order")))),
	}

	var err error
	if spec.PriceMin, err = floatParam(c, "price_min"); err != nil {
		return domain.FilterSpec{}, err
	}
	if spec.PriceMax, err = floatParam(c, "price_max"); err != nil {
		return domain.FilterSpec{}, err
	}
	if spec.RankMin, err = intParam(c, "rank_min"); err != nil {
		return domain.FilterSpec{}, err
	}
	if spec.RankMax, err = intParam(c, "rank_max"); err != nil {
		return domain.FilterSpec{}, err
	}
	if spec.MarketCapMin, err = floatParam(c, "market_cap_min"); err != nil {
		return domain.FilterSpec{}, err
	}
	if spec.MarketCapMax, err = floatParam(c, "market_cap_max"); err != nil {
		return domain.FilterSpec{}, err
	}
	return spec, nil
}

func floatParam(c echo.Context, name string) (*float64, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: %s=%q", derrors.ErrBadRequest, name, raw)
	}
	return &v, nil
}

func intParam(c echo.Context, name string) (*int, error) {
	raw := strings.TrimSpace(c.QueryParam(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s=%q", derrors.ErrBadRequest, name, raw)
	}
	return &v, nil
}
