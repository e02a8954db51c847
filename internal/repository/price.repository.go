package repository

import (
	"fmt"
	"sort"
	"time"

	"papertrade/internal/domain"
	"papertrade/internal/util"
)

// PriceRepository serves the static reference price table. It is built once
// at startup and read-only afterwards, so lookups are safe to share across
// requests without locking.
type PriceRepository interface {
	PriceOn(symbol string, date time.Time) (float64, error)
	NearestPrice(symbol string, date time.Time) (float64, error)
}

type priceRepositoryHandler struct {
	// symbol -> date (YYYY-MM-DD) -> daily low
	prices map[string]map[string]float64
	// distinct dates across all symbols, ascending
	dates []time.Time
}

func NewPriceRepository(points []domain.PricePoint) PriceRepository {
	prices := map[string]map[string]float64{}
	dateSet := map[string]time.Time{}

	for _, p := range points {
		key := p.Date.Format(util.DateLayout)
		if _, ok := prices[p.Symbol]; !ok {
			prices[p.Symbol] = map[string]float64{}
		}
		prices[p.Symbol][key] = p.Low
		dateSet[key] = p.Date
	}

	dates := make([]time.Time, 0, len(dateSet))
	for _, d := range dateSet {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	return priceRepositoryHandler{
		prices: prices,
		dates:  dates,
	}
}

// PriceOn requires an exact (symbol, date) row in the table.
func (h priceRepositoryHandler) PriceOn(symbol string, date time.Time) (float64, error) {
	if byDate, ok := h.prices[symbol]; ok {
		if low, ok := byDate[date.Format(util.DateLayout)]; ok {
			return low, nil
		}
	}

	return 0, fmt.Errorf("no price for %s on %s: %w", symbol, date.Format(util.DateLayout), domain.ErrPriceNotFound)
}

// NearestPrice resolves the table date closest to the requested date by
// absolute day distance, taken across every symbol's dates, then requires
// an exact row for the symbol on that date. Equidistant candidates resolve
// to the earlier date.
func (h priceRepositoryHandler) NearestPrice(symbol string, date time.Time) (float64, error) {
	if len(h.dates) == 0 {
		return 0, fmt.Errorf("price table is empty: %w", domain.ErrPriceNotFound)
	}

	nearest := h.dates[0]
	best := util.DaysApart(h.dates[0], date)
	for _, d := range h.dates[1:] {
		if dist := util.DaysApart(d, date); dist < best {
			nearest = d
			best = dist
		}
	}

	return h.PriceOn(symbol, nearest)
}
