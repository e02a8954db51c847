package service

import (
	"context"
	"database/sql"
	"time"

	"papertrade/internal/logger"
	"papertrade/internal/repository"
	"papertrade/internal/util"

	"github.com/shopspring/decimal"
)

type PortfolioService interface {
	Valuation(ctx context.Context, username string, asOf *time.Time) (map[string]string, error)
}

type portfolioServiceHandler struct {
	Db              *sql.DB
	StockRepository repository.StockRepository
	PriceRepository repository.PriceRepository
}

func NewPortfolioService(
	db *sql.DB,
	stockRepository repository.StockRepository,
	priceRepository repository.PriceRepository,
) PortfolioService {
	return portfolioServiceHandler{
		Db:              db,
		StockRepository: stockRepository,
		PriceRepository: priceRepository,
	}
}

// Valuation prices the user's net holdings as of the given date, using the
// nearest price-table date. When asOf is nil the full ledger is valued at
// today's nearest price. Symbols the grouping returns with zero net
// quantity are kept in the output as "0.00".
func (h portfolioServiceHandler) Valuation(ctx context.Context, username string, asOf *time.Time) (map[string]string, error) {
	log := logger.FromContext(ctx)

	holdings, err := h.StockRepository.SumHoldingsByDate(h.Db, username, asOf)
	if err != nil {
		return nil, err
	}

	valuationDate := time.Now().UTC()
	if asOf != nil {
		valuationDate = *asOf
	}
	valuationDate = util.NewDate(valuationDate.Year(), int(valuationDate.Month()), valuationDate.Day())

	values := map[string]string{}
	for symbol, quantity := range holdings {
		price, err := h.PriceRepository.NearestPrice(symbol, valuationDate)
		if err != nil {
			return nil, err
		}

		value := decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(price))
		values[symbol] = value.StringFixed(2)
	}

	log.Infow("valued portfolio",
		"username", username,
		"asOf", valuationDate.Format(util.DateLayout),
		"symbols", len(values),
	)

	return values, nil
}
