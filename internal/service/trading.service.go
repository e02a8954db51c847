package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/domain"
	"papertrade/internal/logger"
	"papertrade/internal/repository"
	"papertrade/internal/util"

	"github.com/shopspring/decimal"
)

type TradeInput struct {
	Username string
	Symbol   string
	Date     time.Time
	Quantity float64
}

// TradeResult reports the cash side of a trade: Amount is the cost of a
// buy or the proceeds of a sell.
type TradeResult struct {
	Amount     float64
	NewBalance float64
}

type PortfolioRow struct {
	Date     time.Time
	Symbol   string
	Quantity float64
}

type TradingService interface {
	Buy(ctx context.Context, input TradeInput) (*TradeResult, error)
	Sell(ctx context.Context, input TradeInput) (*TradeResult, error)
	ImportPortfolio(ctx context.Context, username string, rows []PortfolioRow) error
}

type tradingServiceHandler struct {
	Db              *sql.DB
	UserRepository  repository.UserRepository
	StockRepository repository.StockRepository
	PriceRepository repository.PriceRepository
}

func NewTradingService(
	db *sql.DB,
	userRepository repository.UserRepository,
	stockRepository repository.StockRepository,
	priceRepository repository.PriceRepository,
) TradingService {
	return tradingServiceHandler{
		Db:              db,
		UserRepository:  userRepository,
		StockRepository: stockRepository,
		PriceRepository: priceRepository,
	}
}

// Buy validates the cost against the user's budget, then appends the ledger
// row and persists the new budget in one transaction. Trades require an
// exact historical date in the price table.
func (h tradingServiceHandler) Buy(ctx context.Context, input TradeInput) (*TradeResult, error) {
	log := logger.FromContext(ctx)

	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", domain.ErrInvalidInput)
	}

	price, err := h.PriceRepository.PriceOn(input.Symbol, input.Date)
	if err != nil {
		return nil, err
	}
	cost := decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(input.Quantity))

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin buy transaction: %w", err)
	}
	defer tx.Rollback()

	user, err := h.UserRepository.Get(tx, input.Username)
	if err != nil {
		return nil, err
	}

	budget := decimal.NewFromFloat(user.Budget)
	if cost.GreaterThan(budget) {
		return nil, fmt.Errorf("cost %s exceeds budget %s: %w", cost, budget, domain.ErrInsufficientFunds)
	}

	err = h.StockRepository.Add(tx, model.Stock{
		Date:     input.Date.Format(util.DateLayout),
		Username: input.Username,
		Symbol:   input.Symbol,
		Action:   string(domain.TradeActionBuy),
		Qty:      input.Quantity,
		Price:    price,
	})
	if err != nil {
		return nil, err
	}

	newBalance := budget.Sub(cost)
	if err := h.UserRepository.UpdateBudget(tx, input.Username, newBalance.InexactFloat64()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit buy: %w", err)
	}

	log.Infow("bought stock",
		"username", input.Username,
		"symbol", input.Symbol,
		"quantity", input.Quantity,
		"cost", cost.InexactFloat64(),
	)

	return &TradeResult{
		Amount:     cost.InexactFloat64(),
		NewBalance: newBalance.InexactFloat64(),
	}, nil
}

// Sell validates against current net holdings, then appends the ledger row
// with negated quantity and price so summation nets the position, and
// credits the proceeds - all in one transaction.
func (h tradingServiceHandler) Sell(ctx context.Context, input TradeInput) (*TradeResult, error) {
	log := logger.FromContext(ctx)

	if input.Quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive: %w", domain.ErrInvalidInput)
	}

	price, err := h.PriceRepository.PriceOn(input.Symbol, input.Date)
	if err != nil {
		return nil, err
	}
	proceeds := decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(input.Quantity))

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin sell transaction: %w", err)
	}
	defer tx.Rollback()

	user, err := h.UserRepository.Get(tx, input.Username)
	if err != nil {
		return nil, err
	}

	holdings, err := h.StockRepository.SumHoldings(tx, input.Username, input.Symbol)
	if err != nil {
		return nil, err
	}
	if holdings == nil || *holdings < input.Quantity {
		return nil, fmt.Errorf("cannot sell %v of %s: %w", input.Quantity, input.Symbol, domain.ErrInsufficientHoldings)
	}

	err = h.StockRepository.Add(tx, model.Stock{
		Date:     input.Date.Format(util.DateLayout),
		Username: input.Username,
		Symbol:   input.Symbol,
		Action:   string(domain.TradeActionSell),
		Qty:      -input.Quantity,
		Price:    -price,
	})
	if err != nil {
		return nil, err
	}

	newBalance := decimal.NewFromFloat(user.Budget).Add(proceeds)
	if err := h.UserRepository.UpdateBudget(tx, input.Username, newBalance.InexactFloat64()); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit sell: %w", err)
	}

	log.Infow("sold stock",
		"username", input.Username,
		"symbol", input.Symbol,
		"quantity", input.Quantity,
		"proceeds", proceeds.InexactFloat64(),
	)

	return &TradeResult{
		Amount:     proceeds.InexactFloat64(),
		NewBalance: newBalance.InexactFloat64(),
	}, nil
}

// ImportPortfolio replaces the user's entire ledger with buys derived from
// the uploaded rows, pricing each row at the nearest table date. The clear
// and all inserts share one transaction, so a bad row rolls back the whole
// import and the prior portfolio survives.
func (h tradingServiceHandler) ImportPortfolio(ctx context.Context, username string, rows []PortfolioRow) error {
	log := logger.FromContext(ctx)

	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin import transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := h.UserRepository.Get(tx, username); err != nil {
		return err
	}

	if err := h.StockRepository.ClearHoldings(tx, username); err != nil {
		return err
	}

	for _, row := range rows {
		price, err := h.PriceRepository.NearestPrice(row.Symbol, row.Date)
		if err != nil {
			return err
		}

		err = h.StockRepository.Add(tx, model.Stock{
			Date:     row.Date.Format(util.DateLayout),
			Username: username,
			Symbol:   row.Symbol,
			Action:   string(domain.TradeActionBuy),
			Qty:      row.Quantity,
			Price:    price,
		})
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	log.Infow("imported portfolio", "username", username, "rows", len(rows))

	return nil
}
