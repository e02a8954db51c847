package repository

import (
	"fmt"
	"time"

	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/db/models/sqlite/table"
	"papertrade/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
)

// StockRepository is the append-only transaction ledger. Sells are stored
// with negated qty and price, so a plain SUM(qty) nets the position and
// SUM(qty*price) nets the cost basis. Rows are never updated; the only
// delete is the bulk-import overwrite.
type StockRepository interface {
	Add(db qrm.DB, stock model.Stock) error
	ClearHoldings(db qrm.DB, username string) error
	SumHoldings(db qrm.DB, username, symbol string) (*float64, error)
	SumHoldingsByDate(db qrm.DB, username string, cutoff *time.Time) (map[string]float64, error)
}

type stockRepositoryHandler struct{}

func NewStockRepository() StockRepository {
	return stockRepositoryHandler{}
}

func (h stockRepositoryHandler) Add(db qrm.DB, stock model.Stock) error {
	t := table.Stocks

	query := t.INSERT(t.MutableColumns).MODEL(stock)
	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to record %s of %s for %s: %w", stock.Action, stock.Symbol, stock.Username, err)
	}

	return nil
}

func (h stockRepositoryHandler) ClearHoldings(db qrm.DB, username string) error {
	t := table.Stocks

	query := t.DELETE().WHERE(t.Username.EQ(sqlite.String(username)))
	if _, err := query.Exec(db); err != nil {
		return fmt.Errorf("failed to clear holdings for %s: %w", username, err)
	}

	return nil
}

// SumHoldings returns the net quantity held of one symbol, or nil when the
// user has no transactions for it.
func (h stockRepositoryHandler) SumHoldings(db qrm.DB, username, symbol string) (*float64, error) {
	t := table.Stocks

	query := t.SELECT(
		sqlite.SUMf(t.Qty).AS("total_qty"),
	).WHERE(
		sqlite.AND(
			t.Username.EQ(sqlite.String(username)),
			t.Symbol.EQ(sqlite.String(symbol)),
		),
	)

	out := struct {
		TotalQty *float64
	}{}
	if err := query.Query(db, &out); err != nil {
		return nil, fmt.Errorf("failed to sum holdings of %s for %s: %w", symbol, username, err)
	}

	return out.TotalQty, nil
}

// SumHoldingsByDate returns symbol -> net quantity over all transactions
// dated on or before the cutoff, or over the full ledger when cutoff is nil.
// Symbols whose net quantity sums to zero still appear in the result.
func (h stockRepositoryHandler) SumHoldingsByDate(db qrm.DB, username string, cutoff *time.Time) (map[string]float64, error) {
	t := table.Stocks

	var condition sqlite.BoolExpression = t.Username.EQ(sqlite.String(username))
	if cutoff != nil {
		condition = sqlite.AND(
			condition,
			t.Date.LT_EQ(sqlite.String(cutoff.Format(util.DateLayout))),
		)
	}

	query := t.SELECT(
		t.Symbol.AS("symbol"),
		sqlite.SUMf(t.Qty).AS("total_qty"),
	).WHERE(condition).GROUP_BY(t.Symbol)

	rows := []struct {
		Symbol   string
		TotalQty float64
	}{}
	if err := query.Query(db, &rows); err != nil {
		return nil, fmt.Errorf("failed to sum holdings for %s: %w", username, err)
	}

	out := map[string]float64{}
	for _, row := range rows {
		out[row.Symbol] = row.TotalQty
	}

	return out, nil
}
