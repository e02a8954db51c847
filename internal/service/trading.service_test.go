package service

import (
	"context"
	"database/sql"
	"testing"

	"papertrade/internal/db"
	"papertrade/internal/db/models/sqlite/model"
	"papertrade/internal/domain"
	"papertrade/internal/pricedata"
	"papertrade/internal/repository"
	"papertrade/internal/util"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	Db               *sql.DB
	UserRepository   repository.UserRepository
	StockRepository  repository.StockRepository
	PriceRepository  repository.PriceRepository
	UserService      UserService
	TradingService   TradingService
	PortfolioService PortfolioService
}

func newTestDeps(t *testing.T) testDeps {
	t.Helper()

	dbConn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	dbConn.SetMaxOpenConns(1)
	t.Cleanup(func() { dbConn.Close() })
	require.NoError(t, db.CreateTables(dbConn))

	points, err := pricedata.Load()
	require.NoError(t, err)

	userRepository := repository.NewUserRepository()
	stockRepository := repository.NewStockRepository()
	priceRepository := repository.NewPriceRepository(points)

	return testDeps{
		Db:               dbConn,
		UserRepository:   userRepository,
		StockRepository:  stockRepository,
		PriceRepository:  priceRepository,
		UserService:      NewUserService(dbConn, userRepository),
		TradingService:   NewTradingService(dbConn, userRepository, stockRepository, priceRepository),
		PortfolioService: NewPortfolioService(dbConn, stockRepository, priceRepository),
	}
}

func (d testDeps) createUser(t *testing.T, username string, budget float64) {
	t.Helper()
	require.NoError(t, d.UserRepository.Create(d.Db, model.User{
		Username: username,
		First:    "John",
		Last:     "Anderson",
		Budget:   budget,
	}))
}

func Test_tradingService_Buy(t *testing.T) {
	ctx := context.Background()

	t.Run("debits budget and credits holdings", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		result, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek",
			Symbol:   "WYNN",
			Date:     util.NewDate(2017, 12, 27),
			Quantity: 20,
		})
		require.NoError(t, err)
		require.Equal(t, 3325.2, result.Amount)
		require.Equal(t, 96674.8, result.NewBalance)

		user, err := deps.UserRepository.Get(deps.Db, "sontek")
		require.NoError(t, err)
		require.Equal(t, 96674.8, user.Budget)

		holdings, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "WYNN")
		require.NoError(t, err)
		require.NotNil(t, holdings)
		require.Equal(t, float64(20), *holdings)
	})

	t.Run("insufficient funds", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek",
			Symbol:   "WYNN",
			Date:     util.NewDate(2017, 12, 27),
			Quantity: 100000,
		})
		require.ErrorIs(t, err, domain.ErrInsufficientFunds)

		// nothing committed
		holdings, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "WYNN")
		require.NoError(t, err)
		require.Nil(t, holdings)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := newTestDeps(t)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "nobody",
			Symbol:   "WYNN",
			Date:     util.NewDate(2017, 12, 27),
			Quantity: 1,
		})
		require.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("trades require an exact table date", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek",
			Symbol:   "WYNN",
			Date:     util.NewDate(2017, 12, 31),
			Quantity: 1,
		})
		require.ErrorIs(t, err, domain.ErrPriceNotFound)
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek",
			Symbol:   "WYNN",
			Date:     util.NewDate(2017, 12, 27),
			Quantity: -5,
		})
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func Test_tradingService_Sell(t *testing.T) {
	ctx := context.Background()

	t.Run("buy then sell restores the budget exactly", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek", Symbol: "WYNN", Date: util.NewDate(2017, 12, 27), Quantity: 20,
		})
		require.NoError(t, err)

		result, err := deps.TradingService.Sell(ctx, TradeInput{
			Username: "sontek", Symbol: "WYNN", Date: util.NewDate(2017, 12, 27), Quantity: 20,
		})
		require.NoError(t, err)
		require.Equal(t, 3325.2, result.Amount)
		require.Equal(t, float64(100000), result.NewBalance)

		holdings, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "WYNN")
		require.NoError(t, err)
		require.NotNil(t, holdings)
		require.Equal(t, float64(0), *holdings)
	})

	t.Run("cannot sell more than held, regardless of budget", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Sell(ctx, TradeInput{
			Username: "sontek", Symbol: "WYNN", Date: util.NewDate(2017, 12, 27), Quantity: 20,
		})
		require.ErrorIs(t, err, domain.ErrInsufficientHoldings)
	})

	t.Run("partial sells net the position", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek", Symbol: "ACN", Date: util.NewDate(2017, 6, 26), Quantity: 20,
		})
		require.NoError(t, err)

		_, err = deps.TradingService.Sell(ctx, TradeInput{
			Username: "sontek", Symbol: "ACN", Date: util.NewDate(2017, 6, 26), Quantity: 10,
		})
		require.NoError(t, err)

		holdings, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "ACN")
		require.NoError(t, err)
		require.NotNil(t, holdings)
		require.Equal(t, float64(10), *holdings)
	})
}

func Test_tradingService_ImportPortfolio(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces prior holdings wholesale", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek", Symbol: "WYNN", Date: util.NewDate(2017, 12, 27), Quantity: 20,
		})
		require.NoError(t, err)

		err = deps.TradingService.ImportPortfolio(ctx, "sontek", []PortfolioRow{
			{Date: util.NewDate(2017, 1, 30), Symbol: "AAPL", Quantity: 20},
			{Date: util.NewDate(2017, 1, 31), Symbol: "ADBE", Quantity: 25},
		})
		require.NoError(t, err)

		wynn, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "WYNN")
		require.NoError(t, err)
		require.Nil(t, wynn)

		aapl, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "AAPL")
		require.NoError(t, err)
		require.NotNil(t, aapl)
		require.Equal(t, float64(20), *aapl)
	})

	t.Run("bad row rolls back the whole import", func(t *testing.T) {
		deps := newTestDeps(t)
		deps.createUser(t, "sontek", 100000)

		_, err := deps.TradingService.Buy(ctx, TradeInput{
			Username: "sontek", Symbol: "WYNN", Date: util.NewDate(2017, 12, 27), Quantity: 20,
		})
		require.NoError(t, err)

		err = deps.TradingService.ImportPortfolio(ctx, "sontek", []PortfolioRow{
			{Date: util.NewDate(2017, 1, 30), Symbol: "AAPL", Quantity: 20},
			{Date: util.NewDate(2017, 1, 30), Symbol: "NOTREAL", Quantity: 5},
		})
		require.ErrorIs(t, err, domain.ErrPriceNotFound)

		// the prior portfolio survives
		wynn, err := deps.StockRepository.SumHoldings(deps.Db, "sontek", "WYNN")
		require.NoError(t, err)
		require.NotNil(t, wynn)
		require.Equal(t, float64(20), *wynn)
	})
}
