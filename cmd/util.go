package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"papertrade/api"
	"papertrade/internal"
	"papertrade/internal/db"
	"papertrade/internal/logger"
	"papertrade/internal/pricedata"
	"papertrade/internal/repository"
	"papertrade/internal/service"

	_ "github.com/mattn/go-sqlite3"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

// InitializeDependencies wires the whole service: config, the embedded
// sqlite store, the static price table, repositories and services. All
// state is constructed here and passed down explicitly.
func InitializeDependencies() (*api.ApiHandler, *internal.Config, error) {
	config, err := internal.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	dbConn, err := sql.Open("sqlite3", config.DbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db %s: %w", config.DbPath, err)
	}
	// sqlite allows one writer; serializing the pool keeps the
	// read-modify-write transactions in the trading service from
	// tripping SQLITE_BUSY
	dbConn.SetMaxOpenConns(1)

	if err := db.CreateTables(dbConn); err != nil {
		return nil, nil, err
	}

	points, err := pricedata.Load()
	if err != nil {
		return nil, nil, err
	}

	priceRepository := repository.NewPriceRepository(points)
	userRepository := repository.NewUserRepository()
	stockRepository := repository.NewStockRepository()

	userService := service.NewUserService(dbConn, userRepository)
	tradingService := service.NewTradingService(dbConn, userRepository, stockRepository, priceRepository)
	portfolioService := service.NewPortfolioService(dbConn, stockRepository, priceRepository)

	return &api.ApiHandler{
		Db:               dbConn,
		Logger:           logger.New(),
		UserService:      userService,
		TradingService:   tradingService,
		PortfolioService: portfolioService,
	}, config, nil
}
