package cmd

import (
	"database/sql"
	"fmt"
	"log"

	"fincontrol/api"
	"fincontrol/internal"
	"fincontrol/internal/app"
	"fincontrol/internal/repository"
	"fincontrol/internal/service"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := internal.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	// the db is an optional cache tier for fetched prices - without
	// it everything is served from the provider and in-memory caches
	var dbConn *sql.DB
	var assetPriceRepository repository.AssetPriceRepository
	if secrets.Db != nil {
		dbConn, err = sql.Open("postgres", secrets.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		assetPriceRepository = repository.NewAssetPriceRepository()
	}

	marketDataRepository := repository.NewYahooRepository()
	priceService := service.NewPriceService(dbConn, marketDataRepository, assetPriceRepository)
	currencyService := service.NewCurrencyService(priceService)

	simulationHandler := app.SimulationHandler{
		PriceService:    priceService,
		CurrencyService: currencyService,
	}

	apiHandler := &api.ApiHandler{
		Db:                dbConn,
		SimulationHandler: simulationHandler,
		PriceService:      priceService,
	}

	return apiHandler, nil
}
