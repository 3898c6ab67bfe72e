package repository

import (
	"database/sql"
	"fmt"
	"time"

	"fincontrol/internal/db/models/postgres/public/model"
	. "fincontrol/internal/db/models/postgres/public/table"
	"fincontrol/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

// AssetPriceRepository persists fetched close prices so a session (or a
// lambda cold start) doesn't have to re-hit the market data provider
// for ranges it has already seen. It's a cache tier - the provider
// stays the source of truth.
type AssetPriceRepository interface {
	Add(db *sql.DB, prices []model.AssetPrice) error
	List(db *sql.DB, symbol string, start, end time.Time) (domain.PriceSeries, error)
}

func NewAssetPriceRepository() AssetPriceRepository {
	return AssetPriceRepositoryHandler{}
}

type AssetPriceRepositoryHandler struct{}

func (h AssetPriceRepositoryHandler) Add(db *sql.DB, prices []model.AssetPrice) error {
	if len(prices) == 0 {
		return nil
	}
	query := AssetPrice.
		INSERT(AssetPrice.MutableColumns).
		MODELS(prices).
		ON_CONFLICT(
			AssetPrice.Symbol, AssetPrice.Date,
		).DO_UPDATE(
		SET(
			AssetPrice.Price.SET(AssetPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to add asset prices to db: %w", err)
	}

	return nil
}

func (h AssetPriceRepositoryHandler) List(db *sql.DB, symbol string, start, end time.Time) (domain.PriceSeries, error) {
	minDate := DateT(start)
	maxDate := DateT(end)
	query := AssetPrice.
		SELECT(AssetPrice.AllColumns).
		WHERE(
			AND(
				AssetPrice.Symbol.EQ(String(symbol)),
				AssetPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(AssetPrice.Date.ASC())

	result := []model.AssetPrice{}
	err := query.Query(db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	points := []domain.PricePoint{}
	for _, p := range result {
		points = append(points, domain.PricePoint{
			Date:  p.Date,
			Price: p.Price.InexactFloat64(),
		})
	}

	return domain.NewPriceSeries(points), nil
}
