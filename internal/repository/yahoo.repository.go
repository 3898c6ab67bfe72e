package repository

import (
	"fmt"
	"strings"
	"time"

	"fincontrol/internal/domain"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// MarketDataRepository is the external provider boundary: historical
// close prices for a symbol/date-range plus the symbol's native
// currency. A symbol with no data in range yields an empty series and
// a nil error - only transport faults surface as errors.
type MarketDataRepository interface {
	ListPrices(symbol string, start time.Time, end *time.Time) (domain.PriceSeries, error)
	GetNativeCurrency(symbol string) string
	FirstAvailableDate(symbol string) *time.Time
}

func NewYahooRepository() MarketDataRepository {
	return YahooRepositoryHandler{}
}

type YahooRepositoryHandler struct{}

func (h YahooRepositoryHandler) ListPrices(symbol string, start time.Time, end *time.Time) (domain.PriceSeries, error) {
	e := time.Now().UTC()
	if end != nil {
		e = *end
	}
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&e),
		Symbol:   strings.TrimSpace(symbol),
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	points := []domain.PricePoint{}
	for iter.Next() {
		bar := iter.Bar()
		points = append(points, domain.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Price: bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		if len(points) == 0 {
			return domain.PriceSeries{}, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
		}
		// partial result beats nothing - downstream treats the series
		// as best-effort anyway
	}

	return domain.NewPriceSeries(points), nil
}

// GetNativeCurrency resolves the currency a symbol trades in. Two
// lookups before giving up: the quote endpoint, then the chart
// metadata. Unknown means USD.
func (h YahooRepositoryHandler) GetNativeCurrency(symbol string) string {
	q, err := quote.Get(strings.TrimSpace(symbol))
	if err == nil && q != nil && q.CurrencyID != "" {
		return q.CurrencyID
	}

	now := time.Now().UTC()
	start := now.AddDate(0, -1, 0)
	iter := chart.Get(&chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   strings.TrimSpace(symbol),
		Interval: datetime.OneDay,
	})
	for iter.Next() {
	}
	if iter.Err() == nil {
		if cur := iter.Meta().Currency; cur != "" {
			return cur
		}
	}

	return "USD"
}

// FirstAvailableDate returns the date of the symbol's earliest monthly
// candle, or nil when the symbol has no history at all. Used to
// suggest a workable start date when a requested range comes up empty.
func (h YahooRepositoryHandler) FirstAvailableDate(symbol string) *time.Time {
	start := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now().UTC()
	iter := chart.Get(&chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   strings.TrimSpace(symbol),
		Interval: datetime.OneMonth,
	})
	if iter.Next() {
		d := time.Unix(int64(iter.Bar().Timestamp), 0).UTC()
		first := time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
		return &first
	}
	return nil
}
