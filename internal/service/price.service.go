package service

import (
	"context"
	"database/sql"
	"sync"
	"time"

	"fincontrol/internal/db/models/postgres/public/model"
	"fincontrol/internal/domain"
	"fincontrol/internal/logger"
	"fincontrol/internal/repository"

	"github.com/shopspring/decimal"
)

/**

behavior - when the engine asks for a series, serve it from memory if a
recent fetch covered the same symbol/range. on a miss, hit the provider
and (when a db is configured) write the rows through to the asset_price
store, so a later session or a provider outage can fall back to it.

caching is a performance optimization only - a miss or an expired entry
is always transparent to the caller.

*/

const (
	priceCacheTtl    = time.Hour
	currencyCacheTtl = 24 * time.Hour
)

type PriceService interface {
	// ListPrices returns the close-price series for the range, or an
	// empty series when no data exists or the provider is down. End
	// nil means "today".
	ListPrices(ctx context.Context, symbol string, start time.Time, end *time.Time) domain.PriceSeries
	// GetNativeCurrency returns the currency the symbol trades in,
	// "USD" when unknown.
	GetNativeCurrency(ctx context.Context, symbol string) string
	HasHistory(ctx context.Context, symbol string, start time.Time) bool
	FirstAvailableMonth(ctx context.Context, symbol string) *time.Time
}

type cachedSeries struct {
	series   domain.PriceSeries
	loadedAt time.Time
}

type cachedCurrency struct {
	currency string
	loadedAt time.Time
}

type priceServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	AssetPriceRepository repository.AssetPriceRepository
	Db                   *sql.DB

	mu            *sync.RWMutex
	seriesCache   map[string]cachedSeries
	currencyCache map[string]cachedCurrency
	now           func() time.Time
}

func NewPriceService(db *sql.DB, marketDataRepository repository.MarketDataRepository, assetPriceRepository repository.AssetPriceRepository) PriceService {
	return &priceServiceHandler{
		MarketDataRepository: marketDataRepository,
		AssetPriceRepository: assetPriceRepository,
		Db:                   db,
		mu:                   &sync.RWMutex{},
		seriesCache:          map[string]cachedSeries{},
		currencyCache:        map[string]cachedCurrency{},
		now:                  time.Now,
	}
}

func seriesCacheKey(symbol string, start time.Time, end *time.Time) string {
	key := symbol + "|" + start.Format(time.DateOnly) + "|"
	if end != nil {
		key += end.Format(time.DateOnly)
	}
	return key
}

func (h *priceServiceHandler) getCachedSeries(key string) (domain.PriceSeries, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entry, ok := h.seriesCache[key]
	if !ok || h.now().Sub(entry.loadedAt) > priceCacheTtl {
		return nil, false
	}
	return entry.series, true
}

func (h *priceServiceHandler) setCachedSeries(key string, s domain.PriceSeries) {
	h.mu.Lock()
	h.seriesCache[key] = cachedSeries{series: s, loadedAt: h.now()}
	h.mu.Unlock()
}

func (h *priceServiceHandler) ListPrices(ctx context.Context, symbol string, start time.Time, end *time.Time) domain.PriceSeries {
	log := logger.FromContext(ctx)
	key := seriesCacheKey(symbol, start, end)
	if series, ok := h.getCachedSeries(key); ok {
		return series
	}

	series, err := h.MarketDataRepository.ListPrices(symbol, start, end)
	if err != nil {
		log.Warnf("provider fetch failed for %s: %s", symbol, err.Error())
		series = h.listFromStore(ctx, symbol, start, end)
		h.setCachedSeries(key, series)
		return series
	}

	h.setCachedSeries(key, series)
	h.storePrices(ctx, symbol, series)

	return series
}

// listFromStore serves a previously persisted range when the provider
// is unavailable. No db configured means an empty series.
func (h *priceServiceHandler) listFromStore(ctx context.Context, symbol string, start time.Time, end *time.Time) domain.PriceSeries {
	if h.AssetPriceRepository == nil || h.Db == nil {
		return domain.PriceSeries{}
	}
	e := h.now().UTC()
	if end != nil {
		e = *end
	}
	series, err := h.AssetPriceRepository.List(h.Db, symbol, start, e)
	if err != nil {
		logger.FromContext(ctx).Warnf("price store fallback failed for %s: %s", symbol, err.Error())
		return domain.PriceSeries{}
	}
	return series
}

func (h *priceServiceHandler) storePrices(ctx context.Context, symbol string, series domain.PriceSeries) {
	if h.AssetPriceRepository == nil || h.Db == nil || series.Empty() {
		return
	}
	models := []model.AssetPrice{}
	for _, p := range series {
		models = append(models, model.AssetPrice{
			Symbol:    symbol,
			Date:      p.Date,
			Price:     decimal.NewFromFloat(p.Price),
			CreatedAt: h.now().UTC(),
		})
	}
	if err := h.AssetPriceRepository.Add(h.Db, models); err != nil {
		// write-through is best effort
		logger.FromContext(ctx).Warnf("failed to persist prices for %s: %s", symbol, err.Error())
	}
}

func (h *priceServiceHandler) GetNativeCurrency(ctx context.Context, symbol string) string {
	h.mu.RLock()
	entry, ok := h.currencyCache[symbol]
	h.mu.RUnlock()
	if ok && h.now().Sub(entry.loadedAt) <= currencyCacheTtl {
		return entry.currency
	}

	currency := h.MarketDataRepository.GetNativeCurrency(symbol)

	h.mu.Lock()
	h.currencyCache[symbol] = cachedCurrency{currency: currency, loadedAt: h.now()}
	h.mu.Unlock()

	return currency
}

func (h *priceServiceHandler) HasHistory(ctx context.Context, symbol string, start time.Time) bool {
	return !h.ListPrices(ctx, symbol, start, nil).Empty()
}

func (h *priceServiceHandler) FirstAvailableMonth(ctx context.Context, symbol string) *time.Time {
	return h.MarketDataRepository.FirstAvailableDate(symbol)
}

// RecommendTickers lists liquid, long-history alternatives for a role,
// offered when a configured symbol has no usable data.
func RecommendTickers(role domain.AssetRole) []string {
	switch role {
	case domain.AssetRole_Equity:
		return []string{"VWRA.L", "VWCE.DE", "IWDA.AS", "VT", "ACWI"}
	case domain.AssetRole_Bond:
		return []string{"AGGU.L", "AGGH.MI", "BNDW", "IGLO.L", "IGLA.L"}
	case domain.AssetRole_Crypto:
		return []string{"BTC-USD", "ETH-USD"}
	}
	return []string{}
}
