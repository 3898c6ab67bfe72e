package service

import (
	"context"
	"fmt"
	"time"

	"fincontrol/internal/domain"
	"fincontrol/internal/logger"
)

// ConversionResult makes FX degradation explicit: Converted is false
// when the series comes back in its native currency because no rate
// series was available. Callers tolerate mixed-currency results rather
// than failing the run.
type ConversionResult struct {
	Series    domain.PriceSeries
	Converted bool
	Warning   string
}

type CurrencyService interface {
	Convert(ctx context.Context, series domain.PriceSeries, srcCurrency, dstCurrency string, start time.Time) ConversionResult
}

type currencyServiceHandler struct {
	PriceService PriceService
}

func NewCurrencyService(priceService PriceService) CurrencyService {
	return currencyServiceHandler{
		PriceService: priceService,
	}
}

// FxPair returns the provider symbol for a currency pair, empty when
// no conversion is needed.
func FxPair(src, dst string) string {
	if src == dst {
		return ""
	}
	return fmt.Sprintf("%s%s=X", src, dst)
}

func (h currencyServiceHandler) Convert(ctx context.Context, series domain.PriceSeries, srcCurrency, dstCurrency string, start time.Time) ConversionResult {
	if srcCurrency == dstCurrency || srcCurrency == "" || dstCurrency == "" || series.Empty() {
		return ConversionResult{Series: series, Converted: true}
	}

	pair := FxPair(srcCurrency, dstCurrency)
	fx := h.PriceService.ListPrices(ctx, pair, start, nil)
	if fx.Empty() {
		warning := fmt.Sprintf("FX unavailable for %s->%s (%s); values left unconverted", srcCurrency, dstCurrency, pair)
		logger.FromContext(ctx).Warn(warning)
		return ConversionResult{Series: series, Converted: false, Warning: warning}
	}

	// every price date gets a rate: forward-fill, then back-fill the
	// leading edge
	rates := fx.ReindexFillBoth(series.Dates())

	converted := make(domain.PriceSeries, len(series))
	for i, p := range series {
		converted[i] = domain.PricePoint{
			Date:  p.Date,
			Price: p.Price * rates[i],
		}
	}

	return ConversionResult{Series: converted, Converted: true}
}
