package app

import (
	"context"
	"time"

	"fincontrol/internal/calculator"
	"fincontrol/internal/domain"
	"fincontrol/internal/service"
)

type SimulationHandler struct {
	PriceService    service.PriceService
	CurrencyService service.CurrencyService
}

type SimulationInput struct {
	Assets              []domain.Asset
	MonthlyContribution float64
	// RebalanceMonths is the rebalancing period in ticks; 0 disables
	// rebalancing entirely.
	RebalanceMonths int
	Start           time.Time
	// End nil means "today".
	End             *time.Time
	DisplayCurrency string
}

type SimulationResult struct {
	Ledger       domain.Ledger
	Stats        calculator.PortfolioStatsResult
	Hhi          float64
	EffectiveN   float64
	RiskLevel    calculator.RiskLevel
	TrendSignals map[string]domain.TrendSignal
	Warnings     []string
	FinalValue   float64
	Contributed  float64
}

// MissingHistory returns the configured symbols that have no usable
// observations from the start date. Callers surface this as a "can't
// simulate" outcome before running the engine; Run itself still
// produces a best-effort result if invoked anyway.
func (h SimulationHandler) MissingHistory(ctx context.Context, assets []domain.Asset, start time.Time) []string {
	missing := []string{}
	for _, a := range assets {
		if !h.PriceService.HasHistory(ctx, a.Symbol, start) {
			missing = append(missing, a.Symbol)
		}
	}
	return missing
}

// Run reconstructs the month-by-month DCA portfolio. All-empty price
// data is the defined "insufficient data" outcome: an empty ledger and
// a nil error, for the caller to interpret.
func (h SimulationHandler) Run(ctx context.Context, in SimulationInput) (*SimulationResult, error) {
	result := &SimulationResult{
		TrendSignals: map[string]domain.TrendSignal{},
	}

	assets := make([]domain.Asset, len(in.Assets))
	copy(assets, in.Assets)

	converted := map[string]domain.PriceSeries{}
	for i, a := range assets {
		if a.Currency == "" {
			assets[i].Currency = h.PriceService.GetNativeCurrency(ctx, a.Symbol)
		}

		native := h.PriceService.ListPrices(ctx, a.Symbol, in.Start, in.End)
		if native.Empty() {
			converted[a.Symbol] = native
			continue
		}

		conv := h.CurrencyService.Convert(ctx, native, assets[i].Currency, in.DisplayCurrency, in.Start)
		if conv.Warning != "" {
			result.Warnings = append(result.Warnings, conv.Warning)
		}
		converted[a.Symbol] = conv.Series
	}

	seriesList := make([]domain.PriceSeries, 0, len(assets))
	for _, a := range assets {
		seriesList = append(seriesList, converted[a.Symbol])
	}

	grid := domain.MonthlyGrid(seriesList)
	if len(grid) == 0 {
		return result, nil
	}

	aligned := map[string][]float64{}
	for _, a := range assets {
		aligned[a.Symbol] = converted[a.Symbol].Reindex(grid)
	}

	result.Ledger = runLedger(assets, aligned, grid, in.MonthlyContribution, in.RebalanceMonths)
	result.Stats = calculator.PortfolioStats(result.Ledger)

	weights := map[string]float64{}
	for _, a := range assets {
		weights[a.Symbol] = a.Weight
	}
	result.Hhi, result.EffectiveN = calculator.Concentration(weights)
	result.RiskLevel = calculator.ClassifyRiskLevel(result.Stats.AnnualizedVolatility, result.Stats.MaxDrawdown)

	// trend signals classify each asset on its own daily series, in
	// display currency - they never feed back into the engine
	for _, a := range assets {
		result.TrendSignals[a.Symbol] = calculator.TrendSignal(converted[a.Symbol])
	}

	result.FinalValue = result.Ledger[len(result.Ledger)-1].Total
	result.Contributed = float64(len(result.Ledger)) * in.MonthlyContribution

	return result, nil
}

// runLedger is the simulation fold: one transition per grid tick.
//
// Contribution cash that cannot be allocated (asset priced <= 0 or not
// yet quoted at that tick) stays as idle cash. On rebalance the cash
// balance is swept to zero into the target allocation - including any
// idle remnant from those months. That full sweep mirrors the product
// behavior and is intentional.
func runLedger(assets []domain.Asset, prices map[string][]float64, grid []time.Time, monthlyContribution float64, rebalanceMonths int) domain.Ledger {
	shares := map[string]float64{}
	cash := 0.0
	monthsSinceRebalance := 0

	ledger := make(domain.Ledger, 0, len(grid))

	for i, d := range grid {
		cash += monthlyContribution

		for _, a := range assets {
			px := prices[a.Symbol][i]
			if px > 0 {
				alloc := monthlyContribution * a.Weight
				shares[a.Symbol] += alloc / px
				cash -= alloc
			}
		}

		monthsSinceRebalance++
		portValue := cash
		values := map[string]float64{}
		for _, a := range assets {
			px := prices[a.Symbol][i]
			v := 0.0
			if px > 0 {
				v = shares[a.Symbol] * px
			}
			values[a.Symbol] = v
			portValue += v
		}

		if rebalanceMonths > 0 && monthsSinceRebalance >= rebalanceMonths && portValue > 0 {
			for _, a := range assets {
				px := prices[a.Symbol][i]
				if px > 0 {
					diff := a.Weight*portValue - values[a.Symbol]
					shares[a.Symbol] += diff / px
				}
			}
			cash = 0
			monthsSinceRebalance = 0

			portValue = cash
			for _, a := range assets {
				px := prices[a.Symbol][i]
				v := 0.0
				if px > 0 {
					v = shares[a.Symbol] * px
				}
				values[a.Symbol] = v
				portValue += v
			}
		}

		roleValues := map[domain.AssetRole]float64{}
		for _, a := range assets {
			roleValues[a.Role] += values[a.Symbol]
		}
		ledger = append(ledger, domain.LedgerRow{
			Date:   d,
			Cash:   cash,
			Values: roleValues,
			Total:  portValue,
		})
	}

	return ledger
}
