package calculator

import (
	"math"

	"fincontrol/internal/domain"

	"github.com/montanaflynn/stats"
)

type PortfolioStatsResult struct {
	Cagr                 float64
	AnnualizedVolatility float64
	MaxDrawdown          float64
	SharpeRatio          float64
}

// PortfolioStats derives the four performance/risk scalars from a
// completed ledger's total-value column. Fewer than two ticks is the
// defined degenerate case: all four come back zero, never an error.
//
// Annualization assumes the ledger cadence is monthly (sqrt(12) on
// volatility, x12 on mean return); a different grid cadence would need
// a different factor.
func PortfolioStats(ledger domain.Ledger) PortfolioStatsResult {
	if len(ledger) < 2 {
		return PortfolioStatsResult{}
	}

	totals := ledger.Totals()
	returns := make([]float64, 0, len(totals)-1)
	for i := 1; i < len(totals); i++ {
		returns = append(returns, (totals[i]-totals[i-1])/totals[i-1])
	}

	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return PortfolioStatsResult{}
	}
	// sample stdev of a single return is NaN, not an error - the
	// two-tick ledger is a defined zero-volatility case
	if math.IsNaN(stdev) {
		stdev = 0
	}
	mean, err := stats.Mean(returns)
	if err != nil {
		return PortfolioStatsResult{}
	}

	vol := stdev * math.Sqrt(12)

	dates := ledger.Dates()
	years := dates[len(dates)-1].Sub(dates[0]).Hours() / 24 / 365.25
	cagr := 0.0
	if years > 0 {
		cagr = math.Pow(totals[len(totals)-1]/totals[0], 1/years) - 1
	}

	sharpe := 0.0
	if vol > 0 {
		// zero risk-free rate assumed
		sharpe = (mean * 12) / vol
	}

	return PortfolioStatsResult{
		Cagr:                 cagr,
		AnnualizedVolatility: vol,
		MaxDrawdown:          maxDrawdown(totals),
		SharpeRatio:          sharpe,
	}
}

// maxDrawdown is the minimum over time of value/runningMax - 1. Always
// <= 0; 0 for a monotonically non-decreasing series.
func maxDrawdown(totals []float64) float64 {
	runningMax := totals[0]
	minDd := 0.0
	for _, v := range totals {
		if v > runningMax {
			runningMax = v
		}
		dd := v/runningMax - 1
		if dd < minDd {
			minDd = dd
		}
	}
	return minDd
}

// Concentration computes the Herfindahl-Hirschman Index over the
// normalized target weights, plus the effective asset count 1/HHI.
// Negative weights clamp to zero before normalizing; all-nonpositive
// weights define both as zero.
func Concentration(weights map[string]float64) (hhi, effectiveN float64) {
	sum := 0.0
	clamped := make([]float64, 0, len(weights))
	for _, w := range weights {
		if w < 0 {
			w = 0
		}
		clamped = append(clamped, w)
		sum += w
	}
	if sum <= 0 {
		return 0, 0
	}
	for _, w := range clamped {
		norm := w / sum
		hhi += norm * norm
	}
	if hhi > 0 {
		effectiveN = 1 / hhi
	}
	return hhi, effectiveN
}

type RiskLevel string

const (
	RiskLevel_Low    RiskLevel = "low"
	RiskLevel_Medium RiskLevel = "medium"
	RiskLevel_High   RiskLevel = "high"
)

// ClassifyRiskLevel maps volatility and max drawdown to a three-tier
// label. The conditions overlap, so evaluation order is the tie-break:
// low first, then the medium OR-condition, else high.
func ClassifyRiskLevel(vol, maxDd float64) RiskLevel {
	if vol < 0.08 && maxDd > -0.15 {
		return RiskLevel_Low
	}
	if vol <= 0.15 || maxDd >= -0.30 {
		return RiskLevel_Medium
	}
	return RiskLevel_High
}
