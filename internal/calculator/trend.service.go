package calculator

import (
	"math"

	"fincontrol/internal/domain"

	"github.com/montanaflynn/stats"
)

const trendWindow = 200

// TrendSignal compares the most recent price to its trailing 200-period
// moving average, computed over the series' own resolution (daily for
// provider data), not the monthly simulation grid. Fewer than 200
// usable observations, or a NaN anywhere in the comparison, is
// inconclusive - never coerced to a direction.
func TrendSignal(series domain.PriceSeries) domain.TrendSignal {
	valid := make([]float64, 0, len(series))
	for _, p := range series {
		if !math.IsNaN(p.Price) {
			valid = append(valid, p.Price)
		}
	}
	if len(valid) < trendWindow {
		return domain.TrendSignal_Inconclusive
	}

	lastPrice := valid[len(valid)-1]
	ma, err := stats.Mean(valid[len(valid)-trendWindow:])
	if err != nil || math.IsNaN(ma) || math.IsNaN(lastPrice) {
		return domain.TrendSignal_Inconclusive
	}

	if lastPrice < ma {
		return domain.TrendSignal_Bearish
	}
	return domain.TrendSignal_NotBearish
}
