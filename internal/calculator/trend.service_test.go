package calculator

import (
	"math"
	"testing"

	"fincontrol/internal/domain"
	"fincontrol/internal/util"

	"github.com/stretchr/testify/require"
)

func dailySeries(prices []float64) domain.PriceSeries {
	points := []domain.PricePoint{}
	start := util.NewDate(2019, 1, 1)
	for i, p := range prices {
		points = append(points, domain.PricePoint{Date: start.AddDate(0, 0, i), Price: p})
	}
	return domain.NewPriceSeries(points)
}

func Test_TrendSignal(t *testing.T) {
	t.Run("fewer than 200 observations is inconclusive", func(t *testing.T) {
		prices := make([]float64, 199)
		for i := range prices {
			prices[i] = 100
		}
		require.Equal(t, domain.TrendSignal_Inconclusive, TrendSignal(dailySeries(prices)))
	})

	t.Run("empty series is inconclusive", func(t *testing.T) {
		require.Equal(t, domain.TrendSignal_Inconclusive, TrendSignal(domain.PriceSeries{}))
	})

	t.Run("NaN values don't count toward the window", func(t *testing.T) {
		prices := make([]float64, 210)
		for i := range prices {
			prices[i] = 100
		}
		for i := 0; i < 20; i++ {
			prices[i] = math.NaN()
		}
		require.Equal(t, domain.TrendSignal_Inconclusive, TrendSignal(dailySeries(prices)))
	})

	t.Run("last price below the average is bearish", func(t *testing.T) {
		prices := make([]float64, 200)
		for i := range prices {
			prices[i] = 100
		}
		prices[199] = 50
		require.Equal(t, domain.TrendSignal_Bearish, TrendSignal(dailySeries(prices)))
	})

	t.Run("flat series is not bearish", func(t *testing.T) {
		prices := make([]float64, 200)
		for i := range prices {
			prices[i] = 100
		}
		require.Equal(t, domain.TrendSignal_NotBearish, TrendSignal(dailySeries(prices)))
	})
}
