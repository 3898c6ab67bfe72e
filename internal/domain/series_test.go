package domain

import (
	"math"
	"testing"
	"time"

	"fincontrol/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func Test_NewPriceSeries(t *testing.T) {
	t.Run("sorts and keeps last value per date", func(t *testing.T) {
		series := NewPriceSeries([]PricePoint{
			{Date: util.NewDate(2020, 1, 3), Price: 102},
			{Date: util.NewDate(2020, 1, 2), Price: 100},
			{Date: util.NewDate(2020, 1, 2), Price: 101},
		})

		expected := PriceSeries{
			{Date: util.NewDate(2020, 1, 2), Price: 101},
			{Date: util.NewDate(2020, 1, 3), Price: 102},
		}
		require.Empty(t, cmp.Diff(expected, series))
	})

	t.Run("truncates intraday timestamps to dates", func(t *testing.T) {
		series := NewPriceSeries([]PricePoint{
			{Date: time.Date(2020, 1, 2, 9, 30, 0, 0, time.UTC), Price: 100},
			{Date: time.Date(2020, 1, 2, 16, 0, 0, 0, time.UTC), Price: 105},
		})

		require.Len(t, series, 1)
		require.Equal(t, util.NewDate(2020, 1, 2), series[0].Date)
		require.Equal(t, 105.0, series[0].Price)
	})
}

func Test_MonthlyGrid(t *testing.T) {
	t.Run("union of month ends across series", func(t *testing.T) {
		a := NewPriceSeries([]PricePoint{
			{Date: util.NewDate(2020, 1, 15), Price: 1},
			{Date: util.NewDate(2020, 2, 10), Price: 1},
		})
		b := NewPriceSeries([]PricePoint{
			{Date: util.NewDate(2020, 2, 20), Price: 1},
			{Date: util.NewDate(2020, 3, 5), Price: 1},
		})

		grid := MonthlyGrid([]PriceSeries{a, b})

		expected := []time.Time{
			util.NewDate(2020, 1, 31),
			util.NewDate(2020, 2, 29),
			util.NewDate(2020, 3, 31),
		}
		require.Empty(t, cmp.Diff(expected, grid))
	})

	t.Run("empty input yields empty grid", func(t *testing.T) {
		require.Empty(t, MonthlyGrid(nil))
		require.Empty(t, MonthlyGrid([]PriceSeries{{}, {}}))
	})
}

func Test_Reindex(t *testing.T) {
	series := NewPriceSeries([]PricePoint{
		{Date: util.NewDate(2020, 2, 14), Price: 10},
		{Date: util.NewDate(2020, 4, 1), Price: 20},
	})
	grid := []time.Time{
		util.NewDate(2020, 1, 31),
		util.NewDate(2020, 2, 29),
		util.NewDate(2020, 3, 31),
		util.NewDate(2020, 4, 30),
	}

	t.Run("forward fills, NaN before first observation", func(t *testing.T) {
		out := series.Reindex(grid)

		require.Len(t, out, 4)
		require.True(t, math.IsNaN(out[0]))
		require.Equal(t, 10.0, out[1])
		require.Equal(t, 10.0, out[2])
		require.Equal(t, 20.0, out[3])
	})

	t.Run("fill both back-fills the leading edge", func(t *testing.T) {
		out := series.ReindexFillBoth(grid)

		require.Equal(t, []float64{10, 10, 10, 20}, out)
	})

	t.Run("empty series stays NaN", func(t *testing.T) {
		out := PriceSeries{}.Reindex(grid)
		for _, v := range out {
			require.True(t, math.IsNaN(v))
		}
	})
}
