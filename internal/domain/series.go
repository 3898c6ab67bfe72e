package domain

import (
	"math"
	"sort"
	"time"

	"fincontrol/internal/util"
)

type PricePoint struct {
	Date  time.Time
	Price float64
}

// PriceSeries is an ordered sequence of (date, price) observations,
// dates strictly increasing. Construct through NewPriceSeries so
// duplicate dates are resolved at ingestion.
type PriceSeries []PricePoint

// NewPriceSeries sorts the points and collapses duplicate calendar
// dates, keeping the last value seen for each date.
func NewPriceSeries(points []PricePoint) PriceSeries {
	sorted := make([]PricePoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	out := PriceSeries{}
	for _, p := range sorted {
		p.Date = util.NewDate(p.Date.Year(), int(p.Date.Month()), p.Date.Day())
		if len(out) > 0 && out[len(out)-1].Date.Equal(p.Date) {
			out[len(out)-1].Price = p.Price
			continue
		}
		out = append(out, p)
	}
	return out
}

func (s PriceSeries) Empty() bool {
	return len(s) == 0
}

func (s PriceSeries) Dates() []time.Time {
	dates := make([]time.Time, len(s))
	for i, p := range s {
		dates[i] = p.Date
	}
	return dates
}

// monthEnds returns the calendar month-end label of every month the
// series has at least one observation in.
func (s PriceSeries) monthEnds() []time.Time {
	out := []time.Time{}
	for _, p := range s {
		label := util.MonthEnd(p.Date)
		if len(out) > 0 && out[len(out)-1].Equal(label) {
			continue
		}
		out = append(out, label)
	}
	return out
}

// MonthlyGrid reduces the input series to a single shared monthly tick
// sequence: the sorted union of each non-empty series' month-end
// labels. All-empty input yields an empty grid.
func MonthlyGrid(seriesList []PriceSeries) []time.Time {
	seen := map[time.Time]bool{}
	grid := []time.Time{}
	for _, s := range seriesList {
		for _, label := range s.monthEnds() {
			if !seen[label] {
				seen[label] = true
				grid = append(grid, label)
			}
		}
	}
	sort.Slice(grid, func(i, j int) bool { return grid[i].Before(grid[j]) })
	return grid
}

// Reindex projects the series onto the given dates, forward-filling
// gaps. Dates before the first observation come out as NaN - a month
// with no price history yet stays undefined until the first real
// observation.
func (s PriceSeries) Reindex(dates []time.Time) []float64 {
	out := make([]float64, len(dates))
	j := 0
	last := math.NaN()
	for i, d := range dates {
		for j < len(s) && util.DateLte(s[j].Date, d) {
			last = s[j].Price
			j++
		}
		out[i] = last
	}
	return out
}

// ReindexFillBoth is Reindex plus a back-fill pass, so every requested
// date carries a value as long as the series has any observation at
// all. FX alignment uses this: a price date earlier than the first
// known rate takes the earliest rate rather than staying NaN.
func (s PriceSeries) ReindexFillBoth(dates []time.Time) []float64 {
	out := s.Reindex(dates)
	if s.Empty() {
		return out
	}
	first := s[0].Price
	for i := range out {
		if math.IsNaN(out[i]) {
			out[i] = first
		} else {
			break
		}
	}
	return out
}
