package domain

import "time"

// LedgerRow is one monthly tick of the simulation: cash balance, each
// role's invested value, and the total (cash plus all role values).
type LedgerRow struct {
	Date   time.Time
	Cash   float64
	Values map[AssetRole]float64
	Total  float64
}

// Value returns the invested value recorded for the role, zero when
// the role has no constituents.
func (r LedgerRow) Value(role AssetRole) float64 {
	return r.Values[role]
}

type Ledger []LedgerRow

func (l Ledger) Empty() bool {
	return len(l) == 0
}

// Totals returns the total-value column, the input to the performance
// statistics.
func (l Ledger) Totals() []float64 {
	out := make([]float64, len(l))
	for i, row := range l {
		out[i] = row.Total
	}
	return out
}

func (l Ledger) Dates() []time.Time {
	out := make([]time.Time, len(l))
	for i, row := range l {
		out[i] = row.Date
	}
	return out
}

// TrendSignal is the MA200 classification for a single asset. It's a
// ternary: insufficient history is its own outcome, never coerced to
// bearish or not-bearish.
type TrendSignal string

const (
	TrendSignal_Bearish      TrendSignal = "bearish"
	TrendSignal_NotBearish   TrendSignal = "not_bearish"
	TrendSignal_Inconclusive TrendSignal = "inconclusive"
)
