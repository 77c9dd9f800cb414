// Package calculator implements the expense ledger math: share allocation
// at authoring time, per-member net balances, greedy settlement resolution,
// and per-category spend breakdowns.
//
// Every function here is pure: inputs are treated as immutable snapshots and
// concurrent calls never share state.
package calculator

import "github.com/shopspring/decimal"

// Tolerance is the accepted rounding slack wherever monetary sums are
// compared. Shares are rounded to 2 decimal places independently, so a sum
// may drift from its total by up to one cent per member.
var Tolerance = decimal.New(1, -2) // 0.01

var hundred = decimal.NewFromInt(100)

// round2 rounds to 2 decimal places, half away from zero.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// withinTolerance reports whether a and b differ by at most Tolerance.
func withinTolerance(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(Tolerance)
}
