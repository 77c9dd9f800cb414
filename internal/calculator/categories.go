package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DefaultCategory is assigned to expenses with a missing or empty category.
const DefaultCategory = "Other"

// CategoryTotal is the summed spend for one category.
type CategoryTotal struct {
	Category string
	Amount   decimal.Decimal
	// Percentage of the grand total, 0-100. Kept unrounded so downstream
	// computations are not fed pre-rounded ratios; display formatting is
	// the caller's concern.
	Percentage decimal.Decimal
}

// CategoryBreakdown groups expenses by category, sums the amounts, and
// returns the totals sorted descending by amount. Categories with equal
// amounts keep their encounter order. Percentages are 0 when there are no
// expenses (the returned list is empty then anyway).
func CategoryBreakdown(expenses []Expense) []CategoryTotal {
	totals := make(map[string]decimal.Decimal)
	var order []string
	grand := decimal.Zero

	for _, e := range expenses {
		category := e.Category
		if category == "" {
			category = DefaultCategory
		}
		if _, seen := totals[category]; !seen {
			order = append(order, category)
		}
		totals[category] = totals[category].Add(e.Amount)
		grand = grand.Add(e.Amount)
	}

	breakdown := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		amount := totals[category]
		percentage := decimal.Zero
		if grand.IsPositive() {
			percentage = amount.Div(grand).Mul(hundred)
		}
		breakdown = append(breakdown, CategoryTotal{
			Category:   category,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	return breakdown
}
