package models

import "github.com/shopspring/decimal"

// Expense represents one recorded expense within a group. Expenses and
// their shares are write-once: once persisted they are never mutated.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Title is the human-readable description (e.g., "Dinner day 2").
	Title string

	// Amount is the total expense amount. Always positive.
	Amount decimal.Decimal

	// Category is a free-form label. Empty means "Other".
	Category string

	// Date is the expense date in YYYY-MM-DD form.
	Date string

	// PayerID is the user who fronted the amount. For self-paid expenses
	// it records the submitting user, even though no one is credited.
	PayerID string

	// SelfPaid means every participant paid their own share directly;
	// the payer is not owed for the whole amount.
	SelfPaid bool

	// Shares are the per-member portions, unique by user, in the order
	// they were submitted. They need not sum exactly to Amount; one cent
	// per member of rounding drift is accepted.
	Shares []Share

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Share is the portion of one expense attributed to one member.
type Share struct {
	// UserID is the member this share belongs to.
	UserID string

	// Amount is the member's portion. Never negative.
	Amount decimal.Decimal
}
