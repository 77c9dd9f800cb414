package calculator

import "github.com/shopspring/decimal"

// DraftShare is one member's row while an expense is being composed, before
// anything is persisted.
type DraftShare struct {
	MemberID string
	Amount   decimal.Decimal
	// HasAmount distinguishes a computed or entered zero from no value at
	// all; validation treats a missing amount on an included member as an
	// error.
	HasAmount bool
	Included  bool
	// ManuallyEdited is set once a human overwrites the auto-computed value
	// for this member. Manual amounts are never silently overwritten.
	ManuallyEdited bool
}

// Allocation computes draft share amounts for an expense as the author
// edits the total, inclusion flags, and individual amounts. With auto-split
// enabled the total is distributed evenly across included members, and
// manual overrides cause the remainder to be redistributed across the
// members still on auto.
type Allocation struct {
	Total     decimal.Decimal
	AutoSplit bool
	Shares    []DraftShare
}

// NewAllocation starts an allocation with every member included, nothing
// manually edited, and auto-split enabled.
func NewAllocation(memberIDs []string) *Allocation {
	shares := make([]DraftShare, len(memberIDs))
	for i, id := range memberIDs {
		shares[i] = DraftShare{MemberID: id, Included: true}
	}
	return &Allocation{AutoSplit: true, Shares: shares}
}

// SetTotal records a new total and, with auto-split enabled, assigns every
// included member round2(total / includedCount) and every excluded member
// zero. All manual-edit flags reset. With no included members the amounts
// are left untouched (no division by zero).
func (a *Allocation) SetTotal(total decimal.Decimal) {
	a.Total = total
	if a.AutoSplit {
		a.splitEvenly()
	}
}

// SetAutoSplit flips the auto-split mode. Enabling it recomputes the even
// split from the current total.
func (a *Allocation) SetAutoSplit(enabled bool) {
	a.AutoSplit = enabled
	if enabled {
		a.splitEvenly()
	}
}

// ToggleInclusion flips a member's inclusion flag. An excluded member's
// amount resets to zero; with auto-split enabled the whole allocation is
// recomputed from the current total.
func (a *Allocation) ToggleInclusion(memberID string) {
	for i := range a.Shares {
		if a.Shares[i].MemberID != memberID {
			continue
		}
		a.Shares[i].Included = !a.Shares[i].Included
		if !a.Shares[i].Included {
			a.Shares[i].Amount = decimal.Zero
			a.Shares[i].HasAmount = true
			a.Shares[i].ManuallyEdited = false
		}
		break
	}
	if a.AutoSplit {
		a.splitEvenly()
	}
}

// SetManualAmount sets a member's amount and marks it manually edited. With
// auto-split enabled, total minus the sum of all manually entered included
// amounts is redistributed evenly across the remaining included members
// still on auto. When nothing remains to distribute, or the remainder is
// not positive, the other members keep their last computed values; no
// negative auto-shares are ever produced.
func (a *Allocation) SetManualAmount(memberID string, amount decimal.Decimal) {
	for i := range a.Shares {
		if a.Shares[i].MemberID == memberID {
			a.Shares[i].Amount = amount
			a.Shares[i].HasAmount = true
			a.Shares[i].ManuallyEdited = true
			break
		}
	}
	if !a.AutoSplit {
		return
	}

	manualTotal := decimal.Zero
	var auto []int
	for i, s := range a.Shares {
		if !s.Included {
			continue
		}
		if s.ManuallyEdited {
			manualTotal = manualTotal.Add(s.Amount)
		} else {
			auto = append(auto, i)
		}
	}

	remaining := a.Total.Sub(manualTotal)
	if len(auto) == 0 || !remaining.IsPositive() {
		return
	}

	per := round2(remaining.Div(decimal.NewFromInt(int64(len(auto)))))
	for _, i := range auto {
		a.Shares[i].Amount = per
		a.Shares[i].HasAmount = true
	}
}

// Validate checks the allocation against its current total.
// See ValidateShares.
func (a *Allocation) Validate(ignoreMismatch bool) error {
	return ValidateShares(a.Total, a.Shares, ignoreMismatch)
}

// ValidateShares fails with a ValidationError when the total is not
// positive, no member is included, or any included member has a missing or
// negative amount. When the included amounts differ from the total by more
// than Tolerance it fails with a SumMismatchError unless ignoreMismatch is
// set; the flag bypasses only the sum check, never the hard failures.
func ValidateShares(total decimal.Decimal, shares []DraftShare, ignoreMismatch bool) error {
	if !total.IsPositive() {
		return &ValidationError{Reason: "total amount must be greater than zero"}
	}

	sum := decimal.Zero
	included := 0
	for _, s := range shares {
		if !s.Included {
			continue
		}
		included++
		if !s.HasAmount || s.Amount.IsNegative() {
			return &ValidationError{Reason: "all included members must have a non-negative amount"}
		}
		sum = sum.Add(s.Amount)
	}
	if included == 0 {
		return &ValidationError{Reason: "at least one member must be included in the split"}
	}

	if !withinTolerance(sum, total) && !ignoreMismatch {
		return &SumMismatchError{Total: total, SharesTotal: sum}
	}
	return nil
}

// splitEvenly assigns round2(total / includedCount) to every included
// member and zero to the rest, clearing all manual-edit flags. Each amount
// is rounded independently, so the sum may drift from the total by up to
// one cent per member; callers observe the drift only through validation.
func (a *Allocation) splitEvenly() {
	included := 0
	for _, s := range a.Shares {
		if s.Included {
			included++
		}
	}
	if included == 0 {
		return
	}

	per := round2(a.Total.Div(decimal.NewFromInt(int64(included))))
	for i := range a.Shares {
		if a.Shares[i].Included {
			a.Shares[i].Amount = per
		} else {
			a.Shares[i].Amount = decimal.Zero
		}
		a.Shares[i].HasAmount = true
		a.Shares[i].ManuallyEdited = false
	}
}
