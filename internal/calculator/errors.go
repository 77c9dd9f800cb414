package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports bad authoring-time input: a non-positive total,
// no included members, or a missing/negative share amount. It is surfaced
// to the caller verbatim and never retried.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// SumMismatchError reports that the included members' share amounts differ
// from the expense total by more than Tolerance. It is a soft failure: the
// caller may acknowledge and bypass it, which does not alter the shares.
type SumMismatchError struct {
	Total       decimal.Decimal
	SharesTotal decimal.Decimal
}

func (e *SumMismatchError) Error() string {
	return fmt.Sprintf("sum of individual shares (%s) does not match the total amount (%s)",
		e.SharesTotal.StringFixed(2), e.Total.StringFixed(2))
}

// MissingMemberError reports a payer or share referencing a member absent
// from the supplied member set. It indicates a data-consistency bug in the
// caller; the whole computation aborts rather than partially compute.
type MissingMemberError struct {
	MemberID string
}

func (e *MissingMemberError) Error() string {
	return fmt.Sprintf("member %q referenced by an expense is not in the member set", e.MemberID)
}
