package calculator

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func shareByID(t *testing.T, a *Allocation, memberID string) DraftShare {
	t.Helper()
	for _, s := range a.Shares {
		if s.MemberID == memberID {
			return s
		}
	}
	t.Fatalf("no draft share for member %s", memberID)
	return DraftShare{}
}

func TestSetTotalAutoSplit(t *testing.T) {
	alloc := NewAllocation([]string{"a", "b", "c"})
	alloc.SetTotal(decimal.RequireFromString("100"))

	// 100 / 3 rounds to 33.33 per member; the sum 99.99 is within tolerance.
	want := decimal.RequireFromString("33.33")
	sum := decimal.Zero
	for _, s := range alloc.Shares {
		if !s.Amount.Equal(want) {
			t.Errorf("member %s amount = %s, want %s", s.MemberID, s.Amount, want)
		}
		if s.ManuallyEdited {
			t.Errorf("member %s marked manually edited after SetTotal", s.MemberID)
		}
		sum = sum.Add(s.Amount)
	}

	maxDrift := Tolerance.Mul(decimal.NewFromInt(3))
	if sum.Sub(alloc.Total).Abs().GreaterThan(maxDrift) {
		t.Errorf("share sum %s drifts from total %s by more than %s", sum, alloc.Total, maxDrift)
	}

	if err := alloc.Validate(false); err != nil {
		t.Errorf("Validate failed on an in-tolerance auto split: %v", err)
	}
}

func TestSetTotalNoIncludedMembers(t *testing.T) {
	alloc := NewAllocation([]string{"a", "b"})
	alloc.ToggleInclusion("a")
	alloc.ToggleInclusion("b")

	alloc.SetTotal(decimal.RequireFromString("50"))

	for _, s := range alloc.Shares {
		if s.Included {
			t.Errorf("member %s unexpectedly included", s.MemberID)
		}
	}
	// Excluded members sit at zero; nothing was divided by zero.
	if got := shareByID(t, alloc, "a").Amount; !got.IsZero() {
		t.Errorf("excluded member amount = %s, want 0", got)
	}
}

func TestToggleInclusion(t *testing.T) {
	alloc := NewAllocation([]string{"a", "b", "c"})
	alloc.SetTotal(decimal.RequireFromString("90"))

	alloc.ToggleInclusion("c")

	if s := shareByID(t, alloc, "c"); s.Included || !s.Amount.IsZero() {
		t.Errorf("excluded member c: included=%v amount=%s, want excluded at 0", s.Included, s.Amount)
	}
	// Remaining two members re-split the full total.
	want := decimal.RequireFromString("45.00")
	for _, id := range []string{"a", "b"} {
		if got := shareByID(t, alloc, id).Amount; !got.Equal(want) {
			t.Errorf("member %s amount = %s, want %s", id, got, want)
		}
	}

	alloc.ToggleInclusion("c")
	want = decimal.RequireFromString("30.00")
	for _, id := range []string{"a", "b", "c"} {
		if got := shareByID(t, alloc, id).Amount; !got.Equal(want) {
			t.Errorf("after re-inclusion, member %s amount = %s, want %s", id, got, want)
		}
	}
}

func TestSetManualAmount(t *testing.T) {
	t.Run("remainder redistributes across auto members", func(t *testing.T) {
		alloc := NewAllocation([]string{"a", "b", "c"})
		alloc.SetTotal(decimal.RequireFromString("100"))

		alloc.SetManualAmount("a", decimal.RequireFromString("70"))

		a := shareByID(t, alloc, "a")
		if !a.ManuallyEdited || !a.Amount.Equal(decimal.RequireFromString("70")) {
			t.Errorf("member a = %+v, want manually edited at 70", a)
		}
		want := decimal.RequireFromString("15.00")
		for _, id := range []string{"b", "c"} {
			s := shareByID(t, alloc, id)
			if !s.Amount.Equal(want) {
				t.Errorf("member %s amount = %s, want %s", id, s.Amount, want)
			}
			if s.ManuallyEdited {
				t.Errorf("member %s unexpectedly marked manually edited", id)
			}
		}
	})

	t.Run("manual amounts never silently overwritten", func(t *testing.T) {
		alloc := NewAllocation([]string{"a", "b", "c"})
		alloc.SetTotal(decimal.RequireFromString("100"))

		alloc.SetManualAmount("a", decimal.RequireFromString("70"))
		alloc.SetManualAmount("b", decimal.RequireFromString("20"))

		if got := shareByID(t, alloc, "a").Amount; !got.Equal(decimal.RequireFromString("70")) {
			t.Errorf("member a amount = %s, want 70 preserved", got)
		}
		if got := shareByID(t, alloc, "c").Amount; !got.Equal(decimal.RequireFromString("10.00")) {
			t.Errorf("member c amount = %s, want 10.00", got)
		}
	})

	t.Run("non-positive remainder leaves auto members alone", func(t *testing.T) {
		alloc := NewAllocation([]string{"a", "b", "c"})
		alloc.SetTotal(decimal.RequireFromString("90"))

		alloc.SetManualAmount("a", decimal.RequireFromString("120"))

		// b and c keep their last computed 30.00; no negative auto-shares.
		want := decimal.RequireFromString("30.00")
		for _, id := range []string{"b", "c"} {
			if got := shareByID(t, alloc, id).Amount; !got.Equal(want) {
				t.Errorf("member %s amount = %s, want %s", id, got, want)
			}
		}
	})

	t.Run("no auto members left", func(t *testing.T) {
		alloc := NewAllocation([]string{"a", "b"})
		alloc.SetTotal(decimal.RequireFromString("50"))

		alloc.SetManualAmount("a", decimal.RequireFromString("30"))
		alloc.SetManualAmount("b", decimal.RequireFromString("25"))

		if got := shareByID(t, alloc, "a").Amount; !got.Equal(decimal.RequireFromString("30")) {
			t.Errorf("member a amount = %s, want 30", got)
		}
		if got := shareByID(t, alloc, "b").Amount; !got.Equal(decimal.RequireFromString("25")) {
			t.Errorf("member b amount = %s, want 25", got)
		}
	})
}

func TestValidateShares(t *testing.T) {
	dec := decimal.RequireFromString
	included := func(amount string) DraftShare {
		return DraftShare{Amount: dec(amount), HasAmount: true, Included: true}
	}

	tests := []struct {
		name           string
		total          decimal.Decimal
		shares         []DraftShare
		ignoreMismatch bool
		wantValidation bool
		wantMismatch   bool
	}{
		{
			name:   "valid even split",
			total:  dec("100"),
			shares: []DraftShare{included("50.00"), included("50.00")},
		},
		{
			name:           "zero total",
			total:          decimal.Zero,
			shares:         []DraftShare{included("0")},
			wantValidation: true,
		},
		{
			name:           "negative total",
			total:          dec("-5"),
			shares:         []DraftShare{included("5")},
			wantValidation: true,
		},
		{
			name:           "no included members",
			total:          dec("10"),
			shares:         []DraftShare{{Included: false}},
			wantValidation: true,
		},
		{
			name:           "included member missing amount",
			total:          dec("10"),
			shares:         []DraftShare{included("5.00"), {Included: true}},
			wantValidation: true,
		},
		{
			name:           "negative share",
			total:          dec("10"),
			shares:         []DraftShare{included("15.00"), included("-5.00")},
			wantValidation: true,
		},
		{
			name:         "sum mismatch",
			total:        dec("100"),
			shares:       []DraftShare{included("40.00"), included("40.00")},
			wantMismatch: true,
		},
		{
			name:           "sum mismatch overridden",
			total:          dec("100"),
			shares:         []DraftShare{included("40.00"), included("40.00")},
			ignoreMismatch: true,
		},
		{
			name:           "override does not bypass hard failures",
			total:          dec("100"),
			shares:         []DraftShare{included("105.00"), included("-5.00")},
			ignoreMismatch: true,
			wantValidation: true,
		},
		{
			name:   "one cent drift tolerated",
			total:  dec("100"),
			shares: []DraftShare{included("33.33"), included("33.33"), included("33.33")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateShares(tt.total, tt.shares, tt.ignoreMismatch)

			var validationErr *ValidationError
			var mismatchErr *SumMismatchError
			switch {
			case tt.wantValidation:
				if !errors.As(err, &validationErr) {
					t.Errorf("ValidateShares() = %v, want ValidationError", err)
				}
			case tt.wantMismatch:
				if !errors.As(err, &mismatchErr) {
					t.Errorf("ValidateShares() = %v, want SumMismatchError", err)
				}
			default:
				if err != nil {
					t.Errorf("ValidateShares() = %v, want nil", err)
				}
			}
		})
	}
}
