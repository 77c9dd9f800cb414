package calculator

import "github.com/shopspring/decimal"

// Member is the minimal member view the calculator needs.
type Member struct {
	ID   string
	Name string
}

// Share is one member's portion of a single expense.
type Share struct {
	MemberID string
	Amount   decimal.Decimal
}

// Expense carries the fields of a recorded expense that balance and
// category math depend on.
type Expense struct {
	Title    string
	Amount   decimal.Decimal
	Category string
	PayerID  string
	// SelfPaid means every participant paid their own share directly;
	// no one fronted the full amount, so the payer gets no credit.
	SelfPaid bool
	Shares   []Share
}

// Balance is one member's net position across all expenses in a group.
// Positive means the group owes this member; negative means they owe.
type Balance struct {
	MemberID string
	Name     string
	Net      decimal.Decimal
}

// ComputeBalances returns one balance per supplied member, recomputed fresh
// from the full expense list. Members with no activity appear with a zero
// net. For a regular expense the payer is credited the full amount and every
// share holder is debited their share. For a self-paid expense only the
// debits apply: each member's own contribution to the shared pool is not a
// loan to or from anyone else.
//
// A payer or share referencing a member outside the supplied set fails the
// whole computation with a MissingMemberError; nothing is silently dropped.
func ComputeBalances(members []Member, expenses []Expense) (map[string]Balance, error) {
	balances := make(map[string]Balance, len(members))
	for _, m := range members {
		balances[m.ID] = Balance{MemberID: m.ID, Name: m.Name, Net: decimal.Zero}
	}

	for _, e := range expenses {
		if !e.SelfPaid {
			payer, ok := balances[e.PayerID]
			if !ok {
				return nil, &MissingMemberError{MemberID: e.PayerID}
			}
			payer.Net = payer.Net.Add(e.Amount)
			balances[e.PayerID] = payer
		}

		for _, s := range e.Shares {
			holder, ok := balances[s.MemberID]
			if !ok {
				return nil, &MissingMemberError{MemberID: s.MemberID}
			}
			holder.Net = holder.Net.Sub(s.Amount)
			balances[s.MemberID] = holder
		}
	}

	return balances, nil
}
