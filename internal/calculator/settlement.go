package calculator

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Transfer is a proposed single payment from one member to another that
// reduces outstanding balances. Transfers are a one-shot computation result
// and are never persisted.
type Transfer struct {
	FromID   string
	FromName string
	ToID     string
	ToName   string
	Amount   decimal.Decimal
}

// ResolveSettlements converts a balance set into a list of transfers that
// drive every member's net to within Tolerance of zero.
//
// The algorithm is a deterministic greedy matching, not a proven
// minimum-transaction optimum: debtors sorted most-negative first and
// creditors largest first are walked with two cursors, each step emitting a
// transfer for the smaller of the two outstanding magnitudes. Members
// already within Tolerance of zero are excluded up front. Equal nets are
// ordered by member ID so identical input always yields identical output.
func ResolveSettlements(balances map[string]Balance) []Transfer {
	var debtors, creditors []Balance
	for _, b := range balances {
		switch {
		case b.Net.LessThan(Tolerance.Neg()):
			debtors = append(debtors, b)
		case b.Net.GreaterThan(Tolerance):
			creditors = append(creditors, b)
		}
	}

	sort.Slice(debtors, func(i, j int) bool {
		if !debtors[i].Net.Equal(debtors[j].Net) {
			return debtors[i].Net.LessThan(debtors[j].Net)
		}
		return debtors[i].MemberID < debtors[j].MemberID
	})
	sort.Slice(creditors, func(i, j int) bool {
		if !creditors[i].Net.Equal(creditors[j].Net) {
			return creditors[i].Net.GreaterThan(creditors[j].Net)
		}
		return creditors[i].MemberID < creditors[j].MemberID
	})

	var transfers []Transfer
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := round2(decimal.Min(debtor.Net.Neg(), creditor.Net))
		transfers = append(transfers, Transfer{
			FromID:   debtor.MemberID,
			FromName: debtor.Name,
			ToID:     creditor.MemberID,
			ToName:   creditor.Name,
			Amount:   amount,
		})

		debtor.Net = debtor.Net.Add(amount)
		creditor.Net = creditor.Net.Sub(amount)

		if debtor.Net.Abs().LessThan(Tolerance) {
			i++
		}
		if creditor.Net.LessThan(Tolerance) {
			j++
		}
	}

	return transfers
}
