package service

import (
	"context"

	"github.com/shopspring/decimal"

	"tripledger/internal/calculator"
	"tripledger/internal/models"
	"tripledger/internal/storage"
)

// Summary is the computed ledger view for one group: grand totals, the
// transfers that settle everyone up, and spend by category. It is derived
// fresh from the persisted expense list on every request and never cached.
type Summary struct {
	TotalExpenses       decimal.Decimal
	CurrentUserExpenses decimal.Decimal
	Settlements         []calculator.Transfer
	CategoryBreakdown   []calculator.CategoryTotal
}

// SummaryService runs the balance, settlement, and category computations
// over a group's full expense list.
type SummaryService struct {
	store storage.Store
}

// NewSummaryService creates a SummaryService with the given storage backend.
func NewSummaryService(store storage.Store) *SummaryService {
	return &SummaryService{store: store}
}

// Summarize computes the group summary for the acting user. The user must
// be a member of the group.
func (s *SummaryService) Summarize(ctx context.Context, userID, groupID string) (*Summary, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}

	users, err := s.store.GetUsersByIDs(ctx, group.MemberIDs)
	if err != nil {
		return nil, err
	}
	members := make([]calculator.Member, 0, len(group.MemberIDs))
	for _, id := range group.MemberIDs {
		name := id
		if user, ok := users[id]; ok {
			name = user.DisplayName
		}
		members = append(members, calculator.Member{ID: id, Name: name})
	}

	records, err := s.store.ListExpensesByGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	expenses := toCalculatorExpenses(records)

	balances, err := calculator.ComputeBalances(members, expenses)
	if err != nil {
		return nil, err
	}

	summary := &Summary{
		TotalExpenses:       decimal.Zero,
		CurrentUserExpenses: decimal.Zero,
		Settlements:         calculator.ResolveSettlements(balances),
		CategoryBreakdown:   calculator.CategoryBreakdown(expenses),
	}
	for _, record := range records {
		summary.TotalExpenses = summary.TotalExpenses.Add(record.Amount)
		for _, share := range record.Shares {
			if share.UserID == userID {
				summary.CurrentUserExpenses = summary.CurrentUserExpenses.Add(share.Amount)
			}
		}
	}

	return summary, nil
}

func toCalculatorExpenses(records []*models.Expense) []calculator.Expense {
	expenses := make([]calculator.Expense, len(records))
	for i, record := range records {
		shares := make([]calculator.Share, len(record.Shares))
		for j, share := range record.Shares {
			shares[j] = calculator.Share{MemberID: share.UserID, Amount: share.Amount}
		}
		expenses[i] = calculator.Expense{
			Title:    record.Title,
			Amount:   record.Amount,
			Category: record.Category,
			PayerID:  record.PayerID,
			SelfPaid: record.SelfPaid,
			Shares:   shares,
		}
	}
	return expenses
}
