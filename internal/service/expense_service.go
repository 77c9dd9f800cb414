package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"tripledger/internal/calculator"
	"tripledger/internal/models"
	"tripledger/internal/storage"
)

// ExpenseService records expenses and validates their share allocations.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates an ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// CreateExpenseInput is a fully composed expense awaiting validation and
// persistence.
type CreateExpenseInput struct {
	GroupID  string
	Title    string
	Amount   decimal.Decimal
	Category string
	Date     string
	PayerID  string
	SelfPaid bool
	Shares   []models.Share
	// IgnoreMismatch acknowledges a share-sum mismatch and bypasses only
	// that check.
	IgnoreMismatch bool
}

// Create validates and persists an expense. The acting user and the payer
// must be group members, as must every share holder. Share amounts are
// validated against the total; a sum mismatch is overridable, everything
// else is not.
func (s *ExpenseService) Create(ctx context.Context, userID string, in CreateExpenseInput) (*models.Expense, error) {
	group, err := s.store.GetGroup(ctx, in.GroupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}
	if !group.HasMember(in.PayerID) {
		return nil, fmt.Errorf("payer %s: %w", in.PayerID, ErrMemberNotInGroup)
	}
	for _, share := range in.Shares {
		if !group.HasMember(share.UserID) {
			return nil, fmt.Errorf("share holder %s: %w", share.UserID, ErrMemberNotInGroup)
		}
	}

	if in.Title == "" {
		return nil, &calculator.ValidationError{Reason: "expense title is required"}
	}
	if err := ValidateShares(in.Amount, in.Shares, in.IgnoreMismatch); err != nil {
		return nil, err
	}

	category := in.Category
	if category == "" {
		category = calculator.DefaultCategory
	}

	expense := &models.Expense{
		GroupID:  in.GroupID,
		Title:    in.Title,
		Amount:   in.Amount,
		Category: category,
		Date:     in.Date,
		PayerID:  in.PayerID,
		SelfPaid: in.SelfPaid,
		Shares:   in.Shares,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	slog.Info("expense recorded",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", expense.Amount.StringFixed(2),
		"self_paid", expense.SelfPaid,
	)
	return expense, nil
}

// List returns a group's expenses, newest first. The acting user must be a
// member.
func (s *ExpenseService) List(ctx context.Context, userID, groupID string) ([]*models.Expense, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(userID) {
		return nil, ErrNotGroupMember
	}
	return s.store.ListExpensesByGroup(ctx, groupID)
}

// ValidateShares checks a proposed share allocation against its total
// without persisting anything. Every submitted share counts as an included
// member with a concrete amount.
func ValidateShares(total decimal.Decimal, shares []models.Share, ignoreMismatch bool) error {
	drafts := make([]calculator.DraftShare, len(shares))
	for i, share := range shares {
		drafts[i] = calculator.DraftShare{
			MemberID:  share.UserID,
			Amount:    share.Amount,
			HasAmount: true,
			Included:  true,
		}
	}
	return calculator.ValidateShares(total, drafts, ignoreMismatch)
}
