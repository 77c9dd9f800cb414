package sqlite

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"tripledger/internal/models"
	"tripledger/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tripledger-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "not-a-real-hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := createTestUser(t, store, "alice@example.com", "Alice")
	bob := createTestUser(t, store, "bob@example.com", "Bob")

	t.Run("GetUserByEmail round-trips", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != alice.ID || got.DisplayName != "Alice" {
			t.Errorf("got %+v, want Alice", got)
		}
	})

	t.Run("GetUserByEmail returns nil for unknown email", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("got %+v, want nil", got)
		}
	})

	t.Run("GetUsersByIDs omits missing users", func(t *testing.T) {
		users, err := store.GetUsersByIDs(ctx, []string{alice.ID, "nonexistent"})
		if err != nil {
			t.Fatalf("GetUsersByIDs failed: %v", err)
		}
		if len(users) != 1 {
			t.Errorf("got %d users, want 1", len(users))
		}
		if users[alice.ID] == nil {
			t.Error("expected alice in result")
		}
	})

	t.Run("CreateGroup generates ID and stores members", func(t *testing.T) {
		group := &models.Group{
			Name:      "Goa 2026",
			CreatedBy: alice.ID,
			MemberIDs: []string{alice.ID, bob.ID},
		}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}
		if group.ID == "" {
			t.Error("Expected group ID to be generated")
		}
		if group.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if got.Name != group.Name || len(got.MemberIDs) != 2 {
			t.Errorf("got %+v, want name %q with 2 members", got, group.Name)
		}
	})

	t.Run("GetGroup returns ErrNotFound for unknown group", func(t *testing.T) {
		_, err := store.GetGroup(ctx, "nonexistent-id")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetGroup error = %v, want ErrNotFound", err)
		}
	})

	t.Run("membership management", func(t *testing.T) {
		carol := createTestUser(t, store, "carol@example.com", "Carol")
		group := &models.Group{Name: "Roadtrip", CreatedBy: alice.ID, MemberIDs: []string{alice.ID}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		if err := store.AddGroupMembers(ctx, group.ID, []string{bob.ID, carol.ID, alice.ID}); err != nil {
			t.Fatalf("AddGroupMembers failed: %v", err)
		}
		got, err := store.GetGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("GetGroup failed: %v", err)
		}
		if len(got.MemberIDs) != 3 {
			t.Errorf("got %d members, want 3 (re-adding alice must not duplicate)", len(got.MemberIDs))
		}

		if err := store.RemoveGroupMember(ctx, group.ID, carol.ID); err != nil {
			t.Fatalf("RemoveGroupMember failed: %v", err)
		}
		if err := store.RemoveGroupMember(ctx, group.ID, carol.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("removing absent member error = %v, want ErrNotFound", err)
		}

		groups, err := store.ListGroupsByMember(ctx, bob.ID)
		if err != nil {
			t.Fatalf("ListGroupsByMember failed: %v", err)
		}
		found := false
		for _, g := range groups {
			if g.ID == group.ID {
				found = true
			}
		}
		if !found {
			t.Errorf("bob's groups %v do not include %s", groups, group.ID)
		}
	})

	t.Run("expense amounts round-trip exactly", func(t *testing.T) {
		group := &models.Group{Name: "Dinner club", CreatedBy: alice.ID, MemberIDs: []string{alice.ID, bob.ID}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		expense := &models.Expense{
			GroupID:  group.ID,
			Title:    "Dinner",
			Amount:   decimal.RequireFromString("100.10"),
			Category: "food",
			Date:     "2026-08-20",
			PayerID:  alice.ID,
			Shares: []models.Share{
				{UserID: alice.ID, Amount: decimal.RequireFromString("50.05")},
				{UserID: bob.ID, Amount: decimal.RequireFromString("50.05")},
			},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Error("Expected expense ID to be generated")
		}

		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 1 {
			t.Fatalf("got %d expenses, want 1", len(expenses))
		}

		got := expenses[0]
		if !got.Amount.Equal(expense.Amount) {
			t.Errorf("amount = %s, want %s", got.Amount, expense.Amount)
		}
		if len(got.Shares) != 2 {
			t.Fatalf("got %d shares, want 2", len(got.Shares))
		}
		if got.Shares[0].UserID != alice.ID {
			t.Errorf("shares out of order: first is %s, want %s", got.Shares[0].UserID, alice.ID)
		}
		if !got.Shares[1].Amount.Equal(decimal.RequireFromString("50.05")) {
			t.Errorf("share amount = %s, want 50.05", got.Shares[1].Amount)
		}
	})

	t.Run("expenses ordered newest date first", func(t *testing.T) {
		group := &models.Group{Name: "Weekend", CreatedBy: alice.ID, MemberIDs: []string{alice.ID}}
		if err := store.CreateGroup(ctx, group); err != nil {
			t.Fatalf("CreateGroup failed: %v", err)
		}

		for _, e := range []struct{ title, date string }{
			{"Older", "2026-08-01"},
			{"Newer", "2026-08-15"},
		} {
			expense := &models.Expense{
				GroupID: group.ID,
				Title:   e.title,
				Amount:  decimal.RequireFromString("10.00"),
				Date:    e.date,
				PayerID: alice.ID,
				Shares:  []models.Share{{UserID: alice.ID, Amount: decimal.RequireFromString("10.00")}},
			}
			if err := store.CreateExpense(ctx, expense); err != nil {
				t.Fatalf("CreateExpense failed: %v", err)
			}
		}

		expenses, err := store.ListExpensesByGroup(ctx, group.ID)
		if err != nil {
			t.Fatalf("ListExpensesByGroup failed: %v", err)
		}
		if len(expenses) != 2 || expenses[0].Title != "Newer" {
			t.Errorf("expenses not ordered newest first: %v", expenses)
		}
	})
}
