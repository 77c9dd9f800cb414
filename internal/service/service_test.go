package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"tripledger/internal/models"
	"tripledger/internal/storage/sqlite"
)

var dec = decimal.RequireFromString

// newTestStore creates a throwaway SQLite store for one test.
func newTestStore(t *testing.T) *sqlite.SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "tripledger-service-test-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := sqlite.New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createUser(t *testing.T, store *sqlite.SQLiteStore, email, name string) *models.User {
	t.Helper()
	user := models.NewUser(email, name, "test-hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createGroup(t *testing.T, store *sqlite.SQLiteStore, creator *models.User, memberIDs ...string) *models.Group {
	t.Helper()
	group := &models.Group{
		Name:      "Test trip",
		CreatedBy: creator.ID,
		MemberIDs: append([]string{creator.ID}, memberIDs...),
	}
	if err := store.CreateGroup(context.Background(), group); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return group
}
