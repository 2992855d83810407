package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kansah/site/internal/database"
)

// newTestDB returns a manager over a fresh sqlite file with the schema applied.
func newTestDB(t *testing.T) *database.Manager {
	t.Helper()
	m, err := database.NewManager(database.Config{
		Database: filepath.Join(t.TempDir(), "site.db"),
		Driver:   database.DriverSQLite,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := EnsureSchema(context.Background(), m); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	return m
}

// unreachableDB returns a manager whose every connection attempt fails.
func unreachableDB(t *testing.T) *database.Manager {
	t.Helper()
	m, err := database.NewManager(database.Config{
		Database: filepath.Join(t.TempDir(), "missing", "site.db"),
		Driver:   database.DriverSQLite,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m
}
