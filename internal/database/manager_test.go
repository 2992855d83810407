package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/kansah/site/internal/model"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(Config{
		Database: filepath.Join(t.TempDir(), "test.db"),
		Driver:   DriverSQLite,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		if _, err := conn.Exec(ctx, `CREATE TABLE items (id INTEGER PRIMARY KEY, name TEXT NOT NULL)`); err != nil {
			return err
		}
		return conn.Commit()
	}); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return m
}

func countItems(t *testing.T, m *Manager) int {
	t.Helper()
	var n int
	err := m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		return conn.Get(ctx, &n, `SELECT COUNT(*) FROM items`)
	})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestNewManager_InvalidConfig(t *testing.T) {
	_, err := NewManager(Config{Driver: "odbc", Database: "x"})
	if !errors.Is(err, model.ErrConfiguration) {
		t.Fatalf("expected ErrConfiguration, got %v", err)
	}
}

func TestWithConnection_CommitPersists(t *testing.T) {
	m := newTestManager(t)

	err := m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		if _, err := conn.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "memoria"); err != nil {
			return err
		}
		return conn.Commit()
	})
	if err != nil {
		t.Fatalf("WithConnection: %v", err)
	}
	if got := countItems(t, m); got != 1 {
		t.Errorf("expected 1 row, got %d", got)
	}
}

func TestWithConnection_UncommittedWorkDiscarded(t *testing.T) {
	m := newTestManager(t)

	err := m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		_, err := conn.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "atencion")
		return err
	})
	if err != nil {
		t.Fatalf("WithConnection: %v", err)
	}
	if got := countItems(t, m); got != 0 {
		t.Errorf("expected uncommitted insert to be discarded, got %d rows", got)
	}
}

func TestWithConnection_BodyErrorRollsBackAndPropagates(t *testing.T) {
	m := newTestManager(t)
	bodyErr := errors.New("boom")

	err := m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		if _, err := conn.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "rapidez"); err != nil {
			return err
		}
		return bodyErr
	})
	if !errors.Is(err, bodyErr) {
		t.Fatalf("expected original error, got %v", err)
	}
	if got := countItems(t, m); got != 0 {
		t.Errorf("expected rollback, got %d rows", got)
	}
}

func TestWithConnection_ErrorAfterCommitKeepsData(t *testing.T) {
	m := newTestManager(t)
	bodyErr := errors.New("late failure")

	err := m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		if _, err := conn.Exec(ctx, `INSERT INTO items (name) VALUES (?)`, "logica"); err != nil {
			return err
		}
		if err := conn.Commit(); err != nil {
			return err
		}
		return bodyErr
	})
	if !errors.Is(err, bodyErr) {
		t.Fatalf("expected original error, got %v", err)
	}
	if got := countItems(t, m); got != 1 {
		t.Errorf("expected committed row to survive, got %d rows", got)
	}
}

func TestWithConnection_SetupFailureIsStoreError(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing", "test.db")
	m, err := NewManager(Config{Database: missing, Driver: DriverSQLite})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}

	called := false
	err = m.WithConnection(context.Background(), func(ctx context.Context, conn *Conn) error {
		called = true
		return nil
	})
	if !errors.Is(err, model.ErrStore) {
		t.Fatalf("expected ErrStore, got %v", err)
	}
	if called {
		t.Error("body must not run when the connection cannot be established")
	}
}

func TestPing(t *testing.T) {
	m := newTestManager(t)
	if err := m.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
