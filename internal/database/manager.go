package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/kansah/site/internal/model"
)

func init() {
	// sqlx does not know the modernc driver name; it takes ? placeholders.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// Manager opens one physical connection per WithConnection call. There is
// no pooling: every call dials, runs its body inside a transaction and
// closes the connection again.
type Manager struct {
	cfg        Config
	driverName string
	dsn        string
}

// NewManager validates cfg and returns a Manager for it.
func NewManager(cfg Config) (*Manager, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}
	return &Manager{cfg: cfg, driverName: cfg.driverName(), dsn: dsn}, nil
}

// Driver returns the configured driver (DriverPostgres or DriverSQLite).
func (m *Manager) Driver() string {
	return m.cfg.Driver
}

// Func is the body run by WithConnection.
type Func func(ctx context.Context, conn *Conn) error

// WithConnection acquires a connection, begins a transaction and passes it
// to fn. fn must call conn.Commit to persist its work; anything left
// uncommitted is rolled back when the connection is released. If connection
// setup or fn fails, a best-effort rollback is attempted and the connection
// is closed before the original error is returned.
func (m *Manager) WithConnection(ctx context.Context, fn Func) error {
	db, err := sqlx.Open(m.driverName, m.dsn)
	if err != nil {
		slog.Error("database open failed", "dsn", m.cfg.Redacted(), "error", err)
		return fmt.Errorf("%w: open: %w", model.ErrStore, err)
	}
	db.SetMaxOpenConns(1)
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Warn("database close failed", "error", cerr)
			return
		}
		slog.Debug("database connection closed", "driver", m.cfg.Driver)
	}()

	connectCtx, cancel := context.WithTimeout(ctx, m.cfg.connectTimeout())
	defer cancel()
	if err := db.PingContext(connectCtx); err != nil {
		slog.Error("database connect failed", "dsn", m.cfg.Redacted(), "error", err)
		return fmt.Errorf("%w: connect: %w", model.ErrStore, err)
	}
	slog.Debug("database connection opened", "dsn", m.cfg.Redacted())

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		slog.Error("begin transaction failed", "error", err)
		return fmt.Errorf("%w: begin: %w", model.ErrStore, err)
	}

	conn := &Conn{tx: tx}
	if err := fn(ctx, conn); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("rollback failed", "error", rbErr)
		}
		return err
	}

	if !conn.committed {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Warn("discarding uncommitted work failed", "error", rbErr)
		}
	}
	return nil
}

// Ping opens a connection and closes it again. It is used for the startup
// connectivity check and the health endpoint.
func (m *Manager) Ping(ctx context.Context) error {
	return m.WithConnection(ctx, func(ctx context.Context, conn *Conn) error {
		return nil
	})
}
