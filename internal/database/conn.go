package database

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// Conn is the transaction-scoped handle passed to a WithConnection body.
// Queries use ? placeholders; they are rebound for the active driver.
type Conn struct {
	tx        *sqlx.Tx
	committed bool
}

// Exec runs a statement that returns no rows.
func (c *Conn) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.tx.ExecContext(ctx, c.tx.Rebind(query), args...)
}

// Select scans all result rows into dest, which must be a pointer to a slice.
func (c *Conn) Select(ctx context.Context, dest any, query string, args ...any) error {
	return c.tx.SelectContext(ctx, dest, c.tx.Rebind(query), args...)
}

// Get scans a single row into dest. It returns sql.ErrNoRows when the
// query yields nothing.
func (c *Conn) Get(ctx context.Context, dest any, query string, args ...any) error {
	return c.tx.GetContext(ctx, dest, c.tx.Rebind(query), args...)
}

// QueryRow runs a query expected to return at most one row.
func (c *Conn) QueryRow(ctx context.Context, query string, args ...any) *sqlx.Row {
	return c.tx.QueryRowxContext(ctx, c.tx.Rebind(query), args...)
}

// Commit commits the transaction. The Conn must not be used afterwards.
func (c *Conn) Commit() error {
	if err := c.tx.Commit(); err != nil {
		return err
	}
	c.committed = true
	return nil
}
