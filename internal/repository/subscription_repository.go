package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/model"
)

// SQLSubscriptionRepository stores newsletter signups in the suscripciones
// table. Email uniqueness is enforced by the table's UNIQUE constraint.
type SQLSubscriptionRepository struct {
	db  *database.Manager
	now func() time.Time
}

// NewSQLSubscriptionRepository creates a SQLSubscriptionRepository backed by the given manager.
func NewSQLSubscriptionRepository(db *database.Manager) *SQLSubscriptionRepository {
	return &SQLSubscriptionRepository{db: db, now: time.Now}
}

var _ SubscriptionRepository = (*SQLSubscriptionRepository)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Insert subscribes email. A duplicate is reported as OutcomeAlreadyExists
// with a nil error; the existing row is left untouched.
func (r *SQLSubscriptionRepository) Insert(ctx context.Context, email string) (model.SubscriptionOutcome, error) {
	email = normalizeEmail(email)
	if email == "" {
		return model.OutcomeFailed, &model.ValidationError{Field: "email"}
	}

	err := r.insert(ctx, email)
	switch {
	case err == nil:
		return model.OutcomeCreated, nil
	case errors.Is(err, model.ErrConflict):
		slog.Info("subscription already exists", "email", email)
		return model.OutcomeAlreadyExists, nil
	default:
		return model.OutcomeFailed, storeError("insert subscription", err)
	}
}

func (r *SQLSubscriptionRepository) insert(ctx context.Context, email string) error {
	return r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		_, err := conn.Exec(ctx,
			`INSERT INTO suscripciones (email, fecha_suscripcion, activo)
			 VALUES (?, ?, ?)`,
			email, r.now().UTC(), true,
		)
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %w", model.ErrConflict, err)
		}
		if err != nil {
			return err
		}
		return conn.Commit()
	})
}

// FindByEmail returns the subscription for email or ErrNotFound.
func (r *SQLSubscriptionRepository) FindByEmail(ctx context.Context, email string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		return conn.Get(ctx, &sub,
			`SELECT id, email, fecha_suscripcion, activo
			 FROM suscripciones
			 WHERE email = ?`,
			normalizeEmail(email))
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, storeError("find subscription", err)
	}
	return &sub, nil
}
