package repository

import (
	"context"
	"strings"
	"time"

	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/model"
)

// SQLContactRepository stores contact form messages in the contactos table.
type SQLContactRepository struct {
	db  *database.Manager
	now func() time.Time
}

// NewSQLContactRepository creates a SQLContactRepository backed by the given manager.
func NewSQLContactRepository(db *database.Manager) *SQLContactRepository {
	return &SQLContactRepository{db: db, now: time.Now}
}

var _ ContactRepository = (*SQLContactRepository)(nil)

// validateContact trims the input and returns the first empty field.
func validateContact(in model.ContactInput) (model.ContactInput, error) {
	out := model.ContactInput{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Subject: strings.TrimSpace(in.Subject),
		Body:    strings.TrimSpace(in.Body),
	}
	switch {
	case out.Name == "":
		return out, &model.ValidationError{Field: "name"}
	case out.Email == "":
		return out, &model.ValidationError{Field: "email"}
	case out.Subject == "":
		return out, &model.ValidationError{Field: "subject"}
	case out.Body == "":
		return out, &model.ValidationError{Field: "message"}
	}
	return out, nil
}

// Insert validates the four required fields and writes one unread row
// stamped with the current time. Validation failures never reach the store.
func (r *SQLContactRepository) Insert(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	in, err := validateContact(in)
	if err != nil {
		return nil, err
	}

	msg := &model.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Body:    in.Body,
		SentAt:  r.now().UTC(),
		Read:    false,
	}

	err = r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		if err := conn.QueryRow(ctx,
			`INSERT INTO contactos (nombre, email, asunto, mensaje, fecha_envio, leido)
			 VALUES (?, ?, ?, ?, ?, ?)
			 RETURNING id`,
			msg.Name, msg.Email, msg.Subject, msg.Body, msg.SentAt, msg.Read,
		).Scan(&msg.ID); err != nil {
			return err
		}
		return conn.Commit()
	})
	if err != nil {
		return nil, storeError("insert contact", err)
	}
	return msg, nil
}

// List returns every contact message ordered by id.
func (r *SQLContactRepository) List(ctx context.Context) ([]*model.ContactMessage, error) {
	messages := []*model.ContactMessage{}
	err := r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		return conn.Select(ctx, &messages,
			`SELECT id, nombre, email, asunto, mensaje, fecha_envio, leido
			 FROM contactos
			 ORDER BY id ASC`)
	})
	if err != nil {
		return nil, storeError("list contacts", err)
	}
	return messages, nil
}
