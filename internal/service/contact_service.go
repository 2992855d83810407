package service

import (
	"context"

	"github.com/kansah/site/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit validates and stores a contact message. Missing fields yield
	// model.ErrValidation; store failures yield model.ErrStore.
	Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)
}
