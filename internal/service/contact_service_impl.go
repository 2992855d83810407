package service

import (
	"context"
	"log/slog"

	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/repository"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit stores the message. Validation happens in the repository before
// any store access.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error) {
	msg, err := s.repo.Insert(ctx, in)
	if err != nil {
		return nil, err
	}
	slog.Info("contact message stored", "id", msg.ID, "subject", msg.Subject)
	return msg, nil
}
