package service

import (
	"context"
	"log/slog"

	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/repository"
)

// NewsletterService handles newsletter signups.
type NewsletterService interface {
	// Subscribe returns OutcomeCreated for a new email and
	// OutcomeAlreadyExists for a repeat. Both come with a nil error.
	Subscribe(ctx context.Context, email string) (model.SubscriptionOutcome, error)
}

type newsletterService struct {
	repo repository.SubscriptionRepository
}

// NewNewsletterService creates a NewsletterService.
func NewNewsletterService(repo repository.SubscriptionRepository) NewsletterService {
	return &newsletterService{repo: repo}
}

func (s *newsletterService) Subscribe(ctx context.Context, email string) (model.SubscriptionOutcome, error) {
	outcome, err := s.repo.Insert(ctx, email)
	if err != nil {
		return model.OutcomeFailed, err
	}
	if outcome == model.OutcomeCreated {
		slog.Info("newsletter subscription created")
	}
	return outcome, nil
}
