package repository

import (
	"context"

	"github.com/kansah/site/internal/model"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

// ContentRepository reads the reference data shown on the public pages.
// Errors are returned as-is; degrading to empty values is the caller's call.
type ContentRepository interface {
	ListFeatures(ctx context.Context) ([]*model.Feature, error)
	ListTestimonials(ctx context.Context) ([]*model.Testimonial, error)
	GetStatistics(ctx context.Context) (*model.Statistics, error)
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, in model.ContactInput) (*model.ContactMessage, error)
	List(ctx context.Context) ([]*model.ContactMessage, error)
}

// SubscriptionRepository persists newsletter signups.
type SubscriptionRepository interface {
	Insert(ctx context.Context, email string) (model.SubscriptionOutcome, error)
	FindByEmail(ctx context.Context, email string) (*model.Subscription, error)
}
