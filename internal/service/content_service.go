package service

import (
	"context"

	"github.com/kansah/site/internal/model"
)

// ContentService serves the reference data behind the public pages.
// Its methods never fail: store errors are logged and replaced by empty
// lists or zero statistics so that pages always render.
type ContentService interface {
	Features(ctx context.Context) []*model.Feature
	Testimonials(ctx context.Context) []*model.Testimonial
	Statistics(ctx context.Context) *model.Statistics
	Home(ctx context.Context) *model.HomeContent
}
