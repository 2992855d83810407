package service

import (
	"context"
	"log/slog"

	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/repository"
)

// contentServiceImpl applies the degraded-read policy on top of a
// ContentRepository, which may be the database or the static catalogue.
type contentServiceImpl struct {
	repo repository.ContentRepository
}

// NewContentService creates a ContentService backed by the given repository.
func NewContentService(repo repository.ContentRepository) ContentService {
	return &contentServiceImpl{repo: repo}
}

func (s *contentServiceImpl) Features(ctx context.Context) []*model.Feature {
	features, err := s.repo.ListFeatures(ctx)
	if err != nil {
		slog.Warn("features unavailable, serving empty list", "error", err)
		return []*model.Feature{}
	}
	if features == nil {
		return []*model.Feature{}
	}
	return features
}

func (s *contentServiceImpl) Testimonials(ctx context.Context) []*model.Testimonial {
	testimonials, err := s.repo.ListTestimonials(ctx)
	if err != nil {
		slog.Warn("testimonials unavailable, serving empty list", "error", err)
		return []*model.Testimonial{}
	}
	if testimonials == nil {
		return []*model.Testimonial{}
	}
	return testimonials
}

func (s *contentServiceImpl) Statistics(ctx context.Context) *model.Statistics {
	stats, err := s.repo.GetStatistics(ctx)
	if err != nil || stats == nil {
		if err != nil {
			slog.Warn("statistics unavailable, serving zero values", "error", err)
		}
		return model.ZeroStatistics()
	}
	return stats
}

// Home gathers the three reads independently; one failing does not blank
// the others.
func (s *contentServiceImpl) Home(ctx context.Context) *model.HomeContent {
	return &model.HomeContent{
		Features:     s.Features(ctx),
		Testimonials: s.Testimonials(ctx),
		Stats:        s.Statistics(ctx),
	}
}
