package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/kansah/site/internal/content"
	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/model"
	"github.com/kansah/site/internal/repository"
)

type mockContentRepository struct {
	listFeaturesFunc     func(ctx context.Context) ([]*model.Feature, error)
	listTestimonialsFunc func(ctx context.Context) ([]*model.Testimonial, error)
	getStatisticsFunc    func(ctx context.Context) (*model.Statistics, error)
}

func (m *mockContentRepository) ListFeatures(ctx context.Context) ([]*model.Feature, error) {
	if m.listFeaturesFunc != nil {
		return m.listFeaturesFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentRepository) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	if m.listTestimonialsFunc != nil {
		return m.listTestimonialsFunc(ctx)
	}
	return nil, nil
}

func (m *mockContentRepository) GetStatistics(ctx context.Context) (*model.Statistics, error) {
	if m.getStatisticsFunc != nil {
		return m.getStatisticsFunc(ctx)
	}
	return nil, nil
}

func TestContentService_NilResultsBecomeEmpty(t *testing.T) {
	svc := NewContentService(&mockContentRepository{})
	ctx := context.Background()

	if got := svc.Features(ctx); got == nil || len(got) != 0 {
		t.Errorf("expected empty features, got %v", got)
	}
	if got := svc.Testimonials(ctx); got == nil || len(got) != 0 {
		t.Errorf("expected empty testimonials, got %v", got)
	}
	if got := svc.Statistics(ctx); *got != *model.ZeroStatistics() {
		t.Errorf("expected zero statistics, got %+v", got)
	}
}

func TestContentService_StoreErrorsAbsorbed(t *testing.T) {
	mock := &mockContentRepository{
		listFeaturesFunc: func(ctx context.Context) ([]*model.Feature, error) {
			return nil, model.ErrStore
		},
		listTestimonialsFunc: func(ctx context.Context) ([]*model.Testimonial, error) {
			return nil, model.ErrStore
		},
		getStatisticsFunc: func(ctx context.Context) (*model.Statistics, error) {
			return nil, model.ErrStore
		},
	}
	svc := NewContentService(mock)

	home := svc.Home(context.Background())
	if len(home.Features) != 0 || len(home.Testimonials) != 0 {
		t.Errorf("expected empty lists, got %+v", home)
	}
	if home.Stats.Players != "0" || home.Stats.Schools != "0" || home.Stats.Countries != "0" {
		t.Errorf("expected zero stats, got %+v", home.Stats)
	}
}

func TestContentService_PartialFailure(t *testing.T) {
	mock := &mockContentRepository{
		listFeaturesFunc: func(ctx context.Context) ([]*model.Feature, error) {
			return []*model.Feature{{ID: 1, Title: "Memoria"}}, nil
		},
		getStatisticsFunc: func(ctx context.Context) (*model.Statistics, error) {
			return nil, model.ErrStore
		},
	}
	svc := NewContentService(mock)

	home := svc.Home(context.Background())
	if len(home.Features) != 1 {
		t.Errorf("features should survive a statistics failure, got %d", len(home.Features))
	}
	if home.Stats.Players != "0" {
		t.Errorf("expected zero stats, got %+v", home.Stats)
	}
}

func TestContentService_StaticCatalog(t *testing.T) {
	svc := NewContentService(content.Default())

	home := svc.Home(context.Background())
	if len(home.Features) != 4 || len(home.Testimonials) != 2 {
		t.Errorf("unexpected static content: %d features, %d testimonials", len(home.Features), len(home.Testimonials))
	}
	if home.Stats.Players != "1000+" {
		t.Errorf("unexpected stats: %+v", home.Stats)
	}
}

// TestContentService_UnreachableStore exercises the real SQL repository
// against a store that cannot be opened.
func TestContentService_UnreachableStore(t *testing.T) {
	m, err := database.NewManager(database.Config{
		Database: filepath.Join(t.TempDir(), "missing", "site.db"),
		Driver:   database.DriverSQLite,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	svc := NewContentService(repository.NewSQLContentRepository(m))
	ctx := context.Background()

	if got := svc.Features(ctx); len(got) != 0 {
		t.Errorf("expected empty features, got %d", len(got))
	}
	if got := svc.Testimonials(ctx); len(got) != 0 {
		t.Errorf("expected empty testimonials, got %d", len(got))
	}
	if got := svc.Statistics(ctx); *got != *model.ZeroStatistics() {
		t.Errorf("expected zero statistics, got %+v", got)
	}
}
