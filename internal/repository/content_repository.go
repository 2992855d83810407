package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/model"
)

// SQLContentRepository reads features, testimonials and statistics. The
// tables are seeded outside the web process.
type SQLContentRepository struct {
	db *database.Manager
}

// NewSQLContentRepository creates a SQLContentRepository backed by the given manager.
func NewSQLContentRepository(db *database.Manager) *SQLContentRepository {
	return &SQLContentRepository{db: db}
}

var _ ContentRepository = (*SQLContentRepository)(nil)

// ListFeatures returns every feature ordered by id.
func (r *SQLContentRepository) ListFeatures(ctx context.Context) ([]*model.Feature, error) {
	features := []*model.Feature{}
	err := r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		return conn.Select(ctx, &features,
			`SELECT id, titulo, descripcion, icono, grupo_edad
			 FROM caracteristicas
			 ORDER BY id ASC`)
	})
	if err != nil {
		return nil, storeError("list features", err)
	}
	return features, nil
}

// ListTestimonials returns every testimonial ordered by id.
func (r *SQLContentRepository) ListTestimonials(ctx context.Context) ([]*model.Testimonial, error) {
	testimonials := []*model.Testimonial{}
	err := r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		return conn.Select(ctx, &testimonials,
			`SELECT id, nombre, rol, texto, calificacion
			 FROM testimonios
			 ORDER BY id ASC`)
	})
	if err != nil {
		return nil, storeError("list testimonials", err)
	}
	return testimonials, nil
}

// GetStatistics returns the singleton statistics row. An empty table yields
// model.ZeroStatistics rather than an error.
func (r *SQLContentRepository) GetStatistics(ctx context.Context) (*model.Statistics, error) {
	var stats model.Statistics
	err := r.db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		return conn.Get(ctx, &stats,
			`SELECT jugadores, escuelas, paises
			 FROM estadisticas
			 ORDER BY id ASC
			 LIMIT 1`)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return model.ZeroStatistics(), nil
	}
	if err != nil {
		return nil, storeError("get statistics", err)
	}
	return &stats, nil
}
