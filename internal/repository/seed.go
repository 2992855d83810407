package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kansah/site/internal/content"
	"github.com/kansah/site/internal/database"
)

// SeedResult reports how many rows Seed wrote per table.
type SeedResult struct {
	Features     int
	Testimonials int
	Statistics   int
}

// Seed loads the catalogue into the reference tables. Each table is only
// filled when it is empty, so running Seed twice changes nothing.
func Seed(ctx context.Context, db *database.Manager, catalog *content.Catalog) (SeedResult, error) {
	var res SeedResult
	err := db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		empty, err := isEmpty(ctx, conn, TableFeatures)
		if err != nil {
			return err
		}
		if empty {
			for _, f := range catalog.Features {
				if _, err := conn.Exec(ctx,
					`INSERT INTO caracteristicas (titulo, descripcion, icono, grupo_edad) VALUES (?, ?, ?, ?)`,
					f.Title, f.Description, f.Icon, f.AgeGroup,
				); err != nil {
					return fmt.Errorf("seed feature %q: %w", f.Title, err)
				}
				res.Features++
			}
		}

		empty, err = isEmpty(ctx, conn, TableTestimonials)
		if err != nil {
			return err
		}
		if empty {
			for _, t := range catalog.Testimonials {
				if _, err := conn.Exec(ctx,
					`INSERT INTO testimonios (nombre, rol, texto, calificacion) VALUES (?, ?, ?, ?)`,
					t.Name, t.Role, t.Text, t.Rating,
				); err != nil {
					return fmt.Errorf("seed testimonial %q: %w", t.Name, err)
				}
				res.Testimonials++
			}
		}

		empty, err = isEmpty(ctx, conn, TableStatistics)
		if err != nil {
			return err
		}
		if empty && catalog.Stats != nil {
			if _, err := conn.Exec(ctx,
				`INSERT INTO estadisticas (jugadores, escuelas, paises) VALUES (?, ?, ?)`,
				catalog.Stats.Players, catalog.Stats.Schools, catalog.Stats.Countries,
			); err != nil {
				return fmt.Errorf("seed statistics: %w", err)
			}
			res.Statistics++
		}

		return conn.Commit()
	})
	if err != nil {
		return SeedResult{}, storeError("seed", err)
	}
	slog.Info("reference data seeded",
		"features", res.Features,
		"testimonials", res.Testimonials,
		"statistics", res.Statistics,
	)
	return res, nil
}

// isEmpty reports whether table has no rows. table must be one of the
// Table* constants.
func isEmpty(ctx context.Context, conn *database.Conn, table string) (bool, error) {
	var n int
	if err := conn.Get(ctx, &n, "SELECT COUNT(*) FROM "+table); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return n == 0, nil
}
