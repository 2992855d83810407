package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kansah/site/internal/database"
)

// Table names. suscripciones is the canonical subscription table.
const (
	TableContacts      = "contactos"
	TableSubscriptions = "suscripciones"
	TableFeatures      = "caracteristicas"
	TableTestimonials  = "testimonios"
	TableStatistics    = "estadisticas"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS suscripciones (
		id                SERIAL PRIMARY KEY,
		email             VARCHAR(255) NOT NULL UNIQUE,
		fecha_suscripcion TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		activo            BOOLEAN NOT NULL DEFAULT TRUE
	)`,
	`CREATE TABLE IF NOT EXISTS contactos (
		id          SERIAL PRIMARY KEY,
		nombre      VARCHAR(255) NOT NULL,
		email       VARCHAR(255) NOT NULL,
		asunto      VARCHAR(255) NOT NULL,
		mensaje     TEXT NOT NULL,
		fecha_envio TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		leido       BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS caracteristicas (
		id          SERIAL PRIMARY KEY,
		titulo      VARCHAR(255) NOT NULL,
		descripcion TEXT NOT NULL,
		icono       VARCHAR(64) NOT NULL,
		grupo_edad  VARCHAR(64) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonios (
		id           SERIAL PRIMARY KEY,
		nombre       VARCHAR(255) NOT NULL,
		rol          VARCHAR(255) NOT NULL,
		texto        TEXT NOT NULL,
		calificacion SMALLINT NOT NULL CHECK (calificacion BETWEEN 1 AND 5)
	)`,
	`CREATE TABLE IF NOT EXISTS estadisticas (
		id        SERIAL PRIMARY KEY,
		jugadores VARCHAR(32) NOT NULL,
		escuelas  VARCHAR(32) NOT NULL,
		paises    VARCHAR(32) NOT NULL
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS suscripciones (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		email             TEXT NOT NULL UNIQUE,
		fecha_suscripcion TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		activo            BOOLEAN NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS contactos (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre      TEXT NOT NULL,
		email       TEXT NOT NULL,
		asunto      TEXT NOT NULL,
		mensaje     TEXT NOT NULL,
		fecha_envio TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		leido       BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS caracteristicas (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		titulo      TEXT NOT NULL,
		descripcion TEXT NOT NULL,
		icono       TEXT NOT NULL,
		grupo_edad  TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS testimonios (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre       TEXT NOT NULL,
		rol          TEXT NOT NULL,
		texto        TEXT NOT NULL,
		calificacion INTEGER NOT NULL CHECK (calificacion BETWEEN 1 AND 5)
	)`,
	`CREATE TABLE IF NOT EXISTS estadisticas (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		jugadores TEXT NOT NULL,
		escuelas  TEXT NOT NULL,
		paises    TEXT NOT NULL
	)`,
}

func schemaFor(driver string) []string {
	if driver == database.DriverSQLite {
		return sqliteSchema
	}
	return postgresSchema
}

// EnsureSchema creates the site's tables if they do not exist. It is safe to
// call repeatedly. A failure here must stop startup.
func EnsureSchema(ctx context.Context, db *database.Manager) error {
	statements := schemaFor(db.Driver())
	err := db.WithConnection(ctx, func(ctx context.Context, conn *database.Conn) error {
		for i, stmt := range statements {
			if _, err := conn.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("schema statement %d: %w", i+1, err)
			}
		}
		return conn.Commit()
	})
	if err != nil {
		return storeError("ensure schema", err)
	}
	slog.Info("schema ready", "driver", db.Driver(), "tables", len(statements))
	return nil
}
