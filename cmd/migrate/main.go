package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kansah/site/internal/config"
	"github.com/kansah/site/internal/content"
	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/logging"
	"github.com/kansah/site/internal/repository"
	"github.com/spf13/cobra"
)

const commandTimeout = 2 * time.Minute

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")

	rootCmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Kansah store maintenance",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Create any missing tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd.Context(), func(ctx context.Context, db *database.Manager) error {
				return repository.EnsureSchema(ctx, db)
			})
		},
	})

	var seedFile string
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data into empty tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := content.Default()
			if seedFile != "" {
				var err error
				if catalog, err = content.Load(seedFile); err != nil {
					return err
				}
			}
			return withManager(cmd.Context(), func(ctx context.Context, db *database.Manager) error {
				if err := repository.EnsureSchema(ctx, db); err != nil {
					return err
				}
				res, err := repository.Seed(ctx, db, catalog)
				if err != nil {
					return err
				}
				slog.Info("seed completed",
					"features", res.Features,
					"testimonials", res.Testimonials,
					"statistics", res.Statistics,
				)
				return nil
			})
		},
	}
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "YAML catalogue to load (defaults to the built-in one)")
	rootCmd.AddCommand(seedCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Verify the store is reachable",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withManager(cmd.Context(), func(ctx context.Context, db *database.Manager) error {
				if err := db.Ping(ctx); err != nil {
					return err
				}
				slog.Info("database reachable", "driver", db.Driver())
				return nil
			})
		},
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logging.Fatal("migrate failed", "command", os.Args[1:], "error", err)
	}
}

// withManager loads config and logging, then runs fn against a fresh manager.
func withManager(ctx context.Context, fn func(ctx context.Context, db *database.Manager) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	closer := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer closer.Close()

	db, err := database.NewManager(cfg.DB)
	if err != nil {
		return err
	}
	slog.Debug("using database", "dsn", cfg.DB.Redacted())

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()
	return fn(ctx, db)
}
