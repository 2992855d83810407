package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kansah/site/internal/config"
	"github.com/kansah/site/internal/content"
	"github.com/kansah/site/internal/database"
	"github.com/kansah/site/internal/handler"
	"github.com/kansah/site/internal/logging"
	"github.com/kansah/site/internal/repository"
	"github.com/kansah/site/internal/service"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}

	logFile := logging.Setup(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})
	defer logFile.Close()

	if err := cfg.Validate(); err != nil {
		logging.Fatal("invalid config", "error", err)
	}

	db, err := database.NewManager(cfg.DB)
	if err != nil {
		logging.Fatal("database config failed", "error", err)
	}

	ctx := context.Background()
	if err := db.Ping(ctx); err != nil {
		logging.Fatal("failed to connect to database", "dsn", cfg.DB.Redacted(), "error", err)
	}
	if err := repository.EnsureSchema(ctx, db); err != nil {
		logging.Fatal("ensure schema failed", "error", err)
	}

	var contentRepo repository.ContentRepository = repository.NewSQLContentRepository(db)
	if cfg.ContentSource == config.SourceStatic {
		contentRepo = content.Default()
	}

	contactRepo := repository.NewSQLContactRepository(db)
	subscriptionRepo := repository.NewSQLSubscriptionRepository(db)
	contentService := service.NewContentService(contentRepo)
	contactService := service.NewContactService(contactRepo)
	newsletterService := service.NewNewsletterService(subscriptionRepo)

	pages, err := handler.NewPageHandler(contentService)
	if err != nil {
		logging.Fatal("load templates failed", "error", err)
	}

	limiter := handler.NewRateLimiter(cfg.RateLimitPerMinute, cfg.TrustedProxyCount)
	defer limiter.Close()

	router := handler.NewRouter(handler.Routes{
		Base:       handler.New(db, cfg.FrontendURL),
		Pages:      pages,
		Contact:    handler.NewContactHandler(contactService),
		Newsletter: handler.NewNewsletterHandler(newsletterService),
		API:        handler.NewContentAPIHandler(contentService),
		Limiter:    limiter,
	})

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server listening",
			"addr", server.Addr,
			"mode", cfg.Mode,
			"driver", db.Driver(),
			"content_source", cfg.ContentSource,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
