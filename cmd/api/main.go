// Package main wires the trip planner API together and starts the HTTP
// server. No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"tripplanner/config"
	"tripplanner/internal/adapters/email"
	httpdelivery "tripplanner/internal/delivery/http"
	"tripplanner/internal/delivery/http/controllers"
	"tripplanner/internal/delivery/http/middleware"
	"tripplanner/internal/repository/postgres"
	"tripplanner/internal/services"
	"tripplanner/migrations"
)

const serviceTimeout = 10 * time.Second

// @title Trip Planner API
// @version 1.0
// @description Backend for planning trips: invites, confirmations, activities, and links.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("failed to set migration dialect", "error", err)
		os.Exit(1)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}
	logger.Info("database ready")

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SESRegion,
			AccessKeyID:        cfg.Email.SESAccessKeyID,
			SecretAccessKey:    cfg.Email.SESSecretAccessKey,
			InsecureSkipVerify: cfg.Email.SESInsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "error", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	tripRepo := postgres.NewTripRepository(db)
	participantRepo := postgres.NewParticipantRepository(db)
	activityRepo := postgres.NewActivityRepository(db)
	linkRepo := postgres.NewLinkRepository(db)

	tripService := services.NewTripService(tripRepo, participantRepo, emailService, cfg.APIBaseURL, serviceTimeout)
	participantService := services.NewParticipantService(participantRepo, tripRepo, emailService, cfg.APIBaseURL, serviceTimeout)
	activityService := services.NewActivityService(activityRepo, tripRepo, serviceTimeout)
	linkService := services.NewLinkService(linkRepo, tripRepo, serviceTimeout)

	mux := httpdelivery.NewRouter(
		controllers.NewTripController(logger, tripService, cfg.WebBaseURL),
		controllers.NewParticipantController(logger, participantService, cfg.WebBaseURL),
		controllers.NewActivityController(logger, activityService),
		controllers.NewLinkController(logger, linkService),
		controllers.NewHealthController(),
	)
	handler := middleware.CORS(cfg.CORSAllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server started", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
	logger.Info("server stopped")
}
