package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/handball-stats/internal/club"
	"github.com/mauv0809/handball-stats/internal/config"
	"github.com/mauv0809/handball-stats/internal/database"
	server "github.com/mauv0809/handball-stats/internal/http"
	"github.com/mauv0809/handball-stats/internal/matches"
	"github.com/mauv0809/handball-stats/internal/metrics"
	"github.com/mauv0809/handball-stats/internal/notifier"
	"github.com/mauv0809/handball-stats/internal/notifier/mailjet"
	"github.com/mauv0809/handball-stats/internal/notifier/slack"
	"github.com/mauv0809/handball-stats/internal/processor"
	"github.com/mauv0809/handball-stats/internal/pubsub"
	"github.com/mauv0809/handball-stats/internal/settings"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	clubStore := club.New(db)
	matchStore := matches.NewStore(db)
	settingsStore := settings.New(db)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	// Optional integrations stay untyped nil interfaces when not configured.
	var resultNotifier processor.Notifier
	if cfg.Slack.Enabled() {
		resultNotifier = slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	} else {
		log.Info("Slack is not configured, match results will not be announced")
	}

	var mailer notifier.Mailer
	if cfg.Mail.Enabled() {
		mailer = mailjet.NewMailer(cfg.Mail.PublicKey, cfg.Mail.PrivateKey, cfg.Mail.FromEmail, cfg.Mail.FromName, metricsSvc)
	} else {
		log.Info("Mailjet is not configured, mass email is disabled")
	}

	var events pubsub.PubSubClient
	if cfg.ProjectID != "" {
		client, teardown, err := pubsub.New(context.Background(), cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer teardown()
		events = client
	} else {
		log.Info("GCP_PROJECT is not set, match events are handled in-process")
	}

	proc := processor.New(matchStore, resultNotifier, metricsSvc, events)
	s := server.NewServer(
		clubStore,
		matchStore,
		settingsStore,
		metricsSvc,
		metricsHandler,
		mailer,
		proc,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
