package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julien-sketch/progressive-pulse/internal/pulse/blob"
	httpapi "github.com/julien-sketch/progressive-pulse/internal/pulse/http"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/mail"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/service"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store"
	"github.com/julien-sketch/progressive-pulse/internal/pulse/store/drivers/sqlite"
	"github.com/julien-sketch/progressive-pulse/pkg/jwtx"
	"github.com/julien-sketch/progressive-pulse/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the pulse service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	mailer mail.Mailer
	blobs  blob.Store

	// Services
	projectService  *service.ProjectService
	progressService *service.ProgressService
	documentService *service.DocumentService
	reminderService *service.ReminderService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "pulse",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}
	if err := app.initDrivers(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("pulse starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// RunReminders performs one reminder dispatch run and exits. Used by the CLI
// so schedulers can cron the binary instead of hitting the job endpoint.
func (app *Application) RunReminders(ctx context.Context) error {
	outcomes, err := app.reminderService.Run(slogx.WithContext(ctx, app.logger))
	if err != nil {
		return err
	}

	sent := 0
	for _, o := range outcomes {
		if o.OK {
			sent++
		}
	}
	app.logger.Info("reminder run finished", "recipients", len(outcomes), "sent", sent)
	return app.db.Close()
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down pulse...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("pulse stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initDrivers wires the outbound mail and object storage drivers, falling
// back to local/log drivers in dev when no provider is configured.
func (app *Application) initDrivers() error {
	if app.cfg.ResendAPIKey != "" {
		app.mailer = mail.NewResendMailer(app.cfg.ResendAPIKey)
	} else {
		app.logger.Warn("no mail provider configured, reminders will only be logged")
		app.mailer = &mail.LogMailer{Logger: app.logger}
	}

	if app.cfg.StorageEndpoint != "" {
		minioStore, err := blob.NewMinioStore(blob.MinioConfig{
			Endpoint:  app.cfg.StorageEndpoint,
			AccessKey: app.cfg.StorageAccessKey,
			SecretKey: app.cfg.StorageSecretKey,
			Bucket:    app.cfg.StorageBucket,
			UseSSL:    app.cfg.StorageUseSSL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize object storage: %w", err)
		}
		if err := minioStore.EnsureBucket(context.Background()); err != nil {
			return fmt.Errorf("failed to ensure storage bucket: %w", err)
		}
		app.blobs = minioStore
	} else {
		app.logger.Warn("no object storage configured, documents go to local disk",
			"dir", app.cfg.StorageLocalDir)
		app.blobs = blob.NewFSStore(app.cfg.StorageLocalDir)
	}

	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.projectService = &service.ProjectService{
		Store:  app.db,
		Tokens: &service.TokenGenerator{Projects: app.db.Projects()},
	}
	app.progressService = &service.ProgressService{Store: app.db}
	app.documentService = &service.DocumentService{
		Store: app.db,
		Blobs: app.blobs,
	}
	app.reminderService = &service.ReminderService{
		Store:          app.db,
		Mailer:         app.mailer,
		BaseURL:        app.cfg.BaseURL,
		From:           app.cfg.EmailFrom,
		RetryBackoff:   app.cfg.ReminderBackoff,
		RecipientDelay: app.cfg.RecipientDelay,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	verifier := &jwtx.HS256Verifier{
		Secret: []byte(app.cfg.JWTSecret),
		Issuer: app.cfg.JWTIssuer,
	}

	router := httpapi.NewRouter(
		verifier,
		app.cfg.AdminUser,
		app.cfg.AdminPasswordHash,
		app.cfg.BaseURL,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.ProjectService = app.projectService
	router.ProgressService = app.progressService
	router.DocumentService = app.documentService
	router.ReminderService = app.reminderService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
