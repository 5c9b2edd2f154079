package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpapi "github.com/aryamangoenka/User-Management-System/internal/identity/http"
	"github.com/aryamangoenka/User-Management-System/internal/identity/service"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store"
	"github.com/aryamangoenka/User-Management-System/internal/identity/store/drivers/sqlite"
	"github.com/aryamangoenka/User-Management-System/pkg/cryptox"
	"github.com/aryamangoenka/User-Management-System/pkg/jwtx"
	"github.com/aryamangoenka/User-Management-System/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the identity service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db    store.Store
	codec jwtx.Codec

	bridge        *service.Bridge // nil when the bridge is disabled
	authenticator *service.Authenticator
	gate          *service.Gate
	tokenService  *service.TokenService
	userService   *service.UserService
	rolesService  *service.RolesService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "identity-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.SharedSecret == "" {
		return nil, errors.New("IDENTITY_SHARED_SECRET is required")
	}
	if cfg.Algorithm != "HS256" {
		return nil, fmt.Errorf("unsupported token algorithm %q", cfg.Algorithm)
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	codec, err := jwtx.NewHS256([]byte(cfg.SharedSecret), cfg.Issuer, cfg.ClockLeeway)
	if err != nil {
		_ = app.db.Close()
		return nil, fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("identity service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"bridge_enabled", app.bridge != nil,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down identity service...")

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

	app.logger.Info("identity service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations.
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

// initServices initializes all business logic services.
func (app *Application) initServices() {
	// Bridge presence is decided once, here. Everything downstream branches
	// on the nil field, never on configuration.
	if app.cfg.BridgeEnabled {
		app.bridge = &service.Bridge{
			Store:      app.db,
			Codec:      app.codec,
			UnifiedTTL: app.cfg.UnifiedTTL,
		}
	}

	app.authenticator = &service.Authenticator{
		Store:            app.db,
		Codec:            app.codec,
		Bridge:           app.bridge,
		RevalidateNative: app.cfg.RevalidateNative,
	}
	app.gate = &service.Gate{Store: app.db}
	app.tokenService = &service.TokenService{
		Store:     app.db,
		Codec:     app.codec,
		AccessTTL: app.cfg.AccessTTL,
	}
	app.userService = &service.UserService{Store: app.db}
	app.rolesService = &service.RolesService{Store: app.db}
}

// initHTTP builds the router and HTTP server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(app.codec, BuildVersion, app.db, app.logger)
	router.Authenticator = app.authenticator
	router.Bridge = app.bridge
	router.Gate = app.gate
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.RolesService = app.rolesService
	router.ApplyRoutes()

	app.router = router
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: router,
	}
}
