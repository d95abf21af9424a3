package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gitea.com/go-chi/session"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/blogem/content-audit/authenticator"
	"github.com/blogem/content-audit/config"
	"github.com/blogem/content-audit/controllers"
	"github.com/blogem/content-audit/database"
	"github.com/blogem/content-audit/logging"
	"github.com/blogem/content-audit/metrics"
	auditmiddleware "github.com/blogem/content-audit/middleware"
	"github.com/blogem/content-audit/registry"
	"github.com/blogem/content-audit/repositories"
	"github.com/blogem/content-audit/services"
)

// application holds the wired components of the service
type application struct {
	cfg      *config.Config
	logger   *logrus.Logger
	db       *sql.DB
	redis    *redis.Client
	registry registry.Registry
	repos    *repositories.Repositories
	services *services.Services
	metrics  *metrics.Metrics
	// auth is nil when OIDC is not configured
	auth authenticator.Provider
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	if err != nil {
		logrus.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := newApplication(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize: %v", err)
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":      cfg.Port,
			"db_driver": cfg.DBDriver,
			"api":       "/" + cfg.APIPrefix,
			"admin":     cfg.AdminPrefix,
			"auth":      app.auth != nil,
		}).Info("Content audit service starting")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}

// newApplication opens storage and builds every component from cfg
func newApplication(ctx context.Context, cfg *config.Config, logger *logrus.Logger) (*application, error) {
	dialect, err := database.DialectFor(cfg.DBDriver)
	if err != nil {
		return nil, err
	}

	db, err := database.InitializeDatabase(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &application{cfg: cfg, logger: logger, db: db}

	if app.registry, err = loadRegistry(ctx, cfg, logger); err != nil {
		db.Close()
		return nil, err
	}

	app.repos = repositories.NewRepositories(db, dialect)
	if cfg.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := app.redis.Ping(pingCtx).Err(); err != nil {
			logger.WithError(err).Warn("Redis unreachable, settings reads fall back to the database")
		}
		cancel()
		app.repos.Settings = repositories.NewCachedSettingsRepository(app.repos.Settings, app.redis, cfg.SettingsCacheTTL, logger)
	}

	app.services = services.NewServices(app.repos, app.registry, logger)

	if cfg.MetricsEnabled {
		app.metrics = metrics.NewMetrics(prometheus.NewRegistry())
	}

	if cfg.OIDC.Enabled() {
		provider, err := authenticator.NewOpenIDProvider(ctx, authenticator.OpenIDConfig{
			Domain:       cfg.OIDC.Domain,
			ClientID:     cfg.OIDC.ClientID,
			ClientSecret: cfg.OIDC.ClientSecret,
			CallbackURL:  cfg.OIDC.CallbackURL,
		})
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to initialize OpenID provider: %w", err)
		}
		app.auth = provider
	}

	return app, nil
}

// loadRegistry reads the descriptor file, optionally caching lookups and watching for changes
func loadRegistry(ctx context.Context, cfg *config.Config, logger logrus.FieldLogger) (registry.Registry, error) {
	types, err := registry.LoadFile(cfg.RegistryPath)
	if err != nil {
		return nil, err
	}

	dir := registry.NewDirectory(types)
	var reg registry.Registry = dir
	if cfg.RegistryCacheSize > 0 {
		cached, err := registry.NewCached(dir, cfg.RegistryCacheSize)
		if err != nil {
			return nil, err
		}
		reg = cached
	}

	if cfg.RegistryWatch {
		if err := registry.Watch(ctx, cfg.RegistryPath, dir, logger); err != nil {
			return nil, err
		}
	}

	logger.WithField("content_types", len(dir.Auditable())).Info("Content type registry loaded")
	return reg, nil
}

// Close releases the database and redis connections
func (app *application) Close() {
	if app.redis != nil {
		app.redis.Close()
	}
	if app.db != nil {
		app.db.Close()
	}
}

// setupRouter configures all routes
func setupRouter(app *application) *chi.Mux {
	cfg := app.cfg
	ctrl := controllers.NewControllers(controllers.Dependencies{
		Services:   app.services,
		Documents:  app.repos.Documents,
		Registry:   app.registry,
		DB:         app.db,
		Redis:      app.redis,
		Logger:     app.logger,
		AfterLogin: cfg.AdminPrefix + "/logs",
	})

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second)) // 60 second timeout for OAuth callbacks
	r.Use(middleware.Compress(5))

	// Session middleware; must run before anything reading the session
	r.Use(session.Sessioner(session.Options{
		Provider:    "memory",
		CookieName:  "content_audit_session",
		Secure:      cfg.UseHTTPS,
		Gclifetime:  3600,
		Maxlifetime: 3600,
	}))
	r.Use(auditmiddleware.SessionUser)
	if app.auth != nil {
		r.Use(auditmiddleware.Authenticate(app.auth, app.logger))
	}

	r.Use(auditmiddleware.AuditLogger(auditmiddleware.AuditOptions{
		Registry:     app.registry,
		Settings:     app.services.Settings,
		Entities:     app.repos.Documents,
		Recorder:     app.services.Audit,
		Logger:       app.logger,
		Metrics:      app.metrics,
		APIPrefix:    cfg.APIPrefix,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}))

	// PUBLIC ROUTES
	r.Get("/health", ctrl.Health.Index)
	if app.metrics != nil {
		r.Handle("/metrics", app.metrics.Handler())
	}

	r.Route("/auth", func(r chi.Router) {
		if app.auth != nil {
			r.Get("/login", ctrl.Auth.Login(app.auth))
			r.Get("/callback", ctrl.Auth.Callback(app.auth))
		}
		r.Post("/logout", ctrl.Auth.Logout)
		r.Get("/me", ctrl.Auth.Me)
	})

	// Content API observed by the audit middleware
	r.Route("/"+cfg.APIPrefix, ctrl.Content.Routes)

	// ADMIN ROUTES (authentication required when OIDC is configured)
	r.Route(cfg.AdminPrefix, func(r chi.Router) {
		if app.auth != nil {
			r.Use(auditmiddleware.RequireAuth)
		}

		r.Get("/content-type-settings", ctrl.Settings.Index)
		r.Put("/content-type-settings/{contentType}", ctrl.Settings.Update)

		r.Route("/logs", func(r chi.Router) {
			r.Get("/", ctrl.Logs.Index)
			r.Get("/{contentType}/{entityId}", ctrl.Logs.Entity)
			r.Get("/{contentType}/{entityId}/recent", ctrl.Logs.Recent)
		})
	})

	return r
}
