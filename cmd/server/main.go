// Package main is the entry point for the messaging orchestration server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/yagomat/supra-client-nexus-sub000/internal/config"
	"github.com/yagomat/supra-client-nexus-sub000/internal/handler"
	"github.com/yagomat/supra-client-nexus-sub000/internal/middleware"
	"github.com/yagomat/supra-client-nexus-sub000/internal/provider"
	"github.com/yagomat/supra-client-nexus-sub000/internal/repository"
	"github.com/yagomat/supra-client-nexus-sub000/internal/service"
	"github.com/yagomat/supra-client-nexus-sub000/internal/session"
	"github.com/yagomat/supra-client-nexus-sub000/internal/transport"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		if syncErr := logger.Sync(); syncErr != nil {
			_ = syncErr
		}
	}()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := sqlx.Connect("postgres", cfg.Database.GetDSN())
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", zap.Error(err))
		}
	}()

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	repo := repository.NewRepository(db)
	registry := session.NewRegistry()

	prov, adapter, err := buildTransport(cfg, registry, logger)
	if err != nil {
		logger.Fatal("Failed to build transport", zap.Error(err))
	}

	svc := service.NewService(cfg, repo, registry, prov, adapter, redisClient, logger)

	h := handler.NewHandler(svc, logger)
	router := setupRouter(h, cfg)

	middlewareConfig := &middleware.Config{
		Logger: logger,
		CORS: &middleware.CORSConfig{
			AllowedOrigins:   cfg.Middleware.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", "X-User-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           86400,
		},
		RateLimit:      rate.Limit(cfg.Middleware.RateLimit),
		RateLimitBurst: cfg.Middleware.RateLimitBurst,
		RequestTimeout: 30 * time.Second,
	}

	finalHandler := middleware.Chain(middlewareConfig)(router)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      finalHandler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// The dispatch loop runs from startup so due reminders fire without an
	// operator request.
	if err := svc.Dispatch.Start(); err != nil {
		logger.Error("Failed to start dispatcher on startup", zap.Error(err))
	} else {
		logger.Info("Dispatcher started automatically on application startup")
	}

	go func() {
		logger.Info("Starting server", zap.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	if svc.Dispatch.IsRunning() {
		if err := svc.Dispatch.Stop(); err != nil {
			logger.Error("Failed to stop dispatcher", zap.Error(err))
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

// buildTransport selects the provider and send adapter for the configured
// transport mode. Relay mode needs no embedded provider client; direct mode
// keeps the whole provider connection in-process.
func buildTransport(cfg *config.Config, registry *session.Registry, logger *zap.Logger) (provider.Provider, transport.Adapter, error) {
	switch cfg.Transport.Mode {
	case "direct":
		prov, err := provider.NewWhatsmeowProvider(context.Background(), cfg.Session.StoreDSN, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build direct provider: %w", err)
		}
		return prov, transport.NewDirectAdapter(registry, logger), nil

	case "relay":
		prov, err := provider.NewRelayProvider(&cfg.Transport.Relay, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build relay provider: %w", err)
		}
		adapter, err := transport.NewRelayAdapter(&cfg.Transport, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build relay adapter: %w", err)
		}
		return prov, adapter, nil

	default:
		return nil, nil, fmt.Errorf("unknown transport mode: %q", cfg.Transport.Mode)
	}
}
