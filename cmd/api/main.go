package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"calldex_backend/internal/auth"
	"calldex_backend/internal/contacts"
	"calldex_backend/internal/directory"
	"calldex_backend/internal/http/router"
	sharedval "calldex_backend/internal/shared/validator"
	"calldex_backend/internal/spam"
	"calldex_backend/platform/cache"
	"calldex_backend/platform/config"
	"calldex_backend/platform/db"
	"calldex_backend/platform/httpkit"
	"calldex_backend/platform/logger"
	"calldex_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	if err := withRetry(ctx, log, "database migrations", 5, 2*time.Second, func() error {
		return db.RunMigrations(ctx, cfg, "migrations")
	}); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	log.Info("database migrations complete")

	var pool *pgxpool.Pool
	if err := withRetry(ctx, log, "database connection", 5, 2*time.Second, func() error {
		p, err := db.NewPool(ctx, cfg)
		if err != nil {
			return err
		}
		pool = p
		return nil
	}); err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()
	log.Info("database connection established")

	spamCounts, closeCache := initSpamCache(ctx, cfg, log)
	if closeCache != nil {
		defer closeCache()
	}

	// Shared validator instance for dependency injection
	val := validator.New()
	if err := sharedval.Register(val); err != nil {
		log.Error("failed to register validation rules", "error", err)
		panic("failed to register validation rules: " + err.Error())
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	authModule := auth.NewModule(pool, cfg, log, val)
	contactsModule := contacts.NewModule(pool, val, log)
	directoryModule := directory.NewModule(pool, val, log)
	spamModule := spam.NewModule(pool, spamCounts, val, log)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	authChain := router.AuthChain{
		httpkit.AuthRequired(cfg),
		authModule.IdentityLoader(),
	}

	engine := router.New(cfg, log, authChain,
		authModule,
		contactsModule,
		directoryModule,
		spamModule,
	)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initSpamCache(ctx context.Context, cfg *config.Config, log *logger.Logger) (*cache.Client, func()) {
	if !cfg.IsRedisEnabled() {
		log.Warn("REDIS_URL not configured; spam count caching disabled")
		return nil, nil
	}

	counts, err := cache.New(ctx, cfg.GetRedisURL(), cfg.GetSpamCacheTTL())
	if err != nil {
		log.Error("failed to initialize spam count cache", "error", err)
		return nil, nil
	}
	log.Info("spam count cache initialized", "ttl", cfg.GetSpamCacheTTL().String())

	return counts, func() {
		_ = counts.Close()
	}
}

func withRetry(ctx context.Context, log *logger.Logger, name string, attempts int, baseDelay time.Duration, fn func() error) error {
	if attempts < 1 {
		return fmt.Errorf("%s: invalid retry attempts", name)
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
			log.Warn("retryable operation failed", "operation", name, "attempt", attempt, "error", err)
		}

		if attempt < attempts {
			delay := time.Duration(attempt*attempt) * baseDelay
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}
	}

	return fmt.Errorf("%s: %w", name, lastErr)
}
