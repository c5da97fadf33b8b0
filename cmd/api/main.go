package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadmagnet_backend/internal/assessment"
	"leadmagnet_backend/internal/assessment/narrative"
	"leadmagnet_backend/internal/crm"
	"leadmagnet_backend/internal/email"
	"leadmagnet_backend/internal/events"
	apphttp "leadmagnet_backend/internal/http"
	"leadmagnet_backend/internal/http/router"
	"leadmagnet_backend/internal/notification"
	"leadmagnet_backend/internal/scheduler"
	"leadmagnet_backend/migrations"
	"leadmagnet_backend/platform/cache"
	"leadmagnet_backend/platform/config"
	"leadmagnet_backend/platform/db"
	"leadmagnet_backend/platform/logger"
	"leadmagnet_backend/platform/validator"

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
		return db.RunMigrations(ctx, cfg, migrations.FS, migrations.Dir)
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

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	dripScheduler, closeScheduler := initDripScheduler(cfg, log)
	if closeScheduler != nil {
		defer closeScheduler()
	}

	sender := initSender(cfg, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// Narrative cache: Redis when available, in-process otherwise
	store, closeStore := initCacheStore(ctx, cfg, log)
	if closeStore != nil {
		defer closeStore()
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	assessmentModule := assessment.NewModule(pool, eventBus, val, log, cfg.GetAppBaseURL())

	if cfg.IsNarrativeEnabled() {
		client := narrative.NewClient(cfg.GetAnthropicAPIKey(), log)
		assessmentModule.Service().SetNarrator(narrative.NewGenerator(client, store, log))
		log.Info("narrative generation enabled")
	} else {
		log.Warn("ANTHROPIC_API_KEY not configured; reports fall back to tier summaries")
	}

	// Notification module subscribes to domain events (not HTTP-facing)
	crmClient := crm.New(cfg.GetACAPIURL(), cfg.GetACAPIKey(), log)
	if !crmClient.Enabled() {
		log.Warn("ActiveCampaign not configured; captured leads stay in the database only")
	}
	notificationModule := notification.NewModule(sender, crmClient, dripScheduler, log)
	notificationModule.RegisterHandlers(eventBus)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		Health:   db.NewPoolAdapter(pool),
		EventBus: eventBus,
		Modules: []apphttp.Module{
			assessmentModule,
		},
	}

	engine := router.New(app)

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- engine.Run(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = shutdownCtx
	case err := <-srvErr:
		if err != nil {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

func initDripScheduler(cfg config.SchedulerConfig, log *logger.Logger) (scheduler.DripScheduler, func()) {
	if cfg.GetRedisURL() == "" {
		log.Warn("REDIS_URL not configured; deep dive drip emails disabled")
		return nil, nil
	}

	dripClient, err := scheduler.NewClient(cfg)
	if err != nil {
		log.Error("failed to initialize drip scheduler client", "error", err)
		return nil, nil
	}

	return dripClient, func() {
		_ = dripClient.Close()
	}
}

func initSender(cfg *config.Config, log *logger.Logger) email.Sender {
	if !cfg.GetEmailEnabled() || cfg.GetSMTPHost() == "" {
		log.Warn("SMTP not configured; transactional email disabled")
		return email.NoopSender{}
	}
	return email.NewSMTPSender(
		cfg.GetSMTPHost(),
		cfg.GetSMTPPort(),
		cfg.GetSMTPUsername(),
		cfg.GetSMTPPassword(),
		cfg.GetEmailFromAddress(),
		cfg.GetEmailFromName(),
	)
}

func initCacheStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (cache.Store, func()) {
	if cfg.GetRedisURL() != "" {
		redisStore, err := cache.NewRedisStore(ctx, cfg.GetRedisURL())
		if err == nil {
			log.Info("narrative cache backed by redis")
			return redisStore, func() { _ = redisStore.Close() }
		}
		log.Warn("redis cache unavailable, using in-process cache", "error", err)
	}
	memStore := cache.NewMemoryStore()
	return memStore, memStore.Close
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

	return errors.New(name + ": " + lastErr.Error())
}
