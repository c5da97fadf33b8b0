package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadmagnet_backend/internal/assessment/narrative"
	"leadmagnet_backend/internal/assessment/repository"
	"leadmagnet_backend/internal/assessment/service"
	"leadmagnet_backend/internal/email"
	"leadmagnet_backend/internal/scheduler"
	"leadmagnet_backend/platform/cache"
	"leadmagnet_backend/platform/config"
	"leadmagnet_backend/platform/db"
	"leadmagnet_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting worker", "env", cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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

	sender := initSender(cfg, log)

	// The worker generates deep-dive narratives, so it carries the same
	// service wiring as the API minus the HTTP layer.
	svc := service.New(repository.New(pool), log, cfg.GetAppBaseURL())
	if cfg.IsNarrativeEnabled() {
		store, closeStore := initCacheStore(ctx, cfg, log)
		if closeStore != nil {
			defer closeStore()
		}
		client := narrative.NewClient(cfg.GetAnthropicAPIKey(), log)
		svc.SetNarrator(narrative.NewGenerator(client, store, log))
	} else {
		log.Warn("ANTHROPIC_API_KEY not configured; deep dive tasks will fail until it is set")
	}

	worker, err := scheduler.NewWorker(cfg, svc, sender, log)
	if err != nil {
		log.Error("failed to initialize worker", "error", err)
		panic("failed to initialize worker: " + err.Error())
	}

	log.Info("worker listening for tasks", "queue", cfg.GetAsynqQueueName())
	worker.Run(ctx)
	log.Info("worker stopped")
}

func initSender(cfg *config.Config, log *logger.Logger) email.Sender {
	if !cfg.GetEmailEnabled() || cfg.GetSMTPHost() == "" {
		log.Warn("SMTP not configured; deep dive emails will be dropped")
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
