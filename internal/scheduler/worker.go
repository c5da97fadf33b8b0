package scheduler

import (
	"context"
	"errors"
	"fmt"

	"leadmagnet_backend/internal/assessment/service"
	"leadmagnet_backend/internal/email"
	"leadmagnet_backend/platform/apperr"
	"leadmagnet_backend/platform/config"
	"leadmagnet_backend/platform/logger"

	"github.com/hibiken/asynq"
)

// Worker processes delayed tasks from the queue.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	svc    *service.Service
	sender email.Sender
	log    *logger.Logger
}

// NewWorker creates the asynq server with handlers registered.
func NewWorker(cfg config.SchedulerConfig, svc *service.Service, sender email.Sender, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetAsynqQueueName()
	if queue == "" {
		queue = "default"
	}

	concurrency := cfg.GetAsynqConcurrency()
	if concurrency < 1 {
		concurrency = 10
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		svc:    svc,
		sender: sender,
		log:    log,
	}

	mux.HandleFunc(TaskDeepDiveEmail, w.handleDeepDiveEmail)

	return w, nil
}

// handleDeepDiveEmail generates and sends the follow-up analysis of the
// lead's weakest category. An expired or deleted assessment drops the
// task; transient failures propagate so asynq retries them.
func (w *Worker) handleDeepDiveEmail(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseDeepDiveEmailPayload(task)
	if err != nil {
		return err
	}

	content, assessment, err := w.svc.DeepDiveEmail(ctx, payload.Token)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) && appErr.Kind == apperr.KindNotFound {
			w.log.Warn("deep dive skipped, assessment gone", "token", payload.Token)
			return nil
		}
		return err
	}

	toEmail := payload.Email
	if assessment.Email != nil && *assessment.Email != "" {
		toEmail = *assessment.Email
	}

	if err := w.sender.SendDeepDiveEmail(ctx, toEmail, content.Subject, content.Body); err != nil {
		return fmt.Errorf("failed to send deep dive email: %w", err)
	}

	w.log.Info("deep dive email sent", "token", payload.Token)
	return nil
}

// Run starts the worker and blocks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("scheduler worker stopped", "error", err)
	}
}
