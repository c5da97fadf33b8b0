// Package assessment provides the self-assessment domain module:
// question banks, scoring, report generation and lead capture.
package assessment

import (
	"leadmagnet_backend/internal/assessment/handler"
	"leadmagnet_backend/internal/assessment/repository"
	"leadmagnet_backend/internal/assessment/service"
	"leadmagnet_backend/internal/events"
	apphttp "leadmagnet_backend/internal/http"
	"leadmagnet_backend/platform/logger"
	"leadmagnet_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module represents the assessment domain module.
type Module struct {
	handler      *handler.Handler
	adminHandler *handler.AdminHandler
	service      *service.Service
}

// NewModule creates a new assessment module with all dependencies wired.
func NewModule(pool *pgxpool.Pool, eventBus *events.InMemoryBus, val *validator.Validator, log *logger.Logger, baseURL string) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log, baseURL)
	svc.SetEventBus(eventBus)
	h := handler.New(svc, val)
	ah := handler.NewAdminHandler(svc)

	return &Module{
		handler:      h,
		adminHandler: ah,
		service:      svc,
	}
}

// Name returns the module name for logging.
func (m *Module) Name() string {
	return "assessment"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes registers the module's routes.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	submit := ctx.V1.Group("/assessments")
	submit.Use(ctx.SubmitRateLimiter.RateLimit())
	m.handler.RegisterSubmit(submit)

	// Email capture and report retrieval get the default limits.
	assessments := ctx.V1.Group("/assessments")
	reports := ctx.V1.Group("/reports")
	m.handler.RegisterRoutes(assessments, reports)

	m.adminHandler.RegisterRoutes(ctx.Admin)
}

// Compile-time check that Module implements http.Module.
var _ apphttp.Module = (*Module)(nil)
