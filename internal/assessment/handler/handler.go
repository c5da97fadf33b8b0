package handler

import (
	"net/http"

	"leadmagnet_backend/internal/assessment/service"
	"leadmagnet_backend/internal/assessment/transport"
	"leadmagnet_backend/platform/httpkit"
	"leadmagnet_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const (
	msgInvalidRequest   = "invalid request body"
	msgValidationFailed = "validation failed"
)

// Handler handles HTTP requests for assessments. Every route is public;
// the product is a lead magnet with no signed-in users.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

// New creates a new assessment handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// RegisterSubmit registers the rate-limited submission route.
func (h *Handler) RegisterSubmit(rg *gin.RouterGroup) {
	rg.POST("", h.Submit)
}

// RegisterRoutes registers the remaining public routes.
func (h *Handler) RegisterRoutes(assessments, reports *gin.RouterGroup) {
	assessments.POST("/:token/email", h.CaptureEmail)
	reports.GET("/:token", h.GetReport)
}

// Submit handles POST /api/v1/assessments
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, result)
}

// GetReport handles GET /api/v1/reports/:token
func (h *Handler) GetReport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		httpkit.Error(c, http.StatusBadRequest, "token is required", nil)
		return
	}

	result, err := h.svc.GetReport(c.Request.Context(), token)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// CaptureEmail handles POST /api/v1/assessments/:token/email
func (h *Handler) CaptureEmail(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		httpkit.Error(c, http.StatusBadRequest, "token is required", nil)
		return
	}

	var req transport.CaptureEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, err.Error())
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.CaptureEmail(c.Request.Context(), token, req)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, result)
}

// AdminHandler serves the admin-key protected routes.
type AdminHandler struct {
	svc *service.Service
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc *service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// RegisterRoutes registers the admin routes.
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Stats)
}

// Stats handles GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, stats)
}
