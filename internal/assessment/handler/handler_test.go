package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"leadmagnet_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// newTestRouter wires the public routes with a nil service; every case
// here must be rejected before the service is reached.
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := New(nil, validator.New())
	r := gin.New()
	h.RegisterSubmit(r.Group("/assessments"))
	h.RegisterRoutes(r.Group("/assessments"), r.Group("/reports"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitRejectsMalformedJSON(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/assessments", "{not json")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid request body") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSubmitRejectsMissingRequiredFields(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/assessments",
		`{"companyName":"Acme Realty"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation failed") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestSubmitRejectsOverlongCompanyName(t *testing.T) {
	long := strings.Repeat("a", 201)
	w := doJSON(t, newTestRouter(), http.MethodPost, "/assessments",
		`{"bankId":"brokerage","companyName":"`+long+`","responses":{"q1":"a"}}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation failed") {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestCaptureEmailRejectsInvalidEmail(t *testing.T) {
	w := doJSON(t, newTestRouter(), http.MethodPost, "/assessments/tok-1/email",
		`{"email":"not-an-email"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "validation failed") {
		t.Errorf("body = %s", w.Body.String())
	}
}
