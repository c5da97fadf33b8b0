package crm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"leadmagnet_backend/platform/logger"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

// fakeAC mimics the few ActiveCampaign v3 endpoints the client touches.
type fakeAC struct {
	mu       sync.Mutex
	requests []recordedRequest
	tagIDs   map[string]string
	nextTag  int
}

func newFakeAC() *fakeAC {
	return &fakeAC{tagIDs: map[string]string{}}
}

func (f *fakeAC) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Api-Token") != "test-key" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		var body map[string]any
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&body)
		}
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   body,
		})
		f.mu.Unlock()

		switch r.URL.Path {
		case "/api/3/contact/sync":
			writeJSON(w, map[string]any{"contact": map[string]any{"id": "42"}})
		case "/api/3/tags":
			if r.Method == http.MethodGet {
				writeJSON(w, map[string]any{"tags": []map[string]any{{"id": "901"}}})
				return
			}
			tag, _ := body["tag"].(map[string]any)
			name, _ := tag["tag"].(string)
			f.mu.Lock()
			id, ok := f.tagIDs[name]
			if !ok {
				f.nextTag++
				id = string(rune('0' + f.nextTag))
				f.tagIDs[name] = id
			}
			f.mu.Unlock()
			writeJSON(w, map[string]any{"tag": map[string]any{"id": id}})
		case "/api/3/contactTags", "/api/3/contactAutomations", "/api/3/fieldValues":
			writeJSON(w, map[string]any{})
		case "/api/3/fields":
			writeJSON(w, map[string]any{"fields": []map[string]any{
				{"id": "1", "title": "Brokerage name"},
				{"id": "2", "title": "Overall Score"},
				{"id": "3", "title": "Report URL"},
			}})
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (f *fakeAC) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, req := range f.requests {
		if req.Method == method && req.Path == path {
			n++
		}
	}
	return n
}

func newTestClient(t *testing.T, url string) *Client {
	t.Helper()
	return New(url, "test-key", logger.New("test"))
}

func TestClientDisabledWithoutConfig(t *testing.T) {
	c := New("", "", logger.New("test"))
	if c.Enabled() {
		t.Fatal("expected client without config to be disabled")
	}
	if err := c.SyncLead(context.Background(), Lead{Email: "a@b.com"}); err != nil {
		t.Fatalf("disabled sync should be a no-op, got %v", err)
	}
}

func TestUpsertContact(t *testing.T) {
	fake := newFakeAC()
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	id, err := c.UpsertContact(context.Background(), Contact{Email: "broker@acme.com", FirstName: "Pat"})
	if err != nil {
		t.Fatalf("UpsertContact: %v", err)
	}
	if id != "42" {
		t.Fatalf("expected contact id 42, got %q", id)
	}
}

func TestTagContactAppliesRiskTagSet(t *testing.T) {
	fake := newFakeAC()
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if err := c.TagContact(context.Background(), "42", "CRITICAL"); err != nil {
		t.Fatalf("TagContact: %v", err)
	}

	// CRITICAL maps to four tags, each created and then attached.
	if got := fake.count(http.MethodPost, "/api/3/tags"); got != 4 {
		t.Fatalf("expected 4 tag creations, got %d", got)
	}
	if got := fake.count(http.MethodPost, "/api/3/contactTags"); got != 4 {
		t.Fatalf("expected 4 tag attachments, got %d", got)
	}
}

func TestTagContactUnknownRiskFallsBack(t *testing.T) {
	fake := newFakeAC()
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	if err := c.TagContact(context.Background(), "42", "UNEXPECTED"); err != nil {
		t.Fatalf("TagContact: %v", err)
	}
	if got := fake.count(http.MethodPost, "/api/3/contactTags"); got != 1 {
		t.Fatalf("expected single fallback tag, got %d", got)
	}
}

func TestSetCustomFieldsSkipsUnknownTitles(t *testing.T) {
	fake := newFakeAC()
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.SetCustomFields(context.Background(), "42", map[string]string{
		"Brokerage name": "Acme Realty",
		"Overall Score":  "62",
		"No Such Field":  "ignored",
	})
	if err != nil {
		t.Fatalf("SetCustomFields: %v", err)
	}
	if got := fake.count(http.MethodPost, "/api/3/fieldValues"); got != 2 {
		t.Fatalf("expected 2 field writes, got %d", got)
	}
}

func TestSyncLeadFullFlow(t *testing.T) {
	fake := newFakeAC()
	srv := httptest.NewServer(fake.handler(t))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	err := c.SyncLead(context.Background(), Lead{
		AssessmentID: "abc-123",
		Email:        "broker@acme.com",
		FirstName:    "Pat",
		Phone:        "(212) 555-0123",
		CompanyName:  "Acme Realty",
		OverallScore: 44,
		RiskLevel:    "HIGH",
		ReportURL:    "https://example.com/report/tok",
	})
	if err != nil {
		t.Fatalf("SyncLead: %v", err)
	}

	if got := fake.count(http.MethodPost, "/api/3/contact/sync"); got != 1 {
		t.Fatalf("expected 1 contact sync, got %d", got)
	}
	// HIGH maps to three tags.
	if got := fake.count(http.MethodPost, "/api/3/contactTags"); got != 3 {
		t.Fatalf("expected 3 tag attachments, got %d", got)
	}
	if got := fake.count(http.MethodGet, "/api/3/fields"); got != 1 {
		t.Fatalf("expected field definitions to be fetched once, got %d", got)
	}

	// Phone must arrive in E.164 form.
	fake.mu.Lock()
	defer fake.mu.Unlock()
	for _, req := range fake.requests {
		if req.Path != "/api/3/contact/sync" {
			continue
		}
		contact, _ := req.Body["contact"].(map[string]any)
		if phone, _ := contact["phone"].(string); phone != "+12125550123" {
			t.Fatalf("expected normalized phone, got %q", phone)
		}
	}
}
