// Package crm provides the ActiveCampaign integration for captured leads.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadmagnet_backend/platform/logger"
)

const defaultHTTPTimeout = 10 * time.Second

const tagDescription = "Auto-generated from assessment lead magnet"

// riskTags maps a risk level to the tag set applied in ActiveCampaign.
// Automations are triggered off these tags, not called directly.
var riskTags = map[string][]string{
	"CRITICAL": {"Lead Magnet", "Critical Risk", "High Priority", "Hot Lead"},
	"HIGH":     {"Lead Magnet", "High Risk", "Medium Priority"},
	"MODERATE": {"Lead Magnet", "Moderate Risk", "Low Priority"},
	"LOW":      {"Lead Magnet", "Low Risk", "Nurture"},
}

var defaultTags = []string{"Lead Magnet"}

// Client talks to the ActiveCampaign v3 API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

// New creates a new ActiveCampaign client. An empty base URL or API key
// yields a disabled client: Enabled reports false and callers skip sync.
func New(baseURL, apiKey string, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		log:        log,
	}
}

// Enabled reports whether the integration is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != "" && c.apiKey != ""
}

// Contact is the contact payload for contact/sync.
type Contact struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
}

type contactSyncRequest struct {
	Contact Contact `json:"contact"`
}

type contactSyncResponse struct {
	Contact struct {
		ID string `json:"id"`
	} `json:"contact"`
}

// UpsertContact creates or updates a contact and returns its ID. The
// sync endpoint matches on email.
func (c *Client) UpsertContact(ctx context.Context, contact Contact) (string, error) {
	var resp contactSyncResponse
	if err := c.post(ctx, "/api/3/contact/sync", contactSyncRequest{Contact: contact}, &resp); err != nil {
		return "", fmt.Errorf("failed to sync contact: %w", err)
	}
	if resp.Contact.ID == "" {
		return "", fmt.Errorf("contact sync returned no contact id")
	}
	return resp.Contact.ID, nil
}

type tagRequest struct {
	Tag struct {
		Tag         string `json:"tag"`
		TagType     string `json:"tagType"`
		Description string `json:"description"`
	} `json:"tag"`
}

type tagResponse struct {
	Tag struct {
		ID string `json:"id"`
	} `json:"tag"`
}

type tagSearchResponse struct {
	Tags []struct {
		ID string `json:"id"`
	} `json:"tags"`
}

// ensureTag creates a tag if it does not exist and returns its ID,
// falling back to a search when creation is rejected as a duplicate.
func (c *Client) ensureTag(ctx context.Context, name string) (string, error) {
	var req tagRequest
	req.Tag.Tag = name
	req.Tag.TagType = "contact"
	req.Tag.Description = tagDescription

	var created tagResponse
	if err := c.post(ctx, "/api/3/tags", req, &created); err == nil && created.Tag.ID != "" {
		return created.Tag.ID, nil
	}

	var found tagSearchResponse
	if err := c.get(ctx, "/api/3/tags?search="+url.QueryEscape(name), &found); err != nil {
		return "", fmt.Errorf("failed to look up tag %q: %w", name, err)
	}
	if len(found.Tags) == 0 {
		return "", fmt.Errorf("tag %q not found after create attempt", name)
	}
	return found.Tags[0].ID, nil
}

type contactTagRequest struct {
	ContactTag struct {
		Contact string `json:"contact"`
		Tag     string `json:"tag"`
	} `json:"contactTag"`
}

// TagContact applies the tag set for a risk level to a contact. Tag
// failures are logged per tag; the first hard error is returned so the
// caller can record the outcome.
func (c *Client) TagContact(ctx context.Context, contactID, riskLevel string) error {
	tags, ok := riskTags[riskLevel]
	if !ok {
		tags = defaultTags
	}

	var firstErr error
	for _, name := range tags {
		tagID, err := c.ensureTag(ctx, name)
		if err != nil {
			c.log.CRMEvent("tag_contact", "", false, err.Error())
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		var req contactTagRequest
		req.ContactTag.Contact = contactID
		req.ContactTag.Tag = tagID
		if err := c.post(ctx, "/api/3/contactTags", req, nil); err != nil {
			c.log.CRMEvent("tag_contact", "", false, err.Error())
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to apply tag %q: %w", name, err)
			}
		}
	}
	return firstErr
}

type contactAutomationRequest struct {
	ContactAutomation struct {
		Contact    string `json:"contact"`
		Automation string `json:"automation"`
	} `json:"contactAutomation"`
}

// AddToAutomation enrolls a contact in an automation.
func (c *Client) AddToAutomation(ctx context.Context, contactID, automationID string) error {
	var req contactAutomationRequest
	req.ContactAutomation.Contact = contactID
	req.ContactAutomation.Automation = automationID
	if err := c.post(ctx, "/api/3/contactAutomations", req, nil); err != nil {
		return fmt.Errorf("failed to add contact to automation: %w", err)
	}
	return nil
}

type fieldsResponse struct {
	Fields []struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	} `json:"fields"`
}

type fieldValueRequest struct {
	FieldValue struct {
		Contact string `json:"contact"`
		Field   string `json:"field"`
		Value   string `json:"value"`
	} `json:"fieldValue"`
}

// SetCustomFields writes custom field values keyed by field title.
// Fields that do not exist in the account are skipped.
func (c *Client) SetCustomFields(ctx context.Context, contactID string, fields map[string]string) error {
	var defs fieldsResponse
	if err := c.get(ctx, "/api/3/fields", &defs); err != nil {
		return fmt.Errorf("failed to fetch field definitions: %w", err)
	}

	fieldIDs := make(map[string]string, len(defs.Fields))
	for _, f := range defs.Fields {
		fieldIDs[f.Title] = f.ID
	}

	var firstErr error
	for title, value := range fields {
		fieldID, ok := fieldIDs[title]
		if !ok {
			continue
		}
		var req fieldValueRequest
		req.FieldValue.Contact = contactID
		req.FieldValue.Field = fieldID
		req.FieldValue.Value = value
		if err := c.post(ctx, "/api/3/fieldValues", req, nil); err != nil {
			c.log.CRMEvent("set_field", "", false, fmt.Sprintf("%s: %v", title, err))
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Api-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("activecampaign returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
