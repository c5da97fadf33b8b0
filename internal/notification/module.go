// Package notification reacts to domain events with outbound side
// effects: CRM sync, transactional email and the drip schedule. It has
// no HTTP surface.
package notification

import (
	"context"
	"fmt"
	"time"

	"leadmagnet_backend/internal/crm"
	"leadmagnet_backend/internal/email"
	"leadmagnet_backend/internal/events"
	"leadmagnet_backend/internal/scheduler"
	"leadmagnet_backend/platform/logger"
)

// dripDelay is how long after email capture the deep-dive follow-up
// goes out.
const dripDelay = 24 * time.Hour

// Module subscribes to assessment events and fans them out to the CRM,
// the mail sender and the drip scheduler. Every side effect is
// independent: one failing never blocks the others, and none of them
// fail the originating request.
type Module struct {
	sender email.Sender
	crm    *crm.Client
	drip   scheduler.DripScheduler
	log    *logger.Logger
}

// NewModule creates the notification module. The drip scheduler may be
// nil when Redis is not configured; the follow-up email is then skipped.
func NewModule(sender email.Sender, crmClient *crm.Client, drip scheduler.DripScheduler, log *logger.Logger) *Module {
	return &Module{
		sender: sender,
		crm:    crmClient,
		drip:   drip,
		log:    log,
	}
}

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus *events.InMemoryBus) {
	bus.Subscribe(events.AssessmentSubmitted{}.EventName(), m)
	bus.Subscribe(events.EmailCaptured{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.AssessmentSubmitted:
		return m.handleAssessmentSubmitted(ctx, e)
	case events.EmailCaptured:
		return m.handleEmailCaptured(ctx, e)
	default:
		return fmt.Errorf("notification module received unexpected event %s", event.EventName())
	}
}

func (m *Module) handleAssessmentSubmitted(ctx context.Context, e events.AssessmentSubmitted) error {
	m.log.Info("assessment submitted",
		"assessmentId", e.AssessmentID,
		"bank", e.BankID,
		"score", e.OverallScore,
		"riskLevel", e.RiskLevel)
	return nil
}

func (m *Module) handleEmailCaptured(ctx context.Context, e events.EmailCaptured) error {
	if m.crm != nil && m.crm.Enabled() {
		lead := crm.Lead{
			AssessmentID:        e.AssessmentID.String(),
			Email:               e.Email,
			FirstName:           e.FirstName,
			LastName:            e.LastName,
			Phone:               e.Phone,
			CompanyName:         e.CompanyName,
			CompanySize:         e.CompanySize,
			MonthlyTransactions: e.MonthlyTransactions,
			Market:              e.Market,
			OverallScore:        e.OverallScore,
			RiskLevel:           e.RiskLevel,
			ReportURL:           e.ReportURL,
		}
		if err := m.crm.SyncLead(ctx, lead); err != nil {
			m.log.Error("crm sync failed", "email", e.Email, "error", err)
		}
	}

	if err := m.sender.SendReportReadyEmail(ctx, e.Email, email.ReportReadyData{
		FirstName:    e.FirstName,
		CompanyName:  e.CompanyName,
		OverallScore: e.OverallScore,
		RiskLevel:    e.RiskLevel,
		ReportURL:    e.ReportURL,
	}); err != nil {
		m.log.Error("report ready email failed", "email", e.Email, "error", err)
	}

	if m.drip != nil {
		payload := scheduler.DeepDiveEmailPayload{Token: e.Token, Email: e.Email}
		if err := m.drip.ScheduleDeepDiveEmail(ctx, payload, time.Now().Add(dripDelay)); err != nil {
			m.log.Error("deep dive scheduling failed", "token", e.Token, "error", err)
		}
	}

	return nil
}

// Compile-time check that Module implements events.Handler.
var _ events.Handler = (*Module)(nil)
