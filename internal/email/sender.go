// Package email delivers transactional email for the lead magnet: the
// report-ready message after email capture and the deep-dive follow-up.
package email

import "context"

// Sender delivers transactional email.
type Sender interface {
	SendReportReadyEmail(ctx context.Context, toEmail string, data ReportReadyData) error
	SendDeepDiveEmail(ctx context.Context, toEmail, subject, body string) error
	SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error
}

// ReportReadyData carries everything the report-ready template renders.
type ReportReadyData struct {
	FirstName    string
	CompanyName  string
	OverallScore int
	RiskLevel    string
	ReportURL    string
}

// NoopSender satisfies Sender without delivering anything. Used when
// SMTP is not configured so the rest of the pipeline stays unchanged.
type NoopSender struct{}

func (NoopSender) SendReportReadyEmail(ctx context.Context, toEmail string, data ReportReadyData) error {
	return nil
}

func (NoopSender) SendDeepDiveEmail(ctx context.Context, toEmail, subject, body string) error {
	return nil
}

func (NoopSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return nil
}

var _ Sender = NoopSender{}
