package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements the Sender interface via a direct SMTP
// connection using go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a new SMTPSender with the given SMTP credentials.
func NewSMTPSender(host string, port int, username, password, fromEmail, fromName string) *SMTPSender {
	return &SMTPSender{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

// SendReportReadyEmail delivers the unlock confirmation with the report link.
func (s *SMTPSender) SendReportReadyEmail(ctx context.Context, toEmail string, data ReportReadyData) error {
	content, err := renderEmailTemplate("report_ready.html", reportReadyEmailData{
		baseEmailData: baseEmailData{
			Title:    subjectReportReady,
			Heading:  "Your assessment results are ready",
			CTALabel: "View your full report",
			CTAURL:   data.ReportURL,
		},
		FirstName:    data.FirstName,
		CompanyName:  data.CompanyName,
		OverallScore: data.OverallScore,
		RiskLevel:    data.RiskLevel,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectReportReady, content)
}

// SendDeepDiveEmail delivers the follow-up analysis of the weakest
// category. The body arrives as generated text; line breaks become
// paragraphs in the wrapper template.
func (s *SMTPSender) SendDeepDiveEmail(ctx context.Context, toEmail, subject, body string) error {
	content, err := renderEmailTemplate("deep_dive.html", deepDiveEmailData{
		baseEmailData: baseEmailData{
			Title:   subject,
			Heading: subject,
		},
		Paragraphs: splitParagraphs(body),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

// SendCustomEmail delivers prebuilt HTML content.
func (s *SMTPSender) SendCustomEmail(ctx context.Context, toEmail, subject, htmlContent string) error {
	return s.send(ctx, toEmail, subject, htmlContent)
}

var _ Sender = (*SMTPSender)(nil)
