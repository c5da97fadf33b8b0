package events

import (
	"github.com/google/uuid"
)

// =============================================================================
// Assessment Domain Events
// =============================================================================

// AssessmentSubmitted is published after a completed assessment has been
// scored and persisted.
type AssessmentSubmitted struct {
	BaseEvent
	AssessmentID uuid.UUID `json:"assessmentId"`
	Token        string    `json:"token"`
	BankID       string    `json:"bankId"`
	CompanyName  string    `json:"companyName"`
	OverallScore int       `json:"overallScore"`
	RiskLevel    string    `json:"riskLevel"`
}

func (e AssessmentSubmitted) EventName() string { return "assessment.submitted" }

// EmailCaptured is published when a visitor unlocks their report by
// leaving contact details. Downstream handlers sync the lead to the CRM,
// send the report link, and schedule the follow-up email.
type EmailCaptured struct {
	BaseEvent
	AssessmentID        uuid.UUID `json:"assessmentId"`
	Token               string    `json:"token"`
	Email               string    `json:"email"`
	FirstName           string    `json:"firstName"`
	LastName            string    `json:"lastName"`
	Phone               string    `json:"phone"`
	CompanyName         string    `json:"companyName"`
	CompanySize         string    `json:"companySize"`
	MonthlyTransactions string    `json:"monthlyTransactions"`
	Market              string    `json:"market"`
	OverallScore        int       `json:"overallScore"`
	RiskLevel           string    `json:"riskLevel"`
	ReportURL           string    `json:"reportUrl"`
}

func (e EmailCaptured) EventName() string { return "assessment.email_captured" }
