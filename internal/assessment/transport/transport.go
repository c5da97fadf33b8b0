// Package transport defines the request and response DTOs for the
// assessment HTTP API.
package transport

import (
	"time"

	"leadmagnet_backend/internal/assessment/narrative"
	"leadmagnet_backend/internal/assessment/projection"
	"leadmagnet_backend/internal/assessment/roi"
	"leadmagnet_backend/internal/assessment/scoring"
)

// SubmitAssessmentRequest is the payload for POST /assessments.
type SubmitAssessmentRequest struct {
	BankID              string            `json:"bankId" validate:"required"`
	CompanyName         string            `json:"companyName" validate:"required,max=200"`
	CompanySize         string            `json:"companySize" validate:"max=100"`
	MonthlyTransactions string            `json:"monthlyTransactions" validate:"max=100"`
	PrimaryMarket       string            `json:"primaryMarket" validate:"max=200"`
	Responses           map[string]string `json:"responses" validate:"required,min=1"`
}

// CaptureEmailRequest is the payload for POST /assessments/:token/email.
type CaptureEmailRequest struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"firstName" validate:"max=100"`
	LastName  string `json:"lastName" validate:"max=100"`
	Phone     string `json:"phone" validate:"max=30"`
}

// SubmitAssessmentResponse is returned immediately after scoring. The
// narrative sections are not included; they are unlocked via the report
// endpoint once an email has been captured.
type SubmitAssessmentResponse struct {
	Token          string             `json:"token"`
	ReportURL      string             `json:"reportUrl"`
	ExpiresAt      time.Time          `json:"expiresAt"`
	Scores         scoring.Result     `json:"scores"`
	Projection     *projection.Result `json:"projection,omitempty"`
	ROI            *roi.Estimate      `json:"roi,omitempty"`
}

// ReportResponse is the full report view. Narrative fields stay nil
// until the visitor has provided an email address.
type ReportResponse struct {
	Token               string              `json:"token"`
	BankID              string              `json:"bankId"`
	CompanyName         string              `json:"companyName"`
	CompanySize         string              `json:"companySize,omitempty"`
	MonthlyTransactions string              `json:"monthlyTransactions,omitempty"`
	PrimaryMarket       string              `json:"primaryMarket,omitempty"`
	CreatedAt           time.Time           `json:"createdAt"`
	ExpiresAt           time.Time           `json:"expiresAt"`
	EmailCaptured       bool                `json:"emailCaptured"`
	OverallScore        int                 `json:"overallScore"`
	RiskLevel           string              `json:"riskLevel"`
	Percentile          string              `json:"percentile"`
	Profile             string              `json:"profile"`
	ProfileSummary      string              `json:"profileSummary"`
	CategoryScores      []CategoryScoreView `json:"categoryScores"`
	Gaps                []GapView           `json:"gaps"`
	Projection          *projection.Result  `json:"projection,omitempty"`
	ROI                 *roi.Estimate       `json:"roi,omitempty"`
	ExecutiveSummary    *string             `json:"executiveSummary,omitempty"`
	FullAnalysis        *narrative.Analysis `json:"fullAnalysis,omitempty"`
}

// CategoryScoreView is one category row in the report.
type CategoryScoreView struct {
	Category   string `json:"category"`
	Label      string `json:"label"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Percentage int    `json:"percentage"`
	Bonus      bool   `json:"bonus,omitempty"`
}

// GapView is one identified gap in the report.
type GapView struct {
	Category   string `json:"category"`
	QuestionID string `json:"questionId"`
	Severity   string `json:"severity"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
}

// CaptureEmailResponse confirms the capture and hands back the report URL.
type CaptureEmailResponse struct {
	Token     string `json:"token"`
	ReportURL string `json:"reportUrl"`
	Unlocked  bool   `json:"unlocked"`
}
