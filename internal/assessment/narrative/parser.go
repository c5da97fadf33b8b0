package narrative

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// Analysis is the structured full-report document the model returns.
type Analysis struct {
	GapAnalysis             []AnalysisGap       `json:"gapAnalysis"`
	Roadmap                 Roadmap             `json:"roadmap"`
	CompetitivePositioning  Positioning         `json:"competitivePositioning"`
	FinancialImpact         FinancialImpact     `json:"financialImpact"`
	SpecificRecommendations []Recommendation    `json:"specificRecommendations"`
	Archetype               Archetype           `json:"archetype"`
	KeyInsight              string              `json:"keyInsight"`
}

// AnalysisGap is one operational gap in the full analysis.
type AnalysisGap struct {
	Category             string         `json:"category"`
	Issue                string         `json:"issue"`
	Evidence             string         `json:"evidence"`
	BusinessImpact       BusinessImpact `json:"businessImpact"`
	RootCause            string         `json:"rootCause"`
	IndustryBestPractice string         `json:"industryBestPractice"`
	Severity             string         `json:"severity"`
}

// BusinessImpact quantifies a gap's cost.
type BusinessImpact struct {
	TimeWasted    string `json:"timeWasted"`
	FinancialCost string `json:"financialCost"`
	RiskCreated   string `json:"riskCreated"`
}

// Roadmap is the 60-day action plan.
type Roadmap struct {
	QuickWins          []RoadmapItem `json:"quickWins"`
	FoundationBuilding []RoadmapItem `json:"foundationBuilding"`
	Transformation     []RoadmapItem `json:"transformation"`
}

// RoadmapItem is one action in the roadmap.
type RoadmapItem struct {
	Action          string `json:"action"`
	Addresses       string `json:"addresses"`
	Implementation  string `json:"implementation"`
	ExpectedOutcome string `json:"expectedOutcome"`
	ModernApproach  string `json:"modernApproach"`
}

// Positioning compares the respondent against industry benchmarks.
type Positioning struct {
	Strengths          []string `json:"strengths"`
	Weaknesses         []string `json:"weaknesses"`
	PercentileAnalysis string   `json:"percentileAnalysis"`
	GapToLeaders       string   `json:"gapToLeaders"`
}

// FinancialImpact models current costs versus projected savings.
type FinancialImpact struct {
	CurrentStateCosts  CurrentStateCosts `json:"currentStateCosts"`
	ProjectedSavings   ProjectedSavings  `json:"projectedSavings"`
	ImplementationNote string            `json:"implementationNote"`
}

// CurrentStateCosts itemizes the cost of the status quo.
type CurrentStateCosts struct {
	ManualDocumentReview string `json:"manualDocumentReview"`
	MissedDeadlines      string `json:"missedDeadlines"`
	EORisk               string `json:"eoRisk"`
	TotalAnnual          string `json:"totalAnnual"`
}

// ProjectedSavings itemizes the improved state.
type ProjectedSavings struct {
	TimeReclaimed  string `json:"timeReclaimed"`
	DealsProtected string `json:"dealsProtected"`
	RiskReduction  string `json:"riskReduction"`
	TotalAnnual    string `json:"totalAnnual"`
	ROI            string `json:"roi"`
}

// Recommendation is one tactical recommendation.
type Recommendation struct {
	Recommendation         string `json:"recommendation"`
	Rationale              string `json:"rationale"`
	ExpectedOutcome        string `json:"expectedOutcome"`
	HowTopBrokeragesDoThis string `json:"howTopBrokeragesDoThis"`
}

// Archetype is the pattern-recognition classification.
type Archetype struct {
	Type              string   `json:"type"`
	Description       string   `json:"description"`
	TypicalChallenges []string `json:"typicalChallenges"`
	PathForward       string   `json:"pathForward"`
}

// EmailContent is a generated drip email.
type EmailContent struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ParseError indicates the model's output could not be decoded as the
// expected JSON document.
type ParseError struct {
	Err     error
	Snippet string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("model returned invalid JSON: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

var (
	jsonFenceRe = regexp.MustCompile("(?s)```json\\s*(.*?)\\s*```")
	bareFenceRe = regexp.MustCompile("(?s)```\\s*(.*?)\\s*```")
)

// extractJSON strips markdown code fences the model sometimes adds
// despite instructions: a ` ```json ` fence first, then any bare fence,
// then the raw text.
func extractJSON(text string) string {
	if m := jsonFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := bareFenceRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}

// ParseAnalysis decodes a full-analysis response. Malformed output
// returns a *ParseError carrying a snippet for diagnostics.
func ParseAnalysis(text string) (*Analysis, error) {
	raw := extractJSON(text)

	var analysis Analysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return nil, &ParseError{Err: err, Snippet: snippet(raw)}
	}
	return &analysis, nil
}

// ParseDeepDive decodes a deep-dive email response. Output that is not
// JSON is kept as the email body under a generated subject, matching the
// graceful fallback the drip sequence needs.
func ParseDeepDive(text, category string) EmailContent {
	raw := extractJSON(text)

	var email EmailContent
	if err := json.Unmarshal([]byte(raw), &email); err != nil || email.Body == "" {
		return EmailContent{
			Subject: fmt.Sprintf("Deep Dive: %s Analysis for %s", category, placeholderCompany),
			Body:    text,
		}
	}
	return email
}

func snippet(s string) string {
	const max = 500
	if len(s) <= max {
		return s
	}
	return s[:max]
}
