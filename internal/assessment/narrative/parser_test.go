package narrative

import (
	"errors"
	"strings"
	"testing"
)

const validAnalysisJSON = `{
  "gapAnalysis": [
    {
      "category": "Risk Management",
      "issue": "No deadline tracking",
      "evidence": "No formal tracking system - Varies by agent",
      "businessImpact": {
        "timeWasted": "5 hours/week",
        "financialCost": "$50,000/year",
        "riskCreated": "High E&O exposure"
      },
      "rootCause": "Manual processes",
      "industryBestPractice": "Automated deadline extraction",
      "severity": "CRITICAL"
    }
  ],
  "roadmap": {
    "quickWins": [{"action": "Centralize deadlines", "addresses": "Risk Management", "implementation": "Shared system", "expectedOutcome": "Fewer misses", "modernApproach": "Automated tracking"}],
    "foundationBuilding": [],
    "transformation": []
  },
  "competitivePositioning": {
    "strengths": ["Strong training cadence"],
    "weaknesses": ["Manual document review"],
    "percentileAnalysis": "50th percentile",
    "gapToLeaders": "Leaders automate document review"
  },
  "financialImpact": {
    "currentStateCosts": {"manualDocumentReview": "$80,000", "missedDeadlines": "$25,000", "eoRisk": "$15,000", "totalAnnual": "$120,000"},
    "projectedSavings": {"timeReclaimed": "$60,000", "dealsProtected": "$40,000", "riskReduction": "$10,000", "totalAnnual": "$110,000", "roi": "8:1"},
    "implementationNote": "Achievable within 60 days"
  },
  "specificRecommendations": [
    {"recommendation": "Adopt automated tracking", "rationale": "Current gaps", "expectedOutcome": "Zero missed deadlines", "howTopBrokeragesDoThis": "Integrated platforms"}
  ],
  "archetype": {
    "type": "Manually Excellent",
    "description": "Strong people, weak systems",
    "typicalChallenges": ["Scaling"],
    "pathForward": "Systematize"
  },
  "keyInsight": "Your people are covering for your systems."
}`

func TestParseAnalysisRawJSON(t *testing.T) {
	analysis, err := ParseAnalysis(validAnalysisJSON)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	if len(analysis.GapAnalysis) != 1 {
		t.Fatalf("gaps = %d, want 1", len(analysis.GapAnalysis))
	}
	if analysis.GapAnalysis[0].Severity != "CRITICAL" {
		t.Errorf("severity = %q", analysis.GapAnalysis[0].Severity)
	}
	if analysis.KeyInsight == "" {
		t.Error("keyInsight empty")
	}
	if analysis.FinancialImpact.ProjectedSavings.ROI != "8:1" {
		t.Errorf("roi = %q", analysis.FinancialImpact.ProjectedSavings.ROI)
	}
}

func TestParseAnalysisJSONFence(t *testing.T) {
	wrapped := "Here is the analysis:\n```json\n" + validAnalysisJSON + "\n```\nLet me know if you need more."
	analysis, err := ParseAnalysis(wrapped)
	if err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
	if analysis.Archetype.Type != "Manually Excellent" {
		t.Errorf("archetype = %q", analysis.Archetype.Type)
	}
}

func TestParseAnalysisBareFence(t *testing.T) {
	wrapped := "```\n" + validAnalysisJSON + "\n```"
	if _, err := ParseAnalysis(wrapped); err != nil {
		t.Fatalf("ParseAnalysis() error = %v", err)
	}
}

func TestParseAnalysisMalformed(t *testing.T) {
	_, err := ParseAnalysis("I couldn't produce JSON, sorry about that.")
	if err == nil {
		t.Fatal("ParseAnalysis() accepted non-JSON output")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
	if parseErr.Snippet == "" {
		t.Error("ParseError carries no snippet")
	}
}

func TestParseDeepDiveJSON(t *testing.T) {
	email := ParseDeepDive(`{"subject": "Your Risk Management blind spot", "body": "Hello [COMPANY]..."}`, "Risk Management")
	if email.Subject != "Your Risk Management blind spot" {
		t.Errorf("subject = %q", email.Subject)
	}
	if !strings.Contains(email.Body, "[COMPANY]") {
		t.Errorf("body = %q", email.Body)
	}
}

func TestParseDeepDivePlainTextFallback(t *testing.T) {
	raw := "Dear broker, your deadline tracking needs attention..."
	email := ParseDeepDive(raw, "Risk Management")
	if email.Subject != "Deep Dive: Risk Management Analysis for [COMPANY]" {
		t.Errorf("fallback subject = %q", email.Subject)
	}
	if email.Body != raw {
		t.Errorf("fallback body = %q", email.Body)
	}
}
