package narrative

import (
	"strings"
	"testing"
)

func sampleInput(company, market string) PromptInput {
	return PromptInput{
		CompanyName:         company,
		CompanySize:         "51-100",
		MonthlyTransactions: "101-200",
		Market:              market,
		OverallScore:        62,
		RiskLevel:           "HIGH",
		CategoryScores: []CategoryScore{
			{Category: "Process Efficiency", Score: 18, MaxScore: 31, Percentage: 58},
			{Category: "Risk Management", Score: 22, MaxScore: 40, Percentage: 55},
		},
		Responses: []Response{
			{QuestionID: "contract_review_time", QuestionText: "How long does review take?", Answer: "2-3 Hours - Very Time Intensive", Points: 2},
			{QuestionID: "eo_claims_history", QuestionText: "E&O claims?", Answer: "Close calls, but avoided claims - Caught issues just in time", Points: 6},
		},
	}
}

func TestCacheKeyExcludesIdentifyingFields(t *testing.T) {
	a := cacheKey(kindExecutiveSummary, sampleInput("Acme Realty", "Austin"))
	b := cacheKey(kindExecutiveSummary, sampleInput("Summit Brokers", "Denver"))
	if a != b {
		t.Errorf("cache keys differ for identical answers:\n%s\n%s", a, b)
	}
}

func TestCacheKeyVariesByKind(t *testing.T) {
	in := sampleInput("Acme Realty", "Austin")
	if cacheKey(kindExecutiveSummary, in) == cacheKey(kindFullAnalysis, in) {
		t.Error("summary and analysis share a cache key")
	}
}

func TestCacheKeyVariesByAnswers(t *testing.T) {
	a := sampleInput("Acme Realty", "Austin")
	b := sampleInput("Acme Realty", "Austin")
	b.Responses[0].Answer = "Under 30 Minutes - Quick, systemic Review"
	b.Responses[0].Points = 7
	if cacheKey(kindExecutiveSummary, a) == cacheKey(kindExecutiveSummary, b) {
		t.Error("different answers produced the same cache key")
	}
}

func TestCacheKeyVariesByVariant(t *testing.T) {
	a := sampleInput("Acme Realty", "Austin")
	b := sampleInput("Acme Realty", "Austin")
	b.Variant = "agent"
	if cacheKey(kindExecutiveSummary, a) == cacheKey(kindExecutiveSummary, b) {
		t.Error("different variants share a cache key despite different prompts")
	}
}

func TestCacheKeyOrderInsensitiveResponses(t *testing.T) {
	a := sampleInput("Acme Realty", "Austin")
	b := sampleInput("Acme Realty", "Austin")
	b.Responses[0], b.Responses[1] = b.Responses[1], b.Responses[0]
	if cacheKey(kindExecutiveSummary, a) != cacheKey(kindExecutiveSummary, b) {
		t.Error("response order changed the cache key")
	}
}

func TestDeepDiveKindNormalizesCategory(t *testing.T) {
	if got := deepDiveKind("Risk Management"); got != "deepdive_risk_management" {
		t.Errorf("deepDiveKind = %q", got)
	}
	if got := deepDiveKind("  Client   Experience "); got != "deepdive_client_experience" {
		t.Errorf("deepDiveKind = %q", got)
	}
}

func TestPersonalize(t *testing.T) {
	text := "[COMPANY] operates in [MARKET]. Like other [MARKET] brokerages, [COMPANY] should act."
	got := Personalize(text, "Acme Realty", "Austin")
	if strings.Contains(got, "[COMPANY]") || strings.Contains(got, "[MARKET]") {
		t.Fatalf("placeholders left in output: %q", got)
	}
	want := "Acme Realty operates in Austin. Like other Austin brokerages, Acme Realty should act."
	if got != want {
		t.Errorf("Personalize() = %q, want %q", got, want)
	}
}

func TestAnonymize(t *testing.T) {
	in := sampleInput("Acme Realty", "Austin")
	anon := in.Anonymize()
	if anon.CompanyName != "[COMPANY]" || anon.Market != "[MARKET]" {
		t.Errorf("Anonymize() = %q/%q", anon.CompanyName, anon.Market)
	}
	if in.CompanyName != "Acme Realty" {
		t.Error("Anonymize() mutated the input")
	}
	if anon.OverallScore != in.OverallScore || len(anon.Responses) != len(in.Responses) {
		t.Error("Anonymize() dropped non-identifying fields")
	}
}
