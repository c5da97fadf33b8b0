package scoring

import (
	"reflect"
	"testing"

	"leadmagnet_backend/internal/assessment/questionbank"
)

// benchmarkResponses answers every question with its best-practice option.
func benchmarkResponses(bank *questionbank.Bank) map[string]string {
	responses := make(map[string]string, len(bank.Questions))
	for _, q := range bank.Questions {
		responses[q.ID] = q.Benchmark
	}
	return responses
}

func TestScorePerfectBrokerage(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerage)
	result := Score(bank, benchmarkResponses(bank))

	if result.TotalScore != 100 || result.Percentage != 100 {
		t.Fatalf("total = %d, percentage = %d; want 100, 100", result.TotalScore, result.Percentage)
	}
	if result.Profile != "AI-Optimized Leader" || result.RiskLevel != questionbank.RiskLow {
		t.Errorf("tier = %q/%q, want AI-Optimized Leader/LOW", result.Profile, result.RiskLevel)
	}
	if result.PercentileRank != "95th percentile" {
		t.Errorf("percentile = %q", result.PercentileRank)
	}
	if len(result.Gaps) != 0 {
		t.Errorf("perfect score produced %d gaps", len(result.Gaps))
	}
	if result.Benchmark.Gap != 0 || result.Benchmark.AlignmentPercentage != 100 {
		t.Errorf("benchmark = %+v", result.Benchmark)
	}
}

func TestScoreEmptyResponses(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankAgent)
	result := Score(bank, map[string]string{})

	if result.TotalScore != 0 || result.Percentage != 0 {
		t.Fatalf("total = %d, percentage = %d; want 0, 0", result.TotalScore, result.Percentage)
	}
	if result.RiskLevel != questionbank.RiskCritical {
		t.Errorf("risk = %q, want CRITICAL", result.RiskLevel)
	}
	if len(result.Gaps) != len(bank.Questions) {
		t.Errorf("gaps = %d, want %d", len(result.Gaps), len(bank.Questions))
	}
	for _, g := range result.Gaps {
		if g.Severity != SeverityCritical {
			t.Errorf("gap %s severity = %q, want CRITICAL", g.QuestionID, g.Severity)
		}
	}
}

func TestScoreUnknownAnswerEarnsZero(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankAgent)
	responses := benchmarkResponses(bank)
	responses["deadline_tracking"] = "something made up"

	result := Score(bank, responses)
	if result.TotalScore != 90 {
		t.Fatalf("total = %d, want 90", result.TotalScore)
	}
	for _, qr := range result.QuestionResults {
		if qr.QuestionID == "deadline_tracking" {
			if qr.Score != 0 || qr.MatchesBenchmark {
				t.Errorf("unknown answer scored %d, matches=%v", qr.Score, qr.MatchesBenchmark)
			}
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerage)
	responses := map[string]string{
		"contract_review_process":  "Designated Broker - Broker reviews everything",
		"contract_review_time":     "30 - 1 Hour - Thorough manual review",
		"deadline_tracking_method": "Shared calendar/spreadsheet - Agents update their own dates in shared system",
		"eo_claims_history":        "Close calls, but avoided claims - Caught issues just in time",
	}

	first := Score(bank, responses)
	for i := 0; i < 10; i++ {
		if got := Score(bank, responses); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}

func TestScoreCategoryBreakdown(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankAgent)
	responses := benchmarkResponses(bank)

	result := Score(bank, responses)
	wants := map[string]struct{ score, max int }{
		"process_efficiency": {30, 30},
		"risk_management":    {30, 30},
		"client_experience":  {40, 40},
	}
	for _, cat := range result.Categories {
		want, ok := wants[cat.CategoryID]
		if !ok {
			t.Errorf("unexpected category %q", cat.CategoryID)
			continue
		}
		if cat.Score != want.score || cat.Max != want.max || cat.Percentage != 100 {
			t.Errorf("category %s = %d/%d (%d%%), want %d/%d (100%%)",
				cat.CategoryID, cat.Score, cat.Max, cat.Percentage, want.score, want.max)
		}
	}
}

func TestScorePercentageBounds(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerOps)

	for _, responses := range []map[string]string{
		{},
		benchmarkResponses(bank),
		{"contract_oversight": "Agent only", "eo_claims": "5+"},
	} {
		result := Score(bank, responses)
		if result.Percentage < 0 || result.Percentage > 100 {
			t.Errorf("percentage %d out of bounds", result.Percentage)
		}
		for _, cat := range result.Categories {
			if cat.Percentage < 0 || cat.Percentage > 100 {
				t.Errorf("category %s percentage %d out of bounds", cat.CategoryID, cat.Percentage)
			}
		}
	}
}

func TestScoreBrokerOpsBonusExcludedFromOverall(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerOps)
	responses := benchmarkResponses(bank)

	result := Score(bank, responses)
	if result.TotalScore != 467 {
		t.Fatalf("total = %d, want 467", result.TotalScore)
	}
	if result.BonusScore != 67 {
		t.Errorf("bonus = %d, want 67", result.BonusScore)
	}
	if result.Percentage != 100 {
		t.Errorf("percentage = %d, want 100", result.Percentage)
	}
}

func TestScoreBrokerOpsRounding(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerOps)
	// A single mid-tier answer: 25/467 rounds to 5.
	responses := map[string]string{"contract_oversight": "TC + Broker share"}

	result := Score(bank, responses)
	if result.TotalScore != 25 {
		t.Fatalf("total = %d, want 25", result.TotalScore)
	}
	if result.Percentage != 5 {
		t.Errorf("percentage = %d, want 5", result.Percentage)
	}
}

func TestScoreGapSeverity(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerage)
	responses := benchmarkResponses(bank)
	// 2/8 (25%) is a HIGH gap, 4/8 (50%) is MEDIUM, 0 is CRITICAL.
	responses["contract_review_process"] = "Agent - Each agent handles their own"
	responses["client_timeline_communication"] = "Generic checklist/guide - Standard document for all clients"
	responses["deadline_tracking_method"] = "No formal tracking system - Varies by agent"

	result := Score(bank, responses)
	severities := make(map[string]string)
	for _, g := range result.Gaps {
		severities[g.QuestionID] = g.Severity
	}

	if got := severities["contract_review_process"]; got != SeverityHigh {
		t.Errorf("2/8 severity = %q, want HIGH", got)
	}
	if got := severities["client_timeline_communication"]; got != SeverityMedium {
		t.Errorf("4/8 severity = %q, want MEDIUM", got)
	}
	if got := severities["deadline_tracking_method"]; got != SeverityCritical {
		t.Errorf("0/10 severity = %q, want CRITICAL", got)
	}
	if len(result.Gaps) != 3 {
		t.Errorf("gaps = %d, want 3", len(result.Gaps))
	}
}

func TestScoreTierMonotonicity(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankAgent)
	order := map[string]int{
		questionbank.RiskLow:      0,
		questionbank.RiskModerate: 1,
		questionbank.RiskHigh:     2,
		questionbank.RiskCritical: 3,
	}
	prev := -1
	for pct := 100; pct >= 0; pct-- {
		tier := bank.TierFor(pct)
		rank := order[tier.RiskLevel]
		if rank < prev {
			t.Fatalf("risk improved as score dropped: %d%% -> %s", pct, tier.RiskLevel)
		}
		prev = rank
	}
}
