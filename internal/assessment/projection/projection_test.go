package projection

import (
	"testing"

	"leadmagnet_backend/internal/assessment/questionbank"
	"leadmagnet_backend/internal/assessment/scoring"
)

func scoreAgent(t *testing.T, responses map[string]string) scoring.Result {
	t.Helper()
	bank, err := questionbank.Get(questionbank.BankAgent)
	if err != nil {
		t.Fatalf("Get(agent) error = %v", err)
	}
	return scoring.Score(bank, responses)
}

func TestProjectLowScorer(t *testing.T) {
	result := scoreAgent(t, map[string]string{
		"deadline_tracking":  "I rely on my TC or escrow officer to remind me of upcoming deadlines",
		"client_timeline":    "Clients reach out to me when they need updates on what's happening",
		"broker_oversight":   "No, I'm responsible for reviewing my own transactions",
	})

	proj, ok := Project(result)
	if !ok {
		t.Fatal("Project() reported unsupported variant")
	}
	if proj.ProjectedTotal != 93 {
		t.Errorf("ProjectedTotal = %d, want 93", proj.ProjectedTotal)
	}
	if proj.Improvement != 93-result.TotalScore {
		t.Errorf("Improvement = %d, want %d", proj.Improvement, 93-result.TotalScore)
	}
	if len(proj.Categories) != 3 {
		t.Fatalf("categories = %d, want 3", len(proj.Categories))
	}
	for _, cat := range proj.Categories {
		if cat.PointGain < 0 {
			t.Errorf("%s: negative point gain %d", cat.Category, cat.PointGain)
		}
		if cat.ProjectedScore < cat.CurrentScore {
			t.Errorf("%s: projected %d below current %d", cat.Category, cat.ProjectedScore, cat.CurrentScore)
		}
	}
}

func TestProjectCeilingClamp(t *testing.T) {
	// Answer everything perfectly: actual (100) exceeds the projected
	// total (93) and the process_efficiency ceiling (29/30).
	bank, _ := questionbank.Get(questionbank.BankAgent)
	responses := make(map[string]string)
	for _, q := range bank.Questions {
		responses[q.ID] = q.Benchmark
	}
	result := scoreAgent(t, responses)

	proj, ok := Project(result)
	if !ok {
		t.Fatal("Project() reported unsupported variant")
	}
	if proj.ProjectedTotal != 100 {
		t.Errorf("ProjectedTotal = %d, want clamped to 100", proj.ProjectedTotal)
	}
	if proj.Improvement != 0 {
		t.Errorf("Improvement = %d, want 0", proj.Improvement)
	}
	for _, cat := range proj.Categories {
		if cat.ProjectedScore < cat.CurrentScore {
			t.Errorf("%s: projected %d below current %d", cat.Category, cat.ProjectedScore, cat.CurrentScore)
		}
		if cat.PointGain != 0 {
			t.Errorf("%s: perfect score should have zero gain, got %d", cat.Category, cat.PointGain)
		}
	}
}

func TestProjectZeroScoreAvoidsDivideByZero(t *testing.T) {
	result := scoreAgent(t, map[string]string{})

	proj, ok := Project(result)
	if !ok {
		t.Fatal("Project() reported unsupported variant")
	}
	if proj.PercentageIncrease != 0 {
		t.Errorf("PercentageIncrease = %d, want 0 for zero base", proj.PercentageIncrease)
	}
	if proj.ProjectedTotal != 93 {
		t.Errorf("ProjectedTotal = %d, want 93", proj.ProjectedTotal)
	}
}

func TestProjectUnsupportedVariant(t *testing.T) {
	bank, _ := questionbank.Get(questionbank.BankBrokerage)
	result := scoring.Score(bank, map[string]string{})

	if _, ok := Project(result); ok {
		t.Fatal("Project() accepted a variant without a model")
	}
	if Supported(questionbank.BankBrokerage) {
		t.Error("Supported(brokerage) = true")
	}
	if !Supported(questionbank.BankAgent) {
		t.Error("Supported(agent) = false")
	}
}
