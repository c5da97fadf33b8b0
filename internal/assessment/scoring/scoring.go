// Package scoring turns raw answers into a full assessment result:
// per-question points, category breakdown, overall score and risk tier,
// identified gaps, and the comparison against the best-practice benchmark.
package scoring

import (
	"math"

	"leadmagnet_backend/internal/assessment/questionbank"
)

// Gap severities.
const (
	SeverityCritical = "CRITICAL"
	SeverityHigh     = "HIGH"
	SeverityMedium   = "MEDIUM"
)

// QuestionResult records how a single question scored.
type QuestionResult struct {
	QuestionID       string `json:"questionId"`
	Response         string `json:"response"`
	Score            int    `json:"score"`
	MaxScore         int    `json:"maxScore"`
	Benchmark        string `json:"benchmark"`
	MatchesBenchmark bool   `json:"matchesBenchmark"`
}

// CategoryScore is the per-category breakdown.
type CategoryScore struct {
	CategoryID string `json:"categoryId"`
	Label      string `json:"label"`
	Score      int    `json:"score"`
	Max        int    `json:"max"`
	Percentage int    `json:"percentage"`
	Bonus      bool   `json:"bonus,omitempty"`
}

// Gap is a question scoring at or below half of its weight.
type Gap struct {
	QuestionID string `json:"questionId"`
	Category   string `json:"category"`
	Score      int    `json:"score"`
	MaxScore   int    `json:"maxScore"`
	Severity   string `json:"severity"`
}

// BenchmarkComparison measures distance to the best-practice answers.
type BenchmarkComparison struct {
	BenchmarkScore      int `json:"benchmarkScore"`
	YourScore           int `json:"yourScore"`
	Gap                 int `json:"gap"`
	MatchedAnswers      int `json:"matchedAnswers"`
	TotalQuestions      int `json:"totalQuestions"`
	AlignmentPercentage int `json:"alignmentPercentage"`
}

// Result is the complete deterministic scoring output.
type Result struct {
	BankID          string              `json:"bankId"`
	TotalScore      int                 `json:"totalScore"`
	MaxScore        int                 `json:"maxScore"`
	BonusScore      int                 `json:"bonusScore,omitempty"`
	Percentage      int                 `json:"percentage"`
	Profile         string              `json:"profile"`
	RiskLevel       string              `json:"riskLevel"`
	PercentileRank  string              `json:"percentileRank"`
	ProfileSummary  string              `json:"profileSummary"`
	Categories      []CategoryScore     `json:"categories"`
	QuestionResults []QuestionResult    `json:"questionResults"`
	Gaps            []Gap               `json:"gaps"`
	Benchmark       BenchmarkComparison `json:"benchmark"`
}

// Score evaluates responses against a bank. Responses map question IDs
// to the exact chosen option text; missing or unrecognized answers earn
// zero points. The same responses always produce the same result.
func Score(bank *questionbank.Bank, responses map[string]string) Result {
	bonus := make(map[string]bool)
	catScore := make(map[string]int)
	for _, c := range bank.Categories {
		if c.Bonus {
			bonus[c.ID] = true
		}
	}

	result := Result{
		BankID:   bank.ID,
		MaxScore: bank.MaxScore(),
	}

	for _, q := range bank.Questions {
		response := responses[q.ID]
		points := q.Options[response]

		catScore[q.Category] += points
		if bonus[q.Category] {
			result.BonusScore += points
		} else {
			result.TotalScore += points
		}

		result.QuestionResults = append(result.QuestionResults, QuestionResult{
			QuestionID:       q.ID,
			Response:         response,
			Score:            points,
			MaxScore:         q.Weight,
			Benchmark:        q.Benchmark,
			MatchesBenchmark: q.Benchmark != "" && response == q.Benchmark,
		})

		if 2*points <= q.Weight {
			result.Gaps = append(result.Gaps, Gap{
				QuestionID: q.ID,
				Category:   q.Category,
				Score:      points,
				MaxScore:   q.Weight,
				Severity:   severity(points, q.Weight),
			})
		}
	}

	result.Percentage = roundPercent(result.TotalScore, result.MaxScore)

	tier := bank.TierFor(result.Percentage)
	result.Profile = tier.Profile
	result.RiskLevel = tier.RiskLevel
	result.PercentileRank = tier.PercentileRank
	result.ProfileSummary = tier.Summary

	for _, c := range bank.Categories {
		max := bank.CategoryMax(c.ID)
		result.Categories = append(result.Categories, CategoryScore{
			CategoryID: c.ID,
			Label:      c.Label,
			Score:      catScore[c.ID],
			Max:        max,
			Percentage: roundPercent(catScore[c.ID], max),
			Bonus:      c.Bonus,
		})
	}

	matched := 0
	for _, qr := range result.QuestionResults {
		if qr.MatchesBenchmark {
			matched++
		}
	}
	total := len(result.QuestionResults)
	result.Benchmark = BenchmarkComparison{
		BenchmarkScore:      bank.BenchmarkScore,
		YourScore:           result.Percentage,
		Gap:                 bank.BenchmarkScore - result.Percentage,
		MatchedAnswers:      matched,
		TotalQuestions:      total,
		AlignmentPercentage: roundPercent(matched, total),
	}

	return result
}

func severity(score, max int) string {
	switch {
	case score == 0:
		return SeverityCritical
	case score*100 <= max*30:
		return SeverityHigh
	default:
		return SeverityMedium
	}
}

func roundPercent(score, max int) int {
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}
