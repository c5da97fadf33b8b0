// Package projection computes the "with the platform" comparative score:
// per-category ceilings the platform realistically achieves, compared
// against the respondent's actual category scores.
package projection

import (
	"math"

	"leadmagnet_backend/internal/assessment/questionbank"
	"leadmagnet_backend/internal/assessment/scoring"
)

// Ceiling is the score a category reaches with the platform in place.
// Ceilings are held below the category max on purpose, accounting for
// adoption and human factors.
type Ceiling struct {
	CategoryID string
	Label      string
	Score      int
	Max        int
	Reasoning  string
	Solutions  []string
}

// CategoryProjection compares one category's actual score to its ceiling.
type CategoryProjection struct {
	Category            string   `json:"category"`
	CurrentScore        int      `json:"currentScore"`
	CurrentPercentage   int      `json:"currentPercentage"`
	ProjectedScore      int      `json:"projectedScore"`
	ProjectedPercentage int      `json:"projectedPercentage"`
	Max                 int      `json:"max"`
	PointGain           int      `json:"pointGain"`
	PercentageGain      int      `json:"percentageGain"`
	Reasoning           string   `json:"reasoning"`
	Solutions           []string `json:"solutions"`
}

// Result is the full comparative projection.
type Result struct {
	CurrentTotal       int                  `json:"currentTotal"`
	ProjectedTotal     int                  `json:"projectedTotal"`
	MaxScore           int                  `json:"maxScore"`
	Improvement        int                  `json:"improvement"`
	PercentageIncrease int                  `json:"percentageIncrease"`
	Categories         []CategoryProjection `json:"categories"`
	Headline           string               `json:"headline"`
	KeyMessage         string               `json:"keyMessage"`
}

type model struct {
	ceilings   []Ceiling
	total      int
	headline   string
	keyMessage string
}

var models = map[string]model{
	questionbank.BankAgent: {
		total: 93,
		ceilings: []Ceiling{
			{
				CategoryID: "process_efficiency",
				Label:      "Process Efficiency",
				Score:      29,
				Max:        30,
				Reasoning:  "ContRE's AI document analysis eliminates hours of manual review and provides instant summaries with risk flagging",
				Solutions: []string{
					"AI reads 50-page HOAs/title reports and generates a 1-page summary with issue highlights in under 5 minutes",
					"Upload any document (contract, disclosure, HOA) and get instant AI analysis of risks and key points",
					"Eliminate 2-3 hours of manual document review per transaction",
				},
			},
			{
				CategoryID: "risk_management",
				Label:      "Risk Management",
				Score:      30,
				Max:        30,
				Reasoning:  "Automated deadline extraction + AI risk alerts + logged client interactions eliminate manual tracking errors and provide liability protection",
				Solutions: []string{
					"Automated deadline extraction from contracts with customizable alert windows",
					"AI flags potential contract issues and liability risks before they escalate",
					"Logged client Q&A interactions provide documentation protection for E&O claims",
					"Never miss a deadline or contingency date again",
				},
			},
			{
				CategoryID: "client_experience",
				Label:      "Client Experience",
				Score:      39,
				Max:        40,
				Reasoning:  "Shareable 24/7 chatbot gives clients instant answers to transaction-specific questions, dramatically improving engagement and satisfaction",
				Solutions: []string{
					"Shareable chatbot gives clients 24/7 access to transaction-specific answers (no login required)",
					"AI-generated document summaries help clients understand complex paperwork",
					"All client interactions automatically logged for your records and liability protection",
					"Clients feel more informed and confident throughout the transaction",
				},
			},
		},
		headline:   "ContRE could address nearly all identified gaps instantly",
		keyMessage: "This isn't about changing your workflow. ContRE works with your existing systems (SkySlope/LoneWolf/DotLoop) and gives you an AI assistant that saves hours per transaction while protecting you from risk.",
	},
}

// Supported reports whether a variant has a projection model.
func Supported(bankID string) bool {
	_, ok := models[bankID]
	return ok
}

// Project builds the comparative projection for a scored result. Variants
// without a model return ok=false. Projected scores are clamped so they
// never fall below the actual score.
func Project(result scoring.Result) (Result, bool) {
	m, ok := models[result.BankID]
	if !ok {
		return Result{}, false
	}

	current := make(map[string]scoring.CategoryScore, len(result.Categories))
	for _, cat := range result.Categories {
		current[cat.CategoryID] = cat
	}

	out := Result{
		CurrentTotal: result.TotalScore,
		MaxScore:     result.MaxScore,
		Headline:     m.headline,
		KeyMessage:   m.keyMessage,
	}

	for _, ceiling := range m.ceilings {
		cur := current[ceiling.CategoryID]
		projected := ceiling.Score
		if cur.Score > projected {
			projected = cur.Score
		}

		projectedPct := roundPercent(projected, ceiling.Max)
		out.Categories = append(out.Categories, CategoryProjection{
			Category:            ceiling.Label,
			CurrentScore:        cur.Score,
			CurrentPercentage:   cur.Percentage,
			ProjectedScore:      projected,
			ProjectedPercentage: projectedPct,
			Max:                 ceiling.Max,
			PointGain:           projected - cur.Score,
			PercentageGain:      projectedPct - cur.Percentage,
			Reasoning:           ceiling.Reasoning,
			Solutions:           ceiling.Solutions,
		})
	}

	// The headline total is deliberately conservative, below the sum of
	// the category ceilings, but never below the actual score.
	projectedTotal := m.total
	if projectedTotal < result.TotalScore {
		projectedTotal = result.TotalScore
	}
	out.ProjectedTotal = projectedTotal
	out.Improvement = projectedTotal - result.TotalScore
	if result.TotalScore > 0 {
		out.PercentageIncrease = int(math.Round(float64(out.Improvement) / float64(result.TotalScore) * 100))
	}

	return out, true
}

func roundPercent(score, max int) int {
	if max == 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(max) * 100))
}
