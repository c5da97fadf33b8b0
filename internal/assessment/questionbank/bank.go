// Package questionbank defines the static question banks behind each
// assessment variant: the weighted questions, their answer options and
// point values, the best-practice benchmark answers, and the risk tiers
// used to classify an overall score.
package questionbank

import (
	"fmt"
	"sort"
)

// Question bank identifiers.
const (
	BankBrokerage = "brokerage"
	BankAgent     = "agent"
	BankBrokerOps = "broker_ops"
)

// Risk levels, ordered from best to worst.
const (
	RiskLow      = "LOW"
	RiskModerate = "MODERATE"
	RiskHigh     = "HIGH"
	RiskCritical = "CRITICAL"
)

// Question is a single scored question. Weight is the maximum number of
// points the question can contribute. Options maps the exact answer text
// to the points it earns; unknown answers earn zero. Benchmark is the
// best-practice answer used for the benchmark comparison.
type Question struct {
	ID        string
	Text      string
	Category  string
	Weight    int
	Options   map[string]int
	Benchmark string
}

// Category groups questions for the score breakdown. Bonus categories
// are scored and reported but excluded from the overall percentage.
type Category struct {
	ID    string
	Label string
	Bonus bool
}

// Tier classifies an overall percentage. Tiers are evaluated in
// descending MinPercent order; the first tier whose threshold the score
// meets applies.
type Tier struct {
	MinPercent     int
	Profile        string
	RiskLevel      string
	PercentileRank string
	Summary        string
}

// Bank is a complete assessment variant.
type Bank struct {
	ID             string
	Name           string
	Categories     []Category
	Questions      []Question
	Tiers          []Tier
	BenchmarkScore int
}

// Question returns the question with the given ID.
func (b *Bank) Question(id string) (Question, bool) {
	for _, q := range b.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Category returns the category with the given ID.
func (b *Bank) Category(id string) (Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// MaxScore is the total weight of all non-bonus questions. It is the
// denominator for the overall percentage.
func (b *Bank) MaxScore() int {
	bonus := make(map[string]bool)
	for _, c := range b.Categories {
		if c.Bonus {
			bonus[c.ID] = true
		}
	}
	total := 0
	for _, q := range b.Questions {
		if !bonus[q.Category] {
			total += q.Weight
		}
	}
	return total
}

// CategoryMax returns the total weight of questions in a category.
func (b *Bank) CategoryMax(categoryID string) int {
	total := 0
	for _, q := range b.Questions {
		if q.Category == categoryID {
			total += q.Weight
		}
	}
	return total
}

// TierFor returns the tier matching an overall percentage.
func (b *Bank) TierFor(percentage int) Tier {
	for _, t := range b.Tiers {
		if percentage >= t.MinPercent {
			return t
		}
	}
	return b.Tiers[len(b.Tiers)-1]
}

var registry = map[string]*Bank{
	BankBrokerage: brokerageBank,
	BankAgent:     agentBank,
	BankBrokerOps: brokerOpsBank,
}

// Get returns the bank with the given ID.
func Get(id string) (*Bank, error) {
	bank, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("unknown question bank %q", id)
	}
	return bank, nil
}

// Variants returns all registered bank IDs, sorted.
func Variants() []string {
	ids := make([]string, 0, len(registry))
	for id := range registry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func init() {
	for id, bank := range registry {
		if err := validate(bank); err != nil {
			panic(fmt.Sprintf("question bank %s: %v", id, err))
		}
	}
}

// validate catches data-entry mistakes in the static banks at startup.
func validate(b *Bank) error {
	if len(b.Tiers) == 0 {
		return fmt.Errorf("no tiers")
	}
	if !sort.SliceIsSorted(b.Tiers, func(i, j int) bool {
		return b.Tiers[i].MinPercent > b.Tiers[j].MinPercent
	}) {
		return fmt.Errorf("tiers not in descending order")
	}
	if b.Tiers[len(b.Tiers)-1].MinPercent != 0 {
		return fmt.Errorf("last tier must have MinPercent 0")
	}
	seen := make(map[string]bool)
	for _, q := range b.Questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question %s", q.ID)
		}
		seen[q.ID] = true
		if _, ok := b.Category(q.Category); !ok {
			return fmt.Errorf("question %s references unknown category %s", q.ID, q.Category)
		}
		max := 0
		for _, points := range q.Options {
			if points > max {
				max = points
			}
		}
		if max != q.Weight {
			return fmt.Errorf("question %s: best option earns %d, weight is %d", q.ID, max, q.Weight)
		}
		if q.Benchmark != "" {
			if _, ok := q.Options[q.Benchmark]; !ok {
				return fmt.Errorf("question %s: benchmark answer not among options", q.ID)
			}
		}
	}
	return nil
}
