package narrative

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
)

// Narrative cache entries live for 24 hours.
const cacheTTLHours = 24

// Generation kinds, also the cache key namespace.
const (
	kindExecutiveSummary = "executive_summary"
	kindFullAnalysis     = "full_analysis"
	kindDeepDivePrefix   = "deepdive_"
)

// cacheKey fingerprints an assessment for a generation kind. Identifying
// fields (company name, market, email) are deliberately excluded so two
// companies with identical answers share one cached generation; the
// cached text carries placeholders and is re-personalized on read.
func cacheKey(kind string, in PromptInput) string {
	responses := make([]string, 0, len(in.Responses))
	for _, r := range in.Responses {
		responses = append(responses, fmt.Sprintf("%s:%s:%d", r.QuestionID, r.Answer, r.Points))
	}
	sort.Strings(responses)

	categories := make([]string, 0, len(in.CategoryScores))
	for _, c := range in.CategoryScores {
		categories = append(categories, fmt.Sprintf("%s:%d", c.Category, c.Percentage))
	}

	// The variant is part of the fingerprint: the same scores prompt
	// differently per question bank.
	fingerprint := fmt.Sprintf("%s:%s:%d:%s:%s:%s",
		kind,
		in.Variant,
		in.OverallScore,
		in.RiskLevel,
		strings.Join(categories, "|"),
		strings.Join(responses, "|"),
	)

	sum := sha256.Sum256([]byte(fingerprint))
	return "ai:" + kind + ":" + hex.EncodeToString(sum[:])
}

// deepDiveKind namespaces deep-dive generations per category.
func deepDiveKind(category string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(category), "_"))
	return kindDeepDivePrefix + normalized
}
