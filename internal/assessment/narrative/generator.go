package narrative

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"leadmagnet_backend/platform/cache"
	"leadmagnet_backend/platform/logger"
)

// Generator produces the narrative report sections, caching generic
// (placeholder-bearing) generations and personalizing them per company.
type Generator struct {
	client Client
	store  cache.Store
	log    *logger.Logger
}

// NewGenerator wires a model client and a cache backend.
func NewGenerator(client Client, store cache.Store, log *logger.Logger) *Generator {
	return &Generator{client: client, store: store, log: log}
}

// ExecutiveSummary generates the free-preview summary as plain text.
func (g *Generator) ExecutiveSummary(ctx context.Context, in PromptInput) (string, error) {
	text, err := g.generate(ctx, kindExecutiveSummary, in, func(anon PromptInput) string {
		return ExecutiveSummaryPrompt(anon)
	}, maxTokensSummary)
	if err != nil {
		return "", err
	}
	return Personalize(text, in.CompanyName, in.Market), nil
}

// FullAnalysis generates the email-gated structured analysis. The text
// is parsed before caching so malformed model output is never cached.
func (g *Generator) FullAnalysis(ctx context.Context, in PromptInput) (*Analysis, error) {
	key := cacheKey(kindFullAnalysis, in)

	if cached, ok := g.cacheGet(ctx, key); ok {
		var analysis Analysis
		if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
			personalizeAnalysis(&analysis, in.CompanyName, in.Market)
			return &analysis, nil
		}
		// Poisoned entry; drop it and regenerate.
		_ = g.store.Delete(ctx, key)
	}

	text, err := g.client.Generate(ctx, FullAnalysisPrompt(in.Anonymize()), maxTokensAnalysis)
	if err != nil {
		return nil, err
	}

	analysis, err := ParseAnalysis(text)
	if err != nil {
		return nil, err
	}

	if generic, err := json.Marshal(analysis); err == nil {
		g.cacheSet(ctx, key, string(generic))
	}

	personalizeAnalysis(analysis, in.CompanyName, in.Market)
	return analysis, nil
}

// DeepDive generates one category's drip email.
func (g *Generator) DeepDive(ctx context.Context, in PromptInput, category string) (EmailContent, error) {
	kind := deepDiveKind(category)
	key := cacheKey(kind, in)

	if cached, ok := g.cacheGet(ctx, key); ok {
		var email EmailContent
		if err := json.Unmarshal([]byte(cached), &email); err == nil {
			return personalizeEmail(email, in), nil
		}
		_ = g.store.Delete(ctx, key)
	}

	text, err := g.client.Generate(ctx, DeepDivePrompt(in.Anonymize(), category), maxTokensDeepDive)
	if err != nil {
		return EmailContent{}, err
	}

	email := ParseDeepDive(text, category)
	if generic, err := json.Marshal(email); err == nil {
		g.cacheSet(ctx, key, string(generic))
	}

	return personalizeEmail(email, in), nil
}

func (g *Generator) generate(ctx context.Context, kind string, in PromptInput, build func(PromptInput) string, maxTokens int64) (string, error) {
	key := cacheKey(kind, in)
	if cached, ok := g.cacheGet(ctx, key); ok {
		return cached, nil
	}

	text, err := g.client.Generate(ctx, build(in.Anonymize()), maxTokens)
	if err != nil {
		return "", err
	}

	g.cacheSet(ctx, key, text)
	return text, nil
}

func (g *Generator) cacheGet(ctx context.Context, key string) (string, bool) {
	value, ok, err := g.store.Get(ctx, key)
	if err != nil {
		g.log.Warn("narrative cache read failed", "error", err)
		return "", false
	}
	g.log.AIRequest("cache", 0, ok)
	return value, ok
}

func (g *Generator) cacheSet(ctx context.Context, key, value string) {
	if err := g.store.Set(ctx, key, value, cacheTTLHours*time.Hour); err != nil {
		g.log.Warn("narrative cache write failed", "error", err)
	}
}

func personalizeEmail(email EmailContent, in PromptInput) EmailContent {
	return EmailContent{
		Subject: Personalize(email.Subject, in.CompanyName, in.Market),
		Body:    Personalize(email.Body, in.CompanyName, in.Market),
	}
}

// personalizeAnalysis substitutes the placeholders in every string field
// of the decoded document. Substitution happens after decoding, never on
// serialized JSON, so company names containing quotes stay intact.
func personalizeAnalysis(a *Analysis, companyName, market string) {
	personalizeValue(reflect.ValueOf(a).Elem(), companyName, market)
}

func personalizeValue(v reflect.Value, companyName, market string) {
	switch v.Kind() {
	case reflect.String:
		v.SetString(Personalize(v.String(), companyName, market))
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			personalizeValue(v.Field(i), companyName, market)
		}
	case reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			personalizeValue(v.Index(i), companyName, market)
		}
	case reflect.Pointer:
		if !v.IsNil() {
			personalizeValue(v.Elem(), companyName, market)
		}
	}
}
