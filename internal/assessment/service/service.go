// Package service orchestrates assessment scoring, persistence, report
// generation and lead capture.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"leadmagnet_backend/internal/assessment/narrative"
	"leadmagnet_backend/internal/assessment/projection"
	"leadmagnet_backend/internal/assessment/questionbank"
	"leadmagnet_backend/internal/assessment/repository"
	"leadmagnet_backend/internal/assessment/roi"
	"leadmagnet_backend/internal/assessment/scoring"
	"leadmagnet_backend/internal/assessment/transport"
	"leadmagnet_backend/internal/events"
	"leadmagnet_backend/platform/apperr"
	"leadmagnet_backend/platform/logger"
	"leadmagnet_backend/platform/sanitize"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const tokenTTL = 48 * time.Hour

// Narrator generates the AI-written report sections. The concrete
// implementation lives in the narrative package; the interface exists so
// the service works without an API key and tests can stub generation.
type Narrator interface {
	ExecutiveSummary(ctx context.Context, in narrative.PromptInput) (string, error)
	FullAnalysis(ctx context.Context, in narrative.PromptInput) (*narrative.Analysis, error)
	DeepDive(ctx context.Context, in narrative.PromptInput, category string) (narrative.EmailContent, error)
}

// Service provides business logic for assessments.
type Service struct {
	repo     *repository.Repository
	narrator Narrator // optional, nil means deterministic reports only
	bus      events.Bus
	log      *logger.Logger
	baseURL  string
}

// New creates a new assessment service.
func New(repo *repository.Repository, log *logger.Logger, baseURL string) *Service {
	return &Service{repo: repo, log: log, baseURL: strings.TrimRight(baseURL, "/")}
}

// SetNarrator injects the AI report generator.
func (s *Service) SetNarrator(n Narrator) {
	s.narrator = n
}

// SetEventBus injects the event bus.
func (s *Service) SetEventBus(bus events.Bus) {
	s.bus = bus
}

// Submit scores a completed questionnaire, persists the assessment and
// returns the deterministic results plus a shareable report token. The
// AI narrative is generated here too, but a generation failure never
// fails the submission: the tier summary stands in for the executive
// summary and the structured analysis is simply absent.
func (s *Service) Submit(ctx context.Context, req transport.SubmitAssessmentRequest) (*transport.SubmitAssessmentResponse, error) {
	bank, err := questionbank.Get(req.BankID)
	if err != nil {
		return nil, apperr.BadRequest(fmt.Sprintf("unknown assessment type %q", req.BankID))
	}

	// Free-text intake fields end up in prompts, emails and the CRM.
	req.CompanyName = sanitize.Text(req.CompanyName)
	req.CompanySize = sanitize.Text(req.CompanySize)
	req.MonthlyTransactions = sanitize.Text(req.MonthlyTransactions)
	req.PrimaryMarket = sanitize.Text(req.PrimaryMarket)

	result := scoring.Score(bank, req.Responses)

	var proj *projection.Result
	if p, ok := projection.Project(result); ok {
		proj = &p
	}

	var estimate *roi.Estimate
	if model, err := roi.ModelFor(bank.ID); err == nil {
		est := model.Estimate(s.volumeFor(bank.ID, req))
		estimate = &est
	}

	now := time.Now()
	assessment := &repository.Assessment{
		ID:                  uuid.New(),
		BankID:              bank.ID,
		CompanyName:         req.CompanyName,
		CompanySize:         req.CompanySize,
		MonthlyTransactions: req.MonthlyTransactions,
		PrimaryMarket:       req.PrimaryMarket,
		OverallScore:        result.Percentage,
		RiskLevel:           result.RiskLevel,
		Percentile:          result.PercentileRank,
		Profile:             result.Profile,
		ProfileSummary:      result.ProfileSummary,
		ShareableToken:      uuid.NewString(),
		TokenExpiresAt:      now.Add(tokenTTL),
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if proj != nil {
		assessment.Projection = marshalOrNil(proj)
	}
	if estimate != nil {
		assessment.ROI = marshalOrNil(estimate)
	}

	execSummary, analysis := s.generateNarrative(ctx, buildPromptInput(bank, req, result))
	if execSummary == "" {
		execSummary = result.ProfileSummary
	}
	assessment.ExecutiveSummary = &execSummary
	if analysis != nil {
		assessment.FullAnalysis = marshalOrNil(analysis)
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}
	s.persistBreakdown(ctx, bank, assessment.ID, result)

	s.publish(ctx, events.AssessmentSubmitted{
		BaseEvent:    events.NewBaseEvent(),
		AssessmentID: assessment.ID,
		Token:        assessment.ShareableToken,
		BankID:       bank.ID,
		CompanyName:  req.CompanyName,
		OverallScore: result.Percentage,
		RiskLevel:    result.RiskLevel,
	})

	return &transport.SubmitAssessmentResponse{
		Token:      assessment.ShareableToken,
		ReportURL:  s.reportURL(assessment.ShareableToken),
		ExpiresAt:  assessment.TokenExpiresAt,
		Scores:     result,
		Projection: proj,
		ROI:        estimate,
	}, nil
}

// GetReport retrieves a report by token. The narrative sections are
// withheld until an email address has been captured; everything the
// deterministic pipeline produced is always visible.
func (s *Service) GetReport(ctx context.Context, token string) (*transport.ReportResponse, error) {
	a, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	resp := &transport.ReportResponse{
		Token:               a.ShareableToken,
		BankID:              a.BankID,
		CompanyName:         a.CompanyName,
		CompanySize:         a.CompanySize,
		MonthlyTransactions: a.MonthlyTransactions,
		PrimaryMarket:       a.PrimaryMarket,
		CreatedAt:           a.CreatedAt,
		ExpiresAt:           a.TokenExpiresAt,
		EmailCaptured:       a.Email != nil,
		OverallScore:        a.OverallScore,
		RiskLevel:           a.RiskLevel,
		Percentile:          a.Percentile,
		Profile:             a.Profile,
		ProfileSummary:      a.ProfileSummary,
	}

	scores, err := s.repo.GetScores(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	for _, sc := range scores {
		resp.CategoryScores = append(resp.CategoryScores, transport.CategoryScoreView{
			Category:   sc.Category,
			Label:      sc.Label,
			Score:      sc.Score,
			MaxScore:   sc.MaxScore,
			Percentage: sc.Percentage,
			Bonus:      sc.Bonus,
		})
	}

	gaps, err := s.repo.GetGaps(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	for _, g := range gaps {
		resp.Gaps = append(resp.Gaps, transport.GapView{
			Category:   g.Category,
			QuestionID: g.QuestionID,
			Severity:   g.Severity,
			Score:      g.Score,
			MaxScore:   g.MaxScore,
		})
	}

	if a.Projection != nil {
		var p projection.Result
		if err := json.Unmarshal(a.Projection, &p); err == nil {
			resp.Projection = &p
		}
	}
	if a.ROI != nil {
		var est roi.Estimate
		if err := json.Unmarshal(a.ROI, &est); err == nil {
			resp.ROI = &est
		}
	}

	if resp.EmailCaptured {
		resp.ExecutiveSummary = a.ExecutiveSummary
		if a.FullAnalysis != nil {
			var analysis narrative.Analysis
			if err := json.Unmarshal(a.FullAnalysis, &analysis); err == nil {
				resp.FullAnalysis = &analysis
			}
		}
	}

	return resp, nil
}

// CaptureEmail records contact details against a report token and
// unlocks the narrative sections. CRM sync, the report email and the
// drip sequence run through event subscribers and never block or fail
// the capture itself.
func (s *Service) CaptureEmail(ctx context.Context, token string, req transport.CaptureEmailRequest) (*transport.CaptureEmailResponse, error) {
	a, err := s.repo.CaptureEmail(ctx, token, req.Email, req.FirstName, req.LastName, req.Phone)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EmailCaptured{
		BaseEvent:           events.NewBaseEvent(),
		AssessmentID:        a.ID,
		Token:               a.ShareableToken,
		Email:               req.Email,
		FirstName:           req.FirstName,
		LastName:            req.LastName,
		Phone:               req.Phone,
		CompanyName:         a.CompanyName,
		CompanySize:         a.CompanySize,
		MonthlyTransactions: a.MonthlyTransactions,
		Market:              a.PrimaryMarket,
		OverallScore:        a.OverallScore,
		RiskLevel:           a.RiskLevel,
		ReportURL:           s.reportURL(a.ShareableToken),
	})

	return &transport.CaptureEmailResponse{
		Token:     a.ShareableToken,
		ReportURL: s.reportURL(a.ShareableToken),
		Unlocked:  true,
	}, nil
}

// Stats aggregates lead-capture totals for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (repository.Stats, error) {
	return s.repo.GetStats(ctx)
}

// DeepDiveEmail generates the follow-up email for an assessment's
// weakest category. Used by the drip worker.
func (s *Service) DeepDiveEmail(ctx context.Context, token string) (narrative.EmailContent, *repository.Assessment, error) {
	if s.narrator == nil {
		return narrative.EmailContent{}, nil, apperr.New(apperr.KindUnavailable, "narrative generation is not configured")
	}

	a, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return narrative.EmailContent{}, nil, err
	}
	if a.Email == nil {
		return narrative.EmailContent{}, nil, apperr.Conflict("email not captured for this assessment")
	}

	scores, err := s.repo.GetScores(ctx, a.ID)
	if err != nil {
		return narrative.EmailContent{}, nil, err
	}
	responses, err := s.repo.GetResponses(ctx, a.ID)
	if err != nil {
		return narrative.EmailContent{}, nil, err
	}

	in := narrative.PromptInput{
		Variant:             a.BankID,
		CompanyName:         a.CompanyName,
		CompanySize:         a.CompanySize,
		MonthlyTransactions: a.MonthlyTransactions,
		Market:              a.PrimaryMarket,
		OverallScore:        a.OverallScore,
		RiskLevel:           a.RiskLevel,
	}
	weakest := ""
	weakestPct := 101
	for _, sc := range scores {
		in.CategoryScores = append(in.CategoryScores, narrative.CategoryScore{
			Category:   sc.Label,
			Score:      sc.Score,
			MaxScore:   sc.MaxScore,
			Percentage: sc.Percentage,
		})
		if !sc.Bonus && sc.Percentage < weakestPct {
			weakest = sc.Label
			weakestPct = sc.Percentage
		}
	}
	if weakest == "" {
		return narrative.EmailContent{}, nil, apperr.NotFound("no scored categories for this assessment")
	}
	for _, r := range responses {
		in.Responses = append(in.Responses, narrative.Response{
			QuestionID:   r.QuestionID,
			QuestionText: r.QuestionText,
			Answer:       r.Answer,
			Points:       r.PointsEarned,
		})
	}

	email, err := s.narrator.DeepDive(ctx, in, weakest)
	if err != nil {
		return narrative.EmailContent{}, nil, err
	}
	return email, a, nil
}

// generateNarrative runs the two AI sections concurrently. Each section
// fails independently; a failure is logged and leaves its zero value.
func (s *Service) generateNarrative(ctx context.Context, in narrative.PromptInput) (string, *narrative.Analysis) {
	if s.narrator == nil {
		return "", nil
	}

	var (
		execSummary string
		analysis    *narrative.Analysis
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.narrator.ExecutiveSummary(gctx, in)
		if err != nil {
			s.log.AIError("executive_summary", 0, err)
			return nil
		}
		execSummary = text
		return nil
	})
	g.Go(func() error {
		a, err := s.narrator.FullAnalysis(gctx, in)
		if err != nil {
			s.log.AIError("full_analysis", 0, err)
			return nil
		}
		analysis = a
		return nil
	})
	_ = g.Wait()

	return execSummary, analysis
}

// persistBreakdown writes the category, response and gap rows. These are
// secondary to the assessment header: failures are logged and the
// submission proceeds.
func (s *Service) persistBreakdown(ctx context.Context, bank *questionbank.Bank, id uuid.UUID, result scoring.Result) {
	scores := make([]repository.CategoryScore, 0, len(result.Categories))
	for _, c := range result.Categories {
		scores = append(scores, repository.CategoryScore{
			AssessmentID: id,
			Category:     c.CategoryID,
			Label:        c.Label,
			Score:        c.Score,
			MaxScore:     c.Max,
			Percentage:   c.Percentage,
			Bonus:        c.Bonus,
		})
	}
	if err := s.repo.InsertScores(ctx, scores); err != nil {
		s.log.DatabaseError("insert category scores", err)
	}

	responses := make([]repository.QuestionResponse, 0, len(result.QuestionResults))
	for _, qr := range result.QuestionResults {
		text := qr.QuestionID
		if q, ok := bank.Question(qr.QuestionID); ok {
			text = q.Text
		}
		responses = append(responses, repository.QuestionResponse{
			AssessmentID: id,
			QuestionID:   qr.QuestionID,
			QuestionText: text,
			Answer:       qr.Response,
			PointsEarned: qr.Score,
			MaxPoints:    qr.MaxScore,
		})
	}
	if err := s.repo.InsertResponses(ctx, responses); err != nil {
		s.log.DatabaseError("insert responses", err)
	}

	gaps := make([]repository.Gap, 0, len(result.Gaps))
	for _, g := range result.Gaps {
		gaps = append(gaps, repository.Gap{
			AssessmentID: id,
			Category:     g.Category,
			QuestionID:   g.QuestionID,
			Severity:     g.Severity,
			Score:        g.Score,
			MaxScore:     g.MaxScore,
		})
	}
	if err := s.repo.InsertGaps(ctx, gaps); err != nil {
		s.log.DatabaseError("insert gaps", err)
	}
}

func (s *Service) publish(ctx context.Context, event events.Event) {
	if s.bus != nil {
		s.bus.Publish(ctx, event)
	}
}

func (s *Service) reportURL(token string) string {
	return fmt.Sprintf("%s/report/%s", s.baseURL, token)
}

// volumeFor pulls the ROI volume figure out of the intake fields: agent
// count for brokerage variants, transactions per month for agents. Free
// text like "75 agents" or "about 3" resolves to its first number.
func (s *Service) volumeFor(bankID string, req transport.SubmitAssessmentRequest) int {
	if bankID == questionbank.BankAgent {
		return firstNumber(req.MonthlyTransactions)
	}
	return firstNumber(req.CompanySize)
}

func firstNumber(text string) int {
	start := -1
	for i, r := range text {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(text[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(text[start:])
		return n
	}
	return 0
}

// buildPromptInput snapshots a scored submission for prompt building.
func buildPromptInput(bank *questionbank.Bank, req transport.SubmitAssessmentRequest, result scoring.Result) narrative.PromptInput {
	in := narrative.PromptInput{
		Variant:             bank.ID,
		CompanyName:         req.CompanyName,
		CompanySize:         req.CompanySize,
		MonthlyTransactions: req.MonthlyTransactions,
		Market:              req.PrimaryMarket,
		OverallScore:        result.Percentage,
		RiskLevel:           result.RiskLevel,
	}
	for _, c := range result.Categories {
		in.CategoryScores = append(in.CategoryScores, narrative.CategoryScore{
			Category:   c.Label,
			Score:      c.Score,
			MaxScore:   c.Max,
			Percentage: c.Percentage,
		})
	}
	for _, qr := range result.QuestionResults {
		text := qr.QuestionID
		if q, ok := bank.Question(qr.QuestionID); ok {
			text = q.Text
		}
		in.Responses = append(in.Responses, narrative.Response{
			QuestionID:   qr.QuestionID,
			QuestionText: text,
			Answer:       qr.Response,
			Points:       qr.Score,
		})
	}
	return in
}

func marshalOrNil(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
