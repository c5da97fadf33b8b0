package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"leadmagnet_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ── Domain Models ─────────────────────────────────────────────────────────────

// Assessment is the database model for a submitted assessment.
type Assessment struct {
	ID                  uuid.UUID  `db:"id"`
	BankID              string     `db:"bank_id"`
	CompanyName         string     `db:"company_name"`
	CompanySize         string     `db:"company_size"`
	MonthlyTransactions string     `db:"monthly_transactions"`
	PrimaryMarket       string     `db:"primary_market"`
	OverallScore        int        `db:"overall_score"`
	RiskLevel           string     `db:"risk_level"`
	Percentile          string     `db:"percentile"`
	Profile             string     `db:"profile"`
	ProfileSummary      string     `db:"profile_summary"`
	ExecutiveSummary    *string    `db:"executive_summary"`
	FullAnalysis        []byte     `db:"full_analysis"`
	Projection          []byte     `db:"projection"`
	ROI                 []byte     `db:"roi"`
	Email               *string    `db:"email"`
	FirstName           *string    `db:"first_name"`
	LastName            *string    `db:"last_name"`
	Phone               *string    `db:"phone"`
	ShareableToken      string     `db:"shareable_token"`
	TokenExpiresAt      time.Time  `db:"token_expires_at"`
	CompletedAt         *time.Time `db:"completed_at"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at"`
}

// CategoryScore is the database model for a per-category score row.
type CategoryScore struct {
	AssessmentID uuid.UUID `db:"assessment_id"`
	Category     string    `db:"category"`
	Label        string    `db:"label"`
	Score        int       `db:"score"`
	MaxScore     int       `db:"max_score"`
	Percentage   int       `db:"percentage"`
	Bonus        bool      `db:"bonus"`
}

// QuestionResponse is the database model for one answered question.
type QuestionResponse struct {
	AssessmentID uuid.UUID `db:"assessment_id"`
	QuestionID   string    `db:"question_id"`
	QuestionText string    `db:"question_text"`
	Answer       string    `db:"answer"`
	PointsEarned int       `db:"points_earned"`
	MaxPoints    int       `db:"max_points"`
}

// Gap is the database model for an identified operational gap.
type Gap struct {
	AssessmentID uuid.UUID `db:"assessment_id"`
	Category     string    `db:"category"`
	QuestionID   string    `db:"question_id"`
	Severity     string    `db:"severity"`
	Score        int       `db:"score"`
	MaxScore     int       `db:"max_score"`
}

// Stats summarizes lead-capture performance across all assessments.
type Stats struct {
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	ConversionRate float64 `json:"conversionRate"`
	AverageScore   float64 `json:"averageScore"`
}

// ── Repository ────────────────────────────────────────────────────────────────

const reportNotFoundMsg = "report not found"

// Repository provides database operations for assessments.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new assessment repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts the assessment header row. This is the primary write;
// callers treat a failure here as fatal for the submission.
func (r *Repository) Create(ctx context.Context, a *Assessment) error {
	query := `
		INSERT INTO assessments (
			id, bank_id, company_name, company_size, monthly_transactions, primary_market,
			overall_score, risk_level, percentile, profile, profile_summary,
			executive_summary, full_analysis, projection, roi,
			shareable_token, token_expires_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	if _, err := r.pool.Exec(ctx, query,
		a.ID, a.BankID, a.CompanyName, a.CompanySize, a.MonthlyTransactions, a.PrimaryMarket,
		a.OverallScore, a.RiskLevel, a.Percentile, a.Profile, a.ProfileSummary,
		a.ExecutiveSummary, a.FullAnalysis, a.Projection, a.ROI,
		a.ShareableToken, a.TokenExpiresAt, a.CreatedAt, a.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	return nil
}

// InsertScores stores the per-category breakdown.
func (r *Repository) InsertScores(ctx context.Context, scores []CategoryScore) error {
	query := `
		INSERT INTO assessment_scores (assessment_id, category, label, score, max_score, percentage, bonus)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, s := range scores {
		if _, err := r.pool.Exec(ctx, query,
			s.AssessmentID, s.Category, s.Label, s.Score, s.MaxScore, s.Percentage, s.Bonus,
		); err != nil {
			return fmt.Errorf("failed to insert category score: %w", err)
		}
	}
	return nil
}

// InsertResponses stores the answered questions.
func (r *Repository) InsertResponses(ctx context.Context, responses []QuestionResponse) error {
	query := `
		INSERT INTO assessment_responses (assessment_id, question_id, question_text, answer, points_earned, max_points)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, resp := range responses {
		if _, err := r.pool.Exec(ctx, query,
			resp.AssessmentID, resp.QuestionID, resp.QuestionText, resp.Answer, resp.PointsEarned, resp.MaxPoints,
		); err != nil {
			return fmt.Errorf("failed to insert response: %w", err)
		}
	}
	return nil
}

// InsertGaps stores the identified gaps.
func (r *Repository) InsertGaps(ctx context.Context, gaps []Gap) error {
	query := `
		INSERT INTO assessment_gaps (assessment_id, category, question_id, severity, score, max_score)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, g := range gaps {
		if _, err := r.pool.Exec(ctx, query,
			g.AssessmentID, g.Category, g.QuestionID, g.Severity, g.Score, g.MaxScore,
		); err != nil {
			return fmt.Errorf("failed to insert gap: %w", err)
		}
	}
	return nil
}

// GetByToken retrieves an assessment by its shareable token. Unknown and
// expired tokens are indistinguishable: both return NotFound.
func (r *Repository) GetByToken(ctx context.Context, token string) (*Assessment, error) {
	var a Assessment
	query := `
		SELECT id, bank_id, company_name, company_size, monthly_transactions, primary_market,
			overall_score, risk_level, percentile, profile, profile_summary,
			executive_summary, full_analysis, projection, roi,
			email, first_name, last_name, phone,
			shareable_token, token_expires_at, completed_at, created_at, updated_at
		FROM assessments
		WHERE shareable_token = $1 AND token_expires_at > now()`

	err := r.pool.QueryRow(ctx, query, token).Scan(
		&a.ID, &a.BankID, &a.CompanyName, &a.CompanySize, &a.MonthlyTransactions, &a.PrimaryMarket,
		&a.OverallScore, &a.RiskLevel, &a.Percentile, &a.Profile, &a.ProfileSummary,
		&a.ExecutiveSummary, &a.FullAnalysis, &a.Projection, &a.ROI,
		&a.Email, &a.FirstName, &a.LastName, &a.Phone,
		&a.ShareableToken, &a.TokenExpiresAt, &a.CompletedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(reportNotFoundMsg)
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return &a, nil
}

// GetScores retrieves the category breakdown for an assessment.
func (r *Repository) GetScores(ctx context.Context, assessmentID uuid.UUID) ([]CategoryScore, error) {
	query := `
		SELECT assessment_id, category, label, score, max_score, percentage, bonus
		FROM assessment_scores WHERE assessment_id = $1
		ORDER BY category ASC`

	rows, err := r.pool.Query(ctx, query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list category scores: %w", err)
	}
	defer rows.Close()

	var scores []CategoryScore
	for rows.Next() {
		var s CategoryScore
		if err := rows.Scan(&s.AssessmentID, &s.Category, &s.Label, &s.Score, &s.MaxScore, &s.Percentage, &s.Bonus); err != nil {
			return nil, fmt.Errorf("failed to scan category score: %w", err)
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

// GetResponses retrieves the answered questions for an assessment.
func (r *Repository) GetResponses(ctx context.Context, assessmentID uuid.UUID) ([]QuestionResponse, error) {
	query := `
		SELECT assessment_id, question_id, question_text, answer, points_earned, max_points
		FROM assessment_responses WHERE assessment_id = $1
		ORDER BY question_id ASC`

	rows, err := r.pool.Query(ctx, query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list responses: %w", err)
	}
	defer rows.Close()

	var responses []QuestionResponse
	for rows.Next() {
		var resp QuestionResponse
		if err := rows.Scan(&resp.AssessmentID, &resp.QuestionID, &resp.QuestionText, &resp.Answer, &resp.PointsEarned, &resp.MaxPoints); err != nil {
			return nil, fmt.Errorf("failed to scan response: %w", err)
		}
		responses = append(responses, resp)
	}
	return responses, rows.Err()
}

// GetGaps retrieves the identified gaps for an assessment.
func (r *Repository) GetGaps(ctx context.Context, assessmentID uuid.UUID) ([]Gap, error) {
	query := `
		SELECT assessment_id, category, question_id, severity, score, max_score
		FROM assessment_gaps WHERE assessment_id = $1
		ORDER BY severity ASC, question_id ASC`

	rows, err := r.pool.Query(ctx, query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list gaps: %w", err)
	}
	defer rows.Close()

	var gaps []Gap
	for rows.Next() {
		var g Gap
		if err := rows.Scan(&g.AssessmentID, &g.Category, &g.QuestionID, &g.Severity, &g.Score, &g.MaxScore); err != nil {
			return nil, fmt.Errorf("failed to scan gap: %w", err)
		}
		gaps = append(gaps, g)
	}
	return gaps, rows.Err()
}

// CaptureEmail records contact details against a valid token and marks
// the assessment completed. A missing or expired token returns NotFound.
func (r *Repository) CaptureEmail(ctx context.Context, token, email, firstName, lastName, phone string) (*Assessment, error) {
	query := `
		UPDATE assessments
		SET email = $2,
			first_name = NULLIF($3, ''),
			last_name = NULLIF($4, ''),
			phone = NULLIF($5, ''),
			completed_at = COALESCE(completed_at, now()),
			updated_at = now()
		WHERE shareable_token = $1 AND token_expires_at > now()`

	result, err := r.pool.Exec(ctx, query, token, email, firstName, lastName, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to capture email: %w", err)
	}
	if result.RowsAffected() == 0 {
		return nil, apperr.NotFound(reportNotFoundMsg)
	}

	return r.GetByToken(ctx, token)
}

// GetStats aggregates totals for the admin dashboard.
func (r *Repository) GetStats(ctx context.Context) (Stats, error) {
	var stats Stats
	query := `
		SELECT
			COUNT(*),
			COUNT(email),
			COALESCE(AVG(overall_score), 0)
		FROM assessments`

	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Completed, &stats.AverageScore); err != nil {
		return Stats{}, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	if stats.Total > 0 {
		stats.ConversionRate = math.Round(float64(stats.Completed)/float64(stats.Total)*10000) / 100
	}
	return stats, nil
}
