package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lumipath/internal/domain"
)

// ErrNoAssessments indica que el dueño no tiene corridas guardadas.
var ErrNoAssessments = errors.New("no assessments for owner")

// AssessmentRepository persiste corridas de diagnóstico por dueño.
// El único patrón de lectura que necesita el core es "la más reciente".
type AssessmentRepository interface {
	Insert(ctx context.Context, a domain.Assessment) error
	FindLatestByOwner(ctx context.Context, ownerID string) (domain.Assessment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Assessment, error)
}

type PgAssessmentRepository struct {
	pool *pgxpool.Pool
}

func NewPgAssessmentRepository(pool *pgxpool.Pool) *PgAssessmentRepository {
	return &PgAssessmentRepository{pool: pool}
}

func (r *PgAssessmentRepository) Insert(ctx context.Context, a domain.Assessment) error {
	const query = `
		INSERT INTO assessments (id, owner_id, industry_result, score_c, score_l, score_t, strengths, weaknesses, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		a.ID,
		a.OwnerID,
		a.IndustryResult,
		a.ScoreC,
		a.ScoreL,
		a.ScoreT,
		a.Strengths,
		a.Weaknesses,
		a.CreatedAt,
	)
	return err
}

func (r *PgAssessmentRepository) FindLatestByOwner(ctx context.Context, ownerID string) (domain.Assessment, error) {
	const query = `
		SELECT id, owner_id, industry_result, score_c, score_l, score_t, strengths, weaknesses, created_at
		FROM assessments
		WHERE owner_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	var a domain.Assessment
	err := r.pool.QueryRow(ctx, query, ownerID).Scan(
		&a.ID,
		&a.OwnerID,
		&a.IndustryResult,
		&a.ScoreC,
		&a.ScoreL,
		&a.ScoreT,
		&a.Strengths,
		&a.Weaknesses,
		&a.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Assessment{}, ErrNoAssessments
	}
	return a, err
}

func (r *PgAssessmentRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Assessment, error) {
	const query = `
		SELECT id, owner_id, industry_result, score_c, score_l, score_t, strengths, weaknesses, created_at
		FROM assessments
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assessments []domain.Assessment
	for rows.Next() {
		var a domain.Assessment
		err = rows.Scan(
			&a.ID,
			&a.OwnerID,
			&a.IndustryResult,
			&a.ScoreC,
			&a.ScoreL,
			&a.ScoreT,
			&a.Strengths,
			&a.Weaknesses,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assessments, nil
}
