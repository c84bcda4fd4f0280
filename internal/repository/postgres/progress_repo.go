package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type progressRepo struct {
	db *pgxpool.Pool
}

func NewProgressRepository(db *pgxpool.Pool) domain.ProgressRepository {
	return &progressRepo{db: db}
}

func (r *progressRepo) GetByUserID(ctx context.Context, userID string) (*domain.InterviewProgress, error) {
	query := `SELECT user_id, documents_uploaded, voice_interview, mcq_test, coding_challenge, updated_at
              FROM interview_progress WHERE user_id = $1`
	var p domain.InterviewProgress
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.DocumentsUploaded, &p.VoiceInterview, &p.MCQTest, &p.CodingChallenge, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// a user who never started the flow has all steps false
			return &domain.InterviewProgress{UserID: userID, UpdatedAt: time.Now()}, nil
		}
		return nil, apperror.Internal(err)
	}
	return &p, nil
}

// progressColumns whitelists step names; MarkStep interpolates the column
// name so it must never come from unvalidated input.
var progressColumns = map[string]bool{
	domain.StepDocumentsUploaded: true,
	domain.StepVoiceInterview:    true,
	domain.StepMCQTest:           true,
	domain.StepCodingChallenge:   true,
}

func (r *progressRepo) MarkStep(ctx context.Context, userID, step string) error {
	if !progressColumns[step] {
		return apperror.BadRequest("Unknown interview step")
	}
	// Steps are monotonic: upsert only ever sets a flag to true.
	query := fmt.Sprintf(`INSERT INTO interview_progress (user_id, %s, updated_at)
              VALUES ($1, TRUE, $2)
              ON CONFLICT (user_id)
              DO UPDATE SET %s = TRUE, updated_at = $2`, step, step)
	_, err := r.db.Exec(ctx, query, userID, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}
