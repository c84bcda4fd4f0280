package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type idVerificationRepo struct {
	db *pgxpool.Pool
}

func NewIDVerificationRepository(db *pgxpool.Pool) domain.IDVerificationRepository {
	return &idVerificationRepo{db: db}
}

// Upsert relies on the unique user_id constraint; concurrent uploads for
// the same user converge on one row.
func (r *idVerificationRepo) Upsert(ctx context.Context, v *domain.IDVerification) error {
	query := `INSERT INTO id_verifications
                (user_id, status, id_document_url, visa_url, selfie_url, face_match_score,
                 review_notes, submitted_at, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
              ON CONFLICT (user_id) DO UPDATE SET
                status = EXCLUDED.status,
                id_document_url = COALESCE(EXCLUDED.id_document_url, id_verifications.id_document_url),
                visa_url = COALESCE(EXCLUDED.visa_url, id_verifications.visa_url),
                selfie_url = COALESCE(EXCLUDED.selfie_url, id_verifications.selfie_url),
                face_match_score = COALESCE(EXCLUDED.face_match_score, id_verifications.face_match_score),
                review_notes = COALESCE(EXCLUDED.review_notes, id_verifications.review_notes),
                submitted_at = COALESCE(EXCLUDED.submitted_at, id_verifications.submitted_at),
                updated_at = EXCLUDED.updated_at`
	_, err := r.db.Exec(ctx, query,
		v.UserID, v.Status, v.IDDocumentURL, v.VisaURL, v.SelfieURL,
		v.FaceMatchScore, v.ReviewNotes, v.SubmittedAt, time.Now(),
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *idVerificationRepo) GetByUserID(ctx context.Context, userID string) (*domain.IDVerification, error) {
	query := `SELECT id, user_id, status, id_document_url, visa_url, selfie_url, face_match_score,
                     review_notes, submitted_at, reviewed_at, created_at, updated_at
              FROM id_verifications WHERE user_id = $1`
	var v domain.IDVerification
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.ID, &v.UserID, &v.Status, &v.IDDocumentURL, &v.VisaURL, &v.SelfieURL,
		&v.FaceMatchScore, &v.ReviewNotes, &v.SubmittedAt, &v.ReviewedAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("ID verification not found")
		}
		return nil, apperror.Internal(err)
	}
	return &v, nil
}

func (r *idVerificationRepo) UpdateStatus(ctx context.Context, userID, status string, notes *string) error {
	query := `UPDATE id_verifications
              SET status = $2, review_notes = COALESCE($3, review_notes), reviewed_at = $4, updated_at = $4
              WHERE user_id = $1`
	tag, err := r.db.Exec(ctx, query, userID, status, notes, time.Now())
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("ID verification not found")
	}
	return nil
}
