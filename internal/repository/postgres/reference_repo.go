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

type referenceRepo struct {
	db *pgxpool.Pool
}

func NewReferenceRepository(db *pgxpool.Pool) domain.ReferenceRepository {
	return &referenceRepo{db: db}
}

const referenceColumns = `id, user_id, name, email, company, relation, status, response_token,
                          email_sent_at, response_at, response_notes, created_at`

func (r *referenceRepo) Create(ctx context.Context, ref *domain.Reference) error {
	query := `INSERT INTO references_list
                (id, user_id, name, email, company, relation, status, response_token, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(ctx, query,
		ref.ID, ref.UserID, ref.Name, ref.Email, ref.Company,
		ref.Relation, ref.Status, ref.ResponseToken, ref.CreatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *referenceRepo) GetByID(ctx context.Context, id string) (*domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM references_list WHERE id = $1`
	return scanReference(r.db.QueryRow(ctx, query, id))
}

func (r *referenceRepo) GetByToken(ctx context.Context, token string) (*domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM references_list WHERE response_token = $1`
	return scanReference(r.db.QueryRow(ctx, query, token))
}

func (r *referenceRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Reference, error) {
	query := `SELECT ` + referenceColumns + ` FROM references_list WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var refs []domain.Reference
	for rows.Next() {
		ref, err := scanReference(rows)
		if err != nil {
			return nil, err
		}
		refs = append(refs, *ref)
	}
	return refs, nil
}

func (r *referenceRepo) UpdateStatus(ctx context.Context, id, status string, sentAt, responseAt *time.Time, notes *string) error {
	query := `UPDATE references_list
              SET status = $2,
                  email_sent_at = COALESCE($3, email_sent_at),
                  response_at = COALESCE($4, response_at),
                  response_notes = COALESCE($5, response_notes)
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id, status, sentAt, responseAt, notes)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Reference not found")
	}
	return nil
}

func (r *referenceRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM references_list WHERE id = $1`, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Reference not found")
	}
	return nil
}

func scanReference(row pgx.Row) (*domain.Reference, error) {
	var ref domain.Reference
	err := row.Scan(
		&ref.ID, &ref.UserID, &ref.Name, &ref.Email, &ref.Company, &ref.Relation,
		&ref.Status, &ref.ResponseToken, &ref.EmailSentAt, &ref.ResponseAt, &ref.ResponseNotes, &ref.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Reference not found")
		}
		return nil, apperror.Internal(err)
	}
	return &ref, nil
}
