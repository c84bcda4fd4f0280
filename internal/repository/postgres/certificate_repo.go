package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type certificateRepo struct {
	db *pgxpool.Pool
}

func NewCertificateRepository(db *pgxpool.Pool) domain.CertificateRepository {
	return &certificateRepo{db: db}
}

func (r *certificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	query := `INSERT INTO certificates (id, user_id, product_id, certificate_number, issue_date, status, skills)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		cert.ID, cert.UserID, cert.ProductID, cert.CertificateNumber,
		cert.IssueDate, cert.Status, pq.Array(cert.Skills),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("Certificate already issued for this product")
		}
		return apperror.Internal(err)
	}
	return nil
}

func (r *certificateRepo) GetByNumber(ctx context.Context, number string) (*domain.Certificate, error) {
	query := `SELECT id, user_id, product_id, certificate_number, issue_date, status, skills
              FROM certificates WHERE certificate_number = $1`
	return scanCertificate(r.db.QueryRow(ctx, query, number))
}

func (r *certificateRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*domain.Certificate, error) {
	query := `SELECT id, user_id, product_id, certificate_number, issue_date, status, skills
              FROM certificates WHERE user_id = $1 AND product_id = $2`
	return scanCertificate(r.db.QueryRow(ctx, query, userID, productID))
}

func (r *certificateRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Certificate, error) {
	query := `SELECT id, user_id, product_id, certificate_number, issue_date, status, skills
              FROM certificates WHERE user_id = $1 ORDER BY issue_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var certs []domain.Certificate
	for rows.Next() {
		cert, err := scanCertificate(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, *cert)
	}
	return certs, nil
}

func scanCertificate(row pgx.Row) (*domain.Certificate, error) {
	var cert domain.Certificate
	err := row.Scan(
		&cert.ID, &cert.UserID, &cert.ProductID, &cert.CertificateNumber,
		&cert.IssueDate, &cert.Status, pq.Array(&cert.Skills),
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Certificate not found")
		}
		return nil, apperror.Internal(err)
	}
	return &cert, nil
}
