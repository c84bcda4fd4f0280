package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type paymentRepo struct {
	db *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) domain.PaymentRepository {
	return &paymentRepo{db: db}
}

// ConfirmPurchase applies "record payment + grant entitlement" atomically.
// The unique index on payment_intent_id is the idempotency key: a repeat
// confirmation aborts the transaction before the entitlement is touched
// and surfaces domain.ErrDuplicateIntent.
func (r *paymentRepo) ConfirmPurchase(ctx context.Context, payment *domain.Payment) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.Internal(err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO payments (id, user_id, product_id, amount, currency, status, payment_intent_id, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		payment.ID, payment.UserID, payment.ProductID, payment.Amount,
		payment.Currency, payment.Status, payment.PaymentIntentID, payment.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return domain.ErrDuplicateIntent
		}
		return apperror.Internal(err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE users
         SET purchased_products = array_append(purchased_products, $2), updated_at = $3
         WHERE id = $1 AND NOT ($2 = ANY(purchased_products))`,
		payment.UserID, payment.ProductID, payment.CreatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	_ = tag // already-owned product is fine: the payment row is still recorded

	if err := tx.Commit(ctx); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *paymentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Payment, error) {
	query := `SELECT id, user_id, product_id, amount, currency, status, payment_intent_id, created_at
              FROM payments WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func (r *paymentRepo) ListAll(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT id, user_id, product_id, amount, currency, status, payment_intent_id, created_at
              FROM payments ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.ProductID, &p.Amount, &p.Currency,
			&p.Status, &p.PaymentIntentID, &p.CreatedAt,
		); err != nil {
			return nil, apperror.Internal(err)
		}
		payments = append(payments, p)
	}
	return payments, nil
}
