package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type sessionRepo struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) domain.SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, session *domain.AssessmentSession) error {
	data, err := json.Marshal(session.Data)
	if err != nil {
		return apperror.Internal(err)
	}
	query := `INSERT INTO assessment_sessions (session_id, user_id, status, data, last_activity, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = r.db.Exec(ctx, query,
		session.SessionID, session.UserID, session.Status, data, session.LastActivity, session.CreatedAt,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*domain.AssessmentSession, error) {
	query := `SELECT session_id, user_id, status, data, last_activity, expired_reason, expired_at, created_at
              FROM assessment_sessions WHERE session_id = $1`
	return scanSession(r.db.QueryRow(ctx, query, sessionID))
}

func (r *sessionRepo) ListByUserID(ctx context.Context, userID string) ([]domain.AssessmentSession, error) {
	query := `SELECT session_id, user_id, status, data, last_activity, expired_reason, expired_at, created_at
              FROM assessment_sessions WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	defer rows.Close()

	var sessions []domain.AssessmentSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, nil
}

func (r *sessionRepo) UpdateData(ctx context.Context, sessionID string, data domain.SessionData) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return apperror.Internal(err)
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE assessment_sessions SET data = $2, last_activity = $3 WHERE session_id = $1`,
		sessionID, payload, time.Now(),
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Session not found")
	}
	return nil
}

func (r *sessionRepo) Touch(ctx context.Context, sessionID string, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE assessment_sessions SET last_activity = $2 WHERE session_id = $1 AND status = $3`,
		sessionID, at, domain.SessionStatusActive,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Session not found")
	}
	return nil
}

func (r *sessionRepo) Expire(ctx context.Context, sessionID, reason string, at time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE assessment_sessions SET status = $2, expired_reason = $3, expired_at = $4
         WHERE session_id = $1 AND status = $5`,
		sessionID, domain.SessionStatusExpired, reason, at, domain.SessionStatusActive,
	)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("Session not found")
	}
	return nil
}

func (r *sessionRepo) DeleteStaleActive(ctx context.Context, cutoff time.Time) (int64, error) {
	// Only active sessions are swept; already-expired rows are kept as
	// inert audit records, which keeps repeated sweeps idempotent.
	tag, err := r.db.Exec(ctx,
		`DELETE FROM assessment_sessions WHERE status = $1 AND last_activity < $2`,
		domain.SessionStatusActive, cutoff,
	)
	if err != nil {
		return 0, apperror.Internal(err)
	}
	return tag.RowsAffected(), nil
}

func scanSession(row pgx.Row) (*domain.AssessmentSession, error) {
	var s domain.AssessmentSession
	var data []byte
	err := row.Scan(
		&s.SessionID, &s.UserID, &s.Status, &data,
		&s.LastActivity, &s.ExpiredReason, &s.ExpiredAt, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NotFound("Session not found")
		}
		return nil, apperror.Internal(err)
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s.Data); err != nil {
			return nil, apperror.Internal(err)
		}
	}
	return &s, nil
}
