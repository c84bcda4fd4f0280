package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
	"simplehire-backend/pkg/logger"
)

type sessionUsecase struct {
	sessionRepo domain.SessionRepository
}

func NewSessionUsecase(sessionRepo domain.SessionRepository) domain.SessionUsecase {
	return &sessionUsecase{sessionRepo: sessionRepo}
}

func (u *sessionUsecase) Create(ctx context.Context, userID string) (*domain.AssessmentSession, error) {
	now := time.Now()
	session := &domain.AssessmentSession{
		SessionID:    uuid.NewString(),
		UserID:       userID,
		Status:       domain.SessionStatusActive,
		Data:         domain.SessionData{},
		LastActivity: now,
		CreatedAt:    now,
	}
	if err := u.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get treats expired sessions as not found: the row may still exist as an
// inert audit record, but the API contract is that it is gone.
func (u *sessionUsecase) Get(ctx context.Context, sessionID string) (*domain.AssessmentSession, error) {
	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status == domain.SessionStatusExpired {
		return nil, apperror.NotFound("Session not found")
	}
	return session, nil
}

func (u *sessionUsecase) ListForUser(ctx context.Context, userID string) ([]domain.AssessmentSession, error) {
	return u.sessionRepo.ListByUserID(ctx, userID)
}

func (u *sessionUsecase) Heartbeat(ctx context.Context, userID, sessionID string) error {
	session, err := u.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return apperror.Forbidden("Session belongs to another user")
	}
	return u.sessionRepo.Touch(ctx, sessionID, time.Now())
}

func (u *sessionUsecase) Expire(ctx context.Context, userID, sessionID, reason string) error {
	session, err := u.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return apperror.Forbidden("Session belongs to another user")
	}
	if reason == "" {
		reason = "user_requested"
	}
	return u.sessionRepo.Expire(ctx, sessionID, reason, time.Now())
}

// CleanupOld sweeps active sessions idle beyond maxAge. Already-expired
// sessions are never touched, so repeated sweeps are idempotent.
func (u *sessionUsecase) CleanupOld(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	deleted, err := u.sessionRepo.DeleteStaleActive(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		logger.Log.Info("Cleaned up stale assessment sessions", "deleted", deleted, "max_age", maxAge.String())
		audit.Default().Log(ctx, audit.Event{
			Event:   audit.EventSessionCleanup,
			Details: map[string]interface{}{"deleted": deleted},
		})
	}
	return deleted, nil
}
