package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/usecase"
)

func TestSessionGet(t *testing.T) {
	ctx := context.Background()

	t.Run("active session is returned", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		}, nil)

		uc := usecase.NewSessionUsecase(repo)

		session, err := uc.Get(ctx, "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, "sess-1", session.SessionID)
	})

	t.Run("expired session reads as not found", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusExpired,
		}, nil)

		uc := usecase.NewSessionUsecase(repo)

		session, err := uc.Get(ctx, "sess-1")

		assert.Nil(t, session)
		assert.ErrorContains(t, err, "Session not found")
	})
}

func TestSessionHeartbeat(t *testing.T) {
	ctx := context.Background()

	t.Run("owner touch succeeds", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		}, nil)
		repo.On("Touch", ctx, "sess-1", mock.AnythingOfType("time.Time")).Return(nil)

		uc := usecase.NewSessionUsecase(repo)

		assert.NoError(t, uc.Heartbeat(ctx, "user-1", "sess-1"))
		repo.AssertExpectations(t)
	})

	t.Run("another user's session is forbidden", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		}, nil)

		uc := usecase.NewSessionUsecase(repo)

		err := uc.Heartbeat(ctx, "user-2", "sess-1")

		assert.ErrorContains(t, err, "belongs to another user")
		repo.AssertNotCalled(t, "Touch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("expired session cannot be touched", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusExpired,
		}, nil)

		uc := usecase.NewSessionUsecase(repo)

		err := uc.Heartbeat(ctx, "user-1", "sess-1")

		assert.ErrorContains(t, err, "Session not found")
	})
}

func TestSessionExpire(t *testing.T) {
	ctx := context.Background()

	active := &domain.AssessmentSession{
		SessionID: "sess-1",
		UserID:    "user-1",
		Status:    domain.SessionStatusActive,
	}

	t.Run("records the given reason", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(active, nil)
		repo.On("Expire", ctx, "sess-1", "tab_closed", mock.AnythingOfType("time.Time")).Return(nil)

		uc := usecase.NewSessionUsecase(repo)

		assert.NoError(t, uc.Expire(ctx, "user-1", "sess-1", "tab_closed"))
		repo.AssertExpectations(t)
	})

	t.Run("empty reason defaults to user_requested", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(active, nil)
		repo.On("Expire", ctx, "sess-1", "user_requested", mock.AnythingOfType("time.Time")).Return(nil)

		uc := usecase.NewSessionUsecase(repo)

		assert.NoError(t, uc.Expire(ctx, "user-1", "sess-1", ""))
		repo.AssertExpectations(t)
	})

	t.Run("another user's session is forbidden", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("Get", ctx, "sess-1").Return(active, nil)

		uc := usecase.NewSessionUsecase(repo)

		err := uc.Expire(ctx, "user-2", "sess-1", "tab_closed")

		assert.ErrorContains(t, err, "belongs to another user")
	})
}

func TestSessionCleanupOld(t *testing.T) {
	ctx := context.Background()

	t.Run("passes cutoff derived from max age", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("DeleteStaleActive", ctx, mock.MatchedBy(func(cutoff time.Time) bool {
			expected := time.Now().Add(-time.Hour)
			return cutoff.Sub(expected).Abs() < time.Second
		})).Return(int64(3), nil)

		uc := usecase.NewSessionUsecase(repo)

		deleted, err := uc.CleanupOld(ctx, time.Hour)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), deleted)
		repo.AssertExpectations(t)
	})

	t.Run("nothing stale is quiet", func(t *testing.T) {
		repo := new(MockSessionRepo)
		repo.On("DeleteStaleActive", ctx, mock.AnythingOfType("time.Time")).Return(int64(0), nil)

		uc := usecase.NewSessionUsecase(repo)

		deleted, err := uc.CleanupOld(ctx, time.Hour)

		assert.NoError(t, err)
		assert.Zero(t, deleted)
	})
}
