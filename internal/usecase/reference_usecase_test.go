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

func newReferenceUsecase(refRepo *MockReferenceRepo, userRepo *MockUserRepo) domain.ReferenceUsecase {
	return usecase.NewReferenceUsecase(refRepo, userRepo, nil, "https://app.simplehire.test")
}

func addRequest() domain.AddReferenceRequest {
	return domain.AddReferenceRequest{
		Name:     "Grace Hopper",
		Email:    "grace@example.com",
		Company:  "Navy Research",
		Relation: "Manager",
	}
}

func TestReferenceAdd(t *testing.T) {
	ctx := context.Background()

	entitled := &domain.User{ID: "user-1", PurchasedProducts: []string{domain.ProductReference}}

	t.Run("requires the reference product", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1"}, nil)

		uc := newReferenceUsecase(new(MockReferenceRepo), userRepo)

		ref, err := uc.Add(ctx, "user-1", addRequest())

		assert.Nil(t, ref)
		assert.ErrorContains(t, err, "require the reference product")
	})

	t.Run("combo bundle grants access", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{
			ID:                "user-1",
			PurchasedProducts: []string{domain.ProductCombo},
		}, nil)

		refRepo := new(MockReferenceRepo)
		refRepo.On("ListByUserID", ctx, "user-1").Return([]domain.Reference{}, nil)
		refRepo.On("Create", ctx, mock.AnythingOfType("*domain.Reference")).Return(nil)

		uc := newReferenceUsecase(refRepo, userRepo)

		ref, err := uc.Add(ctx, "user-1", addRequest())

		assert.NoError(t, err)
		assert.Equal(t, domain.RefStatusPending, ref.Status)
		assert.NotEmpty(t, ref.ResponseToken)
	})

	t.Run("limit of five referees", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(entitled, nil)

		existing := make([]domain.Reference, 5)
		for i := range existing {
			existing[i] = domain.Reference{UserID: "user-1"}
		}
		refRepo := new(MockReferenceRepo)
		refRepo.On("ListByUserID", ctx, "user-1").Return(existing, nil)

		uc := newReferenceUsecase(refRepo, userRepo)

		ref, err := uc.Add(ctx, "user-1", addRequest())

		assert.Nil(t, ref)
		assert.ErrorContains(t, err, "At most 5 references")
	})

	t.Run("duplicate referee email conflicts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(entitled, nil)

		refRepo := new(MockReferenceRepo)
		refRepo.On("ListByUserID", ctx, "user-1").Return([]domain.Reference{
			{UserID: "user-1", Email: "grace@example.com"},
		}, nil)

		uc := newReferenceUsecase(refRepo, userRepo)

		ref, err := uc.Add(ctx, "user-1", addRequest())

		assert.Nil(t, ref)
		assert.ErrorContains(t, err, "already listed")
	})
}

func TestReferenceRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("pending referee can be removed", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByID", ctx, "ref-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusPending,
		}, nil)
		refRepo.On("Delete", ctx, "ref-1").Return(nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		assert.NoError(t, uc.Remove(ctx, "user-1", "ref-1"))
		refRepo.AssertExpectations(t)
	})

	t.Run("another user's referee is forbidden", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByID", ctx, "ref-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusPending,
		}, nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		err := uc.Remove(ctx, "user-2", "ref-1")

		assert.ErrorContains(t, err, "belongs to another user")
	})

	t.Run("contacted referee cannot be removed", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByID", ctx, "ref-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusEmailSent,
		}, nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		err := uc.Remove(ctx, "user-1", "ref-1")

		assert.ErrorContains(t, err, "already started")
		refRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestReferenceRecordResponse(t *testing.T) {
	ctx := context.Background()

	t.Run("records notes against the token", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByToken", ctx, "tok-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusEmailSent,
		}, nil)
		refRepo.On("UpdateStatus", ctx, "ref-1", domain.RefStatusResponseReceived,
			(*time.Time)(nil), mock.AnythingOfType("*time.Time"), mock.MatchedBy(func(notes *string) bool {
				return notes != nil && *notes == "Great colleague"
			})).Return(nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		assert.NoError(t, uc.RecordResponse(ctx, "tok-1", "Great colleague"))
		refRepo.AssertExpectations(t)
	})

	t.Run("second response on the same token conflicts", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByToken", ctx, "tok-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusResponseReceived,
		}, nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		err := uc.RecordResponse(ctx, "tok-1", "again")

		assert.ErrorContains(t, err, "already recorded")
	})

	t.Run("response before outreach conflicts", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByToken", ctx, "tok-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusPending,
		}, nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		err := uc.RecordResponse(ctx, "tok-1", "early")

		assert.ErrorContains(t, err, "already recorded")
	})
}

func TestReferenceVerify(t *testing.T) {
	ctx := context.Background()

	t.Run("received response can be verified", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByID", ctx, "ref-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusResponseReceived,
		}, nil)
		refRepo.On("UpdateStatus", ctx, "ref-1", domain.RefStatusVerified,
			(*time.Time)(nil), (*time.Time)(nil), (*string)(nil)).Return(nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		assert.NoError(t, uc.Verify(ctx, "ref-1"))
		refRepo.AssertExpectations(t)
	})

	t.Run("no response yet conflicts", func(t *testing.T) {
		refRepo := new(MockReferenceRepo)
		refRepo.On("GetByID", ctx, "ref-1").Return(&domain.Reference{
			ID:     "ref-1",
			UserID: "user-1",
			Status: domain.RefStatusEmailSent,
		}, nil)

		uc := newReferenceUsecase(refRepo, new(MockUserRepo))

		err := uc.Verify(ctx, "ref-1")

		assert.ErrorContains(t, err, "no response to verify")
	})
}
