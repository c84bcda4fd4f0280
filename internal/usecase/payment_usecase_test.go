package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/usecase"
)

func TestCreateIntent(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown product is rejected", func(t *testing.T) {
		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), new(MockUserRepo), new(MockPaymentProvider))

		intent, err := uc.CreateIntent(ctx, "user-1", "nonsense")

		assert.Nil(t, intent)
		assert.ErrorContains(t, err, "Unknown product")
	})

	t.Run("already purchased product conflicts", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{
			ID:                "user-1",
			PurchasedProducts: []string{domain.ProductSkill},
		}, nil)

		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), userRepo, new(MockPaymentProvider))

		intent, err := uc.CreateIntent(ctx, "user-1", domain.ProductSkill)

		assert.Nil(t, intent)
		assert.ErrorContains(t, err, "already purchased")
	})

	t.Run("combo bundle blocks buying a covered track", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{
			ID:                "user-1",
			PurchasedProducts: []string{domain.ProductCombo},
		}, nil)

		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), userRepo, new(MockPaymentProvider))

		intent, err := uc.CreateIntent(ctx, "user-1", domain.ProductIDVisa)

		assert.Nil(t, intent)
		assert.ErrorContains(t, err, "already purchased")
	})

	t.Run("creates intent with catalog price", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1"}, nil)

		provider := new(MockPaymentProvider)
		provider.On("CreateIntent", int64(4900), "usd", "user-1", domain.ProductSkill).Return(&domain.PaymentIntent{
			ID:           "pi_123",
			ClientSecret: "pi_123_secret",
			Amount:       4900,
			Currency:     "usd",
			Status:       "requires_payment_method",
			ProductID:    domain.ProductSkill,
			UserID:       "user-1",
		}, nil)

		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), userRepo, provider)

		intent, err := uc.CreateIntent(ctx, "user-1", domain.ProductSkill)

		assert.NoError(t, err)
		assert.Equal(t, "pi_123", intent.ID)
		provider.AssertExpectations(t)
	})
}

func TestConfirm(t *testing.T) {
	ctx := context.Background()

	succeededIntent := &domain.PaymentIntent{
		ID:        "pi_123",
		Amount:    4900,
		Currency:  "usd",
		Status:    "succeeded",
		ProductID: domain.ProductSkill,
		UserID:    "user-1",
	}

	t.Run("unknown intent", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("GetIntent", "pi_missing").Return(nil, assert.AnError)

		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), new(MockUserRepo), provider)

		payment, err := uc.Confirm(ctx, "user-1", "pi_missing")

		assert.Nil(t, payment)
		assert.ErrorContains(t, err, "Payment intent not found")
	})

	t.Run("intent owned by another user", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("GetIntent", "pi_123").Return(succeededIntent, nil)

		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), new(MockUserRepo), provider)

		payment, err := uc.Confirm(ctx, "user-2", "pi_123")

		assert.Nil(t, payment)
		assert.ErrorContains(t, err, "belongs to another user")
	})

	t.Run("charge not succeeded", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("GetIntent", "pi_123").Return(&domain.PaymentIntent{
			ID:        "pi_123",
			Status:    "requires_payment_method",
			ProductID: domain.ProductSkill,
			UserID:    "user-1",
		}, nil)

		uc := usecase.NewPaymentUsecase(new(MockPaymentRepo), new(MockUserRepo), provider)

		payment, err := uc.Confirm(ctx, "user-1", "pi_123")

		assert.Nil(t, payment)
		assert.ErrorContains(t, err, "has not succeeded")
	})

	t.Run("success records payment with intent id", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("GetIntent", "pi_123").Return(succeededIntent, nil)

		paymentRepo := new(MockPaymentRepo)
		paymentRepo.On("ConfirmPurchase", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.PaymentIntentID == "pi_123" && p.ProductID == domain.ProductSkill && p.Status == domain.PaymentStatusSucceeded
		})).Return(nil)

		uc := usecase.NewPaymentUsecase(paymentRepo, new(MockUserRepo), provider)

		payment, err := uc.Confirm(ctx, "user-1", "pi_123")

		assert.NoError(t, err)
		assert.Equal(t, "pi_123", payment.PaymentIntentID)
		assert.Equal(t, int64(4900), payment.Amount)
		paymentRepo.AssertExpectations(t)
	})

	t.Run("duplicate intent is an idempotent success", func(t *testing.T) {
		provider := new(MockPaymentProvider)
		provider.On("GetIntent", "pi_123").Return(succeededIntent, nil)

		paymentRepo := new(MockPaymentRepo)
		paymentRepo.On("ConfirmPurchase", ctx, mock.Anything).Return(domain.ErrDuplicateIntent)

		uc := usecase.NewPaymentUsecase(paymentRepo, new(MockUserRepo), provider)

		payment, err := uc.Confirm(ctx, "user-1", "pi_123")

		assert.NoError(t, err)
		assert.NotNil(t, payment)
		assert.Equal(t, "pi_123", payment.PaymentIntentID)
	})
}
