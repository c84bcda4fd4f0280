package usecase_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/apperror"
)

func TestCertificateIssue(t *testing.T) {
	ctx := context.Background()

	t.Run("generates a lookup number", func(t *testing.T) {
		certRepo := new(MockCertificateRepo)
		certRepo.On("GetByUserAndProduct", ctx, "user-1", domain.ProductSkill).
			Return(nil, apperror.NotFound("Certificate not found"))

		var created *domain.Certificate
		certRepo.On("Create", ctx, mock.AnythingOfType("*domain.Certificate")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Certificate) }).
			Return(nil)

		uc := usecase.NewCertificateUsecase(certRepo, new(MockUserRepo))

		cert, err := uc.Issue(ctx, "user-1", domain.ProductSkill, []string{"Go", "SQL"})

		assert.NoError(t, err)
		assert.Same(t, created, cert)
		assert.Regexp(t, regexp.MustCompile(`^SH-\d{4}-[0-9A-F]{8}$`), cert.CertificateNumber)
		assert.Equal(t, domain.CertStatusActive, cert.Status)
		assert.Equal(t, []string{"Go", "SQL"}, cert.Skills)
	})

	t.Run("re-issue returns the existing certificate", func(t *testing.T) {
		existing := &domain.Certificate{
			ID:                "cert-1",
			UserID:            "user-1",
			ProductID:         domain.ProductSkill,
			CertificateNumber: "SH-2026-4F7A9C2D",
			Status:            domain.CertStatusActive,
		}
		certRepo := new(MockCertificateRepo)
		certRepo.On("GetByUserAndProduct", ctx, "user-1", domain.ProductSkill).Return(existing, nil)

		uc := usecase.NewCertificateUsecase(certRepo, new(MockUserRepo))

		cert, err := uc.Issue(ctx, "user-1", domain.ProductSkill, []string{"Go"})

		assert.NoError(t, err)
		assert.Equal(t, "SH-2026-4F7A9C2D", cert.CertificateNumber)
		certRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestCertificatePublicLookup(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown number is invalid, not an error", func(t *testing.T) {
		certRepo := new(MockCertificateRepo)
		certRepo.On("GetByNumber", ctx, "SH-2026-DEADBEEF").
			Return(nil, apperror.NotFound("Certificate not found"))

		uc := usecase.NewCertificateUsecase(certRepo, new(MockUserRepo))

		result, err := uc.PublicLookup(ctx, "SH-2026-DEADBEEF")

		assert.NoError(t, err)
		assert.False(t, result.Valid)
		assert.Equal(t, "SH-2026-DEADBEEF", result.CertificateNumber)
		assert.Empty(t, result.HolderName)
	})

	t.Run("revoked certificate is invalid", func(t *testing.T) {
		certRepo := new(MockCertificateRepo)
		certRepo.On("GetByNumber", ctx, "SH-2026-4F7A9C2D").Return(&domain.Certificate{
			UserID:            "user-1",
			CertificateNumber: "SH-2026-4F7A9C2D",
			Status:            domain.CertStatusRevoked,
		}, nil)

		uc := usecase.NewCertificateUsecase(certRepo, new(MockUserRepo))

		result, err := uc.PublicLookup(ctx, "SH-2026-4F7A9C2D")

		assert.NoError(t, err)
		assert.False(t, result.Valid)
	})

	t.Run("active certificate carries holder details", func(t *testing.T) {
		issued := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
		certRepo := new(MockCertificateRepo)
		certRepo.On("GetByNumber", ctx, "SH-2026-4F7A9C2D").Return(&domain.Certificate{
			UserID:            "user-1",
			ProductID:         domain.ProductSkill,
			CertificateNumber: "SH-2026-4F7A9C2D",
			IssueDate:         issued,
			Status:            domain.CertStatusActive,
			Skills:            []string{"Go"},
		}, nil)

		userRepo := new(MockUserRepo)
		userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1", Name: "Ada Lovelace"}, nil)

		uc := usecase.NewCertificateUsecase(certRepo, userRepo)

		result, err := uc.PublicLookup(ctx, "SH-2026-4F7A9C2D")

		assert.NoError(t, err)
		assert.True(t, result.Valid)
		assert.Equal(t, "Ada Lovelace", result.HolderName)
		assert.Equal(t, domain.ProductSkill, result.ProductID)
		assert.Equal(t, issued, *result.IssueDate)
		assert.Equal(t, []string{"Go"}, result.Skills)
	})
}
