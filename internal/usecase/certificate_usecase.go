package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
)

type certificateUsecase struct {
	certRepo domain.CertificateRepository
	userRepo domain.UserRepository
}

func NewCertificateUsecase(certRepo domain.CertificateRepository, userRepo domain.UserRepository) domain.CertificateUsecase {
	return &certificateUsecase{
		certRepo: certRepo,
		userRepo: userRepo,
	}
}

// Issue creates an immutable certificate. One certificate per user and
// product; a second issue attempt returns the existing one.
func (u *certificateUsecase) Issue(ctx context.Context, userID, productID string, skills []string) (*domain.Certificate, error) {
	existing, err := u.certRepo.GetByUserAndProduct(ctx, userID, productID)
	if err == nil {
		return existing, nil
	}
	if !apperror.IsNotFound(err) {
		return nil, err
	}

	now := time.Now()
	cert := &domain.Certificate{
		ID:                uuid.NewString(),
		UserID:            userID,
		ProductID:         productID,
		CertificateNumber: newCertificateNumber(now),
		IssueDate:         now,
		Status:            domain.CertStatusActive,
		Skills:            skills,
	}
	if err := u.certRepo.Create(ctx, cert); err != nil {
		return nil, err
	}

	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventCertificateIssued,
		UserID:  userID,
		Details: map[string]interface{}{"certificate_number": cert.CertificateNumber, "product_id": productID},
	})
	return cert, nil
}

func (u *certificateUsecase) ListMine(ctx context.Context, userID string) ([]domain.Certificate, error) {
	return u.certRepo.ListByUserID(ctx, userID)
}

// PublicLookup never errors for a miss: unknown numbers and revoked
// certificates both come back as Valid=false.
func (u *certificateUsecase) PublicLookup(ctx context.Context, number string) (*domain.PublicCertificate, error) {
	result := &domain.PublicCertificate{CertificateNumber: number}

	cert, err := u.certRepo.GetByNumber(ctx, number)
	if err != nil {
		if apperror.IsNotFound(err) {
			return result, nil
		}
		return nil, err
	}
	if cert.Status != domain.CertStatusActive {
		return result, nil
	}

	holder, err := u.userRepo.GetByID(ctx, cert.UserID)
	if err != nil && !apperror.IsNotFound(err) {
		return nil, err
	}

	result.Valid = true
	result.ProductID = cert.ProductID
	result.IssueDate = &cert.IssueDate
	result.Skills = cert.Skills
	if holder != nil {
		result.HolderName = holder.Name
	}
	return result, nil
}

// newCertificateNumber builds the public lookup key, e.g. SH-2026-4F7A9C2D.
// The uuid segment keeps numbers unguessable without a second counter table.
func newCertificateNumber(now time.Time) string {
	segment := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("SH-%d-%s", now.Year(), segment)
}
