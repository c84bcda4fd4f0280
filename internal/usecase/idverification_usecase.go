package usecase

import (
	"context"
	"slices"
	"time"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
	"simplehire-backend/pkg/docverify"
	"simplehire-backend/pkg/logger"
)

type idVerificationUsecase struct {
	idRepo    domain.IDVerificationRepository
	userRepo  domain.UserRepository
	docVerify *docverify.Client
}

func NewIDVerificationUsecase(idRepo domain.IDVerificationRepository, userRepo domain.UserRepository, dv *docverify.Client) domain.IDVerificationUsecase {
	return &idVerificationUsecase{
		idRepo:    idRepo,
		userRepo:  userRepo,
		docVerify: dv,
	}
}

// AttachDocument stores an uploaded document URL and moves the record to
// in-progress. The first upload creates the row via upsert.
func (u *idVerificationUsecase) AttachDocument(ctx context.Context, userID, kind, url string) (*domain.IDVerification, error) {
	if err := u.requireEntitlement(ctx, userID); err != nil {
		return nil, err
	}

	v := &domain.IDVerification{
		UserID: userID,
		Status: domain.IDStatusInProgress,
	}
	switch kind {
	case domain.DocKindID:
		v.IDDocumentURL = &url
	case domain.DocKindVisa:
		v.VisaURL = &url
	case domain.DocKindSelfie:
		v.SelfieURL = &url
	default:
		return nil, apperror.BadRequest("Unknown document kind")
	}

	existing, err := u.idRepo.GetByUserID(ctx, userID)
	if err == nil {
		switch existing.Status {
		case domain.IDStatusVerified:
			return nil, apperror.Conflict("Identity is already verified")
		case domain.IDStatusPending:
			// re-upload during review restarts the flow
			v.Status = domain.IDStatusPending
		}
	} else if !apperror.IsNotFound(err) {
		return nil, err
	}

	if err := u.idRepo.Upsert(ctx, v); err != nil {
		return nil, err
	}
	return u.idRepo.GetByUserID(ctx, userID)
}

// Submit finalizes the uploads and calls the face-match service. A
// docverify failure is non-fatal: the record still lands in pending for
// manual review.
func (u *idVerificationUsecase) Submit(ctx context.Context, userID string) (*domain.IDVerification, error) {
	v, err := u.idRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.BadRequest("Upload your documents before submitting")
		}
		return nil, err
	}
	if v.Status == domain.IDStatusVerified {
		return nil, apperror.Conflict("Identity is already verified")
	}
	if v.IDDocumentURL == nil || v.SelfieURL == nil {
		return nil, apperror.BadRequest("ID document and selfie are both required")
	}

	now := time.Now()
	v.Status = domain.IDStatusPending
	v.SubmittedAt = &now

	if u.docVerify.IsConfigured() {
		result, err := u.docVerify.FaceMatch(ctx, docverify.FaceMatchRequest{
			IDDocumentURL: *v.IDDocumentURL,
			SelfieURL:     *v.SelfieURL,
		})
		if err != nil {
			logger.Log.Warn("Document verification call failed, falling back to manual review",
				"user_id", userID, "error", err)
		} else {
			v.FaceMatchScore = &result.Score
		}
	}

	if err := u.idRepo.Upsert(ctx, v); err != nil {
		return nil, err
	}

	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventVerificationStatus,
		UserID:  userID,
		Details: map[string]interface{}{"track": domain.ProductIDVisa, "status": v.Status},
	})
	return u.idRepo.GetByUserID(ctx, userID)
}

func (u *idVerificationUsecase) GetStatus(ctx context.Context, userID string) (*domain.IDVerification, error) {
	v, err := u.idRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			// a user who never uploaded anything is simply not started
			return &domain.IDVerification{UserID: userID, Status: domain.IDStatusNotStarted}, nil
		}
		return nil, err
	}
	return v, nil
}

// ReviewStatus applies an admin review decision
func (u *idVerificationUsecase) ReviewStatus(ctx context.Context, userID, status string, notes *string) error {
	if !slices.Contains(domain.ValidIDStatuses, status) {
		return apperror.BadRequest("Invalid verification status")
	}

	if err := u.idRepo.UpdateStatus(ctx, userID, status, notes); err != nil {
		return err
	}
	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventVerificationStatus,
		UserID:  userID,
		Details: map[string]interface{}{"track": domain.ProductIDVisa, "status": status, "reviewed": true},
	})
	return nil
}

func (u *idVerificationUsecase) requireEntitlement(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasProduct(domain.ProductIDVisa) {
		return apperror.Forbidden("ID verification requires the id-visa product")
	}
	return nil
}
