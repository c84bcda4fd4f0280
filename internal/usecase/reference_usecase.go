package usecase

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
	"simplehire-backend/pkg/email"
)

const maxReferences = 5

type referenceUsecase struct {
	refRepo     domain.ReferenceRepository
	userRepo    domain.UserRepository
	email       *email.EmailService
	frontendURL string
}

func NewReferenceUsecase(refRepo domain.ReferenceRepository, userRepo domain.UserRepository, emailService *email.EmailService, frontendURL string) domain.ReferenceUsecase {
	return &referenceUsecase{
		refRepo:     refRepo,
		userRepo:    userRepo,
		email:       emailService,
		frontendURL: frontendURL,
	}
}

func (u *referenceUsecase) Add(ctx context.Context, userID string, req domain.AddReferenceRequest) (*domain.Reference, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.HasProduct(domain.ProductReference) {
		return nil, apperror.Forbidden("Reference checks require the reference product")
	}

	existing, err := u.refRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= maxReferences {
		return nil, apperror.BadRequest(fmt.Sprintf("At most %d references are allowed", maxReferences))
	}
	for _, ref := range existing {
		if ref.Email == req.Email {
			return nil, apperror.Conflict("This referee is already listed")
		}
	}

	ref := &domain.Reference{
		ID:            uuid.NewString(),
		UserID:        userID,
		Name:          req.Name,
		Email:         req.Email,
		Company:       req.Company,
		Relation:      req.Relation,
		Status:        domain.RefStatusPending,
		ResponseToken: uuid.NewString(),
		CreatedAt:     time.Now(),
	}
	if err := u.refRepo.Create(ctx, ref); err != nil {
		return nil, err
	}
	return ref, nil
}

func (u *referenceUsecase) List(ctx context.Context, userID string) ([]domain.Reference, error) {
	return u.refRepo.ListByUserID(ctx, userID)
}

// Remove deletes a referee; only pending entries may be removed because
// outreach has already happened for everything else.
func (u *referenceUsecase) Remove(ctx context.Context, userID, refID string) error {
	ref, err := u.refRepo.GetByID(ctx, refID)
	if err != nil {
		return err
	}
	if ref.UserID != userID {
		return apperror.Forbidden("Reference belongs to another user")
	}
	if ref.Status != domain.RefStatusPending {
		return apperror.Conflict("Reference outreach has already started")
	}
	return u.refRepo.Delete(ctx, refID)
}

// SendRequest emails the referee a response link and advances the status
func (u *referenceUsecase) SendRequest(ctx context.Context, userID, refID string) error {
	ref, err := u.refRepo.GetByID(ctx, refID)
	if err != nil {
		return err
	}
	if ref.UserID != userID {
		return apperror.Forbidden("Reference belongs to another user")
	}
	if ref.Status != domain.RefStatusPending {
		return apperror.Conflict("Outreach email was already sent")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	responseURL := fmt.Sprintf("%s/references/respond/%s", u.frontendURL, ref.ResponseToken)
	if err := u.email.SendReferenceRequest(ref.Email, email.ReferenceRequestData{
		RefereeName:   ref.Name,
		CandidateName: user.Name,
		Company:       ref.Company,
		Relation:      ref.Relation,
		ResponseURL:   responseURL,
	}); err != nil {
		return apperror.Internal(err)
	}

	now := time.Now()
	if err := u.refRepo.UpdateStatus(ctx, refID, domain.RefStatusEmailSent, &now, nil, nil); err != nil {
		return err
	}
	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventReferenceOutreach,
		UserID:  userID,
		Details: map[string]interface{}{"reference_id": refID},
	})
	return nil
}

// RecordResponse is reached from the public token link in the outreach
// email; no authentication beyond the token itself.
func (u *referenceUsecase) RecordResponse(ctx context.Context, token string, notes string) error {
	ref, err := u.refRepo.GetByToken(ctx, token)
	if err != nil {
		return err
	}
	if ref.Status != domain.RefStatusEmailSent {
		return apperror.Conflict("Response was already recorded")
	}

	now := time.Now()
	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}
	return u.refRepo.UpdateStatus(ctx, ref.ID, domain.RefStatusResponseReceived, nil, &now, notesPtr)
}

// Verify is the admin review action confirming a received response
func (u *referenceUsecase) Verify(ctx context.Context, refID string) error {
	ref, err := u.refRepo.GetByID(ctx, refID)
	if err != nil {
		return err
	}
	allowed := []string{domain.RefStatusResponseReceived}
	if !slices.Contains(allowed, ref.Status) {
		return apperror.Conflict("Reference has no response to verify")
	}
	if err := u.refRepo.UpdateStatus(ctx, refID, domain.RefStatusVerified, nil, nil, nil); err != nil {
		return err
	}
	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventVerificationStatus,
		UserID:  ref.UserID,
		Details: map[string]interface{}{"track": domain.ProductReference, "reference_id": refID, "status": domain.RefStatusVerified},
	})
	return nil
}

// AdminSetStatus overrides the status outside the normal transitions,
// for correcting stuck or mis-recorded references.
func (u *referenceUsecase) AdminSetStatus(ctx context.Context, refID, status string) error {
	if !slices.Contains(domain.ValidReferenceStatuses, status) {
		return apperror.BadRequest(fmt.Sprintf("Unknown reference status %q", status))
	}
	ref, err := u.refRepo.GetByID(ctx, refID)
	if err != nil {
		return err
	}
	if err := u.refRepo.UpdateStatus(ctx, refID, status, nil, nil, nil); err != nil {
		return err
	}
	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventVerificationStatus,
		UserID:  ref.UserID,
		Details: map[string]interface{}{"track": domain.ProductReference, "reference_id": refID, "status": status, "admin_override": true},
	})
	return nil
}
