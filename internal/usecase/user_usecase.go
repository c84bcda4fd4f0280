package usecase

import (
	"context"
	"strings"
	"time"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/progress"
	"simplehire-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo     domain.UserRepository
	progressRepo domain.ProgressRepository
	idRepo       domain.IDVerificationRepository
	refRepo      domain.ReferenceRepository
}

func NewUserUsecase(userRepo domain.UserRepository, progressRepo domain.ProgressRepository,
	idRepo domain.IDVerificationRepository, refRepo domain.ReferenceRepository) domain.UserUsecase {
	return &userUsecase{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		idRepo:       idRepo,
		refRepo:      refRepo,
	}
}

func (u *userUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

func (u *userUsecase) UpdateName(ctx context.Context, userID, name string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.BadRequest("Name must not be empty")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = name
	user.UpdatedAt = time.Now()
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) DeleteAccount(ctx context.Context, userID string) error {
	return u.userRepo.Delete(ctx, userID)
}

// GetProgress gathers the raw state of each purchased track and feeds the
// pure calculator. Tracks with no state yet simply contribute zero steps.
func (u *userUsecase) GetProgress(ctx context.Context, userID string) (*domain.VerificationProgress, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	in := progress.Input{PurchasedProducts: user.PurchasedProducts}

	if user.HasProduct(domain.ProductSkill) {
		ip, err := u.progressRepo.GetByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		in.Interview = ip
	}

	if user.HasProduct(domain.ProductIDVisa) {
		idv, err := u.idRepo.GetByUserID(ctx, userID)
		if err != nil {
			if !apperror.IsNotFound(err) {
				return nil, err
			}
			in.IDStatus = domain.IDStatusNotStarted
		} else {
			in.IDStatus = idv.Status
		}
	}

	if user.HasProduct(domain.ProductReference) {
		refs, err := u.refRepo.ListByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		in.References = refs
	}

	result := progress.Compute(in)
	return &result, nil
}
