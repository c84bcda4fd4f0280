package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/auth"
)

func newAuthUsecase(userRepo *MockUserRepo) domain.AuthUsecase {
	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 7*24*time.Hour)
	store := auth.NewRefreshStore(nil, 7*24*time.Hour)
	return usecase.NewAuthUsecase(userRepo, tokens, store, "https://oauth2.googleapis.com/tokeninfo")
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("short password is rejected before any write", func(t *testing.T) {
		userRepo := new(MockUserRepo)

		uc := newAuthUsecase(userRepo)

		user, pair, err := uc.Signup(ctx, "ada@example.com", "short", "Ada Lovelace")

		assert.Nil(t, user)
		assert.Nil(t, pair)
		assert.ErrorContains(t, err, "at least 8 characters")
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("succeeds without a redis-backed refresh store", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		uc := newAuthUsecase(userRepo)

		user, pair, err := uc.Signup(ctx, "ada@example.com", "long-enough-password", "Ada Lovelace")

		assert.NoError(t, err)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("duplicate email surfaces the repository conflict", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).
			Return(apperror.Conflict("Email is already registered"))

		uc := newAuthUsecase(userRepo)

		user, pair, err := uc.Signup(ctx, "ada@example.com", "long-enough-password", "Ada Lovelace")

		assert.Nil(t, user)
		assert.Nil(t, pair)
		assert.ErrorContains(t, err, "already registered")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, apperror.NotFound("User not found"))

		uc := newAuthUsecase(userRepo)

		user, pair, err := uc.Login(ctx, "nobody@example.com", "whatever-password")

		assert.Nil(t, user)
		assert.Nil(t, pair)
		assert.ErrorContains(t, err, "Invalid email or password")
	})

	t.Run("wrong password", func(t *testing.T) {
		hash, err := auth.HashPassword("the-real-password")
		assert.NoError(t, err)

		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{
			ID:           "user-1",
			Email:        "ada@example.com",
			PasswordHash: hash,
		}, nil)

		uc := newAuthUsecase(userRepo)

		user, pair, err := uc.Login(ctx, "ada@example.com", "a-wrong-password")

		assert.Nil(t, user)
		assert.Nil(t, pair)
		assert.ErrorContains(t, err, "Invalid email or password")
	})

	t.Run("correct password issues a token pair", func(t *testing.T) {
		hash, err := auth.HashPassword("the-real-password")
		assert.NoError(t, err)

		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{
			ID:           "user-1",
			Email:        "ada@example.com",
			PasswordHash: hash,
		}, nil)

		uc := newAuthUsecase(userRepo)

		user, pair, err := uc.Login(ctx, "ada@example.com", "the-real-password")

		assert.NoError(t, err)
		assert.Equal(t, "user-1", user.ID)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		hash, err := auth.HashPassword("the-real-password")
		assert.NoError(t, err)

		userRepo := new(MockUserRepo)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").
			Return(nil, apperror.NotFound("User not found"))
		userRepo.On("GetByEmail", ctx, "ada@example.com").Return(&domain.User{
			ID:           "user-1",
			Email:        "ada@example.com",
			PasswordHash: hash,
		}, nil)

		uc := newAuthUsecase(userRepo)

		_, _, errUnknown := uc.Login(ctx, "nobody@example.com", "a-wrong-password")
		_, _, errWrongPass := uc.Login(ctx, "ada@example.com", "a-wrong-password")

		assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
	})
}
