package domain

import (
	"context"
	"time"
)

type User struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	Name              string    `json:"name"`
	PasswordHash      string    `json:"-"`
	PurchasedProducts []string  `json:"purchased_products"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// HasProduct reports whether the user is entitled to the given track,
// either directly or through the combo bundle.
func (u *User) HasProduct(productID string) bool {
	for _, p := range ExpandProducts(u.PurchasedProducts) {
		if p == productID {
			return true
		}
	}
	return false
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// TokenPair is the issued credential set returned on login/refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthUsecase interface {
	Signup(ctx context.Context, email, password, name string) (*User, *TokenPair, error)
	Login(ctx context.Context, email, password string) (*User, *TokenPair, error)
	LoginWithGoogle(ctx context.Context, idToken string) (*User, *TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
	LogoutAll(ctx context.Context, userID string) error
	GetCurrentUser(ctx context.Context, id string) (*User, error)
}

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*User, error)
	UpdateName(ctx context.Context, userID, name string) (*User, error)
	DeleteAccount(ctx context.Context, userID string) error
	// GetProgress assembles raw track state and derives completion
	// percentages for the user's purchased products.
	GetProgress(ctx context.Context, userID string) (*VerificationProgress, error)
}
