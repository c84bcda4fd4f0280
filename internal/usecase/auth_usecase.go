package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
	"simplehire-backend/pkg/auth"
)

type authUsecase struct {
	userRepo     domain.UserRepository
	tokens       *auth.TokenManager
	refreshStore *auth.RefreshStore
	tokenInfoURL string
	httpClient   *http.Client
}

func NewAuthUsecase(userRepo domain.UserRepository, tokens *auth.TokenManager, refreshStore *auth.RefreshStore, tokenInfoURL string) domain.AuthUsecase {
	return &authUsecase{
		userRepo:     userRepo,
		tokens:       tokens,
		refreshStore: refreshStore,
		tokenInfoURL: tokenInfoURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (u *authUsecase) Signup(ctx context.Context, email, password, name string) (*domain.User, *domain.TokenPair, error) {
	if len(password) < 8 {
		return nil, nil, apperror.BadRequest("Password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, nil, apperror.Internal(err)
	}

	now := time.Now()
	user := &domain.User{
		ID:                uuid.NewString(),
		Email:             email,
		Name:              name,
		PasswordHash:      hash,
		PurchasedProducts: []string{},
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	pair, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, pair, nil
}

func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.User, *domain.TokenPair, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsNotFound(err) {
			// identical message for unknown email and bad password
			return nil, nil, apperror.Unauthorized("Invalid email or password")
		}
		return nil, nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		audit.Default().Log(ctx, audit.Event{Event: audit.EventLoginFailed, UserID: user.ID})
		return nil, nil, apperror.Unauthorized("Invalid email or password")
	}

	pair, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	audit.Default().Log(ctx, audit.Event{Event: audit.EventLoginSuccess, UserID: user.ID})
	return user, pair, nil
}

// googleTokenInfo is the subset of the tokeninfo response we read
type googleTokenInfo struct {
	Sub   string `json:"sub"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *authUsecase) LoginWithGoogle(ctx context.Context, idToken string) (*domain.User, *domain.TokenPair, error) {
	info, err := u.verifyGoogleToken(ctx, idToken)
	if err != nil {
		return nil, nil, apperror.Unauthorized("Invalid Google token")
	}

	user, err := u.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		if !apperror.IsNotFound(err) {
			return nil, nil, err
		}
		// first Google sign-in creates the account; no local password
		now := time.Now()
		user = &domain.User{
			ID:                uuid.NewString(),
			Email:             info.Email,
			Name:              info.Name,
			PurchasedProducts: []string{},
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	pair, err := u.issueTokens(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	audit.Default().Log(ctx, audit.Event{Event: audit.EventLoginSuccess, UserID: user.ID})
	return user, pair, nil
}

func (u *authUsecase) verifyGoogleToken(ctx context.Context, idToken string) (*googleTokenInfo, error) {
	endpoint := fmt.Sprintf("%s?id_token=%s", u.tokenInfoURL, url.QueryEscape(idToken))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := u.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tokeninfo returned status %d", resp.StatusCode)
	}

	var info googleTokenInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, fmt.Errorf("tokeninfo response missing email")
	}
	return &info, nil
}

func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	claims, err := u.tokens.Parse(refreshToken)
	if err != nil {
		return nil, tokenError(err)
	}
	if claims.TokenType != "refresh" {
		return nil, apperror.Unauthorized("Not a refresh token")
	}

	if err := u.refreshStore.Validate(ctx, claims.UserID, claims.ID); err != nil {
		return nil, apperror.Unauthorized("Refresh token revoked")
	}

	user, err := u.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	// rotate: revoke the presented token, issue a fresh pair
	if err := u.refreshStore.Revoke(ctx, claims.UserID, claims.ID); err != nil {
		return nil, apperror.Internal(err)
	}
	return u.issueTokens(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	claims, err := u.tokens.Parse(refreshToken)
	if err != nil {
		// logging out with a dead token is a no-op, not an error
		return nil
	}
	return u.refreshStore.Revoke(ctx, claims.UserID, claims.ID)
}

func (u *authUsecase) LogoutAll(ctx context.Context, userID string) error {
	return u.refreshStore.RevokeAll(ctx, userID)
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

func (u *authUsecase) issueTokens(ctx context.Context, user *domain.User) (*domain.TokenPair, error) {
	access, err := u.tokens.IssueAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	refresh, jti, err := u.tokens.IssueRefreshToken(user.ID, user.Email)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if err := u.refreshStore.Save(ctx, user.ID, jti); err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// tokenError maps token parse failures to precise 401 messages so
// clients can distinguish expiry from tampering.
func tokenError(err error) *apperror.AppError {
	if err == auth.ErrTokenExpired {
		return apperror.Unauthorized("Token has expired")
	}
	return apperror.Unauthorized("Token is malformed or invalid")
}
