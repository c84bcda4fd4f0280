package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/config"
	"simplehire-backend/internal/delivery/http/middleware"
	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type AuthHandler struct {
	authUC domain.AuthUsecase
	config *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{
		authUC: authUC,
		config: cfg,
	}

	loginLimit := middleware.RateLimitMiddleware(middleware.LoginRateLimitConfig())

	publicAuth := public.Group("/auth")
	{
		publicAuth.POST("/signup", loginLimit, handler.Signup)
		publicAuth.POST("/login", loginLimit, handler.Login)
		publicAuth.POST("/google", loginLimit, handler.Google)
		publicAuth.POST("/refresh", handler.Refresh)
	}

	protectedAuth := protected.Group("/auth")
	{
		protectedAuth.POST("/logout", handler.Logout)
		protectedAuth.POST("/logout-all", handler.LogoutAll)
		protectedAuth.GET("/me", handler.Me)
	}
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,valid_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Signup godoc
// @Summary      User Registration
// @Description  Register a new candidate account with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        signup  body      SignupRequest  true  "Registration Details"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokens, err := h.authUC.Signup(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, tokens.AccessToken)
	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Login with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokens, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, tokens.AccessToken)
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Google godoc
// @Summary      Google Login
// @Description  Login or register with a Google ID token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      GoogleLoginRequest  true  "Google ID token"
// @Success      200    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Router       /auth/google [post]
func (h *AuthHandler) Google(c *gin.Context) {
	var req GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, tokens, err := h.authUC.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, tokens.AccessToken)
	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"user":   user,
		"tokens": tokens,
	})
}

// Refresh godoc
// @Summary      Refresh Tokens
// @Description  Exchange a refresh token for a new token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh  body      RefreshRequest  true  "Refresh token"
// @Success      200      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	tokens, err := h.authUC.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookie(c, tokens.AccessToken)
	response.Success(c, http.StatusOK, "Tokens refreshed", gin.H{"tokens": tokens})
}

// Logout godoc
// @Summary      Logout
// @Description  Revoke the presented refresh token and clear the auth cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	// body is optional; a missing refresh token still clears the cookie
	_ = c.ShouldBindJSON(&req)

	if req.RefreshToken != "" {
		if err := h.authUC.Logout(c.Request.Context(), req.RefreshToken); err != nil {
			c.Error(err)
			return
		}
	}

	h.clearAuthCookie(c)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// LogoutAll godoc
// @Summary      Logout Everywhere
// @Description  Revoke all refresh tokens for the current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/logout-all [post]
func (h *AuthHandler) LogoutAll(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	if err := h.authUC.LogoutAll(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	h.clearAuthCookie(c)
	response.Success(c, http.StatusOK, "Logged out everywhere", nil)
}

// Me godoc
// @Summary      Current User
// @Description  Return the authenticated user's profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	user, err := h.authUC.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "User details", user)
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, accessToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("auth_token", accessToken, int(h.config.AccessTokenTTL.Seconds()), "/", h.config.CookieDomain, h.config.CookieSecure, true)
}

func (h *AuthHandler) clearAuthCookie(c *gin.Context) {
	c.SetCookie("auth_token", "", -1, "/", h.config.CookieDomain, h.config.CookieSecure, true)
}
