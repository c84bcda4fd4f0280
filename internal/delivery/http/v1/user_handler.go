package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type UserHandler struct {
	userUC domain.UserUsecase
}

func NewUserHandler(protected *gin.RouterGroup, userUC domain.UserUsecase) {
	handler := &UserHandler{userUC: userUC}

	users := protected.Group("/users")
	{
		users.GET("/me", handler.GetProfile)
		users.PATCH("/me", handler.UpdateProfile)
		users.DELETE("/me", handler.DeleteAccount)
		users.GET("/me/progress", handler.GetProgress)
	}
}

type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required,valid_name"`
}

// GetProfile godoc
// @Summary      Get Profile
// @Description  Return the current user's profile with verification progress
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	user, err := h.userUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}
	progress, err := h.userUC.GetProgress(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", gin.H{
		"user":     user,
		"progress": progress,
	})
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Description  Update the current user's display name
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateProfileRequest  true  "Profile fields"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [patch]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	user, err := h.userUC.UpdateName(c.Request.Context(), userID, req.Name)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", user)
}

// DeleteAccount godoc
// @Summary      Delete Account
// @Description  Permanently delete the current user's account and data
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	if err := h.userUC.DeleteAccount(c.Request.Context(), userID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Account deleted", nil)
}

// GetProgress godoc
// @Summary      Verification Progress
// @Description  Per-track milestone progress and overall completion percent
// @Tags         users
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/me/progress [get]
func (h *UserHandler) GetProgress(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	progress, err := h.userUC.GetProgress(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification progress", progress)
}
