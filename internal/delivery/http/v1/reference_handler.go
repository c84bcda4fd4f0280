package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type ReferenceHandler struct {
	referenceUC domain.ReferenceUsecase
}

func NewReferenceHandler(public *gin.RouterGroup, protected *gin.RouterGroup, admin *gin.RouterGroup, referenceUC domain.ReferenceUsecase) {
	handler := &ReferenceHandler{referenceUC: referenceUC}

	references := protected.Group("/references")
	{
		references.POST("", handler.Add)
		references.GET("", handler.List)
		references.DELETE("/:id", handler.Remove)
		references.POST("/:id/send-email", handler.SendEmail)
	}

	// referees respond through a tokenized link, no account needed
	public.POST("/references/respond/:token", handler.Respond)

	admin.POST("/references/:id/verify", handler.Verify)
	admin.PATCH("/references/status", handler.SetStatus)
}

type ReferenceStatusRequest struct {
	ReferenceID string `json:"reference_id" binding:"required,uuid"`
	Status      string `json:"status" binding:"required"`
}

type ReferenceResponseRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// Add godoc
// @Summary      Add Referee
// @Description  Register a referee for the reference check track (max 5)
// @Tags         references
// @Accept       json
// @Produce      json
// @Param        referee  body      domain.AddReferenceRequest  true  "Referee details"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Security     BearerAuth
// @Router       /references [post]
func (h *ReferenceHandler) Add(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req domain.AddReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	ref, err := h.referenceUC.Add(c.Request.Context(), userID, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Referee added", ref)
}

// List godoc
// @Summary      List Referees
// @Description  List the current user's referees with their statuses
// @Tags         references
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /references [get]
func (h *ReferenceHandler) List(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	refs, err := h.referenceUC.List(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "References", refs)
}

// Remove godoc
// @Summary      Remove Referee
// @Description  Remove a referee that has not been contacted yet
// @Tags         references
// @Produce      json
// @Param        id   path      string  true  "Reference ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Security     BearerAuth
// @Router       /references/{id} [delete]
func (h *ReferenceHandler) Remove(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	refID := c.Param("id")

	if err := h.referenceUC.Remove(c.Request.Context(), userID, refID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Referee removed", nil)
}

// SendEmail godoc
// @Summary      Send Reference Request
// @Description  Email the referee a tokenized response link
// @Tags         references
// @Produce      json
// @Param        id   path      string  true  "Reference ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /references/{id}/send-email [post]
func (h *ReferenceHandler) SendEmail(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	refID := c.Param("id")

	if err := h.referenceUC.SendRequest(c.Request.Context(), userID, refID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference request sent", nil)
}

// Respond godoc
// @Summary      Record Referee Response
// @Description  Record a referee's response via their emailed token
// @Tags         references
// @Accept       json
// @Produce      json
// @Param        token     path      string                    true  "Response token"
// @Param        response  body      ReferenceResponseRequest  true  "Referee's notes"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /references/respond/{token} [post]
func (h *ReferenceHandler) Respond(c *gin.Context) {
	token := c.Param("token")

	var req ReferenceResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.referenceUC.RecordResponse(c.Request.Context(), token, req.Notes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Response recorded", nil)
}

// Verify godoc
// @Summary      Verify Reference (admin)
// @Description  Mark a referee response as verified after review
// @Tags         admin
// @Produce      json
// @Param        id   path      string  true  "Reference ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /admin/references/{id}/verify [post]
func (h *ReferenceHandler) Verify(c *gin.Context) {
	refID := c.Param("id")

	if err := h.referenceUC.Verify(c.Request.Context(), refID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference verified", nil)
}

// SetStatus godoc
// @Summary      Set Reference Status (admin)
// @Description  Force a reference into a specific status outside the normal flow
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        status  body      ReferenceStatusRequest  true  "Target status"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /admin/references/status [patch]
func (h *ReferenceHandler) SetStatus(c *gin.Context) {
	var req ReferenceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.referenceUC.AdminSetStatus(c.Request.Context(), req.ReferenceID, req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Reference status updated", nil)
}
