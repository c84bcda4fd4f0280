package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/proctoring"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/apperror"
)

type ProctoringHandler struct {
	proctoringUC usecase.ProctoringUsecase
}

func NewProctoringHandler(protected *gin.RouterGroup, proctoringUC usecase.ProctoringUsecase) {
	handler := &ProctoringHandler{proctoringUC: proctoringUC}

	group := protected.Group("/proctoring")
	{
		group.POST("/verify-identity", handler.VerifyIdentity)
		group.POST("/monitor", handler.Monitor)
	}
}

type VerifyIdentityRequest struct {
	SelfieURL string `json:"selfie_url" binding:"required,url"`
}

type MonitorRequest struct {
	SessionID string             `json:"session_id" binding:"required,uuid"`
	Frames    []proctoring.Frame `json:"frames" binding:"required"`
}

// VerifyIdentity godoc
// @Summary      Verify Identity
// @Description  Match a live selfie against the candidate's ID document
// @Tags         proctoring
// @Accept       json
// @Produce      json
// @Param        check  body      VerifyIdentityRequest  true  "Live selfie"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Security     BearerAuth
// @Router       /proctoring/verify-identity [post]
func (h *ProctoringHandler) VerifyIdentity(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req VerifyIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	check, err := h.proctoringUC.VerifyIdentity(c.Request.Context(), userID, req.SelfieURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Identity check", check)
}

// Monitor godoc
// @Summary      Monitor Session
// @Description  Score a batch of proctoring frame observations for a session
// @Tags         proctoring
// @Accept       json
// @Produce      json
// @Param        frames  body      MonitorRequest  true  "Frame observations"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Security     BearerAuth
// @Router       /proctoring/monitor [post]
func (h *ProctoringHandler) Monitor(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req MonitorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	report, err := h.proctoringUC.Monitor(c.Request.Context(), userID, req.SessionID, req.Frames)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Monitoring report", report)
}
