package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/config"
	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type SessionHandler struct {
	sessionUC domain.SessionUsecase
	config    *config.Config
}

func NewSessionHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, sessionUC domain.SessionUsecase, cfg *config.Config) {
	handler := &SessionHandler{
		sessionUC: sessionUC,
		config:    cfg,
	}

	session := protected.Group("/session")
	{
		session.POST("/heartbeat", handler.Heartbeat)
		session.POST("/expire", handler.Expire)
		session.GET("/:sessionId/status", handler.Status)
		session.GET("/user-sessions", handler.UserSessions)
	}

	admin.POST("/session/cleanup", handler.Cleanup)
}

type HeartbeatRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
}

type ExpireSessionRequest struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Reason    string `json:"reason"`
}

// Heartbeat godoc
// @Summary      Session Heartbeat
// @Description  Refresh the activity timestamp of an active session
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        heartbeat  body      HeartbeatRequest  true  "Session to touch"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /session/heartbeat [post]
func (h *SessionHandler) Heartbeat(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.sessionUC.Heartbeat(c.Request.Context(), userID, req.SessionID); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session refreshed", nil)
}

// Expire godoc
// @Summary      Expire Session
// @Description  Explicitly end an active session
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        expire  body      ExpireSessionRequest  true  "Session to expire"
// @Success      200     {object}  response.Response
// @Failure      404     {object}  response.Response
// @Security     BearerAuth
// @Router       /session/expire [post]
func (h *SessionHandler) Expire(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req ExpireSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.sessionUC.Expire(c.Request.Context(), userID, req.SessionID, req.Reason); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Session expired", nil)
}

// Status godoc
// @Summary      Session Status
// @Description  Return one session. Expired sessions read as not found.
// @Tags         session
// @Produce      json
// @Param        sessionId  path      string  true  "Session ID"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /session/{sessionId}/status [get]
func (h *SessionHandler) Status(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sessionID := c.Param("sessionId")

	session, err := h.sessionUC.Get(c.Request.Context(), sessionID)
	if err != nil {
		c.Error(err)
		return
	}
	if session.UserID != userID {
		c.Error(apperror.NotFound("Session not found"))
		return
	}

	response.Success(c, http.StatusOK, "Session status", session)
}

// UserSessions godoc
// @Summary      List Sessions
// @Description  List the current user's assessment sessions
// @Tags         session
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /session/user-sessions [get]
func (h *SessionHandler) UserSessions(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	sessions, err := h.sessionUC.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Sessions", sessions)
}

// Cleanup godoc
// @Summary      Cleanup Stale Sessions (admin)
// @Description  Delete active sessions idle past the configured maximum age
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /admin/session/cleanup [post]
func (h *SessionHandler) Cleanup(c *gin.Context) {
	deleted, err := h.sessionUC.CleanupOld(c.Request.Context(), h.config.SessionMaxAge)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Cleanup complete", gin.H{"deleted": deleted})
}
