package v1

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"simplehire-backend/internal/delivery/http/middleware"
	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/storage"
)

// maxUploadBytes caps multipart uploads at 10MB
const maxUploadBytes = 10 << 20

type InterviewHandler struct {
	interviewUC domain.InterviewUsecase
	storage     *storage.Client
}

func NewInterviewHandler(protected *gin.RouterGroup, interviewUC domain.InterviewUsecase, storageClient *storage.Client) {
	handler := &InterviewHandler{
		interviewUC: interviewUC,
		storage:     storageClient,
	}

	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	interviews := protected.Group("/interviews")
	{
		interviews.POST("/start-assessment", uploadLimit, handler.StartAssessment)
		interviews.POST("/voice/start", handler.StartVoice)
		interviews.POST("/voice/complete", handler.CompleteVoice)
		interviews.POST("/mcq", handler.SubmitMCQ)
		interviews.POST("/coding", handler.SubmitCoding)
		interviews.GET("/evaluation/:sessionId", handler.GetEvaluation)
		interviews.POST("/certificate", handler.IssueCertificate)
	}
}

type CompleteVoiceRequest struct {
	SessionID  string `json:"session_id" binding:"required,uuid"`
	Transcript string `json:"transcript" binding:"required"`
}

// StartAssessment godoc
// @Summary      Start Assessment
// @Description  Upload a resume and open an assessment session with generated questions
// @Tags         interviews
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume       formData  file    false  "Resume file (max 10MB)"
// @Param        resume_text  formData  string  false  "Extracted resume text"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/start-assessment [post]
func (h *InterviewHandler) StartAssessment(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	resumeText := c.PostForm("resume_text")
	var resumeURL string

	file, err := c.FormFile("resume")
	if err == nil {
		if file.Size > maxUploadBytes {
			c.Error(apperror.BadRequest("Resume file exceeds the 10MB limit"))
			return
		}

		src, err := file.Open()
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}
		defer src.Close()

		fileBytes, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
		if err != nil {
			c.Error(apperror.Internal(err))
			return
		}
		if len(fileBytes) > maxUploadBytes {
			c.Error(apperror.BadRequest("Resume file exceeds the 10MB limit"))
			return
		}

		contentType := http.DetectContentType(fileBytes)
		switch {
		case contentType == "application/pdf":
		case strings.HasPrefix(contentType, "text/plain"):
			if resumeText == "" {
				resumeText = string(fileBytes)
			}
		default:
			c.Error(apperror.BadRequest("Resume must be a PDF or plain text file"))
			return
		}

		// PDFs carry no extractable text here, so resume_text must
		// accompany them. Checked before the upload so a rejected
		// request leaves no orphaned object behind.
		if strings.TrimSpace(resumeText) == "" {
			c.Error(apperror.BadRequest("Resume text must not be empty"))
			return
		}

		key := fmt.Sprintf("resumes/%s/%s%s", userID, uuid.NewString(), extensionFor(contentType))
		resumeURL, err = h.storage.Upload(c.Request.Context(), key, contentType, fileBytes)
		if err != nil {
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to store resume", err))
			return
		}
	}

	session, err := h.interviewUC.StartAssessment(c.Request.Context(), userID, resumeText, resumeURL)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Assessment started", session)
}

// StartVoice godoc
// @Summary      Start Voice Interview
// @Description  Obtain a signed URL for the voice agent conversation
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/voice/start [post]
func (h *InterviewHandler) StartVoice(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req struct {
		SessionID string `json:"session_id" binding:"required,uuid"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	voiceSession, err := h.interviewUC.StartVoiceInterview(c.Request.Context(), userID, req.SessionID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Voice interview ready", voiceSession)
}

// CompleteVoice godoc
// @Summary      Complete Voice Interview
// @Description  Record the conversation transcript and mark the milestone
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        complete  body      CompleteVoiceRequest  true  "Session and transcript"
// @Success      200       {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/voice/complete [post]
func (h *InterviewHandler) CompleteVoice(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CompleteVoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.interviewUC.CompleteVoiceInterview(c.Request.Context(), userID, req.SessionID, req.Transcript); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Voice interview completed", nil)
}

// SubmitMCQ godoc
// @Summary      Submit MCQ Answers
// @Description  Score the answer sheet against the session's questions
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.MCQSubmission  true  "Answer sheet"
// @Success      200         {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/mcq [post]
func (h *InterviewHandler) SubmitMCQ(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var sub domain.MCQSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	eval, err := h.interviewUC.SubmitMCQ(c.Request.Context(), userID, sub)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "MCQ submitted", eval)
}

// SubmitCoding godoc
// @Summary      Submit Coding Challenge
// @Description  Record the coding solution and mark the milestone
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        submission  body      domain.CodingSubmission  true  "Solution"
// @Success      200         {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/coding [post]
func (h *InterviewHandler) SubmitCoding(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var sub domain.CodingSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	eval, err := h.interviewUC.SubmitCoding(c.Request.Context(), userID, sub)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Coding challenge submitted", eval)
}

// GetEvaluation godoc
// @Summary      Get Evaluation
// @Description  Return the aggregated evaluation for an assessment session
// @Tags         interviews
// @Produce      json
// @Param        sessionId  path      string  true  "Session ID"
// @Success      200        {object}  response.Response
// @Failure      404        {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/evaluation/{sessionId} [get]
func (h *InterviewHandler) GetEvaluation(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	sessionID := c.Param("sessionId")

	eval, err := h.interviewUC.GetEvaluation(c.Request.Context(), userID, sessionID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Evaluation", eval)
}

// IssueCertificate godoc
// @Summary      Issue Skill Certificate
// @Description  Issue the skill certificate once every interview step is complete
// @Tags         interviews
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /interviews/certificate [post]
func (h *InterviewHandler) IssueCertificate(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	cert, err := h.interviewUC.IssueCertificate(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Certificate issued", cert)
}

func extensionFor(contentType string) string {
	switch {
	case contentType == "application/pdf":
		return ".pdf"
	case strings.HasPrefix(contentType, "text/plain"):
		return ".txt"
	case contentType == "image/jpeg":
		return ".jpg"
	case contentType == "image/png":
		return ".png"
	default:
		return ""
	}
}
