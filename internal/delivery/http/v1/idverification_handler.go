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

type IDVerificationHandler struct {
	idUC    domain.IDVerificationUsecase
	storage *storage.Client
}

func NewIDVerificationHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, idUC domain.IDVerificationUsecase, storageClient *storage.Client) {
	handler := &IDVerificationHandler{
		idUC:    idUC,
		storage: storageClient,
	}

	uploadLimit := middleware.RateLimitMiddleware(middleware.UploadRateLimitConfig())

	group := protected.Group("/id-verification")
	{
		group.POST("/id", uploadLimit, handler.uploadDocument(domain.DocKindID))
		group.POST("/visa", uploadLimit, handler.uploadDocument(domain.DocKindVisa))
		group.POST("/selfie", uploadLimit, handler.uploadDocument(domain.DocKindSelfie))
		group.POST("/submit", handler.Submit)
		group.GET("/status", handler.GetStatus)
	}

	admin.PATCH("/id-verification/status", handler.ReviewStatus)
}

type ReviewStatusRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// uploadDocument stores one document image and attaches it to the
// user's verification record.
//
// @Summary      Upload Verification Document
// @Description  Upload the ID document, visa, or selfie image (max 10MB, compressed server side)
// @Tags         id-verification
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Document image"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Security     BearerAuth
// @Router       /id-verification/{kind} [post]
func (h *IDVerificationHandler) uploadDocument(kind string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))

		file, err := c.FormFile("file")
		if err != nil {
			c.Error(apperror.BadRequest("No file uploaded"))
			return
		}
		if file.Size > maxUploadBytes {
			c.Error(apperror.BadRequest("File exceeds the 10MB limit"))
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
			c.Error(apperror.BadRequest("File exceeds the 10MB limit"))
			return
		}

		contentType := http.DetectContentType(fileBytes)
		if !strings.HasPrefix(contentType, "image/") {
			c.Error(apperror.BadRequest("Document must be an image"))
			return
		}

		compressed, err := storage.CompressImage(fileBytes)
		if err != nil {
			// keep the original when the format defeats compression
			compressed = fileBytes
		} else {
			contentType = "image/jpeg"
		}

		key := fmt.Sprintf("id-verification/%s/%s-%s%s", userID, kind, uuid.NewString(), extensionFor(contentType))
		url, err := h.storage.Upload(c.Request.Context(), key, contentType, compressed)
		if err != nil {
			c.Error(apperror.New(http.StatusInternalServerError, "Failed to store document", err))
			return
		}

		record, err := h.idUC.AttachDocument(c.Request.Context(), userID, kind, url)
		if err != nil {
			c.Error(err)
			return
		}

		response.Success(c, http.StatusOK, "Document uploaded", record)
	}
}

// Submit godoc
// @Summary      Submit For Verification
// @Description  Submit uploaded documents for automated and manual review
// @Tags         id-verification
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Security     BearerAuth
// @Router       /id-verification/submit [post]
func (h *IDVerificationHandler) Submit(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	record, err := h.idUC.Submit(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification submitted", record)
}

// GetStatus godoc
// @Summary      Verification Status
// @Description  Return the current ID verification record
// @Tags         id-verification
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /id-verification/status [get]
func (h *IDVerificationHandler) GetStatus(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	record, err := h.idUC.GetStatus(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification status", record)
}

// ReviewStatus godoc
// @Summary      Review Verification (admin)
// @Description  Set the review outcome for a user's ID verification
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        review  body      ReviewStatusRequest  true  "Review outcome"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Router       /admin/id-verification/status [patch]
func (h *IDVerificationHandler) ReviewStatus(c *gin.Context) {
	var req ReviewStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.idUC.ReviewStatus(c.Request.Context(), req.UserID, req.Status, req.Notes); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Verification status updated", nil)
}
