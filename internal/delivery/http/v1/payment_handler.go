package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
)

type PaymentHandler struct {
	paymentUC domain.PaymentUsecase
}

func NewPaymentHandler(protected *gin.RouterGroup, admin *gin.RouterGroup, paymentUC domain.PaymentUsecase) {
	handler := &PaymentHandler{paymentUC: paymentUC}

	payments := protected.Group("/payments")
	{
		payments.POST("/create-intent", handler.CreateIntent)
		payments.POST("/confirm", handler.Confirm)
		payments.GET("/history", handler.History)
	}

	admin.GET("/reports/payments", handler.ExportReport)
}

type CreateIntentRequest struct {
	ProductID string `json:"product_id" binding:"required,product_id"`
}

type ConfirmPaymentRequest struct {
	PaymentIntentID string `json:"payment_intent_id" binding:"required"`
}

// CreateIntent godoc
// @Summary      Create Payment Intent
// @Description  Start a purchase for a verification product
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        intent  body      CreateIntentRequest  true  "Product to purchase"
// @Success      201     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      409     {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/create-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	intent, err := h.paymentUC.CreateIntent(c.Request.Context(), userID, req.ProductID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Payment intent created", intent)
}

// Confirm godoc
// @Summary      Confirm Payment
// @Description  Verify a succeeded payment and grant the product entitlement. Safe to retry.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        confirm  body      ConfirmPaymentRequest  true  "Intent to confirm"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/confirm [post]
func (h *PaymentHandler) Confirm(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	payment, err := h.paymentUC.Confirm(c.Request.Context(), userID, req.PaymentIntentID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Payment confirmed", payment)
}

// History godoc
// @Summary      Payment History
// @Description  List the current user's completed payments
// @Tags         payments
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /payments/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	payments, err := h.paymentUC.History(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Payment history", payments)
}

// ExportReport godoc
// @Summary      Export Payments Report (admin)
// @Description  Download all recorded payments as an Excel workbook
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /admin/reports/payments [get]
func (h *PaymentHandler) ExportReport(c *gin.Context) {
	data, filename, err := h.paymentUC.ExportReport(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
