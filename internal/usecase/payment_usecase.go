package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
)

type paymentUsecase struct {
	paymentRepo domain.PaymentRepository
	userRepo    domain.UserRepository
	provider    domain.PaymentProvider
}

func NewPaymentUsecase(paymentRepo domain.PaymentRepository, userRepo domain.UserRepository, provider domain.PaymentProvider) domain.PaymentUsecase {
	return &paymentUsecase{
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		provider:    provider,
	}
}

func (u *paymentUsecase) CreateIntent(ctx context.Context, userID, productID string) (*domain.PaymentIntent, error) {
	product, ok := domain.ProductByID(productID)
	if !ok {
		return nil, apperror.BadRequest("Unknown product")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.HasProduct(productID) {
		return nil, apperror.Conflict("Product already purchased")
	}

	intent, err := u.provider.CreateIntent(product.Amount, product.Currency, userID, productID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return intent, nil
}

// Confirm applies the entitlement and records the payment exactly once.
// The charge status is re-checked against the provider; the repository
// transaction keyed on the intent id makes retries idempotent.
func (u *paymentUsecase) Confirm(ctx context.Context, userID, intentID string) (*domain.Payment, error) {
	intent, err := u.provider.GetIntent(intentID)
	if err != nil {
		return nil, apperror.BadRequest("Payment intent not found")
	}
	if intent.UserID != userID {
		return nil, apperror.Forbidden("Payment intent belongs to another user")
	}
	if intent.Status != "succeeded" {
		return nil, apperror.BadRequest("Payment has not succeeded")
	}
	if !domain.IsValidProduct(intent.ProductID) {
		return nil, apperror.BadRequest("Payment intent carries no valid product")
	}

	payment := &domain.Payment{
		ID:              uuid.NewString(),
		UserID:          userID,
		ProductID:       intent.ProductID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
		Status:          domain.PaymentStatusSucceeded,
		PaymentIntentID: intent.ID,
		CreatedAt:       time.Now(),
	}

	err = u.paymentRepo.ConfirmPurchase(ctx, payment)
	if errors.Is(err, domain.ErrDuplicateIntent) {
		// the first confirmation already applied everything
		audit.Default().Log(ctx, audit.Event{
			Event:   audit.EventPaymentDuplicate,
			UserID:  userID,
			Details: map[string]interface{}{"payment_intent_id": intent.ID},
		})
		return payment, nil
	}
	if err != nil {
		return nil, err
	}

	audit.Default().Log(ctx, audit.Event{
		Event:  audit.EventPaymentConfirmed,
		UserID: userID,
		Details: map[string]interface{}{
			"payment_intent_id": intent.ID,
			"product_id":        intent.ProductID,
			"amount":            intent.Amount,
		},
	})
	audit.Default().Log(ctx, audit.Event{
		Event:   audit.EventEntitlementGranted,
		UserID:  userID,
		Details: map[string]interface{}{"product_id": intent.ProductID},
	})
	return payment, nil
}

func (u *paymentUsecase) History(ctx context.Context, userID string) ([]domain.Payment, error) {
	return u.paymentRepo.ListByUserID(ctx, userID)
}

// ExportReport generates an Excel workbook of all recorded payments
func (u *paymentUsecase) ExportReport(ctx context.Context) ([]byte, string, error) {
	payments, err := u.paymentRepo.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Payments"
	f.SetSheetName("Sheet1", sheetName)

	headers := []string{"PAYMENT ID", "USER ID", "PRODUCT", "AMOUNT", "CURRENCY", "STATUS", "PAYMENT INTENT", "CREATED AT"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for row, p := range payments {
		values := []interface{}{
			p.ID, p.UserID, p.ProductID,
			float64(p.Amount) / 100, // minor units to display units
			strings.ToUpper(p.Currency), p.Status, p.PaymentIntentID,
			p.CreatedAt.Format(time.RFC3339),
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	filename := fmt.Sprintf("payments_report_%s.xlsx", time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
