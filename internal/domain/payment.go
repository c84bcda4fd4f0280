package domain

import (
	"context"
	"errors"
	"time"
)

// ErrDuplicateIntent marks a payment-intent id that was already applied.
// Confirmation treats it as an idempotent success, not a failure.
var ErrDuplicateIntent = errors.New("payment intent already processed")

// Payment statuses recorded in the audit trail
const (
	PaymentStatusSucceeded = "succeeded"
	PaymentStatusFailed    = "failed"
)

// Payment is a write-once audit record of a Stripe transaction
type Payment struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	ProductID       string    `json:"product_id"`
	Amount          int64     `json:"amount"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentIntentID string    `json:"payment_intent_id"`
	CreatedAt       time.Time `json:"created_at"`
}

// PaymentIntent mirrors the provider-side intent the frontend confirms
type PaymentIntent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
	ProductID    string `json:"product_id,omitempty"`
	UserID       string `json:"user_id,omitempty"`
}

// PaymentProvider abstracts the Stripe SDK for usecases and tests
type PaymentProvider interface {
	CreateIntent(amount int64, currency, userID, productID string) (*PaymentIntent, error)
	GetIntent(intentID string) (*PaymentIntent, error)
	IsConfigured() bool
}

type PaymentRepository interface {
	// ConfirmPurchase inserts the payment row and appends the product
	// entitlement in a single transaction. A duplicate payment_intent_id
	// returns ErrDuplicateIntent from the unique constraint so the
	// confirmation is idempotent.
	ConfirmPurchase(ctx context.Context, payment *Payment) error
	ListByUserID(ctx context.Context, userID string) ([]Payment, error)
	ListAll(ctx context.Context) ([]Payment, error)
}

type PaymentUsecase interface {
	CreateIntent(ctx context.Context, userID, productID string) (*PaymentIntent, error)
	// Confirm applies the entitlement and records the payment exactly
	// once per successful charge, keyed on the intent id.
	Confirm(ctx context.Context, userID, intentID string) (*Payment, error)
	History(ctx context.Context, userID string) ([]Payment, error)
	// ExportReport renders every recorded payment as an xlsx workbook
	// for admin reporting. Returns the file bytes and a filename.
	ExportReport(ctx context.Context) ([]byte, string, error)
}
