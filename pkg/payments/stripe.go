package payments

import (
	"fmt"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/paymentintent"

	"simplehire-backend/internal/domain"
)

// StripeProvider implements domain.PaymentProvider against the Stripe API
type StripeProvider struct {
	configured bool
}

// NewStripeProvider sets the global Stripe key and returns the provider
func NewStripeProvider(secretKey string) *StripeProvider {
	stripe.Key = secretKey
	return &StripeProvider{configured: secretKey != ""}
}

// CreateIntent creates a PaymentIntent for the given amount (minor units)
func (p *StripeProvider) CreateIntent(amount int64, currency, userID, productID string) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
	}
	params.AddMetadata("user_id", userID)
	params.AddMetadata("product_id", productID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe: create intent failed: %w", err)
	}

	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

// GetIntent retrieves a PaymentIntent for server-side confirmation.
// The charge status is always re-checked here rather than trusted from
// the client.
func (p *StripeProvider) GetIntent(intentID string) (*domain.PaymentIntent, error) {
	pi, err := paymentintent.Get(intentID, nil)
	if err != nil {
		return nil, fmt.Errorf("stripe: retrieve intent failed: %w", err)
	}

	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
		ProductID:    pi.Metadata["product_id"],
		UserID:       pi.Metadata["user_id"],
	}, nil
}

// IsConfigured reports whether a Stripe key was provided
func (p *StripeProvider) IsConfigured() bool {
	return p.configured
}
