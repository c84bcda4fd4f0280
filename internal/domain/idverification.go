package domain

import (
	"context"
	"time"
)

// ID-verification track statuses. Transitions are directional:
// not-started -> in-progress -> pending -> verified, with failed
// reachable from pending.
const (
	IDStatusNotStarted = "not-started"
	IDStatusInProgress = "in-progress"
	IDStatusPending    = "pending"
	IDStatusVerified   = "verified"
	IDStatusFailed     = "failed"
)

// ValidIDStatuses for admin PATCH validation
var ValidIDStatuses = []string{IDStatusNotStarted, IDStatusInProgress, IDStatusPending, IDStatusVerified, IDStatusFailed}

// Document kinds accepted by the upload endpoints
const (
	DocKindID     = "id"
	DocKindVisa   = "visa"
	DocKindSelfie = "selfie"
)

// IDVerification is the single per-user identity verification record
type IDVerification struct {
	ID             int64      `json:"id"`
	UserID         string     `json:"user_id"`
	Status         string     `json:"status"`
	IDDocumentURL  *string    `json:"id_document_url,omitempty"`
	VisaURL        *string    `json:"visa_url,omitempty"`
	SelfieURL      *string    `json:"selfie_url,omitempty"`
	FaceMatchScore *float64   `json:"face_match_score,omitempty"`
	ReviewNotes    *string    `json:"review_notes,omitempty"`
	SubmittedAt    *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt     *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

type IDVerificationRepository interface {
	// Upsert keyed on user_id; the relational uniqueness constraint is
	// the idempotency guarantee.
	Upsert(ctx context.Context, v *IDVerification) error
	GetByUserID(ctx context.Context, userID string) (*IDVerification, error)
	UpdateStatus(ctx context.Context, userID, status string, notes *string) error
}

type IDVerificationUsecase interface {
	AttachDocument(ctx context.Context, userID, kind, url string) (*IDVerification, error)
	Submit(ctx context.Context, userID string) (*IDVerification, error)
	GetStatus(ctx context.Context, userID string) (*IDVerification, error)
	ReviewStatus(ctx context.Context, userID, status string, notes *string) error
}
