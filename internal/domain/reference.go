package domain

import (
	"context"
	"time"
)

// Reference item statuses, advanced by outreach and responses
const (
	RefStatusPending          = "pending"
	RefStatusEmailSent        = "email-sent"
	RefStatusResponseReceived = "response-received"
	RefStatusVerified         = "verified"
)

// ValidReferenceStatuses for admin PATCH validation
var ValidReferenceStatuses = []string{RefStatusPending, RefStatusEmailSent, RefStatusResponseReceived, RefStatusVerified}

// Reference is one referee listed by a candidate
type Reference struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Company       string     `json:"company"`
	Relation      string     `json:"relation"`
	Status        string     `json:"status"`
	ResponseToken string     `json:"-"` // public token for the referee response link
	EmailSentAt   *time.Time `json:"email_sent_at,omitempty"`
	ResponseAt    *time.Time `json:"response_at,omitempty"`
	ResponseNotes *string    `json:"response_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// AddReferenceRequest is the payload for listing a new referee
type AddReferenceRequest struct {
	Name     string `json:"name" binding:"required,valid_name,no_emoji"`
	Email    string `json:"email" binding:"required,email"`
	Company  string `json:"company" binding:"required"`
	Relation string `json:"relation" binding:"required"`
}

type ReferenceRepository interface {
	Create(ctx context.Context, ref *Reference) error
	GetByID(ctx context.Context, id string) (*Reference, error)
	GetByToken(ctx context.Context, token string) (*Reference, error)
	ListByUserID(ctx context.Context, userID string) ([]Reference, error)
	UpdateStatus(ctx context.Context, id, status string, sentAt, responseAt *time.Time, notes *string) error
	Delete(ctx context.Context, id string) error
}

type ReferenceUsecase interface {
	Add(ctx context.Context, userID string, req AddReferenceRequest) (*Reference, error)
	List(ctx context.Context, userID string) ([]Reference, error)
	Remove(ctx context.Context, userID, refID string) error
	SendRequest(ctx context.Context, userID, refID string) error
	RecordResponse(ctx context.Context, token string, notes string) error
	Verify(ctx context.Context, refID string) error
	// AdminSetStatus force-sets a reference status, bypassing the
	// normal outreach transitions. Admin review tooling only.
	AdminSetStatus(ctx context.Context, refID, status string) error
}
