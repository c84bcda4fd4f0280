package domain

import (
	"context"
	"time"
)

// Certificate statuses
const (
	CertStatusActive  = "active"
	CertStatusRevoked = "revoked"
)

// Certificate is issued once per completed skill track and is immutable
// afterwards. CertificateNumber is the public lookup key.
type Certificate struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	ProductID         string    `json:"product_id"`
	CertificateNumber string    `json:"certificate_number"`
	IssueDate         time.Time `json:"issue_date"`
	Status            string    `json:"status"`
	Skills            []string  `json:"skills"`
}

// PublicCertificate is the unauthenticated lookup view. Valid is false
// for unknown numbers and for revoked certificates; the endpoint never
// errors for a miss.
type PublicCertificate struct {
	Valid             bool       `json:"valid"`
	CertificateNumber string     `json:"certificate_number"`
	HolderName        string     `json:"holder_name,omitempty"`
	ProductID         string     `json:"product_id,omitempty"`
	IssueDate         *time.Time `json:"issue_date,omitempty"`
	Skills            []string   `json:"skills,omitempty"`
}

type CertificateRepository interface {
	Create(ctx context.Context, cert *Certificate) error
	GetByNumber(ctx context.Context, number string) (*Certificate, error)
	ListByUserID(ctx context.Context, userID string) ([]Certificate, error)
	GetByUserAndProduct(ctx context.Context, userID, productID string) (*Certificate, error)
}

type CertificateUsecase interface {
	Issue(ctx context.Context, userID, productID string, skills []string) (*Certificate, error)
	ListMine(ctx context.Context, userID string) ([]Certificate, error)
	// PublicLookup returns Valid=false (not an error) for missing or
	// non-active certificates.
	PublicLookup(ctx context.Context, number string) (*PublicCertificate, error)
}
