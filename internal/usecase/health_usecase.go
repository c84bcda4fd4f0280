package usecase

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"simplehire-backend/pkg/email"
	"simplehire-backend/pkg/payments"
	rds "simplehire-backend/pkg/redis"
	"simplehire-backend/pkg/storage"
)

// HealthStatus reports the reachability of each backing service
type HealthStatus struct {
	Status   string            `json:"status"`
	Time     time.Time         `json:"time"`
	Services map[string]string `json:"services"`
}

type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}

type healthUsecase struct {
	db      *pgxpool.Pool
	storage *storage.Client
	stripe  *payments.StripeProvider
	mailer  *email.EmailService
}

func NewHealthUsecase(db *pgxpool.Pool, storageClient *storage.Client, stripe *payments.StripeProvider, mailer *email.EmailService) HealthUsecase {
	return &healthUsecase{db: db, storage: storageClient, stripe: stripe, mailer: mailer}
}

func (u *healthUsecase) Check(ctx context.Context) *HealthStatus {
	status := &HealthStatus{
		Status:   "ok",
		Time:     time.Now(),
		Services: make(map[string]string),
	}

	checkCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := u.db.Ping(checkCtx); err != nil {
		status.Services["database"] = "down"
		status.Status = "degraded"
	} else {
		status.Services["database"] = "up"
	}

	if rds.IsAvailable() {
		if err := rds.HealthCheck(checkCtx); err != nil {
			status.Services["redis"] = "down"
			status.Status = "degraded"
		} else {
			status.Services["redis"] = "up"
		}
	} else {
		status.Services["redis"] = "unconfigured"
	}

	if u.storage != nil {
		if err := u.storage.HealthCheck(checkCtx); err != nil {
			status.Services["storage"] = "down"
			status.Status = "degraded"
		} else {
			status.Services["storage"] = "up"
		}
	} else {
		status.Services["storage"] = "unconfigured"
	}

	if u.stripe != nil && u.stripe.IsConfigured() {
		status.Services["payments"] = "configured"
	} else {
		status.Services["payments"] = "unconfigured"
	}

	if u.mailer != nil && u.mailer.IsConfigured() {
		status.Services["email"] = "configured"
	} else {
		status.Services["email"] = "unconfigured"
	}

	return status
}
