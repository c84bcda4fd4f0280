package domain

import (
	"context"
	"time"
)

// Assessment session statuses. Expired sessions are never resurrected;
// they are either swept by cleanup or remain as inert rows.
const (
	SessionStatusActive  = "active"
	SessionStatusExpired = "expired"
)

// SessionData is the typed payload carried by an assessment session.
// Each stage writes its own field; nothing here is an untyped blob.
type SessionData struct {
	ResumeText     string        `json:"resume_text,omitempty"`
	ResumeURL      string        `json:"resume_url,omitempty"`
	Questions      []MCQQuestion `json:"questions,omitempty"`
	VoiceTranscript string       `json:"voice_transcript,omitempty"`
	Evaluation     *Evaluation   `json:"evaluation,omitempty"`
}

// AssessmentSession tracks one candidate's in-progress interview attempt,
// distinct from the authentication session.
type AssessmentSession struct {
	SessionID     string      `json:"session_id"`
	UserID        string      `json:"user_id"`
	Status        string      `json:"status"`
	Data          SessionData `json:"data"`
	LastActivity  time.Time   `json:"last_activity"`
	ExpiredReason *string     `json:"expired_reason,omitempty"`
	ExpiredAt     *time.Time  `json:"expired_at,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
}

type SessionRepository interface {
	Create(ctx context.Context, session *AssessmentSession) error
	// Get returns the row regardless of status; the usecase decides
	// whether expired counts as found.
	Get(ctx context.Context, sessionID string) (*AssessmentSession, error)
	ListByUserID(ctx context.Context, userID string) ([]AssessmentSession, error)
	UpdateData(ctx context.Context, sessionID string, data SessionData) error
	Touch(ctx context.Context, sessionID string, at time.Time) error
	Expire(ctx context.Context, sessionID, reason string, at time.Time) error
	// DeleteStaleActive removes active sessions whose last activity is
	// before the cutoff and returns the exact count deleted.
	DeleteStaleActive(ctx context.Context, cutoff time.Time) (int64, error)
}

type SessionUsecase interface {
	Create(ctx context.Context, userID string) (*AssessmentSession, error)
	// Get treats expired sessions as not found.
	Get(ctx context.Context, sessionID string) (*AssessmentSession, error)
	ListForUser(ctx context.Context, userID string) ([]AssessmentSession, error)
	Heartbeat(ctx context.Context, userID, sessionID string) error
	Expire(ctx context.Context, userID, sessionID, reason string) error
	CleanupOld(ctx context.Context, maxAge time.Duration) (int64, error)
}
