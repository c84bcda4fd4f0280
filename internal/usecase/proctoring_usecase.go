package usecase

import (
	"context"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/proctoring"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/audit"
	"simplehire-backend/pkg/docverify"
	"simplehire-backend/pkg/logger"
)

// IdentityCheck is the outcome of matching a live selfie against the
// candidate's ID document on file.
type IdentityCheck struct {
	Verified bool    `json:"verified"`
	Score    float64 `json:"score"`
	Reason   string  `json:"reason,omitempty"`
}

// MonitorReport aggregates per-frame proctoring verdicts for one batch
type MonitorReport struct {
	SessionID    string                  `json:"session_id"`
	FrameCount   int                     `json:"frame_count"`
	Score        float64                 `json:"score"` // mean of frame scores
	Passed       bool                    `json:"passed"`
	Violations   []proctoring.RuleResult `json:"violations,omitempty"`
	FrameReports []proctoring.Report     `json:"frame_reports"`
}

type ProctoringUsecase interface {
	VerifyIdentity(ctx context.Context, userID string, selfieURL string) (*IdentityCheck, error)
	Monitor(ctx context.Context, userID, sessionID string, frames []proctoring.Frame) (*MonitorReport, error)
}

type proctoringUsecase struct {
	idRepo      domain.IDVerificationRepository
	sessionRepo domain.SessionRepository
	docVerify   *docverify.Client
	evaluator   *proctoring.Evaluator
}

func NewProctoringUsecase(idRepo domain.IDVerificationRepository, sessionRepo domain.SessionRepository,
	docVerify *docverify.Client) ProctoringUsecase {
	return &proctoringUsecase{
		idRepo:      idRepo,
		sessionRepo: sessionRepo,
		docVerify:   docVerify,
		evaluator:   proctoring.DefaultEvaluator(),
	}
}

// VerifyIdentity compares a live selfie against the ID document on file.
func (u *proctoringUsecase) VerifyIdentity(ctx context.Context, userID string, selfieURL string) (*IdentityCheck, error) {
	record, err := u.idRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperror.IsNotFound(err) {
			return nil, apperror.BadRequest("Upload an ID document before identity verification")
		}
		return nil, err
	}
	if record.IDDocumentURL == nil {
		return nil, apperror.BadRequest("Upload an ID document before identity verification")
	}

	if !u.docVerify.IsConfigured() {
		// no provider means no automated decision; flag for manual review
		return &IdentityCheck{Verified: false, Reason: "Automated verification unavailable, queued for manual review"}, nil
	}

	result, err := u.docVerify.FaceMatch(ctx, docverify.FaceMatchRequest{
		IDDocumentURL: *record.IDDocumentURL,
		SelfieURL:     selfieURL,
	})
	if err != nil {
		logger.Log.Warn("identity face match failed", "user_id", userID, "error", err)
		return &IdentityCheck{Verified: false, Reason: "Verification provider unreachable, queued for manual review"}, nil
	}

	check := &IdentityCheck{Verified: result.Match, Score: result.Score, Reason: result.Reason}
	if !result.Match {
		audit.Default().Log(ctx, audit.Event{
			Event:  audit.EventProctoringViolation,
			UserID: userID,
			Details: map[string]interface{}{
				"check":  "identity",
				"score":  result.Score,
				"reason": result.Reason,
			},
		})
	}
	return check, nil
}

// Monitor scores a batch of frame observations captured during a live
// session. The batch fails when the mean frame score drops below the
// evaluator threshold.
func (u *proctoringUsecase) Monitor(ctx context.Context, userID, sessionID string, frames []proctoring.Frame) (*MonitorReport, error) {
	if len(frames) == 0 {
		return nil, apperror.BadRequest("At least one frame observation is required")
	}

	session, err := u.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, apperror.Forbidden("Session belongs to another user")
	}

	report := &MonitorReport{
		SessionID:  sessionID,
		FrameCount: len(frames),
		Passed:     true,
	}
	var sum float64
	for _, frame := range frames {
		fr := u.evaluator.Evaluate(frame)
		sum += fr.Score
		report.Violations = append(report.Violations, fr.Violations...)
		report.FrameReports = append(report.FrameReports, fr)
		if !fr.Passed {
			report.Passed = false
		}
	}
	report.Score = sum / float64(len(frames))

	if !report.Passed {
		audit.Default().Log(ctx, audit.Event{
			Event:  audit.EventProctoringViolation,
			UserID: userID,
			Details: map[string]interface{}{
				"session_id": sessionID,
				"score":      report.Score,
				"violations": len(report.Violations),
			},
		})
	}
	return report, nil
}
