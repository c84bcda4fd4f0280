package domain

import (
	"context"
	"time"
)

// InterviewProgress tracks the skill-track milestones for one user.
// Steps are monotonic by convention: once true they stay true.
type InterviewProgress struct {
	UserID            string    `json:"user_id"`
	DocumentsUploaded bool      `json:"documents_uploaded"`
	VoiceInterview    bool      `json:"voice_interview"`
	MCQTest           bool      `json:"mcq_test"`
	CodingChallenge   bool      `json:"coding_challenge"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Interview step names accepted by MarkStep
const (
	StepDocumentsUploaded = "documents_uploaded"
	StepVoiceInterview    = "voice_interview"
	StepMCQTest           = "mcq_test"
	StepCodingChallenge   = "coding_challenge"
)

// MCQQuestion is a generated multiple-choice question held in session data
type MCQQuestion struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  int      `json:"-"` // index into Options, never serialized to clients
}

// MCQSubmission is the candidate's answer sheet
type MCQSubmission struct {
	SessionID string         `json:"session_id" binding:"required,uuid"`
	Answers   map[string]int `json:"answers" binding:"required"`
}

// CodingSubmission is the candidate's coding-challenge solution
type CodingSubmission struct {
	SessionID string `json:"session_id" binding:"required,uuid"`
	Language  string `json:"language" binding:"required"`
	Code      string `json:"code" binding:"required"`
}

// Evaluation aggregates the analysis of one assessment attempt
type Evaluation struct {
	SessionID      string    `json:"session_id"`
	MCQScore       *float64  `json:"mcq_score,omitempty"`    // 0-100
	CodingScore    *float64  `json:"coding_score,omitempty"` // 0-100
	VoiceCompleted bool      `json:"voice_completed"`
	Skills         []string  `json:"skills"`
	Summary        string    `json:"summary"`
	EvaluatedAt    time.Time `json:"evaluated_at"`
}

type ProgressRepository interface {
	GetByUserID(ctx context.Context, userID string) (*InterviewProgress, error)
	MarkStep(ctx context.Context, userID, step string) error
}

// VoiceSession is returned to the frontend to connect to the voice agent
type VoiceSession struct {
	SessionID string `json:"session_id"`
	SignedURL string `json:"signed_url"`
	AgentID   string `json:"agent_id"`
}

type InterviewUsecase interface {
	StartAssessment(ctx context.Context, userID string, resumeText string, resumeURL string) (*AssessmentSession, error)
	StartVoiceInterview(ctx context.Context, userID, sessionID string) (*VoiceSession, error)
	CompleteVoiceInterview(ctx context.Context, userID, sessionID string, transcript string) error
	SubmitMCQ(ctx context.Context, userID string, sub MCQSubmission) (*Evaluation, error)
	SubmitCoding(ctx context.Context, userID string, sub CodingSubmission) (*Evaluation, error)
	GetEvaluation(ctx context.Context, userID, sessionID string) (*Evaluation, error)
	IssueCertificate(ctx context.Context, userID string) (*Certificate, error)
}
