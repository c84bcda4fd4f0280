package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"simplehire-backend/internal/domain"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/voice"
)

type interviewUsecase struct {
	sessionUC    domain.SessionUsecase
	sessionRepo  domain.SessionRepository
	progressRepo domain.ProgressRepository
	userRepo     domain.UserRepository
	certUC       domain.CertificateUsecase
	voice        *voice.Client
}

func NewInterviewUsecase(sessionUC domain.SessionUsecase, sessionRepo domain.SessionRepository,
	progressRepo domain.ProgressRepository, userRepo domain.UserRepository,
	certUC domain.CertificateUsecase, voiceClient *voice.Client) domain.InterviewUsecase {
	return &interviewUsecase{
		sessionUC:    sessionUC,
		sessionRepo:  sessionRepo,
		progressRepo: progressRepo,
		userRepo:     userRepo,
		certUC:       certUC,
		voice:        voiceClient,
	}
}

// StartAssessment opens a session seeded with the parsed resume and a
// generated question set, and marks the documents-uploaded step.
func (u *interviewUsecase) StartAssessment(ctx context.Context, userID string, resumeText string, resumeURL string) (*domain.AssessmentSession, error) {
	if err := u.requireSkillProduct(ctx, userID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(resumeText) == "" {
		return nil, apperror.BadRequest("Resume text must not be empty")
	}

	session, err := u.sessionUC.Create(ctx, userID)
	if err != nil {
		return nil, err
	}

	skills := extractSkills(resumeText)
	session.Data = domain.SessionData{
		ResumeText: resumeText,
		ResumeURL:  resumeURL,
		Questions:  generateQuestions(skills),
	}
	if err := u.sessionRepo.UpdateData(ctx, session.SessionID, session.Data); err != nil {
		return nil, err
	}

	if err := u.progressRepo.MarkStep(ctx, userID, domain.StepDocumentsUploaded); err != nil {
		return nil, err
	}
	return session, nil
}

func (u *interviewUsecase) StartVoiceInterview(ctx context.Context, userID, sessionID string) (*domain.VoiceSession, error) {
	if _, err := u.ownedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}

	agent, err := u.voice.StartSession(ctx)
	if err != nil {
		return nil, apperror.New(503, "Voice interview service is unavailable", err)
	}
	return &domain.VoiceSession{
		SessionID: sessionID,
		SignedURL: agent.SignedURL,
		AgentID:   agent.AgentID,
	}, nil
}

// CompleteVoiceInterview records the transcript and marks the milestone.
// It is called by the frontend when the agent conversation ends.
func (u *interviewUsecase) CompleteVoiceInterview(ctx context.Context, userID, sessionID string, transcript string) error {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}

	session.Data.VoiceTranscript = transcript
	if err := u.sessionRepo.UpdateData(ctx, sessionID, session.Data); err != nil {
		return err
	}
	return u.progressRepo.MarkStep(ctx, userID, domain.StepVoiceInterview)
}

// SubmitMCQ scores the answer sheet against the generated questions
func (u *interviewUsecase) SubmitMCQ(ctx context.Context, userID string, sub domain.MCQSubmission) (*domain.Evaluation, error) {
	session, err := u.ownedSession(ctx, userID, sub.SessionID)
	if err != nil {
		return nil, err
	}
	if len(session.Data.Questions) == 0 {
		return nil, apperror.BadRequest("Session has no generated questions")
	}

	correct := 0
	for _, q := range session.Data.Questions {
		if answer, ok := sub.Answers[q.ID]; ok && answer == q.Answer {
			correct++
		}
	}
	score := 100 * float64(correct) / float64(len(session.Data.Questions))

	eval := u.ensureEvaluation(session)
	eval.MCQScore = &score
	if err := u.sessionRepo.UpdateData(ctx, sub.SessionID, session.Data); err != nil {
		return nil, err
	}

	if err := u.progressRepo.MarkStep(ctx, userID, domain.StepMCQTest); err != nil {
		return nil, err
	}
	return eval, nil
}

// SubmitCoding records the solution and applies a shallow static check.
// Deep grading happens offline; the milestone only requires a genuine
// submission.
func (u *interviewUsecase) SubmitCoding(ctx context.Context, userID string, sub domain.CodingSubmission) (*domain.Evaluation, error) {
	session, err := u.ownedSession(ctx, userID, sub.SessionID)
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(sub.Code)) < 20 {
		return nil, apperror.BadRequest("Submitted code is too short to evaluate")
	}

	score := scoreCodingSubmission(sub.Code)
	eval := u.ensureEvaluation(session)
	eval.CodingScore = &score
	if err := u.sessionRepo.UpdateData(ctx, sub.SessionID, session.Data); err != nil {
		return nil, err
	}

	if err := u.progressRepo.MarkStep(ctx, userID, domain.StepCodingChallenge); err != nil {
		return nil, err
	}
	return eval, nil
}

func (u *interviewUsecase) GetEvaluation(ctx context.Context, userID, sessionID string) (*domain.Evaluation, error) {
	session, err := u.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Data.Evaluation == nil {
		return nil, apperror.NotFound("No evaluation available for this session")
	}

	eval := session.Data.Evaluation
	eval.VoiceCompleted = session.Data.VoiceTranscript != ""
	eval.Skills = extractSkills(session.Data.ResumeText)
	eval.Summary = evaluationSummary(eval)
	return eval, nil
}

// IssueCertificate requires every scoring milestone to be done
func (u *interviewUsecase) IssueCertificate(ctx context.Context, userID string) (*domain.Certificate, error) {
	progress, err := u.progressRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !progress.VoiceInterview || !progress.MCQTest || !progress.CodingChallenge {
		return nil, apperror.BadRequest("Complete all interview steps before requesting a certificate")
	}

	// skills come from the most recent assessment session
	sessions, err := u.sessionRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	var skills []string
	for _, s := range sessions {
		if s.Data.ResumeText != "" {
			skills = extractSkills(s.Data.ResumeText)
			break
		}
	}

	return u.certUC.Issue(ctx, userID, domain.ProductSkill, skills)
}

func (u *interviewUsecase) ownedSession(ctx context.Context, userID, sessionID string) (*domain.AssessmentSession, error) {
	session, err := u.sessionUC.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, apperror.Forbidden("Session belongs to another user")
	}
	return session, nil
}

func (u *interviewUsecase) ensureEvaluation(session *domain.AssessmentSession) *domain.Evaluation {
	if session.Data.Evaluation == nil {
		session.Data.Evaluation = &domain.Evaluation{
			SessionID:   session.SessionID,
			EvaluatedAt: time.Now(),
		}
	}
	return session.Data.Evaluation
}

func (u *interviewUsecase) requireSkillProduct(ctx context.Context, userID string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasProduct(domain.ProductSkill) {
		return apperror.Forbidden("Assessments require the skill product")
	}
	return nil
}

// knownSkills maps resume keywords to canonical skill names
var knownSkills = map[string]string{
	"go":         "Go",
	"golang":     "Go",
	"python":     "Python",
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"react":      "React",
	"java":       "Java",
	"sql":        "SQL",
	"postgres":   "PostgreSQL",
	"docker":     "Docker",
	"kubernetes": "Kubernetes",
	"aws":        "AWS",
}

func extractSkills(resumeText string) []string {
	lowered := strings.ToLower(resumeText)
	seen := make(map[string]bool)
	var skills []string
	for keyword, name := range knownSkills {
		if seen[name] {
			continue
		}
		if strings.Contains(lowered, keyword) {
			seen[name] = true
			skills = append(skills, name)
		}
	}
	// map iteration order is random; certificates and evaluations must
	// list skills stably across calls
	sort.Strings(skills)
	return skills
}

// generateQuestions builds the MCQ set for the detected skills. Question
// generation by the LLM provider is queued for a later iteration; this
// bank keeps the flow working end to end.
func generateQuestions(skills []string) []domain.MCQQuestion {
	questions := []domain.MCQQuestion{
		{
			ID:      uuid.NewString(),
			Text:    "Which HTTP status code indicates a resource was not found?",
			Options: []string{"200", "301", "404", "500"},
			Answer:  2,
		},
		{
			ID:      uuid.NewString(),
			Text:    "What does a database index primarily improve?",
			Options: []string{"Write throughput", "Read lookup speed", "Storage size", "Backup time"},
			Answer:  1,
		},
		{
			ID:      uuid.NewString(),
			Text:    "Which of these is a symmetric encryption algorithm?",
			Options: []string{"RSA", "AES", "SHA-256", "ECDSA"},
			Answer:  1,
		},
	}
	for _, skill := range skills {
		questions = append(questions, domain.MCQQuestion{
			ID:      uuid.NewString(),
			Text:    fmt.Sprintf("Rate the statement: %s favors composition over inheritance.", skill),
			Options: []string{"True", "False"},
			Answer:  0,
		})
		if len(questions) >= 8 {
			break
		}
	}
	return questions
}

// scoreCodingSubmission applies shallow static checks pending offline review
func scoreCodingSubmission(code string) float64 {
	score := 50.0
	if strings.Contains(code, "func ") || strings.Contains(code, "def ") || strings.Contains(code, "function") {
		score += 25
	}
	if strings.Contains(code, "return") {
		score += 15
	}
	if len(code) > 200 {
		score += 10
	}
	if score > 100 {
		score = 100
	}
	return score
}

func evaluationSummary(eval *domain.Evaluation) string {
	parts := []string{}
	if eval.MCQScore != nil {
		parts = append(parts, fmt.Sprintf("MCQ %.0f%%", *eval.MCQScore))
	}
	if eval.CodingScore != nil {
		parts = append(parts, fmt.Sprintf("coding %.0f%%", *eval.CodingScore))
	}
	if eval.VoiceCompleted {
		parts = append(parts, "voice interview completed")
	}
	if len(parts) == 0 {
		return "No scored steps yet"
	}
	return strings.Join(parts, ", ")
}
