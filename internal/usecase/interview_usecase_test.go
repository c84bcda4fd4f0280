package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/apperror"
)

type interviewFixture struct {
	sessionRepo  *MockSessionRepo
	progressRepo *MockProgressRepo
	userRepo     *MockUserRepo
	certRepo     *MockCertificateRepo
	uc           domain.InterviewUsecase
}

func newInterviewFixture() *interviewFixture {
	f := &interviewFixture{
		sessionRepo:  new(MockSessionRepo),
		progressRepo: new(MockProgressRepo),
		userRepo:     new(MockUserRepo),
		certRepo:     new(MockCertificateRepo),
	}
	sessionUC := usecase.NewSessionUsecase(f.sessionRepo)
	certUC := usecase.NewCertificateUsecase(f.certRepo, f.userRepo)
	f.uc = usecase.NewInterviewUsecase(sessionUC, f.sessionRepo, f.progressRepo, f.userRepo, certUC, nil)
	return f
}

func (f *interviewFixture) stubSession(session *domain.AssessmentSession) {
	f.sessionRepo.On("Get", mock.Anything, session.SessionID).Return(session, nil)
}

func TestStartAssessment(t *testing.T) {
	ctx := context.Background()

	t.Run("requires the skill product", func(t *testing.T) {
		f := newInterviewFixture()
		f.userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{ID: "user-1"}, nil)

		session, err := f.uc.StartAssessment(ctx, "user-1", "Go and SQL engineer", "")

		assert.Nil(t, session)
		assert.ErrorContains(t, err, "require the skill product")
	})

	t.Run("empty resume is rejected", func(t *testing.T) {
		f := newInterviewFixture()
		f.userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{
			ID:                "user-1",
			PurchasedProducts: []string{domain.ProductSkill},
		}, nil)

		session, err := f.uc.StartAssessment(ctx, "user-1", "   ", "")

		assert.Nil(t, session)
		assert.ErrorContains(t, err, "must not be empty")
	})

	t.Run("seeds questions and marks the upload step", func(t *testing.T) {
		f := newInterviewFixture()
		f.userRepo.On("GetByID", ctx, "user-1").Return(&domain.User{
			ID:                "user-1",
			PurchasedProducts: []string{domain.ProductCombo},
		}, nil)
		f.sessionRepo.On("Create", ctx, mock.AnythingOfType("*domain.AssessmentSession")).Return(nil)
		f.sessionRepo.On("UpdateData", ctx, mock.AnythingOfType("string"), mock.AnythingOfType("domain.SessionData")).Return(nil)
		f.progressRepo.On("MarkStep", ctx, "user-1", domain.StepDocumentsUploaded).Return(nil)

		session, err := f.uc.StartAssessment(ctx, "user-1", "Senior Go engineer, strong PostgreSQL and Docker", "resumes/user-1/cv.pdf")

		assert.NoError(t, err)
		assert.GreaterOrEqual(t, len(session.Data.Questions), 3)
		assert.Contains(t, session.Data.ResumeText, "Senior Go engineer")
		f.progressRepo.AssertExpectations(t)
	})
}

func TestSubmitMCQ(t *testing.T) {
	ctx := context.Background()

	questions := []domain.MCQQuestion{
		{ID: "q1", Answer: 2},
		{ID: "q2", Answer: 1},
		{ID: "q3", Answer: 0},
		{ID: "q4", Answer: 1},
	}

	session := func() *domain.AssessmentSession {
		return &domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
			Data:      domain.SessionData{Questions: questions},
		}
	}

	t.Run("scores the answer sheet out of 100", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(session())
		f.sessionRepo.On("UpdateData", ctx, "sess-1", mock.AnythingOfType("domain.SessionData")).Return(nil)
		f.progressRepo.On("MarkStep", ctx, "user-1", domain.StepMCQTest).Return(nil)

		eval, err := f.uc.SubmitMCQ(ctx, "user-1", domain.MCQSubmission{
			SessionID: "sess-1",
			Answers:   map[string]int{"q1": 2, "q2": 1, "q3": 1, "q4": 0},
		})

		assert.NoError(t, err)
		assert.Equal(t, 50.0, *eval.MCQScore)
	})

	t.Run("unanswered questions count as wrong", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(session())
		f.sessionRepo.On("UpdateData", ctx, "sess-1", mock.AnythingOfType("domain.SessionData")).Return(nil)
		f.progressRepo.On("MarkStep", ctx, "user-1", domain.StepMCQTest).Return(nil)

		eval, err := f.uc.SubmitMCQ(ctx, "user-1", domain.MCQSubmission{
			SessionID: "sess-1",
			Answers:   map[string]int{"q1": 2},
		})

		assert.NoError(t, err)
		assert.Equal(t, 25.0, *eval.MCQScore)
	})

	t.Run("another user's session is forbidden", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(session())

		eval, err := f.uc.SubmitMCQ(ctx, "user-2", domain.MCQSubmission{
			SessionID: "sess-1",
			Answers:   map[string]int{"q1": 2},
		})

		assert.Nil(t, eval)
		assert.ErrorContains(t, err, "belongs to another user")
	})

	t.Run("session without questions is rejected", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		})

		eval, err := f.uc.SubmitMCQ(ctx, "user-1", domain.MCQSubmission{
			SessionID: "sess-1",
			Answers:   map[string]int{"q1": 2},
		})

		assert.Nil(t, eval)
		assert.ErrorContains(t, err, "no generated questions")
	})
}

func TestSubmitCoding(t *testing.T) {
	ctx := context.Background()

	session := func() *domain.AssessmentSession {
		return &domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		}
	}

	t.Run("trivial snippets are rejected", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(session())

		eval, err := f.uc.SubmitCoding(ctx, "user-1", domain.CodingSubmission{
			SessionID: "sess-1",
			Language:  "go",
			Code:      "x := 1",
		})

		assert.Nil(t, eval)
		assert.ErrorContains(t, err, "too short")
	})

	t.Run("real submission is scored and marks the step", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(session())
		f.sessionRepo.On("UpdateData", ctx, "sess-1", mock.AnythingOfType("domain.SessionData")).Return(nil)
		f.progressRepo.On("MarkStep", ctx, "user-1", domain.StepCodingChallenge).Return(nil)

		eval, err := f.uc.SubmitCoding(ctx, "user-1", domain.CodingSubmission{
			SessionID: "sess-1",
			Language:  "go",
			Code:      "func sum(xs []int) int {\n\ttotal := 0\n\tfor _, x := range xs {\n\t\ttotal += x\n\t}\n\treturn total\n}",
		})

		assert.NoError(t, err)
		assert.Equal(t, 90.0, *eval.CodingScore)
		f.progressRepo.AssertExpectations(t)
	})
}

func TestGetEvaluation(t *testing.T) {
	ctx := context.Background()

	t.Run("skills come back in stable order", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
			Data: domain.SessionData{
				ResumeText: "Python and Go engineer, Docker deployments on AWS",
				Evaluation: &domain.Evaluation{SessionID: "sess-1"},
			},
		})

		eval, err := f.uc.GetEvaluation(ctx, "user-1", "sess-1")

		assert.NoError(t, err)
		assert.Equal(t, []string{"AWS", "Docker", "Go", "Python"}, eval.Skills)
	})

	t.Run("no evaluation yet is not found", func(t *testing.T) {
		f := newInterviewFixture()
		f.stubSession(&domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		})

		eval, err := f.uc.GetEvaluation(ctx, "user-1", "sess-1")

		assert.Nil(t, eval)
		assert.ErrorContains(t, err, "No evaluation available")
	})
}

func TestIssueCertificateFromInterview(t *testing.T) {
	ctx := context.Background()

	t.Run("blocked until all steps are done", func(t *testing.T) {
		f := newInterviewFixture()
		f.progressRepo.On("GetByUserID", ctx, "user-1").Return(&domain.InterviewProgress{
			UserID:         "user-1",
			VoiceInterview: true,
			MCQTest:        true,
		}, nil)

		cert, err := f.uc.IssueCertificate(ctx, "user-1")

		assert.Nil(t, cert)
		assert.ErrorContains(t, err, "Complete all interview steps")
	})

	t.Run("issues with skills from the latest resume", func(t *testing.T) {
		f := newInterviewFixture()
		f.progressRepo.On("GetByUserID", ctx, "user-1").Return(&domain.InterviewProgress{
			UserID:          "user-1",
			VoiceInterview:  true,
			MCQTest:         true,
			CodingChallenge: true,
		}, nil)
		f.sessionRepo.On("ListByUserID", ctx, "user-1").Return([]domain.AssessmentSession{
			{SessionID: "sess-2", UserID: "user-1", Data: domain.SessionData{ResumeText: "Go engineer"}},
		}, nil)
		f.certRepo.On("GetByUserAndProduct", ctx, "user-1", domain.ProductSkill).
			Return(nil, apperror.NotFound("Certificate not found"))
		f.certRepo.On("Create", ctx, mock.MatchedBy(func(c *domain.Certificate) bool {
			return c.ProductID == domain.ProductSkill && len(c.Skills) == 1 && c.Skills[0] == "Go"
		})).Return(nil)

		cert, err := f.uc.IssueCertificate(ctx, "user-1")

		assert.NoError(t, err)
		assert.Equal(t, domain.ProductSkill, cert.ProductID)
		f.certRepo.AssertExpectations(t)
	})
}
