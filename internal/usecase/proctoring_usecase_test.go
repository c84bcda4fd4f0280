package usecase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/proctoring"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/apperror"
	"simplehire-backend/pkg/docverify"
)

func strPtr(s string) *string { return &s }

func TestVerifyIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("no verification record yet", func(t *testing.T) {
		idRepo := new(MockIDVerificationRepo)
		idRepo.On("GetByUserID", ctx, "user-1").Return(nil, apperror.NotFound("Verification record not found"))

		uc := usecase.NewProctoringUsecase(idRepo, new(MockSessionRepo), docverify.NewClient("", ""))

		check, err := uc.VerifyIdentity(ctx, "user-1", "https://cdn.example.com/selfie.jpg")

		assert.Nil(t, check)
		assert.ErrorContains(t, err, "Upload an ID document")
	})

	t.Run("record without an ID document", func(t *testing.T) {
		idRepo := new(MockIDVerificationRepo)
		idRepo.On("GetByUserID", ctx, "user-1").Return(&domain.IDVerification{
			UserID:    "user-1",
			Status:    domain.IDStatusInProgress,
			SelfieURL: strPtr("https://cdn.example.com/selfie.jpg"),
		}, nil)

		uc := usecase.NewProctoringUsecase(idRepo, new(MockSessionRepo), docverify.NewClient("", ""))

		check, err := uc.VerifyIdentity(ctx, "user-1", "https://cdn.example.com/selfie.jpg")

		assert.Nil(t, check)
		assert.ErrorContains(t, err, "Upload an ID document")
	})

	t.Run("unconfigured provider queues manual review", func(t *testing.T) {
		idRepo := new(MockIDVerificationRepo)
		idRepo.On("GetByUserID", ctx, "user-1").Return(&domain.IDVerification{
			UserID:        "user-1",
			Status:        domain.IDStatusInProgress,
			IDDocumentURL: strPtr("https://cdn.example.com/id.jpg"),
		}, nil)

		uc := usecase.NewProctoringUsecase(idRepo, new(MockSessionRepo), docverify.NewClient("", ""))

		check, err := uc.VerifyIdentity(ctx, "user-1", "https://cdn.example.com/selfie.jpg")

		assert.NoError(t, err)
		assert.False(t, check.Verified)
		assert.Contains(t, check.Reason, "manual review")
	})

	t.Run("provider match verifies and forwards the stored document", func(t *testing.T) {
		var gotReq docverify.FaceMatchRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
			json.NewEncoder(w).Encode(docverify.FaceMatchResult{Match: true, Score: 0.93, DocumentOK: true})
		}))
		defer server.Close()

		idRepo := new(MockIDVerificationRepo)
		idRepo.On("GetByUserID", ctx, "user-1").Return(&domain.IDVerification{
			UserID:        "user-1",
			Status:        domain.IDStatusInProgress,
			IDDocumentURL: strPtr("https://cdn.example.com/id.jpg"),
		}, nil)

		uc := usecase.NewProctoringUsecase(idRepo, new(MockSessionRepo), docverify.NewClient(server.URL, "test-key"))

		check, err := uc.VerifyIdentity(ctx, "user-1", "https://cdn.example.com/selfie.jpg")

		assert.NoError(t, err)
		assert.True(t, check.Verified)
		assert.Equal(t, 0.93, check.Score)
		assert.Equal(t, "https://cdn.example.com/id.jpg", gotReq.IDDocumentURL)
		assert.Equal(t, "https://cdn.example.com/selfie.jpg", gotReq.SelfieURL)
	})

	t.Run("unreachable provider queues manual review", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		idRepo := new(MockIDVerificationRepo)
		idRepo.On("GetByUserID", ctx, "user-1").Return(&domain.IDVerification{
			UserID:        "user-1",
			Status:        domain.IDStatusInProgress,
			IDDocumentURL: strPtr("https://cdn.example.com/id.jpg"),
		}, nil)

		uc := usecase.NewProctoringUsecase(idRepo, new(MockSessionRepo), docverify.NewClient(server.URL, "test-key"))

		check, err := uc.VerifyIdentity(ctx, "user-1", "https://cdn.example.com/selfie.jpg")

		assert.NoError(t, err)
		assert.False(t, check.Verified)
		assert.Contains(t, check.Reason, "manual review")
	})
}

func TestMonitor(t *testing.T) {
	ctx := context.Background()

	activeSession := func() *domain.AssessmentSession {
		return &domain.AssessmentSession{
			SessionID: "sess-1",
			UserID:    "user-1",
			Status:    domain.SessionStatusActive,
		}
	}

	t.Run("empty batch is rejected", func(t *testing.T) {
		uc := usecase.NewProctoringUsecase(new(MockIDVerificationRepo), new(MockSessionRepo), docverify.NewClient("", ""))

		report, err := uc.Monitor(ctx, "user-1", "sess-1", nil)

		assert.Nil(t, report)
		assert.ErrorContains(t, err, "At least one frame")
	})

	t.Run("another user's session is forbidden", func(t *testing.T) {
		sessionRepo := new(MockSessionRepo)
		sessionRepo.On("Get", ctx, "sess-1").Return(activeSession(), nil)

		uc := usecase.NewProctoringUsecase(new(MockIDVerificationRepo), sessionRepo, docverify.NewClient("", ""))

		report, err := uc.Monitor(ctx, "user-2", "sess-1", []proctoring.Frame{
			{FaceCount: 1, FaceMatchScore: 0.95, MotionScore: 0.5, GazeOnScreen: true},
		})

		assert.Nil(t, report)
		assert.ErrorContains(t, err, "belongs to another user")
	})

	t.Run("compliant frames pass", func(t *testing.T) {
		sessionRepo := new(MockSessionRepo)
		sessionRepo.On("Get", ctx, "sess-1").Return(activeSession(), nil)

		uc := usecase.NewProctoringUsecase(new(MockIDVerificationRepo), sessionRepo, docverify.NewClient("", ""))

		report, err := uc.Monitor(ctx, "user-1", "sess-1", []proctoring.Frame{
			{FaceCount: 1, FaceMatchScore: 0.95, MotionScore: 0.5, GazeOnScreen: true},
			{FaceCount: 1, FaceMatchScore: 0.9, MotionScore: 0.4, GazeOnScreen: true},
		})

		assert.NoError(t, err)
		assert.True(t, report.Passed)
		assert.Equal(t, 2, report.FrameCount)
		assert.Empty(t, report.Violations)
	})

	t.Run("violating frame fails the batch", func(t *testing.T) {
		sessionRepo := new(MockSessionRepo)
		sessionRepo.On("Get", ctx, "sess-1").Return(activeSession(), nil)

		uc := usecase.NewProctoringUsecase(new(MockIDVerificationRepo), sessionRepo, docverify.NewClient("", ""))

		report, err := uc.Monitor(ctx, "user-1", "sess-1", []proctoring.Frame{
			{FaceCount: 1, FaceMatchScore: 0.95, MotionScore: 0.5, GazeOnScreen: true},
			{FaceCount: 2, FaceMatchScore: 0.95, MotionScore: 0.5, GazeOnScreen: true},
		})

		assert.NoError(t, err)
		assert.False(t, report.Passed)
		assert.NotEmpty(t, report.Violations)
	})
}
