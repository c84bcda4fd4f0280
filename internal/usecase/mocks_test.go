package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"simplehire-backend/internal/domain"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *MockUserRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) ConfirmPurchase(ctx context.Context, payment *domain.Payment) error {
	return m.Called(ctx, payment).Error(0)
}
func (m *MockPaymentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Payment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) ListAll(ctx context.Context) ([]domain.Payment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateIntent(amount int64, currency, userID, productID string) (*domain.PaymentIntent, error) {
	args := m.Called(amount, currency, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}
func (m *MockPaymentProvider) GetIntent(intentID string) (*domain.PaymentIntent, error) {
	args := m.Called(intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}
func (m *MockPaymentProvider) IsConfigured() bool {
	return m.Called().Bool(0)
}

type MockSessionRepo struct {
	mock.Mock
}

func (m *MockSessionRepo) Create(ctx context.Context, session *domain.AssessmentSession) error {
	return m.Called(ctx, session).Error(0)
}
func (m *MockSessionRepo) Get(ctx context.Context, sessionID string) (*domain.AssessmentSession, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AssessmentSession), args.Error(1)
}
func (m *MockSessionRepo) ListByUserID(ctx context.Context, userID string) ([]domain.AssessmentSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssessmentSession), args.Error(1)
}
func (m *MockSessionRepo) UpdateData(ctx context.Context, sessionID string, data domain.SessionData) error {
	return m.Called(ctx, sessionID, data).Error(0)
}
func (m *MockSessionRepo) Touch(ctx context.Context, sessionID string, at time.Time) error {
	return m.Called(ctx, sessionID, at).Error(0)
}
func (m *MockSessionRepo) Expire(ctx context.Context, sessionID, reason string, at time.Time) error {
	return m.Called(ctx, sessionID, reason, at).Error(0)
}
func (m *MockSessionRepo) DeleteStaleActive(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockCertificateRepo struct {
	mock.Mock
}

func (m *MockCertificateRepo) Create(ctx context.Context, cert *domain.Certificate) error {
	return m.Called(ctx, cert).Error(0)
}
func (m *MockCertificateRepo) GetByNumber(ctx context.Context, number string) (*domain.Certificate, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}
func (m *MockCertificateRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Certificate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Certificate), args.Error(1)
}
func (m *MockCertificateRepo) GetByUserAndProduct(ctx context.Context, userID, productID string) (*domain.Certificate, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Certificate), args.Error(1)
}

type MockIDVerificationRepo struct {
	mock.Mock
}

func (m *MockIDVerificationRepo) Upsert(ctx context.Context, v *domain.IDVerification) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockIDVerificationRepo) GetByUserID(ctx context.Context, userID string) (*domain.IDVerification, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IDVerification), args.Error(1)
}
func (m *MockIDVerificationRepo) UpdateStatus(ctx context.Context, userID, status string, notes *string) error {
	return m.Called(ctx, userID, status, notes).Error(0)
}

type MockProgressRepo struct {
	mock.Mock
}

func (m *MockProgressRepo) GetByUserID(ctx context.Context, userID string) (*domain.InterviewProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InterviewProgress), args.Error(1)
}
func (m *MockProgressRepo) MarkStep(ctx context.Context, userID, step string) error {
	return m.Called(ctx, userID, step).Error(0)
}

type MockReferenceRepo struct {
	mock.Mock
}

func (m *MockReferenceRepo) Create(ctx context.Context, ref *domain.Reference) error {
	return m.Called(ctx, ref).Error(0)
}
func (m *MockReferenceRepo) GetByID(ctx context.Context, id string) (*domain.Reference, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}
func (m *MockReferenceRepo) GetByToken(ctx context.Context, token string) (*domain.Reference, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reference), args.Error(1)
}
func (m *MockReferenceRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Reference, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reference), args.Error(1)
}
func (m *MockReferenceRepo) UpdateStatus(ctx context.Context, id, status string, sentAt, responseAt *time.Time, notes *string) error {
	return m.Called(ctx, id, status, sentAt, responseAt, notes).Error(0)
}
func (m *MockReferenceRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
