package audit

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventLoginSuccess        EventType = "login_success"
	EventLoginFailed         EventType = "login_failed"
	EventPaymentConfirmed    EventType = "payment_confirmed"
	EventPaymentDuplicate    EventType = "payment_duplicate_intent"
	EventEntitlementGranted  EventType = "entitlement_granted"
	EventVerificationStatus  EventType = "verification_status_change"
	EventCertificateIssued   EventType = "certificate_issued"
	EventCertificateLookup   EventType = "certificate_public_lookup"
	EventReferenceOutreach   EventType = "reference_email_sent"
	EventRateLimitTriggered  EventType = "rate_limit_triggered"
	EventSessionCleanup      EventType = "session_cleanup"
	EventProctoringViolation EventType = "proctoring_violation"
)

// Event is a structured audit record emitted for compliance-relevant actions
type Event struct {
	Timestamp time.Time              `json:"timestamp"`
	Service   string                 `json:"service"`
	Event     EventType              `json:"event"`
	UserID    string                 `json:"user_id,omitempty"`
	IP        string                 `json:"ip,omitempty"`
	RequestID string                 `json:"request_id,omitempty"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

// Logger provides structured audit logging backed by Zap
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
}

var defaultLogger *Logger

// Init initializes the audit logger with a production Zap config
func Init(serviceName string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddStacktrace(zapcore.ErrorLevel))
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	l := &Logger{
		zapLogger:   logger.With(zap.String("env", environment())),
		serviceName: serviceName,
	}
	defaultLogger = l
	return l
}

// Default returns the default audit logger, initializing a fallback if needed
func Default() *Logger {
	if defaultLogger == nil {
		return Init("simplehire-backend")
	}
	return defaultLogger
}

// Log emits an audit event
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("event", string(event.Event)),
		zap.Time("event_time", event.Timestamp),
	}
	if event.UserID != "" {
		fields = append(fields, zap.String("user_id", event.UserID))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		fields = append(fields, zap.Any("details", event.Details))
	}

	l.zapLogger.Info("audit", fields...)
}

// Sync flushes buffered log entries; call on shutdown
func (l *Logger) Sync() {
	_ = l.zapLogger.Sync()
}

func environment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
