package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"simplehire-backend/config"
	_ "simplehire-backend/docs" // Important for Swagger
	v1 "simplehire-backend/internal/delivery/http/v1"
	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/repository/postgres"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/audit"
	"simplehire-backend/pkg/auth"
	"simplehire-backend/pkg/database"
	"simplehire-backend/pkg/docverify"
	"simplehire-backend/pkg/email"
	"simplehire-backend/pkg/logger"
	"simplehire-backend/pkg/payments"
	"simplehire-backend/pkg/redis"
	"simplehire-backend/pkg/storage"
	"simplehire-backend/pkg/validation"
	"simplehire-backend/pkg/voice"
)

// @title           Simplehire Backend API
// @version         1.0
// @description     Candidate verification backend using Clean Architecture.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Loggers
	logger.Init()
	logger.Log.Info("Starting simplehire backend", "port", cfg.Port)
	auditLog := audit.Init("simplehire-backend")
	defer auditLog.Sync()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (optional; rate limiting and refresh tokens degrade without it)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, falling back to in-memory stores", "error", err)
		}
		defer redis.Close()
	}

	// 5. Setup Object Storage
	storageClient, err := storage.NewClient(context.Background(), cfg)
	if err != nil {
		logger.Log.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}

	// 6. Setup External Services
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - reference outreach will be unavailable")
	}
	stripeProvider := payments.NewStripeProvider(cfg.StripeSecretKey)
	if !stripeProvider.IsConfigured() {
		logger.Log.Warn("Stripe not configured - purchases will fail")
	}
	docVerifyClient := docverify.NewClient(cfg.DocVerifyURL, cfg.DocVerifyAPIKey)
	voiceClient := voice.NewClient(cfg.VoiceAgentURL, cfg.VoiceAgentKey, cfg.VoiceAgentID)

	// 7. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	progressRepo := postgres.NewProgressRepository(dbPool)
	idVerifyRepo := postgres.NewIDVerificationRepository(dbPool)
	referenceRepo := postgres.NewReferenceRepository(dbPool)
	sessionRepo := postgres.NewSessionRepository(dbPool)
	certificateRepo := postgres.NewCertificateRepository(dbPool)
	paymentRepo := postgres.NewPaymentRepository(dbPool)

	// 8. Setup Auth
	tokenManager := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	refreshStore := auth.NewRefreshStore(redis.Client(), cfg.RefreshTokenTTL)

	// 9. Setup UseCases
	authUC := usecase.NewAuthUsecase(userRepo, tokenManager, refreshStore, cfg.GoogleTokenInfoURL)
	userUC := usecase.NewUserUsecase(userRepo, progressRepo, idVerifyRepo, referenceRepo)
	paymentUC := usecase.NewPaymentUsecase(paymentRepo, userRepo, stripeProvider)
	sessionUC := usecase.NewSessionUsecase(sessionRepo)
	certificateUC := usecase.NewCertificateUsecase(certificateRepo, userRepo)
	interviewUC := usecase.NewInterviewUsecase(sessionUC, sessionRepo, progressRepo, userRepo, certificateUC, voiceClient)
	idVerifyUC := usecase.NewIDVerificationUsecase(idVerifyRepo, userRepo, docVerifyClient)
	referenceUC := usecase.NewReferenceUsecase(referenceRepo, userRepo, emailService, cfg.FrontendURL)
	proctoringUC := usecase.NewProctoringUsecase(idVerifyRepo, sessionRepo, docVerifyClient)
	healthUC := usecase.NewHealthUsecase(dbPool, storageClient, stripeProvider, emailService)

	// 10. Register custom validators on gin's binding engine
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 11. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:        authUC,
		UserUC:        userUC,
		PaymentUC:     paymentUC,
		InterviewUC:   interviewUC,
		IDVerifyUC:    idVerifyUC,
		ReferenceUC:   referenceUC,
		CertificateUC: certificateUC,
		SessionUC:     sessionUC,
		ProctoringUC:  proctoringUC,
		HealthUC:      healthUC,
		TokenManager:  tokenManager,
		StorageClient: storageClient,
		Config:        cfg,
	})

	// 12. Background session cleanup
	cleanupCtx, cancelCleanup := context.WithCancel(context.Background())
	defer cancelCleanup()
	go runSessionCleanup(cleanupCtx, sessionUC, cfg)

	// 13. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")
	cancelCleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}

// runSessionCleanup periodically deletes active sessions idle past the
// configured maximum age.
func runSessionCleanup(ctx context.Context, sessionUC domain.SessionUsecase, cfg *config.Config) {
	ticker := time.NewTicker(cfg.SessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := sessionUC.CleanupOld(ctx, cfg.SessionMaxAge); err != nil {
				logger.Log.Error("Session cleanup failed", "error", err)
			}
		}
	}
}
