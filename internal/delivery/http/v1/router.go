package v1

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"simplehire-backend/config"
	"simplehire-backend/internal/delivery/http/middleware"
	"simplehire-backend/internal/domain"
	"simplehire-backend/internal/usecase"
	"simplehire-backend/pkg/auth"
	"simplehire-backend/pkg/storage"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	UserUC        domain.UserUsecase
	PaymentUC     domain.PaymentUsecase
	InterviewUC   domain.InterviewUsecase
	IDVerifyUC    domain.IDVerificationUsecase
	ReferenceUC   domain.ReferenceUsecase
	CertificateUC domain.CertificateUsecase
	SessionUC     domain.SessionUsecase
	ProctoringUC  usecase.ProctoringUsecase
	HealthUC      usecase.HealthUsecase
	TokenManager  *auth.TokenManager
	StorageClient *storage.Client
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(deps.Config)))
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.TokenManager))

	admin := api.Group("/admin")
	admin.Use(middleware.AdminMiddleware(deps.Config))

	NewHealthHandler(api, deps.HealthUC)
	NewProductHandler(api)
	NewAuthHandler(api, protected, deps.AuthUC, deps.Config)
	NewUserHandler(protected, deps.UserUC)
	NewPaymentHandler(protected, admin, deps.PaymentUC)
	NewInterviewHandler(protected, deps.InterviewUC, deps.StorageClient)
	NewIDVerificationHandler(protected, admin, deps.IDVerifyUC, deps.StorageClient)
	NewReferenceHandler(api, protected, admin, deps.ReferenceUC)
	NewCertificateHandler(api, protected, deps.CertificateUC, deps.Config)
	NewSessionHandler(protected, admin, deps.SessionUC, deps.Config)
	NewProctoringHandler(protected, deps.ProctoringUC)

	return r
}
