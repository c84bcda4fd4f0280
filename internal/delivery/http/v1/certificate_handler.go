package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/config"
	"simplehire-backend/internal/delivery/http/middleware"
	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
)

type CertificateHandler struct {
	certUC domain.CertificateUsecase
}

func NewCertificateHandler(public *gin.RouterGroup, protected *gin.RouterGroup, certUC domain.CertificateUsecase, cfg *config.Config) {
	handler := &CertificateHandler{certUC: certUC}

	protected.GET("/certificates/me", handler.ListMine)

	// public lookup is unauthenticated and rate limited per IP
	lookupLimit := middleware.RateLimitMiddleware(middleware.CertLookupRateLimitConfig(cfg))
	public.GET("/certificates/public/:certificateNumber", lookupLimit, handler.PublicLookup)
	public.GET("/certificates/verify/:certificateNumber", lookupLimit, handler.PublicLookup)
}

// ListMine godoc
// @Summary      My Certificates
// @Description  List certificates issued to the current user
// @Tags         certificates
// @Produce      json
// @Success      200  {object}  response.Response
// @Security     BearerAuth
// @Router       /certificates/me [get]
func (h *CertificateHandler) ListMine(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	certs, err := h.certUC.ListMine(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificates", certs)
}

// PublicLookup godoc
// @Summary      Public Certificate Lookup
// @Description  Verify a certificate by number. Unknown or revoked certificates return valid=false.
// @Tags         certificates
// @Produce      json
// @Param        certificateNumber  path      string  true  "Certificate number"
// @Success      200                {object}  response.Response
// @Router       /certificates/public/{certificateNumber} [get]
func (h *CertificateHandler) PublicLookup(c *gin.Context) {
	number := c.Param("certificateNumber")

	cert, err := h.certUC.PublicLookup(c.Request.Context(), number)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certificate lookup", cert)
}
