package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"simplehire-backend/internal/delivery/http/response"
	"simplehire-backend/internal/domain"
)

type ProductHandler struct{}

func NewProductHandler(public *gin.RouterGroup) {
	handler := &ProductHandler{}
	public.GET("/products", handler.List)
}

// List godoc
// @Summary      Product Catalog
// @Description  List the purchasable verification products
// @Tags         products
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, "Products", domain.Catalog)
}
