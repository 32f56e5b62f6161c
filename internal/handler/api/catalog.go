package api

import (
	"net/http"

	resdto "restaurant-pos/internal/handler/dto/response"
	"restaurant-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only menu the register works from.
type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalogQueries: catalogQueries}
}

// @Summary Sellable products
// @Description Active products grouped by category order, for the register
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /catalog/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	views, err := h.catalogQueries.ListProducts(c.Request.Context(), true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductViews(views))
}

// @Summary Categories
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /catalog/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalogQueries.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromCategoryViews(views))
}
