package api

import (
	"errors"
	"net/http"

	resdto "pistachiohut/internal/handler/dto/response"
	"pistachiohut/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary List products
// @Description List catalog products, optionally filtered and sorted
// @Tags catalog
// @Produce json
// @Param q query string false "Case-insensitive substring match against name or description"
// @Param sort query string false "Sort key: price, popularity, rating, category, recommended"
// @Param order query string false "Sort order: asc or desc"
// @Success 200 {array} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	key, err := queries.NewSortKey(c.Query("sort"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort key",
		})
		return
	}
	order, err := queries.NewOrder(c.Query("order"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid sort order",
		})
		return
	}

	products, err := h.catalogQueries.Search(c.Request.Context(), c.Query("q"), key, order)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCatalogUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Catalog temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductList(products))
}

// @Summary Get product
// @Description Get a single product with its aggregated rating
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	product, err := h.catalogQueries.GetProduct(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, queries.ErrCatalogUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Catalog temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromProductView(product))
}
