package api

import (
	"errors"
	"net/http"

	reqdto "pistachiohut/internal/handler/dto/request"
	resdto "pistachiohut/internal/handler/dto/response"
	"pistachiohut/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DiscountHandler struct {
	discountCommands commands.DiscountCommands
}

func NewDiscountHandler(discountCommands commands.DiscountCommands) *DiscountHandler {
	return &DiscountHandler{
		discountCommands: discountCommands,
	}
}

// @Summary Set discounted price
// @Description Apply a price override and notify wishlist subscribers
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.SetDiscountRequest true "Discount request"
// @Success 200 {object} resdto.DiscountResponse
// @Success 207 {object} resdto.DiscountResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/products/{id}/discount [patch]
func (h *DiscountHandler) SetDiscountedPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid product ID format",
		})
		return
	}

	var req reqdto.SetDiscountRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	outcome, err := h.discountCommands.SetDiscountedPrice(c.Request.Context(), id, req.PriceCents)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Discount price must be positive",
			})
		case errors.Is(err, commands.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Product not found",
			})
		case errors.Is(err, commands.ErrDatabaseOperationFailed):
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Service temporarily unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	// Partial success is its own status: the price is committed even though
	// the fan-out failed.
	status := http.StatusOK
	if outcome == commands.DiscountAppliedNotifyFailed {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resdto.FromDiscountOutcome(outcome))
}
