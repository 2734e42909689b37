package api

import (
	"context"
	"errors"
	"net/http"

	reqdto "pistachiohut/internal/handler/dto/request"
	"pistachiohut/internal/handler/middleware"
	"pistachiohut/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WishlistHandler struct {
	wishlistCommands commands.WishlistCommands
}

func NewWishlistHandler(wishlistCommands commands.WishlistCommands) *WishlistHandler {
	return &WishlistHandler{
		wishlistCommands: wishlistCommands,
	}
}

// @Summary Subscribe to a product
// @Description Add a product to the shopper's wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WishlistRequest true "Wishlist request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /wishlist [post]
func (h *WishlistHandler) Subscribe(c *gin.Context) {
	h.mutate(c, h.wishlistCommands.Subscribe)
}

// @Summary Unsubscribe from a product
// @Description Remove a product from the shopper's wishlist
// @Tags wishlist
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.WishlistRequest true "Wishlist request"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /wishlist [delete]
func (h *WishlistHandler) Unsubscribe(c *gin.Context) {
	h.mutate(c, h.wishlistCommands.Unsubscribe)
}

func (h *WishlistHandler) mutate(c *gin.Context, op func(ctx context.Context, userID, productID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.WishlistRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := op(c.Request.Context(), userID, req.ProductID); err != nil {
		switch {
		case errors.Is(err, commands.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
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

	c.Status(http.StatusNoContent)
}
