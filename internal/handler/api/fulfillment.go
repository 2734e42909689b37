package api

import (
	"errors"
	"net/http"

	resdto "pistachiohut/internal/handler/dto/response"
	"pistachiohut/internal/usecase/commands"
	"pistachiohut/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FulfillmentHandler struct {
	fulfillmentCommands commands.FulfillmentCommands
	fulfillmentQueries  queries.FulfillmentQueries
}

func NewFulfillmentHandler(fulfillmentCommands commands.FulfillmentCommands, fulfillmentQueries queries.FulfillmentQueries) *FulfillmentHandler {
	return &FulfillmentHandler{
		fulfillmentCommands: fulfillmentCommands,
		fulfillmentQueries:  fulfillmentQueries,
	}
}

// @Summary List deliveries
// @Description List all delivery records for the back office
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.DeliveryResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/deliveries [get]
func (h *FulfillmentHandler) ListDeliveries(c *gin.Context) {
	deliveries, err := h.fulfillmentQueries.ListDeliveries(c.Request.Context())
	if err != nil {
		abortOnStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDeliveryList(deliveries))
}

// @Summary Complete delivery
// @Description Mark a pending delivery as completed and return the refreshed list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Delivery ID"
// @Success 200 {array} resdto.DeliveryResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/deliveries/{id}/complete [patch]
func (h *FulfillmentHandler) CompleteDelivery(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid delivery ID format",
		})
		return
	}

	deliveries, err := h.fulfillmentCommands.CompleteDelivery(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDeliveryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Delivery not found",
			})
		case errors.Is(err, commands.ErrDeliveryConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Delivery already completed",
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

	c.JSON(http.StatusOK, resdto.FromDeliveryList(deliveries))
}
