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

type RefundHandler struct {
	refundCommands commands.RefundCommands
	refundQueries  queries.RefundQueries
}

func NewRefundHandler(refundCommands commands.RefundCommands, refundQueries queries.RefundQueries) *RefundHandler {
	return &RefundHandler{
		refundCommands: refundCommands,
		refundQueries:  refundQueries,
	}
}

// @Summary List refund requests
// @Description List all refund requests for the back office
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.RefundResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/refunds [get]
func (h *RefundHandler) ListRefunds(c *gin.Context) {
	refunds, err := h.refundQueries.ListRefunds(c.Request.Context())
	if err != nil {
		abortOnStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundList(refunds))
}

// @Summary Accept refund request
// @Description Accept a pending refund request and return the refreshed list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {array} resdto.RefundResponse
// @Success 207 {array} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/refunds/{orderId}/accept [post]
func (h *RefundHandler) Accept(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	outcome, refunds, err := h.refundCommands.Accept(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	// Partial success is its own status: the request is resolved even though
	// the issuance hand-off failed.
	status := http.StatusOK
	if outcome == commands.RefundAcceptedIssueFailed {
		status = http.StatusMultiStatus
	}
	c.JSON(status, resdto.FromRefundList(refunds))
}

// @Summary Reject refund request
// @Description Reject a pending refund request and return the refreshed list
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {array} resdto.RefundResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /admin/refunds/{orderId}/reject [post]
func (h *RefundHandler) Reject(c *gin.Context) {
	orderID, ok := h.orderID(c)
	if !ok {
		return
	}

	refunds, err := h.refundCommands.Reject(c.Request.Context(), orderID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRefundList(refunds))
}

func (h *RefundHandler) orderID(c *gin.Context) (uuid.UUID, bool) {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid order ID format",
		})
		return uuid.Nil, false
	}
	return orderID, true
}

func (h *RefundHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrRefundNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Refund request not found",
		})
	case errors.Is(err, commands.ErrRefundConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Refund request already resolved",
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
}
