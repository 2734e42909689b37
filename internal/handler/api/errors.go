package api

import (
	"net/http"

	"pistachiohut/internal/infra"

	"github.com/gin-gonic/gin"
)

// abortOnStoreError maps read-side store failures: an unreachable backing
// store is a 503, anything else a 500.
func abortOnStoreError(c *gin.Context, err error) {
	if infra.IsKind(err, infra.KindDBFailure) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Service temporarily unavailable",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error",
	})
}
