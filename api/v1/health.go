package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vodex-console/utils"
)

// HealthCheck handles the health check endpoint
func HealthCheck(c *gin.Context) {
	utils.Respond(c, http.StatusOK, "ok", gin.H{
		"service": "vodex-console-api",
		"version": "1.0.0",
	})
}
