package handlers

import (
	"net/http"

	"meetslot/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and the last backend health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Hi, I'm meetslot",
		"backends": utils.GetHealthStatus(),
	})
}
