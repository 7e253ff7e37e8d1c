package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	providerName       string
	providerConfigured bool
}

func NewHealthHandler(providerName string, providerConfigured bool) *HealthHandler {
	return &HealthHandler{
		providerName:       providerName,
		providerConfigured: providerConfigured,
	}
}

// Root returns the plain text liveness message
func Root(c *gin.Context) {
	c.String(http.StatusOK, livenessMessage)
}

// HealthCheck returns the health status of the API
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"provider": gin.H{
			"name":       h.providerName,
			"configured": h.providerConfigured,
		},
	})
}
