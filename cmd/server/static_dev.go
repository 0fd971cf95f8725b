//go:build !embed
// +build !embed

package main

import (
	"net/http"
	"strings"

	"aquaseal/internal/logging"

	"github.com/gin-gonic/gin"
)

// setupStaticFiles configures static file serving for development (no embedding)
func setupStaticFiles(router *gin.Engine) {
	logging.Sugar.Infof("🔧 Serving frontend from local filesystem (development mode)")
	logging.Sugar.Infof("   Frontend dev server: cd web && npm run dev")

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Frontend is running separately",
			"dev_url": "http://localhost:3000",
		})
	})
}
