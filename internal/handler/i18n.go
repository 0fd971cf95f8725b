package handler

import (
	"net/http"

	"aquaseal/internal/service"

	"github.com/gin-gonic/gin"
)

// I18nHandler serves locale string bundles to the frontend
type I18nHandler struct {
	bundle *service.Bundle
}

// NewI18nHandler creates a new i18n handler
func NewI18nHandler(bundle *service.Bundle) *I18nHandler {
	return &I18nHandler{bundle: bundle}
}

// Messages handles GET /api/v1/i18n/:locale
func (h *I18nHandler) Messages(c *gin.Context) {
	locale := c.Param("locale")
	if !h.bundle.HasLocale(locale) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown locale: " + locale})
		return
	}

	c.JSON(http.StatusOK, h.bundle.Messages(locale))
}
