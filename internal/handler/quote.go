package handler

import (
	"errors"
	"net/http"

	"aquaseal/internal/config"
	"aquaseal/internal/model"
	"aquaseal/internal/service"

	"github.com/gin-gonic/gin"
)

// QuoteHandler handles price calculator HTTP requests
type QuoteHandler struct {
	estimator *service.Estimator
	pricing   *config.PricingConfig
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(estimator *service.Estimator, pricing *config.PricingConfig) *QuoteHandler {
	return &QuoteHandler{
		estimator: estimator,
		pricing:   pricing,
	}
}

// Compute handles POST /api/v1/quote
func (h *QuoteHandler) Compute(c *gin.Context) {
	var req model.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.estimator.Quote(&req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownCategory) || errors.Is(err, service.ErrUnknownTier) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Quote failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Options handles GET /api/v1/quote/options - the calculator's input space
func (h *QuoteHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, model.QuoteOptions{
		Services:   model.ServiceCategories,
		Locations:  model.LocationTiers,
		Urgencies:  model.UrgencyTiers,
		AreaMinSqm: h.pricing.AreaMinSqm,
		AreaMaxSqm: h.pricing.AreaMaxSqm,
		Currency:   h.pricing.Currency,
	})
}
