package handler

import (
	"errors"
	"net/http"

	"aquaseal/internal/model"
	"aquaseal/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactHandler handles contact form HTTP requests
type ContactHandler struct {
	contacts *service.ContactService
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contacts *service.ContactService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.contacts.Submit(c.Request.Context(), &req); err != nil {
		var missing *model.MissingFieldsError
		if errors.As(err, &missing) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":  "Missing required fields",
				"fields": missing.Fields,
			})
			return
		}
		if errors.Is(err, service.ErrDeliveryFailed) {
			c.JSON(http.StatusBadGateway, model.ContactResponse{
				Success: false,
				Message: "Could not send your message right now, please try again",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Submission failed: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, model.ContactResponse{
		Success: true,
		Message: "Thank you, we will get back to you shortly",
	})
}
