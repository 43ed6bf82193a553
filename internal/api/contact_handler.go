package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/internal/validation"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(services *service.Services, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		services: services,
		log:      log.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateContact(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	contact, err := h.services.Contact.Submit(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Contact submission not found")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// List handles GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	contacts, err := h.services.Contact.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, contacts)
}
