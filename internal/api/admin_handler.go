package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/internal/validation"
)

// AdminHandler handles admin account, analytics and chatbot endpoints
type AdminHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(services *service.Services, log zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		services: services,
		log:      log.With().Str("handler", "admin").Logger(),
	}
}

// Register handles POST /api/admin/register
func (h *AdminHandler) Register(c *gin.Context) {
	var creds models.AdminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCredentials(&creds); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	admin, err := h.services.Admin.Register(c.Request.Context(), &creds)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Admin registered successfully",
		"admin_id": admin.ID,
	})
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var creds models.AdminCredentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCredentials(&creds); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	admin, err := h.services.Admin.Login(c.Request.Context(), &creds)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful",
		"admin_id": admin.ID,
		"username": admin.Username,
	})
}

// Analytics handles GET /api/admin/analytics
func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.services.Admin.Analytics(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, analytics)
}

// Chat handles POST /api/chat
func (h *AdminHandler) Chat(c *gin.Context) {
	var msg models.ChatMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if msg.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	response := h.services.Chat.Chat(c.Request.Context(), msg.Message)
	c.JSON(http.StatusOK, gin.H{"response": response})
}
