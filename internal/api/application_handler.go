package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/internal/validation"
)

// ApplicationHandler handles job application endpoints
type ApplicationHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewApplicationHandler creates a new ApplicationHandler
func NewApplicationHandler(services *service.Services, log zerolog.Logger) *ApplicationHandler {
	return &ApplicationHandler{
		services: services,
		log:      log.With().Str("handler", "application").Logger(),
	}
}

// Submit handles POST /api/applications (multipart with a resume file)
func (h *ApplicationHandler) Submit(c *gin.Context) {
	req := models.ApplicationRequest{
		JobID:       c.PostForm("job_id"),
		JobTitle:    c.PostForm("job_title"),
		Name:        c.PostForm("name"),
		Email:       c.PostForm("email"),
		Phone:       c.PostForm("phone"),
		CoverLetter: c.PostForm("cover_letter"),
	}

	if errs := validation.ValidateApplication(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	header, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to open resume file"})
		return
	}
	defer file.Close()

	resume, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume file"})
		return
	}

	app, err := h.services.Application.Submit(c.Request.Context(), &req, header.Filename, resume)
	if err != nil {
		respondError(c, h.log, err, "Application not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":        "Application submitted successfully",
		"application_id": app.ID,
	})
}

// List handles GET /api/applications with optional job_id/status filters
func (h *ApplicationHandler) List(c *gin.Context) {
	apps, err := h.services.Application.List(c.Request.Context(), c.Query("job_id"), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, apps)
}

// Get handles GET /api/applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.services.Application.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Application not found")
		return
	}

	c.JSON(http.StatusOK, app)
}

// UpdateStatus handles PUT /api/applications/:id/status?status=...
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status parameter is required"})
		return
	}

	if err := h.services.Application.UpdateStatus(c.Request.Context(), c.Param("id"), status); err != nil {
		respondError(c, h.log, err, "Application not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully"})
}
