package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/internal/validation"
)

// JobHandler handles job posting endpoints
type JobHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(services *service.Services, log zerolog.Logger) *JobHandler {
	return &JobHandler{
		services: services,
		log:      log.With().Str("handler", "job").Logger(),
	}
}

// Create handles POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateJob(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	job, err := h.services.Job.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Job not found")
		return
	}

	c.JSON(http.StatusOK, job)
}

// List handles GET /api/jobs with an optional status filter
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.services.Job.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.services.Job.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, err, "Job not found")
		return
	}

	c.JSON(http.StatusOK, job)
}

// Update handles PUT /api/jobs/:id as a full replace of creation fields
func (h *JobHandler) Update(c *gin.Context) {
	var req models.JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateJob(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	job, err := h.services.Job.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, h.log, err, "Job not found")
		return
	}

	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.services.Job.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, h.log, err, "Job not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
