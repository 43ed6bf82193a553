package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/internal/validation"
)

// ShowcaseHandler handles testimonial, project and case study endpoints
type ShowcaseHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewShowcaseHandler creates a new ShowcaseHandler
func NewShowcaseHandler(services *service.Services, log zerolog.Logger) *ShowcaseHandler {
	return &ShowcaseHandler{
		services: services,
		log:      log.With().Str("handler", "showcase").Logger(),
	}
}

// CreateTestimonial handles POST /api/testimonials
func (h *ShowcaseHandler) CreateTestimonial(c *gin.Context) {
	var req models.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateTestimonial(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	testimonial, err := h.services.Showcase.CreateTestimonial(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, testimonial)
}

// ListTestimonials handles GET /api/testimonials with an optional
// featured filter
func (h *ShowcaseHandler) ListTestimonials(c *gin.Context) {
	featured, ok := boolQuery(c, "featured")
	if !ok {
		return
	}

	testimonials, err := h.services.Showcase.ListTestimonials(c.Request.Context(), featured)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, testimonials)
}

// GenerateTestimonial handles POST /api/testimonials/generate
func (h *ShowcaseHandler) GenerateTestimonial(c *gin.Context) {
	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	generated := h.services.Showcase.GenerateTestimonial(c.Request.Context(), &req)
	c.JSON(http.StatusOK, gin.H{"generated_testimonial": generated})
}

// CreateProject handles POST /api/projects
func (h *ShowcaseHandler) CreateProject(c *gin.Context) {
	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateProject(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	project, err := h.services.Showcase.CreateProject(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, project)
}

// ListProjects handles GET /api/projects with an optional category filter
func (h *ShowcaseHandler) ListProjects(c *gin.Context) {
	projects, err := h.services.Showcase.ListProjects(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// SearchProjects handles GET /api/projects/search?tech=...
func (h *ShowcaseHandler) SearchProjects(c *gin.Context) {
	projects, err := h.services.Showcase.SearchProjects(c.Request.Context(), c.Query("tech"))
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateCaseStudy handles POST /api/case-studies
func (h *ShowcaseHandler) CreateCaseStudy(c *gin.Context) {
	var req models.CaseStudyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCaseStudy(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	study, err := h.services.Showcase.CreateCaseStudy(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, study)
}

// ListCaseStudies handles GET /api/case-studies
func (h *ShowcaseHandler) ListCaseStudies(c *gin.Context) {
	studies, err := h.services.Showcase.ListCaseStudies(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, studies)
}
