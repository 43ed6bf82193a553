package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/models"
	"github.com/mastersolis/marketing-api/internal/service"
	"github.com/mastersolis/marketing-api/internal/validation"
)

// BlogHandler handles blog post endpoints
type BlogHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(services *service.Services, log zerolog.Logger) *BlogHandler {
	return &BlogHandler{
		services: services,
		log:      log.With().Str("handler", "blog").Logger(),
	}
}

// Create handles POST /api/blog
func (h *BlogHandler) Create(c *gin.Context) {
	var req models.BlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateBlog(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": validation.First(errs), "details": errs})
		return
	}

	post, err := h.services.Blog.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, h.log, err, "Blog post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

// List handles GET /api/blog with an optional published filter
func (h *BlogHandler) List(c *gin.Context) {
	published, ok := boolQuery(c, "published")
	if !ok {
		return
	}

	posts, err := h.services.Blog.List(c.Request.Context(), published)
	if err != nil {
		respondError(c, h.log, err, "")
		return
	}

	c.JSON(http.StatusOK, posts)
}

// Get handles GET /api/blog/:slug
func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.services.Blog.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err, "Blog post not found")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Summarize handles POST /api/blog/:slug/summarize
func (h *BlogHandler) Summarize(c *gin.Context) {
	summary, err := h.services.Blog.Summarize(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.log, err, "Blog post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// Delete handles DELETE /api/blog/:slug
func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.services.Blog.DeleteBySlug(c.Request.Context(), c.Param("slug")); err != nil {
		respondError(c, h.log, err, "Blog post not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted successfully"})
}

// boolQuery parses an optional boolean query parameter. A malformed value
// writes a 400 response and reports ok=false.
func boolQuery(c *gin.Context, name string) (*bool, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be true or false"})
		return nil, false
	}
	return &value, true
}
