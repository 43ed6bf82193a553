package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mastersolis/marketing-api/internal/config"
	"github.com/mastersolis/marketing-api/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.CORS.AllowedOrigins))

	// Handlers
	contactHandler := NewContactHandler(services, log)
	jobHandler := NewJobHandler(services, log)
	applicationHandler := NewApplicationHandler(services, log)
	blogHandler := NewBlogHandler(services, log)
	showcaseHandler := NewShowcaseHandler(services, log)
	adminHandler := NewAdminHandler(services, log)

	// Health check
	router.GET("/health", healthCheck)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/", rootMessage)

		api.POST("/contact", contactHandler.Submit)
		api.GET("/contact", contactHandler.List)

		jobs := api.Group("/jobs")
		{
			jobs.POST("", jobHandler.Create)
			jobs.GET("", jobHandler.List)
			jobs.GET("/:id", jobHandler.Get)
			jobs.PUT("/:id", jobHandler.Update)
			jobs.DELETE("/:id", jobHandler.Delete)
		}

		applications := api.Group("/applications")
		{
			applications.POST("", applicationHandler.Submit)
			applications.GET("", applicationHandler.List)
			applications.GET("/:id", applicationHandler.Get)
			applications.PUT("/:id/status", applicationHandler.UpdateStatus)
		}

		blog := api.Group("/blog")
		{
			blog.POST("", blogHandler.Create)
			blog.GET("", blogHandler.List)
			blog.GET("/:slug", blogHandler.Get)
			blog.POST("/:slug/summarize", blogHandler.Summarize)
			blog.DELETE("/:slug", blogHandler.Delete)
		}

		testimonials := api.Group("/testimonials")
		{
			testimonials.POST("", showcaseHandler.CreateTestimonial)
			testimonials.GET("", showcaseHandler.ListTestimonials)
			testimonials.POST("/generate", showcaseHandler.GenerateTestimonial)
		}

		projects := api.Group("/projects")
		{
			projects.POST("", showcaseHandler.CreateProject)
			projects.GET("", showcaseHandler.ListProjects)
			projects.GET("/search", showcaseHandler.SearchProjects)
		}

		api.POST("/case-studies", showcaseHandler.CreateCaseStudy)
		api.GET("/case-studies", showcaseHandler.ListCaseStudies)

		api.POST("/chat", adminHandler.Chat)

		admin := api.Group("/admin")
		{
			admin.POST("/register", adminHandler.Register)
			admin.POST("/login", adminHandler.Login)
			admin.GET("/analytics", adminHandler.Analytics)
		}
	}

	return router
}

// rootMessage returns the API identity message
func rootMessage(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "MasterSolis InfoTech API"})
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "mastersolis-api",
	})
}

// respondError maps service errors to HTTP statuses. notFoundMsg is the
// entity-specific 404 detail.
func respondError(c *gin.Context, log zerolog.Logger, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMsg})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
	case errors.Is(err, service.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
	case errors.Is(err, service.ErrUnsupportedFileType):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only PDF and DOCX files are supported"})
	case errors.Is(err, service.ErrEmptyExtraction):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not extract text from resume"})
	default:
		log.Error().Err(err).Msg("Request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS against the configured origin list
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		if origin == "*" {
			allowAll = true
		}
		allowed[origin] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		switch {
		case allowAll:
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
		}
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
