package routes

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"resumeforge/internal/api/handlers"
	"resumeforge/internal/api/middleware"
	"resumeforge/internal/cache"
	"resumeforge/internal/composer"
	"resumeforge/internal/config"
	"resumeforge/internal/export"
	"resumeforge/internal/images"
	"resumeforge/internal/llm"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager, comp *composer.Composer, imageService *images.Service, dispatcher *export.Dispatcher, cacheClient *cache.Client) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg))
	// Selective timeout: 30s for most endpoints, 2 minutes for drafting,
	// image generation, and export
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, 2*time.Minute))

	// Health check routes
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(llmManager, cacheClient))
		health.GET("/live", handlers.LivenessHandler)
	}

	// Status route
	e.GET("/status", handlers.StatusHandler(llmManager))

	// API v1 routes
	v1 := e.Group("/api/v1")
	{
		resume := v1.Group("/resume")
		{
			resume.POST("", handlers.CreateResumeHandler(comp))
			resume.POST("/update", handlers.UpdateResumeHandler(comp))
			resume.POST("/resolve", handlers.ResolveResumeHandler())
		}

		image := v1.Group("/image")
		{
			image.POST("/upload", handlers.ImageUploadHandler(imageService))
			image.POST("/search", handlers.ImageSearchHandler(imageService))
			image.POST("/generate", handlers.ImageGenerateHandler(imageService))
		}

		v1.POST("/export", handlers.ExportHandler(cfg, dispatcher))
	}

	// Root route
	e.GET("/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"service": "ResumeForge",
			"version": "1.0.0",
			"status":  "running",
		})
	})
}
