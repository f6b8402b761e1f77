package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"resumeforge/internal/api/routes"
	"resumeforge/internal/cache"
	"resumeforge/internal/composer"
	"resumeforge/internal/config"
	"resumeforge/internal/export"
	"resumeforge/internal/images"
	"resumeforge/internal/llm"
	"resumeforge/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging system
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting ResumeForge")

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Error("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}

	// Optional Redis-backed image cache
	cacheClient := cache.New(cfg)
	if cacheClient != nil {
		pingCtx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
		if err := cacheClient.Ping(pingCtx); err != nil {
			logger.Warn("Redis unreachable - image caching disabled", map[string]interface{}{"error": err.Error()})
			cacheClient = nil
		}
		cancel()
	}

	// Domain services
	comp := composer.New(llmManager)
	imageService := images.NewService(cfg, cacheClient)
	pdfRenderer := export.NewPDFRenderer(cfg)
	dispatcher := export.NewDispatcher(cfg, pdfRenderer)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, cfg, llmManager, comp, imageService, dispatcher, cacheClient)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		logger.Info("Stopping LLM manager...")
		if err := llmManager.Stop(); err != nil {
			logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Stopping PDF renderer...")
		if err := pdfRenderer.Close(); err != nil {
			logger.Error("Error stopping PDF renderer", map[string]interface{}{"error": err.Error()})
		}

		if cacheClient != nil {
			if err := cacheClient.Close(); err != nil {
				logger.Error("Error closing cache client", map[string]interface{}{"error": err.Error()})
			}
		}

		logger.Info("Stopping HTTP server...")
		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil {
		logger.Info("Server stopped", map[string]interface{}{"reason": err.Error()})
	}
}
