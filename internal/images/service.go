package images

import (
	"context"
	"fmt"
	"image/color"

	"resumeforge/internal/cache"
	"resumeforge/internal/config"
	"resumeforge/internal/logging"
	"resumeforge/internal/logging/types"
	"resumeforge/pkg/models"
)

// Service resolves placeholder images from uploads, stock search, and AI
// generation. Search and Generate never return an error: any failure
// degrades to a synthesized placeholder so resume assembly always completes.
type Service struct {
	config *config.Config
	logger types.Logger
	search *unsplashClient
	gen    *geminiClient
	cache  *cache.Client
}

// NewService creates the image resolution service. cacheClient may be nil
// when Redis is disabled.
func NewService(cfg *config.Config, cacheClient *cache.Client) *Service {
	logger := logging.GetGlobalLogger()
	return &Service{
		config: cfg,
		logger: logger,
		search: newUnsplashClient(cfg, logger),
		gen:    newGeminiClient(cfg, logger),
		cache:  cacheClient,
	}
}

// Upload normalizes an uploaded image: decode, scale down into the
// configured bounding box, and re-encode as a PNG data URI.
func (s *Service) Upload(data []byte, placeholderID string) (*models.ImageResponse, error) {
	img, format, err := Decode(data)
	if err != nil {
		return nil, err
	}

	resized := ResizeToFit(img, s.config.Images.MaxUploadWidth, s.config.Images.MaxUploadHeight)

	dataURI, err := PNGDataURI(resized)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Image upload processed", map[string]interface{}{
		"placeholder_id": placeholderID,
		"source_format":  format,
		"bytes_in":       len(data),
	})

	return &models.ImageResponse{
		ImageData:     dataURI,
		PlaceholderID: placeholderID,
		Source:        "upload",
	}, nil
}

// Search resolves a placeholder with a stock photo matching the query.
// Missing credentials and empty or failed searches each degrade to a
// distinct placeholder image.
func (s *Service) Search(ctx context.Context, query, placeholderID string) *models.ImageResponse {
	if s.config.ImageSearch.APIKey == "" {
		s.logger.Warn("Image search skipped - no API key configured (set UNSPLASH_API_KEY)", map[string]interface{}{
			"placeholder_id": placeholderID,
		})
		return s.placeholderResponse(placeholderID, colorMissingKey, "Image search not configured")
	}

	cacheKey := "search:" + query
	var cached models.ImageResponse
	if s.cache.GetImage(ctx, cacheKey, &cached) {
		cached.PlaceholderID = placeholderID
		return &cached
	}

	dataURI, attribution, err := s.search.search(ctx, query)
	if err != nil {
		s.logger.Warn("Image search failed, substituting placeholder", map[string]interface{}{
			"placeholder_id": placeholderID,
			"query":          query,
			"error":          err.Error(),
		})
		return s.placeholderResponse(placeholderID, colorSearchEmpty, fmt.Sprintf("No image: %s", query))
	}

	result := &models.ImageResponse{
		ImageData:     dataURI,
		PlaceholderID: placeholderID,
		Source:        "unsplash",
		Attribution:   attribution,
	}
	s.cache.SetImage(ctx, cacheKey, result)
	return result
}

// Generate resolves a placeholder with an AI-generated image. Failures
// degrade to a placeholder carrying the description.
func (s *Service) Generate(ctx context.Context, description, placeholderID string) *models.ImageResponse {
	if s.config.ImageGen.APIKey == "" {
		s.logger.Warn("Image generation skipped - no API key configured (set GEMINI_API_KEY)", map[string]interface{}{
			"placeholder_id": placeholderID,
		})
		return s.placeholderResponse(placeholderID, colorMissingKey, "Image generation not configured")
	}

	dataURI, err := s.gen.generate(ctx, description)
	if err != nil {
		s.logger.Warn("Image generation failed, substituting placeholder", map[string]interface{}{
			"placeholder_id": placeholderID,
			"error":          err.Error(),
		})
		return s.placeholderResponse(placeholderID, colorGenFailed, description)
	}

	return &models.ImageResponse{
		ImageData:     dataURI,
		PlaceholderID: placeholderID,
		Source:        "gemini",
	}
}

func (s *Service) placeholderResponse(placeholderID string, fill color.RGBA, label string) *models.ImageResponse {
	return &models.ImageResponse{
		ImageData: renderPlaceholder(
			s.config.Images.PlaceholderWidth,
			s.config.Images.PlaceholderHeight,
			fill,
			label,
		),
		PlaceholderID: placeholderID,
		Source:        "placeholder",
	}
}
