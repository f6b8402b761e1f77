package images

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"resumeforge/internal/config"
	"resumeforge/internal/logging/types"
)

// geminiClient generates images through the Imagen predict endpoint
type geminiClient struct {
	config     *config.Config
	httpClient *http.Client
	logger     types.Logger
}

type geminiPredictRequest struct {
	Instances []struct {
		Prompt string `json:"prompt"`
	} `json:"instances"`
	Parameters struct {
		SampleCount int `json:"sampleCount"`
	} `json:"parameters"`
}

type geminiPredictResponse struct {
	Predictions []struct {
		BytesBase64Encoded string `json:"bytesBase64Encoded"`
		MimeType           string `json:"mimeType"`
	} `json:"predictions"`
}

func newGeminiClient(cfg *config.Config, logger types.Logger) *geminiClient {
	return &geminiClient{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.ImageGen.Timeout},
		logger:     logger,
	}
}

// generate asks the model for a single image matching the description and
// returns it as a data URI.
func (g *geminiClient) generate(ctx context.Context, description string) (string, error) {
	var payload geminiPredictRequest
	payload.Instances = append(payload.Instances, struct {
		Prompt string `json:"prompt"`
	}{Prompt: description})
	payload.Parameters.SampleCount = 1

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal predict request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:predict?key=%s",
		g.config.ImageGen.BaseURL, g.config.ImageGen.Model, g.config.ImageGen.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("predict request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("predict returned status %d", resp.StatusCode)
	}

	var parsed geminiPredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode predict response: %w", err)
	}

	if len(parsed.Predictions) == 0 || parsed.Predictions[0].BytesBase64Encoded == "" {
		return "", fmt.Errorf("predict response contained no image")
	}

	mimeType := parsed.Predictions[0].MimeType
	if mimeType == "" {
		mimeType = "image/png"
	}

	g.logger.Info("Image generated", map[string]interface{}{
		"model":              g.config.ImageGen.Model,
		"description_length": len(description),
	})

	return fmt.Sprintf("data:%s;base64,%s", mimeType, parsed.Predictions[0].BytesBase64Encoded), nil
}
