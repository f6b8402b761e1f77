package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"resumeforge/internal/config"
	"resumeforge/internal/logging/types"
)

// unsplashClient queries the Unsplash search API for stock photos. Requests
// are rate limited client-side to stay under the free-tier quota.
type unsplashClient struct {
	config     *config.Config
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     types.Logger
}

type unsplashSearchResponse struct {
	Results []struct {
		URLs struct {
			Small string `json:"small"`
		} `json:"urls"`
		User struct {
			Name  string `json:"name"`
			Links struct {
				HTML string `json:"html"`
			} `json:"links"`
		} `json:"user"`
	} `json:"results"`
}

func newUnsplashClient(cfg *config.Config, logger types.Logger) *unsplashClient {
	perMinute := cfg.ImageSearch.RateLimit
	if perMinute <= 0 {
		perMinute = 50
	}

	return &unsplashClient{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.ImageSearch.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), perMinute),
		logger:     logger,
	}
}

// search finds the best photo for the query and returns it as a JPEG data
// URI together with an attribution line.
func (u *unsplashClient) search(ctx context.Context, query string) (string, string, error) {
	if err := u.limiter.Wait(ctx); err != nil {
		return "", "", fmt.Errorf("rate limit wait aborted: %w", err)
	}

	searchURL := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d",
		u.config.ImageSearch.BaseURL, url.QueryEscape(query), u.config.ImageSearch.PerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.config.ImageSearch.APIKey)

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var parsed unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", "", fmt.Errorf("failed to decode search response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return "", "", fmt.Errorf("no results for query %q", query)
	}

	hit := parsed.Results[0]
	dataURI, err := u.download(ctx, hit.URLs.Small)
	if err != nil {
		return "", "", err
	}

	attribution := fmt.Sprintf("Photo by %s (%s)", hit.User.Name, hit.User.Links.HTML)
	u.logger.Info("Stock photo resolved", map[string]interface{}{
		"query":       query,
		"attribution": attribution,
	})

	return dataURI, attribution, nil
}

// download fetches the photo and re-encodes it as a JPEG data URI so the
// document never references a remote host.
func (u *unsplashClient) download(ctx context.Context, photoURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, photoURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build photo request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("photo download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("photo download returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read photo body: %w", err)
	}

	img, _, err := Decode(data)
	if err != nil {
		return "", err
	}

	return JPEGDataURI(img)
}
