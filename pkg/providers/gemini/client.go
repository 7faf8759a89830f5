package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hearthvox/hearthvox/pkg/errorsx"
	"github.com/hearthvox/hearthvox/pkg/resilience"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ClientConfig configures the REST client.
type ClientConfig struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// Client is a minimal client for the Gemini generateContent API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient validates credentials and builds a client. A missing API key is
// a fatal initialization error; it is never retried.
func NewClient(cfg ClientConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errorsx.Wrap(errors.New("gemini api key is required"), errorsx.ReasonEngineInit)
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &Client{apiKey: cfg.APIKey, baseURL: baseURL, http: httpClient}, nil
}

// GenerateContent posts one prompt to a model and decodes the response.
// HTTP 429 maps to resilience.RateLimitError; other non-2xx statuses return
// the response body as the error text.
func (c *Client) GenerateContent(ctx context.Context, model, prompt string, cfg *generationConfig) (*generateContentResponse, error) {
	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: cfg,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/models/" + model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("x-goog-request-id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		body, _ := io.ReadAll(resp.Body)
		return nil, errorsx.Wrap(
			resilience.RateLimitError{Provider: "gemini", Message: strings.TrimSpace(string(body))},
			errorsx.ReasonRateLimit,
		)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	return &out, nil
}
