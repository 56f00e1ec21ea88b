package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

const (
	DefaultBaseURL     = "https://generativelanguage.googleapis.com"
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = 0.7
)

// Generator sends a prompt to the model with Maps grounding enabled.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (*GenerateContentResponse, error)
}

// Config describes how to reach the Gemini API.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Temperature float64
	Timeout     time.Duration
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	client      *http.Client
	baseURL     string
	model       string
	apiKey      string
	temperature float64
	timeout     time.Duration
	keyInHeader bool
}

// NewClient builds a Gemini client. When client is nil an API-key
// authenticated transport is created; a supplied client gets the key as a
// request header instead.
func NewClient(client *http.Client, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini api key must not be empty")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	keyInHeader := client != nil
	if client == nil {
		hc, _, err := htransport.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
		if err != nil {
			client = &http.Client{Timeout: 90 * time.Second}
			keyInHeader = true
		} else {
			client = hc
		}
	}

	return &Client{
		client:      client,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		apiKey:      cfg.APIKey,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
		keyInHeader: keyInHeader,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// GenerateContent performs a single generateContent call. There is no retry.
func (c *Client) GenerateContent(ctx context.Context, prompt string) (*GenerateContentResponse, error) {
	temperature := c.temperature
	body, err := json.Marshal(GenerateContentRequest{
		Contents:         []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		Tools:            []Tool{{GoogleMaps: &GoogleMaps{}}},
		GenerationConfig: &GenerationConfig{Temperature: &temperature},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL + "/v1beta/models/" + url.PathEscape(c.model) + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.keyInHeader {
		req.Header.Set("x-goog-api-key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate content request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	var out GenerateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("could not decode generate content response: %w", err)
	}
	return &out, nil
}

var _ Generator = (*Client)(nil)
