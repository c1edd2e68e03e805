// Package xai is a minimal client for the xAI Responses API
package xai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the standard xAI API endpoint
	DefaultBaseURL = "https://api.x.ai/v1"
	// DefaultModel is used when FetchOptions.Model is empty
	DefaultModel = "grok-4-1-fast"
)

// ProjectName is set at build time - used for User-Agent
var ProjectName = "xfetch"

// Version is set at build time
var Version = "dev"

// Client is the API client for the xAI Responses endpoint
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// NewClient creates a new API client.
// An empty baseURL selects DefaultBaseURL. No timeout is set on the
// transport; cancel through the context passed to Fetch.
func NewClient(baseURL, apiKey string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		HTTPClient: &http.Client{},
		Logger:     slog.Default(),
	}
}

// FetchOptions scopes a Fetch call
type FetchOptions struct {
	Handles         []string
	Hours           *int
	EnableWebSearch bool
	Model           string
	Raw             bool
}

// CreateRequest is the body of POST /responses
type CreateRequest struct {
	Model string             `json:"model"`
	Tools []SearchToolConfig `json:"tools"`
	Input string             `json:"input"`
}

// Fetch sends query to the model with the search tools configured by opts
// and returns the response text, or the indented response JSON when
// opts.Raw is set. Errors from the transport or the API are returned as is.
func (c *Client) Fetch(ctx context.Context, query string, opts FetchOptions) (string, error) {
	model := opts.Model
	if model == "" {
		model = DefaultModel
	}

	req := CreateRequest{
		Model: model,
		Tools: BuildTools(BuildSearchConfig(opts.Handles, opts.Hours), opts.EnableWebSearch),
		Input: query,
	}

	body, err := c.CreateResponse(ctx, req)
	if err != nil {
		return "", err
	}

	if opts.Raw {
		var buf bytes.Buffer
		if err := json.Indent(&buf, body, "", "  "); err != nil {
			return "", fmt.Errorf("failed to format response: %w", err)
		}
		return buf.String(), nil
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return ExtractText(&resp), nil
}

// CreateResponse posts req to /responses and returns the raw reply body
func (c *Client) CreateResponse(ctx context.Context, req CreateRequest) ([]byte, error) {
	requestID := uuid.NewString()
	log := c.logger().With("request_id", requestID, "model", req.Model)
	log.Debug("sending request", "tools", len(req.Tools), "input_len", len(req.Input))

	start := time.Now()
	resp, err := c.doRequest(ctx, http.MethodPost, "/responses", requestID, req)
	if err != nil {
		log.Error("request failed", "error", err, "duration", time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("read response failed", "error", err)
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	log.Info("request complete", "status", resp.StatusCode, "bytes", len(body), "duration", time.Since(start))
	return body, nil
}

// doRequest performs an HTTP request against BaseURL
func (c *Client) doRequest(ctx context.Context, method, path, requestID string, body interface{}) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", fmt.Sprintf("%s-cli/%s", ProjectName, Version))
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	if resp.StatusCode >= 400 {
		bodyData, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(bodyData))}
	}

	return resp, nil
}

func (c *Client) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
