package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Rorical/RoriRecipe/internal/logger"
)

// Request is the body of POST /recipe
type Request struct {
	DietType string `json:"diet_type"`
}

// Recipe is the body of a successful POST /recipe
type Recipe struct {
	DietType string `json:"diet_type"`
	Recipe   string `json:"recipe"`
}

// Health is the body of GET /health
type Health struct {
	Status string `json:"status"`
}

// Client talks to the recipe service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a Client for baseURL. A nil httpClient means
// http.DefaultClient, which imposes no timeout of its own.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Generate asks the service for a recipe. dietType is sent verbatim; the
// service accepts "vegetarian" and "vegan".
func (c *Client) Generate(ctx context.Context, dietType string) (*Recipe, error) {
	body, err := json.Marshal(Request{DietType: dietType})
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/recipe", bytes.NewReader(body))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	var out Recipe
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health queries GET /health
func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	var out Health
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends req and decodes a 2xx JSON body into out. Non-2xx bodies are
// drained and discarded.
func (c *Client) do(req *http.Request, out interface{}) error {
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)

	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	}
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("recipe service unreachable", append(fields, zap.Error(err))...)
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	fields = append(fields, zap.Int("status", resp.StatusCode), zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		logger.Warn("recipe service returned an error status", fields...)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Warn("failed to decode recipe service response", append(fields, zap.Error(err))...)
		return &TransportError{Err: fmt.Errorf("invalid response from recipe service: %w", err)}
	}

	logger.Debug("recipe service responded", fields...)
	return nil
}
