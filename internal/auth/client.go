package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIKeyHeader is the request header carrying the API key
const APIKeyHeader = "X-API-Key"

// ErrMissingKey is returned when no API key was supplied
var ErrMissingKey = errors.New("no API key provided")

// ErrInvalidKey is returned when the user service rejects the API key
var ErrInvalidKey = errors.New("invalid API key")

// Client validates API keys against the user service
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a user service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Validate returns nil only when the user service answers 200 for apiKey.
// Network errors are returned as errors, so callers fail closed.
func (c *Client) Validate(ctx context.Context, apiKey string) error {
	if apiKey == "" {
		return ErrMissingKey
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/validate-key", nil)
	if err != nil {
		return fmt.Errorf("failed to build validation request: %w", err)
	}
	req.Header.Set(APIKeyHeader, apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("user service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: user service status %s", ErrInvalidKey, resp.Status)
	}
	return nil
}
