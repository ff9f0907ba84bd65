package vocabulary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// APIKeyHeader carries the caller's credential on every service call.
const APIKeyHeader = "X-API-Key"

// Client fetches a user's vocabulary from the vocabulary service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a vocabulary service client. A zero timeout leaves the
// request bounded only by the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Fetch returns the vocabulary visible to credential. Any non-200 answer is
// reported as an error.
func (c *Client) Fetch(ctx context.Context, credential string) ([]Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/translations", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build vocabulary request: %w", err)
	}
	req.Header.Set(APIKeyHeader, credential)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("vocabulary service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vocabulary service status: %s", resp.Status)
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode vocabulary: %w", err)
	}
	return entries, nil
}
