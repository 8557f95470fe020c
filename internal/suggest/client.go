// Package suggest calls the external handle-suggestion service and supplies
// the deterministic fallback when that call fails.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/handl-app/handl/internal/logger"
	"github.com/handl-app/handl/internal/utils"
)

// DefaultTimeout bounds the external suggestion call.
const DefaultTimeout = 5 * time.Second

// Client talks to the generative suggestion service. An empty URL disables
// the remote call entirely; the fallback is used for every request.
type Client struct {
	url    string
	apiKey string
	http   *http.Client
	log    logger.Logger
}

// NewClient creates a suggestion client.
func NewClient(url, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:    url,
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
		log:    log,
	}
}

type suggestRequest struct {
	Name string `json:"name"`
}

// Suggest returns handle suggestions for seed. Failures of the external call
// are never propagated: the deterministic fallback list is returned instead.
// An empty seed yields no suggestions.
func (c *Client) Suggest(ctx context.Context, seed string) []string {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil
	}

	if c.url == "" {
		return Fallback(seed)
	}

	suggestions, err := c.call(ctx, seed)
	if err != nil {
		c.log.Warn("suggestion service failed, using fallback",
			logger.String("seed", seed),
			logger.Error(err))
		return Fallback(seed)
	}
	if len(suggestions) == 0 {
		return Fallback(seed)
	}
	return suggestions
}

func (c *Client) call(ctx context.Context, seed string) ([]string, error) {
	body, err := json.Marshal(suggestRequest{Name: seed})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("suggestion request failed: %w", err)
	}
	defer utils.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("suggestion service returned status %d", resp.StatusCode)
	}

	var suggestions []string
	if err := json.NewDecoder(resp.Body).Decode(&suggestions); err != nil {
		return nil, fmt.Errorf("failed to decode suggestions: %w", err)
	}
	return suggestions, nil
}

// Fallback builds the deterministic five-entry suggestion list for seed. The
// exact composition is part of the contract with the presentation layer.
func Fallback(seed string) []string {
	return []string{
		"try" + seed,
		"get" + seed,
		seed + "app",
		seed + "hq",
		seed + "co",
	}
}
