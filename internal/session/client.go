package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/practico-app/practico-lambda/internal/generator"
)

// Client calls the hosted generation endpoint over HTTPS. It satisfies
// the Generator interface the Controller depends on.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client for the given API base URL. token may be
// empty for anonymous generation.
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Generate(ctx context.Context, req generator.GenerateRequest) ([]generator.Question, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate-test", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("generation request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr generator.ErrorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("generation failed: %s", apiErr.Error)
		}
		return nil, fmt.Errorf("generation failed with status %d", resp.StatusCode)
	}

	var payload generator.GenerateResult
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("malformed generation response: %w", err)
	}
	// A success response without questions is as useless to the session
	// as a transport failure; treat it the same way.
	if len(payload.Questions) == 0 {
		return nil, errors.New("malformed generation response: missing questions")
	}

	return payload.Questions, nil
}
