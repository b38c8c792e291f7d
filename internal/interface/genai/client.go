// internal/interface/genai/client.go
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"

	"tripgenie-service/pkg/logger"
)

// Client calls a structured-generation gateway over HTTP. The gateway owns
// the prompts and output schemas per capability; this client sends the
// input payload and decodes the schema-conforming output, treating an
// empty output as a failure.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
}

// NewClient creates a generation gateway client. When tokenSource is
// non-nil every request carries a bearer token from it.
func NewClient(baseURL string, timeout time.Duration, tokenSource oauth2.TokenSource, logger logger.Logger) *Client {
	base := &http.Client{Timeout: timeout}
	if tokenSource != nil {
		base.Transport = &oauth2.Transport{
			Source: tokenSource,
			Base:   http.DefaultTransport,
		}
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: base,
		logger:     logger,
	}
}

type generateRequest struct {
	Capability string      `json:"capability"`
	Input      interface{} `json:"input"`
}

type generateResponse struct {
	Output json.RawMessage `json:"output"`
	Error  string          `json:"error,omitempty"`
}

// Generate invokes one capability on the gateway and decodes the result
// into output.
func (c *Client) Generate(ctx context.Context, capability string, input interface{}, output interface{}) error {
	reqBody, err := json.Marshal(generateRequest{
		Capability: capability,
		Input:      input,
	})
	if err != nil {
		return fmt.Errorf("genai: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/generate", bytes.NewReader(reqBody))
	if err != nil {
		return fmt.Errorf("genai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("genai: send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("genai: capability %s: status %d: %s", capability, resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("genai: decode response: %w", err)
	}
	if result.Error != "" {
		return fmt.Errorf("genai: capability %s: gateway error: %s", capability, result.Error)
	}
	if len(result.Output) == 0 {
		return fmt.Errorf("genai: capability %s: empty output", capability)
	}
	if err := json.Unmarshal(result.Output, output); err != nil {
		return fmt.Errorf("genai: capability %s: decode output: %w", capability, err)
	}

	c.logger.Debug("Generation call completed",
		"capability", capability,
		"elapsed", time.Since(start))

	return nil
}
