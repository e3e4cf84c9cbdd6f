package extractor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/extractorapi/extractor/config"
	"github.com/extractorapi/extractor/internal"
	"github.com/extractorapi/extractor/pkg/models"
)

const DefaultEngineTimeout = 300 * time.Second

const extractPath = "/v1/extract"

// maxErrorBodyBytes caps how much of an engine error body is folded into the
// error message.
const maxErrorBodyBytes = 4096

// Client invokes the extraction engine bridge over HTTP. It implements
// models.ExtractionEngine and performs exactly one attempt per call: engine
// failures surface to the caller rather than being retried.
type Client struct {
	httpClient *retryablehttp.Client
	url        string
	apiKey     string
	timeout    time.Duration
}

var _ models.ExtractionEngine = &Client{}

// NewClient creates an engine client from the loaded config. The API key is
// environment-sourced and loaded once at process start.
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.Engine.Timeout) * time.Second
	if timeout <= 0 {
		timeout = DefaultEngineTimeout
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 0
	httpClient.HTTPClient.Timeout = timeout
	httpClient.Logger = internal.NewLeveledLogrus(log)

	return &Client{
		httpClient: httpClient,
		url:        strings.TrimSuffix(cfg.Engine.URL, "/"),
		apiKey:     cfg.Engine.APIKey,
		timeout:    timeout,
	}
}

// Extract invokes the engine once, synchronously, under the configured
// deadline. The returned document is the engine's native object, decoded
// generically; see NormalizeDocument for the shape contract.
func (c *Client) Extract(
	ctx context.Context,
	req *models.EngineRequest,
) (models.EngineDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(req)
	if err != nil {
		return nil, NewEngineError("unable to encode engine request", err)
	}

	httpReq, err := retryablehttp.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.url+extractPath,
		body,
	)
	if err != nil {
		return nil, NewEngineError("unable to build engine request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, NewEngineError("extraction timed out", context.DeadlineExceeded)
		}
		return nil, NewEngineError("engine request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return nil, NewEngineError(
			fmt.Sprintf(
				"engine returned status %d: %s",
				resp.StatusCode,
				strings.TrimSpace(string(detail)),
			),
			nil,
		)
	}

	var doc models.EngineDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, NewEngineError("unable to decode engine response", err)
	}

	return doc, nil
}
