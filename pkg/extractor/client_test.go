package extractor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/extractorapi/extractor/config"
	"github.com/extractorapi/extractor/pkg/models"
)

func newTestConfig(url string) *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{
			URL:     url,
			APIKey:  "test-key",
			Timeout: 5,
		},
	}
}

func testEngineRequest() *models.EngineRequest {
	return &models.EngineRequest{
		TextOrDocuments:   "See you 6.6.",
		PromptDescription: "Extract dates",
		Examples: []models.EngineExample{
			{
				Text: "Meet on 5.5.",
				Extractions: []models.EngineExtraction{
					{
						ExtractionClass: "date",
						ExtractionText:  "5.5.",
						Attributes:      map[string]interface{}{},
					},
				},
			},
		},
		ModelID: "test-model",
	}
}

func TestClientExtract(t *testing.T) {
	var received models.EngineRequest

	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, extractPath, r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			err := json.NewDecoder(r.Body).Decode(&received)
			require.NoError(t, err)

			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"text": received.TextOrDocuments,
				"extractions": []interface{}{
					map[string]interface{}{
						"extraction_class": "date",
						"extraction_text":  "6.6.",
						"attributes":       map[string]interface{}{},
					},
				},
			})
		}),
	)
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	doc, err := client.Extract(context.Background(), testEngineRequest())

	require.NoError(t, err)
	assert.Equal(t, "See you 6.6.", doc["text"])
	assert.Equal(t, "test-model", received.ModelID)
	require.Len(t, received.Examples, 1)
	assert.Equal(t, "Meet on 5.5.", received.Examples[0].Text)
}

func TestClientExtractEngineFailure(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "model unavailable", http.StatusBadGateway)
		}),
	)
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	doc, err := client.Extract(context.Background(), testEngineRequest())

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "model unavailable")
	assert.Contains(t, err.Error(), "502")
}

func TestClientExtractMalformedResponse(t *testing.T) {
	server := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}),
	)
	defer server.Close()

	client := NewClient(newTestConfig(server.URL))
	_, err := client.Extract(context.Background(), testEngineRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode engine response")
}

func TestClientExtractTimeout(t *testing.T) {
	block := make(chan struct{})

	server := httptest.NewServer(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			select {
			case <-block:
			case <-r.Context().Done():
			}
		}),
	)
	defer server.Close()
	defer close(block)

	cfg := newTestConfig(server.URL)
	client := NewClient(cfg)
	client.timeout = 50 * time.Millisecond
	client.httpClient.HTTPClient.Timeout = time.Second

	_, err := client.Extract(context.Background(), testEngineRequest())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "extraction timed out")
}
