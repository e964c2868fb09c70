package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

// WebSearchEnricher calls an OpenAI-compatible responses endpoint with
// the built-in web_search tool enabled.
type WebSearchEnricher struct {
	BaseURL string
	APIKey  string
	Model   string

	HTTPClient *http.Client
}

func NewWebSearchEnricher(baseURL, apiKey, model string) *WebSearchEnricher {
	return &WebSearchEnricher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type responsesRequest struct {
	Model        string          `json:"model"`
	Instructions string          `json:"instructions"`
	Input        string          `json:"input"`
	Tools        []responsesTool `json:"tools"`
}

type responsesTool struct {
	Type string `json:"type"`
}

type responsesResponse struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// EnrichRestaurant looks up rating, address and cuisine for one restaurant.
func (c *WebSearchEnricher) EnrichRestaurant(
	ctx context.Context,
	restaurantName string,
) (*menu.Enrichment, error) {

	if c.APIKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	if c.Model == "" {
		return nil, errors.New("missing enrichment model")
	}
	if restaurantName == "" {
		return nil, errors.New("empty restaurant name")
	}

	reqBody, err := json.Marshal(responsesRequest{
		Model:        c.Model,
		Instructions: BuildEnrichmentPrompt(),
		Input:        BuildEnrichmentQuery(restaurantName),
		Tools:        []responsesTool{{Type: "web_search"}},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/responses",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("enrichment request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("enrichment api error (status %d): %s", resp.StatusCode, string(raw))
	}

	var payload responsesResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("enrichment api error: %s", payload.Error.Message)
	}

	// The output array interleaves web_search_call entries with the
	// final message; take the last output_text.
	var text string
	for _, out := range payload.Output {
		if out.Type != "message" {
			continue
		}
		for _, part := range out.Content {
			if part.Type == "output_text" {
				text = part.Text
			}
		}
	}
	if text == "" {
		return nil, errors.New("empty enrichment response")
	}

	return ParseEnrichment(text)
}

func (c *WebSearchEnricher) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}
