package llm

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/josesiqueira/tampere-food-intelligence/internal/menu"
)

// OpenAIExtractor calls an OpenAI-compatible chat completion endpoint
// with the menu image attached as a base64 data URL.
type OpenAIExtractor struct {
	BaseURL string
	APIKey  string
	Model   string

	HTTPClient *http.Client
}

func NewOpenAIExtractor(baseURL, apiKey, model string) *OpenAIExtractor {
	return &OpenAIExtractor{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string            `json:"role"`
	Content []chatContentPart `json:"content"`
}

type chatContentPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractMenu sends the image to the model and validates the reply.
func (c *OpenAIExtractor) ExtractMenu(
	ctx context.Context,
	imageData []byte,
	mediaType string,
) (*menu.Extraction, error) {

	if c.APIKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	if c.Model == "" {
		return nil, errors.New("missing extraction model")
	}
	if len(imageData) == 0 {
		return nil, errors.New("empty image data")
	}

	dataURL := fmt.Sprintf(
		"data:%s;base64,%s",
		mediaType,
		base64.StdEncoding.EncodeToString(imageData),
	)

	reqBody, err := json.Marshal(chatRequest{
		Model: c.Model,
		Messages: []chatMessage{
			{
				Role: "system",
				Content: []chatContentPart{
					{Type: "text", Text: BuildExtractionPrompt()},
				},
			},
			{
				Role: "user",
				Content: []chatContentPart{
					{Type: "text", Text: "Extract all menu information from this image."},
					{Type: "image_url", ImageURL: &chatImageURL{URL: dataURL}},
				},
			},
		},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.BaseURL+"/chat/completions",
		bytes.NewReader(reqBody),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("extraction request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("extraction api error (status %d): %s", resp.StatusCode, string(raw))
	}

	var payload chatResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	if payload.Error != nil {
		return nil, fmt.Errorf("extraction api error: %s", payload.Error.Message)
	}
	if len(payload.Choices) == 0 {
		return nil, errors.New("empty extraction response")
	}

	return ParseExtraction(payload.Choices[0].Message.Content)
}

func (c *OpenAIExtractor) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 60 * time.Second}
}
