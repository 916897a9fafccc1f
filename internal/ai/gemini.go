package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-2.5-flash"
)

type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
}

func NewGeminiClient(apiKey string, model string) *GeminiClient {
	if strings.TrimSpace(model) == "" {
		model = DefaultGeminiModel
	}
	return &GeminiClient{
		httpClient: &http.Client{},
		baseURL:    defaultGeminiBaseURL,
		apiKey:     apiKey,
		model:      model,
	}
}

// NewGeminiClientWithBaseURL points the client at an alternate endpoint.
func NewGeminiClientWithBaseURL(apiKey string, model string, baseURL string) *GeminiClient {
	client := NewGeminiClient(apiKey, model)
	if strings.TrimSpace(baseURL) != "" {
		client.baseURL = strings.TrimSuffix(baseURL, "/")
	}
	return client
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (client *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(client.apiKey) == "" {
		return "", errors.New("gemini api key is not configured")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		client.baseURL,
		url.PathEscape(client.model),
		url.QueryEscape(client.apiKey),
	)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("call generative service: %w", err)
	}
	defer response.Body.Close()

	rawResponse, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	parsed := geminiResponse{}
	if err := json.Unmarshal(rawResponse, &parsed); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		if parsed.Error != nil {
			return "", fmt.Errorf("generative service error %d: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return "", fmt.Errorf("generative service returned status %d", response.StatusCode)
	}
	if len(parsed.Candidates) == 0 {
		return "", errors.New("generative service returned no candidates")
	}

	var text strings.Builder
	for _, part := range parsed.Candidates[0].Content.Parts {
		text.WriteString(part.Text)
	}
	if strings.TrimSpace(text.String()) == "" {
		return "", errors.New("generative service returned empty text")
	}
	return text.String(), nil
}
