package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const geminiModel = "gemini-pro"

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient generates intent commands through the Google generative
// language API. The API key is read from GEMINI_API_KEY on every call.
type GeminiClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewGeminiClient() *GeminiClient {
	return &GeminiClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    "https://generativelanguage.googleapis.com",
	}
}

func (g *GeminiClient) GenerateCommandJSON(ctx context.Context, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", ErrEmptyMessage
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	// The system prompt and user message ride in a single user turn.
	body := geminiRequest{
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{Text: BuildSystemPrompt() + "\n\nUser: " + userMessage},
				},
			},
		},
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	url := g.baseURL + "/v1/models/" + geminiModel + ":generateContent?key=" + apiKey

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	responseText, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(responseText)}
	}

	var parsed geminiResponse
	if err := json.Unmarshal(responseText, &parsed); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "unparseable response: " + string(responseText)}
	}

	if len(parsed.Candidates) == 0 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "no candidates in response"}
	}
	parts := parsed.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "no parts in response"}
	}

	text := parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Status: resp.StatusCode, Body: "empty text in response"}
	}

	return text, nil
}
