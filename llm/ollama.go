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

const ollamaModel = "llama3"

type ollamaRequest struct {
	Model  string `json:"model"`
	Stream bool   `json:"stream"`
	Prompt string `json:"prompt"`
}

// OllamaClient runs the intent parser against a local Ollama server instead of
// a hosted API. Same contract as GeminiClient, no API key needed.
type OllamaClient struct {
	httpClient *http.Client
	baseURL    string
}

func NewOllamaClient() *OllamaClient {
	baseURL := os.Getenv("OLLAMA_URL")
	if baseURL == "" {
		baseURL = "http://localhost:11434"
	}
	return &OllamaClient{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    baseURL,
	}
}

func (o *OllamaClient) GenerateCommandJSON(ctx context.Context, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", ErrEmptyMessage
	}

	body := ollamaRequest{
		Model:  ollamaModel,
		Stream: false,
		Prompt: BuildSystemPrompt() + "\n\nUser: " + userMessage + "\nAssistant:",
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", o.baseURL+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.httpClient.Do(req)
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

	// Ollama envelope: { "response": "...", "done": true, ... }. Unexpected
	// shapes fall back to the raw body so the validator can reject them with
	// the full context attached.
	var parsed struct {
		Response *string `json:"response"`
	}
	if err := json.Unmarshal(responseText, &parsed); err != nil || parsed.Response == nil {
		return string(responseText), nil
	}

	return *parsed.Response, nil
}
