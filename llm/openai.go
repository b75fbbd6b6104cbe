package llm

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const openAIModel = "gpt-4o-mini"

// OpenAIClient is the hosted-OpenAI backend for the intent parser. The API key
// is read from OPENAI_API_KEY on every call, matching the other backends.
type OpenAIClient struct{}

func NewOpenAIClient() *OpenAIClient {
	return &OpenAIClient{}
}

func (o *OpenAIClient) GenerateCommandJSON(ctx context.Context, userMessage string) (string, error) {
	if strings.TrimSpace(userMessage) == "" {
		return "", ErrEmptyMessage
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if strings.TrimSpace(apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	params := responses.ResponseNewParams{
		Model:        openAIModel,
		Instructions: openai.String(BuildSystemPrompt()),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String("User: " + userMessage),
		},
	}

	resp, err := client.Responses.New(ctx, params)
	if err != nil {
		var apierr *openai.Error
		if errors.As(err, &apierr) {
			return "", &UpstreamError{Status: apierr.StatusCode, Body: apierr.Error()}
		}
		return "", &UpstreamError{Body: err.Error()}
	}

	text := resp.OutputText()
	if strings.TrimSpace(text) == "" {
		return "", &UpstreamError{Body: "empty text in response"}
	}

	return text, nil
}
