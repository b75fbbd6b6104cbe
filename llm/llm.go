package llm

import (
	"context"
	"errors"
	"fmt"
)

// CommandGenerator turns a natural-language message into the raw text of a
// JSON command. Implementations make exactly one best-effort upstream call:
// no retries, no caching. The returned text is verbatim model output and is
// only expected, not guaranteed, to be JSON — callers run it through
// ValidateCommand.
type CommandGenerator interface {
	GenerateCommandJSON(ctx context.Context, userMessage string) (string, error)
}

var (
	ErrEmptyMessage  = errors.New("user message cannot be empty")
	ErrMissingAPIKey = errors.New("API key environment variable is not set")
)

// UpstreamError reports a failed or malformed response from the model backend.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream error %d: %s", e.Status, e.Body)
	}
	return "upstream error: " + e.Body
}
