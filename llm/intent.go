package llm

import "encoding/json"

// IntentCommand documents the fields the frontend understands. The validator
// does not coerce model output into this struct; it is a reference shape for
// callers that want typed access to a validated command.
type IntentCommand struct {
	Intent      string `json:"intent"`                // navigate, create_goal, ...
	Route       string `json:"route,omitempty"`       // navigate
	Title       string `json:"title,omitempty"`       // create_goal, create_habit, create_note
	Description string `json:"description,omitempty"` // create_goal, create_note
	Frequency   string `json:"frequency,omitempty"`   // create_habit
	Period      string `json:"period,omitempty"`      // summarize_notes, analyze_habits, analyze_week
}

const (
	KindInvalidJSON   = "invalid_json"
	KindNotAnObject   = "not_an_object"
	KindMissingIntent = "missing_intent"
)

// ValidationError rejects model output that is not a usable command. Raw keeps
// the unparsed text so callers can surface it for prompt debugging.
type ValidationError struct {
	Kind string
	Raw  string
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case KindInvalidJSON:
		return "model returned invalid JSON"
	case KindNotAnObject:
		return "model response is not a JSON object"
	case KindMissingIntent:
		return "model response does not contain a valid 'intent' field"
	}
	return "invalid model response"
}

// ValidateCommand checks the shape of raw model output: it must parse as a
// JSON object carrying a string "intent". Valid output passes through
// verbatim. Intent and route values are deliberately not whitelisted here;
// semantic checks belong to the caller.
func ValidateCommand(raw string) (json.RawMessage, error) {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &ValidationError{Kind: KindInvalidJSON, Raw: raw}
	}

	obj, ok := parsed.(map[string]any)
	if !ok {
		return nil, &ValidationError{Kind: KindNotAnObject, Raw: raw}
	}

	intent, ok := obj["intent"]
	if !ok {
		return nil, &ValidationError{Kind: KindMissingIntent, Raw: raw}
	}
	if _, ok := intent.(string); !ok {
		return nil, &ValidationError{Kind: KindMissingIntent, Raw: raw}
	}

	return json.RawMessage(raw), nil
}
