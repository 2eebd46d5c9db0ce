package rewrite

import (
	"errors"
	"time"
)

var (
	// ErrCorrupt means the rewrite log document exists but cannot be parsed.
	// Surfaced to the caller, never silently discarded.
	ErrCorrupt = errors.New("rewrite log is corrupt")

	// ErrNoRewrites means the rewrite log is empty — the analyzer has no corpus.
	ErrNoRewrites = errors.New("no rewrites logged yet")
)

// Entry is one rewrite request/response pair. Entries carry no identifier;
// position in the log document is the only ordering key. UserFeedback is
// reserved for a future feedback capture flow and stays null until then.
type Entry struct {
	Timestamp     time.Time `json:"timestamp"`
	OriginalEmail string    `json:"original_email"`
	Tone          string    `json:"tone"`
	FinalPrompt   string    `json:"final_prompt"`
	ModelResponse string    `json:"model_response"`
	UserFeedback  *string   `json:"user_feedback"`
}

// New builds an Entry stamped with the current UTC time.
func New(originalEmail, tone, finalPrompt, modelResponse string) Entry {
	return Entry{
		Timestamp:     time.Now().UTC(),
		OriginalEmail: originalEmail,
		Tone:          tone,
		FinalPrompt:   finalPrompt,
		ModelResponse: modelResponse,
	}
}

// Result is the rewrite response shape returned to clients.
type Result struct {
	Original  string `json:"original"`
	Rewritten string `json:"rewritten"`
	Tone      string `json:"tone"`
}
