package prompt

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoActiveBasePrompt means the store holds no active base prompt.
	// Composition treats this as "fall back to the default instruction";
	// the analyzer treats it as a misconfiguration.
	ErrNoActiveBasePrompt = errors.New("no active base prompt")

	// ErrToneNotFound means no active tone carries the requested keyword.
	ErrToneNotFound = errors.New("tone not found")

	// ErrDuplicateKeyword means a tone with this keyword already exists,
	// active or not. Keywords are never reusable once inserted.
	ErrDuplicateKeyword = errors.New("tone keyword already exists")

	// ErrInvalidComponent means a component type outside the closed set.
	ErrInvalidComponent = errors.New("invalid component type")
)

// ComponentType is the closed set of configuration components tracked in the
// history ledger. All dispatch on it happens in service/prompts.ApplySuggestion.
type ComponentType string

const (
	ComponentBase ComponentType = "base"
	ComponentTone ComponentType = "tone"
)

func (c ComponentType) Valid() bool {
	return c == ComponentBase || c == ComponentTone
}

// BasePrompt is one version of the shared instruction text prefixed to every
// rewrite request. Content is never mutated in place: an update deactivates the
// current row and inserts a new one, so every version survives.
type BasePrompt struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// Tone is a named instruction fragment layered on top of the base prompt.
// Unlike BasePrompt, instruction edits mutate the row in place; the history
// ledger carries the old text.
type Tone struct {
	ID           uuid.UUID `json:"id"`
	Keyword      string    `json:"keyword"`
	Label        string    `json:"label"`
	Instructions string    `json:"instructions"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HistoryEntry is one audit record of a configuration mutation. Append-only:
// nothing ever updates or deletes a row. OldContent is nil only for the
// first-ever creation of a component.
type HistoryEntry struct {
	ID            uuid.UUID     `json:"id"`
	ComponentType ComponentType `json:"component_type"`
	ComponentID   uuid.UUID     `json:"component_id"`
	ComponentName string        `json:"component_name"`
	OldContent    *string       `json:"old_content"`
	NewContent    string        `json:"new_content"`
	ChangeReason  string        `json:"change_reason"`
	CreatedAt     time.Time     `json:"created_at"`
}
