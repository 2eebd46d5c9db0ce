package prompt

import (
	"context"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
)

// PromptRepository is the storage abstraction for the prompt configuration.
// It is the only writer of base prompts and tones, and every mutation path
// writes its own history ledger entry — callers never log history directly.
type PromptRepository interface {
	// ActiveBasePrompt returns the authoritative base prompt, or
	// domain/prompt.ErrNoActiveBasePrompt if none has been seeded.
	ActiveBasePrompt(ctx context.Context) (domainprompt.BasePrompt, error)

	// ActiveTones returns all active tones sorted by keyword ascending.
	ActiveTones(ctx context.Context) ([]domainprompt.Tone, error)

	// ToneByKeyword resolves an active tone. A deactivated tone with the same
	// keyword is not returned.
	ToneByKeyword(ctx context.Context, keyword string) (domainprompt.Tone, error)

	// UpdateBasePrompt deactivates the current active row, inserts a new
	// active row and writes a history entry, atomically.
	UpdateBasePrompt(ctx context.Context, content, reason string) (domainprompt.BasePrompt, error)

	// UpdateToneInstructions mutates the tone's instruction text in place,
	// advances updated_at and writes a history entry. Returns
	// domain/prompt.ErrToneNotFound for an unknown or inactive keyword.
	UpdateToneInstructions(ctx context.Context, keyword, instructions, reason string) (domainprompt.Tone, error)

	// CreateTone inserts a new active tone and writes a creation history
	// entry. Returns domain/prompt.ErrDuplicateKeyword if the keyword was
	// ever used before, active or not.
	CreateTone(ctx context.Context, keyword, label, instructions string) (domainprompt.Tone, error)

	// History returns the limit most recent ledger entries, newest first,
	// with component names resolved.
	History(ctx context.Context, limit int) ([]domainprompt.HistoryEntry, error)
}
