package promptstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
)

const seedBasePrompt = `You are an assistant writing on behalf of AcmeHR, an Australian HR and EOR platform.
Use clear, confident language, and follow Australian English spelling and conventions.
Avoid Americanisms like 'organize' or 'color' — prefer 'organise', 'colour', etc.
When referring to business terms, use Australian-appropriate language where applicable.`

var seedTones = []struct {
	keyword, label, instructions string
}{
	{"professional", "Professional", "Maintain a formal, respectful, and objective tone. Avoid slang and overly casual language."},
	{"friendly", "Friendly", "Use a warm, approachable, and conversational tone. Feel free to use contractions and positive language."},
	{"concise", "Concise", "Be brief, to the point, and eliminate unnecessary words. Focus on clarity and efficiency."},
	{"action-oriented", "Action-Oriented", "Focus on encouraging the recipient to take a specific action. Use strong verbs and clear calls to action."},
}

// Seed inserts the initial base prompt and tone set. Idempotent: each piece is
// checked individually and skipped if present, so re-running against a seeded
// store writes nothing. Seed rows deliberately bypass the history ledger —
// history starts with the first real edit.
func (r *Repository) Seed(ctx context.Context) error {
	_, err := r.ActiveBasePrompt(ctx)
	switch {
	case errors.Is(err, domainprompt.ErrNoActiveBasePrompt):
		_, err = r.pool.Exec(ctx,
			`INSERT INTO base_prompts (id, content, is_active) VALUES ($1, $2, TRUE)`,
			uuid.New(), seedBasePrompt,
		)
		if err != nil {
			return fmt.Errorf("seeding base prompt: %w", err)
		}
		slog.InfoContext(ctx, "seeded initial base prompt")
	case err != nil:
		return err
	}

	for _, t := range seedTones {
		// Keyword existence among ALL rows, not just active ones — a
		// deactivated seed tone must not be recreated.
		var exists bool
		if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM tones WHERE keyword = $1)`, t.keyword).Scan(&exists); err != nil {
			return fmt.Errorf("checking tone %q: %w", t.keyword, err)
		}
		if exists {
			continue
		}
		_, err := r.pool.Exec(ctx,
			`INSERT INTO tones (id, keyword, label, instructions, is_active) VALUES ($1, $2, $3, $4, TRUE)`,
			uuid.New(), t.keyword, t.label, t.instructions,
		)
		if err != nil {
			return fmt.Errorf("seeding tone %q: %w", t.keyword, err)
		}
		slog.InfoContext(ctx, "seeded tone", "keyword", t.keyword)
	}
	return nil
}
