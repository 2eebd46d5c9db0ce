package promptstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	portprompt "github.com/alanyang/redraft/internal/port/prompt"
)

const uniqueViolation = "23505"

// Repository implements port/prompt.PromptRepository using Postgres.
// Base prompt versioning is insertion-based: content rows are never mutated,
// an update deactivates the current row and inserts a new one. Tone
// instructions are the one exception — they are edited in place.
type Repository struct {
	pool *pgxpool.Pool
}

var _ portprompt.PromptRepository = (*Repository)(nil)

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) ActiveBasePrompt(ctx context.Context) (domainprompt.BasePrompt, error) {
	query := `
		SELECT id, content, is_active, created_at
		FROM base_prompts
		WHERE is_active
		ORDER BY created_at DESC
		LIMIT 1`

	var p domainprompt.BasePrompt
	err := r.pool.QueryRow(ctx, query).Scan(&p.ID, &p.Content, &p.IsActive, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.BasePrompt{}, domainprompt.ErrNoActiveBasePrompt
		}
		return domainprompt.BasePrompt{}, fmt.Errorf("querying active base prompt: %w", err)
	}
	return p, nil
}

func (r *Repository) ActiveTones(ctx context.Context) ([]domainprompt.Tone, error) {
	query := `
		SELECT id, keyword, label, instructions, is_active, created_at, updated_at
		FROM tones
		WHERE is_active
		ORDER BY keyword`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing active tones: %w", err)
	}
	defer rows.Close()

	var tones []domainprompt.Tone
	for rows.Next() {
		var t domainprompt.Tone
		if err := rows.Scan(&t.ID, &t.Keyword, &t.Label, &t.Instructions, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning tone row: %w", err)
		}
		tones = append(tones, t)
	}
	return tones, rows.Err()
}

func (r *Repository) ToneByKeyword(ctx context.Context, keyword string) (domainprompt.Tone, error) {
	query := `
		SELECT id, keyword, label, instructions, is_active, created_at, updated_at
		FROM tones
		WHERE keyword = $1 AND is_active`

	var t domainprompt.Tone
	err := r.pool.QueryRow(ctx, query, keyword).Scan(&t.ID, &t.Keyword, &t.Label, &t.Instructions, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Tone{}, domainprompt.ErrToneNotFound
		}
		return domainprompt.Tone{}, fmt.Errorf("querying tone %q: %w", keyword, err)
	}
	return t, nil
}

// UpdateBasePrompt deactivates the current active row, inserts the replacement
// and writes the ledger entry inside one transaction. Without the transaction
// two concurrent callers could both observe "no active row" and break the
// one-active-row invariant; the partial unique index backs this up at the
// schema level.
func (r *Repository) UpdateBasePrompt(ctx context.Context, content, reason string) (domainprompt.BasePrompt, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domainprompt.BasePrompt{}, fmt.Errorf("beginning base prompt update: %w", err)
	}
	defer tx.Rollback(ctx)

	var oldContent *string
	err = tx.QueryRow(ctx, `SELECT content FROM base_prompts WHERE is_active LIMIT 1 FOR UPDATE`).Scan(&oldContent)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return domainprompt.BasePrompt{}, fmt.Errorf("reading current base prompt: %w", err)
	}

	if _, err := tx.Exec(ctx, `UPDATE base_prompts SET is_active = FALSE WHERE is_active`); err != nil {
		return domainprompt.BasePrompt{}, fmt.Errorf("deactivating base prompt: %w", err)
	}

	p := domainprompt.BasePrompt{ID: uuid.New(), Content: content, IsActive: true}
	err = tx.QueryRow(ctx,
		`INSERT INTO base_prompts (id, content, is_active) VALUES ($1, $2, TRUE) RETURNING created_at`,
		p.ID, p.Content,
	).Scan(&p.CreatedAt)
	if err != nil {
		return domainprompt.BasePrompt{}, fmt.Errorf("inserting base prompt: %w", err)
	}

	if err := logChange(ctx, tx, domainprompt.ComponentBase, p.ID, oldContent, content, reason); err != nil {
		return domainprompt.BasePrompt{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domainprompt.BasePrompt{}, fmt.Errorf("committing base prompt update: %w", err)
	}
	return p, nil
}

func (r *Repository) UpdateToneInstructions(ctx context.Context, keyword, instructions, reason string) (domainprompt.Tone, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domainprompt.Tone{}, fmt.Errorf("beginning tone update: %w", err)
	}
	defer tx.Rollback(ctx)

	var t domainprompt.Tone
	var oldInstructions string
	err = tx.QueryRow(ctx,
		`SELECT id, keyword, label, instructions, is_active, created_at FROM tones WHERE keyword = $1 AND is_active FOR UPDATE`,
		keyword,
	).Scan(&t.ID, &t.Keyword, &t.Label, &oldInstructions, &t.IsActive, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Tone{}, domainprompt.ErrToneNotFound
		}
		return domainprompt.Tone{}, fmt.Errorf("reading tone %q: %w", keyword, err)
	}

	err = tx.QueryRow(ctx,
		`UPDATE tones SET instructions = $1, updated_at = now() WHERE id = $2 RETURNING updated_at`,
		instructions, t.ID,
	).Scan(&t.UpdatedAt)
	if err != nil {
		return domainprompt.Tone{}, fmt.Errorf("updating tone %q: %w", keyword, err)
	}
	t.Instructions = instructions

	if err := logChange(ctx, tx, domainprompt.ComponentTone, t.ID, &oldInstructions, instructions, reason); err != nil {
		return domainprompt.Tone{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domainprompt.Tone{}, fmt.Errorf("committing tone update: %w", err)
	}
	return t, nil
}

func (r *Repository) CreateTone(ctx context.Context, keyword, label, instructions string) (domainprompt.Tone, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domainprompt.Tone{}, fmt.Errorf("beginning tone creation: %w", err)
	}
	defer tx.Rollback(ctx)

	t := domainprompt.Tone{ID: uuid.New(), Keyword: keyword, Label: label, Instructions: instructions, IsActive: true}
	err = tx.QueryRow(ctx,
		`INSERT INTO tones (id, keyword, label, instructions, is_active) VALUES ($1, $2, $3, $4, TRUE)
		 RETURNING created_at, updated_at`,
		t.ID, keyword, label, instructions,
	).Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return domainprompt.Tone{}, domainprompt.ErrDuplicateKeyword
		}
		return domainprompt.Tone{}, fmt.Errorf("inserting tone %q: %w", keyword, err)
	}

	reason := fmt.Sprintf("Created new tone: %s", label)
	if err := logChange(ctx, tx, domainprompt.ComponentTone, t.ID, nil, instructions, reason); err != nil {
		return domainprompt.Tone{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return domainprompt.Tone{}, fmt.Errorf("committing tone creation: %w", err)
	}
	return t, nil
}

// History resolves the component name at read time: the tone's label, or a
// 50-rune snippet of the base prompt content. Only one join side matches per
// row because component_id is scoped by component_type.
func (r *Repository) History(ctx context.Context, limit int) ([]domainprompt.HistoryEntry, error) {
	query := `
		SELECT ph.id,
		       ph.component_type,
		       ph.component_id,
		       CASE ph.component_type
		           WHEN 'base' THEN left(bp.content, 50) || CASE WHEN length(bp.content) > 50 THEN '...' ELSE '' END
		           WHEN 'tone' THEN t.label
		       END,
		       ph.old_content,
		       ph.new_content,
		       ph.change_reason,
		       ph.created_at
		FROM prompt_history ph
		LEFT JOIN base_prompts bp ON ph.component_type = 'base' AND bp.id = ph.component_id
		LEFT JOIN tones t ON ph.component_type = 'tone' AND t.id = ph.component_id
		ORDER BY ph.created_at DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing prompt history: %w", err)
	}
	defer rows.Close()

	var entries []domainprompt.HistoryEntry
	for rows.Next() {
		var e domainprompt.HistoryEntry
		var name *string
		if err := rows.Scan(&e.ID, &e.ComponentType, &e.ComponentID, &name, &e.OldContent, &e.NewContent, &e.ChangeReason, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if name != nil {
			e.ComponentName = *name
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// logChange appends one ledger entry within the caller's transaction. The
// ledger is append-only and written exclusively from the mutation paths above.
func logChange(ctx context.Context, tx pgx.Tx, ct domainprompt.ComponentType, componentID uuid.UUID, oldContent *string, newContent, reason string) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO prompt_history (id, component_type, component_id, old_content, new_content, change_reason)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), ct, componentID, oldContent, newContent, reason,
	)
	if err != nil {
		return fmt.Errorf("logging prompt change: %w", err)
	}
	return nil
}
