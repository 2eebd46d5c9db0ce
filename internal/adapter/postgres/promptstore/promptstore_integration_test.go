//go:build integration

package promptstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/redraft/internal/adapter/postgres/promptstore"
	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	"github.com/alanyang/redraft/internal/testutil"
)

func TestSeed(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	base, err := repo.ActiveBasePrompt(ctx)
	require.NoError(t, err)
	assert.Contains(t, base.Content, "AcmeHR")
	assert.True(t, base.IsActive)

	tones, err := repo.ActiveTones(ctx)
	require.NoError(t, err)
	require.Len(t, tones, 4)

	keywords := make([]string, len(tones))
	for i, tn := range tones {
		keywords[i] = tn.Keyword
	}
	assert.ElementsMatch(t, []string{"professional", "friendly", "concise", "action-oriented"}, keywords)

	// Seeding writes no history.
	history, err := repo.History(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSeed_Idempotent(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))
	require.NoError(t, repo.Seed(ctx))

	var baseCount, toneCount int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM base_prompts").Scan(&baseCount))
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM tones").Scan(&toneCount))
	assert.Equal(t, 1, baseCount)
	assert.Equal(t, 4, toneCount)
}

func TestUpdateBasePrompt_Versioning(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	_, err := repo.UpdateBasePrompt(ctx, "Version X", "First edit")
	require.NoError(t, err)
	updated, err := repo.UpdateBasePrompt(ctx, "Version Y", "Second edit")
	require.NoError(t, err)
	assert.Equal(t, "Version Y", updated.Content)

	// Exactly one active row, and it is the latest version.
	active, err := repo.ActiveBasePrompt(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Version Y", active.Content)

	var activeCount int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM base_prompts WHERE is_active").Scan(&activeCount))
	assert.Equal(t, 1, activeCount)

	// Prior versions stay as inactive rows.
	var total int
	require.NoError(t, pool.QueryRow(ctx, "SELECT count(*) FROM base_prompts").Scan(&total))
	assert.Equal(t, 3, total)

	// History is newest-first and records the superseded content.
	history, err := repo.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Version Y", history[0].NewContent)
	require.NotNil(t, history[0].OldContent)
	assert.Equal(t, "Version X", *history[0].OldContent)
	assert.Equal(t, "Second edit", history[0].ChangeReason)
	assert.Equal(t, domainprompt.ComponentBase, history[0].ComponentType)
}

func TestUpdateToneInstructions(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	updated, err := repo.UpdateToneInstructions(ctx, "friendly", "Even warmer.", "Tuning")
	require.NoError(t, err)
	assert.Equal(t, "Even warmer.", updated.Instructions)

	// In-place update: same row count, new instructions.
	tone, err := repo.ToneByKeyword(ctx, "friendly")
	require.NoError(t, err)
	assert.Equal(t, "Even warmer.", tone.Instructions)

	history, err := repo.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domainprompt.ComponentTone, history[0].ComponentType)
	assert.Equal(t, "Friendly", history[0].ComponentName)
}

func TestUpdateToneInstructions_Unknown(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	_, err := repo.UpdateToneInstructions(ctx, "ghost", "x", "r")
	assert.ErrorIs(t, err, domainprompt.ErrToneNotFound)
}

func TestCreateTone(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	tone, err := repo.CreateTone(ctx, "punchy", "Punchy", "Short sentences.")
	require.NoError(t, err)
	assert.Equal(t, "punchy", tone.Keyword)
	assert.True(t, tone.IsActive)

	// Creation is recorded in history with no prior content.
	history, err := repo.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Nil(t, history[0].OldContent)
	assert.Equal(t, "Created new tone: Punchy", history[0].ChangeReason)
}

func TestCreateTone_DuplicateKeyword(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)
	ctx := context.Background()

	require.NoError(t, repo.Seed(ctx))

	_, err := repo.CreateTone(ctx, "friendly", "Friendly Again", "Be warm")
	assert.ErrorIs(t, err, domainprompt.ErrDuplicateKeyword)
}

func TestActiveBasePrompt_Unseeded(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)

	_, err := repo.ActiveBasePrompt(context.Background())
	assert.ErrorIs(t, err, domainprompt.ErrNoActiveBasePrompt)
}

func TestToneByKeyword_Unknown(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	repo := promptstore.New(pool)

	_, err := repo.ToneByKeyword(context.Background(), "ghost")
	assert.ErrorIs(t, err, domainprompt.ErrToneNotFound)
}
