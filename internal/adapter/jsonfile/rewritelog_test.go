package jsonfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanyang/redraft/internal/adapter/jsonfile"
	"github.com/alanyang/redraft/internal/domain/rewrite"
)

func newLog(t *testing.T) (*jsonfile.Log, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rewrite_history.json")
	return jsonfile.New(path), path
}

func TestReadAll_MissingFile(t *testing.T) {
	l, _ := newLog(t)

	entries, err := l.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReadAll_EmptyFile(t *testing.T) {
	l, path := newLog(t)
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	entries, err := l.ReadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppend_RoundTrip(t *testing.T) {
	l, _ := newLog(t)
	ctx := context.Background()

	first := rewrite.New("Hi team", "friendly", "prompt-1", "Hello team!")
	second := rewrite.New("Status?", "concise", "prompt-2", "Status update:")

	require.NoError(t, l.Append(ctx, first))
	require.NoError(t, l.Append(ctx, second))

	entries, err := l.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Insertion order preserved; prior entries survive the second append.
	assert.Equal(t, "Hi team", entries[0].OriginalEmail)
	assert.Equal(t, "friendly", entries[0].Tone)
	assert.Equal(t, "Status?", entries[1].OriginalEmail)
	assert.Nil(t, entries[0].UserFeedback)
}

func TestAppend_SurvivesReopen(t *testing.T) {
	_, path := newLog(t)
	ctx := context.Background()

	require.NoError(t, jsonfile.New(path).Append(ctx, rewrite.New("a", "t", "p", "r")))

	// A fresh Log over the same file sees the existing document.
	reopened := jsonfile.New(path)
	require.NoError(t, reopened.Append(ctx, rewrite.New("b", "t", "p", "r")))

	entries, err := reopened.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReadAll_Corrupt(t *testing.T) {
	l, path := newLog(t)
	require.NoError(t, os.WriteFile(path, []byte("{not valid json"), 0o644))

	_, err := l.ReadAll(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, rewrite.ErrCorrupt)
}

func TestAppend_CorruptStoreFails(t *testing.T) {
	l, path := newLog(t)
	require.NoError(t, os.WriteFile(path, []byte("[[["), 0o644))

	err := l.Append(context.Background(), rewrite.New("a", "t", "p", "r"))
	assert.ErrorIs(t, err, rewrite.ErrCorrupt)
}
