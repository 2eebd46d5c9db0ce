package rewritelog

import (
	"context"

	"github.com/alanyang/redraft/internal/domain/rewrite"
)

// Log is the append-only rewrite record store. The document as a whole must
// round-trip: an Append preserves every prior entry plus the new one.
type Log interface {
	// Append adds one entry and is durable before it returns.
	Append(ctx context.Context, e rewrite.Entry) error

	// ReadAll returns entries in insertion order. A missing or empty backing
	// store yields an empty slice, not an error; an unparseable one yields
	// domain/rewrite.ErrCorrupt.
	ReadAll(ctx context.Context) ([]rewrite.Entry, error)
}
