package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/alanyang/redraft/internal/domain/rewrite"
	portlog "github.com/alanyang/redraft/internal/port/rewritelog"
)

// Log stores rewrite entries as a single JSON array document. Every append
// reads the whole document back, so the file round-trips: all prior entries
// survive plus the new one. The mutex serializes writers within the process;
// the backing store is not shared between instances.
type Log struct {
	path string
	mu   sync.Mutex
}

var _ portlog.Log = (*Log)(nil)

func New(path string) *Log {
	return &Log{path: path}
}

func (l *Log) Append(ctx context.Context, e rewrite.Entry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries, err := l.read()
	if err != nil {
		return err
	}
	entries = append(entries, e)

	return l.write(entries)
}

func (l *Log) ReadAll(ctx context.Context) ([]rewrite.Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

func (l *Log) read() ([]rewrite.Entry, error) {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return []rewrite.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading rewrite log: %w", err)
	}
	if len(data) == 0 {
		return []rewrite.Entry{}, nil
	}

	var entries []rewrite.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", rewrite.ErrCorrupt, err)
	}
	return entries, nil
}

// write replaces the document and fsyncs before returning, so an Append is
// durable by the time the caller sees nil.
func (l *Log) write(entries []rewrite.Entry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling rewrite log: %w", err)
	}

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating rewrite log dir: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("opening rewrite log: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("writing rewrite log: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("syncing rewrite log: %w", err)
	}
	return f.Close()
}
