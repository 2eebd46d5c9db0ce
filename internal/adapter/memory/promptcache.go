package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	portprompt "github.com/alanyang/redraft/internal/port/prompt"
)

// PromptCache is a read-through decorator over a PromptRepository. The rewrite
// hot path reads the base prompt and a tone on every request; this keeps those
// reads off the database between configuration changes. Writes delegate and
// drop the cache, and Invalidate lets the event bus drop it when another
// replica writes.
type PromptCache struct {
	next portprompt.PromptRepository
	ttl  time.Duration

	mu        sync.RWMutex
	base      *domainprompt.BasePrompt
	baseErr   error
	tones     []domainprompt.Tone
	expiresAt time.Time
}

func NewPromptCache(next portprompt.PromptRepository, ttl time.Duration) *PromptCache {
	return &PromptCache{next: next, ttl: ttl}
}

func (c *PromptCache) ActiveBasePrompt(ctx context.Context) (domainprompt.BasePrompt, error) {
	c.mu.RLock()
	if c.fresh() && (c.base != nil || c.baseErr != nil) {
		base, err := c.base, c.baseErr
		c.mu.RUnlock()
		if err != nil {
			return domainprompt.BasePrompt{}, err
		}
		return *base, nil
	}
	c.mu.RUnlock()

	base, err := c.next.ActiveBasePrompt(ctx)
	if err != nil && !errors.Is(err, domainprompt.ErrNoActiveBasePrompt) {
		return domainprompt.BasePrompt{}, err
	}

	c.mu.Lock()
	if err != nil {
		// ErrNoActiveBasePrompt is a cacheable answer: an unseeded store
		// stays unseeded until a write lands.
		c.base, c.baseErr = nil, err
	} else {
		b := base
		c.base, c.baseErr = &b, nil
	}
	c.touch()
	c.mu.Unlock()

	return base, err
}

func (c *PromptCache) ActiveTones(ctx context.Context) ([]domainprompt.Tone, error) {
	c.mu.RLock()
	if c.fresh() && c.tones != nil {
		tones := make([]domainprompt.Tone, len(c.tones))
		copy(tones, c.tones)
		c.mu.RUnlock()
		return tones, nil
	}
	c.mu.RUnlock()

	tones, err := c.next.ActiveTones(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.tones = tones
	c.touch()
	c.mu.Unlock()

	out := make([]domainprompt.Tone, len(tones))
	copy(out, tones)
	return out, nil
}

// ToneByKeyword is answered from the cached active tone list when present.
// Keywords not in the list fall through to the repository, so a tone created
// by another replica is still found before the cache expires.
func (c *PromptCache) ToneByKeyword(ctx context.Context, keyword string) (domainprompt.Tone, error) {
	c.mu.RLock()
	if c.fresh() && c.tones != nil {
		for _, t := range c.tones {
			if t.Keyword == keyword {
				c.mu.RUnlock()
				return t, nil
			}
		}
	}
	c.mu.RUnlock()

	return c.next.ToneByKeyword(ctx, keyword)
}

func (c *PromptCache) UpdateBasePrompt(ctx context.Context, content, reason string) (domainprompt.BasePrompt, error) {
	p, err := c.next.UpdateBasePrompt(ctx, content, reason)
	if err == nil {
		c.Invalidate()
	}
	return p, err
}

func (c *PromptCache) UpdateToneInstructions(ctx context.Context, keyword, instructions, reason string) (domainprompt.Tone, error) {
	t, err := c.next.UpdateToneInstructions(ctx, keyword, instructions, reason)
	if err == nil {
		c.Invalidate()
	}
	return t, err
}

func (c *PromptCache) CreateTone(ctx context.Context, keyword, label, instructions string) (domainprompt.Tone, error) {
	t, err := c.next.CreateTone(ctx, keyword, label, instructions)
	if err == nil {
		c.Invalidate()
	}
	return t, err
}

// History is never cached — the ledger must reflect every write immediately.
func (c *PromptCache) History(ctx context.Context, limit int) ([]domainprompt.HistoryEntry, error) {
	return c.next.History(ctx, limit)
}

// Invalidate drops all cached reads. Wired to prompt-channel events so writes
// on other replicas take effect here without waiting out the TTL.
func (c *PromptCache) Invalidate() {
	c.mu.Lock()
	c.base, c.baseErr, c.tones = nil, nil, nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
}

func (c *PromptCache) fresh() bool {
	return time.Now().Before(c.expiresAt)
}

func (c *PromptCache) touch() {
	c.expiresAt = time.Now().Add(c.ttl)
}
