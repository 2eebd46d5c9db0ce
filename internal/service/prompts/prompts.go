package prompts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alanyang/redraft/internal/domain/event"
	domainprompt "github.com/alanyang/redraft/internal/domain/prompt"
	porteventbus "github.com/alanyang/redraft/internal/port/eventbus"
	portprompt "github.com/alanyang/redraft/internal/port/prompt"
)

const defaultHistoryLimit = 50

// Service owns all reads and writes of the prompt configuration. Every
// mutation flows through the repository's history-writing paths; approved
// analyzer suggestions enter through ApplySuggestion, the single dispatch
// point on ComponentType.
type Service struct {
	repo   portprompt.PromptRepository
	bus    porteventbus.EventBus
	strict bool
}

// NewService builds the service. strict controls UpdateToneInstructions on an
// unknown keyword: false preserves the historical silent no-op (logged only),
// true propagates ErrToneNotFound.
func NewService(repo portprompt.PromptRepository, bus porteventbus.EventBus, strict bool) *Service {
	return &Service{repo: repo, bus: bus, strict: strict}
}

// ActiveBasePrompt returns the authoritative base prompt.
// ErrNoActiveBasePrompt passes through — an unseeded store is a valid state.
func (s *Service) ActiveBasePrompt(ctx context.Context) (domainprompt.BasePrompt, error) {
	return s.repo.ActiveBasePrompt(ctx)
}

func (s *Service) ActiveTones(ctx context.Context) ([]domainprompt.Tone, error) {
	tones, err := s.repo.ActiveTones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tones: %w", err)
	}
	return tones, nil
}

func (s *Service) ToneByKeyword(ctx context.Context, keyword string) (domainprompt.Tone, error) {
	return s.repo.ToneByKeyword(ctx, keyword)
}

func (s *Service) UpdateBasePrompt(ctx context.Context, content, reason string) (domainprompt.BasePrompt, error) {
	p, err := s.repo.UpdateBasePrompt(ctx, content, reason)
	if err != nil {
		return domainprompt.BasePrompt{}, fmt.Errorf("update base prompt: %w", err)
	}
	s.publish(ctx, event.New(event.TypeBasePromptUpdated, "base"))
	return p, nil
}

// UpdateToneInstructions edits a tone in place. In lenient mode an unknown
// keyword is a logged no-op and the returned Tone is the zero value — callers
// can tell nothing was written by the empty Keyword.
func (s *Service) UpdateToneInstructions(ctx context.Context, keyword, instructions, reason string) (domainprompt.Tone, error) {
	t, err := s.repo.UpdateToneInstructions(ctx, keyword, instructions, reason)
	if err != nil {
		if errors.Is(err, domainprompt.ErrToneNotFound) && !s.strict {
			slog.WarnContext(ctx, "ignoring update for unknown tone", "keyword", keyword)
			return domainprompt.Tone{}, nil
		}
		if errors.Is(err, domainprompt.ErrToneNotFound) {
			return domainprompt.Tone{}, err
		}
		return domainprompt.Tone{}, fmt.Errorf("update tone instructions: %w", err)
	}
	s.publish(ctx, event.New(event.TypeToneUpdated, keyword))
	return t, nil
}

func (s *Service) CreateTone(ctx context.Context, keyword, label, instructions string) (domainprompt.Tone, error) {
	t, err := s.repo.CreateTone(ctx, keyword, label, instructions)
	if err != nil {
		if errors.Is(err, domainprompt.ErrDuplicateKeyword) {
			return domainprompt.Tone{}, err
		}
		return domainprompt.Tone{}, fmt.Errorf("create tone: %w", err)
	}
	s.publish(ctx, event.New(event.TypeToneCreated, keyword))
	return t, nil
}

func (s *Service) History(ctx context.Context, limit int) ([]domainprompt.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	entries, err := s.repo.History(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("prompt history: %w", err)
	}
	return entries, nil
}

// Compose assembles the final generation prompt for a tone keyword and email.
// Absent base prompt and unknown tone both degrade gracefully; only real
// persistence failures surface.
func (s *Service) Compose(ctx context.Context, toneKeyword, email string) (string, error) {
	var base *domainprompt.BasePrompt
	b, err := s.repo.ActiveBasePrompt(ctx)
	switch {
	case err == nil:
		base = &b
	case errors.Is(err, domainprompt.ErrNoActiveBasePrompt):
		// fall back to the default instruction
	default:
		return "", fmt.Errorf("compose: %w", err)
	}

	var tone *domainprompt.Tone
	t, err := s.repo.ToneByKeyword(ctx, toneKeyword)
	switch {
	case err == nil:
		tone = &t
	case errors.Is(err, domainprompt.ErrToneNotFound):
		// omit the tone guidance section
	default:
		return "", fmt.Errorf("compose: %w", err)
	}

	return domainprompt.Compose(base, tone, email), nil
}

// ApplySuggestion turns an approved analyzer proposal into a durable
// configuration change. componentRef is the tone keyword for tone suggestions
// and is ignored for base suggestions (the active row is authoritative).
// Unknown tones always fail here, regardless of the lenient update mode.
func (s *Service) ApplySuggestion(ctx context.Context, ct domainprompt.ComponentType, componentRef, newContent, reason string) error {
	switch ct {
	case domainprompt.ComponentBase:
		_, err := s.UpdateBasePrompt(ctx, newContent, reason)
		return err
	case domainprompt.ComponentTone:
		t, err := s.repo.UpdateToneInstructions(ctx, componentRef, newContent, reason)
		if err != nil {
			if errors.Is(err, domainprompt.ErrToneNotFound) {
				return err
			}
			return fmt.Errorf("apply tone suggestion: %w", err)
		}
		s.publish(ctx, event.New(event.TypeToneUpdated, t.Keyword))
		return nil
	default:
		return fmt.Errorf("%w: %q", domainprompt.ErrInvalidComponent, ct)
	}
}

func (s *Service) publish(ctx context.Context, e event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, e); err != nil {
		slog.ErrorContext(ctx, "failed to publish prompt event", "type", e.Type, "error", err)
	}
}
