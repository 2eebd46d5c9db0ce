package rewrite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alanyang/redraft/internal/domain/event"
	domainrewrite "github.com/alanyang/redraft/internal/domain/rewrite"
	porteventbus "github.com/alanyang/redraft/internal/port/eventbus"
	portllm "github.com/alanyang/redraft/internal/port/llm"
	portlog "github.com/alanyang/redraft/internal/port/rewritelog"

	promptssvc "github.com/alanyang/redraft/internal/service/prompts"
)

// Service drives one rewrite: compose the prompt from the current
// configuration, call the generation model, record the exchange. The store
// handle is released before the model call — composition and logging never
// span the network round trip.
type Service struct {
	prompts *promptssvc.Service
	gen     portllm.Generator
	log     portlog.Log
	bus     porteventbus.EventBus
}

func NewService(prompts *promptssvc.Service, gen portllm.Generator, log portlog.Log, bus porteventbus.EventBus) *Service {
	return &Service{prompts: prompts, gen: gen, log: log, bus: bus}
}

func (s *Service) Rewrite(ctx context.Context, email, tone string) (domainrewrite.Result, error) {
	composed, err := s.prompts.Compose(ctx, tone, email)
	if err != nil {
		return domainrewrite.Result{}, err
	}

	out, err := s.gen.Generate(ctx, composed)
	if err != nil {
		return domainrewrite.Result{}, fmt.Errorf("generating rewrite: %w", err)
	}

	if err := s.log.Append(ctx, domainrewrite.New(email, tone, composed, out)); err != nil {
		return domainrewrite.Result{}, fmt.Errorf("recording rewrite: %w", err)
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.New(event.TypeRewriteCompleted, tone)); err != nil {
			slog.ErrorContext(ctx, "failed to publish rewrite event", "tone", tone, "error", err)
		}
	}

	return domainrewrite.Result{Original: email, Rewritten: out, Tone: tone}, nil
}

// History returns the full rewrite log in insertion order.
func (s *Service) History(ctx context.Context) ([]domainrewrite.Entry, error) {
	entries, err := s.log.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
