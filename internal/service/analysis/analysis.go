package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	domainanalysis "github.com/alanyang/redraft/internal/domain/analysis"
	"github.com/alanyang/redraft/internal/domain/event"
	domainrewrite "github.com/alanyang/redraft/internal/domain/rewrite"
	porteventbus "github.com/alanyang/redraft/internal/port/eventbus"
	portllm "github.com/alanyang/redraft/internal/port/llm"
	portprompt "github.com/alanyang/redraft/internal/port/prompt"
	portlog "github.com/alanyang/redraft/internal/port/rewritelog"
)

const systemMessage = "You are a prompt engineer reviewing the behavior of another AI model."

// entriesPerTone bounds the digest: only the newest rewrites per tone group
// reach the meta-model.
const entriesPerTone = 3

// snippetRunes bounds each quoted email/response inside the digest.
const snippetRunes = 500

// Service batches the rewrite corpus by tone and asks the meta-reasoning model
// to critique the current configuration and propose structured edits. The
// returned Report is for human review — nothing here writes configuration.
type Service struct {
	repo portprompt.PromptRepository
	log  portlog.Log
	chat portllm.ChatCompleter
	bus  porteventbus.EventBus
}

func NewService(repo portprompt.PromptRepository, log portlog.Log, chat portllm.ChatCompleter, bus porteventbus.EventBus) *Service {
	return &Service{repo: repo, log: log, chat: chat, bus: bus}
}

// Analyze runs one meta-analysis pass. Preconditions: an active base prompt
// (ErrNoActiveBasePrompt otherwise) and a non-empty, parseable rewrite log
// (ErrNoRewrites / ErrCorrupt otherwise). A model response that is not strict
// JSON matching the report schema fails with ErrMalformedOutput — never a
// crash.
func (s *Service) Analyze(ctx context.Context) (domainanalysis.Report, error) {
	base, err := s.repo.ActiveBasePrompt(ctx)
	if err != nil {
		return domainanalysis.Report{}, err
	}

	entries, err := s.log.ReadAll(ctx)
	if err != nil {
		return domainanalysis.Report{}, err
	}
	if len(entries) == 0 {
		return domainanalysis.Report{}, domainrewrite.ErrNoRewrites
	}

	userMessage := buildUserMessage(base.Content, entries)

	raw, err := s.chat.ChatComplete(ctx, systemMessage, userMessage)
	if err != nil {
		return domainanalysis.Report{}, fmt.Errorf("meta-analysis call: %w", err)
	}

	var report domainanalysis.Report
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return domainanalysis.Report{}, fmt.Errorf("%w: %v", domainanalysis.ErrMalformedOutput, err)
	}
	if err := report.Validate(); err != nil {
		return domainanalysis.Report{}, err
	}

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.New(event.TypeAnalysisCompleted, "")); err != nil {
			slog.ErrorContext(ctx, "failed to publish analysis event", "error", err)
		}
	}

	slog.InfoContext(ctx, "meta-analysis complete",
		"rewrites", len(entries),
		"suggestions", len(report.Suggestions),
	)
	return report, nil
}

// buildUserMessage renders the active base prompt, one bounded digest per tone
// group, and the output-schema instruction. Tones are the free-text values
// from the log, not validated against the tones table.
func buildUserMessage(basePrompt string, entries []domainrewrite.Entry) string {
	groups := make(map[string][]domainrewrite.Entry)
	for _, e := range entries {
		groups[e.Tone] = append(groups[e.Tone], e)
	}

	tones := make([]string, 0, len(groups))
	for tone := range groups {
		tones = append(tones, tone)
	}
	sort.Strings(tones)

	var b strings.Builder
	b.WriteString("Current base prompt:\n---\n")
	b.WriteString(basePrompt)
	b.WriteString("\n---\n\nRecent rewrites grouped by requested tone:\n")

	for _, tone := range tones {
		group := groups[tone]
		recent := group
		if len(recent) > entriesPerTone {
			recent = recent[len(recent)-entriesPerTone:]
		}
		fmt.Fprintf(&b, "\nTone %q (%d of %d rewrites, newest last):\n", tone, len(recent), len(group))
		for i, e := range recent {
			fmt.Fprintf(&b, "[%d] Original email:\n%s\n", i+1, truncate(e.OriginalEmail, snippetRunes))
			fmt.Fprintf(&b, "[%d] Model rewrite:\n%s\n", i+1, truncate(e.ModelResponse, snippetRunes))
		}
	}

	b.WriteString(schemaInstruction)
	return b.String()
}

const schemaInstruction = `

Critique how effectively the base prompt and tone instructions steer the rewrites above, then respond with ONLY a JSON object — no markdown fences, no prose outside the JSON — matching exactly this schema:
{
  "overall_summary": string,
  "tone_analysis": [{"tone": string, "effectiveness": string}],
  "suggestions": [{
    "id": number,
    "component_type": "base" | "tone",
    "component_keyword": string,
    "suggestion_type": string,
    "description": string,
    "current_text": string,
    "suggested_text": string,
    "priority": "high" | "medium" | "low"
  }],
  "revised_base_prompt": string
}`

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
