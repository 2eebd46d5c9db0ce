package llm

import "context"

// Generator is the external generation model boundary. The composed prompt is
// its sole input.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatCompleter is the external meta-reasoning model boundary. Callers expect
// the returned text to be exactly what the model produced — no trimming of
// markup happens here.
type ChatCompleter interface {
	ChatComplete(ctx context.Context, systemMessage, userMessage string) (string, error)
}
