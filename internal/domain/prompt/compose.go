package prompt

import "fmt"

// DefaultBasePrompt is used when no base prompt has been seeded yet.
const DefaultBasePrompt = "Please rewrite the following email to enhance its clarity and impact:"

// Compose assembles the final text sent to the generation model. Deterministic,
// no side effects. A nil tone omits the guidance section entirely rather than
// failing the composition — an unknown tone keyword still produces a usable
// prompt.
func Compose(base *BasePrompt, tone *Tone, email string) string {
	content := DefaultBasePrompt
	if base != nil && base.Content != "" {
		content = base.Content
	}

	guidance := ""
	if tone != nil && tone.Instructions != "" {
		label := tone.Label
		if label == "" {
			label = tone.Keyword
		}
		guidance = fmt.Sprintf("\n\nTone Guidance (%s):\n%s", label, tone.Instructions)
	}

	return fmt.Sprintf("%s%s\n\nEmail to rewrite:\n---\n%s\n---", content, guidance, email)
}
