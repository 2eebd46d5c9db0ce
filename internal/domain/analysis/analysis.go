package analysis

import (
	"errors"
	"fmt"

	"github.com/alanyang/redraft/internal/domain/prompt"
)

// ErrMalformedOutput means the meta-model response failed schema validation.
// The raw response is carried in the wrapping error message for debugging.
var ErrMalformedOutput = errors.New("malformed analysis output")

// Suggestion is one structured edit proposed by the meta-model. ComponentKeyword
// is the tone keyword for tone suggestions and empty for base suggestions.
type Suggestion struct {
	ID               int                  `json:"id"`
	ComponentType    prompt.ComponentType `json:"component_type"`
	ComponentKeyword string               `json:"component_keyword"`
	SuggestionType   string               `json:"suggestion_type"`
	Description      string               `json:"description"`
	CurrentText      string               `json:"current_text,omitempty"`
	SuggestedText    string               `json:"suggested_text"`
	Priority         string               `json:"priority"`
}

// ToneAssessment is the meta-model's read on how one tone is performing.
type ToneAssessment struct {
	Tone          string `json:"tone"`
	Effectiveness string `json:"effectiveness"`
}

// Report is the parsed meta-analysis result, returned for human review.
// Nothing in a Report has been applied to the configuration.
type Report struct {
	OverallSummary    string           `json:"overall_summary"`
	ToneAnalysis      []ToneAssessment `json:"tone_analysis"`
	Suggestions       []Suggestion     `json:"suggestions"`
	RevisedBasePrompt string           `json:"revised_base_prompt"`
}

// Validate checks the fields the output schema marks required.
func (r Report) Validate() error {
	if r.OverallSummary == "" {
		return fmt.Errorf("%w: missing overall_summary", ErrMalformedOutput)
	}
	if r.RevisedBasePrompt == "" {
		return fmt.Errorf("%w: missing revised_base_prompt", ErrMalformedOutput)
	}
	for _, s := range r.Suggestions {
		if !s.ComponentType.Valid() {
			return fmt.Errorf("%w: suggestion %d has component_type %q", ErrMalformedOutput, s.ID, s.ComponentType)
		}
		if s.SuggestedText == "" {
			return fmt.Errorf("%w: suggestion %d has no suggested_text", ErrMalformedOutput, s.ID)
		}
	}
	return nil
}
