package event

import "time"

type Type string

const (
	TypeBasePromptUpdated Type = "base_prompt_updated"
	TypeToneCreated       Type = "tone_created"
	TypeToneUpdated       Type = "tone_updated"
	TypeRewriteCompleted  Type = "rewrite_completed"
	TypeAnalysisCompleted Type = "analysis_completed"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelPrompt  Channel = "prompt"
	ChannelRewrite Channel = "rewrite"
)

var typeToChannel = map[Type]Channel{
	TypeBasePromptUpdated: ChannelPrompt,
	TypeToneCreated:       ChannelPrompt,
	TypeToneUpdated:       ChannelPrompt,
	TypeRewriteCompleted:  ChannelRewrite,
	TypeAnalysisCompleted: ChannelRewrite,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries a reference, not full state. For prompt events Ref is the tone
// keyword (or "base"); subscribers fetch fresh state from the store. Rewrite
// events carry the requested tone keyword.
type Event struct {
	Type      Type      `json:"type"`
	Ref       string    `json:"ref"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, ref string) Event {
	return Event{
		Type:      eventType,
		Ref:       ref,
		Timestamp: time.Now().UTC(),
	}
}
