package triage

import "github.com/nurtura-health/triage-engine/internal/lexicon"

// ResponseStyle is a caller-set preference for how replies are phrased.
type ResponseStyle string

const (
	StyleWarm      ResponseStyle = "warm"
	StyleDirect    ResponseStyle = "direct"
	StyleSpiritual ResponseStyle = "spiritual"
	StylePractical ResponseStyle = "practical"
)

// Context is the per-session conversation state. The caller owns it and
// threads it through every call; the engine reads it during generation and
// appends to it afterwards, never deleting entries. Callers must serialize
// calls for the same session — the engine does not lock.
type Context struct {
	SessionID       string                      `json:"session_id"`
	EmotionalState  EmotionalState              `json:"emotional_state"`
	DiscussedTopics map[lexicon.TopicID]struct{} `json:"-"`
	ResponseStyle   ResponseStyle               `json:"response_style"`
}

// NewContext creates the state for a fresh session: calm, nothing discussed,
// warm phrasing.
func NewContext(sessionID string) *Context {
	return &Context{
		SessionID:       sessionID,
		EmotionalState:  StateCalm,
		DiscussedTopics: make(map[lexicon.TopicID]struct{}),
		ResponseStyle:   StyleWarm,
	}
}

// WasDiscussed reports whether the topic already came up in this session.
func (c *Context) WasDiscussed(topic lexicon.TopicID) bool {
	_, ok := c.DiscussedTopics[topic]
	return ok
}

// MarkDiscussed records that the topic has been surfaced. The discussed set
// only grows for the life of the session.
func (c *Context) MarkDiscussed(topic lexicon.TopicID) {
	if c.DiscussedTopics == nil {
		c.DiscussedTopics = make(map[lexicon.TopicID]struct{})
	}
	c.DiscussedTopics[topic] = struct{}{}
}
