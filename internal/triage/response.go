package triage

// Response is the engine's canned reply for one conversational turn. A
// downstream free-form generator may rephrase Message, but Tone,
// ResponseType, PracticalTips, FollowUpQuestions, and ScriptureRef are
// authoritative and must never be overwritten by it.
type Response struct {
	Message           string   `json:"message"`
	Tone              string   `json:"tone"`
	ResponseType      string   `json:"response_type"`
	PracticalTips     []string `json:"practical_tips,omitempty"`
	FollowUpQuestions []string `json:"follow_up_questions,omitempty"`
	ScriptureRef      string   `json:"scripture_ref,omitempty"`
}

// Response type tags. Topic responses carry an _intro suffix on the first
// visit and a _continuity suffix on repeat visits.
const (
	ResponseTypeOffDomain = "off_domain_redirect"
	ResponseTypeGeneric   = "generic_support"

	introSuffix      = "_intro"
	continuitySuffix = "_continuity"
)
