package triage

import "strings"

// EmotionalState is the coarse emotional label derived from a message.
type EmotionalState string

const (
	StateCalm        EmotionalState = "calm"
	StateAnxious     EmotionalState = "anxious"
	StateOverwhelmed EmotionalState = "overwhelmed"
	StateFrustrated  EmotionalState = "frustrated"
	StateHappy       EmotionalState = "happy"
)

// emotionGroup pairs a state with its trigger terms. The slice order is the
// classification priority: anxious, overwhelmed, frustrated, happy. Safety-
// relevant states are checked before positive ones, and the first group with
// a matching term wins. Tests depend on this exact order; do not reorder.
type emotionGroup struct {
	state EmotionalState
	terms []string
}

var emotionGroups = []emotionGroup{
	{StateAnxious, []string{
		"anxious", "anxiety", "worried", "worry", "nervous", "scared",
		"afraid", "panic",
	}},
	{StateOverwhelmed, []string{
		"overwhelmed", "exhausted", "drained", "burned out", "burnt out",
		"can't keep up", "drowning", "too much for me",
	}},
	{StateFrustrated, []string{
		"frustrated", "frustrating", "angry", "irritated", "annoyed",
		"fed up", "mad at",
	}},
	{StateHappy, []string{
		"happy", "joy", "grateful", "thankful", "excited", "wonderful",
		"amazing",
	}},
}

// ClassifyEmotion maps a message to an emotional state via a case-insensitive
// substring scan. Messages matching no group default to calm. The function is
// pure: the same text always yields the same state.
func ClassifyEmotion(text string) EmotionalState {
	lowered := strings.ToLower(text)
	for _, group := range emotionGroups {
		for _, term := range group.terms {
			if strings.Contains(lowered, term) {
				return group.state
			}
		}
	}
	return StateCalm
}
