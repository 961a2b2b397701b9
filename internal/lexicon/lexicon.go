package lexicon

import "strings"

// TopicID identifies a conversational topic with its own response strategy.
type TopicID string

const (
	TopicBehavior            TopicID = "behavior"
	TopicSleep               TopicID = "sleep"
	TopicGuilt               TopicID = "guilt"
	TopicRoutine             TopicID = "routine"
	TopicFeeding             TopicID = "feeding"
	TopicSpiritualStudy      TopicID = "spiritual_study"
	TopicScripture           TopicID = "scripture"
	TopicPrayer              TopicID = "prayer"
	TopicSpiritualReflection TopicID = "spiritual_reflection"
	TopicGeneric             TopicID = "generic"
)

// Topic pairs a topic identifier with its trigger terms.
type Topic struct {
	ID       TopicID
	Triggers []string
}

// Lexicon supplies topic trigger terms and the broader in-domain vocabulary.
// It is built once at startup and never mutated afterwards; all lookups are
// case-insensitive substring scans.
type Lexicon struct {
	topics      []Topic
	domainTerms []string
}

// Default returns the built-in maternal-care lexicon. Topic order is the
// dispatch priority order: more specific topics come before broader ones,
// so a message matching several topics routes to the most specific handler.
func Default() *Lexicon {
	topics := []Topic{
		{ID: TopicBehavior, Triggers: []string{
			"tantrum", "hitting", "biting", "misbehav", "acting out",
			"discipline", "won't listen", "disobey", "aggressive",
		}},
		{ID: TopicSleep, Triggers: []string{
			"sleep", "nap", "bedtime", "night waking", "wakes up at night",
			"won't settle", "up all night",
		}},
		{ID: TopicGuilt, Triggers: []string{
			"guilt", "guilty", "bad mother", "bad mom", "failing",
			"not good enough", "overwhelmed", "can't cope",
		}},
		{ID: TopicRoutine, Triggers: []string{
			"routine", "schedule", "organize", "organis", "chaotic",
			"no time for anything",
		}},
		{ID: TopicFeeding, Triggers: []string{
			"breastfeed", "nursing", "bottle", "formula", "latch",
			"wean", "solids", "mealtime", "picky eater", "feeding",
		}},
		{ID: TopicSpiritualStudy, Triggers: []string{
			"bible study", "devotional", "study the bible", "study scripture",
		}},
		{ID: TopicScripture, Triggers: []string{
			"scripture", "verse", "psalm", "bible",
		}},
		{ID: TopicPrayer, Triggers: []string{
			"pray",
		}},
		{ID: TopicSpiritualReflection, Triggers: []string{
			"faith", "god", "spiritual", "bless",
		}},
	}

	// Broader vocabulary that marks a message as in-domain even when no
	// topic trigger fires. Every topic trigger is also appended below, so a
	// topic match always implies in-domain and the domain guard stays total.
	domainTerms := []string{
		"baby", "newborn", "infant", "toddler", "child", "kid",
		"son", "daughter", "mom", "mother", "mama", "parent", "family",
		"husband", "partner", "postpartum", "pregnan", "diaper", "milk",
		"colic", "teething", "pediatric", "doctor", "health",
		"tired", "self-care", "feel", "feeling", "support", "lonely",
		"alone", "home", "church", "crying",
	}
	for _, t := range topics {
		domainTerms = append(domainTerms, t.Triggers...)
	}

	return &Lexicon{topics: topics, domainTerms: domainTerms}
}

// Topics returns the topic list in dispatch priority order.
func (l *Lexicon) Topics() []Topic {
	return l.topics
}

// Match returns the first topic (in priority order) whose trigger occurs in
// the text, or false when no topic matches.
func (l *Lexicon) Match(text string) (TopicID, bool) {
	lowered := strings.ToLower(text)
	for _, t := range l.topics {
		for _, trigger := range t.Triggers {
			if strings.Contains(lowered, trigger) {
				return t.ID, true
			}
		}
	}
	return "", false
}

// IsInDomain reports whether the text belongs to the assistant's scope of
// parenting, family, emotional well-being, health, and faith.
func (l *Lexicon) IsInDomain(text string) bool {
	lowered := strings.ToLower(text)
	for _, term := range l.domainTerms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}
