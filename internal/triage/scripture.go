package triage

// scripturePassage is one entry of the fixed reference table. Spiritual
// generators only ever cite from this table, so every quoted text pairs
// with a real, attributable reference.
type scripturePassage struct {
	Ref  string
	Text string
}

var scriptureTable = map[string]scripturePassage{
	"rest": {
		Ref:  "Matthew 11:28",
		Text: "Come to me, all you who are weary and burdened, and I will give you rest.",
	},
	"anxiety": {
		Ref:  "Philippians 4:6-7",
		Text: "Do not be anxious about anything, but in every situation, by prayer and petition, with thanksgiving, present your requests to God.",
	},
	"strength": {
		Ref:  "Isaiah 41:10",
		Text: "Do not fear, for I am with you; do not be dismayed, for I am your God. I will strengthen you and help you.",
	},
	"care": {
		Ref:  "1 Peter 5:7",
		Text: "Cast all your anxiety on him because he cares for you.",
	},
	"children": {
		Ref:  "Psalm 127:3",
		Text: "Children are a heritage from the Lord, offspring a reward from him.",
	},
	"guidance": {
		Ref:  "Proverbs 22:6",
		Text: "Start children off on the way they should go, and even when they are old they will not turn from it.",
	},
	"comfort": {
		Ref:  "Psalm 23:1",
		Text: "The Lord is my shepherd, I lack nothing.",
	},
}

// passageFor looks up a passage by theme, falling back to the rest passage
// for unknown themes so spiritual replies always carry a valid citation.
func passageFor(theme string) scripturePassage {
	if p, ok := scriptureTable[theme]; ok {
		return p
	}
	return scriptureTable["rest"]
}
