package screening

// Base recommendation sets per risk tier. The critical and high tiers lead
// with an explicit seek-help-now instruction; auxiliary items are appended
// after the base set, never in place of it.
var baseRecommendations = map[RiskLevel][]string{
	RiskLow: {
		"Your answers suggest you're coping well right now.",
		"Keep up the habits that support you: rest when you can, and stay connected to people you trust.",
		"Check in with yourself again in a few weeks — this season changes fast.",
	},
	RiskModerate: {
		"Your answers suggest you've been struggling more than usual.",
		"Consider talking to someone you trust about how you've been feeling.",
		"Prioritize sleep and ask for concrete help with daily tasks.",
		"If these feelings persist for more than two weeks, mention them to your doctor or midwife.",
	},
	RiskHigh: {
		"Your answers suggest a significant level of distress — please reach out to a healthcare professional soon.",
		"Tell your doctor, midwife, or health visitor how you've been feeling; this is exactly what they are there for.",
		"You don't have to wait for a scheduled appointment to ask for support.",
		"Share this result with someone close to you so you're not carrying it alone.",
	},
	RiskCritical: {
		"Please seek professional help now — contact your doctor or a mental health professional today.",
		"If you have thoughts of harming yourself, call or text a crisis line such as 988 (Suicide & Crisis Lifeline) right away.",
		"You are not alone in this, and these feelings are treatable.",
		"Ask someone you trust to stay with you and help you make the first call.",
	},
}

// Auxiliary context keys and the values that trigger extra recommendations.
const (
	keySupportSystem = "support_system"
	keySelfCareTime  = "self_care_time"
)

func flaggedNo(answerContext map[string]string, key string) bool {
	switch answerContext[key] {
	case "no", "none":
		return true
	default:
		return false
	}
}

// Recommend builds the ordered recommendation list for a screening result:
// tier-based items first, then auxiliary items in the order their triggering
// conditions are evaluated.
func Recommend(result Result, answerContext map[string]string) []string {
	base := baseRecommendations[result.Risk]
	recs := make([]string, len(base))
	copy(recs, base)

	if flaggedNo(answerContext, keySupportSystem) {
		recs = append(recs,
			"Building a support network matters: a mothers' group, a friend who checks in, or family who can take a shift.")
	}
	if flaggedNo(answerContext, keySelfCareTime) {
		recs = append(recs,
			"Carve out a small daily window just for you, even fifteen minutes — it is maintenance, not a luxury.")
	}

	return recs
}
