package triage

import "github.com/nurtura-health/triage-engine/internal/lexicon"

// Every topic generator branches the same way: a first visit gets the
// introductory variant with a broad tip set, a repeat visit gets the
// continuity variant ("since we last talked about...") with tips narrowed
// toward troubleshooting. The dispatcher calls generators before it marks
// the topic discussed, so WasDiscussed still reflects the previous turns.

func (e *Engine) behaviorResponse(ctx *Context) Response {
	if ctx.WasDiscussed(lexicon.TopicBehavior) {
		return Response{
			Message: "Since we last talked about your little one's behavior, how have things been going? " +
				"Changes in behavior usually take a couple of weeks of consistency before they stick.",
			Tone:         "steady",
			ResponseType: string(lexicon.TopicBehavior) + continuitySuffix,
			PracticalTips: []string{
				"Keep responses to the difficult behavior identical every time, even when it's exhausting",
				"Watch for the trigger moments (hunger, tiredness, transitions) and get ahead of them",
				"Notice and name the good moments out loud, however small",
			},
			FollowUpQuestions: []string{
				"Did anything change since we spoke — new sibling, new routine, less sleep?",
				"Which situations still set things off most often?",
			},
		}
	}
	return Response{
		Message: "Difficult behavior at this age is almost always communication, not defiance. " +
			"Your child is telling you something they don't yet have words for. " + e.styleClosing(ctx),
		Tone:         "steady",
		ResponseType: string(lexicon.TopicBehavior) + introSuffix,
		PracticalTips: []string{
			"Stay calm and get down to their eye level before correcting",
			"Offer two acceptable choices instead of open-ended questions",
			"Keep rules few, clear, and the same with every caregiver",
			"Praise the behavior you want to see more of",
		},
		FollowUpQuestions: []string{
			"When does the behavior show up most — mealtimes, bedtime, leaving the house?",
			"How do you usually respond in the moment?",
		},
	}
}

func (e *Engine) sleepResponse(ctx *Context) Response {
	if ctx.WasDiscussed(lexicon.TopicSleep) {
		return Response{
			Message: "Since we last talked about sleep, have the nights improved at all? " +
				"If not, let's troubleshoot — small adjustments usually matter more than big overhauls.",
			Tone:         "reassuring",
			ResponseType: string(lexicon.TopicSleep) + continuitySuffix,
			PracticalTips: []string{
				"Check whether the wake windows shifted — overtiredness is the most common culprit",
				"Keep night interactions boring: dim light, low voice, minimal handling",
				"Hold the same bedtime for at least a week before judging a change",
			},
			FollowUpQuestions: []string{
				"What changed since we last spoke about it?",
				"Is the hardest part falling asleep, or staying asleep?",
			},
		}
	}
	return Response{
		Message: "Sleep struggles are one of the hardest parts of this season, and they are not a " +
			"reflection of anything you're doing wrong. " + e.styleClosing(ctx),
		Tone:         "reassuring",
		ResponseType: string(lexicon.TopicSleep) + introSuffix,
		PracticalTips: []string{
			"Build a short, predictable wind-down: bath, feed, story, lights out",
			"Keep the room dark and slightly cool",
			"Put baby down drowsy but awake when you can",
			"Watch wake windows for your baby's age rather than the clock",
		},
		FollowUpQuestions: []string{
			"How old is your little one?",
			"What does bedtime look like right now?",
		},
	}
}

func (e *Engine) guiltResponse(ctx *Context) Response {
	if ctx.WasDiscussed(lexicon.TopicGuilt) {
		return Response{
			Message: "Since we last talked about those heavy feelings, I want to check in: has the " +
				"guilt eased, or is it still sitting with you most days? You're showing up, and that counts.",
			Tone:         "compassionate",
			ResponseType: string(lexicon.TopicGuilt) + continuitySuffix,
			PracticalTips: []string{
				"Notice when the guilt voice speaks and ask whether you'd say that to a friend",
				"Pick one small thing each day that is just for you, even ten minutes",
				"If the heaviness is constant, talking to a professional is strength, not failure",
			},
			FollowUpQuestions: []string{
				"What moments trigger it most strongly now?",
				"Do you have someone nearby you can be honest with about this?",
			},
		}
	}
	return Response{
		Message: "What you're feeling is incredibly common among mothers, and feeling it doesn't make " +
			"it true. You are not failing — you're carrying a lot. " + e.styleClosing(ctx),
		Tone:         "compassionate",
		ResponseType: string(lexicon.TopicGuilt) + introSuffix,
		PracticalTips: []string{
			"Lower the bar on purpose: a fed, loved baby and a rested mom beat a spotless house",
			"Say the feeling out loud to someone you trust — guilt shrinks when spoken",
			"Write down three things that went well today, however small",
			"Treat rest as part of the job, not a reward for finishing it",
		},
		FollowUpQuestions: []string{
			"When did you start feeling this way?",
			"What does a typical day look like for you right now?",
		},
	}
}

func (e *Engine) routineResponse(ctx *Context) Response {
	if ctx.WasDiscussed(lexicon.TopicRoutine) {
		return Response{
			Message: "Since we last talked about your routine, did any anchor points stick? " +
				"Routines settle in layers — keep the ones that worked and drop the rest without guilt.",
			Tone:         "practical",
			ResponseType: string(lexicon.TopicRoutine) + continuitySuffix,
			PracticalTips: []string{
				"Keep only the anchors that survived the week; rebuild around those",
				"Time-box the hardest stretch of the day and plan just that stretch",
				"Ask your partner or family to own one fixed block of the day",
			},
			FollowUpQuestions: []string{
				"Which part of the day is still the most chaotic?",
				"What worked, even once?",
			},
		}
	}
	return Response{
		Message: "A routine with a baby is less a timetable and more a rhythm — a few fixed anchor " +
			"points with flexible space between them. " + e.styleClosing(ctx),
		Tone:         "practical",
		ResponseType: string(lexicon.TopicRoutine) + introSuffix,
		PracticalTips: []string{
			"Anchor the day with two or three fixed points: wake-up, one nap, bedtime",
			"Prep tomorrow's essentials the night before",
			"Batch similar tasks instead of scattering them through the day",
			"Leave deliberate empty space — a full schedule with a baby is a broken schedule",
		},
		FollowUpQuestions: []string{
			"What part of the day feels most out of control?",
			"Who else is home to share the load?",
		},
	}
}

func (e *Engine) feedingResponse(ctx *Context) Response {
	if ctx.WasDiscussed(lexicon.TopicFeeding) {
		return Response{
			Message: "Since we last talked about feeding, how has it been going? " +
				"Feeding issues often shift week to week, so let's look at what's different now.",
			Tone:         "supportive",
			ResponseType: string(lexicon.TopicFeeding) + continuitySuffix,
			PracticalTips: []string{
				"Track one feed closely to spot where it breaks down — latch, flow, or fatigue",
				"A lactation consultant can often fix in one session what weeks of guessing can't",
				"Weigh progress across the week, not against a single hard day",
			},
			FollowUpQuestions: []string{
				"What's changed since we last discussed it?",
				"Is the difficulty at the start of feeds, or throughout?",
			},
		}
	}
	return Response{
		Message: "Feeding is such intense work in this season, whatever way you feed your baby. " +
			"Fed is the goal, and you're the expert on your own child. " + e.styleClosing(ctx),
		Tone:         "supportive",
		ResponseType: string(lexicon.TopicFeeding) + introSuffix,
		PracticalTips: []string{
			"Get comfortable first — pillows, water, and support change everything",
			"Watch the baby, not the clock: hunger cues beat schedules",
			"Discomfort that persists is worth a lactation consult, not endurance",
			"Keep a simple log for a few days if you're unsure about intake",
		},
		FollowUpQuestions: []string{
			"Are you breastfeeding, bottle feeding, or combining?",
			"What part of feeding worries you most?",
		},
	}
}

func (e *Engine) spiritualStudyResponse(ctx *Context) Response {
	p := passageFor("guidance")
	if ctx.WasDiscussed(lexicon.TopicSpiritualStudy) {
		return Response{
			Message: "Since we last talked about study, were you able to carve out any quiet minutes? " +
				"Even a verse read while the baby naps counts. \"" + p.Text + "\" (" + p.Ref + ")",
			Tone:         "gentle",
			ResponseType: string(lexicon.TopicSpiritualStudy) + continuitySuffix,
			PracticalTips: []string{
				"Shrink the goal: one passage, read twice, beats a chapter abandoned",
				"Pair study with an existing anchor like the first morning feed",
			},
			FollowUpQuestions: []string{
				"What's been getting in the way of the quiet time you wanted?",
			},
			ScriptureRef: p.Ref,
		}
	}
	return Response{
		Message: "Wanting to stay in the Word during this season says a lot. Study right now will " +
			"look different than it used to, and that's okay. \"" + p.Text + "\" (" + p.Ref + ")",
		Tone:         "gentle",
		ResponseType: string(lexicon.TopicSpiritualStudy) + introSuffix,
		PracticalTips: []string{
			"Keep a Bible or app within reach of where you feed the baby",
			"Pick one short book and move through it slowly",
			"Audio versions count — listen during walks or chores",
		},
		FollowUpQuestions: []string{
			"Is there a book or theme you've been wanting to dig into?",
		},
		ScriptureRef: p.Ref,
	}
}

func (e *Engine) scriptureResponse(ctx *Context) Response {
	p := passageFor("strength")
	if ctx.WasDiscussed(lexicon.TopicScripture) {
		p = passageFor("care")
		return Response{
			Message: "Since we last shared a passage, here is another one for where you are now: \"" +
				p.Text + "\" (" + p.Ref + ")",
			Tone:         "gentle",
			ResponseType: string(lexicon.TopicScripture) + continuitySuffix,
			FollowUpQuestions: []string{
				"Did the last passage stay with you during the week?",
			},
			ScriptureRef: p.Ref,
		}
	}
	return Response{
		Message: "Here is a passage many mothers hold onto in this season: \"" + p.Text + "\" (" + p.Ref + ")",
		Tone:         "gentle",
		ResponseType: string(lexicon.TopicScripture) + introSuffix,
		FollowUpQuestions: []string{
			"Would you like a verse for a specific situation you're facing?",
		},
		ScriptureRef: p.Ref,
	}
}

func (e *Engine) prayerResponse(ctx *Context) Response {
	p := passageFor("anxiety")
	if ctx.WasDiscussed(lexicon.TopicPrayer) {
		return Response{
			Message: "Since we last talked about prayer, remember it doesn't need to be long or " +
				"polished — tired, honest words are enough. \"" + p.Text + "\" (" + p.Ref + ")",
			Tone:         "gentle",
			ResponseType: string(lexicon.TopicPrayer) + continuitySuffix,
			PracticalTips: []string{
				"Pray in the minutes you already have: feeds, walks, the drive home",
			},
			FollowUpQuestions: []string{
				"Is there something specific you'd like to bring to prayer this week?",
			},
			ScriptureRef: p.Ref,
		}
	}
	return Response{
		Message: "Prayer in this season can be short, interrupted, and still real. " +
			"\"" + p.Text + "\" (" + p.Ref + ")",
		Tone:         "gentle",
		ResponseType: string(lexicon.TopicPrayer) + introSuffix,
		PracticalTips: []string{
			"Try breath-length prayers while rocking or feeding the baby",
			"Keep a small list of what you're asking for and look back monthly",
		},
		FollowUpQuestions: []string{
			"What's weighing on you most that we could put into words?",
		},
		ScriptureRef: p.Ref,
	}
}

func (e *Engine) spiritualReflectionResponse(ctx *Context) Response {
	p := passageFor("children")
	if ctx.WasDiscussed(lexicon.TopicSpiritualReflection) {
		p = passageFor("comfort")
		return Response{
			Message: "Since we last reflected together, I hope you've had a quiet moment or two. " +
				"\"" + p.Text + "\" (" + p.Ref + ")",
			Tone:         "gentle",
			ResponseType: string(lexicon.TopicSpiritualReflection) + continuitySuffix,
			FollowUpQuestions: []string{
				"Where have you noticed grace in the everyday since we talked?",
			},
			ScriptureRef: p.Ref,
		}
	}
	return Response{
		Message: "Motherhood has a way of becoming its own kind of devotion — the ordinary care you " +
			"give is seen. \"" + p.Text + "\" (" + p.Ref + ")",
		Tone:         "gentle",
		ResponseType: string(lexicon.TopicSpiritualReflection) + introSuffix,
		FollowUpQuestions: []string{
			"How has this season shaped your faith so far?",
		},
		ScriptureRef: p.Ref,
	}
}

// genericOpeners maps each emotional state to its canned empathetic opening.
// The generic handler branches on state, not keywords.
var genericOpeners = map[EmotionalState]string{
	StateAnxious:     "I can hear the worry in your message, and it makes sense.",
	StateOverwhelmed: "It sounds like you're carrying a lot right now.",
	StateFrustrated:  "That sounds genuinely frustrating, and you're allowed to feel it.",
	StateHappy:       "I love hearing this from you!",
	StateCalm:        "Thank you for sharing that with me.",
}

var genericEncouragements = []string{
	"I'm here with you, whatever today looks like.",
	"You know your family better than anyone — trust that.",
	"One step at a time is still moving forward.",
}

func (e *Engine) genericResponse(ctx *Context) Response {
	opener, ok := genericOpeners[ctx.EmotionalState]
	if !ok {
		opener = genericOpeners[StateCalm]
	}
	return Response{
		Message:      opener + " " + e.pickVariant(genericEncouragements),
		Tone:         "empathetic",
		ResponseType: ResponseTypeGeneric,
		FollowUpQuestions: []string{
			"Tell me a little more — what's on your mind?",
		},
	}
}

var offDomainRedirects = []string{
	"That's a bit outside what I can help with — I focus on motherhood, family life, emotional well-being, and faith. Is there anything in those areas on your mind?",
	"I'm not the right guide for that one! My corner is parenting, family, how you're feeling, and faith. What's going on in your world as a mom?",
	"I'll have to pass on that topic, but I'm all ears for anything about your little one, your family, or how you're holding up. Where shall we start?",
}

// offDomainResponse is the fixed redirect for messages outside the
// assistant's domain. It is a defined user-visible reply, not an error.
func (e *Engine) offDomainResponse() Response {
	return Response{
		Message:      e.pickVariant(offDomainRedirects),
		Tone:         "kind",
		ResponseType: ResponseTypeOffDomain,
	}
}

// styleClosing appends a closing line matching the caller's response style.
func (e *Engine) styleClosing(ctx *Context) string {
	switch ctx.ResponseStyle {
	case StyleDirect:
		return "Here's what tends to work:"
	case StyleSpiritual:
		return "You're not walking this alone — let's look at it together."
	case StylePractical:
		return "A few concrete things you can try today:"
	default:
		return "Let's work through it together."
	}
}
