package planner

// Suggestion copy is keyed strictly by energy level: there is no shared
// fallback pool, and draws are uniform with no repeat avoidance.

var breakPools = map[EnergyLevel][]string{
	EnergySluggish: {
		"Step outside for two minutes of daylight",
		"Do ten slow shoulder rolls away from the screen",
		"Splash cold water on your face and wrists",
		"Make a warm drink and sip it standing up",
	},
	EnergyWired: {
		"Walk a loop around the room or block",
		"Do twenty jumping jacks to burn off the buzz",
		"Shake out your arms and legs for thirty seconds",
		"Put on one song and move however you like",
		"Squeeze and release a stress ball ten times",
	},
	EnergyEnergized: {
		"Stretch tall, then touch your toes five times",
		"Refill your water and drink half the glass",
		"Do a quick tidy of one corner of your desk",
		"Look out the window and name five things you see",
	},
	EnergyAnxious: {
		"Breathe in for four counts, out for six, ten times",
		"Write down the worry, then close the notebook",
		"Press your feet into the floor and unclench your jaw",
		"Hold something warm and notice its weight",
		"Hum a tune for one minute to slow your breath",
	},
	EnergyBalanced: {
		"Stand up, stretch, and roll your neck gently",
		"Step away from the screen and rest your eyes",
		"Take a short walk to reset between tasks",
		"Drink some water and check your posture",
	},
}

var sensoryPools = map[EnergyLevel][]string{
	EnergySluggish: {
		"Bright light on, curtains open",
		"A citrus or peppermint scent to wake the senses",
		"Upbeat instrumental music at low volume",
		"A cool room, jacket off",
	},
	EnergyWired: {
		"Noise-cancelling headphones with steady brown noise",
		"Dim the lights slightly to take the edge off",
		"A weighted blanket over your lap while you work",
		"Chewing gum to give the restlessness somewhere to go",
	},
	EnergyEnergized: {
		"Your favorite focus playlist, volume up a notch",
		"A standing desk or high stool to keep the momentum",
		"Natural light if you can get it",
		"A clear desk with only the current task visible",
		"A timer you can see counting down",
	},
	EnergyAnxious: {
		"Soft lamp light instead of overhead glare",
		"Slow ambient sound or rain recordings",
		"A lavender or chamomile scent nearby",
		"Warm tea within reach",
	},
	EnergyBalanced: {
		"Comfortable volume background music",
		"A tidy workspace with water within reach",
		"Moderate, even lighting",
		"Phone face-down in another room",
	},
}

var motivationPools = map[EnergyLevel][]string{
	EnergySluggish: {
		"Slow is fine. Showing up is the whole game today.",
		"Small steps still move you forward.",
		"You don't need to feel ready, just start gently.",
		"Low energy days are for easy wins. Take them.",
	},
	EnergyWired: {
		"Channel the buzz into one thing at a time.",
		"Restless energy is still energy. Point it somewhere.",
		"One task, then a real break. That's the deal.",
		"You don't have to sit still perfectly to do good work.",
	},
	EnergyEnergized: {
		"You've got momentum. Spend it on what matters most.",
		"This is prime time. Go get the big one.",
		"Ride the wave while it's here.",
		"High energy plus a plan is unstoppable.",
		"Make this the session you'll be glad you had.",
	},
	EnergyAnxious: {
		"You only need to focus on the next small step.",
		"The work is a place to put your attention, not a test.",
		"Done gently still counts as done.",
		"Breathe first, then begin. There's no rush.",
	},
	EnergyBalanced: {
		"Steady and focused wins the session.",
		"A calm start sets up a strong finish.",
		"You're in a good place. Use it well.",
		"One block at a time, and the day takes care of itself.",
	},
}

var encouragementPools = map[EnergyLevel][]string{
	EnergySluggish: {
		"Just begin, even at half speed",
		"Good enough is the target here",
		"Tiny progress still counts",
		"Be kind to yourself while you work",
	},
	EnergyWired: {
		"Stay with this one until the timer ends",
		"Fidget if you need to, but keep going",
		"One thing at a time",
		"Finish this, then you can switch",
	},
	EnergyEnergized: {
		"Give this your full push",
		"You can do more here than you think",
		"Go deep on this one",
		"Make it count",
	},
	EnergyAnxious: {
		"No pressure, just attention",
		"Progress over perfection",
		"You can stop at the timer, promise",
		"Gentle focus is still focus",
	},
	EnergyBalanced: {
		"Nice and steady",
		"Stay with it",
		"You've got this one",
		"Keep the rhythm going",
	},
}

// suggestedActivityPools backs the self-guided plan when the user has no
// tasks at all: activity titles stand in for real task titles, keyed by the
// requested focus area.
var suggestedActivityPools = map[FocusArea][]string{
	AreaCreative: {
		"Free-write whatever is on your mind",
		"Sketch or outline an idea you've been sitting on",
		"Work on your current creative project",
	},
	AreaAnalytical: {
		"Dig into the problem you've been avoiding",
		"Review and organize your notes",
		"Research one question and write down what you find",
	},
	AreaAdmin: {
		"Clear your inbox down to ten messages",
		"Tidy your files and folders",
		"Knock out three small errands or follow-ups",
	},
	AreaAny: {
		"Work on whatever feels most pressing",
		"Pick one thing you've been putting off",
		"Spend the time on something future-you will thank you for",
	},
}

func BreakSuggestion(energy EnergyLevel, random RandomSource) string {
	return pick(breakPools[energy], random)
}

func SensoryBoost(energy EnergyLevel, random RandomSource) string {
	return pick(sensoryPools[energy], random)
}

func MotivationalMessage(energy EnergyLevel, random RandomSource) string {
	return pick(motivationPools[energy], random)
}

func Encouragement(energy EnergyLevel, random RandomSource) string {
	return pick(encouragementPools[energy], random)
}

func suggestedActivities(area FocusArea, random RandomSource) []string {
	pool := suggestedActivityPools[area]
	if len(pool) == 0 {
		pool = suggestedActivityPools[AreaAny]
	}
	// Up to two self-guided blocks, starting at a random offset so repeat
	// visitors don't always see the same pair.
	start := index(len(pool), random)
	titles := []string{pool[start]}
	if len(pool) > 1 {
		titles = append(titles, pool[(start+1)%len(pool)])
	}
	return titles
}

func pick(pool []string, random RandomSource) string {
	if len(pool) == 0 {
		return ""
	}
	return pool[index(len(pool), random)]
}

func index(size int, random RandomSource) int {
	i := int(random() * float64(size))
	if i >= size {
		i = size - 1
	}
	return i
}
