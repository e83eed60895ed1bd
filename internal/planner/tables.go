package planner

// focusLabels are pedagogical framings cycled across the task list so one
// study block is not six repetitions of the same mode.
var focusLabels = []string{
	"Understanding core concepts",
	"Practice problems",
	"Review and memorization",
	"Application and synthesis",
	"Deep practice",
	"Testing knowledge",
}

// difficultyTips are fallback tips keyed by item difficulty.
var difficultyTips = map[Difficulty]string{
	Easy:   "Start simple and build momentum 💪",
	Medium: "Stay focused - you're getting stronger 🎯",
	Hard:   "Break it down into smaller pieces 🧩",
}

// challengeTips are keyed by the self-reported challenge codes from the
// intake form. The first reported challenge wins.
var challengeTips = map[string]string{
	"concentration":   "Use the Pomodoro technique (25 min focus, 5 min break) 🍅",
	"procrastination": "Start with just 5 minutes - momentum builds! 🚀",
	"anxiety":         "Take deep breaths and go slow. You got this. 💙",
	"memory":          "Teach someone else what you learn - it sticks better! 👥",
	"time":            "Multitask: listen to notes while exercising ⏰",
}

// KnownChallenge reports whether code is a recognized challenge code.
func KnownChallenge(code string) bool {
	_, ok := challengeTips[code]
	return ok
}

// breakActivities are short restorative actions attached to break items.
var breakActivities = []string{
	"Stretch and breathe deeply 🧘",
	"Get a glass of water 💧",
	"Take a quick walk 🚶",
	"Do some jumping jacks ⚡",
	"Look away from screen, rest eyes 👀",
}

// tipFor resolves the study tip for an item: the first reported challenge's
// tip when one exists, otherwise the difficulty tip.
func tipFor(difficulty Difficulty, challenges []string) string {
	if len(challenges) > 0 {
		if tip, ok := challengeTips[challenges[0]]; ok {
			return tip
		}
	}
	return difficultyTips[difficulty]
}
