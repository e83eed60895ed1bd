// Package wellness serves the rotating study-health tips shown alongside
// plans.
package wellness

import "math/rand/v2"

var tips = []string{
	"The Pomodoro Technique: Study for 25 minutes, break for 5. It works!",
	"Hydration helps focus. Drink water every hour.",
	"Natural light improves mood and concentration. Study near a window if possible.",
	"Movement is medicine. A 10-minute walk boosts cognitive function.",
	"Sleep > Cramming. Your brain consolidates learning during sleep.",
	"Deep breathing for 2 minutes reduces anxiety and improves focus.",
	"Background music without lyrics can enhance concentration for some people.",
	"Teach what you learn to solidify understanding.",
	"Take breaks BEFORE you feel exhausted, not after.",
	"Your brain works better when you are kind to yourself. Self-compassion matters.",
	"Spaced repetition is key to long-term retention.",
	"Eliminate distractions: silence notifications during study sessions.",
	"Study in the same location each day to build habit cues.",
	"Active recall is more effective than passive reading.",
	"Interleave different topics to improve learning transfer.",
}

// Tips returns every tip in catalog order.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// Random picks one tip using the given source, or the package default when
// rng is nil.
func Random(rng *rand.Rand) string {
	if rng == nil {
		return tips[rand.IntN(len(tips))]
	}
	return tips[rng.IntN(len(tips))]
}
