package planner

import "sort"

// Emotion is the canonical check-in vocabulary. Each value maps 1:1 to an
// adaptation policy.
type Emotion string

const (
	Happy      Emotion = "happy"
	Normal     Emotion = "normal"
	Anxious    Emotion = "anxious"
	Tired      Emotion = "tired"
	Frustrated Emotion = "frustrated"
)

// AllEmotions returns the vocabulary in display order.
func AllEmotions() []Emotion {
	return []Emotion{Happy, Normal, Anxious, Tired, Frustrated}
}

// Valid reports whether e is in the canonical vocabulary.
func (e Emotion) Valid() bool {
	switch e {
	case Happy, Normal, Anxious, Tired, Frustrated:
		return true
	}
	return false
}

// emotionPolicy pairs the encouragement message with the reordering rule.
type emotionPolicy struct {
	message     string
	easierFirst bool
}

var emotionPolicies = map[Emotion]emotionPolicy{
	Happy: {
		message: "Awesome! Your energy is high. I've kept challenging tasks in your plan. You've got this! 💪",
	},
	Normal: {
		message: "You're doing great! Steady focus wins the race. Let's make progress together! 🎯",
	},
	Anxious: {
		message:     "I see you're feeling anxious. I've reordered your plan to start small and added calming break activities. Take it one small step at a time. 💙",
		easierFirst: true,
	},
	Tired: {
		message:     "You seem tired. Let's focus on easier, passive learning first - reading and review tasks. Your brain needs rest too. 😴",
		easierFirst: true,
	},
	Frustrated: {
		message:     "Frustration is normal! I've reordered tasks to start with quick wins. Small victories build momentum. 🌟",
		easierFirst: true,
	},
}

// Adapt reorders a schedule for the reported emotion and returns the new
// order plus an encouragement message. The input is never mutated.
//
// For anxious/tired/frustrated the task items are stable-sorted by
// difficulty ascending and breaks re-inserted after every second task, so
// breaks stay anchored to task count rather than fixed positions. The
// upbeat emotions keep the schedule as is.
func Adapt(items []Item, emotion Emotion) ([]Item, string) {
	policy, ok := emotionPolicies[emotion]
	if !ok {
		policy = emotionPolicies[Normal]
	}

	if !policy.easierFirst {
		out := make([]Item, len(items))
		copy(out, items)
		return out, policy.message
	}

	tasks := Tasks(items)
	breaks := Breaks(items)

	sorted := make([]Item, len(tasks))
	copy(sorted, tasks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Difficulty.rank() < sorted[j].Difficulty.rank()
	})

	// Re-interleave: break after every second task, reusing the original
	// break items in order until they run out.
	out := make([]Item, 0, len(items))
	bi := 0
	for i, t := range sorted {
		out = append(out, t)
		if (i+1)%breakEvery == 0 && bi < len(breaks) {
			out = append(out, breaks[bi])
			bi++
		}
	}
	// Any leftover breaks go at the end so no item is dropped.
	for ; bi < len(breaks); bi++ {
		out = append(out, breaks[bi])
	}

	return out, policy.message
}

// Message returns the encouragement message for an emotion without
// touching the schedule.
func Message(emotion Emotion) string {
	if policy, ok := emotionPolicies[emotion]; ok {
		return policy.message
	}
	return emotionPolicies[Normal].message
}
