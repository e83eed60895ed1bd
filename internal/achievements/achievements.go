// Package achievements evaluates a fixed catalog of unlockable badges
// against a user's progress state.
package achievements

import "github.com/abhisek/mindflow/internal/progress"

// Rarity grades an achievement.
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// metric selects which progress figure an achievement tracks.
type metric int

const (
	metricPlans metric = iota
	metricTasks
	metricLevel
	metricStreak
	metricXP
)

// Definition is one catalog entry. Requirements are thresholds on a single
// progress metric; there are no compound conditions.
type Definition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Requirement int    `json:"requirement"`
	XPReward    int    `json:"xpReward"`
	Rarity      Rarity `json:"rarity"`

	metric metric
}

// Status is a definition evaluated against a user's state. Progress is
// clamped to the requirement so percentages never exceed 100.
type Status struct {
	Definition
	Unlocked bool `json:"unlocked"`
	Progress int  `json:"progress"`
}

var catalog = []Definition{
	{ID: "first_steps", Title: "First Steps", Description: "Create your first study plan", Requirement: 1, XPReward: 10, Rarity: RarityCommon, metric: metricPlans},
	{ID: "task_master", Title: "Task Master", Description: "Complete 10 tasks", Requirement: 10, XPReward: 50, Rarity: RarityRare, metric: metricTasks},
	{ID: "level_up", Title: "Rising Star", Description: "Reach Level 5", Requirement: 5, XPReward: 100, Rarity: RarityRare, metric: metricLevel},
	{ID: "streak_3", Title: "On Fire", Description: "Maintain a 3-day streak", Requirement: 3, XPReward: 30, Rarity: RarityCommon, metric: metricStreak},
	{ID: "streak_7", Title: "Dedication", Description: "Maintain a 7-day streak", Requirement: 7, XPReward: 75, Rarity: RarityEpic, metric: metricStreak},
	{ID: "xp_500", Title: "XP Hunter", Description: "Earn 500 total XP", Requirement: 500, XPReward: 50, Rarity: RarityRare, metric: metricXP},
	{ID: "task_50", Title: "Productivity King", Description: "Complete 50 tasks", Requirement: 50, XPReward: 200, Rarity: RarityEpic, metric: metricTasks},
	{ID: "level_10", Title: "Elite Scholar", Description: "Reach Level 10", Requirement: 10, XPReward: 250, Rarity: RarityLegendary, metric: metricLevel},
	{ID: "plans_10", Title: "Strategic Planner", Description: "Create 10 study plans", Requirement: 10, XPReward: 150, Rarity: RarityEpic, metric: metricPlans},
}

// Catalog returns the full achievement list in display order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

func metricValue(s progress.State, m metric) int {
	switch m {
	case metricPlans:
		return s.PlansCreated
	case metricTasks:
		return s.TasksCompleted
	case metricLevel:
		return s.Level
	case metricStreak:
		return s.CurrentStreak
	case metricXP:
		return s.XP
	}
	return 0
}

// Evaluate scores every catalog entry against the given state.
func Evaluate(s progress.State) []Status {
	out := make([]Status, 0, len(catalog))
	for _, def := range catalog {
		v := metricValue(s, def.metric)
		st := Status{
			Definition: def,
			Unlocked:   v >= def.Requirement,
			Progress:   min(v, def.Requirement),
		}
		out = append(out, st)
	}
	return out
}

// Unlocked filters Evaluate down to earned achievements.
func Unlocked(s progress.State) []Status {
	var out []Status
	for _, st := range Evaluate(s) {
		if st.Unlocked {
			out = append(out, st)
		}
	}
	return out
}
