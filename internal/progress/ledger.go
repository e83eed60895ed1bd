package progress

import "time"

// State is the aggregate a user's ledger reduces to. It is a pure function
// of the event history; persisting it is a cache, never the source of truth.
type State struct {
	XP               int       `json:"xp"`
	Level            int       `json:"level"`
	TasksCompleted   int       `json:"tasksCompleted"`
	PlansCreated     int       `json:"plansCreated"`
	EmotionsLogged   int       `json:"emotionsLogged"`
	SessionsLogged   int       `json:"sessionsLogged"`
	TotalMinutes     int       `json:"totalMinutes"`
	CurrentStreak    int       `json:"currentStreak"`
	LongestStreak    int       `json:"longestStreak"`
	LastActivityDate time.Time `json:"lastActivityDate"`
}

// Level converts accumulated XP into a level, starting at 1.
func Level(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/XPPerLevel + 1
}

// dateOf truncates a timestamp to its calendar day in UTC. Streaks compare
// days, not instants.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Apply folds one event into the state and returns the result. The input
// state is not mutated.
func Apply(s State, e Event) State {
	switch e.Kind {
	case EventTaskCompleted:
		s.XP += XPTaskCompleted
		s.TasksCompleted++
	case EventSessionLogged:
		if e.Minutes > 0 {
			s.TotalMinutes += e.Minutes
		}
		s.SessionsLogged++
	case EventEmotionChecked:
		s.XP += XPEmotionChecked
		s.EmotionsLogged++
	case EventPlanCreated:
		s.XP += XPPlanCreated
		s.PlansCreated++
	}
	s.Level = Level(s.XP)

	if e.isActivity() {
		s = advanceStreak(s, e.Timestamp)
	}
	return s
}

// advanceStreak updates the daily streak for an activity at the given time.
// Same day keeps the streak, the next calendar day extends it, and any
// longer gap resets it to 1.
func advanceStreak(s State, at time.Time) State {
	day := dateOf(at)
	switch {
	case s.LastActivityDate.IsZero():
		s.CurrentStreak = 1
	case day.Equal(dateOf(s.LastActivityDate)):
		// Already counted today.
	case day.Equal(dateOf(s.LastActivityDate).AddDate(0, 0, 1)):
		s.CurrentStreak++
	default:
		s.CurrentStreak = 1
	}
	if s.CurrentStreak > s.LongestStreak {
		s.LongestStreak = s.CurrentStreak
	}
	if day.After(dateOf(s.LastActivityDate)) {
		s.LastActivityDate = day
	}
	return s
}

// Reduce replays a full history into a state. Events must be in
// chronological order for streaks to come out right.
func Reduce(events []Event) State {
	var s State
	s.Level = Level(0)
	for _, e := range events {
		s = Apply(s, e)
	}
	return s
}
