// Package progress derives gamification state (XP, level, streaks) from an
// append-only history of study events.
package progress

import "time"

// EventKind identifies a ledger event.
type EventKind string

const (
	EventTaskCompleted  EventKind = "task_completed"
	EventSessionLogged  EventKind = "session_logged"
	EventEmotionChecked EventKind = "emotion_checked"
	EventPlanCreated    EventKind = "plan_created"
)

// XP awards per event kind.
const (
	XPTaskCompleted  = 15
	XPEmotionChecked = 5
	XPPlanCreated    = 25
)

// XPPerLevel is the flat level threshold: level = xp/100 + 1.
const XPPerLevel = 100

// Event is one entry in a user's ledger. Only the fields relevant to the
// kind are set: TaskID/Subject for task completions, Minutes for sessions,
// Emotion for check-ins.
type Event struct {
	Kind      EventKind
	TaskID    string
	Subject   string
	Emotion   string
	Minutes   int
	Timestamp time.Time
}

// isActivity reports whether the event counts toward the daily streak.
// Only doing actual work does; check-ins and plan creation don't.
func (e Event) isActivity() bool {
	return e.Kind == EventTaskCompleted || e.Kind == EventSessionLogged
}

// TaskCompleted builds a task-completion event.
func TaskCompleted(taskID, subject string, at time.Time) Event {
	return Event{Kind: EventTaskCompleted, TaskID: taskID, Subject: subject, Timestamp: at}
}

// SessionLogged builds a study-session event.
func SessionLogged(minutes int, at time.Time) Event {
	return Event{Kind: EventSessionLogged, Minutes: minutes, Timestamp: at}
}

// EmotionChecked builds a mood check-in event.
func EmotionChecked(emotion string, at time.Time) Event {
	return Event{Kind: EventEmotionChecked, Emotion: emotion, Timestamp: at}
}

// PlanCreated builds a plan-creation event.
func PlanCreated(at time.Time) Event {
	return Event{Kind: EventPlanCreated, Timestamp: at}
}
