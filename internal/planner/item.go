// Package planner builds time-boxed study schedules from a raw task dump and
// adapts them to the learner's reported emotional state.
package planner

// ItemType discriminates schedule entries.
type ItemType string

const (
	TypeTask  ItemType = "task"
	TypeBreak ItemType = "break"
)

// Difficulty is the per-item challenge rating.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// rank orders difficulties for sorting. Unknown values sort last.
func (d Difficulty) rank() int {
	switch d {
	case Easy:
		return 1
	case Medium:
		return 2
	case Hard:
		return 3
	}
	return 4
}

// Item is one entry in a generated schedule: a focused task block or a
// short restorative break. Break items only use ID, Name, Duration and
// Activity; task items use everything else.
type Item struct {
	ID         int        `json:"id"`
	Type       ItemType   `json:"type"`
	Name       string     `json:"name"`
	Duration   int        `json:"duration"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Focus      string     `json:"focus,omitempty"`
	Tip        string     `json:"tip,omitempty"`
	Subject    string     `json:"subject,omitempty"`
	Activity   string     `json:"activity,omitempty"`
	Progress   int        `json:"progress"`
	Completed  bool       `json:"completed"`
}

// IsBreak reports whether the item is a break.
func (it Item) IsBreak() bool { return it.Type == TypeBreak }

// Tasks filters the schedule down to its task items, preserving order.
func Tasks(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if !it.IsBreak() {
			out = append(out, it)
		}
	}
	return out
}

// Breaks filters the schedule down to its break items, preserving order.
func Breaks(items []Item) []Item {
	var out []Item
	for _, it := range items {
		if it.IsBreak() {
			out = append(out, it)
		}
	}
	return out
}

// TotalStudyMinutes sums the durations of task items.
func TotalStudyMinutes(items []Item) int {
	total := 0
	for _, it := range items {
		if !it.IsBreak() {
			total += it.Duration
		}
	}
	return total
}

// TotalBreakMinutes sums the durations of break items.
func TotalBreakMinutes(items []Item) int {
	total := 0
	for _, it := range items {
		if it.IsBreak() {
			total += it.Duration
		}
	}
	return total
}
