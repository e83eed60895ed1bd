package planner

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/mindflow/internal/subjects"
)

// EnergyTime is the user-declared time of day when focus is highest.
type EnergyTime string

const (
	Morning   EnergyTime = "morning"
	Afternoon EnergyTime = "afternoon"
	Night     EnergyTime = "night"
)

// Valid reports whether the value is a recognized energy time. The empty
// string is accepted and treated like morning (no reordering).
func (e EnergyTime) Valid() bool {
	switch e {
	case Morning, Afternoon, Night, "":
		return true
	}
	return false
}

const (
	// FocusBlockMinutes caps a single sitting; longer tasks are split.
	FocusBlockMinutes = 25

	// BreakMinutes is the fixed duration of an inserted break.
	BreakMinutes = 5

	// breakEvery inserts a break after this many task items.
	breakEvery = 2

	breakName = "Brain Break"
)

// BuildRequest carries everything the builder needs for one schedule.
// RawTasks must be non-empty after trimming and Hours positive; both are
// the caller's validation responsibility.
type BuildRequest struct {
	RawTasks   string
	Hours      int
	Subject    string
	Level      subjects.KnowledgeLevel
	Challenges []string
	EnergyTime EnergyTime
}

// Builder produces deterministic, time-boxed schedules. Randomized choices
// (difficulty, break activity) are drawn from the injected source so output
// is reproducible under a fixed seed.
type Builder struct {
	estimator *subjects.Estimator
	rng       *rand.Rand
}

// NewBuilder creates a Builder around the given estimator and random source.
// A nil rng defaults to a fixed-seed source, which is what tests want and is
// acceptable in production: variety across plans comes from the input, not
// the seed.
func NewBuilder(estimator *subjects.Estimator, rng *rand.Rand) *Builder {
	if rng == nil {
		rng = rand.New(rand.NewPCG(1, 2))
	}
	return &Builder{estimator: estimator, rng: rng}
}

// Build turns a raw task dump into an ordered schedule of task and break
// items. The task items preserve the source line order; the only reordering
// is the final energy-time rotation/reversal.
func (b *Builder) Build(req BuildRequest) []Item {
	lines := splitTasks(req.RawTasks)
	if len(lines) == 0 {
		return nil
	}

	durations := b.fitDurations(lines, req)

	var (
		items     []Item
		nextID    = 1
		taskCount = 0
	)

	for i, line := range lines {
		total := durations[i]
		parts := (total + FocusBlockMinutes - 1) / FocusBlockMinutes
		focus := focusLabels[i%len(focusLabels)]
		difficulty := b.pickDifficulty()

		for part := 0; part < parts; part++ {
			dur := min(FocusBlockMinutes, total-part*FocusBlockMinutes)
			name := line
			if parts > 1 {
				name = partName(line, part+1, parts)
			}

			items = append(items, Item{
				ID:         nextID,
				Type:       TypeTask,
				Name:       name,
				Duration:   dur,
				Difficulty: difficulty,
				Focus:      focus,
				Tip:        tipFor(difficulty, req.Challenges),
				Subject:    req.Subject,
			})
			nextID++
			taskCount++

			if taskCount%breakEvery == 0 {
				items = append(items, Item{
					ID:       nextID,
					Type:     TypeBreak,
					Name:     breakName,
					Duration: BreakMinutes,
					Activity: b.pickActivity(),
				})
				nextID++
			}
		}
	}

	return reorderForEnergy(items, req.EnergyTime)
}

// fitDurations estimates each task's duration and scales the set down
// proportionally when the naive total would blow the hour budget. Breaks
// are inserted per task item, not per focus block, so the reservation is
// derived from the item count the scaled durations actually split into.
// Growing the reservation shrinks the study budget, which can only shrink
// the item count, so the refit loop settles after a few rounds and the
// finished schedule lands within one break of hours*60.
func (b *Builder) fitDurations(lines []string, req BuildRequest) []int {
	estimates := make([]int, len(lines))
	sum := 0
	for i := range lines {
		estimates[i] = b.estimator.Estimate(req.Subject, req.Level)
		sum += estimates[i]
	}

	budget := req.Hours * 60
	durations := make([]int, len(lines))

	breaks := 0
	for {
		studyBudget := budget - breaks*BreakMinutes
		if studyBudget < len(lines) {
			studyBudget = len(lines) // at least a minute per task
		}

		copy(durations, estimates)
		if sum > studyBudget {
			for i := range durations {
				scaled := durations[i] * studyBudget / sum
				if scaled < 1 {
					scaled = 1
				}
				durations[i] = scaled
			}
		}

		taskItems := 0
		for _, d := range durations {
			taskItems += (d + FocusBlockMinutes - 1) / FocusBlockMinutes
		}
		if actual := taskItems / breakEvery; actual > breaks {
			breaks = actual
			continue
		}
		return durations
	}
}

func (b *Builder) pickDifficulty() Difficulty {
	all := []Difficulty{Easy, Medium, Hard}
	return all[b.rng.IntN(len(all))]
}

func (b *Builder) pickActivity() string {
	return breakActivities[b.rng.IntN(len(breakActivities))]
}

// splitTasks breaks the raw dump into trimmed, non-blank lines.
func splitTasks(raw string) []string {
	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

func partName(task string, k, n int) string {
	return fmt.Sprintf("%s - Part %d/%d", task, k, n)
}

// reorderForEnergy applies the single permitted reordering step: night owls
// get the whole sequence reversed, afternoon people get a cyclic left
// rotation by a third, morning (or unset) keeps the build order.
func reorderForEnergy(items []Item, energy EnergyTime) []Item {
	switch energy {
	case Night:
		reversed := make([]Item, len(items))
		for i, it := range items {
			reversed[len(items)-1-i] = it
		}
		return reversed
	case Afternoon:
		pivot := len(items) / 3
		rotated := make([]Item, 0, len(items))
		rotated = append(rotated, items[pivot:]...)
		rotated = append(rotated, items[:pivot]...)
		return rotated
	default:
		return items
	}
}
