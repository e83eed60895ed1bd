package planner

import (
	"math/rand/v2"
	"reflect"
	"testing"

	"github.com/abhisek/mindflow/internal/subjects"
)

func testBuilder() *Builder {
	return NewBuilder(subjects.NewEstimator(), rand.New(rand.NewPCG(7, 11)))
}

func TestBuild_TaskCountAndBudget(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks:   "algebra review\ngeometry practice",
		Hours:      2,
		Subject:    "math",
		Level:      subjects.Intermediate,
		EnergyTime: Morning,
	})

	tasks := Tasks(items)
	if len(tasks) < 2 {
		t.Fatalf("expected at least 2 task items, got %d", len(tasks))
	}
	if len(Breaks(items)) < 1 {
		t.Fatalf("expected at least 1 break item, got 0")
	}
	total := TotalStudyMinutes(items) + TotalBreakMinutes(items)
	if total > 120 {
		t.Errorf("scheduled %d minutes, budget is 120", total)
	}
}

func TestBuild_ManyShortTasksStayWithinBudget(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks: "a\nb\nc\nd\ne\nf\ng\nh\ni\nj",
		Hours:    1,
		Subject:  "juggling",
		Level:    subjects.Intermediate,
	})

	// Ten single-part tasks draw a break after every second one, so the
	// break time has to come out of the study budget.
	total := TotalStudyMinutes(items) + TotalBreakMinutes(items)
	if total > 60+BreakMinutes {
		t.Fatalf("schedule totals %d minutes, exceeds budget 60 (+%d tolerance)", total, BreakMinutes)
	}
	if len(Tasks(items)) != 10 {
		t.Fatalf("expected 10 task items, got %d", len(Tasks(items)))
	}
}

func TestBuild_SplitsLongTasksIntoParts(t *testing.T) {
	b := testBuilder()
	// math beginner estimates 81 minutes per topic: 4 parts of 25/25/25/6.
	items := b.Build(BuildRequest{
		RawTasks: "algebra review",
		Hours:    4,
		Subject:  "math",
		Level:    subjects.Beginner,
	})

	tasks := Tasks(items)
	if len(tasks) != 4 {
		t.Fatalf("expected 4 parts, got %d", len(tasks))
	}
	wantNames := []string{
		"algebra review - Part 1/4",
		"algebra review - Part 2/4",
		"algebra review - Part 3/4",
		"algebra review - Part 4/4",
	}
	wantDurations := []int{25, 25, 25, 6}
	for i, task := range tasks {
		if task.Name != wantNames[i] {
			t.Errorf("part %d name = %q, want %q", i, task.Name, wantNames[i])
		}
		if task.Duration != wantDurations[i] {
			t.Errorf("part %d duration = %d, want %d", i, task.Duration, wantDurations[i])
		}
		if task.Duration > FocusBlockMinutes {
			t.Errorf("part %d duration %d exceeds focus block cap", i, task.Duration)
		}
	}
}

func TestBuild_IDsMonotonic(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks: "a\nb\nc\nd",
		Hours:    3,
		Subject:  "history",
		Level:    subjects.Intermediate,
	})

	seen := map[int]bool{}
	prev := 0
	for _, it := range items {
		if seen[it.ID] {
			t.Fatalf("duplicate id %d", it.ID)
		}
		seen[it.ID] = true
		if it.ID <= prev {
			t.Fatalf("ids not increasing: %d after %d", it.ID, prev)
		}
		prev = it.ID
	}
}

func TestBuild_BreakAfterEverySecondTask(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks: "a\nb\nc\nd",
		Hours:    3,
		Subject:  "history",
		Level:    subjects.Advanced, // 35*0.7 = 25, one part per task
	})

	taskCount := 0
	for _, it := range items {
		if it.IsBreak() {
			if taskCount%2 != 0 || taskCount == 0 {
				t.Fatalf("break after %d tasks, want multiples of 2", taskCount)
			}
			if it.Duration != BreakMinutes {
				t.Errorf("break duration = %d, want %d", it.Duration, BreakMinutes)
			}
			continue
		}
		taskCount++
	}
	if taskCount != 4 {
		t.Fatalf("expected 4 task items, got %d", taskCount)
	}
}

func TestBuild_SkipsBlankLines(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks: "  \nancient history\n\n\t\nmedieval timelines\n",
		Hours:    2,
		Subject:  "history",
		Level:    subjects.Advanced, // single-part tasks, names stay unsplit
	})

	var names []string
	for _, it := range Tasks(items) {
		names = append(names, it.Name)
	}
	want := []string{"ancient history", "medieval timelines"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("task names = %v, want %v", names, want)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	req := BuildRequest{
		RawTasks:   "algebra\ngeometry\nstatistics",
		Hours:      2,
		Subject:    "math",
		Level:      subjects.Intermediate,
		Challenges: []string{"procrastination"},
		EnergyTime: Afternoon,
	}

	a := NewBuilder(subjects.NewEstimator(), rand.New(rand.NewPCG(3, 5))).Build(req)
	b := NewBuilder(subjects.NewEstimator(), rand.New(rand.NewPCG(3, 5))).Build(req)

	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical seeded builds differ")
	}
}

func TestBuild_ChallengeTipWins(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks:   "algebra",
		Hours:      1,
		Subject:    "math",
		Level:      subjects.Advanced,
		Challenges: []string{"memory", "time"},
	})

	for _, task := range Tasks(items) {
		if task.Tip != challengeTips["memory"] {
			t.Errorf("tip = %q, want first challenge's tip", task.Tip)
		}
	}
}

func TestReorderForEnergy(t *testing.T) {
	b := testBuilder()
	base := BuildRequest{
		RawTasks: "a\nb\nc\nd\ne",
		Hours:    4,
		Subject:  "history",
		Level:    subjects.Advanced,
	}

	morning := b.Build(base)

	night := base
	night.EnergyTime = Night
	nightItems := testBuilder().Build(night)

	if len(nightItems) != len(morning) {
		t.Fatalf("night build length %d != morning %d", len(nightItems), len(morning))
	}
	for i := range morning {
		if nightItems[i].ID != morning[len(morning)-1-i].ID {
			t.Fatalf("night order is not the reversal at position %d", i)
		}
	}

	afternoon := base
	afternoon.EnergyTime = Afternoon
	afternoonItems := testBuilder().Build(afternoon)

	pivot := len(morning) / 3
	for i := range morning {
		want := morning[(i+pivot)%len(morning)].ID
		if afternoonItems[i].ID != want {
			t.Fatalf("afternoon rotation wrong at %d: got id %d, want %d", i, afternoonItems[i].ID, want)
		}
	}
}

func TestReorder_IsBijection(t *testing.T) {
	b := testBuilder()
	items := b.Build(BuildRequest{
		RawTasks: "a\nb\nc\nd\ne\nf\ng",
		Hours:    5,
		Subject:  "history",
		Level:    subjects.Advanced,
	})

	for _, energy := range []EnergyTime{Night, Afternoon} {
		reordered := reorderForEnergy(items, energy)
		if len(reordered) != len(items) {
			t.Fatalf("%s reorder changed length", energy)
		}
		got := map[int]int{}
		want := map[int]int{}
		for i := range items {
			want[items[i].ID]++
			got[reordered[i].ID]++
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("%s reorder is not a permutation", energy)
		}
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	b := testBuilder()
	if items := b.Build(BuildRequest{RawTasks: "  \n\t\n", Hours: 2}); items != nil {
		t.Fatalf("expected nil schedule for blank input, got %d items", len(items))
	}
}
