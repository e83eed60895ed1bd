package planner

import (
	"reflect"
	"testing"
)

func schedule(difficulties ...Difficulty) []Item {
	var items []Item
	id := 1
	for i, d := range difficulties {
		items = append(items, Item{ID: id, Type: TypeTask, Name: "t", Duration: 25, Difficulty: d})
		id++
		if (i+1)%2 == 0 {
			items = append(items, Item{ID: id, Type: TypeBreak, Name: breakName, Duration: BreakMinutes})
			id++
		}
	}
	return items
}

func TestAdapt_EasierFirstEmotions(t *testing.T) {
	for _, emotion := range []Emotion{Anxious, Tired, Frustrated} {
		items := schedule(Hard, Easy, Medium, Easy)
		out, msg := Adapt(items, emotion)

		if msg == "" {
			t.Fatalf("%s: empty message", emotion)
		}

		var got []Difficulty
		for _, it := range Tasks(out) {
			got = append(got, it.Difficulty)
		}
		want := []Difficulty{Easy, Easy, Medium, Hard}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: difficulty order = %v, want %v", emotion, got, want)
		}
	}
}

func TestAdapt_NoHardBeforeEasy(t *testing.T) {
	items := schedule(Medium, Hard, Easy, Hard, Easy, Medium)
	out, _ := Adapt(items, Anxious)

	seenHard := false
	for _, it := range Tasks(out) {
		if it.Difficulty == Hard {
			seenHard = true
		}
		if it.Difficulty == Easy && seenHard {
			t.Fatal("easy task appears after a hard task")
		}
	}
}

func TestAdapt_StableTieBreak(t *testing.T) {
	items := schedule(Easy, Easy, Easy)
	out, _ := Adapt(items, Frustrated)

	var ids []int
	for _, it := range Tasks(out) {
		ids = append(ids, it.ID)
	}
	// Equal difficulties keep their input order.
	for i := 1; i < len(ids); i++ {
		if ids[i] < ids[i-1] {
			t.Fatalf("tie-break not stable: %v", ids)
		}
	}
}

func TestAdapt_UpbeatEmotionsKeepOrder(t *testing.T) {
	for _, emotion := range []Emotion{Happy, Normal} {
		items := schedule(Hard, Easy, Medium)
		out, msg := Adapt(items, emotion)

		if msg == "" {
			t.Fatalf("%s: empty message", emotion)
		}
		if !reflect.DeepEqual(out, items) {
			t.Errorf("%s: order changed", emotion)
		}
	}
}

func TestAdapt_PreservesItemMultiset(t *testing.T) {
	items := schedule(Hard, Easy, Medium, Easy, Hard)
	out, _ := Adapt(items, Tired)

	if len(out) != len(items) {
		t.Fatalf("adapt changed length: %d != %d", len(out), len(items))
	}
	count := map[int]int{}
	for _, it := range items {
		count[it.ID]++
	}
	for _, it := range out {
		count[it.ID]--
	}
	for id, c := range count {
		if c != 0 {
			t.Fatalf("item %d lost or duplicated", id)
		}
	}
}

func TestAdapt_DoesNotMutateInput(t *testing.T) {
	items := schedule(Hard, Easy)
	snapshot := make([]Item, len(items))
	copy(snapshot, items)

	Adapt(items, Anxious)

	if !reflect.DeepEqual(items, snapshot) {
		t.Fatal("input schedule was mutated")
	}
}

func TestEmotionValid(t *testing.T) {
	for _, e := range AllEmotions() {
		if !e.Valid() {
			t.Errorf("%s should be valid", e)
		}
	}
	if Emotion("stressed").Valid() {
		t.Error("stressed is not in the canonical vocabulary")
	}
}
