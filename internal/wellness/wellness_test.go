package wellness

import (
	"math/rand/v2"
	"testing"
)

func TestTips_CatalogSize(t *testing.T) {
	got := Tips()
	if len(got) != 15 {
		t.Fatalf("got %d tips, want 15", len(got))
	}
	for i, tip := range got {
		if tip == "" {
			t.Errorf("tip %d is empty", i)
		}
	}
}

func TestTips_IsACopy(t *testing.T) {
	a := Tips()
	a[0] = "mutated"
	if Tips()[0] == "mutated" {
		t.Error("Tips returned shared backing array")
	}
}

func TestRandom_AlwaysFromCatalog(t *testing.T) {
	known := make(map[string]bool)
	for _, tip := range Tips() {
		known[tip] = true
	}
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 100; i++ {
		if tip := Random(rng); !known[tip] {
			t.Fatalf("Random returned unknown tip %q", tip)
		}
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a := Random(rand.New(rand.NewPCG(1, 2)))
	b := Random(rand.New(rand.NewPCG(1, 2)))
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
}
