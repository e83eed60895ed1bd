package subjects

import "testing"

func TestEstimate_KnownSubjects(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		subject string
		level   KnowledgeLevel
		want    int
	}{
		{"math", Beginner, 81},      // 45 * 1.8
		{"math", Intermediate, 54},  // 45 * 1.2
		{"math", Advanced, 36},      // 45 * 0.8
		{"science", Advanced, 38},   // 50 * 0.75 = 37.5, rounds to 38
		{"history", Intermediate, 35},
		{"programming", Beginner, 110}, // 55 * 2.0
		{"language", Advanced, 24},     // 40 * 0.6
	}

	for _, tt := range tests {
		got := e.Estimate(tt.subject, tt.level)
		if got != tt.want {
			t.Errorf("Estimate(%q, %q) = %d, want %d", tt.subject, tt.level, got, tt.want)
		}
	}
}

func TestEstimate_UnknownSubjectDefaults(t *testing.T) {
	e := NewEstimator()
	if got := e.Estimate("basket weaving", Intermediate); got != DefaultTopicMinutes {
		t.Errorf("Estimate(unknown) = %d, want %d", got, DefaultTopicMinutes)
	}
}

func TestEstimate_CustomSubject(t *testing.T) {
	e := NewEstimator()
	e.RegisterCustom("knitting", 40)

	tests := []struct {
		level KnowledgeLevel
		want  int
	}{
		{Beginner, 60},     // 40 * 1.5
		{Intermediate, 40}, // 40 * 1.0
		{Advanced, 28},     // 40 * 0.7
	}
	for _, tt := range tests {
		if got := e.Estimate("knitting", tt.level); got != tt.want {
			t.Errorf("Estimate(knitting, %q) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestRegisterCustom_Clamps(t *testing.T) {
	e := NewEstimator()

	tests := []struct {
		in   int
		want int
	}{
		{5, CustomBaseMin},
		{500, CustomBaseMax},
		{0, CustomBaseDefault},
		{-3, CustomBaseDefault},
		{60, 60},
	}
	for _, tt := range tests {
		if got := e.RegisterCustom("x", tt.in); got != tt.want {
			t.Errorf("RegisterCustom(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestEstimate_AlwaysPositive(t *testing.T) {
	e := NewEstimator()
	for _, id := range IDs() {
		for _, level := range []KnowledgeLevel{Beginner, Intermediate, Advanced} {
			if got := e.Estimate(id, level); got <= 0 {
				t.Errorf("Estimate(%q, %q) = %d, want > 0", id, level, got)
			}
		}
	}
}

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"review algebra chapter 3", "math"},
		{"chemistry lab writeup", "science"},
		{"debug the sorting algorithm", "programming"},
		{"practice piano melody", "music"},
		{"fold laundry", ""},
	}
	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
