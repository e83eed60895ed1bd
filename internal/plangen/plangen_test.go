package plangen

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/mindflow/internal/llm"
	"github.com/abhisek/mindflow/internal/planner"
	"github.com/abhisek/mindflow/internal/subjects"
)

func testBuilder() *planner.Builder {
	return planner.NewBuilder(subjects.NewEstimator(), rand.New(rand.NewPCG(1, 2)))
}

func request() planner.BuildRequest {
	return planner.BuildRequest{
		RawTasks: "algebra homework\ngeometry proofs",
		Hours:    2,
		Subject:  "math",
		Level:    subjects.Intermediate,
	}
}

func validLLMContent(t *testing.T) json.RawMessage {
	t.Helper()
	content, err := json.Marshal(map[string]any{
		"plan": []map[string]any{
			{"id": 1, "type": "task", "name": "Algebra homework", "subject": "math", "duration": 25, "difficulty": "medium", "tip": "Work the examples first"},
			{"id": 2, "type": "break", "name": "Brain Break", "duration": 5, "activity": "Stretch and breathe deeply 🧘"},
			{"id": 3, "type": "task", "name": "Geometry proofs", "subject": "math", "duration": 25, "difficulty": "hard", "tip": "Draw every diagram"},
		},
		"totalTasks":          2,
		"totalStudyTime":      50,
		"totalBreakTime":      5,
		"adaptations":         []string{"Short blocks for steady focus"},
		"personalizedMessage": "You've got this!",
	})
	if err != nil {
		t.Fatal(err)
	}
	return content
}

func TestAlgorithmic_Generate(t *testing.T) {
	gen := NewAlgorithmic(testBuilder())
	p, err := gen.Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Fallback {
		t.Error("algorithmic plan marked as fallback")
	}
	if p.TotalTasks == 0 {
		t.Fatal("plan has no tasks")
	}
	if p.TotalStudyTime != planner.TotalStudyMinutes(p.Items) {
		t.Errorf("TotalStudyTime = %d, want %d", p.TotalStudyTime, planner.TotalStudyMinutes(p.Items))
	}
	if p.TotalStudyTime > 2*60 {
		t.Errorf("study time %d exceeds 120 minute budget", p.TotalStudyTime)
	}
	if p.PersonalizedMessage == "" {
		t.Error("missing personalized message")
	}
}

func TestLLM_Generate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validLLMContent(t)})
	p, err := NewLLM(mock).Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalTasks != 2 {
		t.Errorf("TotalTasks = %d, want 2", p.TotalTasks)
	}
	if p.TotalBreakTime != 5 {
		t.Errorf("TotalBreakTime = %d, want 5", p.TotalBreakTime)
	}
	if p.PersonalizedMessage != "You've got this!" {
		t.Errorf("PersonalizedMessage = %q", p.PersonalizedMessage)
	}
	if mock.Calls[0].Schema == nil {
		t.Error("request sent without schema")
	}
}

func TestLLM_NormalizesSloppyOutput(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"plan": []map[string]any{
			{"id": 9, "type": "task", "name": "Real task", "duration": 30, "difficulty": "extreme"},
			{"id": 9, "type": "task", "name": "", "duration": 10},
			{"id": 9, "type": "task", "name": "Zero minutes", "duration": 0},
		},
		"personalizedMessage": "ok",
	})
	p, err := NewLLM(llm.NewMockProvider(llm.MockResponse{Content: content})).Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p.Items) != 1 {
		t.Fatalf("got %d items, want 1 after dropping invalid entries", len(p.Items))
	}
	it := p.Items[0]
	if it.ID != 1 {
		t.Errorf("ID = %d, want reassigned 1", it.ID)
	}
	if it.Difficulty != planner.Medium {
		t.Errorf("Difficulty = %q, want medium default", it.Difficulty)
	}
	if it.Subject != "math" {
		t.Errorf("Subject = %q, want request subject", it.Subject)
	}
}

func TestLLM_RejectsPlanWithoutTasks(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"plan": []map[string]any{
			{"type": "break", "name": "Brain Break", "duration": 5},
		},
		"personalizedMessage": "ok",
	})
	_, err := NewLLM(llm.NewMockProvider(llm.MockResponse{Content: content})).Generate(context.Background(), request())
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T (%v)", err, err)
	}
}

func TestLLM_ScalesOverlongPlanToBudget(t *testing.T) {
	content, _ := json.Marshal(map[string]any{
		"plan": []map[string]any{
			{"type": "task", "name": "A", "duration": 120},
			{"type": "task", "name": "B", "duration": 120},
		},
		"personalizedMessage": "ok",
	})
	p, err := NewLLM(llm.NewMockProvider(llm.MockResponse{Content: content})).Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.TotalStudyTime > 120 {
		t.Errorf("study time %d exceeds 120 minute budget", p.TotalStudyTime)
	}
}

func TestWithFallback_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := NewLLM(llm.NewMockProvider(llm.MockResponse{Content: validLLMContent(t)}))
	gen := NewWithFallback(primary, NewAlgorithmic(testBuilder()), nil)
	p, err := gen.Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Fallback {
		t.Error("healthy primary produced a fallback plan")
	}
}

func TestWithFallback_MarksBackupPlans(t *testing.T) {
	failing := NewLLM(llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	}))
	gen := NewWithFallback(failing, NewAlgorithmic(testBuilder()), nil)
	p, err := gen.Generate(context.Background(), request())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.Fallback {
		t.Error("backup plan not marked as fallback")
	}
	if p.TotalTasks == 0 {
		t.Error("backup plan has no tasks")
	}
}

func TestWithFallback_LogsPrimaryFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	failing := NewLLM(llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	}))
	gen := NewWithFallback(failing, NewAlgorithmic(testBuilder()), zap.New(core))

	if _, err := gen.Generate(context.Background(), request()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warn entry, got %d", len(entries))
	}
	if entries[0].Message != "primary plan generator failed, using offline planner" {
		t.Errorf("unexpected log message %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["error"] == nil {
		t.Error("warn entry is missing the primary error")
	}
}

func TestAdapter_LocalOnlyWithoutProvider(t *testing.T) {
	items := testBuilder().Build(request())
	adapted, fb := NewAdapter(nil).Adapt(context.Background(), items, planner.Anxious)
	if len(adapted) != len(items) {
		t.Fatalf("got %d items, want %d", len(adapted), len(items))
	}
	if fb.Message != planner.Message(planner.Anxious) {
		t.Errorf("Message = %q, want canned anxious message", fb.Message)
	}
}

func TestAdapter_LLMFeedbackEnriches(t *testing.T) {
	content, _ := json.Marshal(EmotionFeedback{
		Message:                "Slow and steady today.",
		Adjustments:            []string{"Start with the easiest block"},
		NewDifficulty:          "easy",
		RecommendedBreakLength: 10,
	})
	a := NewAdapter(llm.NewMockProvider(llm.MockResponse{Content: content}))
	_, fb := a.Adapt(context.Background(), testBuilder().Build(request()), planner.Tired)
	if fb.Message != "Slow and steady today." {
		t.Errorf("Message = %q", fb.Message)
	}
	if fb.RecommendedBreakLength != 10 {
		t.Errorf("RecommendedBreakLength = %d, want 10", fb.RecommendedBreakLength)
	}
}

func TestAdapter_ProviderFailureDegradesToCanned(t *testing.T) {
	a := NewAdapter(llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}}))
	items := testBuilder().Build(request())
	adapted, fb := a.Adapt(context.Background(), items, planner.Frustrated)
	if fb.Message != planner.Message(planner.Frustrated) {
		t.Errorf("Message = %q, want canned frustrated message", fb.Message)
	}
	if len(adapted) != len(items) {
		t.Errorf("adapted length %d, want %d", len(adapted), len(items))
	}
}
