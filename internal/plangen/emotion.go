package plangen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/mindflow/internal/llm"
	"github.com/abhisek/mindflow/internal/planner"
)

// EmotionFeedback is the advisory payload returned alongside an adapted
// schedule.
type EmotionFeedback struct {
	Message                string   `json:"message"`
	Adjustments            []string `json:"adjustments"`
	NewDifficulty          string   `json:"newDifficulty,omitempty"`
	RecommendedBreakLength int      `json:"recommendedBreakLength,omitempty"`
	MotivationalTip        string   `json:"motivationalTip,omitempty"`
}

var emotionSchema = &llm.Schema{
	Name:        "emotion-feedback",
	Description: "Adaptive feedback for a student's current emotional state",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message":                map[string]any{"type": "string"},
			"adjustments":            map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"newDifficulty":          map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
			"recommendedBreakLength": map[string]any{"type": "integer", "enum": []int{5, 10, 15}},
			"motivationalTip":        map[string]any{"type": "string"},
		},
		"required": []string{"message", "adjustments"},
	},
}

// Adapter reorders a schedule for the learner's emotional state and, when
// a provider is available, enriches the canned message with LLM feedback.
// The reordering itself is always the local deterministic rule; the LLM
// only ever contributes words, never the schedule.
type Adapter struct {
	provider llm.Provider
}

// NewAdapter builds an Adapter. provider may be nil, in which case only
// the local adaptation runs.
func NewAdapter(p llm.Provider) *Adapter {
	return &Adapter{provider: p}
}

// Adapt applies the emotion reordering and returns the adapted items plus
// feedback. LLM failures degrade to the canned message, never to an error.
func (a *Adapter) Adapt(ctx context.Context, items []planner.Item, emotion planner.Emotion) ([]planner.Item, EmotionFeedback) {
	adapted, message := planner.Adapt(items, emotion)
	feedback := EmotionFeedback{Message: message}

	if a.provider == nil {
		return adapted, feedback
	}

	if fb, err := a.generateFeedback(ctx, adapted, emotion); err == nil {
		if fb.Message == "" {
			fb.Message = message
		}
		feedback = *fb
	}
	return adapted, feedback
}

func (a *Adapter) generateFeedback(ctx context.Context, items []planner.Item, emotion planner.Emotion) (*EmotionFeedback, error) {
	ctx = llm.WithPurpose(ctx, "emotion_feedback")

	var names []string
	for _, it := range planner.Tasks(items) {
		names = append(names, it.Name)
	}
	summary, _ := json.Marshal(names)

	prompt := fmt.Sprintf(`A student is currently feeling %s.

Their study plan covers these tasks: %s

Provide empathetic, encouraging feedback specific to their emotion, with
concrete adjustments to how they should work through the plan.

For their emotion:
- If happy: keep the challenge level, add celebration milestones
- If normal: maintain a balanced pace
- If anxious: reduce difficulty by one level, increase break time, add calming activities
- If tired: switch to passive learning, increase breaks, reduce duration
- If frustrated: start with easy wins, build momentum gradually`, emotion, summary)

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:    emotionSchema,
		MaxTokens: emotionMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var fb EmotionFeedback
	if err := json.Unmarshal(resp.Content, &fb); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &fb, nil
}
