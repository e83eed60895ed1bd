package plangen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/mindflow/internal/llm"
	"github.com/abhisek/mindflow/internal/planner"
)

const (
	planMaxTokens    = 2048
	emotionMaxTokens = 512
)

// planSchema is the structured output contract for plan generation.
var planSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A personalized study schedule with tasks, breaks and summary figures",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"plan": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":         map[string]any{"type": "integer"},
						"type":       map[string]any{"type": "string", "enum": []string{"task", "break"}},
						"name":       map[string]any{"type": "string"},
						"subject":    map[string]any{"type": "string"},
						"duration":   map[string]any{"type": "integer"},
						"difficulty": map[string]any{"type": "string", "enum": []string{"easy", "medium", "hard"}},
						"focus":      map[string]any{"type": "string"},
						"tip":        map[string]any{"type": "string"},
						"activity":   map[string]any{"type": "string"},
					},
					"required": []string{"type", "name", "duration"},
				},
			},
			"totalTasks":          map[string]any{"type": "integer"},
			"totalStudyTime":      map[string]any{"type": "integer"},
			"totalBreakTime":      map[string]any{"type": "integer"},
			"adaptations":         map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
			"personalizedMessage": map[string]any{"type": "string"},
		},
		"required": []string{"plan", "personalizedMessage"},
	},
}

// llmPlan mirrors the schema for decoding.
type llmPlan struct {
	Plan []struct {
		ID         int    `json:"id"`
		Type       string `json:"type"`
		Name       string `json:"name"`
		Subject    string `json:"subject"`
		Duration   int    `json:"duration"`
		Difficulty string `json:"difficulty"`
		Focus      string `json:"focus"`
		Tip        string `json:"tip"`
		Activity   string `json:"activity"`
	} `json:"plan"`
	Adaptations         []string `json:"adaptations"`
	PersonalizedMessage string   `json:"personalizedMessage"`
}

// LLM generates plans through an LLM provider with schema-validated JSON
// output. Items are normalized and re-budgeted locally, so a cooperative
// but sloppy model cannot produce an overlong or malformed schedule.
type LLM struct {
	provider llm.Provider
}

// NewLLM wraps a provider as a Generator.
func NewLLM(p llm.Provider) *LLM {
	return &LLM{provider: p}
}

func (g *LLM) Generate(ctx context.Context, req planner.BuildRequest) (*Plan, error) {
	ctx = llm.WithPurpose(ctx, "plan_generation")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(req)}},
		Schema:    planSchema,
		MaxTokens: planMaxTokens,
	})
	if err != nil {
		return nil, err
	}

	var decoded llmPlan
	if err := json.Unmarshal(resp.Content, &decoded); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	items, err := normalizeItems(decoded, req)
	if err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	p := &Plan{
		Items:               items,
		Adaptations:         decoded.Adaptations,
		PersonalizedMessage: decoded.PersonalizedMessage,
	}
	return finalize(p), nil
}

const systemPrompt = "You are MindFlow, an AI study companion focused on mental wellness and personalized learning. You create compassionate, realistic study schedules."

func buildPrompt(req planner.BuildRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a personalized study plan.\n\n")
	fmt.Fprintf(&b, "Subject: %s\n", req.Subject)
	fmt.Fprintf(&b, "Knowledge level: %s\n", req.Level)
	fmt.Fprintf(&b, "Available hours today: %d\n", req.Hours)
	if req.EnergyTime != "" {
		fmt.Fprintf(&b, "Peak energy time: %s\n", req.EnergyTime)
	}
	if len(req.Challenges) > 0 {
		fmt.Fprintf(&b, "Challenges faced: %s\n", strings.Join(req.Challenges, ", "))
	}
	fmt.Fprintf(&b, "\nTasks to complete:\n%s\n\n", req.RawTasks)
	b.WriteString("Requirements:\n")
	b.WriteString("1. Break complex topics into manageable blocks of at most 25 minutes\n")
	b.WriteString("2. Include short breaks between study blocks for mental wellness\n")
	fmt.Fprintf(&b, "3. Ensure total study time fits within %d hours\n", req.Hours)
	b.WriteString("4. Order tasks to match the student's peak energy time\n")
	b.WriteString("5. Include a specific, actionable study tip for each task\n")
	b.WriteString("6. Be warm, encouraging, and mindful of the student's mental health\n")
	return b.String()
}

// normalizeItems converts decoded LLM items into schedule items: IDs are
// reassigned sequentially, unknown types and difficulties fall back to
// defaults, and durations are clamped to the hour budget.
func normalizeItems(decoded llmPlan, req planner.BuildRequest) ([]planner.Item, error) {
	var items []planner.Item
	for _, raw := range decoded.Plan {
		if strings.TrimSpace(raw.Name) == "" || raw.Duration <= 0 {
			continue
		}
		it := planner.Item{
			ID:       len(items) + 1,
			Type:     planner.TypeTask,
			Name:     raw.Name,
			Duration: raw.Duration,
			Subject:  raw.Subject,
			Focus:    raw.Focus,
			Tip:      raw.Tip,
			Activity: raw.Activity,
		}
		if raw.Type == string(planner.TypeBreak) {
			it.Type = planner.TypeBreak
		} else {
			switch d := planner.Difficulty(raw.Difficulty); d {
			case planner.Easy, planner.Medium, planner.Hard:
				it.Difficulty = d
			default:
				it.Difficulty = planner.Medium
			}
			if it.Subject == "" {
				it.Subject = req.Subject
			}
		}
		items = append(items, it)
	}

	if len(planner.Tasks(items)) == 0 {
		return nil, fmt.Errorf("plan contains no task items")
	}

	fitToBudget(items, req.Hours)
	return items, nil
}

// fitToBudget scales task durations down proportionally when the schedule
// exceeds the available hours. Break durations are left alone.
func fitToBudget(items []planner.Item, hours int) {
	if hours <= 0 {
		return
	}
	budget := hours*60 - planner.TotalBreakMinutes(items)
	if budget < planner.BreakMinutes {
		budget = planner.BreakMinutes
	}
	total := planner.TotalStudyMinutes(items)
	if total <= budget {
		return
	}
	for i := range items {
		if items[i].IsBreak() {
			continue
		}
		scaled := items[i].Duration * budget / total
		if scaled < 1 {
			scaled = 1
		}
		items[i].Duration = scaled
	}
}
