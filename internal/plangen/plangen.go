// Package plangen produces study plans, either from the deterministic
// scheduling algorithm or from an LLM with schema-validated output. A
// fallback generator chains the two so plan creation never fails just
// because a provider is down.
package plangen

import (
	"context"
	"fmt"

	"github.com/abhisek/mindflow/internal/planner"
)

// Plan is a generated schedule plus its summary figures. Totals are always
// recomputed from Items, never trusted from the generator.
type Plan struct {
	Items               []planner.Item `json:"plan"`
	TotalTasks          int            `json:"totalTasks"`
	TotalStudyTime      int            `json:"totalStudyTime"`
	TotalBreakTime      int            `json:"totalBreakTime"`
	Adaptations         []string       `json:"adaptations"`
	PersonalizedMessage string         `json:"personalizedMessage"`

	// Fallback marks plans produced by the algorithm after an LLM failure.
	Fallback bool `json:"fallback"`
}

// Generator turns a build request into a plan.
type Generator interface {
	Generate(ctx context.Context, req planner.BuildRequest) (*Plan, error)
}

// finalize fills in the derived fields of a plan from its items.
func finalize(p *Plan) *Plan {
	p.TotalTasks = len(planner.Tasks(p.Items))
	p.TotalStudyTime = planner.TotalStudyMinutes(p.Items)
	p.TotalBreakTime = planner.TotalBreakMinutes(p.Items)
	return p
}

// Algorithmic generates plans with the local scheduling algorithm.
type Algorithmic struct {
	builder *planner.Builder
}

// NewAlgorithmic wraps a builder as a Generator.
func NewAlgorithmic(b *planner.Builder) *Algorithmic {
	return &Algorithmic{builder: b}
}

func (a *Algorithmic) Generate(_ context.Context, req planner.BuildRequest) (*Plan, error) {
	items := a.builder.Build(req)

	adaptations := []string{"Tasks split into focused blocks with recovery breaks"}
	if len(req.Challenges) > 0 {
		adaptations = append(adaptations, "Study tips matched to your challenges")
	}
	if req.EnergyTime == planner.Night || req.EnergyTime == planner.Afternoon {
		adaptations = append(adaptations, "Task order shifted toward your peak energy time")
	}

	subject := req.Subject
	if subject == "" {
		subject = "study"
	}
	p := &Plan{
		Items:               items,
		Adaptations:         adaptations,
		PersonalizedMessage: fmt.Sprintf("Your %s plan is ready. Work through it one block at a time, and let the breaks do their job.", subject),
	}
	return finalize(p), nil
}
