package subjects

import "math"

const (
	// DefaultTopicMinutes is the estimate for a subject we know nothing about.
	DefaultTopicMinutes = 25

	// Custom subject base estimates are clamped to this range.
	CustomBaseMin = 20
	CustomBaseMax = 120

	// CustomBaseDefault is used when the user supplies no estimate.
	CustomBaseDefault = 40
)

// Estimator maps a (subject, knowledge level) pair to a per-topic duration
// in minutes. Custom subjects carry their own base estimate, registered once
// per subject name.
type Estimator struct {
	custom map[string]int
}

// NewEstimator creates an Estimator with no custom subjects registered.
func NewEstimator() *Estimator {
	return &Estimator{custom: make(map[string]int)}
}

// RegisterCustom records the base per-topic minutes for a user-defined
// subject, clamped to [CustomBaseMin, CustomBaseMax]. Zero or negative
// values fall back to CustomBaseDefault.
func (e *Estimator) RegisterCustom(subject string, baseMinutes int) int {
	if baseMinutes <= 0 {
		baseMinutes = CustomBaseDefault
	}
	baseMinutes = min(max(baseMinutes, CustomBaseMin), CustomBaseMax)
	e.custom[subject] = baseMinutes
	return baseMinutes
}

// Estimate returns the per-topic study duration in minutes. It never fails:
// recognized subjects use the database profile, registered custom subjects
// use their stored base with a level multiplier, and anything else gets
// DefaultTopicMinutes.
func (e *Estimator) Estimate(subject string, level KnowledgeLevel) int {
	if s, ok := Get(subject); ok {
		mult, ok := s.Difficulty[level]
		if !ok {
			mult = 1.0
		}
		return positive(int(math.Round(float64(s.BaseTimePerTopic) * mult)))
	}

	if base, ok := e.custom[subject]; ok {
		mult := 1.0
		switch level {
		case Beginner:
			mult = 1.5
		case Advanced:
			mult = 0.7
		}
		return positive(int(math.Round(float64(base) * mult)))
	}

	return DefaultTopicMinutes
}

func positive(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
