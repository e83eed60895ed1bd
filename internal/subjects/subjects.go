// Package subjects holds the subject database and per-topic time estimation.
package subjects

import "strings"

// KnowledgeLevel is the learner's self-reported familiarity with a subject.
type KnowledgeLevel string

const (
	Beginner     KnowledgeLevel = "beginner"
	Intermediate KnowledgeLevel = "intermediate"
	Advanced     KnowledgeLevel = "advanced"
)

// Valid reports whether the level is one of the three recognized values.
func (l KnowledgeLevel) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Subject describes a recognized study subject and its time profile.
type Subject struct {
	ID              string
	Name            string
	Topics          []string
	BaseTimePerTopic int
	Difficulty      map[KnowledgeLevel]float64
}

// database is keyed by subject ID. Base times and multipliers are calibrated
// per-topic minutes for a typical study block.
var database = map[string]Subject{
	"math": {
		ID: "math", Name: "Mathematics",
		Topics:           []string{"algebra", "geometry", "calculus", "statistics", "probability", "trigonometry"},
		BaseTimePerTopic: 45,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.8, Intermediate: 1.2, Advanced: 0.8},
	},
	"science": {
		ID: "science", Name: "Science",
		Topics:           []string{"biology", "chemistry", "physics", "earth science", "environmental science"},
		BaseTimePerTopic: 50,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.7, Intermediate: 1.1, Advanced: 0.75},
	},
	"history": {
		ID: "history", Name: "History",
		Topics:           []string{"ancient history", "medieval", "modern history", "world events", "timelines"},
		BaseTimePerTopic: 35,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.4, Intermediate: 1.0, Advanced: 0.7},
	},
	"language": {
		ID: "language", Name: "Language",
		Topics:           []string{"vocabulary", "grammar", "writing", "reading comprehension", "speaking"},
		BaseTimePerTopic: 40,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.6, Intermediate: 1.0, Advanced: 0.6},
	},
	"literature": {
		ID: "literature", Name: "Literature",
		Topics:           []string{"novel analysis", "poetry", "themes", "character study", "essays"},
		BaseTimePerTopic: 40,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.5, Intermediate: 1.0, Advanced: 0.7},
	},
	"economics": {
		ID: "economics", Name: "Economics",
		Topics:           []string{"microeconomics", "macroeconomics", "supply demand", "market trends"},
		BaseTimePerTopic: 48,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.7, Intermediate: 1.1, Advanced: 0.8},
	},
	"programming": {
		ID: "programming", Name: "Programming",
		Topics:           []string{"python", "javascript", "java", "algorithms", "data structures", "debugging"},
		BaseTimePerTopic: 55,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 2.0, Intermediate: 1.3, Advanced: 0.9},
	},
	"art": {
		ID: "art", Name: "Art",
		Topics:           []string{"drawing", "color theory", "composition", "art history", "techniques"},
		BaseTimePerTopic: 50,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.3, Intermediate: 1.0, Advanced: 0.7},
	},
	"music": {
		ID: "music", Name: "Music",
		Topics:           []string{"theory", "ear training", "instruments", "composition", "history"},
		BaseTimePerTopic: 45,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.5, Intermediate: 1.0, Advanced: 0.7},
	},
	"psychology": {
		ID: "psychology", Name: "Psychology",
		Topics:           []string{"behavior", "cognition", "development", "disorders", "therapies"},
		BaseTimePerTopic: 42,
		Difficulty:       map[KnowledgeLevel]float64{Beginner: 1.4, Intermediate: 1.0, Advanced: 0.7},
	},
}

// Get returns the subject for the given ID.
func Get(id string) (Subject, bool) {
	s, ok := database[strings.ToLower(id)]
	return s, ok
}

// IDs returns all recognized subject IDs in no particular order.
func IDs() []string {
	ids := make([]string, 0, len(database))
	for id := range database {
		ids = append(ids, id)
	}
	return ids
}

// detectKeywords maps subject IDs to keywords used for free-text detection.
var detectKeywords = map[string][]string{
	"math":        {"math", "algebra", "calculus", "geometry", "equation", "number", "formula", "statistics"},
	"science":     {"science", "biology", "chemistry", "physics", "experiment", "atom", "molecule", "element"},
	"history":     {"history", "war", "revolution", "ancient", "medieval", "era", "century", "historical"},
	"language":    {"english", "spanish", "french", "german", "language", "grammar", "vocabulary", "translate"},
	"literature":  {"literature", "novel", "book", "poem", "poetry", "author", "essay", "story"},
	"economics":   {"economics", "economy", "market", "trade", "business", "finance", "money", "stock"},
	"programming": {"coding", "code", "programming", "python", "javascript", "java", "debug", "algorithm"},
	"art":         {"art", "drawing", "painting", "sketch", "color", "design", "visual"},
	"music":       {"music", "song", "instrument", "melody", "rhythm", "note", "compose"},
	"psychology":  {"psychology", "behavior", "mind", "mental", "cognitive", "therapy", "emotion"},
}

// detectOrder fixes the iteration order so detection is deterministic when a
// task mentions keywords from more than one subject.
var detectOrder = []string{
	"math", "science", "history", "language", "literature",
	"economics", "programming", "art", "music", "psychology",
}

// Detect guesses a subject ID from a free-text task description.
// Returns "" when no keyword matches.
func Detect(taskText string) string {
	lower := strings.ToLower(taskText)
	for _, id := range detectOrder {
		for _, kw := range detectKeywords[id] {
			if strings.Contains(lower, kw) {
				return id
			}
		}
	}
	return ""
}
