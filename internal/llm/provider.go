// Package llm abstracts the model providers (Anthropic, OpenAI, Gemini)
// behind one interface producing schema-validated JSON, plus decorators
// for retrying transient failures and logging requests.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates structured JSON from a prompt.
type Provider interface {
	// Generate runs one completion. When the request carries a Schema the
	// returned Content is JSON already validated against it; otherwise it
	// is the raw text wrapped as a JSON string.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single generation call.
type Request struct {
	// System sets the model's role, e.g. the MindFlow study-companion
	// persona.
	System string

	// Messages is the conversation. Plan and feedback generation are
	// single-turn, so this usually holds one user message.
	Messages []Message

	// Schema, when set, switches the provider to its native structured
	// output mode and the response is validated against it. Nil means
	// free-form text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must satisfy.
type Schema struct {
	// Name keys the compiled-schema cache and names the structured output
	// for providers that require one. Kebab-case, e.g. "study-plan".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output plus accounting metadata.
type Response struct {
	// Content is validated JSON when a Schema was requested, otherwise
	// the raw text as a JSON string.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
