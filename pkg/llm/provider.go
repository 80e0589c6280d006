package llm

import (
	"context"
	"errors"
)

// ErrUpstream marks any network or parse failure talking to the model
// backend. Callers match it with errors.Is so garbage is never mistaken for
// an answer and the next fallback tier can take over.
var ErrUpstream = errors.New("llm upstream failure")

// Message represents a chat message in a provider-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Provider defines the contract for any LLM backend
type Provider interface {
	// Chat sends a chat history to the model and returns the response
	Chat(ctx context.Context, history []Message, options ...Option) (string, error)

	// Complete sends a system prompt plus a user prompt (convenience method)
	Complete(ctx context.Context, systemPrompt, userPrompt string, options ...Option) (string, error)
}

// Roles used across providers.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)
