// Package provider holds the two model provider adapters behind a single
// interface. History translation into provider-specific role labels and
// content shapes happens here, not in the caller.
package provider

import "context"

// Provider-agnostic role labels produced by the history projection.
// Adapters translate RoleAssistant into whatever their API expects
// ("assistant" for Groq, "model" for Gemini).
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior turn half, already projected for provider use.
type Message struct {
	Role string
	Text string
}

// Turn is the current user input being answered.
type Turn struct {
	Text      string
	ImageData []byte
	ImageMIME string
}

func (t Turn) HasImage() bool { return len(t.ImageData) > 0 }

// Client is the closed set of provider adapters. Adding a provider means
// adding one implementation here plus a routing rule.
type Client interface {
	Name() string
	SupportsVision(model string) bool
	Generate(ctx context.Context, model string, history []Message, turn Turn) (string, error)
}
