package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/provider"
)

type namedClient struct {
	name string
}

func (c *namedClient) Name() string                  { return c.name }
func (c *namedClient) SupportsVision(string) bool    { return c.name == "gemini" }
func (c *namedClient) Generate(context.Context, string, []provider.Message, provider.Turn) (string, error) {
	return "", nil
}

func TestRoute(t *testing.T) {
	gemini := &namedClient{name: "gemini"}
	groq := &namedClient{name: "groq"}
	router := NewRouter(gemini, groq)

	tests := []struct {
		name      string
		modelName string
		provider  string
		model     string
	}{
		{"empty defaults to gemini baseline", "", "gemini", config.DefaultModel},
		{"whitespace defaults to gemini baseline", "   ", "gemini", config.DefaultModel},
		{"llama routes to groq", "llama-3.3-70b-versatile", "groq", "llama-3.3-70b-versatile"},
		{"mixtral routes to groq", "mixtral-8x7b-32768", "groq", "mixtral-8x7b-32768"},
		{"gemma routes to groq", "gemma2-9b-it", "groq", "gemma2-9b-it"},
		{"marker match is case-insensitive", "Llama-3.2-11b-vision-preview", "groq", "Llama-3.2-11b-vision-preview"},
		{"gemini model stays on gemini", "gemini-2.0-flash", "gemini", "gemini-2.0-flash"},
		{"unknown model falls through to gemini", "claude-sonnet", "gemini", "claude-sonnet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := router.Route(tt.modelName)
			assert.Equal(t, tt.provider, sel.Client.Name())
			assert.Equal(t, tt.model, sel.Model)
		})
	}
}
