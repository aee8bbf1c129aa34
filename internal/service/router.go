package service

import (
	"strings"

	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/provider"
)

// groqMarkers are model-family substrings that indicate an open-weight model
// served by Groq. This is best-effort string classification, not a registry
// lookup; unknown names fall through to Gemini.
var groqMarkers = []string{"llama", "mixtral", "gemma"}

// Selection is a routed provider plus the model it should run.
type Selection struct {
	Client provider.Client
	Model  string
}

// Router maps a requested model name onto one of the two providers.
type Router struct {
	gemini provider.Client
	groq   provider.Client
}

func NewRouter(gemini, groq provider.Client) *Router {
	return &Router{gemini: gemini, groq: groq}
}

func (r *Router) Route(modelName string) Selection {
	modelName = strings.TrimSpace(modelName)
	if modelName == "" {
		return Selection{Client: r.gemini, Model: config.DefaultModel}
	}
	lower := strings.ToLower(modelName)
	for _, marker := range groqMarkers {
		if strings.Contains(lower, marker) {
			return Selection{Client: r.groq, Model: modelName}
		}
	}
	return Selection{Client: r.gemini, Model: modelName}
}
