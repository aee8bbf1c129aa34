package provider

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/domain"
)

// Gemini drives Google's multi-modal chat-session API: the projected history
// seeds a chat session and the current turn is sent into it.
type Gemini struct {
	client *genai.Client
}

func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Name() string { return "gemini" }

// Gemini's generation models all accept inline images.
func (g *Gemini) SupportsVision(string) bool { return true }

func (g *Gemini) Generate(ctx context.Context, model string, history []Message, turn Turn) (string, error) {
	session := g.client.GenerativeModel(model).StartChat()
	session.History = chatHistory(history)

	resp, err := session.SendMessage(ctx, turnParts(turn)...)
	if err != nil {
		return "", fmt.Errorf("send message: %w", err)
	}
	if text := responseText(resp); text != "" {
		return text, nil
	}
	return config.NoResponseFallback, nil
}

// ListModels backs the diagnostic /models endpoint.
func (g *Gemini) ListModels(ctx context.Context) ([]domain.ModelInfo, error) {
	it := g.client.ListModels(ctx)
	models := []domain.ModelInfo{}
	for {
		m, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		models = append(models, domain.ModelInfo{
			Name:                       m.Name,
			DisplayName:                m.DisplayName,
			Description:                m.Description,
			SupportedGenerationMethods: m.SupportedGenerationMethods,
		})
	}
	return models, nil
}

func (g *Gemini) Close() error { return g.client.Close() }

func chatHistory(history []Message) []*genai.Content {
	out := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == RoleAssistant {
			role = "model"
		}
		out = append(out, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(m.Text)},
		})
	}
	return out
}

// turnParts orders the current turn's content: inline image first when
// present, then the text.
func turnParts(turn Turn) []genai.Part {
	var parts []genai.Part
	if turn.HasImage() {
		parts = append(parts, genai.Blob{MIMEType: turn.ImageMIME, Data: turn.ImageData})
	}
	text := turn.Text
	if text == "" {
		text = config.DescribeImagePrompt
	}
	parts = append(parts, genai.Text(text))
	return parts
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	return sb.String()
}
