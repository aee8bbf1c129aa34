package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/Abdou004/abdou-chat/internal/config"
)

// Groq talks to Groq's OpenAI-compatible chat completions endpoint.
type Groq struct {
	client *openai.Client
}

func NewGroq(apiKey, baseURL string) *Groq {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Groq{client: openai.NewClientWithConfig(cfg)}
}

func (g *Groq) Name() string { return "groq" }

// SupportsVision reports whether the model can take image input. Groq only
// accepts images on its vision-preview models.
func (g *Groq) SupportsVision(model string) bool {
	return strings.Contains(strings.ToLower(model), "vision")
}

func (g *Groq) Generate(ctx context.Context, model string, history []Message, turn Turn) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+1)
	for _, m := range history {
		role := openai.ChatMessageRoleUser
		if m.Role == RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{Role: role, Content: m.Text})
	}
	messages = append(messages, currentTurnMessage(turn))

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: config.GroqTemperature,
		MaxTokens:   config.GroqMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return config.NoResponseFallback, nil
	}
	return resp.Choices[0].Message.Content, nil
}

func currentTurnMessage(turn Turn) openai.ChatCompletionMessage {
	if !turn.HasImage() {
		text := turn.Text
		if text == "" {
			text = config.EmptyTurnFallback
		}
		return openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: text}
	}

	text := turn.Text
	if text == "" {
		text = config.DescribeImagePrompt
	}
	uri := fmt.Sprintf("data:%s;base64,%s",
		turn.ImageMIME, base64.StdEncoding.EncodeToString(turn.ImageData))
	return openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
		MultiContent: []openai.ChatMessagePart{
			{Type: openai.ChatMessagePartTypeText, Text: text},
			{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{URL: uri}},
		},
	}
}
