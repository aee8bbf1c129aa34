package provider

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdou004/abdou-chat/internal/config"
)

func TestChatHistoryTranslatesRoles(t *testing.T) {
	history := []Message{
		{Role: RoleUser, Text: "Hello"},
		{Role: RoleAssistant, Text: "Hi! How can I help?"},
		{Role: RoleUser, Text: "Image uploaded"},
	}

	contents := chatHistory(history)

	require.Len(t, contents, 3)
	assert.Equal(t, "user", contents[0].Role)
	assert.Equal(t, "model", contents[1].Role)
	assert.Equal(t, "user", contents[2].Role)
	require.Len(t, contents[1].Parts, 1)
	assert.Equal(t, genai.Text("Hi! How can I help?"), contents[1].Parts[0])
}

func TestTurnPartsTextOnly(t *testing.T) {
	parts := turnParts(Turn{Text: "What is Go?"})

	require.Len(t, parts, 1)
	assert.Equal(t, genai.Text("What is Go?"), parts[0])
}

func TestTurnPartsImageFirstThenText(t *testing.T) {
	imageData := []byte{0x89, 0x50, 0x4e, 0x47}

	parts := turnParts(Turn{Text: "What is this?", ImageData: imageData, ImageMIME: "image/png"})

	require.Len(t, parts, 2)
	blob, ok := parts[0].(genai.Blob)
	require.True(t, ok, "image part must come first")
	assert.Equal(t, "image/png", blob.MIMEType)
	assert.Equal(t, imageData, blob.Data)
	assert.Equal(t, genai.Text("What is this?"), parts[1])
}

func TestTurnPartsImageWithoutTextGetsDefaultPrompt(t *testing.T) {
	parts := turnParts(Turn{ImageData: []byte{0x01}, ImageMIME: "image/jpeg"})

	require.Len(t, parts, 2)
	assert.Equal(t, genai.Text(config.DescribeImagePrompt), parts[1])
}

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("Hello, "), genai.Text("world.")},
			},
		}},
	}

	assert.Equal(t, "Hello, world.", responseText(resp))
}

func TestResponseTextEmpty(t *testing.T) {
	assert.Empty(t, responseText(nil))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{}))
	assert.Empty(t, responseText(&genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{}},
	}))
}

func TestGeminiSupportsVision(t *testing.T) {
	g := &Gemini{}

	assert.True(t, g.SupportsVision("gemini-2.5-flash"))
	assert.True(t, g.SupportsVision("gemini-2.0-pro"))
}
