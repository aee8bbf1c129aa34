package config

import "time"

const (
	// Default AI model when the client does not pick one
	DefaultModel = "gemini-2.5-flash"

	// Title given to a conversation before its first message arrives
	DefaultTitle = "New Chat"

	// Title inference from the first message
	TitleMaxLen   = 30
	TitleEllipsis = "..."

	// Context substitute for user messages that carried only an image
	ImagePlaceholder = "Image uploaded"

	// Prompt used when an image arrives without accompanying text
	DescribeImagePrompt = "Describe this image."

	// Fallback for an empty text-only turn
	EmptyTurnFallback = "Hello"

	// Reply when the provider returns no completion
	NoResponseFallback = "No response"

	// Reply when an image is sent to a model without vision support
	VisionUnsupportedReply = "This model doesn't support images. Please select a vision model like llama-3.2-11b-vision-preview."

	// Groq sampling parameters
	GroqTemperature = 0.7
	GroqMaxTokens   = 1024

	// AI request timeout
	RequestTimeout = 90 * time.Second
)
