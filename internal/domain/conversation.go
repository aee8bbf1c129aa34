package domain

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	LastActivity time.Time `json:"timestamp"`
}

// ConversationSummary is the sidebar view of a conversation: its title plus
// a preview of the most recent message.
type ConversationSummary struct {
	ID                 uuid.UUID `json:"id"`
	Title              string    `json:"title"`
	LastMessagePreview string    `json:"lastMessagePreview"`
	LastActivity       time.Time `json:"timestamp"`
}
