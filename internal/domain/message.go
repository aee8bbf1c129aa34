package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sender identifies which side of the conversation a message belongs to.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn half. Messages are immutable once created; within a
// conversation they are ordered by CreatedAt with Seq as the tie-breaker.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversationId"`
	Sender         Sender    `json:"sender"`
	Text           string    `json:"text"`
	HasImage       bool      `json:"hasImage"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	CreatedAt      time.Time `json:"timestamp"`
	Seq            int64     `json:"-"`
}
