package service

import (
	"github.com/google/uuid"

	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/domain"
	"github.com/Abdou004/abdou-chat/internal/provider"
)

// Project rebuilds a conversation's prior turns as provider context. The
// message identified by exclude (the turn currently being answered) is left
// out, and user messages that carried only an image are substituted with a
// placeholder; the stored text is never rewritten.
func Project(msgs []domain.Message, exclude uuid.UUID) []provider.Message {
	history := make([]provider.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.ID == exclude {
			continue
		}
		switch m.Sender {
		case domain.SenderUser:
			text := m.Text
			if text == "" {
				text = config.ImagePlaceholder
			}
			history = append(history, provider.Message{Role: provider.RoleUser, Text: text})
		case domain.SenderBot:
			history = append(history, provider.Message{Role: provider.RoleAssistant, Text: m.Text})
		}
	}
	return history
}
