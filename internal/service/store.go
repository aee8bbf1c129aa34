package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Abdou004/abdou-chat/internal/domain"
	"github.com/Abdou004/abdou-chat/internal/repository"
)

// Store is the persistence surface the service layer depends on. The pgx
// implementation lives in internal/repository; tests substitute mocks.
type Store interface {
	CreateConversation(ctx context.Context) (*domain.Conversation, error)
	GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error)
	RenameConversation(ctx context.Context, id uuid.UUID, title string) (*domain.Conversation, error)
	TouchConversation(ctx context.Context, id uuid.UUID) error
	DeleteConversation(ctx context.Context, id uuid.UUID) error
	ListConversations(ctx context.Context) ([]domain.ConversationSummary, error)
	AppendMessage(ctx context.Context, params repository.AppendMessageParams) (*domain.Message, error)
	ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domain.Message, error)
	CountMessages(ctx context.Context, conversationID uuid.UUID) (int64, error)
}

var _ Store = (*repository.Store)(nil)
