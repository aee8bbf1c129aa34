package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/domain"
)

// Store persists conversations and their messages in Postgres.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) CreateConversation(ctx context.Context) (*domain.Conversation, error) {
	row := s.pool.QueryRow(ctx,
		`INSERT INTO conversations (id) VALUES ($1)
		 RETURNING id, title, last_activity`,
		uuid.New(),
	)
	conv := &domain.Conversation{}
	if err := row.Scan(&conv.ID, &conv.Title, &conv.LastActivity); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return conv, nil
}

func (s *Store) GetConversation(ctx context.Context, id uuid.UUID) (*domain.Conversation, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, title, last_activity FROM conversations WHERE id = $1`, id)
	conv := &domain.Conversation{}
	if err := row.Scan(&conv.ID, &conv.Title, &conv.LastActivity); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return conv, nil
}

func (s *Store) RenameConversation(ctx context.Context, id uuid.UUID, title string) (*domain.Conversation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}
	row := s.pool.QueryRow(ctx,
		`UPDATE conversations SET title = $2 WHERE id = $1
		 RETURNING id, title, last_activity`,
		id, title,
	)
	conv := &domain.Conversation{}
	if err := row.Scan(&conv.ID, &conv.Title, &conv.LastActivity); err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("rename conversation: %w", err)
	}
	return conv, nil
}

// TouchConversation refreshes last_activity so the conversation surfaces at
// the top of the sidebar.
func (s *Store) TouchConversation(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE conversations SET last_activity = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

// DeleteConversation removes the conversation; its messages go with it via
// the ON DELETE CASCADE constraint.
func (s *Store) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM conversations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete conversation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConversationNotFound
	}
	return nil
}

func (s *Store) ListConversations(ctx context.Context) ([]domain.ConversationSummary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT c.id, c.title, c.last_activity,
		        COALESCE(m.text, ''), COALESCE(m.has_image, FALSE)
		 FROM conversations c
		 LEFT JOIN LATERAL (
		     SELECT text, has_image FROM messages
		     WHERE conversation_id = c.id
		     ORDER BY created_at DESC, seq DESC
		     LIMIT 1
		 ) m ON TRUE
		 ORDER BY c.last_activity DESC`)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	summaries := []domain.ConversationSummary{}
	for rows.Next() {
		var sum domain.ConversationSummary
		var hasImage bool
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.LastActivity, &sum.LastMessagePreview, &hasImage); err != nil {
			return nil, fmt.Errorf("scan conversation summary: %w", err)
		}
		if sum.LastMessagePreview == "" && hasImage {
			sum.LastMessagePreview = config.ImagePlaceholder
		}
		summaries = append(summaries, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return summaries, nil
}
