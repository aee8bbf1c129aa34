package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Abdou004/abdou-chat/internal/domain"
)

const pgForeignKeyViolation = "23503"

// AppendMessageParams carries the fields for one new message. Timestamps and
// the insertion-order sequence are assigned by the database.
type AppendMessageParams struct {
	ConversationID uuid.UUID
	Sender         domain.Sender
	Text           string
	HasImage       bool
	ImageURL       string
}

func (s *Store) AppendMessage(ctx context.Context, params AppendMessageParams) (*domain.Message, error) {
	var imageURL *string
	if params.ImageURL != "" {
		imageURL = &params.ImageURL
	}
	row := s.pool.QueryRow(ctx,
		`INSERT INTO messages (id, conversation_id, sender, text, has_image, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, conversation_id, sender, text, has_image, COALESCE(image_url, ''), created_at, seq`,
		uuid.New(), params.ConversationID, params.Sender, params.Text, params.HasImage, imageURL,
	)
	msg := &domain.Message{}
	err := row.Scan(&msg.ID, &msg.ConversationID, &msg.Sender, &msg.Text,
		&msg.HasImage, &msg.ImageURL, &msg.CreatedAt, &msg.Seq)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, domain.ErrConversationNotFound
		}
		return nil, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

func (s *Store) ListMessages(ctx context.Context, conversationID uuid.UUID) ([]domain.Message, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, conversation_id, sender, text, has_image, COALESCE(image_url, ''), created_at, seq
		 FROM messages
		 WHERE conversation_id = $1
		 ORDER BY created_at ASC, seq ASC`,
		conversationID,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	msgs := []domain.Message{}
	for rows.Next() {
		var msg domain.Message
		err := rows.Scan(&msg.ID, &msg.ConversationID, &msg.Sender, &msg.Text,
			&msg.HasImage, &msg.ImageURL, &msg.CreatedAt, &msg.Seq)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	return msgs, nil
}

func (s *Store) CountMessages(ctx context.Context, conversationID uuid.UUID) (int64, error) {
	var count int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE conversation_id = $1`, conversationID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count messages: %w", err)
	}
	return count, nil
}
