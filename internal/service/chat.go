package service

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Abdou004/abdou-chat/internal/config"
	"github.com/Abdou004/abdou-chat/internal/domain"
	"github.com/Abdou004/abdou-chat/internal/provider"
	"github.com/Abdou004/abdou-chat/internal/repository"
)

// TurnImage is an uploaded image accompanying a turn: the raw bytes for
// inline provider encoding plus the public URL persisted on the message.
type TurnImage struct {
	Data     []byte
	MIMEType string
	URL      string
}

// TurnRequest is one inbound user turn.
type TurnRequest struct {
	ConversationID uuid.UUID
	Text           string
	Model          string
	Image          *TurnImage
}

// Chat runs the turn commit pipeline: persist the user message, project
// history, route to a provider, invoke it, persist the reply and refresh
// conversation metadata.
type Chat struct {
	store   Store
	router  *Router
	timeout time.Duration

	mu       sync.Mutex
	inflight map[uuid.UUID]struct{}
}

func NewChat(store Store, router *Router) *Chat {
	return &Chat{
		store:    store,
		router:   router,
		timeout:  config.RequestTimeout,
		inflight: make(map[uuid.UUID]struct{}),
	}
}

// Send processes one turn and returns the assistant's reply. The user
// message is committed before the provider is invoked, so it survives a
// provider failure; the bot message is only written on success.
func (c *Chat) Send(ctx context.Context, req TurnRequest) (string, error) {
	if req.ConversationID == uuid.Nil {
		return "", domain.ErrMissingConversationID
	}
	if !c.acquire(req.ConversationID) {
		return "", domain.ErrTurnInFlight
	}
	defer c.release(req.ConversationID)

	userParams := repository.AppendMessageParams{
		ConversationID: req.ConversationID,
		Sender:         domain.SenderUser,
		Text:           req.Text,
		HasImage:       req.Image != nil,
	}
	if req.Image != nil {
		userParams.ImageURL = req.Image.URL
	}
	userMsg, err := c.store.AppendMessage(ctx, userParams)
	if err != nil {
		return "", err
	}

	count, err := c.store.CountMessages(ctx, req.ConversationID)
	if err != nil {
		return "", err
	}
	if count == 1 {
		if title := inferTitle(req.Text); title != "" {
			if _, err := c.store.RenameConversation(ctx, req.ConversationID, title); err != nil {
				return "", err
			}
		}
	}
	if err := c.store.TouchConversation(ctx, req.ConversationID); err != nil {
		return "", err
	}

	msgs, err := c.store.ListMessages(ctx, req.ConversationID)
	if err != nil {
		return "", err
	}
	history := Project(msgs, userMsg.ID)

	sel := c.router.Route(req.Model)
	turn := providerTurn(req)

	var reply string
	if turn.HasImage() && !sel.Client.SupportsVision(sel.Model) {
		// Capability mismatch is a successful turn with an explanatory
		// reply, not an error; the provider is never invoked.
		reply = config.VisionUnsupportedReply
		slog.Info("image sent to non-vision model",
			"conversation_id", req.ConversationID, "model", sel.Model)
	} else {
		callCtx, cancel := context.WithTimeout(ctx, c.timeout)
		defer cancel()
		reply, err = sel.Client.Generate(callCtx, sel.Model, history, turn)
		if err != nil {
			slog.Error("provider call failed",
				"conversation_id", req.ConversationID,
				"provider", sel.Client.Name(),
				"model", sel.Model,
				"error", err)
			return "", &domain.ProviderError{Provider: sel.Client.Name(), Err: err}
		}
	}

	_, err = c.store.AppendMessage(ctx, repository.AppendMessageParams{
		ConversationID: req.ConversationID,
		Sender:         domain.SenderBot,
		Text:           reply,
	})
	if err != nil {
		return "", err
	}
	if err := c.store.TouchConversation(ctx, req.ConversationID); err != nil {
		return "", err
	}

	return reply, nil
}

// acquire marks the conversation as having a turn in flight. The pipeline
// assumes at most one concurrent turn per conversation; a second one is
// rejected rather than racing on title and last_activity.
func (c *Chat) acquire(id uuid.UUID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, busy := c.inflight[id]; busy {
		return false
	}
	c.inflight[id] = struct{}{}
	return true
}

func (c *Chat) release(id uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inflight, id)
}

// inferTitle derives a conversation title from its first message. Returns
// empty for whitespace-only input, leaving the default title in place.
func inferTitle(text string) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= config.TitleMaxLen {
		return text
	}
	return string(runes[:config.TitleMaxLen]) + config.TitleEllipsis
}

func providerTurn(req TurnRequest) provider.Turn {
	turn := provider.Turn{Text: req.Text}
	if req.Image != nil {
		turn.ImageData = req.Image.Data
		turn.ImageMIME = req.Image.MIMEType
	}
	return turn
}
