package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abdou004/abdou-chat/internal/domain"
)

func (h *Handler) ListConversations(c *gin.Context) {
	conversations, err := h.store.ListConversations(c.Request.Context())
	if err != nil {
		slog.Error("list conversations", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}
	c.JSON(http.StatusOK, conversations)
}

func (h *Handler) CreateConversation(c *gin.Context) {
	conv, err := h.store.CreateConversation(c.Request.Context())
	if err != nil {
		slog.Error("create conversation", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conversation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": conv.ID})
}

func (h *Handler) GetConversation(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	conv, err := h.store.GetConversation(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		slog.Error("get conversation", "error", err, "conversation_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation details"})
		return
	}

	messages, err := h.store.ListMessages(ctx, id)
	if err != nil {
		slog.Error("list messages", "error", err, "conversation_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversation details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":        conv.ID,
		"title":     conv.Title,
		"timestamp": conv.LastActivity,
		"messages":  messages,
	})
}

func (h *Handler) RenameConversation(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		return
	}

	conv, err := h.store.RenameConversation(c.Request.Context(), id, req.Title)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyTitle):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title is required"})
		case errors.Is(err, domain.ErrConversationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		default:
			slog.Error("rename conversation", "error", err, "conversation_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename conversation"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation renamed successfully", "conversation": conv})
}

func (h *Handler) DeleteConversation(c *gin.Context) {
	id, ok := conversationID(c)
	if !ok {
		return
	}

	if err := h.store.DeleteConversation(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrConversationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
			return
		}
		slog.Error("delete conversation", "error", err, "conversation_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete conversation"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation deleted successfully"})
}

// conversationID parses the :id path parameter. A malformed id cannot
// reference any conversation, so it reports 404 like a missing one.
func conversationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		return uuid.Nil, false
	}
	return id, true
}
