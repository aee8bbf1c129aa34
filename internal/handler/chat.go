package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Abdou004/abdou-chat/internal/domain"
	"github.com/Abdou004/abdou-chat/internal/service"
)

// Chat runs the turn commit pipeline for one user message. Accepts JSON or
// multipart form (the latter for turns carrying an image under the "image"
// field).
func (h *Handler) Chat(c *gin.Context) {
	var req struct {
		Message        string `json:"message" form:"message"`
		ConversationID string `json:"conversationId" form:"conversationId"`
		Model          string `json:"model" form:"model"`
	}
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.ConversationID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid conversationId is required"})
		return
	}
	conversationID, err := uuid.Parse(req.ConversationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid conversationId is required"})
		return
	}

	turn := service.TurnRequest{
		ConversationID: conversationID,
		Text:           req.Message,
		Model:          req.Model,
	}

	if fh, err := c.FormFile("image"); err == nil {
		stored, err := h.uploads.Save(fh)
		if err != nil {
			slog.Error("store upload", "error", err, "conversation_id", conversationID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
			return
		}
		turn.Image = &service.TurnImage{
			Data:     stored.Data,
			MIMEType: stored.MIMEType,
			URL:      publicURL(c, stored.Name),
		}
	}

	text, err := h.chat.Send(c.Request.Context(), turn)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMissingConversationID):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valid conversationId is required"})
		case errors.Is(err, domain.ErrConversationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
		case errors.Is(err, domain.ErrTurnInFlight):
			c.JSON(http.StatusConflict, gin.H{"error": "A turn is already being processed for this conversation"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

// publicURL resolves a stored upload name against the request's own scheme
// and host, mirroring how clients reach the /uploads static route.
func publicURL(c *gin.Context, name string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + "/uploads/" + name
}
