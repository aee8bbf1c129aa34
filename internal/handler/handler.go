package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Abdou004/abdou-chat/internal/domain"
	"github.com/Abdou004/abdou-chat/internal/service"
	"github.com/Abdou004/abdou-chat/internal/upload"
)

// ModelLister is the diagnostic model catalog backing GET /models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]domain.ModelInfo, error)
}

// Handler holds all dependencies needed by the HTTP handlers.
type Handler struct {
	store   service.Store
	chat    *service.Chat
	models  ModelLister
	uploads *upload.Saver
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Store   service.Store
	Chat    *service.Chat
	Models  ModelLister
	Uploads *upload.Saver
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		store:   deps.Store,
		chat:    deps.Chat,
		models:  deps.Models,
		uploads: deps.Uploads,
	}
}

// Register attaches all routes to the engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/conversations", h.ListConversations)
	r.POST("/conversations", h.CreateConversation)
	r.GET("/conversations/:id", h.GetConversation)
	r.PATCH("/conversations/:id", h.RenameConversation)
	r.DELETE("/conversations/:id", h.DeleteConversation)
	r.POST("/chat", h.Chat)
	r.GET("/models", h.ListModels)
}
