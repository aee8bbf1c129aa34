package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListModels is a diagnostic endpoint listing the models the default
// provider reports as available.
func (h *Handler) ListModels(c *gin.Context) {
	models, err := h.models.ListModels(c.Request.Context())
	if err != nil {
		slog.Error("list models", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list models"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"models": models})
}
