package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAchievements returns every achievement with the player's progress.
func (h *Handler) ListAchievements(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	player, err := h.Players.GetOrCreate(c.Request.Context(), tgID, firstName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load player"})
		return
	}

	views, err := h.Achievements.Progress(c.Request.Context(), player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"achievements": views})
}
