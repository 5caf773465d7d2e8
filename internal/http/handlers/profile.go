package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/gin-gonic/gin"
)

// Profile returns the player's profile with derived stats, passive income
// rate and the active order, applying offline income on the way.
func (h *Handler) Profile(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	view, err := h.Players.Profile(c.Request.Context(), tgID, firstName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, view)
}

// DailyBonus claims the daily bonus.
func (h *Handler) DailyBonus(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	res, err := h.Players.ClaimDailyBonus(c.Request.Context(), tgID, firstName)
	if errors.Is(err, service.ErrDailyCooldown) {
		c.JSON(http.StatusConflict, gin.H{"error": "daily bonus already claimed"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to claim bonus"})
		return
	}

	c.JSON(http.StatusOK, res)
}

// History returns recent economy log entries.
func (h *Handler) History(c *gin.Context) {
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

	limit := 20
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	entries, err := h.Players.History(c.Request.Context(), player.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// HistoryStats returns per-category aggregates of the economy log.
func (h *Handler) HistoryStats(c *gin.Context) {
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

	stats, err := h.Players.LogStats(c.Request.Context(), player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}
