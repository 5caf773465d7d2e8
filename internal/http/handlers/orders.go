package handlers

import (
	"errors"
	"net/http"

	"github.com/89089599151/designer-clicker-bot/internal/http/middleware"
	"github.com/89089599151/designer-clicker-bot/internal/service"
	"github.com/89089599151/designer-clicker-bot/internal/ws"

	"github.com/gin-gonic/gin"
)

// Hub is set at route registration; nil when the websocket push is disabled.
var progressHub *ws.Hub

func SetProgressHub(h *ws.Hub) {
	progressHub = h
}

// ListOrders returns order templates available at the player's level.
func (h *Handler) ListOrders(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"orders": h.Orders.Available(player.Level)})
}

type AssignRequest struct {
	Code string `json:"code"`
}

// AssignOrder takes an order. Required clicks and the reward multiplier are
// frozen at this moment.
func (h *Handler) AssignOrder(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req AssignRequest
	if err := c.BindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	order, err := h.Orders.Assign(c.Request.Context(), tgID, firstName, req.Code)
	switch {
	case errors.Is(err, service.ErrUnknownCode):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown order"})
	case errors.Is(err, service.ErrLevelTooLow):
		c.JSON(http.StatusForbidden, gin.H{"error": "level too low"})
	case errors.Is(err, service.ErrAlreadyActiveOrder):
		c.JSON(http.StatusConflict, gin.H{"error": "order already in progress"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to assign order"})
	default:
		c.JSON(http.StatusOK, gin.H{"order": order})
	}
}

type ClickRequest struct {
	Count int `json:"count"`
}

// Click applies a batch of clicks to the active order.
func (h *Handler) Click(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	var req ClickRequest
	if err := c.BindJSON(&req); err != nil {
		req.Count = 1
	}
	if req.Count < 1 {
		req.Count = 1
	}
	req.Count = middleware.ClampedClickCount(c, req.Count)

	res, err := h.Orders.Click(c.Request.Context(), tgID, firstName, req.Count)
	if errors.Is(err, service.ErrNoActiveOrder) {
		c.JSON(http.StatusConflict, gin.H{"error": "no active order"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply clicks"})
		return
	}

	middleware.ClicksApplied.Inc()
	if res.Completed {
		middleware.OrdersFinished.Inc()
	}

	if progressHub != nil && (res.Notify || res.Completed) {
		progressHub.PublishProgress(tgID, res)
		for _, def := range res.Unlocked {
			progressHub.PublishUnlock(tgID, def)
		}
	}

	c.JSON(http.StatusOK, res)
}

// CancelOrder drops the active order, losing its progress.
func (h *Handler) CancelOrder(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}

	err := h.Orders.Cancel(c.Request.Context(), tgID, firstName)
	if errors.Is(err, service.ErrNoActiveOrder) {
		c.JSON(http.StatusConflict, gin.H{"error": "no active order"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "canceled"})
}
