package handlers

import (
	"errors"
	"net/http"

	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/gin-gonic/gin"
)

type CodeRequest struct {
	Code string `json:"code"`
}

func bindCode(c *gin.Context) (string, bool) {
	var req CodeRequest
	if err := c.BindJSON(&req); err != nil || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return "", false
	}
	return req.Code, true
}

func purchaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownCode):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown code"})
	case errors.Is(err, service.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "insufficient funds"})
	case errors.Is(err, service.ErrAlreadyOwned):
		c.JSON(http.StatusConflict, gin.H{"error": "already owned"})
	case errors.Is(err, service.ErrNotOwned):
		c.JSON(http.StatusConflict, gin.H{"error": "item not owned"})
	case errors.Is(err, service.ErrLevelTooLow):
		c.JSON(http.StatusForbidden, gin.H{"error": "level too low"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "purchase failed"})
	}
}

// ListBoosts returns all boosts with the player's levels and next costs.
func (h *Handler) ListBoosts(c *gin.Context) {
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

	views, err := h.Shop.BoostLevels(c.Request.Context(), player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load boosts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"boosts": views})
}

// BuyBoost buys the next level of a boost.
func (h *Handler) BuyBoost(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}
	code, ok := bindCode(c)
	if !ok {
		return
	}

	view, err := h.Shop.PurchaseBoost(c.Request.Context(), tgID, firstName, code)
	if err != nil {
		purchaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ListItems returns equipment items available at the player's level plus
// the inventory and equipped slots.
func (h *Handler) ListItems(c *gin.Context) {
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

	inv, err := h.Shop.Inventory(c.Request.Context(), player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inventory"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"available": h.Catalog.ItemsForLevel(player.Level),
		"inventory": inv.Items,
		"equipped":  inv.Equipped,
	})
}

// BuyItem buys an equipment item into the inventory.
func (h *Handler) BuyItem(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}
	code, ok := bindCode(c)
	if !ok {
		return
	}

	view, err := h.Shop.PurchaseItem(c.Request.Context(), tgID, firstName, code)
	if err != nil {
		purchaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// EquipItem puts an owned item into its slot.
func (h *Handler) EquipItem(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}
	code, ok := bindCode(c)
	if !ok {
		return
	}

	if err := h.Shop.EquipItem(c.Request.Context(), tgID, firstName, code); err != nil {
		purchaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "equipped"})
}

// ListTeam returns hire levels and incomes for every team role.
func (h *Handler) ListTeam(c *gin.Context) {
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

	views, err := h.Shop.TeamLevels(c.Request.Context(), player.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load team"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"team": views})
}

// UpgradeTeam hires or levels up a team member.
func (h *Handler) UpgradeTeam(c *gin.Context) {
	tgID, firstName, ok := identity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "player not found"})
		return
	}
	code, ok := bindCode(c)
	if !ok {
		return
	}

	view, err := h.Shop.UpgradeTeam(c.Request.Context(), tgID, firstName, code)
	if err != nil {
		purchaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
