package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthRequest struct {
	InitData string `json:"init_data"`
}

func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
		return
	}

	// DEV MODE: пропускаем валидацию
	if os.Getenv("DEV_MODE") == "true" {
		var tgID int64 = 12345
		if strings.Contains(req.InitData, "\"id\":") {
			start := strings.Index(req.InitData, "\"id\":") + 5
			end := start
			for end < len(req.InitData) && req.InitData[end] >= '0' && req.InitData[end] <= '9' {
				end++
			}
			if parsed, err := strconv.ParseInt(req.InitData[start:end], 10, 64); err == nil {
				tgID = parsed
			}
		}
		h.issueToken(c, tgID, "Test")
		return
	}

	// Обычная валидация для прода
	if len(req.InitData) > 4096 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "init_data too long"})
		return
	}

	values, ok := service.ValidateTelegramInitData(req.InitData, h.BotToken)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or stale telegram data"})
		return
	}

	userRaw := values.Get("user")
	if userRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user not found"})
		return
	}

	userValues, _ := url.ParseQuery("user=" + userRaw)
	userJSON := userValues.Get("user")

	var tgUser struct {
		ID        int64  `json:"id"`
		FirstName string `json:"first_name"`
	}
	if err := json.Unmarshal([]byte(userJSON), &tgUser); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user json"})
		return
	}

	h.issueToken(c, tgUser.ID, tgUser.FirstName)
}

func (h *Handler) issueToken(c *gin.Context, tgID int64, firstName string) {
	ctx := c.Request.Context()

	player, err := h.Players.GetOrCreate(ctx, tgID, firstName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create player"})
		return
	}

	token, err := service.GenerateJWT(player.TgID, player.FirstName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"player": player,
	})
}
