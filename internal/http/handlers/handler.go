package handlers

import (
	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB           *pgxpool.Pool
	BotToken     string
	Catalog      *catalog.Registry
	Players      *service.PlayerService
	Orders       *service.OrderService
	Shop         *service.ShopService
	Stats        *service.StatsService
	Achievements *service.AchievementService
}

func NewHandler(db *pgxpool.Pool, botToken string, reg *catalog.Registry, players *service.PlayerService, orders *service.OrderService, shop *service.ShopService, stats *service.StatsService, achievements *service.AchievementService) *Handler {
	return &Handler{
		DB:           db,
		BotToken:     botToken,
		Catalog:      reg,
		Players:      players,
		Orders:       orders,
		Shop:         shop,
		Stats:        stats,
		Achievements: achievements,
	}
}

// identity извлекает tg_id и имя из контекста Gin
func identity(c *gin.Context) (int64, string, bool) {
	tgVal, ok := c.Get("tg_id")
	if !ok {
		return 0, "", false
	}
	var tgID int64
	switch v := tgVal.(type) {
	case int64:
		tgID = v
	case float64:
		tgID = int64(v)
	default:
		return 0, "", false
	}
	name, _ := c.Get("first_name")
	firstName, _ := name.(string)
	return tgID, firstName, true
}
