package http

import (
	"os"
	"strconv"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/config"
	"github.com/89089599151/designer-clicker-bot/internal/http/handlers"
	"github.com/89089599151/designer-clicker-bot/internal/http/middleware"
	"github.com/89089599151/designer-clicker-bot/internal/service"
	"github.com/89089599151/designer-clicker-bot/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Services groups everything the routes need.
type Services struct {
	Catalog      *catalog.Registry
	Players      *service.PlayerService
	Orders       *service.OrderService
	Shop         *service.ShopService
	Stats        *service.StatsService
	Achievements *service.AchievementService
}

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string, svc Services) {
	h := handlers.NewHandler(db, cfg.BotToken, svc.Catalog, svc.Players, svc.Orders, svc.Shop, svc.Stats, svc.Achievements)
	healthHandler := handlers.NewHealthHandler(db, version)

	// read limits from env, with safe defaults
	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateLimit = n
		}
	}
	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	authRateLimit := 5
	if v := os.Getenv("AUTH_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			authRateLimit = n
		}
	}
	authRateWindow := time.Minute

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(apiRateLimit, apiRateWindow))

	// Auth
	v1.POST("/auth", middleware.RedisRateLimit(authRateLimit, authRateWindow), h.Auth)

	// Profile
	v1.GET("/profile", middleware.JWT(), h.Profile)
	v1.POST("/profile/daily", middleware.JWT(), h.DailyBonus)
	v1.GET("/history", middleware.JWT(), h.History)
	v1.GET("/history/stats", middleware.JWT(), h.HistoryStats)

	// Orders and clicks. Clicks are limited per player per second, the cap
	// grows with equipment.
	clickRL := middleware.ClickRateLimit(cfg.ClickRateBase, cfg.ClickRateMax, time.Second, svc.Stats.RateLimitBonus)
	v1.GET("/orders", middleware.JWT(), h.ListOrders)
	v1.POST("/orders/assign", middleware.JWT(), h.AssignOrder)
	v1.POST("/orders/click", middleware.JWT(), clickRL, h.Click)
	v1.POST("/orders/cancel", middleware.JWT(), h.CancelOrder)

	// Shop
	v1.GET("/shop/boosts", middleware.JWT(), h.ListBoosts)
	v1.POST("/shop/boosts", middleware.JWT(), h.BuyBoost)
	v1.GET("/shop/items", middleware.JWT(), h.ListItems)
	v1.POST("/shop/items", middleware.JWT(), h.BuyItem)
	v1.POST("/shop/items/equip", middleware.JWT(), h.EquipItem)
	v1.GET("/team", middleware.JWT(), h.ListTeam)
	v1.POST("/team/upgrade", middleware.JWT(), h.UpgradeTeam)

	// Achievements
	v1.GET("/achievements", middleware.JWT(), h.ListAchievements)

	// WebSocket push: order progress and achievement unlocks
	hub := ws.NewHub()
	handlers.SetProgressHub(hub)
	r.GET("/ws", h.WS(hub))
}
