package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/bot"
	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/config"
	"github.com/89089599151/designer-clicker-bot/internal/db"
	httpServer "github.com/89089599151/designer-clicker-bot/internal/http"
	"github.com/89089599151/designer-clicker-bot/internal/http/middleware"
	"github.com/89089599151/designer-clicker-bot/internal/logger"
	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)
	service.InitJWT(cfg.JWTSecret)

	dbPool := db.Connect(cfg.DatabaseURL)
	defer dbPool.Close()

	reg, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("catalog load failed", "path", cfg.CatalogPath, "err", err)
	}

	stats := service.NewStatsService(dbPool, reg)
	achievements := service.NewAchievementService(dbPool, reg)
	players := service.NewPlayerService(dbPool, reg, stats, achievements, cfg.InitialBalance, cfg.DailyBonusRub, cfg.OfflineCap)
	orders := service.NewOrderService(dbPool, reg, players, stats, achievements)
	shop := service.NewShopService(dbPool, reg, players, achievements)

	r := gin.Default()

	// CORS for production (frontend on different domain)
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		}
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	httpServer.RegisterRoutes(r, dbPool, cfg, version, httpServer.Services{
		Catalog:      reg,
		Players:      players,
		Orders:       orders,
		Shop:         shop,
		Stats:        stats,
		Achievements: achievements,
	})

	var tgBot *bot.Bot
	if cfg.BotEnabled {
		tgBot, err = bot.New(cfg.BotToken, reg, players, orders, shop, stats, achievements, cfg.ClickRateBase, cfg.ClickRateMax)
		if err != nil {
			logger.Fatal("bot init failed", "err", err)
		}
		go tgBot.Start()
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	if tgBot != nil {
		tgBot.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", "err", err)
	}

	logger.Info("server exited")
}
