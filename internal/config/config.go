package config

import (
	"os"
	"strconv"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	BotToken    string
	BotEnabled  bool
	JWTSecret   string
	LogLevel    string
	LogJSON     bool

	// Redis для лимита кликов (опционально, без него fail-open)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	CatalogPath string

	// Игровые параметры
	DailyBonusRub  int64
	ClickRateBase  int
	ClickRateMax   int
	OfflineCap     time.Duration
	InitialBalance int64
}

// Загрузка конфига из env
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	botToken := os.Getenv("BOT_TOKEN")
	botEnabled := os.Getenv("BOT_ENABLED") != "false"
	if botToken == "" && botEnabled {
		logger.Fatal("BOT_TOKEN is not set (set BOT_ENABLED=false to run API only)")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	dailyBonus := int64(100)
	if v := os.Getenv("DAILY_BONUS_RUB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			dailyBonus = n
		}
	}

	clickRateBase := 10 // кликов в секунду без бонусов
	if v := os.Getenv("CLICK_RATE_BASE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			clickRateBase = n
		}
	}

	clickRateMax := 15 // потолок с учётом экипировки
	if v := os.Getenv("CLICK_RATE_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			clickRateMax = n
		}
	}

	offlineCapHours := 12
	if v := os.Getenv("OFFLINE_CAP_HOURS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offlineCapHours = n
		}
	}

	initialBalance := int64(200)
	if v := os.Getenv("INITIAL_BALANCE_RUB"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n >= 0 {
			initialBalance = n
		}
	}

	return &Config{
		AppPort:        port,
		DatabaseURL:    dbURL,
		BotToken:       botToken,
		BotEnabled:     botEnabled,
		JWTSecret:      jwtSecret,
		LogLevel:       getEnvDefault("LOG_LEVEL", "info"),
		LogJSON:        os.Getenv("LOG_JSON") == "true",
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		DailyBonusRub:  dailyBonus,
		ClickRateBase:  clickRateBase,
		ClickRateMax:   clickRateMax,
		OfflineCap:     time.Duration(offlineCapHours) * time.Hour,
		InitialBalance: initialBalance,
	}
}

func getEnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
