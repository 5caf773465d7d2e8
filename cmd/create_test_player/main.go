package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/db"
	"github.com/89089599151/designer-clicker-bot/internal/service"
)

func main() {
	// expects DATABASE_URL and JWT_SECRET env vars
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	tgID := flag.Int64("tg-id", 1234567890, "telegram id of the test player")
	name := flag.String("name", "Tester", "first name")
	flag.Parse()

	pool := db.Connect(dsn)
	defer pool.Close()

	reg := catalog.Default()
	stats := service.NewStatsService(pool, reg)
	achievements := service.NewAchievementService(pool, reg)
	players := service.NewPlayerService(pool, reg, stats, achievements, 200, 100, 12*time.Hour)

	ctx := context.Background()
	p, err := players.GetOrCreate(ctx, *tgID, *name)
	if err != nil {
		log.Fatalf("create player failed: %v", err)
	}
	log.Printf("player id=%d tg_id=%d balance=%d level=%d\n", p.ID, p.TgID, p.Balance, p.Level)

	service.InitJWT(os.Getenv("JWT_SECRET"))
	token, err := service.GenerateJWT(p.TgID, p.FirstName)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}
	log.Printf("token=%s\n", token)
}
