package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
)

func applyMigrations(t *testing.T, db *pgxpool.Pool) {
	t.Helper()
	migDir := filepath.Join("..", "..", "internal", "migrations")
	files, err := os.ReadDir(migDir)
	if err != nil {
		t.Fatalf("read migrations: %v", err)
	}
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	for _, name := range names {
		b, err := os.ReadFile(filepath.Join(migDir, name))
		if err != nil {
			t.Fatalf("read file: %v", err)
		}
		if _, err := db.Exec(context.Background(), string(b)); err != nil {
			t.Fatalf("apply migration %s: %v", name, err)
		}
	}
}

type engine struct {
	db           *pgxpool.Pool
	players      *service.PlayerService
	orders       *service.OrderService
	shop         *service.ShopService
	achievements *service.AchievementService
}

func newEngine(t *testing.T) *engine {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)

	applyMigrations(t, db)

	reg := catalog.Default()
	stats := service.NewStatsService(db, reg)
	achievements := service.NewAchievementService(db, reg)
	players := service.NewPlayerService(db, reg, stats, achievements, 200, 100, 12*time.Hour)
	orders := service.NewOrderService(db, reg, players, stats, achievements)
	shop := service.NewShopService(db, reg, players, achievements)

	return &engine{
		db:           db,
		players:      players,
		orders:       orders,
		shop:         shop,
		achievements: achievements,
	}
}

func TestOrderLifecycle(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano()

	p, err := e.players.GetOrCreate(ctx, tgID, "Мария")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if p.Balance != 200 {
		t.Fatalf("expected starting balance 200, got %d", p.Balance)
	}
	if p.Level != 1 {
		t.Fatalf("expected level 1, got %d", p.Level)
	}

	order, err := e.orders.Assign(ctx, tgID, "Мария", "card_freelancer")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if order.RequiredClicks != 100 {
		t.Fatalf("expected 100 required clicks at level 1, got %d", order.RequiredClicks)
	}

	if _, err := e.orders.Assign(ctx, tgID, "Мария", "vk_cover"); !errors.Is(err, service.ErrAlreadyActiveOrder) {
		t.Fatalf("expected ErrAlreadyActiveOrder, got %v", err)
	}

	res, err := e.orders.Click(ctx, tgID, "Мария", 100)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if !res.Completed {
		t.Fatalf("expected completion at progress %d/%d", res.Progress, res.Required)
	}
	if res.Reward != 60 {
		t.Fatalf("expected reward 60, got %d", res.Reward)
	}
	if res.XPGained != 10 {
		t.Fatalf("expected 10 xp, got %d", res.XPGained)
	}
	if res.Level != 1 {
		t.Fatalf("expected level to stay 1, got %d", res.Level)
	}

	// первый заказ и первая сотня кликов открывают ачивки с наградой
	var unlockedReward int64
	for _, def := range res.Unlocked {
		unlockedReward += def.RewardRub
	}
	if res.Balance != 260+unlockedReward {
		t.Fatalf("expected balance %d, got %d", 260+unlockedReward, res.Balance)
	}

	if _, err := e.orders.Click(ctx, tgID, "Мария", 1); !errors.Is(err, service.ErrNoActiveOrder) {
		t.Fatalf("expected ErrNoActiveOrder after completion, got %v", err)
	}
}

func TestSnapshotImmutability(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano() + 1

	if _, err := e.players.GetOrCreate(ctx, tgID, "Олег"); err != nil {
		t.Fatalf("get or create: %v", err)
	}

	order, err := e.orders.Assign(ctx, tgID, "Олег", "card_freelancer")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	required := order.RequiredClicks

	// буст куплен после взятия заказа: требование не пересчитывается,
	// но живой CP растёт
	if _, err := e.shop.PurchaseBoost(ctx, tgID, "Олег", "cp_plus_1"); err != nil {
		t.Fatalf("purchase boost: %v", err)
	}

	res, err := e.orders.Click(ctx, tgID, "Олег", 1)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if res.Required != required {
		t.Fatalf("required clicks changed after purchase: %d -> %d", required, res.Required)
	}
	if res.Progress != 2 {
		t.Fatalf("expected progress 2 with cp=2, got %d", res.Progress)
	}
}

func TestOfflineIncomeCap(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano() + 2

	p, err := e.players.GetOrCreate(ctx, tgID, "Ира")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if _, err := e.shop.UpgradeTeam(ctx, tgID, "Ира", "junior"); err != nil {
		t.Fatalf("hire junior: %v", err)
	}

	// 100 часов отсутствия должны усечься до 12
	if _, err := e.db.Exec(ctx,
		`UPDATE players SET last_seen = now() - interval '100 hours' WHERE id = $1`, p.ID); err != nil {
		t.Fatalf("set last_seen: %v", err)
	}

	p2, err := e.players.GetOrCreate(ctx, tgID, "Ира")
	if err != nil {
		t.Fatalf("offline accrual: %v", err)
	}

	// junior ур.1: 4/мин, 12 часов = 2880
	if p2.PassiveEarned != 2880 {
		t.Fatalf("expected 2880 passive earned at the 12h cap, got %d", p2.PassiveEarned)
	}

	// повторный заход сразу после не должен ничего начислить
	p3, err := e.players.GetOrCreate(ctx, tgID, "Ира")
	if err != nil {
		t.Fatalf("second touch: %v", err)
	}
	if p3.PassiveEarned != p2.PassiveEarned {
		t.Fatalf("passive income double counted: %d -> %d", p2.PassiveEarned, p3.PassiveEarned)
	}
}

func TestDailyBonusCooldown(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano() + 3

	if _, err := e.players.GetOrCreate(ctx, tgID, "Ян"); err != nil {
		t.Fatalf("get or create: %v", err)
	}

	res, err := e.players.ClaimDailyBonus(ctx, tgID, "Ян")
	if err != nil {
		t.Fatalf("claim: %v", err)
	}
	if res.Amount != 100 {
		t.Fatalf("expected bonus 100, got %d", res.Amount)
	}

	if _, err := e.players.ClaimDailyBonus(ctx, tgID, "Ян"); !errors.Is(err, service.ErrDailyCooldown) {
		t.Fatalf("expected ErrDailyCooldown, got %v", err)
	}
}

func TestAchievementUnlockIsMonotonic(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano() + 4

	if _, err := e.players.GetOrCreate(ctx, tgID, "Лев"); err != nil {
		t.Fatalf("get or create: %v", err)
	}

	finish := func() []string {
		t.Helper()
		if _, err := e.orders.Assign(ctx, tgID, "Лев", "card_freelancer"); err != nil {
			t.Fatalf("assign: %v", err)
		}
		res, err := e.orders.Click(ctx, tgID, "Лев", 100)
		if err != nil {
			t.Fatalf("click: %v", err)
		}
		if !res.Completed {
			t.Fatal("expected completion")
		}
		codes := make([]string, 0, len(res.Unlocked))
		for _, def := range res.Unlocked {
			codes = append(codes, def.Code)
		}
		return codes
	}

	first := finish()
	hasOrders1 := false
	for _, code := range first {
		if code == "orders_1" {
			hasOrders1 = true
		}
	}
	if !hasOrders1 {
		t.Fatalf("expected orders_1 to unlock after first order, got %v", first)
	}

	second := finish()
	for _, code := range second {
		if code == "orders_1" {
			t.Fatal("orders_1 unlocked twice")
		}
	}
}

func TestUnlocksSurfacedExactlyOnce(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano() + 10

	p, err := e.players.GetOrCreate(ctx, tgID, "Лена")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}

	if _, err := e.orders.Assign(ctx, tgID, "Лена", "card_freelancer"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	res, err := e.orders.Click(ctx, tgID, "Лена", 100)
	if err != nil {
		t.Fatalf("click: %v", err)
	}
	if len(res.Unlocked) == 0 {
		t.Fatal("expected unlocks on first completed order")
	}

	// ачивки из ответа уже показаны - профиль не должен дублировать их
	got, err := e.achievements.ConsumeUnnotified(ctx, p.ID)
	if err != nil {
		t.Fatalf("consume: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("inline unlocks resurfaced: %v", got)
	}

	// офлайн-начисление никому не отвечает, его анлоки ждут профиля
	if _, err := e.shop.UpgradeTeam(ctx, tgID, "Лена", "junior"); err != nil {
		t.Fatalf("hire junior: %v", err)
	}
	if _, err := e.db.Exec(ctx,
		`UPDATE players SET last_seen = now() - interval '100 hours' WHERE id = $1`, p.ID); err != nil {
		t.Fatalf("set last_seen: %v", err)
	}
	if _, err := e.players.GetOrCreate(ctx, tgID, "Лена"); err != nil {
		t.Fatalf("offline accrual: %v", err)
	}

	got, err = e.achievements.ConsumeUnnotified(ctx, p.ID)
	if err != nil {
		t.Fatalf("consume deferred: %v", err)
	}
	found := false
	for _, def := range got {
		if def.Code == "passive_1000" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected passive_1000 among deferred unlocks, got %v", got)
	}

	got, err = e.achievements.ConsumeUnnotified(ctx, p.ID)
	if err != nil {
		t.Fatalf("second consume: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("deferred unlocks surfaced twice: %v", got)
	}
}

func TestRefusedActionKeepsOfflineIncome(t *testing.T) {
	e := newEngine(t)
	ctx := context.Background()
	tgID := time.Now().UnixNano() + 11

	p, err := e.players.GetOrCreate(ctx, tgID, "Оля")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if _, err := e.shop.UpgradeTeam(ctx, tgID, "Оля", "junior"); err != nil {
		t.Fatalf("hire junior: %v", err)
	}
	if _, err := e.players.ClaimDailyBonus(ctx, tgID, "Оля"); err != nil {
		t.Fatalf("first daily claim: %v", err)
	}

	before, err := e.players.GetOrCreate(ctx, tgID, "Оля")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}

	if _, err := e.db.Exec(ctx,
		`UPDATE players SET last_seen = now() - interval '1 hour' WHERE id = $1`, p.ID); err != nil {
		t.Fatalf("set last_seen: %v", err)
	}

	// отказ по кулдауну, но начисленный за час доход должен остаться
	if _, err := e.players.ClaimDailyBonus(ctx, tgID, "Оля"); !errors.Is(err, service.ErrDailyCooldown) {
		t.Fatalf("expected ErrDailyCooldown, got %v", err)
	}

	after, err := e.players.GetOrCreate(ctx, tgID, "Оля")
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	// junior ур.1: 4/мин, час = 240
	if after.PassiveEarned != before.PassiveEarned+240 {
		t.Fatalf("expected passive earned %d, got %d", before.PassiveEarned+240, after.PassiveEarned)
	}
}
