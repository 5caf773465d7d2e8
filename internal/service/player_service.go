package service

import (
	"context"
	"errors"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/domain"
	"github.com/89089599151/designer-clicker-bot/internal/economy"
	"github.com/89089599151/designer-clicker-bot/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PlayerService владеет жизненным циклом игрока: создание, пассивный доход
// на каждом касании, ежедневный бонус, профиль.
type PlayerService struct {
	db           *pgxpool.Pool
	catalog      *catalog.Registry
	players      *repository.PlayerRepository
	orders       *repository.OrderRepository
	items        *repository.ItemRepository
	logs         *repository.EconomyLogRepository
	stats        *StatsService
	achievements *AchievementService

	initialBalance int64
	dailyBonus     int64
	offlineCap     time.Duration
	now            func() time.Time
}

func NewPlayerService(db *pgxpool.Pool, reg *catalog.Registry, stats *StatsService, achievements *AchievementService, initialBalance, dailyBonus int64, offlineCap time.Duration) *PlayerService {
	return &PlayerService{
		db:             db,
		catalog:        reg,
		players:        repository.NewPlayerRepository(db),
		orders:         repository.NewOrderRepository(db),
		items:          repository.NewItemRepository(db),
		logs:           repository.NewEconomyLogRepository(db),
		stats:          stats,
		achievements:   achievements,
		initialBalance: initialBalance,
		dailyBonus:     dailyBonus,
		offlineCap:     offlineCap,
		now:            time.Now,
	}
}

// GetOrCreate fetches the player, creating the profile on first contact.
// For existing players offline passive income is applied as a side effect.
func (s *PlayerService) GetOrCreate(ctx context.Context, tgID int64, firstName string) (*domain.Player, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return nil, err
	}
	if err := s.players.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return p, nil
}

// TouchTx locks (or creates) the player inside the action transaction and
// applies offline passive income. Every engine action starts here; the
// caller is responsible for persisting the player before commit.
func (s *PlayerService) TouchTx(ctx context.Context, tx pgx.Tx, tgID int64, firstName string) (*domain.Player, error) {
	p, err := s.players.WithTx(tx).GetByTgIDForUpdate(ctx, tgID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.createTx(ctx, tx, tgID, firstName)
	}
	if err != nil {
		return nil, err
	}

	if err := s.applyOfflineIncomeTx(ctx, tx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlayerService) createTx(ctx context.Context, tx pgx.Tx, tgID int64, firstName string) (*domain.Player, error) {
	p := &domain.Player{
		TgID:      tgID,
		FirstName: firstName,
		Balance:   s.initialBalance,
		CPBase:    1,
		Level:     1,
		LastSeen:  s.now(),
	}
	if err := s.players.WithTx(tx).Create(ctx, p); err != nil {
		return nil, err
	}
	if err := s.items.WithTx(tx).SeedSlots(ctx, p.ID, catalog.EquipmentSlots); err != nil {
		return nil, err
	}
	return p, nil
}

// CommitTouch persists the player and commits, keeping the touchpoint's
// offline accrual when the action itself is refused.
func (s *PlayerService) CommitTouch(ctx context.Context, tx pgx.Tx, p *domain.Player) error {
	if err := s.players.WithTx(tx).Update(ctx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// applyOfflineIncomeTx credits passive income for the time since last_seen,
// clamped to the offline cap. last_seen advances unconditionally so elapsed
// time is never counted twice.
func (s *PlayerService) applyOfflineIncomeTx(ctx context.Context, tx pgx.Tx, p *domain.Player) error {
	now := s.now()
	elapsed := now.Sub(p.LastSeen)
	p.LastSeen = now

	sv, err := s.stats.ComputeTx(ctx, tx, p)
	if err != nil {
		return err
	}
	perMin, err := s.stats.TeamIncomePerMinTx(ctx, tx, p.ID)
	if err != nil {
		return err
	}

	rate := economy.PassiveRatePerSec(perMin, sv.PassiveMul)
	acc := economy.OfflineAccrual(elapsed, s.offlineCap, rate)
	if acc.Amount <= 0 {
		return nil
	}

	p.Balance += acc.Amount
	p.PassiveEarned += acc.Amount
	if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
		PlayerID: p.ID,
		Type:     domain.LogPassive,
		Amount:   acc.Amount,
		Meta: map[string]interface{}{
			"sec":         acc.RawSec,
			"sec_clamped": acc.ClampedSec,
		},
	}); err != nil {
		return err
	}

	_, err = s.achievements.EvaluateDeferredTx(ctx, tx, p, domain.TriggerPassive, domain.TriggerBalance)
	return err
}

// DailyResult - итог запроса ежедневного бонуса.
type DailyResult struct {
	Amount   int64
	Unlocked []domain.AchievementDef
}

// ClaimDailyBonus grants the daily bonus unless claimed within 24 hours.
func (s *PlayerService) ClaimDailyBonus(ctx context.Context, tgID int64, firstName string) (*DailyResult, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return nil, err
	}

	now := s.now()
	if p.DailyBonusAt != nil && now.Sub(*p.DailyBonusAt) < 24*time.Hour {
		// Кулдаун - не повод терять начисленный офлайн-доход касания.
		if err := s.CommitTouch(ctx, tx, p); err != nil {
			return nil, err
		}
		return nil, ErrDailyCooldown
	}

	p.DailyBonusAt = &now
	p.Balance += s.dailyBonus
	p.DailyClaims++

	if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
		PlayerID: p.ID,
		Type:     domain.LogDailyBonus,
		Amount:   s.dailyBonus,
	}); err != nil {
		return nil, err
	}

	unlocked, err := s.achievements.EvaluateTx(ctx, tx, p, domain.TriggerDaily, domain.TriggerBalance)
	if err != nil {
		return nil, err
	}

	if err := s.players.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &DailyResult{Amount: s.dailyBonus, Unlocked: unlocked}, nil
}

// ProfileView - данные для экрана профиля.
type ProfileView struct {
	Player       *domain.Player      `json:"player"`
	Stats        economy.StatVector  `json:"stats"`
	IncomePerMin int64               `json:"income_per_min"`
	XPRequired   int64               `json:"xp_required"`
	ActiveOrder  *domain.PlayerOrder `json:"active_order,omitempty"`
	OrderTitle   string              `json:"order_title,omitempty"`
}

// Profile assembles the profile screen. A touchpoint like any other: passive
// income is applied and last_seen advances.
func (s *PlayerService) Profile(ctx context.Context, tgID int64, firstName string) (*ProfileView, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return nil, err
	}

	sv, err := s.stats.ComputeTx(ctx, tx, p)
	if err != nil {
		return nil, err
	}
	perMin, err := s.stats.TeamIncomePerMinTx(ctx, tx, p.ID)
	if err != nil {
		return nil, err
	}

	view := &ProfileView{
		Player:       p,
		Stats:        sv,
		IncomePerMin: int64(economy.PassiveRatePerSec(perMin, sv.PassiveMul) * 60),
		XPRequired:   economy.XPToLevel(p.Level),
	}

	active, err := s.orders.WithTx(tx).GetActive(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		view.ActiveOrder = active
		if def, ok := s.catalog.Order(active.OrderCode); ok {
			view.OrderTitle = def.Title
		}
	}

	if err := s.players.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return view, nil
}

// History returns recent economy log entries.
func (s *PlayerService) History(ctx context.Context, playerID int64, limit int) ([]*domain.EconomyLog, error) {
	return s.logs.Recent(ctx, playerID, limit)
}

// LogStats returns per-category aggregates of the economy log.
func (s *PlayerService) LogStats(ctx context.Context, playerID int64) ([]domain.LogStat, error) {
	return s.logs.Stats(ctx, playerID)
}
