package service

import (
	"context"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/domain"
	"github.com/89089599151/designer-clicker-bot/internal/economy"
	"github.com/89089599151/designer-clicker-bot/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderService - взятие заказов, клики и завершение.
type OrderService struct {
	db           *pgxpool.Pool
	catalog      *catalog.Registry
	players      *PlayerService
	playerRepo   *repository.PlayerRepository
	orders       *repository.OrderRepository
	logs         *repository.EconomyLogRepository
	stats        *StatsService
	achievements *AchievementService
	now          func() time.Time
}

func NewOrderService(db *pgxpool.Pool, reg *catalog.Registry, players *PlayerService, stats *StatsService, achievements *AchievementService) *OrderService {
	return &OrderService{
		db:           db,
		catalog:      reg,
		players:      players,
		playerRepo:   repository.NewPlayerRepository(db),
		orders:       repository.NewOrderRepository(db),
		logs:         repository.NewEconomyLogRepository(db),
		stats:        stats,
		achievements: achievements,
		now:          time.Now,
	}
}

// Available returns order templates the player's level allows.
func (s *OrderService) Available(level int) []domain.OrderTemplate {
	return s.catalog.OrdersForLevel(level)
}

// Assign takes an order for the player. Required clicks and the reward
// multiplier are frozen at this moment: later stat changes do not affect
// the order in progress.
func (s *OrderService) Assign(ctx context.Context, tgID int64, firstName, orderCode string) (*domain.PlayerOrder, error) {
	def, ok := s.catalog.Order(orderCode)
	if !ok {
		return nil, ErrUnknownCode
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.players.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return nil, err
	}
	if p.Level < def.MinLevel {
		if err := s.players.CommitTouch(ctx, tx, p); err != nil {
			return nil, err
		}
		return nil, ErrLevelTooLow
	}

	active, err := s.orders.WithTx(tx).GetActive(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		if err := s.players.CommitTouch(ctx, tx, p); err != nil {
			return nil, err
		}
		return nil, ErrAlreadyActiveOrder
	}

	sv, err := s.stats.ComputeTx(ctx, tx, p)
	if err != nil {
		return nil, err
	}

	order := &domain.PlayerOrder{
		PlayerID:          p.ID,
		OrderCode:         def.Code,
		RequiredClicks:    economy.SnapshotRequiredClicks(def.BaseClicks, p.Level, sv.ReqClicksPct),
		RewardMulSnapshot: sv.RewardMul,
	}
	if err := s.orders.WithTx(tx).Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

// ClickResult - итог пачки кликов по активному заказу.
type ClickResult struct {
	OrderCode  string                  `json:"order_code"`
	OrderTitle string                  `json:"order_title"`
	Progress   int                     `json:"progress"`
	Required   int                     `json:"required"`
	Percent    int                     `json:"percent"`
	CP         int                     `json:"cp"`
	Notify     bool                    `json:"notify"`
	Completed  bool                    `json:"completed"`
	Reward     int64                   `json:"reward,omitempty"`
	XPGained   int64                   `json:"xp_gained,omitempty"`
	Level      int                     `json:"level"`
	LevelUp    bool                    `json:"level_up"`
	Balance    int64                   `json:"balance"`
	Unlocked   []domain.AchievementDef `json:"unlocked,omitempty"`
}

// Click applies a batch of click actions to the active order. Each click
// adds the player's current click power to progress, capped at required.
// Notify is raised every time progress crosses a tens boundary and on
// completion.
func (s *OrderService) Click(ctx context.Context, tgID int64, firstName string, count int) (*ClickResult, error) {
	if count < 1 {
		count = 1
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.players.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return nil, err
	}

	order, err := s.orders.WithTx(tx).GetActive(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		if err := s.players.CommitTouch(ctx, tx, p); err != nil {
			return nil, err
		}
		return nil, ErrNoActiveOrder
	}

	sv, err := s.stats.ComputeTx(ctx, tx, p)
	if err != nil {
		return nil, err
	}

	prev := order.ProgressClicks
	order.ProgressClicks += count * sv.CP
	if order.ProgressClicks > order.RequiredClicks {
		order.ProgressClicks = order.RequiredClicks
	}
	p.ClicksTotal += int64(count)

	res := &ClickResult{
		OrderCode: order.OrderCode,
		Progress:  order.ProgressClicks,
		Required:  order.RequiredClicks,
		Percent:   order.Percent(),
		CP:        sv.CP,
		Notify:    order.ProgressClicks/10 > prev/10,
	}
	if def, ok := s.catalog.Order(order.OrderCode); ok {
		res.OrderTitle = def.Title
	}

	if order.ProgressClicks >= order.RequiredClicks {
		if err := s.finishTx(ctx, tx, p, order, res); err != nil {
			return nil, err
		}
	}

	if err := s.orders.WithTx(tx).Update(ctx, order); err != nil {
		return nil, err
	}
	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	res.Level = p.Level
	res.Balance = p.Balance
	return res, nil
}

func (s *OrderService) finishTx(ctx context.Context, tx pgx.Tx, p *domain.Player, order *domain.PlayerOrder, res *ClickResult) error {
	now := s.now()
	order.Finished = true
	order.FinishedAt = &now

	reward := economy.RewardFromRequired(order.RequiredClicks, order.RewardMulSnapshot)
	xp := economy.OrderXP(order.RequiredClicks)

	oldLevel := p.Level
	p.Balance += reward
	p.OrdersDone++
	p.Level, p.XP = economy.ApplyXP(p.Level, p.XP, xp)

	if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
		PlayerID: p.ID,
		Type:     domain.LogOrderFinish,
		Amount:   reward,
		Meta: map[string]interface{}{
			"order":  order.OrderCode,
			"clicks": order.RequiredClicks,
			"xp":     xp,
		},
	}); err != nil {
		return err
	}

	unlocked, err := s.achievements.EvaluateTx(ctx, tx, p,
		domain.TriggerClicks, domain.TriggerOrders, domain.TriggerBalance, domain.TriggerLevel)
	if err != nil {
		return err
	}

	res.Completed = true
	res.Notify = true
	res.Reward = reward
	res.XPGained = xp
	res.LevelUp = p.Level > oldLevel
	res.Unlocked = unlocked
	return nil
}

// Cancel drops the active order without reward. Progress is lost.
func (s *OrderService) Cancel(ctx context.Context, tgID int64, firstName string) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.players.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return err
	}

	order, err := s.orders.WithTx(tx).GetActive(ctx, p.ID)
	if err != nil {
		return err
	}
	if order == nil {
		if err := s.players.CommitTouch(ctx, tx, p); err != nil {
			return err
		}
		return ErrNoActiveOrder
	}

	order.Canceled = true
	now := s.now()
	order.FinishedAt = &now
	if err := s.orders.WithTx(tx).Update(ctx, order); err != nil {
		return err
	}
	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
