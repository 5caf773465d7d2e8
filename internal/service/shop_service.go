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

// ShopService - покупки: бусты, предметы, экипировка, команда.
type ShopService struct {
	db           *pgxpool.Pool
	catalog      *catalog.Registry
	players      *PlayerService
	playerRepo   *repository.PlayerRepository
	boosts       *repository.BoostRepository
	items        *repository.ItemRepository
	team         *repository.TeamRepository
	buffs        *repository.BuffRepository
	logs         *repository.EconomyLogRepository
	achievements *AchievementService
	now          func() time.Time
}

func NewShopService(db *pgxpool.Pool, reg *catalog.Registry, players *PlayerService, achievements *AchievementService) *ShopService {
	return &ShopService{
		db:           db,
		catalog:      reg,
		players:      players,
		playerRepo:   repository.NewPlayerRepository(db),
		boosts:       repository.NewBoostRepository(db),
		items:        repository.NewItemRepository(db),
		team:         repository.NewTeamRepository(db),
		buffs:        repository.NewBuffRepository(db),
		logs:         repository.NewEconomyLogRepository(db),
		achievements: achievements,
		now:          time.Now,
	}
}

// PurchaseView - итог покупки или апгрейда.
type PurchaseView struct {
	Code     string `json:"code"`
	Level    int    `json:"level,omitempty"`
	Cost     int64  `json:"cost"`
	NextCost int64  `json:"next_cost,omitempty"`
	Balance  int64  `json:"balance"`
}

// PurchaseBoost buys the next level of a boost. The boost only affects
// orders taken after the purchase: the active order keeps its snapshot.
func (s *ShopService) PurchaseBoost(ctx context.Context, tgID int64, firstName, code string) (*PurchaseView, error) {
	def, ok := s.catalog.Boost(code)
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

	level, err := s.boosts.WithTx(tx).Level(ctx, p.ID, code)
	if err != nil {
		return nil, err
	}
	cost := economy.UpgradeCost(def.BaseCost, def.Growth, level+1)
	if p.Balance < cost {
		return nil, ErrInsufficientFunds
	}

	p.Balance -= cost
	if err := s.boosts.WithTx(tx).SetLevel(ctx, p.ID, code, level+1); err != nil {
		return nil, err
	}
	if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
		PlayerID: p.ID,
		Type:     domain.LogBuyBoost,
		Amount:   -cost,
		Meta:     map[string]interface{}{"boost": code, "level": level + 1},
	}); err != nil {
		return nil, err
	}
	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PurchaseView{
		Code:     code,
		Level:    level + 1,
		Cost:     cost,
		NextCost: economy.UpgradeCost(def.BaseCost, def.Growth, level+2),
		Balance:  p.Balance,
	}, nil
}

// PurchaseItem buys an equipment item into the inventory. Buying does not
// equip: the bonus applies only after the item is put into its slot.
func (s *ShopService) PurchaseItem(ctx context.Context, tgID int64, firstName, code string) (*PurchaseView, error) {
	def, ok := s.catalog.Item(code)
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
		return nil, ErrLevelTooLow
	}

	owns, err := s.items.WithTx(tx).Owns(ctx, p.ID, code)
	if err != nil {
		return nil, err
	}
	if owns {
		return nil, ErrAlreadyOwned
	}
	if p.Balance < def.Price {
		return nil, ErrInsufficientFunds
	}

	p.Balance -= def.Price
	if err := s.items.WithTx(tx).Add(ctx, p.ID, code); err != nil {
		return nil, err
	}
	if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
		PlayerID: p.ID,
		Type:     domain.LogBuyItem,
		Amount:   -def.Price,
		Meta:     map[string]interface{}{"item": code},
	}); err != nil {
		return nil, err
	}
	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PurchaseView{Code: code, Cost: def.Price, Balance: p.Balance}, nil
}

// EquipItem puts an owned item into its slot, replacing whatever was there.
func (s *ShopService) EquipItem(ctx context.Context, tgID int64, firstName, code string) error {
	def, ok := s.catalog.Item(code)
	if !ok {
		return ErrUnknownCode
	}

	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	p, err := s.players.TouchTx(ctx, tx, tgID, firstName)
	if err != nil {
		return err
	}

	owns, err := s.items.WithTx(tx).Owns(ctx, p.ID, code)
	if err != nil {
		return err
	}
	if !owns {
		return ErrNotOwned
	}

	if err := s.items.WithTx(tx).Equip(ctx, p.ID, def.Slot, code); err != nil {
		return err
	}
	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// UpgradeTeam hires or levels up a team member.
func (s *ShopService) UpgradeTeam(ctx context.Context, tgID int64, firstName, code string) (*PurchaseView, error) {
	def, ok := s.catalog.Team(code)
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

	level, err := s.team.WithTx(tx).Level(ctx, p.ID, code)
	if err != nil {
		return nil, err
	}
	cost := economy.TeamUpgradeCost(def.BaseCost, level)
	if p.Balance < cost {
		return nil, ErrInsufficientFunds
	}

	p.Balance -= cost
	if err := s.team.WithTx(tx).SetLevel(ctx, p.ID, code, level+1); err != nil {
		return nil, err
	}
	if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
		PlayerID: p.ID,
		Type:     domain.LogTeamUpgrade,
		Amount:   -cost,
		Meta:     map[string]interface{}{"member": code, "level": level + 1},
	}); err != nil {
		return nil, err
	}
	if err := s.playerRepo.WithTx(tx).Update(ctx, p); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &PurchaseView{
		Code:     code,
		Level:    level + 1,
		Cost:     cost,
		NextCost: economy.TeamUpgradeCost(def.BaseCost, level+1),
		Balance:  p.Balance,
	}, nil
}

// GrantBuff hands the player a timed bonus, e.g. from a promo action.
func (s *ShopService) GrantBuff(ctx context.Context, playerID int64, kind domain.BonusType, value float64, ttl time.Duration) error {
	return s.buffs.Create(ctx, &domain.Buff{
		PlayerID:  playerID,
		BonusType: kind,
		Value:     value,
		ExpiresAt: s.now().Add(ttl),
	})
}

// Inventory lists owned item codes with equipped slots.
type InventoryView struct {
	Items    []domain.Item            `json:"items"`
	Equipped []domain.PlayerEquipment `json:"equipped"`
}

func (s *ShopService) Inventory(ctx context.Context, playerID int64) (*InventoryView, error) {
	codes, err := s.items.Inventory(ctx, playerID)
	if err != nil {
		return nil, err
	}
	view := &InventoryView{}
	for _, code := range codes {
		if def, ok := s.catalog.Item(code); ok {
			view.Items = append(view.Items, def)
		}
	}
	view.Equipped, err = s.items.Equipped(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// BoostLevels returns the player's boost levels with next upgrade costs.
type BoostView struct {
	Boost    domain.Boost `json:"boost"`
	Level    int          `json:"level"`
	NextCost int64        `json:"next_cost"`
}

func (s *ShopService) BoostLevels(ctx context.Context, playerID int64) ([]BoostView, error) {
	levels, err := s.boosts.Levels(ctx, playerID)
	if err != nil {
		return nil, err
	}
	out := make([]BoostView, 0)
	for _, def := range s.catalog.Boosts() {
		lvl := levels[def.Code]
		out = append(out, BoostView{
			Boost:    def,
			Level:    lvl,
			NextCost: economy.UpgradeCost(def.BaseCost, def.Growth, lvl+1),
		})
	}
	return out, nil
}

// TeamLevels returns hire levels and incomes for every team role.
type TeamView struct {
	Member       domain.TeamMember `json:"member"`
	Level        int               `json:"level"`
	IncomePerMin float64           `json:"income_per_min"`
	NextCost     int64             `json:"next_cost"`
}

func (s *ShopService) TeamLevels(ctx context.Context, playerID int64) ([]TeamView, error) {
	levels, err := s.team.Levels(ctx, playerID)
	if err != nil {
		return nil, err
	}
	out := make([]TeamView, 0)
	for _, def := range s.catalog.TeamMembers() {
		lvl := levels[def.Code]
		out = append(out, TeamView{
			Member:       def,
			Level:        lvl,
			IncomePerMin: economy.TeamIncomePerMin(def.BaseIncomePerMin, lvl),
			NextCost:     economy.TeamUpgradeCost(def.BaseCost, lvl),
		})
	}
	return out, nil
}
