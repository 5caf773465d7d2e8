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

// StatsService складывает все источники модификаторов игрока в итоговый
// вектор статов.
type StatsService struct {
	catalog *catalog.Registry
	players *repository.PlayerRepository
	boosts  *repository.BoostRepository
	items   *repository.ItemRepository
	team    *repository.TeamRepository
	buffs   *repository.BuffRepository
	now     func() time.Time
}

func NewStatsService(db *pgxpool.Pool, reg *catalog.Registry) *StatsService {
	return &StatsService{
		catalog: reg,
		players: repository.NewPlayerRepository(db),
		boosts:  repository.NewBoostRepository(db),
		items:   repository.NewItemRepository(db),
		team:    repository.NewTeamRepository(db),
		buffs:   repository.NewBuffRepository(db),
		now:     time.Now,
	}
}

// ComputeTx computes the player's effective stats inside an action
// transaction. Side effect: expired buffs are deleted during this read -
// there is no background scheduler, so the read is the cleanup point.
func (s *StatsService) ComputeTx(ctx context.Context, tx pgx.Tx, p *domain.Player) (economy.StatVector, error) {
	var contribs []economy.Contribution

	levels, err := s.boosts.WithTx(tx).Levels(ctx, p.ID)
	if err != nil {
		return economy.StatVector{}, err
	}
	for code, level := range levels {
		if def, ok := s.catalog.Boost(code); ok {
			contribs = append(contribs, economy.BoostContribution(def, level))
		}
	}

	equipped, err := s.items.WithTx(tx).Equipped(ctx, p.ID)
	if err != nil {
		return economy.StatVector{}, err
	}
	for _, e := range equipped {
		if e.ItemCode == nil {
			continue
		}
		if def, ok := s.catalog.Item(*e.ItemCode); ok {
			contribs = append(contribs, economy.BonusContribution(def.BonusType, def.BonusValue))
		}
	}

	now := s.now()
	buffs, err := s.buffs.WithTx(tx).Active(ctx, p.ID, now)
	if err != nil {
		return economy.StatVector{}, err
	}
	for _, b := range buffs {
		contribs = append(contribs, economy.BonusContribution(b.BonusType, b.Value))
	}
	if err := s.buffs.WithTx(tx).DeleteExpired(ctx, p.ID, now); err != nil {
		return economy.StatVector{}, err
	}

	contribs = append(contribs, economy.PrestigeContribution(p.PrestigePct))

	return economy.Aggregate(p.CPBase, p.RewardMul, p.PassiveMul, contribs), nil
}

// RateLimitBonus returns the player's click rate limit bonus from equipped
// items and active buffs. Read outside a transaction: the rate limiter does
// not need a locked row, and a slightly stale value is acceptable.
func (s *StatsService) RateLimitBonus(ctx context.Context, tgID int64) (int, error) {
	p, err := s.players.GetByTgID(ctx, tgID)
	if err != nil {
		return 0, err
	}

	var contribs []economy.Contribution

	equipped, err := s.items.Equipped(ctx, p.ID)
	if err != nil {
		return 0, err
	}
	for _, e := range equipped {
		if e.ItemCode == nil {
			continue
		}
		if def, ok := s.catalog.Item(*e.ItemCode); ok {
			contribs = append(contribs, economy.BonusContribution(def.BonusType, def.BonusValue))
		}
	}

	buffs, err := s.buffs.Active(ctx, p.ID, s.now())
	if err != nil {
		return 0, err
	}
	for _, b := range buffs {
		contribs = append(contribs, economy.BonusContribution(b.BonusType, b.Value))
	}

	sv := economy.Aggregate(p.CPBase, p.RewardMul, p.PassiveMul, contribs)
	return sv.RateLimitPlus, nil
}

// TeamIncomePerMinTx returns the summed per-minute income of the hired team,
// before the passive multiplier.
func (s *StatsService) TeamIncomePerMinTx(ctx context.Context, tx pgx.Tx, playerID int64) (float64, error) {
	levels, err := s.team.WithTx(tx).Levels(ctx, playerID)
	if err != nil {
		return 0, err
	}

	var perMin float64
	for code, level := range levels {
		if def, ok := s.catalog.Team(code); ok {
			perMin += economy.TeamIncomePerMin(def.BaseIncomePerMin, level)
		}
	}
	return perMin, nil
}
