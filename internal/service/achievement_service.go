package service

import (
	"context"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/catalog"
	"github.com/89089599151/designer-clicker-bot/internal/domain"
	"github.com/89089599151/designer-clicker-bot/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AchievementService пересчитывает прогресс ачивок от текущих метрик игрока.
// Прогресс не копится дельтами - каждый вызов читает пожизненные счётчики
// заново, поэтому пропущенное событие не приводит к расползанию.
type AchievementService struct {
	catalog *catalog.Registry
	repo    *repository.AchievementRepository
	logs    *repository.EconomyLogRepository
	now     func() time.Time
}

func NewAchievementService(db *pgxpool.Pool, reg *catalog.Registry) *AchievementService {
	return &AchievementService{
		catalog: reg,
		repo:    repository.NewAchievementRepository(db),
		logs:    repository.NewEconomyLogRepository(db),
		now:     time.Now,
	}
}

func metricFor(p *domain.Player, cat domain.TriggerCategory) int64 {
	switch cat {
	case domain.TriggerClicks:
		return p.ClicksTotal
	case domain.TriggerOrders:
		return p.OrdersDone
	case domain.TriggerBalance:
		return p.Balance
	case domain.TriggerLevel:
		return int64(p.Level)
	case domain.TriggerPassive:
		return p.PassiveEarned
	case domain.TriggerDaily:
		return p.DailyClaims
	}
	return 0
}

// EvaluateTx recomputes progress for every definition in the changed
// categories and returns the newly unlocked ones. Unlocking is monotonic:
// once unlocked_at is set it is never cleared, repeated evaluation only
// refreshes progress numbers. The unlock reward is credited to the player
// in the same transaction; the caller must persist the player afterwards.
//
// The returned unlocks are marked notified: the caller is expected to show
// them in its response, so ConsumeUnnotified must not surface them again.
func (s *AchievementService) EvaluateTx(ctx context.Context, tx pgx.Tx, p *domain.Player, categories ...domain.TriggerCategory) ([]domain.AchievementDef, error) {
	return s.evaluateTx(ctx, tx, p, true, categories...)
}

// EvaluateDeferredTx is EvaluateTx for paths where nobody is looking at the
// result (офлайн-начисление): unlocks stay unnotified so ConsumeUnnotified
// picks them up on the next profile open.
func (s *AchievementService) EvaluateDeferredTx(ctx context.Context, tx pgx.Tx, p *domain.Player, categories ...domain.TriggerCategory) ([]domain.AchievementDef, error) {
	return s.evaluateTx(ctx, tx, p, false, categories...)
}

func (s *AchievementService) evaluateTx(ctx context.Context, tx pgx.Tx, p *domain.Player, surfaced bool, categories ...domain.TriggerCategory) ([]domain.AchievementDef, error) {
	set := make(map[domain.TriggerCategory]bool, len(categories))
	for _, c := range categories {
		set[c] = true
	}

	defs := s.catalog.AchievementsByCategory(set)
	if len(defs) == 0 {
		return nil, nil
	}

	existing, err := s.repo.WithTx(tx).List(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	var unlocked []domain.AchievementDef
	for _, def := range defs {
		value := metricFor(p, def.Category)

		rec := existing[def.Code]
		if rec == nil {
			rec = &domain.AchievementProgress{PlayerID: p.ID, Code: def.Code}
		}
		rec.Progress = value

		if value >= def.Threshold && !rec.Unlocked() {
			now := s.now()
			rec.UnlockedAt = &now
			rec.Notified = surfaced
			unlocked = append(unlocked, def)

			if def.RewardRub > 0 {
				p.Balance += def.RewardRub
				if err := s.logs.WithTx(tx).Create(ctx, &domain.EconomyLog{
					PlayerID: p.ID,
					Type:     domain.LogAchievement,
					Amount:   def.RewardRub,
					Meta:     map[string]interface{}{"code": def.Code},
				}); err != nil {
					return nil, err
				}
			}
		}

		if err := s.repo.WithTx(tx).Upsert(ctx, rec); err != nil {
			return nil, err
		}
	}

	return unlocked, nil
}

// ConsumeUnnotified returns unlocked-but-unsurfaced achievements and marks
// them notified, so the transport shows each unlock exactly once.
func (s *AchievementService) ConsumeUnnotified(ctx context.Context, playerID int64) ([]domain.AchievementDef, error) {
	recs, err := s.repo.Unnotified(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, nil
	}

	var defs []domain.AchievementDef
	codes := make([]string, 0, len(recs))
	for _, rec := range recs {
		codes = append(codes, rec.Code)
		if def, ok := s.catalog.Achievement(rec.Code); ok {
			defs = append(defs, def)
		}
	}
	if err := s.repo.MarkNotified(ctx, playerID, codes); err != nil {
		return nil, err
	}
	return defs, nil
}

// Progress returns the player's progress on every achievement definition.
func (s *AchievementService) Progress(ctx context.Context, playerID int64) ([]AchievementView, error) {
	existing, err := s.repo.List(ctx, playerID)
	if err != nil {
		return nil, err
	}

	var res []AchievementView
	for _, def := range s.catalog.Achievements() {
		v := AchievementView{Def: def}
		if rec := existing[def.Code]; rec != nil {
			v.Progress = rec.Progress
			v.UnlockedAt = rec.UnlockedAt
		}
		res = append(res, v)
	}
	return res, nil
}

// AchievementView - определение плюс прогресс конкретного игрока.
type AchievementView struct {
	Def        domain.AchievementDef `json:"def"`
	Progress   int64                 `json:"progress"`
	UnlockedAt *time.Time            `json:"unlocked_at,omitempty"`
}
