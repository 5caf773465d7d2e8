package repository

import (
	"context"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AchievementRepository struct {
	q Querier
}

func NewAchievementRepository(db *pgxpool.Pool) *AchievementRepository {
	return &AchievementRepository{q: db}
}

func (r *AchievementRepository) WithTx(tx pgx.Tx) *AchievementRepository {
	return &AchievementRepository{q: tx}
}

// List returns all progress records of a player keyed by achievement code.
func (r *AchievementRepository) List(ctx context.Context, playerID int64) (map[string]*domain.AchievementProgress, error) {
	rows, err := r.q.Query(ctx,
		`SELECT player_id, code, progress, unlocked_at, notified
		 FROM achievements
		 WHERE player_id = $1`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make(map[string]*domain.AchievementProgress)
	for rows.Next() {
		var a domain.AchievementProgress
		if err := rows.Scan(&a.PlayerID, &a.Code, &a.Progress, &a.UnlockedAt, &a.Notified); err != nil {
			return nil, err
		}
		res[a.Code] = &a
	}
	return res, rows.Err()
}

// Upsert writes the progress record. unlocked_at is never cleared once set:
// the update keeps the existing value when the new one is NULL.
func (r *AchievementRepository) Upsert(ctx context.Context, a *domain.AchievementProgress) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO achievements (player_id, code, progress, unlocked_at, notified)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (player_id, code) DO UPDATE
		 SET progress = EXCLUDED.progress,
		     unlocked_at = COALESCE(achievements.unlocked_at, EXCLUDED.unlocked_at),
		     notified = achievements.notified OR EXCLUDED.notified`,
		a.PlayerID, a.Code, a.Progress, a.UnlockedAt, a.Notified,
	)
	return err
}

// Unnotified returns unlocked achievements not yet surfaced to the player.
func (r *AchievementRepository) Unnotified(ctx context.Context, playerID int64) ([]*domain.AchievementProgress, error) {
	rows, err := r.q.Query(ctx,
		`SELECT player_id, code, progress, unlocked_at, notified
		 FROM achievements
		 WHERE player_id = $1 AND unlocked_at IS NOT NULL AND NOT notified
		 ORDER BY unlocked_at`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.AchievementProgress
	for rows.Next() {
		var a domain.AchievementProgress
		if err := rows.Scan(&a.PlayerID, &a.Code, &a.Progress, &a.UnlockedAt, &a.Notified); err != nil {
			return nil, err
		}
		res = append(res, &a)
	}
	return res, rows.Err()
}

// MarkNotified flags unlocked achievements as surfaced.
func (r *AchievementRepository) MarkNotified(ctx context.Context, playerID int64, codes []string) error {
	for _, code := range codes {
		if _, err := r.q.Exec(ctx,
			`UPDATE achievements SET notified = TRUE WHERE player_id = $1 AND code = $2`,
			playerID, code,
		); err != nil {
			return err
		}
	}
	return nil
}
