package repository

import (
	"context"
	"time"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BuffRepository struct {
	q Querier
}

func NewBuffRepository(db *pgxpool.Pool) *BuffRepository {
	return &BuffRepository{q: db}
}

func (r *BuffRepository) WithTx(tx pgx.Tx) *BuffRepository {
	return &BuffRepository{q: tx}
}

// Active returns buffs that have not expired by the given moment.
func (r *BuffRepository) Active(ctx context.Context, playerID int64, now time.Time) ([]domain.Buff, error) {
	rows, err := r.q.Query(ctx,
		`SELECT id, player_id, bonus_type, value, expires_at, created_at
		 FROM player_buffs
		 WHERE player_id = $1 AND expires_at > $2`,
		playerID, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.Buff
	for rows.Next() {
		var b domain.Buff
		if err := rows.Scan(&b.ID, &b.PlayerID, &b.BonusType, &b.Value, &b.ExpiresAt, &b.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, b)
	}
	return res, rows.Err()
}

// DeleteExpired removes buffs past their expiry. Called from the stat read
// (lazy expiry - there is no background scheduler).
func (r *BuffRepository) DeleteExpired(ctx context.Context, playerID int64, now time.Time) error {
	_, err := r.q.Exec(ctx,
		`DELETE FROM player_buffs WHERE player_id = $1 AND expires_at <= $2`,
		playerID, now,
	)
	return err
}

func (r *BuffRepository) Create(ctx context.Context, b *domain.Buff) error {
	return r.q.QueryRow(ctx,
		`INSERT INTO player_buffs (player_id, bonus_type, value, expires_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		b.PlayerID, b.BonusType, b.Value, b.ExpiresAt,
	).Scan(&b.ID, &b.CreatedAt)
}
