package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BoostRepository struct {
	q Querier
}

func NewBoostRepository(db *pgxpool.Pool) *BoostRepository {
	return &BoostRepository{q: db}
}

func (r *BoostRepository) WithTx(tx pgx.Tx) *BoostRepository {
	return &BoostRepository{q: tx}
}

// Levels returns owned boost levels keyed by boost code.
func (r *BoostRepository) Levels(ctx context.Context, playerID int64) (map[string]int, error) {
	rows, err := r.q.Query(ctx,
		`SELECT boost_code, level FROM player_boosts WHERE player_id = $1`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	levels := make(map[string]int)
	for rows.Next() {
		var code string
		var level int
		if err := rows.Scan(&code, &level); err != nil {
			return nil, err
		}
		levels[code] = level
	}
	return levels, rows.Err()
}

// Level returns the owned level of a single boost (0 when never purchased).
func (r *BoostRepository) Level(ctx context.Context, playerID int64, code string) (int, error) {
	var level int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(
			(SELECT level FROM player_boosts WHERE player_id = $1 AND boost_code = $2), 0)`,
		playerID, code,
	).Scan(&level)
	return level, err
}

// SetLevel upserts the player's boost level.
func (r *BoostRepository) SetLevel(ctx context.Context, playerID int64, code string, level int) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO player_boosts (player_id, boost_code, level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (player_id, boost_code) DO UPDATE SET level = EXCLUDED.level`,
		playerID, code, level,
	)
	return err
}
