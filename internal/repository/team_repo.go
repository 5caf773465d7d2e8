package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TeamRepository struct {
	q Querier
}

func NewTeamRepository(db *pgxpool.Pool) *TeamRepository {
	return &TeamRepository{q: db}
}

func (r *TeamRepository) WithTx(tx pgx.Tx) *TeamRepository {
	return &TeamRepository{q: tx}
}

// Levels returns hired team levels keyed by member code.
func (r *TeamRepository) Levels(ctx context.Context, playerID int64) (map[string]int, error) {
	rows, err := r.q.Query(ctx,
		`SELECT member_code, level FROM player_team WHERE player_id = $1`,
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

// Level returns the hired level of one member (0 when not hired).
func (r *TeamRepository) Level(ctx context.Context, playerID int64, code string) (int, error) {
	var level int
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(
			(SELECT level FROM player_team WHERE player_id = $1 AND member_code = $2), 0)`,
		playerID, code,
	).Scan(&level)
	return level, err
}

// SetLevel upserts the player's team member level.
func (r *TeamRepository) SetLevel(ctx context.Context, playerID int64, code string, level int) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO player_team (player_id, member_code, level)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (player_id, member_code) DO UPDATE SET level = EXCLUDED.level`,
		playerID, code, level,
	)
	return err
}
