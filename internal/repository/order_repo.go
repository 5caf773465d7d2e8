package repository

import (
	"context"
	"errors"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	q Querier
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{q: db}
}

func (r *OrderRepository) WithTx(tx pgx.Tx) *OrderRepository {
	return &OrderRepository{q: tx}
}

// GetActive returns the player's in-progress order, or nil when there is none.
func (r *OrderRepository) GetActive(ctx context.Context, playerID int64) (*domain.PlayerOrder, error) {
	var o domain.PlayerOrder
	err := r.q.QueryRow(ctx,
		`SELECT id, player_id, order_code, required_clicks, progress_clicks,
				reward_mul_snapshot, finished, canceled, started_at, finished_at
		 FROM player_orders
		 WHERE player_id = $1 AND NOT finished AND NOT canceled`,
		playerID,
	).Scan(&o.ID, &o.PlayerID, &o.OrderCode, &o.RequiredClicks, &o.ProgressClicks,
		&o.RewardMulSnapshot, &o.Finished, &o.Canceled, &o.StartedAt, &o.FinishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) Create(ctx context.Context, o *domain.PlayerOrder) error {
	return r.q.QueryRow(ctx,
		`INSERT INTO player_orders
			(player_id, order_code, required_clicks, progress_clicks, reward_mul_snapshot)
		 VALUES ($1, $2, $3, 0, $4)
		 RETURNING id, started_at`,
		o.PlayerID, o.OrderCode, o.RequiredClicks, o.RewardMulSnapshot,
	).Scan(&o.ID, &o.StartedAt)
}

// Update persists progress and terminal flags.
func (r *OrderRepository) Update(ctx context.Context, o *domain.PlayerOrder) error {
	_, err := r.q.Exec(ctx,
		`UPDATE player_orders
		 SET progress_clicks = $1, finished = $2, canceled = $3, finished_at = $4
		 WHERE id = $5`,
		o.ProgressClicks, o.Finished, o.Canceled, o.FinishedAt, o.ID,
	)
	return err
}

// CountFinished returns how many orders the player has completed.
func (r *OrderRepository) CountFinished(ctx context.Context, playerID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM player_orders WHERE player_id = $1 AND finished`,
		playerID,
	).Scan(&n)
	return n, err
}
