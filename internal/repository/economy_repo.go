package repository

import (
	"context"
	"encoding/json"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// EconomyLogRepository - журнал экономики, только вставка и чтение.
type EconomyLogRepository struct {
	q Querier
}

func NewEconomyLogRepository(db *pgxpool.Pool) *EconomyLogRepository {
	return &EconomyLogRepository{q: db}
}

func (r *EconomyLogRepository) WithTx(tx pgx.Tx) *EconomyLogRepository {
	return &EconomyLogRepository{q: tx}
}

func (r *EconomyLogRepository) Create(ctx context.Context, e *domain.EconomyLog) error {
	metaJSON, err := json.Marshal(e.Meta)
	if err != nil {
		metaJSON = []byte("{}")
	}

	return r.q.QueryRow(ctx,
		`INSERT INTO economy_log (player_id, type, amount, meta)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		e.PlayerID, e.Type, e.Amount, metaJSON,
	).Scan(&e.ID, &e.CreatedAt)
}

// Recent returns the latest entries for a player.
func (r *EconomyLogRepository) Recent(ctx context.Context, playerID int64, limit int) ([]*domain.EconomyLog, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.q.Query(ctx,
		`SELECT id, player_id, type, amount, meta, created_at
		 FROM economy_log
		 WHERE player_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		playerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*domain.EconomyLog
	for rows.Next() {
		var (
			e        domain.EconomyLog
			metaJSON []byte
		)
		if err := rows.Scan(&e.ID, &e.PlayerID, &e.Type, &e.Amount, &metaJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		if len(metaJSON) > 0 {
			_ = json.Unmarshal(metaJSON, &e.Meta)
		}
		res = append(res, &e)
	}
	return res, rows.Err()
}

// Stats агрегирует журнал по категориям: количество записей, сумма и средний размер.
func (r *EconomyLogRepository) Stats(ctx context.Context, playerID int64) ([]domain.LogStat, error) {
	rows, err := r.q.Query(ctx,
		`SELECT type, COUNT(*), COALESCE(SUM(amount), 0),
				COALESCE(ROUND(AVG(amount)), 0)
		 FROM economy_log
		 WHERE player_id = $1
		 GROUP BY type
		 ORDER BY type`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.LogStat
	for rows.Next() {
		var s domain.LogStat
		if err := rows.Scan(&s.Type, &s.Entries, &s.Total, &s.Average); err != nil {
			return nil, err
		}
		res = append(res, s)
	}
	return res, rows.Err()
}
