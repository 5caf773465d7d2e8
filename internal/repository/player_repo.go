package repository

import (
	"context"
	"errors"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx, so every repository
// method can run standalone or inside an action transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var ErrNotFound = errors.New("not found")

const playerColumns = `id, tg_id, first_name, balance, cp_base, reward_mul, passive_mul,
		prestige_pct, level, xp, last_seen, daily_bonus_at,
		clicks_total, orders_done, passive_earned, daily_claims, created_at, updated_at`

type PlayerRepository struct {
	q Querier
}

func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{q: db}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *PlayerRepository) WithTx(tx pgx.Tx) *PlayerRepository {
	return &PlayerRepository{q: tx}
}

func (r *PlayerRepository) GetByTgID(ctx context.Context, tgID int64) (*domain.Player, error) {
	return r.scanPlayer(r.q.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE tg_id = $1`, tgID))
}

// GetByTgIDForUpdate locks the player row for the rest of the transaction.
func (r *PlayerRepository) GetByTgIDForUpdate(ctx context.Context, tgID int64) (*domain.Player, error) {
	return r.scanPlayer(r.q.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE tg_id = $1 FOR UPDATE`, tgID))
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (*domain.Player, error) {
	return r.scanPlayer(r.q.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1`, id))
}

// GetByIDForUpdate locks the player row for the rest of the transaction.
func (r *PlayerRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Player, error) {
	return r.scanPlayer(r.q.QueryRow(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = $1 FOR UPDATE`, id))
}

func (r *PlayerRepository) Create(ctx context.Context, p *domain.Player) error {
	return r.q.QueryRow(ctx,
		`INSERT INTO players (tg_id, first_name, balance, cp_base, level, xp, last_seen)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		p.TgID, p.FirstName, p.Balance, p.CPBase, p.Level, p.XP, p.LastSeen,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update persists the mutable player state in one statement.
func (r *PlayerRepository) Update(ctx context.Context, p *domain.Player) error {
	_, err := r.q.Exec(ctx,
		`UPDATE players
		 SET balance = $1, level = $2, xp = $3, last_seen = $4, daily_bonus_at = $5,
		     clicks_total = $6, orders_done = $7, passive_earned = $8, daily_claims = $9,
		     prestige_pct = $10, updated_at = now()
		 WHERE id = $11`,
		p.Balance, p.Level, p.XP, p.LastSeen, p.DailyBonusAt,
		p.ClicksTotal, p.OrdersDone, p.PassiveEarned, p.DailyClaims,
		p.PrestigePct, p.ID,
	)
	return err
}

func (r *PlayerRepository) scanPlayer(row pgx.Row) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(
		&p.ID, &p.TgID, &p.FirstName, &p.Balance, &p.CPBase, &p.RewardMul, &p.PassiveMul,
		&p.PrestigePct, &p.Level, &p.XP, &p.LastSeen, &p.DailyBonusAt,
		&p.ClicksTotal, &p.OrdersDone, &p.PassiveEarned, &p.DailyClaims,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
