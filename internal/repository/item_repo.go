package repository

import (
	"context"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ItemRepository covers the inventory and the equipment slots: owning an
// item and having it equipped are separate relations.
type ItemRepository struct {
	q Querier
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{q: db}
}

func (r *ItemRepository) WithTx(tx pgx.Tx) *ItemRepository {
	return &ItemRepository{q: tx}
}

// Owns reports whether the player has purchased the item.
func (r *ItemRepository) Owns(ctx context.Context, playerID int64, code string) (bool, error) {
	var owns bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM player_items WHERE player_id = $1 AND item_code = $2)`,
		playerID, code,
	).Scan(&owns)
	return owns, err
}

// Inventory returns codes of all owned items.
func (r *ItemRepository) Inventory(ctx context.Context, playerID int64) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT item_code FROM player_items WHERE player_id = $1 ORDER BY item_code`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

func (r *ItemRepository) Add(ctx context.Context, playerID int64, code string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO player_items (player_id, item_code) VALUES ($1, $2)
		 ON CONFLICT DO NOTHING`,
		playerID, code,
	)
	return err
}

// SeedSlots creates empty equipment slots for a new player.
func (r *ItemRepository) SeedSlots(ctx context.Context, playerID int64, slots []string) error {
	for _, slot := range slots {
		if _, err := r.q.Exec(ctx,
			`INSERT INTO player_equipment (player_id, slot, item_code) VALUES ($1, $2, NULL)
			 ON CONFLICT DO NOTHING`,
			playerID, slot,
		); err != nil {
			return err
		}
	}
	return nil
}

// Equipped returns the slot state for a player.
func (r *ItemRepository) Equipped(ctx context.Context, playerID int64) ([]domain.PlayerEquipment, error) {
	rows, err := r.q.Query(ctx,
		`SELECT player_id, slot, item_code FROM player_equipment
		 WHERE player_id = $1 ORDER BY slot`,
		playerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []domain.PlayerEquipment
	for rows.Next() {
		var e domain.PlayerEquipment
		if err := rows.Scan(&e.PlayerID, &e.Slot, &e.ItemCode); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

// Equip points the slot at the given item.
func (r *ItemRepository) Equip(ctx context.Context, playerID int64, slot, code string) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO player_equipment (player_id, slot, item_code) VALUES ($1, $2, $3)
		 ON CONFLICT (player_id, slot) DO UPDATE SET item_code = EXCLUDED.item_code`,
		playerID, slot, code,
	)
	return err
}
