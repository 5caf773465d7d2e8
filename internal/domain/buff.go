package domain

import "time"

// Buff - временный бонус. Истёкшие баффы вычищаются при чтении статов.
type Buff struct {
	ID        int64     `db:"id" json:"id"`
	PlayerID  int64     `db:"player_id" json:"player_id"`
	BonusType BonusType `db:"bonus_type" json:"bonus_type"`
	Value     float64   `db:"value" json:"value"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired reports whether the buff is past its expiry at the given moment.
func (b *Buff) Expired(now time.Time) bool {
	return !now.Before(b.ExpiresAt)
}
