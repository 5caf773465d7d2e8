package domain

import "time"

// Player - игровой профиль, один на пользователя Telegram.
type Player struct {
	ID         int64     `db:"id" json:"id"`
	TgID       int64     `db:"tg_id" json:"tg_id"`
	FirstName  string    `db:"first_name" json:"first_name"`
	Balance    int64     `db:"balance" json:"balance"`
	CPBase     int       `db:"cp_base" json:"cp_base"`
	RewardMul  float64   `db:"reward_mul" json:"reward_mul"`
	PassiveMul float64   `db:"passive_mul" json:"passive_mul"`
	// PrestigePct is a permanent percentage bonus kept across resets.
	PrestigePct  float64    `db:"prestige_pct" json:"prestige_pct"`
	Level        int        `db:"level" json:"level"`
	XP           int64      `db:"xp" json:"xp"`
	LastSeen     time.Time  `db:"last_seen" json:"last_seen"`
	DailyBonusAt *time.Time `db:"daily_bonus_at" json:"daily_bonus_at,omitempty"`

	// Пожизненные счётчики для ачивок и статистики.
	ClicksTotal   int64 `db:"clicks_total" json:"clicks_total"`
	OrdersDone    int64 `db:"orders_done" json:"orders_done"`
	PassiveEarned int64 `db:"passive_earned" json:"passive_earned"`
	DailyClaims   int64 `db:"daily_claims" json:"daily_claims"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
