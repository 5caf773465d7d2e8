package domain

import "time"

// PlayerOrder - взятый игроком заказ. Требуемые клики и множитель награды
// замораживаются в момент взятия и дальше не пересчитываются.
type PlayerOrder struct {
	ID                int64      `db:"id" json:"id"`
	PlayerID          int64      `db:"player_id" json:"player_id"`
	OrderCode         string     `db:"order_code" json:"order_code"`
	RequiredClicks    int        `db:"required_clicks" json:"required_clicks"`
	ProgressClicks    int        `db:"progress_clicks" json:"progress_clicks"`
	RewardMulSnapshot float64    `db:"reward_mul_snapshot" json:"reward_mul_snapshot"`
	Finished          bool       `db:"finished" json:"finished"`
	Canceled          bool       `db:"canceled" json:"canceled"`
	StartedAt         time.Time  `db:"started_at" json:"started_at"`
	FinishedAt        *time.Time `db:"finished_at" json:"finished_at,omitempty"`
}

// Active reports whether the order is still being worked on.
func (o *PlayerOrder) Active() bool {
	return !o.Finished && !o.Canceled
}

// Percent returns completion percentage (0-100).
func (o *PlayerOrder) Percent() int {
	if o.RequiredClicks <= 0 {
		return 100
	}
	return 100 * o.ProgressClicks / o.RequiredClicks
}
