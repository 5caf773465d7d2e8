package domain

import "time"

// TriggerCategory - метрика, по которой считается прогресс ачивки
type TriggerCategory string

const (
	TriggerClicks  TriggerCategory = "clicks"
	TriggerOrders  TriggerCategory = "orders"
	TriggerBalance TriggerCategory = "balance"
	TriggerLevel   TriggerCategory = "level"
	TriggerPassive TriggerCategory = "passive"
	TriggerDaily   TriggerCategory = "daily"
)

// AchievementDef - определение ачивки из каталога
type AchievementDef struct {
	Code      string          `yaml:"code" json:"code"`
	Title     string          `yaml:"title" json:"title"`
	Category  TriggerCategory `yaml:"category" json:"category"`
	Threshold int64           `yaml:"threshold" json:"threshold"`
	RewardRub int64           `yaml:"reward_rub" json:"reward_rub"`
}

// AchievementProgress - прогресс игрока по ачивке. Прогресс пересчитывается
// от текущей метрики, а не копится дельтами. UnlockedAt ставится ровно один
// раз; Notified не даёт показать разблокировку дважды.
type AchievementProgress struct {
	PlayerID   int64      `db:"player_id" json:"player_id"`
	Code       string     `db:"code" json:"code"`
	Progress   int64      `db:"progress" json:"progress"`
	UnlockedAt *time.Time `db:"unlocked_at" json:"unlocked_at,omitempty"`
	Notified   bool       `db:"notified" json:"notified"`
}

// Unlocked reports whether the achievement has been reached.
func (a *AchievementProgress) Unlocked() bool {
	return a.UnlockedAt != nil
}
