package domain

import "time"

// Категории записей журнала экономики.
const (
	LogOrderFinish = "order_finish"
	LogBuyBoost    = "buy_boost"
	LogBuyItem     = "buy_item"
	LogTeamUpgrade = "team_upgrade"
	LogPassive     = "passive"
	LogDailyBonus  = "daily_bonus"
	LogAchievement = "achievement"
)

// EconomyLog - запись о событии, меняющем баланс. Только добавляется,
// никогда не правится и не удаляется.
type EconomyLog struct {
	ID        int64                  `db:"id" json:"id"`
	PlayerID  int64                  `db:"player_id" json:"player_id"`
	Type      string                 `db:"type" json:"type"`
	Amount    int64                  `db:"amount" json:"amount"`
	Meta      map[string]interface{} `db:"meta" json:"meta,omitempty"`
	CreatedAt time.Time              `db:"created_at" json:"created_at"`
}

// LogStat - агрегат по категории журнала
type LogStat struct {
	Type    string `db:"type" json:"type"`
	Entries int64  `db:"entries" json:"entries"`
	Total   int64  `db:"total" json:"total"`
	Average int64  `db:"average" json:"average"`
}
