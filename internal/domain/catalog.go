package domain

// BoostType - на что влияет буст
type BoostType string

const (
	BoostCP      BoostType = "cp"
	BoostReward  BoostType = "reward"
	BoostPassive BoostType = "passive"
)

// BonusType - тип бонуса от предмета экипировки или баффа
type BonusType string

const (
	BonusCPPct         BonusType = "cp_pct"
	BonusPassivePct    BonusType = "passive_pct"
	BonusReqClicksPct  BonusType = "req_clicks_pct"
	BonusRewardPct     BonusType = "reward_pct"
	BonusRateLimitPlus BonusType = "ratelimit_plus"
)

// OrderTemplate - шаблон заказа из каталога (неизменяемый)
type OrderTemplate struct {
	Code       string `yaml:"code" json:"code"`
	Title      string `yaml:"title" json:"title"`
	BaseClicks int    `yaml:"base_clicks" json:"base_clicks"`
	MinLevel   int    `yaml:"min_level" json:"min_level"`
}

// Boost - покупаемый улучшаемый модификатор
type Boost struct {
	Code      string    `yaml:"code" json:"code"`
	Name      string    `yaml:"name" json:"name"`
	Type      BoostType `yaml:"type" json:"type"`
	BaseCost  int64     `yaml:"base_cost" json:"base_cost"`
	Growth    float64   `yaml:"growth" json:"growth"`
	StepValue float64   `yaml:"step_value" json:"step_value"`
}

// Item - предмет экипировки, занимает один слот
type Item struct {
	Code       string    `yaml:"code" json:"code"`
	Name       string    `yaml:"name" json:"name"`
	Slot       string    `yaml:"slot" json:"slot"`
	Tier       int       `yaml:"tier" json:"tier"`
	BonusType  BonusType `yaml:"bonus_type" json:"bonus_type"`
	BonusValue float64   `yaml:"bonus_value" json:"bonus_value"`
	Price      int64     `yaml:"price" json:"price"`
	MinLevel   int       `yaml:"min_level" json:"min_level"`
}

// TeamMember - нанимаемая роль с пассивным доходом
type TeamMember struct {
	Code             string  `yaml:"code" json:"code"`
	Name             string  `yaml:"name" json:"name"`
	BaseIncomePerMin float64 `yaml:"base_income_per_min" json:"base_income_per_min"`
	BaseCost         int64   `yaml:"base_cost" json:"base_cost"`
}

// PlayerBoost - уровень буста у игрока (0 = не куплен)
type PlayerBoost struct {
	PlayerID  int64  `db:"player_id" json:"player_id"`
	BoostCode string `db:"boost_code" json:"boost_code"`
	Level     int    `db:"level" json:"level"`
}

// PlayerItem - предмет в инвентаре игрока
type PlayerItem struct {
	PlayerID int64  `db:"player_id" json:"player_id"`
	ItemCode string `db:"item_code" json:"item_code"`
}

// PlayerEquipment - слот экипировки; ItemCode nil = слот пуст
type PlayerEquipment struct {
	PlayerID int64   `db:"player_id" json:"player_id"`
	Slot     string  `db:"slot" json:"slot"`
	ItemCode *string `db:"item_code" json:"item_code,omitempty"`
}

// PlayerTeam - уровень найма роли у игрока (0 = не нанят)
type PlayerTeam struct {
	PlayerID   int64  `db:"player_id" json:"player_id"`
	MemberCode string `db:"member_code" json:"member_code"`
	Level      int    `db:"level" json:"level"`
}
