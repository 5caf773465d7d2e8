package economy

import (
	"math"

	"github.com/89089599151/designer-clicker-bot/internal/domain"
)

// StatVector - итоговые производные статы игрока.
type StatVector struct {
	CP            int     `json:"cp"`
	RewardMul     float64 `json:"reward_mul"`
	PassiveMul    float64 `json:"passive_mul"`
	ReqClicksPct  float64 `json:"req_clicks_pct"`
	RateLimitPlus int     `json:"ratelimit_plus"`
}

// Contribution - частичная дельта статов от одного источника модификаторов
// (буст, предмет, бафф, престиж). Складывается пополево.
type Contribution struct {
	CPAdd         int
	CPPct         float64
	RewardAdd     float64
	RewardPct     float64
	PassiveAdd    float64
	PassivePct    float64
	ReqClicksPct  float64
	RateLimitPlus float64
}

// BoostContribution converts an owned boost level into a stat delta.
func BoostContribution(b domain.Boost, level int) Contribution {
	if level <= 0 {
		return Contribution{}
	}
	switch b.Type {
	case domain.BoostCP:
		return Contribution{CPAdd: int(float64(level) * b.StepValue)}
	case domain.BoostReward:
		return Contribution{RewardAdd: float64(level) * b.StepValue}
	case domain.BoostPassive:
		return Contribution{PassiveAdd: float64(level) * b.StepValue}
	}
	return Contribution{}
}

// BonusContribution converts a typed bonus (equipped item or active buff)
// into a stat delta.
func BonusContribution(kind domain.BonusType, value float64) Contribution {
	switch kind {
	case domain.BonusCPPct:
		return Contribution{CPPct: value}
	case domain.BonusPassivePct:
		return Contribution{PassivePct: value}
	case domain.BonusReqClicksPct:
		return Contribution{ReqClicksPct: value}
	case domain.BonusRewardPct:
		return Contribution{RewardPct: value}
	case domain.BonusRateLimitPlus:
		return Contribution{RateLimitPlus: value}
	}
	return Contribution{}
}

// PrestigeContribution applies the permanent prestige percentage to both
// multipliers.
func PrestigeContribution(pct float64) Contribution {
	if pct <= 0 {
		return Contribution{}
	}
	return Contribution{RewardPct: pct, PassivePct: pct}
}

// Aggregate folds contributions into the final stat vector.
// Invariants: CP >= 1 whatever the modifiers, the requirement reduction is
// never negative, multipliers are never negative.
func Aggregate(cpBase int, rewardOffset, passiveOffset float64, contribs []Contribution) StatVector {
	var sum Contribution
	for _, c := range contribs {
		sum.CPAdd += c.CPAdd
		sum.CPPct += c.CPPct
		sum.RewardAdd += c.RewardAdd
		sum.RewardPct += c.RewardPct
		sum.PassiveAdd += c.PassiveAdd
		sum.PassivePct += c.PassivePct
		sum.ReqClicksPct += c.ReqClicksPct
		sum.RateLimitPlus += c.RateLimitPlus
	}

	cp := int(math.Round(float64(cpBase+sum.CPAdd) * (1 + sum.CPPct)))
	if cp < 1 {
		cp = 1
	}

	return StatVector{
		CP:            cp,
		RewardMul:     math.Max(0, 1.0+rewardOffset+sum.RewardAdd+sum.RewardPct),
		PassiveMul:    math.Max(0, 1.0+passiveOffset+sum.PassiveAdd+sum.PassivePct),
		ReqClicksPct:  math.Max(0, sum.ReqClicksPct),
		RateLimitPlus: int(sum.RateLimitPlus),
	}
}
