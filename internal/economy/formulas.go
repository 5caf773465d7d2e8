// Package economy contains the pure progression math: level thresholds, cost
// curves, order requirements and rewards, passive income. No I/O, no state.
package economy

import "math"

// Рост цены повышения члена команды за уровень.
const teamCostGrowth = 1.22

// XPToLevel returns XP required to reach the next level from the given one.
func XPToLevel(level int) int64 {
	return int64(100 * level * level)
}

// UpgradeCost returns the price of buying nextLevel of a boost.
// nextLevel is 1-indexed: the first purchase costs exactly baseCost.
// Rounding is math.Round (half away from zero) everywhere in this package.
func UpgradeCost(baseCost int64, growth float64, nextLevel int) int64 {
	return int64(math.Round(float64(baseCost) * math.Pow(growth, float64(nextLevel-1))))
}

// TeamUpgradeCost returns the price of hiring or promoting a team member.
// currentLevel 0 means the member is not hired yet and the base cost applies.
func TeamUpgradeCost(baseCost int64, currentLevel int) int64 {
	if currentLevel < 0 {
		currentLevel = 0
	}
	return int64(math.Round(float64(baseCost) * math.Pow(teamCostGrowth, float64(currentLevel))))
}

// RequiredClicks scales an order's base clicks by player level:
// every 5 levels add a flat 15% step.
func RequiredClicks(baseClicks, level int) int {
	return int(math.Round(float64(baseClicks) * (1 + 0.15*math.Floor(float64(level)/5))))
}

// SnapshotRequiredClicks computes the frozen click target for a new order,
// applying the player's requirement-reduction percentage. Never below 1.
func SnapshotRequiredClicks(baseClicks, level int, reductionPct float64) int {
	base := RequiredClicks(baseClicks, level)
	reduced := int(math.Round(float64(base) * (1 - reductionPct)))
	if reduced < 1 {
		return 1
	}
	return reduced
}

// RewardFromRequired returns the payout for a finished order. A reward
// multiplier below 1.0 is clamped to 1.0: reward never drops below the
// 60%-of-requirement baseline. The passive multiplier has no such floor.
func RewardFromRequired(requiredClicks int, rewardMul float64) int64 {
	return int64(math.Round(float64(requiredClicks) * 0.6 * math.Max(1.0, rewardMul)))
}

// OrderXP returns experience granted for finishing an order.
func OrderXP(requiredClicks int) int64 {
	return int64(math.Round(float64(requiredClicks) * 0.1))
}

// TeamIncomePerMin returns per-minute income of a hired team member.
func TeamIncomePerMin(basePerMin float64, level int) float64 {
	if level <= 0 {
		return 0
	}
	return basePerMin * (1 + 0.25*float64(level-1))
}

// ApplyXP adds gained XP and rolls levels over while thresholds are crossed.
// The loop matters: one large grant can cross several levels at once.
func ApplyXP(level int, xp, gain int64) (int, int64) {
	xp += gain
	for xp >= XPToLevel(level) {
		xp -= XPToLevel(level)
		level++
	}
	return level, xp
}
