package economy

import (
	"testing"

	"github.com/89089599151/designer-clicker-bot/internal/domain"
)

func TestAggregateEmpty(t *testing.T) {
	sv := Aggregate(1, 0, 0, nil)
	if sv.CP != 1 {
		t.Fatalf("CP = %d; want 1", sv.CP)
	}
	if sv.RewardMul != 1.0 || sv.PassiveMul != 1.0 {
		t.Fatalf("multipliers = (%v, %v); want (1, 1)", sv.RewardMul, sv.PassiveMul)
	}
}

func TestAggregateClickPowerFloor(t *testing.T) {
	// CP не может уйти ниже 1, какие бы модификаторы ни сложились
	contribs := []Contribution{{CPAdd: -10}, {CPPct: -0.9}}
	if sv := Aggregate(1, 0, 0, contribs); sv.CP != 1 {
		t.Fatalf("CP = %d; want 1", sv.CP)
	}
}

func TestAggregateReductionClamp(t *testing.T) {
	// отрицательное снижение увеличивало бы требования - зажимаем в ноль
	contribs := []Contribution{{ReqClicksPct: -0.2}}
	if sv := Aggregate(1, 0, 0, contribs); sv.ReqClicksPct != 0 {
		t.Fatalf("ReqClicksPct = %v; want 0", sv.ReqClicksPct)
	}
}

func TestAggregateMultiplierFloorAsymmetry(t *testing.T) {
	contribs := []Contribution{{RewardAdd: -2.0, PassiveAdd: -2.0}}
	sv := Aggregate(1, 0, 0, contribs)
	// оба множителя зажаты в ноль на уровне агрегатора;
	// пол 1.0 для награды применяется только при расчёте выплаты
	if sv.RewardMul != 0 || sv.PassiveMul != 0 {
		t.Fatalf("multipliers = (%v, %v); want (0, 0)", sv.RewardMul, sv.PassiveMul)
	}
	if got := RewardFromRequired(100, sv.RewardMul); got != 60 {
		t.Fatalf("reward with zero multiplier = %d; want 60", got)
	}
}

func TestAggregateFold(t *testing.T) {
	boost := domain.Boost{Code: "cp_plus_1", Type: domain.BoostCP, StepValue: 1}
	rewardBoost := domain.Boost{Code: "reward_mul_10", Type: domain.BoostReward, StepValue: 0.10}

	contribs := []Contribution{
		BoostContribution(boost, 3),                          // +3 CP
		BoostContribution(rewardBoost, 2),                    // +20% награда
		BonusContribution(domain.BonusCPPct, 0.10),           // ноутбук T2
		BonusContribution(domain.BonusReqClicksPct, 0.05),    // планшет T1
		BonusContribution(domain.BonusRateLimitPlus, 2),      // стул T2
		PrestigeContribution(0.05),
	}

	sv := Aggregate(1, 0, 0, contribs)
	if sv.CP != 4 { // round((1+3)*1.10) = 4
		t.Fatalf("CP = %d; want 4", sv.CP)
	}
	if !closeTo(sv.RewardMul, 1.25) { // 1 + 0.20 + 0.05
		t.Fatalf("RewardMul = %v; want 1.25", sv.RewardMul)
	}
	if !closeTo(sv.ReqClicksPct, 0.05) {
		t.Fatalf("ReqClicksPct = %v; want 0.05", sv.ReqClicksPct)
	}
	if sv.RateLimitPlus != 2 {
		t.Fatalf("RateLimitPlus = %d; want 2", sv.RateLimitPlus)
	}
}

func closeTo(got, want float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff < 1e-9
}

func TestBoostContributionNotPurchased(t *testing.T) {
	b := domain.Boost{Code: "cp_plus_1", Type: domain.BoostCP, StepValue: 1}
	if c := BoostContribution(b, 0); c != (Contribution{}) {
		t.Fatalf("level 0 boost must contribute nothing, got %+v", c)
	}
}
