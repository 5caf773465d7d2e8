package economy

import "testing"

func TestXPToLevel(t *testing.T) {
	cases := []struct {
		level int
		want  int64
	}{
		{1, 100},
		{2, 400},
		{5, 2500},
		{10, 10000},
	}
	for _, tc := range cases {
		if got := XPToLevel(tc.level); got != tc.want {
			t.Fatalf("XPToLevel(%d) = %d; want %d", tc.level, got, tc.want)
		}
	}
}

func TestUpgradeCostGrowth(t *testing.T) {
	// буст cp_plus_1: base 100, growth 1.25
	cases := []struct {
		nextLevel int
		want      int64
	}{
		{1, 100},
		{2, 125},
		{3, 156},
		{4, 195},
	}
	for _, tc := range cases {
		if got := UpgradeCost(100, 1.25, tc.nextLevel); got != tc.want {
			t.Fatalf("UpgradeCost(100, 1.25, %d) = %d; want %d", tc.nextLevel, got, tc.want)
		}
	}
}

func TestTeamUpgradeCost(t *testing.T) {
	cases := []struct {
		level int
		want  int64
	}{
		{0, 100},
		{1, 122},
		{2, 149},
		{-1, 100},
	}
	for _, tc := range cases {
		if got := TeamUpgradeCost(100, tc.level); got != tc.want {
			t.Fatalf("TeamUpgradeCost(100, %d) = %d; want %d", tc.level, got, tc.want)
		}
	}
}

func TestRequiredClicksStep(t *testing.T) {
	// каждый 5-й уровень добавляет плоские 15%
	cases := []struct {
		level int
		want  int
	}{
		{1, 100},
		{4, 100},
		{5, 115},
		{9, 115},
		{10, 130},
		{15, 145},
	}
	for _, tc := range cases {
		if got := RequiredClicks(100, tc.level); got != tc.want {
			t.Fatalf("RequiredClicks(100, %d) = %d; want %d", tc.level, got, tc.want)
		}
	}
}

func TestSnapshotRequiredClicks(t *testing.T) {
	if got := SnapshotRequiredClicks(100, 1, 0.05); got != 95 {
		t.Fatalf("SnapshotRequiredClicks(100, 1, 0.05) = %d; want 95", got)
	}
	if got := SnapshotRequiredClicks(100, 5, 0.0); got != 115 {
		t.Fatalf("SnapshotRequiredClicks(100, 5, 0) = %d; want 115", got)
	}
	// никогда не ниже одного клика
	if got := SnapshotRequiredClicks(1, 1, 0.99); got != 1 {
		t.Fatalf("SnapshotRequiredClicks(1, 1, 0.99) = %d; want 1", got)
	}
}

func TestRewardFloor(t *testing.T) {
	// множитель ниже 1.0 не опускает награду ниже базовых 60%
	if a, b := RewardFromRequired(100, 0.0), RewardFromRequired(100, 1.0); a != 60 || b != 60 {
		t.Fatalf("reward floor broken: got %d and %d; want 60 and 60", a, b)
	}
	if got := RewardFromRequired(100, 1.5); got != 90 {
		t.Fatalf("RewardFromRequired(100, 1.5) = %d; want 90", got)
	}
}

func TestOrderXP(t *testing.T) {
	if got := OrderXP(100); got != 10 {
		t.Fatalf("OrderXP(100) = %d; want 10", got)
	}
	if got := OrderXP(115); got != 12 {
		t.Fatalf("OrderXP(115) = %d; want 12", got)
	}
}

func TestTeamIncomePerMin(t *testing.T) {
	cases := []struct {
		base  float64
		level int
		want  float64
	}{
		{4, 0, 0},
		{4, 1, 4},
		{4, 2, 5},
		{10, 3, 15},
	}
	for _, tc := range cases {
		if got := TeamIncomePerMin(tc.base, tc.level); got != tc.want {
			t.Fatalf("TeamIncomePerMin(%v, %d) = %v; want %v", tc.base, tc.level, got, tc.want)
		}
	}
}

func TestApplyXPSingleLevel(t *testing.T) {
	level, xp := ApplyXP(1, 0, 10)
	if level != 1 || xp != 10 {
		t.Fatalf("ApplyXP(1, 0, 10) = (%d, %d); want (1, 10)", level, xp)
	}

	level, xp = ApplyXP(1, 90, 10)
	if level != 2 || xp != 0 {
		t.Fatalf("ApplyXP(1, 90, 10) = (%d, %d); want (2, 0)", level, xp)
	}
}

func TestApplyXPMultiLevelRollover(t *testing.T) {
	// одна крупная выдача XP должна прокатить сразу несколько уровней
	var total int64
	for l := 1; l <= 5; l++ {
		total += XPToLevel(l)
	}

	level, xp := ApplyXP(1, 0, total)
	if level != 6 || xp != 0 {
		t.Fatalf("ApplyXP(1, 0, %d) = (%d, %d); want (6, 0)", total, level, xp)
	}

	// тот же итог при выдаче порциями по порогам
	level, xp = 1, 0
	for l := 1; l <= 5; l++ {
		level, xp = ApplyXP(level, xp, XPToLevel(level))
	}
	if level != 6 || xp != 0 {
		t.Fatalf("stepwise ApplyXP = (%d, %d); want (6, 0)", level, xp)
	}
}
