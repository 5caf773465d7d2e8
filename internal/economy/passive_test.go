package economy

import (
	"testing"
	"time"
)

func TestOfflineAccrualCap(t *testing.T) {
	// 100 часов отсутствия при потолке 12 часов: платим только за 12
	rate := 1.0 // рубль в секунду
	acc := OfflineAccrual(100*time.Hour, 12*time.Hour, rate)

	wantAmount := int64((12 * time.Hour).Seconds())
	if acc.Amount != wantAmount {
		t.Fatalf("Amount = %d; want %d", acc.Amount, wantAmount)
	}
	if acc.RawSec != int64((100 * time.Hour).Seconds()) {
		t.Fatalf("RawSec = %d; want %d", acc.RawSec, int64((100*time.Hour).Seconds()))
	}
	if acc.ClampedSec != int64((12 * time.Hour).Seconds()) {
		t.Fatalf("ClampedSec = %d; want %d", acc.ClampedSec, int64((12*time.Hour).Seconds()))
	}
}

func TestOfflineAccrualImmediateRepeat(t *testing.T) {
	// повторное касание сразу же не должно начислять ничего
	acc := OfflineAccrual(0, 12*time.Hour, 5.0)
	if acc.Amount != 0 {
		t.Fatalf("Amount = %d; want 0", acc.Amount)
	}
}

func TestOfflineAccrualNegativeElapsed(t *testing.T) {
	acc := OfflineAccrual(-time.Minute, 12*time.Hour, 5.0)
	if acc.Amount != 0 || acc.RawSec != 0 {
		t.Fatalf("negative elapsed must accrue nothing, got %+v", acc)
	}
}

func TestOfflineAccrualTruncates(t *testing.T) {
	// 10 секунд по 0.25/сек = 2.5, усечение до целых
	acc := OfflineAccrual(10*time.Second, 12*time.Hour, 0.25)
	if acc.Amount != 2 {
		t.Fatalf("Amount = %d; want 2", acc.Amount)
	}
}

func TestPassiveRatePerSec(t *testing.T) {
	// junior 4/мин с множителем 1.0
	if got := PassiveRatePerSec(60, 1.0); got != 1.0 {
		t.Fatalf("PassiveRatePerSec(60, 1) = %v; want 1", got)
	}
	if got := PassiveRatePerSec(60, 0); got != 0 {
		t.Fatalf("PassiveRatePerSec(60, 0) = %v; want 0", got)
	}
}
