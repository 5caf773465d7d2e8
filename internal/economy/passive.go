package economy

import "time"

// Accrual - результат расчёта пассивного дохода за время отсутствия.
type Accrual struct {
	Amount     int64
	RawSec     int64
	ClampedSec int64
}

// OfflineAccrual computes passive income for the elapsed wall-clock time.
// Elapsed time is clamped to cap so dormant accounts do not accrue without
// bound; both raw and clamped seconds are reported for the audit log.
// The amount is truncated to whole currency units.
func OfflineAccrual(elapsed, cap time.Duration, ratePerSec float64) Accrual {
	if elapsed < 0 {
		elapsed = 0
	}
	clamped := elapsed
	if cap > 0 && clamped > cap {
		clamped = cap
	}
	return Accrual{
		Amount:     int64(ratePerSec * clamped.Seconds()),
		RawSec:     int64(elapsed.Seconds()),
		ClampedSec: int64(clamped.Seconds()),
	}
}

// PassiveRatePerSec converts summed team income per minute into a per-second
// rate with the passive multiplier applied.
func PassiveRatePerSec(incomePerMin, passiveMul float64) float64 {
	return incomePerMin / 60.0 * passiveMul
}
