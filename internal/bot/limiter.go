package bot

import (
	"sync"
	"time"
)

type clickWindow struct {
	start time.Time
	count int
}

// clickLimiter - скользящее окно в секунду на игрока. Лимит растёт от
// экипировки, но не выше потолка.
type clickLimiter struct {
	mu      sync.Mutex
	base    int
	max     int
	windows map[int64]*clickWindow
}

func newClickLimiter(base, max int) *clickLimiter {
	return &clickLimiter{
		base:    base,
		max:     max,
		windows: make(map[int64]*clickWindow),
	}
}

func (l *clickLimiter) allow(tgID int64, bonus int) bool {
	limit := l.base + bonus
	if limit > l.max {
		limit = l.max
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.windows[tgID]
	if !ok || now.Sub(w.start) >= time.Second {
		l.windows[tgID] = &clickWindow{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= limit
}
