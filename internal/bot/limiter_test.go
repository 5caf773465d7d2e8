package bot

import "testing"

func TestClickLimiterBase(t *testing.T) {
	l := newClickLimiter(3, 5)

	for i := 0; i < 3; i++ {
		if !l.allow(1, 0) {
			t.Fatalf("click %d blocked below the limit", i+1)
		}
	}
	if l.allow(1, 0) {
		t.Fatal("click above the limit allowed")
	}
}

func TestClickLimiterBonusCapped(t *testing.T) {
	l := newClickLimiter(3, 5)

	// бонус 10 упирается в потолок 5
	for i := 0; i < 5; i++ {
		if !l.allow(1, 10) {
			t.Fatalf("click %d blocked below the capped limit", i+1)
		}
	}
	if l.allow(1, 10) {
		t.Fatal("click above the cap allowed")
	}
}

func TestClickLimiterPerPlayer(t *testing.T) {
	l := newClickLimiter(1, 5)

	if !l.allow(1, 0) {
		t.Fatal("first player blocked")
	}
	if !l.allow(2, 0) {
		t.Fatal("second player affected by first player's window")
	}
}

func TestSlicePage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page, hasPrev, hasNext := slicePage(items, 0)
	if len(page) != 5 || hasPrev || !hasNext {
		t.Fatalf("page 0: got len=%d prev=%v next=%v", len(page), hasPrev, hasNext)
	}

	page, hasPrev, hasNext = slicePage(items, 1)
	if len(page) != 2 || !hasPrev || hasNext {
		t.Fatalf("page 1: got len=%d prev=%v next=%v", len(page), hasPrev, hasNext)
	}

	page, _, hasNext = slicePage(items, 5)
	if page != nil || hasNext {
		t.Fatalf("page out of range: got len=%d next=%v", len(page), hasNext)
	}
}
