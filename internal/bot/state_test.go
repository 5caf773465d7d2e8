package bot

import (
	"sync"
	"testing"
)

func TestStateStoreOpenResetsPage(t *testing.T) {
	s := newStateStore()
	s.turn(7, 3)
	s.open(7, screenBoosts)

	st := s.get(7)
	if st.Screen != screenBoosts {
		t.Fatalf("expected screenBoosts, got %d", st.Screen)
	}
	if st.Page != 0 {
		t.Fatalf("expected page 0 after open, got %d", st.Page)
	}
}

func TestStateStoreTurnClampsAtZero(t *testing.T) {
	s := newStateStore()
	if st := s.turn(7, -1); st.Page != 0 {
		t.Fatalf("expected page clamped to 0, got %d", st.Page)
	}
	if st := s.turn(7, 2); st.Page != 2 {
		t.Fatalf("expected page 2, got %d", st.Page)
	}
}

// Updates of one chat may be handled on parallel goroutines; the store must
// take every mutation under its lock and never hand out shared mutable state.
func TestStateStoreConcurrentSameChat(t *testing.T) {
	s := newStateStore()
	s.open(42, screenOrders)

	const n = 100
	var wg sync.WaitGroup
	wg.Add(3 * n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.turn(42, 1)
		}()
		go func() {
			defer wg.Done()
			s.setCodes(42, []string{"a", "b"})
		}()
		go func() {
			defer wg.Done()
			_ = s.get(42)
		}()
	}
	wg.Wait()

	st := s.get(42)
	if st.Page != n {
		t.Fatalf("expected page %d after %d turns, got %d", n, n, st.Page)
	}
	if len(st.Codes) != 2 {
		t.Fatalf("expected 2 codes, got %d", len(st.Codes))
	}
}
