package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/89089599151/designer-clicker-bot/internal/domain"
)

func TestDefaultCatalog(t *testing.T) {
	r := Default()

	if got := len(r.OrdersForLevel(1)); got != 2 {
		t.Fatalf("orders for level 1 = %d; want 2", got)
	}
	if got := len(r.OrdersForLevel(5)); got != 6 {
		t.Fatalf("orders for level 5 = %d; want 6", got)
	}

	b, ok := r.Boost("cp_plus_1")
	if !ok || b.Type != domain.BoostCP {
		t.Fatalf("boost cp_plus_1 missing or wrong type: %+v", b)
	}

	it, ok := r.Item("chair_t2")
	if !ok || it.BonusType != domain.BonusRateLimitPlus {
		t.Fatalf("item chair_t2 missing or wrong bonus: %+v", it)
	}

	if got := len(r.TeamMembers()); got != 4 {
		t.Fatalf("team members = %d; want 4", got)
	}
}

func TestAchievementsByCategory(t *testing.T) {
	r := Default()

	defs := r.AchievementsByCategory(map[domain.TriggerCategory]bool{
		domain.TriggerClicks: true,
	})
	if len(defs) != 3 {
		t.Fatalf("clicks achievements = %d; want 3", len(defs))
	}
	for i := 1; i < len(defs); i++ {
		if defs[i-1].Threshold > defs[i].Threshold {
			t.Fatalf("achievements not sorted by threshold: %+v", defs)
		}
	}
}

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
orders:
  - code: tiny
    title: Tiny order
    base_clicks: 10
    min_level: 1
boosts:
  - code: cp_x
    name: CP
    type: cp
    base_cost: 100
    growth: 1.5
    step_value: 1
items: []
team:
  - code: helper
    name: Helper
    base_income_per_min: 2
    base_cost: 50
achievements:
  - code: a1
    title: First
    category: clicks
    threshold: 10
    reward_rub: 5
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}

	r, err := Load(path)
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	if _, ok := r.Order("tiny"); !ok {
		t.Fatalf("order tiny not loaded")
	}
	if _, ok := r.Team("helper"); !ok {
		t.Fatalf("team helper not loaded")
	}
}

func TestLoadRejectsDuplicates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := `
orders:
  - {code: dup, title: A, base_clicks: 10, min_level: 1}
  - {code: dup, title: B, base_clicks: 20, min_level: 1}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write temp catalog: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected duplicate code error")
	}
}
