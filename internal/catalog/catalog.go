// Package catalog holds the static game data: order templates, boosts,
// equipment, team roles and achievement definitions. The registry is built
// once at startup and is read-only afterwards, so it is safe to share
// between all player actions without locking.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"github.com/89089599151/designer-clicker-bot/internal/domain"

	"gopkg.in/yaml.v3"
)

// EquipmentSlots - фиксированный набор слотов экипировки.
var EquipmentSlots = []string{"laptop", "phone", "tablet", "monitor", "chair"}

type Registry struct {
	orders       []domain.OrderTemplate
	boosts       []domain.Boost
	items        []domain.Item
	team         []domain.TeamMember
	achievements []domain.AchievementDef

	orderByCode map[string]domain.OrderTemplate
	boostByCode map[string]domain.Boost
	itemByCode  map[string]domain.Item
	teamByCode  map[string]domain.TeamMember
	achByCode   map[string]domain.AchievementDef
}

type catalogFile struct {
	Orders       []domain.OrderTemplate  `yaml:"orders"`
	Boosts       []domain.Boost          `yaml:"boosts"`
	Items        []domain.Item           `yaml:"items"`
	Team         []domain.TeamMember     `yaml:"team"`
	Achievements []domain.AchievementDef `yaml:"achievements"`
}

// Load reads the catalog from a YAML file. An empty path returns the
// built-in defaults.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	return build(f)
}

func build(f catalogFile) (*Registry, error) {
	r := &Registry{
		orders:       f.Orders,
		boosts:       f.Boosts,
		items:        f.Items,
		team:         f.Team,
		achievements: f.Achievements,
		orderByCode:  make(map[string]domain.OrderTemplate, len(f.Orders)),
		boostByCode:  make(map[string]domain.Boost, len(f.Boosts)),
		itemByCode:   make(map[string]domain.Item, len(f.Items)),
		teamByCode:   make(map[string]domain.TeamMember, len(f.Team)),
		achByCode:    make(map[string]domain.AchievementDef, len(f.Achievements)),
	}

	slots := make(map[string]bool, len(EquipmentSlots))
	for _, s := range EquipmentSlots {
		slots[s] = true
	}

	for _, o := range f.Orders {
		if o.Code == "" || o.BaseClicks <= 0 {
			return nil, fmt.Errorf("invalid order template %q", o.Code)
		}
		if _, dup := r.orderByCode[o.Code]; dup {
			return nil, fmt.Errorf("duplicate order code %q", o.Code)
		}
		r.orderByCode[o.Code] = o
	}
	for _, b := range f.Boosts {
		if b.Code == "" || b.BaseCost <= 0 || b.Growth <= 1.0 {
			return nil, fmt.Errorf("invalid boost %q", b.Code)
		}
		if _, dup := r.boostByCode[b.Code]; dup {
			return nil, fmt.Errorf("duplicate boost code %q", b.Code)
		}
		r.boostByCode[b.Code] = b
	}
	for _, it := range f.Items {
		if it.Code == "" || it.Price <= 0 || !slots[it.Slot] {
			return nil, fmt.Errorf("invalid item %q", it.Code)
		}
		if _, dup := r.itemByCode[it.Code]; dup {
			return nil, fmt.Errorf("duplicate item code %q", it.Code)
		}
		r.itemByCode[it.Code] = it
	}
	for _, m := range f.Team {
		if m.Code == "" || m.BaseCost <= 0 || m.BaseIncomePerMin <= 0 {
			return nil, fmt.Errorf("invalid team member %q", m.Code)
		}
		if _, dup := r.teamByCode[m.Code]; dup {
			return nil, fmt.Errorf("duplicate team code %q", m.Code)
		}
		r.teamByCode[m.Code] = m
	}
	for _, a := range f.Achievements {
		if a.Code == "" || a.Threshold <= 0 {
			return nil, fmt.Errorf("invalid achievement %q", a.Code)
		}
		if _, dup := r.achByCode[a.Code]; dup {
			return nil, fmt.Errorf("duplicate achievement code %q", a.Code)
		}
		r.achByCode[a.Code] = a
	}

	return r, nil
}

// Order returns an order template by code.
func (r *Registry) Order(code string) (domain.OrderTemplate, bool) {
	o, ok := r.orderByCode[code]
	return o, ok
}

// OrdersForLevel returns templates available at the given player level.
func (r *Registry) OrdersForLevel(level int) []domain.OrderTemplate {
	var res []domain.OrderTemplate
	for _, o := range r.orders {
		if o.MinLevel <= level {
			res = append(res, o)
		}
	}
	return res
}

// Boost returns a boost definition by code.
func (r *Registry) Boost(code string) (domain.Boost, bool) {
	b, ok := r.boostByCode[code]
	return b, ok
}

// Boosts returns all boost definitions in catalog order.
func (r *Registry) Boosts() []domain.Boost {
	return r.boosts
}

// Item returns an item definition by code.
func (r *Registry) Item(code string) (domain.Item, bool) {
	it, ok := r.itemByCode[code]
	return it, ok
}

// ItemsForLevel returns shop items available at the given player level.
func (r *Registry) ItemsForLevel(level int) []domain.Item {
	var res []domain.Item
	for _, it := range r.items {
		if it.MinLevel <= level {
			res = append(res, it)
		}
	}
	return res
}

// Team returns a team member definition by code.
func (r *Registry) Team(code string) (domain.TeamMember, bool) {
	m, ok := r.teamByCode[code]
	return m, ok
}

// TeamMembers returns all hireable roles in catalog order.
func (r *Registry) TeamMembers() []domain.TeamMember {
	return r.team
}

// Achievement returns an achievement definition by code.
func (r *Registry) Achievement(code string) (domain.AchievementDef, bool) {
	a, ok := r.achByCode[code]
	return a, ok
}

// Achievements returns all achievement definitions in catalog order.
func (r *Registry) Achievements() []domain.AchievementDef {
	return r.achievements
}

// AchievementsByCategory returns definitions whose trigger category is in
// the given set, ordered by threshold.
func (r *Registry) AchievementsByCategory(categories map[domain.TriggerCategory]bool) []domain.AchievementDef {
	var res []domain.AchievementDef
	for _, a := range r.achievements {
		if categories[a.Category] {
			res = append(res, a)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Threshold < res[j].Threshold })
	return res
}
