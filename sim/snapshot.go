package sim

import (
	"sort"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/system"
	"github.com/milk9111/duskwatch/wave"
)

type Kind string

const (
	KindTile   Kind = "tile"
	KindRuin   Kind = "ruin"
	KindTower  Kind = "tower"
	KindPlayer Kind = "player"
	KindEnemy  Kind = "enemy"
	KindBullet Kind = "bullet"
)

// Drawable is one visible entity in world coordinates.
type Drawable struct {
	Kind       Kind
	Key        string
	Layer      int
	Rect       common.Rect
	FacingLeft bool
	Alpha      uint8
	// Health is the remaining fraction, or -1 for entities without health.
	Health float64
}

// HUD is the read-only state an overlay needs.
type HUD struct {
	Tick      uint64
	Money     int
	Score     int
	HighScore int

	Health     int
	MaxHealth  int
	Stamina    float64
	MaxStamina float64
	Dead       bool
	Invincible bool

	Damage        int
	WeaponLevel   int
	WeaponCost    int
	RegenLevel    int
	RegenCost     int
	QuickHealCost int

	Day         int
	Phase       wave.Phase
	Darkness    float64
	Celebrating bool
	Pending     int

	Hover    system.Hover
	HasHover bool
}

type Snapshot struct {
	Width     float64
	Height    float64
	Drawables []Drawable
	HUD       HUD
}

// Snapshot captures the world for rendering. Drawables are ordered by
// layer, then creation order.
func (s *Simulation) Snapshot() Snapshot {
	w := s.world
	out := Snapshot{
		Width:  s.layout.Width(),
		Height: s.layout.Height(),
	}

	ecs.ForEach2(w, component.SpriteComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, sp *component.Sprite, b *component.Body) {
		d := Drawable{
			Kind:       kindOf(w, e),
			Key:        sp.Key,
			Rect:       b.Rect,
			FacingLeft: !b.FacingRight,
			Alpha:      sp.Alpha,
			Health:     -1,
		}
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			d.Layer = l.Index
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok {
			d.Health = h.Ratio()
		}
		out.Drawables = append(out.Drawables, d)
	})
	sort.SliceStable(out.Drawables, func(i, j int) bool {
		return out.Drawables[i].Layer < out.Drawables[j].Layer
	})

	out.HUD = s.hud()
	return out
}

func (s *Simulation) hud() HUD {
	w := s.world
	hud := HUD{
		Tick:        w.Time().Tick,
		HighScore:   s.best,
		Day:         s.clock.Day(),
		Phase:       s.clock.Phase(),
		Darkness:    s.clock.Darkness(),
		Celebrating: s.clock.Celebrating(),
		Pending:     s.director.Pending(),
		Dead:        s.PlayerDead(),
	}
	if p, ok := ecs.Get(w, s.player, component.PlayerComponent.Kind()); ok {
		l := p.Ledger
		hud.Money = l.Money
		hud.Score = l.Score
		hud.Damage = l.Damage
		hud.WeaponLevel = l.WeaponLevel
		hud.WeaponCost = l.WeaponCost
		hud.RegenLevel = l.RegenLevel
		hud.RegenCost = l.RegenCost
		hud.QuickHealCost = l.QuickHealCost
		hud.Stamina = p.Stamina
		hud.MaxStamina = p.MaxStamina
		hud.Invincible = p.Invincible
	}
	if h, ok := ecs.Get(w, s.player, component.HealthComponent.Kind()); ok {
		hud.Health = h.Current
		hud.MaxHealth = h.Max
	}
	hud.Hover, hud.HasHover = system.FindHover(w, s.prev.PointerX, s.prev.PointerY)
	return hud
}

func kindOf(w *ecs.World, e ecs.Entity) Kind {
	switch {
	case ecs.Has(w, e, component.PlayerComponent.Kind()):
		return KindPlayer
	case ecs.Has(w, e, component.EnemyComponent.Kind()):
		return KindEnemy
	case ecs.Has(w, e, component.BulletComponent.Kind()):
		return KindBullet
	case ecs.Has(w, e, component.TowerComponent.Kind()):
		return KindTower
	}
	if t, ok := ecs.Get(w, e, component.TileComponent.Kind()); ok && t.Buyable {
		return KindRuin
	}
	return KindTile
}
