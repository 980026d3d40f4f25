package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/entity"
	"github.com/milk9111/duskwatch/prefabs"
)

type HoverKind int

const (
	HoverNone HoverKind = iota
	HoverRepair
	HoverUpgrade
)

func (k HoverKind) String() string {
	switch k {
	case HoverRepair:
		return "repair"
	case HoverUpgrade:
		return "upgrade"
	default:
		return "none"
	}
}

// Hover describes the purchasable thing under the pointer.
type Hover struct {
	Entity   ecs.Entity
	Kind     HoverKind
	Code     string
	Level    int
	Cost     int
	Eligible bool
	// Maxed is set for towers already at their top level.
	Maxed bool
	Rect  common.Rect
}

// FindHover returns the buyable tile or tower containing the world point
// (x, y). Eligibility reflects the player's current funds and level caps.
func FindHover(w *ecs.World, x, y float64) (Hover, bool) {
	var money int
	alive := false
	if p, ok := findPlayer(w); ok && p.player != nil {
		money = p.player.Ledger.Money
		alive = !p.health.Dead
	}

	var out Hover
	found := false
	ecs.ForEach2(w, component.TileComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Tile, b *component.Body) {
		if found || !t.Buyable || !b.Rect.Contains(x, y) {
			return
		}
		found = true
		out = Hover{
			Entity:   e,
			Kind:     HoverRepair,
			Code:     t.TowerCode,
			Cost:     t.Price,
			Eligible: alive && money >= t.Price,
			Rect:     b.Rect,
		}
	})
	if found {
		return out, true
	}

	ecs.ForEach2(w, component.TowerComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, t *component.Tower, b *component.Body) {
		if found || !b.Rect.Contains(x, y) {
			return
		}
		found = true
		out = Hover{
			Entity:   e,
			Kind:     HoverUpgrade,
			Code:     t.Code,
			Level:    t.Level,
			Cost:     t.UpgradeCost,
			Eligible: alive && t.CanUpgrade() && money >= t.UpgradeCost,
			Maxed:    !t.CanUpgrade(),
			Rect:     b.Rect,
		}
	})
	return out, found
}

// InteractionSystem turns a click on a hover target into a tower repair or
// upgrade. Rejected purchases change nothing.
type InteractionSystem struct {
	tuning *prefabs.Tuning
	log    *zap.Logger
}

func NewInteractionSystem(tn *prefabs.Tuning, log *zap.Logger) *InteractionSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &InteractionSystem{tuning: tn, log: log}
}

func (s *InteractionSystem) SetTuning(tn *prefabs.Tuning) {
	s.tuning = tn
}

func (s *InteractionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok || p.player == nil || p.health.Dead {
		return
	}
	in, ok := ecs.Get(w, p.entity, component.InputComponent.Kind())
	if !ok || !in.Pressed.Click {
		return
	}

	h, ok := FindHover(w, in.Held.PointerX, in.Held.PointerY)
	if !ok || !h.Eligible {
		return
	}

	switch h.Kind {
	case HoverRepair:
		s.repair(w, p, h)
	case HoverUpgrade:
		s.upgrade(w, p, h)
	}
}

func (s *InteractionSystem) repair(w *ecs.World, p playerRefs, h Hover) {
	tile, ok := ecs.Get(w, h.Entity, component.TileComponent.Kind())
	if !ok {
		return
	}
	facing := tile.FacingRight
	x, bottom := h.Rect.MidBottom()

	if _, known := s.tuning.Tower(h.Code); !known {
		s.log.Warn("repair tower: unknown code", zap.String("code", h.Code))
		return
	}
	if !p.player.Ledger.Spend(h.Cost) {
		return
	}
	ecs.DestroyEntity(w, h.Entity)
	if _, err := entity.NewTower(w, s.tuning, h.Code, x, bottom, facing); err != nil {
		s.log.Error("repair tower", zap.String("code", h.Code), zap.Error(err))
		return
	}

	w.Events().Push(ecs.Event{Type: ecs.EventTowerBought, Data: TowerBought{Code: h.Code, Price: h.Cost}})
	s.log.Info("tower repaired", zap.String("code", h.Code), zap.Int("price", h.Cost))
}

func (s *InteractionSystem) upgrade(w *ecs.World, p playerRefs, h Hover) {
	t, ok := ecs.Get(w, h.Entity, component.TowerComponent.Kind())
	if !ok || !t.CanUpgrade() {
		return
	}
	if !p.player.Ledger.Spend(h.Cost) {
		return
	}
	t.Upgrade()

	w.Events().Push(ecs.Event{Type: ecs.EventTowerUpgraded, Data: TowerUpgraded{Code: t.Code, Level: t.Level, Price: h.Cost}})
	s.log.Info("tower upgraded", zap.String("code", t.Code), zap.Int("level", t.Level), zap.Int("price", h.Cost))
}
