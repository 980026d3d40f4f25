package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
)

// TowerSystem fires each ready tower at the first enemy, in spawn order,
// that is in range on the side the tower faces.
type TowerSystem struct {
	log *zap.Logger
}

func NewTowerSystem(log *zap.Logger) *TowerSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &TowerSystem{log: log}
}

func (s *TowerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Time().Now
	enemies := liveEnemies(w)
	if len(enemies) == 0 {
		return
	}

	ecs.ForEach2(w, component.TowerComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, t *component.Tower, b *component.Body) {
		if !t.Ready(now) {
			return
		}
		for _, e := range enemies {
			if e.health.Dead {
				continue
			}
			dx := e.body.Rect.CenterX() - b.Rect.CenterX()
			if math.Abs(dx) > t.Range {
				continue
			}
			if (b.FacingRight && dx <= 0) || (!b.FacingRight && dx >= 0) {
				continue
			}
			x, y := t.Muzzle(b.Rect, b.FacingRight)
			req := component.BulletSpawnRequest{
				X:           x,
				Y:           y,
				FacingRight: b.FacingRight,
				Damage:      t.Damage,
				Speed:       t.BulletSpeed,
				Gravity:     t.BulletGravity,
				Source:      component.FromTower,
			}
			re := ecs.CreateEntity(w)
			if err := ecs.Add(w, re, component.BulletSpawnRequestComponent.Kind(), &req); err != nil {
				s.log.Error("tower bullet request", zap.Error(err))
				return
			}
			t.LastShot = now
			w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Data: ShotFired{Source: component.FromTower, X: x, Y: y}})
			return
		}
	})
}
