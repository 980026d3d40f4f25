package system

import (
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/physics"
)

// BulletSystem moves projectiles and removes those that hit a solid tile,
// outlive their lifetime or fall below the world.
type BulletSystem struct {
	tiles *physics.TileIndex
}

func NewBulletSystem(tiles *physics.TileIndex) *BulletSystem {
	return &BulletSystem{tiles: tiles}
}

func (s *BulletSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := w.Time().Now

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, bl *component.Bullet, b *component.Body) {
		b.Rect.X += b.Vel.X
		if bl.Gravity > 0 {
			b.Vel.Y += bl.Gravity
			b.Rect.Y += b.Vel.Y
		}

		if s.hitsSolid(b) || now-bl.Born > bl.Lifetime || b.Rect.Y > bl.MaxY {
			ecs.DestroyEntity(w, e)
		}
	})
}

func (s *BulletSystem) hitsSolid(b *component.Body) bool {
	for _, t := range s.tiles.Nearby(b.Rect) {
		if b.Rect.Intersects(t) {
			return true
		}
	}
	return false
}
