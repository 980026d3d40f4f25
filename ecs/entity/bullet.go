package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/prefabs"
)

// NewBullet turns a spawn request into a projectile centred on the request
// point. Arcing shots start with an upward kick.
func NewBullet(w *ecs.World, tn *prefabs.Tuning, req component.BulletSpawnRequest) (ecs.Entity, error) {
	spec := tn.Projectile
	speed := req.Speed
	if speed <= 0 {
		speed = spec.Speed
	}
	dir := -1.0
	if req.FacingRight {
		dir = 1
	}
	vel := cp.Vector{X: dir * speed}
	if req.Gravity > 0 {
		vel.Y = spec.ArcVelocity
	}

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		Rect:        common.RectFromCenter(req.X, req.Y, spec.Width, spec.Height),
		Vel:         vel,
		Gravity:     req.Gravity,
		FacingRight: req.FacingRight,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.BulletComponent.Kind(), &component.Bullet{
		Speed:    speed,
		Gravity:  req.Gravity,
		Damage:   req.Damage,
		Source:   req.Source,
		Born:     w.Time().Now,
		Lifetime: ms(spec.LifetimeMS),
		MaxY:     spec.MaxY,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add bullet: %w", err)
	}

	key := "bullet"
	if req.Gravity > 0 {
		key = "arrow"
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:   key,
		W:     spec.Width,
		H:     spec.Height,
		Alpha: 255,
	}); err != nil {
		return 0, fmt.Errorf("bullet: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerFront}); err != nil {
		return 0, fmt.Errorf("bullet: add render layer: %w", err)
	}

	return entity, nil
}
