package entity

import (
	"fmt"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/prefabs"
)

// EnemyParams places one enemy. Multipliers of 1 keep table stats.
type EnemyParams struct {
	Variant     component.EnemyVariant
	X           float64
	Bottom      float64
	FacingRight bool
	HealthMult  float64
	DamageMult  float64
}

// NewEnemy spawns an enemy with table stats scaled by the multipliers and
// truncated to whole numbers. Its body is the narrowed hitbox.
func NewEnemy(w *ecs.World, tn *prefabs.Tuning, p EnemyParams) (ecs.Entity, error) {
	spec, ok := tn.Enemy(p.Variant)
	if !ok {
		return 0, fmt.Errorf("enemy: %w: %s", prefabs.ErrMissingVariant, p.Variant)
	}
	if p.HealthMult <= 0 {
		p.HealthMult = 1
	}
	if p.DamageMult <= 0 {
		p.DamageMult = 1
	}
	shared := tn.Enemies
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		Rect:        hitbox(p.X, p.Bottom, spec.Width, spec.Height, shared.HitboxShrink),
		Gravity:     shared.Gravity,
		FacingRight: p.FacingRight,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add body: %w", err)
	}

	health := component.NewHealth(int(float64(spec.MaxHealth) * p.HealthMult))
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &health); err != nil {
		return 0, fmt.Errorf("enemy: add health: %w", err)
	}

	if err := ecs.Add(w, entity, component.EnemyComponent.Kind(), &component.Enemy{
		Variant:        p.Variant,
		Mode:           component.EnemyPatrol,
		WalkSpeed:      spec.WalkSpeed,
		ChaseSpeed:     spec.ChaseSpeed,
		Speed:          spec.WalkSpeed,
		JumpSpeed:      shared.JumpSpeed,
		Damage:         int(float64(spec.Damage) * p.DamageMult),
		Jumper:         spec.Jumper,
		SightRange:     shared.SightRange,
		ClimbThreshold: shared.ClimbThreshold,
		LedgeLookAhead: shared.LedgeLookAhead,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add enemy: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:   p.Variant.String(),
		W:     spec.Width,
		H:     spec.Height,
		Alpha: 255,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerActors}); err != nil {
		return 0, fmt.Errorf("enemy: add render layer: %w", err)
	}

	return entity, nil
}

func hitbox(x, bottom, w, h, shrink float64) common.Rect {
	return common.RectFromMidBottom(x, bottom, w, h).Inflate(-shrink, 0)
}
