package entity

import (
	"fmt"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/prefabs"
)

// NewTower builds a level-one tower standing on (x, bottom). It may fire
// immediately.
func NewTower(w *ecs.World, tn *prefabs.Tuning, code string, x, bottom float64, facingRight bool) (ecs.Entity, error) {
	spec, ok := tn.Tower(code)
	if !ok {
		return 0, fmt.Errorf("tower: unknown code %q", code)
	}
	ts := tn.Towers
	scale := ts.Scale
	cooldown := ms(spec.CooldownMS)

	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		Rect:        towerRect(tn, spec, x, bottom),
		FacingRight: facingRight,
	}); err != nil {
		return 0, fmt.Errorf("tower: add body: %w", err)
	}

	if err := ecs.Add(w, entity, component.TowerComponent.Kind(), &component.Tower{
		Code:           spec.Code,
		Name:           spec.Name,
		Damage:         spec.Damage,
		Cooldown:       cooldown,
		Range:          spec.Range,
		BulletSpeed:    spec.BulletSpeed,
		BulletGravity:  spec.BulletGravity,
		LastShot:       w.Time().Now - cooldown,
		MuzzleX:        spec.MuzzleX * scale,
		MuzzleY:        spec.MuzzleY * scale,
		Level:          1,
		MaxLevel:       ts.MaxLevel,
		UpgradeCost:    ts.UpgradeCost,
		DamageFactor:   ts.DamageFactor,
		CooldownFactor: ts.CooldownFactor,
		CooldownFloor:  ms(ts.CooldownFloorMS),
		CostFactor:     ts.CostFactor,
	}); err != nil {
		return 0, fmt.Errorf("tower: add tower: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:   "tower_" + spec.Name,
		W:     spec.Width * scale,
		H:     spec.Height * scale,
		Alpha: 255,
	}); err != nil {
		return 0, fmt.Errorf("tower: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerActors}); err != nil {
		return 0, fmt.Errorf("tower: add render layer: %w", err)
	}

	return entity, nil
}

func towerRect(tn *prefabs.Tuning, spec prefabs.TowerSpec, x, bottom float64) common.Rect {
	scale := tn.Towers.Scale
	return common.RectFromMidBottom(x, bottom, spec.Width*scale, spec.Height*scale)
}
