package entity

import (
	"fmt"
	"time"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/economy"
	"github.com/milk9111/duskwatch/prefabs"
)

// NewPlayer spawns the player at the configured mid-bottom spawn point.
// The player starts invincible for one invincibility window.
func NewPlayer(w *ecs.World, tn *prefabs.Tuning) (ecs.Entity, error) {
	spec := tn.Player
	now := w.Time().Now
	entity := ecs.CreateEntity(w)

	if err := ecs.Add(w, entity, component.BodyComponent.Kind(), &component.Body{
		Rect:        common.RectFromMidBottom(spec.SpawnX, spec.SpawnY, spec.Width, spec.Height),
		Gravity:     spec.Gravity,
		FacingRight: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add body: %w", err)
	}

	health := component.NewHealth(spec.MaxHealth)
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &health); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	cooldown := ms(spec.ShootCooldownMS)
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{
		WalkSpeed:     spec.WalkSpeed,
		SprintSpeed:   spec.SprintSpeed,
		JumpSpeed:     spec.JumpSpeed,
		Speed:         spec.WalkSpeed,
		Stamina:       spec.MaxStamina,
		MaxStamina:    spec.MaxStamina,
		StaminaDrain:  spec.StaminaDrain,
		StaminaRegen:  spec.StaminaRegen,
		Invincible:    true,
		HitAt:         now,
		InvincibleFor: ms(spec.InvincibilityMS),
		Knockback:     spec.Knockback,
		RegenEvery:    ms(spec.RegenIntervalMS),
		LastRegen:     now,
		ShotCooldown:  cooldown,
		LastShot:      now - cooldown,
		BulletSpeed:   tn.Projectile.Speed,
		BulletOffsetY: spec.BulletOffsetY,
		Ledger:        economy.NewLedger(spec.Economy),
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}

	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Key:   "player",
		W:     spec.Width,
		H:     spec.Height,
		Alpha: 255,
	}); err != nil {
		return 0, fmt.Errorf("player: add sprite: %w", err)
	}

	if err := ecs.Add(w, entity, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: component.LayerFront}); err != nil {
		return 0, fmt.Errorf("player: add render layer: %w", err)
	}

	return entity, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
