package system

import (
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
)

type playerRefs struct {
	entity ecs.Entity
	body   *component.Body
	health *component.Health
	player *component.Player
}

func findPlayer(w *ecs.World) (playerRefs, bool) {
	e, ok := ecs.First(w, component.PlayerComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	body, ok := ecs.Get(w, e, component.BodyComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	health, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	if !ok {
		return playerRefs{}, false
	}
	player, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	return playerRefs{entity: e, body: body, health: health, player: player}, true
}

type enemyRefs struct {
	entity ecs.Entity
	enemy  *component.Enemy
	body   *component.Body
	health *component.Health
}

// liveEnemies returns non-dead enemies in spawn order.
func liveEnemies(w *ecs.World) []enemyRefs {
	var out []enemyRefs
	ecs.ForEach3(w, component.EnemyComponent.Kind(), component.BodyComponent.Kind(), component.HealthComponent.Kind(),
		func(e ecs.Entity, en *component.Enemy, b *component.Body, h *component.Health) {
			if h.Dead {
				return
			}
			out = append(out, enemyRefs{entity: e, enemy: en, body: b, health: h})
		})
	return out
}
