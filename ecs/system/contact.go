package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
)

// ContactSystem applies enemy touch damage to the player. Invincibility
// after a hit absorbs every further contact until it expires.
type ContactSystem struct {
	log *zap.Logger
}

func NewContactSystem(log *zap.Logger) *ContactSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &ContactSystem{log: log}
}

func (s *ContactSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok || p.player == nil {
		return
	}
	for _, e := range liveEnemies(w) {
		if !p.body.Rect.Intersects(e.body.Rect) {
			continue
		}
		s.hit(w, p, e.enemy.Damage)
	}
}

func (s *ContactSystem) hit(w *ecs.World, p playerRefs, damage int) {
	pl, h := p.player, p.health
	if pl.Invincible || h.Dead {
		return
	}
	killed := h.Damage(damage)
	pl.Invincible = true
	pl.HitAt = w.Time().Now
	p.body.Vel.Y = pl.Knockback
	w.Events().Push(ecs.Event{Type: ecs.EventPlayerHit, Data: PlayerHit{Damage: damage, Remaining: h.Current}})

	if killed {
		pl.MoveX = 0
		pl.Status = component.PlayerDead
		w.Events().Push(ecs.Event{Type: ecs.EventPlayerDied})
		s.log.Info("player died")
	}
}
