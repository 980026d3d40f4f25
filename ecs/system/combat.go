package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
)

// CombatSystem resolves bullet/enemy overlaps. Each bullet is consumed by
// the first enemy it touches; a kill pays the player a random reward once.
type CombatSystem struct {
	rng *common.RNG
	log *zap.Logger
}

func NewCombatSystem(rng *common.RNG, log *zap.Logger) *CombatSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CombatSystem{rng: rng, log: log}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, hasPlayer := findPlayer(w)

	ecs.ForEach2(w, component.BulletComponent.Kind(), component.BodyComponent.Kind(), func(be ecs.Entity, bl *component.Bullet, bb *component.Body) {
		for _, e := range liveEnemies(w) {
			if !bb.Rect.Intersects(e.body.Rect) {
				continue
			}
			ecs.DestroyEntity(w, be)
			if !e.health.Damage(bl.Damage) {
				return
			}
			reward := 0
			if hasPlayer && p.player != nil {
				lo, hi := p.player.Ledger.RewardRange()
				reward = s.rng.IntRange(lo, hi)
				p.player.Ledger.Earn(reward)
			}
			ecs.DestroyEntity(w, e.entity)
			w.Events().Push(ecs.Event{Type: ecs.EventEnemyKilled, Data: EnemyKilled{Variant: e.enemy.Variant, Reward: reward}})
			s.log.Debug("enemy killed", zap.Stringer("variant", e.enemy.Variant), zap.Int("reward", reward))
			return
		}
	})
}
