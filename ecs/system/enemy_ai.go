package system

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/physics"
)

// EnemyAISystem runs each enemy's patrol/chase decision and then moves it
// through the level: horizontal pass with wall and ledge handling, then the
// gravity pass. An enemy whose top passes fallLimit has left the level and
// is removed without a reward.
type EnemyAISystem struct {
	tiles     *physics.TileIndex
	fallLimit float64
	log       *zap.Logger
}

func NewEnemyAISystem(tiles *physics.TileIndex, fallLimit float64, log *zap.Logger) *EnemyAISystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &EnemyAISystem{tiles: tiles, fallLimit: fallLimit, log: log}
}

func (s *EnemyAISystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, hasPlayer := findPlayer(w)

	for _, e := range liveEnemies(w) {
		if hasPlayer {
			s.decide(e, p.body)
		} else {
			e.enemy.Mode = component.EnemyPatrol
			e.enemy.Speed = e.enemy.WalkSpeed
		}
		s.moveHorizontal(e)
		e.body.OnGround = physics.MoveY(&e.body.Rect, &e.body.Vel.Y, e.body.Gravity, s.tiles.Nearby(e.body.Rect))
		if e.body.Rect.Top() > s.fallLimit {
			ecs.DestroyEntity(w, e.entity)
			s.log.Debug("enemy fell out", zap.Stringer("entity", e.entity), zap.Stringer("variant", e.enemy.Variant))
		}
	}
}

func (s *EnemyAISystem) decide(e enemyRefs, player *component.Body) {
	en, b := e.enemy, e.body
	self := cp.Vector{X: b.Rect.CenterX(), Y: b.Rect.CenterY()}
	target := cp.Vector{X: player.Rect.CenterX(), Y: player.Rect.CenterY()}
	delta := target.Sub(self)

	prev := en.Mode
	if self.Distance(target) < en.SightRange {
		en.Mode = component.EnemyChase
	} else {
		en.Mode = component.EnemyPatrol
	}
	if en.Mode != prev {
		s.log.Debug("enemy mode", zap.Stringer("variant", en.Variant), zap.Stringer("mode", en.Mode))
	}

	if en.Mode == component.EnemyChase {
		en.Speed = en.ChaseSpeed
		b.FacingRight = delta.X > 0
		if delta.Y < en.ClimbThreshold {
			jump(b, en)
		}
	} else {
		en.Speed = en.WalkSpeed
	}

	if en.Jumper {
		jump(b, en)
	}
}

func (s *EnemyAISystem) moveHorizontal(e enemyRefs) {
	en, b := e.enemy, e.body
	b.Vel.X = b.Dir() * en.Speed
	if physics.MoveX(&b.Rect, b.Vel.X, s.tiles.Nearby(b.Rect)) {
		if en.Mode == component.EnemyChase && b.OnGround {
			jump(b, en)
		} else {
			b.FacingRight = !b.FacingRight
		}
	}

	if !b.OnGround || en.Mode != component.EnemyPatrol {
		return
	}
	if !physics.LedgeSafe(b.Rect, b.FacingRight, b.Vel.Y, en.LedgeLookAhead, s.tiles) {
		b.FacingRight = !b.FacingRight
	}
}

func jump(b *component.Body, en *component.Enemy) {
	if !b.OnGround {
		return
	}
	b.Vel.Y = en.JumpSpeed
	b.OnGround = false
}
