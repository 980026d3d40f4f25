package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
)

func TestEnemyAISightRange(t *testing.T) {
	cases := []struct {
		name      string
		offset    float64
		wantMode  component.EnemyMode
		wantRight bool
		wantDX    float64
	}{
		{"inside_sight_chases", 350, component.EnemyChase, true, 8},
		{"outside_sight_patrols", 500, component.EnemyPatrol, false, -5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tn := loadTuning(t)
			w := ecs.NewWorld()
			ix := floor(0, 60)
			p := spawnPlayer(t, w, tn)
			e := spawnEnemy(t, w, tn, component.Enemy01, p.body.Rect.CenterX()-c.offset, false)
			x0 := e.body.Rect.X

			NewEnemyAISystem(ix, fallLimit, nil).Update(w)

			assert.Equal(t, c.wantMode, e.enemy.Mode)
			assert.Equal(t, c.wantRight, e.body.FacingRight)
			assert.InDelta(t, c.wantDX, e.body.Rect.X-x0, 1e-9)
			assert.True(t, e.body.OnGround)
			assert.InDelta(t, floorY, e.body.Rect.Bottom(), 1e-9)
		})
	}
}

func TestEnemyAIPatrolsWithoutPlayer(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	e := spawnEnemy(t, w, tn, component.Enemy03, 3000, true)
	e.enemy.Mode = component.EnemyChase

	NewEnemyAISystem(floor(0, 60), fallLimit, nil).Update(w)

	assert.Equal(t, component.EnemyPatrol, e.enemy.Mode)
	assert.Equal(t, e.enemy.WalkSpeed, e.enemy.Speed)
}

func TestEnemyAIReversesAtWall(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	ix := floor(0, 60)
	e := spawnEnemy(t, w, tn, component.Enemy01, 3000, false)
	wall := common.Rect{X: e.body.Rect.Left() - 3 - tileSize, Y: floorY - tileSize, W: tileSize, H: tileSize}
	ix.Insert(wall)

	NewEnemyAISystem(ix, fallLimit, nil).Update(w)

	assert.True(t, e.body.FacingRight)
	assert.Equal(t, wall.Right(), e.body.Rect.Left())
}

func TestEnemyAIChasingJumpsAtWall(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	ix := floor(0, 60)
	p := spawnPlayer(t, w, tn)
	e := spawnEnemy(t, w, tn, component.Enemy01, p.body.Rect.CenterX()-300, true)
	e.body.OnGround = true
	wall := common.Rect{X: e.body.Rect.Right() + 3, Y: floorY - tileSize, W: tileSize, H: tileSize}
	ix.Insert(wall)

	NewEnemyAISystem(ix, fallLimit, nil).Update(w)

	assert.Equal(t, component.EnemyChase, e.enemy.Mode)
	assert.True(t, e.body.FacingRight)
	assert.Less(t, e.body.Vel.Y, 0.0)
	assert.False(t, e.body.OnGround)
}

func TestEnemyAITurnsAtLedge(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	ix := floor(0, 4)
	e := spawnEnemy(t, w, tn, component.Enemy01, 4*tileSize-22, true)
	e.body.OnGround = true

	NewEnemyAISystem(ix, fallLimit, nil).Update(w)

	assert.False(t, e.body.FacingRight)
}

func TestEnemyAIJumperHops(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	ix := floor(0, 60)
	e := spawnEnemy(t, w, tn, component.Enemy05, 3000, true)
	ai := NewEnemyAISystem(ix, fallLimit, nil)

	ai.Update(w)
	require.True(t, e.body.OnGround)
	y0 := e.body.Rect.Y

	ai.Update(w)
	assert.InDelta(t, e.enemy.JumpSpeed+tn.Enemies.Gravity, e.body.Vel.Y, 1e-9)
	assert.Less(t, e.body.Rect.Y, y0)
}

func TestEnemyAIStaysOnFloor(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	ix := floor(0, 60)
	e := spawnEnemy(t, w, tn, component.Enemy02, 3000, true)
	ai := NewEnemyAISystem(ix, fallLimit, nil)

	for i := 0; i < 200; i++ {
		ai.Update(w)
		require.LessOrEqual(t, e.body.Rect.Bottom(), floorY, "tick %d", i)
		require.False(t, e.body.Rect.Intersects(common.Rect{X: 0, Y: floorY, W: 60 * tileSize, H: tileSize}))
	}
}

func TestEnemyAIRemovesFallenEnemies(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, tn)
	wallet := p.player.Ledger
	e := spawnEnemy(t, w, tn, component.Enemy01, 3000, true)
	ai := NewEnemyAISystem(floor(0, 4), fallLimit, nil)

	ai.Update(w)
	require.True(t, ecs.IsAlive(w, e.entity), "still above the limit")

	for i := 0; i < 1000 && ecs.IsAlive(w, e.entity); i++ {
		ai.Update(w)
	}

	assert.False(t, ecs.IsAlive(w, e.entity))
	assert.Zero(t, ecs.Count(w, component.EnemyComponent.Kind()))
	assert.Equal(t, wallet, p.player.Ledger, "falling out pays nothing")
	assert.Empty(t, eventsOf(w.Events().Drain(), ecs.EventEnemyKilled))
}
