package system

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/entity"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/physics"
	"github.com/milk9111/duskwatch/prefabs"
)

const (
	floorY    = 1000.0
	tileSize  = 128.0
	fallLimit = 2000.0
)

func loadTuning(t *testing.T) *prefabs.Tuning {
	t.Helper()
	tn, err := prefabs.LoadTuning()
	require.NoError(t, err)
	return tn
}

// floor lays solid tiles along y = floorY for columns [from, to).
func floor(from, to int) *physics.TileIndex {
	ix := physics.NewTileIndex(tileSize)
	for c := from; c < to; c++ {
		ix.Insert(common.Rect{X: float64(c) * tileSize, Y: floorY, W: tileSize, H: tileSize})
	}
	return ix
}

// grid is an open level of cols columns with one ground row at the bottom.
func grid(t *testing.T, cols, rows int) *levels.Layout {
	t.Helper()
	air := strings.TrimSuffix(strings.Repeat("0,", cols), ",")
	ground := strings.TrimSuffix(strings.Repeat("1,", cols), ",")
	lines := make([]string, 0, rows)
	for r := 0; r < rows-1; r++ {
		lines = append(lines, air)
	}
	l, err := levels.Parse(append(lines, ground), tileSize)
	require.NoError(t, err)
	return l
}

func spawnPlayer(t *testing.T, w *ecs.World, tn *prefabs.Tuning) playerRefs {
	t.Helper()
	_, err := entity.NewPlayer(w, tn)
	require.NoError(t, err)
	p, ok := findPlayer(w)
	require.True(t, ok)
	return p
}

func spawnEnemy(t *testing.T, w *ecs.World, tn *prefabs.Tuning, v component.EnemyVariant, x float64, facingRight bool) enemyRefs {
	t.Helper()
	e, err := entity.NewEnemy(w, tn, entity.EnemyParams{Variant: v, X: x, Bottom: floorY, FacingRight: facingRight})
	require.NoError(t, err)
	return enemyRefsOf(t, w, e)
}

func enemyRefsOf(t *testing.T, w *ecs.World, e ecs.Entity) enemyRefs {
	t.Helper()
	en, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
	require.True(t, ok)
	b, _ := ecs.Get(w, e, component.BodyComponent.Kind())
	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	return enemyRefs{entity: e, enemy: en, body: b, health: h}
}

func setInput(t *testing.T, w *ecs.World, p playerRefs, prev, cur component.Intents) {
	t.Helper()
	in, ok := ecs.Get(w, p.entity, component.InputComponent.Kind())
	require.True(t, ok)
	*in = component.NewInput(prev, cur)
}

func eventsOf(evts []ecs.Event, typ string) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func spawnRequests(w *ecs.World) []component.BulletSpawnRequest {
	var out []component.BulletSpawnRequest
	ecs.ForEach(w, component.BulletSpawnRequestComponent.Kind(), func(_ ecs.Entity, r *component.BulletSpawnRequest) {
		out = append(out, *r)
	})
	return out
}
