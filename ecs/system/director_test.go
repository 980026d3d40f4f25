package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/wave"
)

func TestDirectorQuietByDay(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	spawnPlayer(t, w, tn)
	clock := wave.NewClock(tn.Director.Cycle)
	d := NewDirectorSystem(clock, tn, grid(t, 150, 9), common.NewRNG(3), nil)

	for i := 0; i < 1000; i++ {
		d.Update(w)
	}

	assert.Zero(t, d.Pending())
	assert.Zero(t, ecs.Count(w, component.EnemyComponent.Kind()))
	assert.Empty(t, w.Events().Drain())
}

func TestDirectorReleasesWaveAtNight(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	spawnPlayer(t, w, tn)
	clock := wave.NewClock(tn.Director.Cycle)
	clock.SetTimer(1399)
	d := NewDirectorSystem(clock, tn, grid(t, 150, 9), common.NewRNG(3), nil)

	d.Update(w)
	require.True(t, clock.IsNight())
	started := eventsOf(w.Events().Drain(), ecs.EventWaveStarted)
	require.Len(t, started, 1)
	assert.Equal(t, WaveStarted{Day: 1, Count: 6, Cooldown: 320}, started[0].Data)
	assert.Equal(t, 6, d.Pending())

	for i := 1; i < 320; i++ {
		d.Update(w)
	}
	require.Equal(t, 1, ecs.Count(w, component.EnemyComponent.Kind()))
	assert.Equal(t, 5, d.Pending())

	ws := tn.World
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, en *component.Enemy, b *component.Body) {
		x := b.Rect.CenterX()
		assert.GreaterOrEqual(t, x, float64(ws.BorderLeft+1)*ws.TileSize+ws.TileSize/2)
		assert.LessOrEqual(t, x, float64(ws.BorderRight)*ws.TileSize-ws.TileSize/2)
		assert.Equal(t, tn.Director.SpawnY, b.Rect.Bottom())
		assert.Equal(t, x < float64(ws.MapWidth)*ws.TileSize/2, b.FacingRight, "faces the map centre")
	})
}

func TestDirectorHoldsSpawnsWhilePlayerDead(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	p := spawnPlayer(t, w, tn)
	p.health.Damage(p.health.Max)
	clock := wave.NewClock(tn.Director.Cycle)
	clock.SetTimer(1399)
	d := NewDirectorSystem(clock, tn, grid(t, 150, 9), common.NewRNG(3), nil)

	for i := 0; i < 1000; i++ {
		d.Update(w)
	}

	assert.Equal(t, 6, d.Pending())
	assert.Zero(t, ecs.Count(w, component.EnemyComponent.Kind()))
}

func TestDirectorNewDayDropsLeftovers(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	spawnPlayer(t, w, tn)
	clock := wave.NewClock(tn.Director.Cycle)
	clock.SetTimer(1399)
	d := NewDirectorSystem(clock, tn, grid(t, 150, 9), common.NewRNG(3), nil)
	d.Update(w)
	require.Equal(t, 6, d.Pending())

	clock.SetTimer(tn.Director.Cycle.Length - 1)
	d.Update(w)

	assert.Equal(t, 2, clock.Day())
	assert.Zero(t, d.Pending())
	days := eventsOf(w.Events().Drain(), ecs.EventDayStarted)
	require.Len(t, days, 1)
	assert.Equal(t, DayStarted{Day: 2}, days[0].Data)
}

func TestDirectorOneWavePerNight(t *testing.T) {
	tn := loadTuning(t)
	w := ecs.NewWorld()
	clock := wave.NewClock(tn.Director.Cycle)
	d := NewDirectorSystem(clock, tn, grid(t, 150, 9), common.NewRNG(9), nil)

	for i := 0; i < 3*tn.Director.Cycle.Length; i++ {
		d.Update(w)
	}

	evts := w.Events().Drain()
	assert.Len(t, eventsOf(evts, ecs.EventWaveStarted), 3)
	assert.Len(t, eventsOf(evts, ecs.EventDayStarted), 3)
	assert.Equal(t, 4, clock.Day())
}

func TestSpawnAreaFitsLayout(t *testing.T) {
	tn := loadTuning(t)
	cases := []struct {
		name string
		cols int
		rows int
		want SpawnArea
	}{
		{"full_width", 150, 9, SpawnArea{Left: 11*tileSize + tileSize/2, Right: 140*tileSize - tileSize/2, Center: 75 * tileSize, Bottom: tn.Director.SpawnY}},
		{"narrow", 40, 8, SpawnArea{Left: 11*tileSize + tileSize/2, Right: 39*tileSize - tileSize/2, Center: 20 * tileSize, Bottom: tn.Director.SpawnY}},
		{"inside_left_border", 8, 9, SpawnArea{Left: 7*tileSize + tileSize/2, Right: 7*tileSize - tileSize/2, Center: 4 * tileSize, Bottom: tn.Director.SpawnY}},
		{"short", 40, 5, SpawnArea{Left: 11*tileSize + tileSize/2, Right: 39*tileSize - tileSize/2, Center: 20 * tileSize, Bottom: 5 * tileSize}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := SpawnAreaFor(tn, grid(t, c.cols, c.rows))
			if c.want.Left > c.want.Right {
				c.want.Left, c.want.Right = c.want.Center, c.want.Center
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDirectorSpawnsInsideNarrowLevel(t *testing.T) {
	tn := loadTuning(t)
	layout := grid(t, 40, 8)
	w := ecs.NewWorld()
	spawnPlayer(t, w, tn)
	clock := wave.NewClock(tn.Director.Cycle)
	clock.SetTimer(1399)
	d := NewDirectorSystem(clock, tn, layout, common.NewRNG(5), nil)

	d.Update(w)
	require.Equal(t, 6, d.Pending())
	for i := 0; d.Pending() > 0 && i < tn.Director.Cycle.Length; i++ {
		d.Update(w)
	}

	require.Equal(t, 6, ecs.Count(w, component.EnemyComponent.Kind()))
	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.BodyComponent.Kind(), func(_ ecs.Entity, _ *component.Enemy, b *component.Body) {
		assert.GreaterOrEqual(t, b.Rect.Left(), 0.0)
		assert.LessOrEqual(t, b.Rect.Right(), layout.Width())
		assert.LessOrEqual(t, b.Rect.Bottom(), layout.Height())
		assert.Equal(t, b.Rect.CenterX() < layout.Width()/2, b.FacingRight, "faces the level centre")
	})
}
