package sim

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/system"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/prefabs"
)

func newSim(t testing.TB, seed int64) *Simulation {
	t.Helper()
	tn, err := prefabs.LoadTuning()
	require.NoError(t, err)
	s, err := New(Options{Tuning: tn, Seed: seed})
	require.NoError(t, err)
	return s
}

func playerOf(t testing.TB, s *Simulation) (*component.Player, *component.Health) {
	t.Helper()
	p, ok := ecs.Get(s.World(), s.player, component.PlayerComponent.Kind())
	require.True(t, ok)
	h, ok := ecs.Get(s.World(), s.player, component.HealthComponent.Kind())
	require.True(t, ok)
	return p, h
}

func script(tick int) component.Intents {
	return component.Intents{
		Fire:  true,
		Left:  (tick/120)%2 == 1,
		Right: (tick/120)%2 == 0,
		Jump:  tick%90 == 0,
	}
}

func TestNewRequiresTuning(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrNoTuning)
}

func TestTickAdvancesClock(t *testing.T) {
	s := newSim(t, 1)
	for i := 0; i < 10; i++ {
		s.Tick(component.Intents{})
	}
	assert.Equal(t, uint64(10), s.World().Time().Tick)
	assert.Equal(t, 10*DefaultStep, s.World().Time().Now)
	assert.Equal(t, 10, s.Clock().Timer())
}

func TestSameSeedSameRun(t *testing.T) {
	a := newSim(t, 42)
	b := newSim(t, 42)
	a.Clock().SetTimer(1390)
	b.Clock().SetTimer(1390)

	waves := 0
	for i := 0; i < 900; i++ {
		ea := a.Tick(script(i))
		eb := b.Tick(script(i))
		require.Equal(t, ea, eb, "tick %d", i)
		for _, e := range ea {
			if e.Type == ecs.EventWaveStarted {
				waves++
			}
		}
	}

	assert.Equal(t, 1, waves)
	assert.Equal(t, a.Snapshot(), b.Snapshot())
	assert.Less(t, a.director.Pending(), 6, "part of the wave was released")
}

func TestRestartRebuildsLevel(t *testing.T) {
	s := newSim(t, 5)
	p, h := playerOf(t, s)
	p.Ledger.Earn(40)
	s.Tick(component.Intents{})
	require.Equal(t, 40, s.HighScore())
	old := s.World()

	s.Tick(component.Intents{Restart: true})
	assert.Same(t, old, s.World(), "restart only works once dead")

	h.Damage(h.Max)
	require.True(t, s.PlayerDead())
	assert.Nil(t, s.Tick(component.Intents{Restart: true}))

	assert.NotSame(t, old, s.World())
	assert.False(t, s.PlayerDead())
	assert.Zero(t, s.Score())
	assert.Equal(t, 40, s.HighScore())
	assert.Equal(t, 1, s.Clock().Day())
}

func TestHighScoreCelebratedOncePerRun(t *testing.T) {
	s := newSim(t, 5)
	s.SetHighScore(15)
	p, _ := playerOf(t, s)

	p.Ledger.Earn(10)
	assert.Empty(t, highScores(s.Tick(component.Intents{})))

	p.Ledger.Earn(10)
	evts := highScores(s.Tick(component.Intents{}))
	require.Len(t, evts, 1)
	assert.Equal(t, 20, evts[0].Data)

	p.Ledger.Earn(10)
	assert.Empty(t, highScores(s.Tick(component.Intents{})))
	assert.Equal(t, 30, s.HighScore())
}

func highScores(evts []ecs.Event) []ecs.Event {
	var out []ecs.Event
	for _, e := range evts {
		if e.Type == ecs.EventHighScore {
			out = append(out, e)
		}
	}
	return out
}

func TestClickRepairsTower(t *testing.T) {
	s := newSim(t, 8)
	snap := s.Snapshot()
	var ruin *Drawable
	for i := range snap.Drawables {
		if snap.Drawables[i].Kind == KindRuin {
			ruin = &snap.Drawables[i]
			break
		}
	}
	require.NotNil(t, ruin)
	p, _ := playerOf(t, s)
	p.Ledger.Money = 500

	x, y := ruin.Rect.CenterX(), ruin.Rect.CenterY()
	s.Tick(component.Intents{PointerX: x, PointerY: y})
	hud := s.Snapshot().HUD
	require.True(t, hud.HasHover)
	assert.Equal(t, system.HoverRepair, hud.Hover.Kind)
	assert.True(t, hud.Hover.Eligible)

	evts := s.Tick(component.Intents{Click: true, PointerX: x, PointerY: y})
	var bought bool
	for _, e := range evts {
		bought = bought || e.Type == ecs.EventTowerBought
	}
	assert.True(t, bought)
	assert.Equal(t, 1, ecs.Count(s.World(), component.TowerComponent.Kind()))

	hud = s.Snapshot().HUD
	assert.Equal(t, system.HoverUpgrade, hud.Hover.Kind)
	assert.Equal(t, 1, hud.Hover.Level)
}

func TestSnapshotLayersOrdered(t *testing.T) {
	s := newSim(t, 3)
	for i := 0; i < 5; i++ {
		s.Tick(component.Intents{Fire: true})
	}
	snap := s.Snapshot()

	require.NotEmpty(t, snap.Drawables)
	kinds := map[Kind]int{}
	for i, d := range snap.Drawables {
		kinds[d.Kind]++
		if i > 0 {
			require.LessOrEqual(t, snap.Drawables[i-1].Layer, d.Layer)
		}
	}
	assert.Equal(t, 1, kinds[KindPlayer])
	assert.Equal(t, 6, kinds[KindRuin])
	assert.Positive(t, kinds[KindBullet])
	assert.Equal(t, 100, snap.HUD.Health)
	assert.Equal(t, snap.Width, 150*s.tuning.World.TileSize)
}

func TestNarrowLevelKeepsEnemiesInside(t *testing.T) {
	tn, err := prefabs.LoadTuning()
	require.NoError(t, err)
	air := strings.TrimSuffix(strings.Repeat("0,", 40), ",")
	rows := []string{air, air, air, air, air, air, air, strings.TrimSuffix(strings.Repeat("1,", 40), ",")}
	layout, err := levels.Parse(rows, tn.World.TileSize)
	require.NoError(t, err)
	s, err := New(Options{Tuning: tn, Layout: layout, Seed: 11})
	require.NoError(t, err)
	s.Clock().SetTimer(1399)

	seen := map[ecs.Entity]bool{}
	for i := 0; i < 1500; i++ {
		s.Tick(component.Intents{})
		ecs.ForEach2(s.World(), component.EnemyComponent.Kind(), component.BodyComponent.Kind(), func(e ecs.Entity, _ *component.Enemy, b *component.Body) {
			seen[e] = true
			require.GreaterOrEqual(t, b.Rect.Left(), 0.0, "tick %d", i)
			require.LessOrEqual(t, b.Rect.Right(), layout.Width(), "tick %d", i)
			require.LessOrEqual(t, b.Rect.Bottom(), layout.Height(), "tick %d", i)
		})
	}
	assert.NotEmpty(t, seen)
	assert.Equal(t, layout.Width(), s.Snapshot().Width)
}

func TestSimInvariants(t *testing.T) {
	tn, err := prefabs.LoadTuning()
	require.NoError(t, err)

	rapid.Check(t, func(rt *rapid.T) {
		seed := rapid.Int64Range(1, 1<<40).Draw(rt, "seed")
		s, err := New(Options{Tuning: tn, Seed: seed, Step: 20 * time.Millisecond})
		if err != nil {
			rt.Fatal(err)
		}
		s.Clock().SetTimer(rapid.IntRange(0, tn.Director.Cycle.Length).Draw(rt, "timer"))
		ticks := rapid.IntRange(1, 120).Draw(rt, "ticks")
		for i := 0; i < ticks; i++ {
			in := component.Intents{
				Left:          rapid.Bool().Draw(rt, "left"),
				Right:         rapid.Bool().Draw(rt, "right"),
				Sprint:        rapid.Bool().Draw(rt, "sprint"),
				Jump:          rapid.Bool().Draw(rt, "jump"),
				Fire:          rapid.Bool().Draw(rt, "fire"),
				UpgradeWeapon: rapid.Bool().Draw(rt, "weapon"),
				QuickHeal:     rapid.Bool().Draw(rt, "heal"),
			}
			s.Tick(in)

			hud := s.Snapshot().HUD
			if hud.Money < 0 {
				rt.Fatalf("money went negative: %d", hud.Money)
			}
			if hud.Health < 0 || hud.Health > hud.MaxHealth {
				rt.Fatalf("health %d outside [0,%d]", hud.Health, hud.MaxHealth)
			}
			if hud.Stamina < 0 || hud.Stamina > hud.MaxStamina {
				rt.Fatalf("stamina %v outside [0,%v]", hud.Stamina, hud.MaxStamina)
			}
		}
	})
}
