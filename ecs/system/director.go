package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/entity"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/prefabs"
	"github.com/milk9111/duskwatch/wave"
)

// DirectorSystem advances the day/night clock, builds one wave per night
// and releases it while the player is alive.
type DirectorSystem struct {
	clock  *wave.Clock
	tuning *prefabs.Tuning
	layout *levels.Layout
	rng    *common.RNG
	log    *zap.Logger

	queue        *wave.Queue
	generatedDay int
}

// NewDirectorSystem drops enemies into layout. Spawn bounds and facing come
// from the level itself, not from world.map_width.
func NewDirectorSystem(clock *wave.Clock, tn *prefabs.Tuning, layout *levels.Layout, rng *common.RNG, log *zap.Logger) *DirectorSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &DirectorSystem{clock: clock, tuning: tn, layout: layout, rng: rng, log: log}
}

// SpawnArea is the band enemies drop into, the x they face towards and the
// line their feet start on.
type SpawnArea struct {
	Left, Right float64
	Center      float64
	Bottom      float64
}

// SpawnAreaFor fits the tuned borders into layout. A border past the last
// column is pulled in; a level too narrow for any band spawns at its centre.
func SpawnAreaFor(tn *prefabs.Tuning, layout *levels.Layout) SpawnArea {
	ts := layout.TileSize()
	right := min(tn.World.BorderRight, layout.Cols()-1)
	left := min(tn.World.BorderLeft, right-1)
	a := SpawnArea{
		Left:   float64(left+1)*ts + ts/2,
		Right:  float64(right)*ts - ts/2,
		Center: layout.Width() / 2,
		Bottom: min(tn.Director.SpawnY, layout.Height()),
	}
	if a.Left > a.Right {
		a.Left, a.Right = a.Center, a.Center
	}
	return a
}

// Area is the current spawn area.
func (s *DirectorSystem) Area() SpawnArea {
	return SpawnAreaFor(s.tuning, s.layout)
}

// SetTuning swaps tuning for waves generated from now on.
func (s *DirectorSystem) SetTuning(tn *prefabs.Tuning) {
	s.tuning = tn
}

// Pending returns how many enemies are still queued tonight.
func (s *DirectorSystem) Pending() int {
	return s.queue.Len()
}

func (s *DirectorSystem) Update(w *ecs.World) {
	if w == nil || s.clock == nil {
		return
	}

	if s.clock.Advance() {
		s.queue = nil
		w.Events().Push(ecs.Event{Type: ecs.EventDayStarted, Data: DayStarted{Day: s.clock.Day()}})
		s.log.Info("day started", zap.Int("day", s.clock.Day()))
	}

	if !s.clock.IsNight() {
		return
	}
	if s.generatedDay != s.clock.Day() {
		s.generate(w)
	}

	p, ok := findPlayer(w)
	if !ok || p.health.Dead {
		return
	}
	if entry, ok := s.queue.Tick(); ok {
		s.spawn(w, entry)
	}
}

func (s *DirectorSystem) generate(w *ecs.World) {
	day := s.clock.Day()
	s.generatedDay = day

	plan, err := s.tuning.Planner().Plan(day)
	if err != nil {
		s.log.Warn("wave planner failed, using formula", zap.Int("day", day), zap.Error(err))
		plan, _ = s.tuning.Director.Formula.Plan(day)
	}
	window := int(s.tuning.Director.SpawnWindow * float64(s.clock.NightTicks()))
	cooldown := wave.Cadence(window, plan.Count, s.tuning.Director.MinSpawnCooldown)
	s.queue = wave.NewQueue(wave.Build(plan, s.tuning.Pool(), s.rng), cooldown)

	w.Events().Push(ecs.Event{Type: ecs.EventWaveStarted, Data: WaveStarted{Day: day, Count: plan.Count, Cooldown: cooldown}})
	s.log.Info("wave generated",
		zap.Int("day", day),
		zap.Int("count", plan.Count),
		zap.Float64("health_mult", plan.HealthMult),
		zap.Float64("damage_mult", plan.DamageMult),
		zap.Int("cooldown_ticks", cooldown),
	)
}

func (s *DirectorSystem) spawn(w *ecs.World, entry wave.Entry) {
	area := s.Area()
	x := float64(s.rng.IntRange(int(area.Left), int(area.Right)))

	e, err := entity.NewEnemy(w, s.tuning, entity.EnemyParams{
		Variant:     entry.Variant,
		X:           x,
		Bottom:      area.Bottom,
		FacingRight: x < area.Center,
		HealthMult:  entry.HealthMult,
		DamageMult:  entry.DamageMult,
	})
	if err != nil {
		s.log.Error("spawn enemy", zap.Stringer("variant", entry.Variant), zap.Error(err))
		return
	}
	s.log.Debug("enemy spawned", zap.Stringer("entity", e), zap.Stringer("variant", entry.Variant), zap.Float64("x", x))
}
