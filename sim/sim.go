// Package sim runs one fixed-order gameplay tick at a time over an ECS
// world built from a level layout and tuning tables.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/entity"
	"github.com/milk9111/duskwatch/ecs/system"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/physics"
	"github.com/milk9111/duskwatch/prefabs"
	"github.com/milk9111/duskwatch/wave"
)

// DefaultStep is one tick at 60 ticks per second.
const DefaultStep = time.Second / 60

var ErrNoTuning = errors.New("sim: tuning is required")

type Options struct {
	Tuning *prefabs.Tuning
	// Layout defaults to the embedded level.
	Layout *levels.Layout
	// Seed 0 picks a time-based seed.
	Seed   int64
	Step   time.Duration
	Logger *zap.Logger
	// HighScore is the best score recorded before this session.
	HighScore int
}

// Simulation owns the world and the systems that advance it.
type Simulation struct {
	tuning *prefabs.Tuning
	layout *levels.Layout
	step   time.Duration
	rng    *common.RNG
	log    *zap.Logger
	runID  string

	world       *ecs.World
	tiles       *physics.TileIndex
	clock       *wave.Clock
	scheduler   *ecs.Scheduler
	director    *system.DirectorSystem
	interaction *system.InteractionSystem
	spawner     *system.BulletSpawnSystem
	player      ecs.Entity

	prev       component.Intents
	best       int
	runBest    int
	celebrated bool
}

func New(opts Options) (*Simulation, error) {
	if opts.Tuning == nil {
		return nil, ErrNoTuning
	}
	layout := opts.Layout
	if layout == nil {
		var err error
		if layout, err = levels.Default(opts.Tuning.World.TileSize); err != nil {
			return nil, fmt.Errorf("sim: default layout: %w", err)
		}
	}
	step := opts.Step
	if step <= 0 {
		step = DefaultStep
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	s := &Simulation{
		tuning: opts.Tuning,
		layout: layout,
		step:   step,
		rng:    common.NewRNG(opts.Seed),
		runID:  uuid.NewString(),
		best:   max(0, opts.HighScore),
	}
	s.log = log.With(zap.String("run_id", s.runID), zap.Int64("seed", s.rng.Seed()))

	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset rebuilds the level from scratch. The best score survives.
func (s *Simulation) Reset() error {
	w := ecs.NewWorld()
	tiles, err := entity.BuildLevel(w, s.tuning, s.layout)
	if err != nil {
		return fmt.Errorf("sim: build level: %w", err)
	}
	player, err := entity.NewPlayer(w, s.tuning)
	if err != nil {
		return fmt.Errorf("sim: spawn player: %w", err)
	}

	s.world = w
	s.tiles = tiles
	s.player = player
	s.clock = wave.NewClock(s.tuning.Director.Cycle)
	s.director = system.NewDirectorSystem(s.clock, s.tuning, s.layout, s.rng, s.log)
	s.interaction = system.NewInteractionSystem(s.tuning, s.log)
	s.spawner = system.NewBulletSpawnSystem(s.tuning, s.log)
	s.scheduler = ecs.NewScheduler(
		s.interaction,
		s.director,
		system.NewEnemyAISystem(tiles, s.layout.Height(), s.log),
		system.NewBulletSystem(tiles),
		system.NewPlayerSystem(tiles, s.log),
		system.NewTowerSystem(s.log),
		s.spawner,
		system.NewCombatSystem(s.rng, s.log),
		system.NewContactSystem(s.log),
	)
	s.prev = component.Intents{}
	s.runBest = s.best
	s.celebrated = false

	s.log.Info("level ready",
		zap.Int("entities", len(ecs.Entities(w))),
		zap.Int("solid_tiles", tiles.Len()),
		zap.Int("best", s.best),
		zap.Strings("systems", s.scheduler.Order()),
	)
	return nil
}

// Tick advances the simulation by one step and returns the events raised.
// Held restart while the player is dead rebuilds the level instead.
func (s *Simulation) Tick(cur component.Intents) []ecs.Event {
	in := component.NewInput(s.prev, cur)
	s.prev = cur

	if s.PlayerDead() && in.Held.Restart {
		s.log.Info("restart", zap.Int("day", s.clock.Day()), zap.Int("score", s.Score()))
		if err := s.Reset(); err != nil {
			s.log.Error("restart failed", zap.Error(err))
		}
		return nil
	}

	if slot, ok := ecs.Get(s.world, s.player, component.InputComponent.Kind()); ok {
		*slot = in
	}
	s.scheduler.Update(s.world)
	s.trackScore()
	s.world.Advance(s.step)

	return s.world.Events().Drain()
}

func (s *Simulation) trackScore() {
	score := s.Score()
	if score > s.best {
		s.best = score
	}
	if s.celebrated || score <= s.runBest {
		return
	}
	s.celebrated = true
	s.world.Events().Push(ecs.Event{Type: ecs.EventHighScore, Data: score})
	s.log.Info("new high score", zap.Int("score", score), zap.Int("previous", s.runBest))
}

// SetTuning applies new tuning to entities and waves created from now on.
func (s *Simulation) SetTuning(tn *prefabs.Tuning) {
	if tn == nil {
		return
	}
	s.tuning = tn
	s.director.SetTuning(tn)
	s.interaction.SetTuning(tn)
	s.spawner.SetTuning(tn)
	s.log.Info("tuning reloaded")
}

// HighScore is the best score seen, including the current run.
func (s *Simulation) HighScore() int {
	return s.best
}

// SetHighScore replaces the stored best, e.g. after loading it from disk.
// It becomes the bar for this run's celebration.
func (s *Simulation) SetHighScore(v int) {
	s.best = max(0, v)
	s.runBest = s.best
}

// Score is the current run's score.
func (s *Simulation) Score() int {
	if p, ok := ecs.Get(s.world, s.player, component.PlayerComponent.Kind()); ok {
		return p.Ledger.Score
	}
	return 0
}

// PlayerDead reports whether the run has ended.
func (s *Simulation) PlayerDead() bool {
	h, ok := ecs.Get(s.world, s.player, component.HealthComponent.Kind())
	return !ok || h.Dead
}

// World exposes the ECS world for tools and tests.
func (s *Simulation) World() *ecs.World {
	return s.world
}

// Clock exposes the day/night clock for tools and tests.
func (s *Simulation) Clock() *wave.Clock {
	return s.clock
}

func (s *Simulation) RunID() string {
	return s.runID
}

func (s *Simulation) Seed() int64 {
	return s.rng.Seed()
}

// PlayerRect returns the player's body for camera tracking.
func (s *Simulation) PlayerRect() (common.Rect, bool) {
	b, ok := ecs.Get(s.world, s.player, component.BodyComponent.Kind())
	if !ok {
		return common.Rect{}, false
	}
	return b.Rect, true
}
