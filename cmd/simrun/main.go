// Command simrun plays the simulation headless with a scripted player and
// logs a summary. Useful for balancing tuning tables.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/config"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/observability"
	"github.com/milk9111/duskwatch/prefabs"
	"github.com/milk9111/duskwatch/sim"
)

type summary struct {
	Ticks    int
	Deaths   int
	Kills    int
	Shots    int
	Towers   int
	Upgrades int
	Waves    int
	Best     int
	Events   map[string]int
}

func main() {
	configPath := flag.String("config", "", "path to a config file")
	ticks := flag.Int("ticks", 60*60*5, "number of ticks to simulate")
	seed := flag.Int64("seed", 1, "simulation seed")
	flag.Parse()

	if err := run(*configPath, *ticks, *seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, ticks int, seed int64) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Prefabs.Dir != "" {
		prefabs.SetDir(cfg.Prefabs.Dir)
	}
	tn, err := prefabs.LoadTuning()
	if err != nil {
		return fmt.Errorf("load tuning: %w", err)
	}
	var layout *levels.Layout
	if cfg.Sim.Level != "" {
		if layout, err = levels.Load(cfg.Sim.Level, tn.World.TileSize); err != nil {
			return fmt.Errorf("load level: %w", err)
		}
	}

	s, err := sim.New(sim.Options{
		Tuning: tn,
		Layout: layout,
		Seed:   seed,
		Step:   time.Second / time.Duration(cfg.Sim.TPS),
		Logger: logger,
	})
	if err != nil {
		return err
	}

	start := time.Now()
	sum := simulate(s, ticks)
	logger.Info("simulation finished",
		zap.String("run_id", s.RunID()),
		zap.Int64("seed", s.Seed()),
		zap.Int("ticks", sum.Ticks),
		zap.Int("day", s.Clock().Day()),
		zap.Int("waves", sum.Waves),
		zap.Int("kills", sum.Kills),
		zap.Int("shots", sum.Shots),
		zap.Int("towers", sum.Towers),
		zap.Int("upgrades", sum.Upgrades),
		zap.Int("deaths", sum.Deaths),
		zap.Int("best_score", sum.Best),
		zap.Any("events", sum.Events),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

func simulate(s *sim.Simulation, ticks int) summary {
	sum := summary{Events: make(map[string]int)}
	p := &pilot{}
	for range ticks {
		for _, evt := range s.Tick(p.next(s.World(), s.Snapshot())) {
			sum.Events[evt.Type]++
			switch evt.Type {
			case ecs.EventPlayerDied:
				sum.Deaths++
			case ecs.EventEnemyKilled:
				sum.Kills++
			case ecs.EventShotFired:
				sum.Shots++
			case ecs.EventTowerBought:
				sum.Towers++
			case ecs.EventTowerUpgraded, ecs.EventUpgradeBought:
				sum.Upgrades++
			case ecs.EventWaveStarted:
				sum.Waves++
			}
		}
		sum.Ticks++
	}
	sum.Best = s.HighScore()
	return sum
}
