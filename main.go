package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/assets"
	"github.com/milk9111/duskwatch/config"
	"github.com/milk9111/duskwatch/highscore"
	"github.com/milk9111/duskwatch/levels"
	"github.com/milk9111/duskwatch/observability"
	"github.com/milk9111/duskwatch/prefabs"
	"github.com/milk9111/duskwatch/sim"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (yaml, toml or json)")
	seed := flag.Int64("seed", 0, "override the simulation seed (0 keeps the configured one)")
	levelPath := flag.String("level", "", "override the level CSV")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if err := run(*configPath, *seed, *levelPath, *baseMonitor); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, levelPath string, baseMonitor bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Sim.Seed = seed
	}
	if levelPath != "" {
		cfg.Sim.Level = levelPath
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, watcher, err := buildSim(cfg, logger)
	if err != nil {
		return err
	}
	palette, err := assets.DefaultPalette()
	if err != nil {
		return err
	}

	store := highscore.NewFileStore(cfg.HighScore.Path)
	best, err := store.Load()
	if err != nil {
		logger.Warn("load high score", zap.String("path", cfg.HighScore.Path), zap.Error(err))
	}
	s.SetHighScore(best)

	if baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Sim.TPS)

	game := NewGame(GameOptions{
		Sim:     s,
		Store:   store,
		Watcher: watcher,
		Logger:  logger,
		Palette: palette,
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
	})
	defer game.Close()

	logger.Info("starting",
		zap.String("run_id", s.RunID()),
		zap.Int64("seed", s.Seed()),
		zap.Int("high_score", best),
	)
	return ebiten.RunGame(game)
}

// buildSim loads tuning and the level, and starts the prefab watcher when
// hot reload is on.
func buildSim(cfg config.Config, logger *zap.Logger) (*sim.Simulation, *prefabs.Watcher, error) {
	if cfg.Prefabs.Dir != "" {
		prefabs.SetDir(cfg.Prefabs.Dir)
	}
	tn, err := prefabs.LoadTuning()
	if err != nil {
		return nil, nil, fmt.Errorf("load tuning: %w", err)
	}

	var layout *levels.Layout
	if cfg.Sim.Level != "" {
		if layout, err = levels.Load(cfg.Sim.Level, tn.World.TileSize); err != nil {
			return nil, nil, fmt.Errorf("load level: %w", err)
		}
	}

	s, err := sim.New(sim.Options{
		Tuning: tn,
		Layout: layout,
		Seed:   cfg.Sim.Seed,
		Step:   time.Second / time.Duration(cfg.Sim.TPS),
		Logger: logger,
	})
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Prefabs.Watch {
		return s, nil, nil
	}
	dirs := []string{cfg.Prefabs.Dir}
	if scripts := filepath.Join(cfg.Prefabs.Dir, "scripts"); isDir(scripts) {
		dirs = append(dirs, scripts)
	}
	watcher, err := prefabs.NewWatcher(dirs...)
	if err != nil {
		logger.Warn("prefab hot reload disabled", zap.String("dir", cfg.Prefabs.Dir), zap.Error(err))
		return s, nil, nil
	}
	logger.Info("watching prefabs", zap.String("dir", cfg.Prefabs.Dir))
	return s, watcher, nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
