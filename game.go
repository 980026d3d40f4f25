package main

import (
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/duskwatch/assets"
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/system"
	"github.com/milk9111/duskwatch/highscore"
	"github.com/milk9111/duskwatch/prefabs"
	"github.com/milk9111/duskwatch/sim"
)

const flashDuration = 180

type Game struct {
	sim     *sim.Simulation
	store   highscore.Store
	watcher *prefabs.Watcher
	log     *zap.Logger

	camera  *Camera
	input   *Input
	palette *assets.Palette
	face    ebtext.Face
	menu    *ebitenui.UI

	width, height int
	paused        bool
	quit          bool
	saved         int

	flash      string
	flashTicks int
}

type GameOptions struct {
	Sim     *sim.Simulation
	Store   highscore.Store
	Watcher *prefabs.Watcher
	Logger  *zap.Logger
	Palette *assets.Palette
	Width   int
	Height  int
}

func NewGame(opts GameOptions) *Game {
	g := &Game{
		sim:     opts.Sim,
		store:   opts.Store,
		watcher: opts.Watcher,
		log:     opts.Logger,
		palette: opts.Palette,
		face:    ebtext.NewGoXFace(basicfont.Face7x13),
		width:   opts.Width,
		height:  opts.Height,
		saved:   opts.Sim.HighScore(),
	}
	snap := opts.Sim.Snapshot()
	g.camera = NewCamera(opts.Width, opts.Height, 1)
	g.camera.SetWorldBounds(snap.Width, snap.Height)
	g.input = NewInput(g.camera)
	g.menu = NewPauseMenu(g.face, opts.Width, opts.Height, MenuActions{
		Resume:  func() { g.paused = false },
		Restart: g.restart,
		Quit:    func() { g.quit = true },
	})
	g.centerOnPlayer(true)
	return g
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.reloadTuning()

	if PausePressed() {
		g.paused = !g.paused
	}
	if g.paused {
		g.menu.Update()
		return nil
	}

	for _, evt := range g.sim.Tick(g.input.Poll()) {
		g.handle(evt)
	}
	if g.flashTicks > 0 {
		g.flashTicks--
	}
	g.centerOnPlayer(false)
	return nil
}

func (g *Game) handle(evt ecs.Event) {
	switch evt.Type {
	case ecs.EventHighScore:
		g.flash, g.flashTicks = "NEW HIGH SCORE", flashDuration
	case ecs.EventPlayerDied:
		g.saveHighScore()
	case ecs.EventWaveStarted:
		if ws, ok := evt.Data.(system.WaveStarted); ok {
			g.log.Debug("wave started", zap.Int("day", ws.Day), zap.Int("count", ws.Count))
		}
	}
}

func (g *Game) restart() {
	g.saveHighScore()
	if err := g.sim.Reset(); err != nil {
		g.log.Error("restart", zap.Error(err))
		return
	}
	g.paused = false
	g.centerOnPlayer(true)
}

// reloadTuning drains the watcher and swaps in fresh tables once per burst.
func (g *Game) reloadTuning() {
	if g.watcher == nil {
		return
	}
	var changed []prefabs.Change
drain:
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			changed = append(changed, change)
		case err := <-g.watcher.Errors:
			if err != nil {
				g.log.Warn("prefab watcher", zap.Error(err))
			}
		default:
			break drain
		}
	}
	if len(changed) == 0 {
		return
	}
	last := changed[len(changed)-1]
	fields := []zap.Field{
		zap.String("file", last.Path),
		zap.Stringer("kind", last.Kind),
		zap.Int("changes", len(changed)),
	}
	tn, err := prefabs.LoadTuning()
	if err != nil {
		g.log.Warn("tuning reload rejected", append(fields, zap.Error(err))...)
		return
	}
	g.sim.SetTuning(tn)
	g.log.Info("tuning reloaded", fields...)
}

func (g *Game) centerOnPlayer(snap bool) {
	r, ok := g.sim.PlayerRect()
	if !ok {
		return
	}
	x, y := r.CenterX(), r.CenterY()
	if snap {
		g.camera.SnapTo(x, y)
		return
	}
	g.camera.Follow(x, y)
}

// saveHighScore persists the best score when it moved since the last save.
func (g *Game) saveHighScore() {
	best := g.sim.HighScore()
	if g.store == nil || best <= g.saved {
		return
	}
	if err := g.store.Save(best); err != nil {
		g.log.Warn("save high score", zap.Error(err))
		return
	}
	g.saved = best
	g.log.Info("high score saved", zap.Int("score", best))
}

// Close flushes the high score and stops the watcher.
func (g *Game) Close() {
	g.saveHighScore()
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			g.log.Warn("close watcher", zap.Error(err))
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	g.drawWorld(screen, snap)
	g.drawDarkness(screen, snap.HUD.Darkness)
	g.drawHover(screen, snap.HUD)
	g.drawHUD(screen, snap.HUD)
	if g.paused {
		g.menu.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.width), float64(g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
