package main

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/milk9111/duskwatch/ecs/system"
	"github.com/milk9111/duskwatch/sim"
)

const (
	barWidth   = 40
	barHeight  = 5
	barOffsetY = 15
	hudLine    = 16
)

var (
	barBack     = color.NRGBA{R: 30, B: 40, A: 255}
	barFill     = color.NRGBA{R: 138, G: 43, B: 226, A: 255}
	hudText     = color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
	hoverOK     = color.NRGBA{R: 0x6b, G: 0xe6, B: 0x75, A: 0xff}
	hoverDenied = color.NRGBA{R: 0xe6, G: 0x5a, B: 0x5a, A: 0xff}
	bannerText  = color.NRGBA{R: 0xff, G: 0xd1, B: 0x66, A: 0xff}
)

// drawWorld renders every visible drawable as a flat rectangle.
func (g *Game) drawWorld(screen *ebiten.Image, snap sim.Snapshot) {
	for _, d := range snap.Drawables {
		r := d.Rect
		if !g.camera.Visible(r.X, r.Y, r.W, r.H) {
			continue
		}
		c := g.palette.Color(d.Key)
		c.A = d.Alpha
		x, y := g.camera.ToScreen(r.X, r.Y)
		z := g.camera.Zoom()
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W*z), float32(r.H*z), color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, false)

		if d.Kind == sim.KindEnemy && d.Health >= 0 && d.Health < 1 {
			g.drawBar(screen, x+r.W*z/2-barWidth/2, y-barOffsetY, d.Health)
		}
	}
}

func (g *Game) drawBar(screen *ebiten.Image, x, y, ratio float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), barWidth, barHeight, barBack, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(barWidth*ratio), barHeight, barFill, false)
	vector.StrokeRect(screen, float32(x), float32(y), barWidth, barHeight, 1, color.Black, false)
}

func (g *Game) drawDarkness(screen *ebiten.Image, darkness float64) {
	if darkness <= 0 {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{B: 20, A: uint8(clamp(darkness, 0, 255))}, false)
}

func (g *Game) drawHover(screen *ebiten.Image, hud sim.HUD) {
	if !hud.HasHover {
		return
	}
	h := hud.Hover
	c := hoverDenied
	if h.Eligible {
		c = hoverOK
	}
	x, y := g.camera.ToScreen(h.Rect.X, h.Rect.Y)
	z := g.camera.Zoom()
	vector.StrokeRect(screen, float32(x), float32(y), float32(h.Rect.W*z), float32(h.Rect.H*z), 2, c, false)

	label := hoverLabel(h)
	g.drawText(screen, label, x, y-2*hudLine, c)
}

func hoverLabel(h system.Hover) string {
	switch h.Kind {
	case system.HoverRepair:
		return fmt.Sprintf("repair %s: $%d", h.Code, h.Cost)
	case system.HoverUpgrade:
		if h.Maxed {
			return fmt.Sprintf("%s lv%d: max", h.Code, h.Level)
		}
		return fmt.Sprintf("%s lv%d -> %d: $%d", h.Code, h.Level, h.Level+1, h.Cost)
	}
	return ""
}

func (g *Game) drawHUD(screen *ebiten.Image, hud sim.HUD) {
	lines := []string{
		fmt.Sprintf("HP %d/%d  STA %.0f/%.0f", hud.Health, hud.MaxHealth, hud.Stamina, hud.MaxStamina),
		fmt.Sprintf("$%d  score %d  best %d", hud.Money, hud.Score, hud.HighScore),
		fmt.Sprintf("day %d  %s  queued %d", hud.Day, hud.Phase, hud.Pending),
		fmt.Sprintf("[E] weapon lv%d dmg %d: $%d", hud.WeaponLevel, hud.Damage, hud.WeaponCost),
		fmt.Sprintf("[C] regen lv%d: $%d", hud.RegenLevel, hud.RegenCost),
		fmt.Sprintf("[Q] heal: $%d", hud.QuickHealCost),
	}
	g.drawText(screen, strings.Join(lines, "\n"), 10, 10, hudText)

	if hud.Celebrating {
		g.drawCentered(screen, fmt.Sprintf("SURVIVED NIGHT %d", hud.Day-1), 0.25, bannerText)
	}
	if g.flashTicks > 0 {
		g.drawCentered(screen, g.flash, 0.32, bannerText)
	}
	if hud.Dead {
		g.drawCentered(screen, fmt.Sprintf("YOU DIED  score %d\npress R to restart", hud.Score), 0.5, hoverDenied)
	}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = hudLine
	ebtext.Draw(screen, s, g.face, op)
}

// drawCentered draws s horizontally centered at fy of the screen height.
func (g *Game) drawCentered(screen *ebiten.Image, s string, fy float64, c color.Color) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)*fy)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = hudLine
	op.PrimaryAlign = ebtext.AlignCenter
	ebtext.Draw(screen, s, g.face, op)
}
