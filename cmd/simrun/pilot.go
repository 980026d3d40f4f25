package main

import (
	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/ecs/system"
	"github.com/milk9111/duskwatch/sim"
)

const (
	patrolTicks = 300
	jumpEvery   = 90
	shopEvery   = 240
)

// pilot is a scripted player: it paces back and forth firing, hops now and
// then, and spends money every few seconds.
type pilot struct {
	tick int
}

func (p *pilot) next(w *ecs.World, snap sim.Snapshot) component.Intents {
	p.tick++
	in := component.Intents{Fire: true}

	if (p.tick/patrolTicks)%2 == 0 {
		in.Right = true
	} else {
		in.Left = true
	}
	in.Jump = p.tick%jumpEvery == 0

	hud := snap.HUD
	if hud.Dead {
		in.Restart = true
		return in
	}
	if p.tick%shopEvery != 0 {
		return in
	}
	if x, y, ok := affordableRuin(w, snap); ok {
		in.Click = true
		in.PointerX, in.PointerY = x, y
		return in
	}
	switch {
	case hud.Health < hud.MaxHealth/2 && hud.Money >= hud.QuickHealCost:
		in.QuickHeal = true
	case hud.Money >= hud.WeaponCost:
		in.UpgradeWeapon = true
	case hud.Money >= hud.RegenCost:
		in.UpgradeRegen = true
	}
	return in
}

// affordableRuin returns the center of the first ruin the player can repair.
func affordableRuin(w *ecs.World, snap sim.Snapshot) (float64, float64, bool) {
	for _, d := range snap.Drawables {
		if d.Kind != sim.KindRuin {
			continue
		}
		x, y := d.Rect.CenterX(), d.Rect.CenterY()
		if h, ok := system.FindHover(w, x, y); ok && h.Eligible {
			return x, y, true
		}
	}
	return 0, 0, false
}
