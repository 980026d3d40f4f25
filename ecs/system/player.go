package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/duskwatch/ecs"
	"github.com/milk9111/duskwatch/ecs/component"
	"github.com/milk9111/duskwatch/physics"
)

// PlayerSystem applies input, stamina, regeneration, invincibility expiry
// and movement to the player, in that order.
type PlayerSystem struct {
	tiles *physics.TileIndex
	log   *zap.Logger
}

func NewPlayerSystem(tiles *physics.TileIndex, log *zap.Logger) *PlayerSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlayerSystem{tiles: tiles, log: log}
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	p, ok := findPlayer(w)
	if !ok || p.player == nil {
		return
	}
	in, ok := ecs.Get(w, p.entity, component.InputComponent.Kind())
	if !ok {
		in = &component.Input{}
	}
	now := w.Time().Now
	pl, b, h := p.player, p.body, p.health

	if !h.Dead {
		s.applyInput(w, pl, b, h, in)
	}
	manageStamina(pl)
	if pl.Ledger.RegenLevel > 0 && !h.Dead && now-pl.LastRegen >= pl.RegenEvery {
		h.Heal(pl.Ledger.RegenLevel)
		pl.LastRegen = now
	}
	if pl.Invincible && now-pl.HitAt >= pl.InvincibleFor {
		pl.Invincible = false
	}

	physics.MoveX(&b.Rect, pl.MoveX*pl.Speed, s.tiles.Nearby(b.Rect))
	b.OnGround = physics.MoveY(&b.Rect, &b.Vel.Y, b.Gravity, s.tiles.Nearby(b.Rect))
	b.Vel.X = pl.MoveX * pl.Speed
	pl.Status = status(pl, b, h)
}

func (s *PlayerSystem) applyInput(w *ecs.World, pl *component.Player, b *component.Body, h *component.Health, in *component.Input) {
	now := w.Time().Now
	moving := in.Held.Left || in.Held.Right

	pl.Sprinting = moving && in.Held.Sprint
	pl.Speed = pl.WalkSpeed
	if pl.Sprinting {
		pl.Speed = pl.SprintSpeed
	}

	if in.Held.Fire && now-pl.LastShot >= pl.ShotCooldown {
		x, y := b.Rect.CenterX(), b.Rect.CenterY()+pl.BulletOffsetY
		s.requestBullet(w, component.BulletSpawnRequest{
			X:           x,
			Y:           y,
			FacingRight: b.FacingRight,
			Damage:      pl.Ledger.Damage,
			Speed:       pl.BulletSpeed,
			Source:      component.FromPlayer,
		})
		pl.LastShot = now
		w.Events().Push(ecs.Event{Type: ecs.EventShotFired, Data: ShotFired{Source: component.FromPlayer, X: x, Y: y}})
	}

	s.applyUpgrades(w, pl, h, in)

	switch {
	case in.Held.Right:
		pl.MoveX = 1
		b.FacingRight = true
	case in.Held.Left:
		pl.MoveX = -1
		b.FacingRight = false
	default:
		pl.MoveX = 0
	}

	if in.Held.Jump && b.Vel.Y == 0 {
		b.Vel.Y = pl.JumpSpeed
	}
}

func (s *PlayerSystem) applyUpgrades(w *ecs.World, pl *component.Player, h *component.Health, in *component.Input) {
	l := &pl.Ledger
	if in.Pressed.UpgradeWeapon {
		price := l.WeaponCost
		if l.UpgradeWeapon() {
			s.bought(w, "weapon", l.WeaponLevel, price)
		}
	}
	if in.Pressed.UpgradeRegen {
		price := l.RegenCost
		if l.UpgradeRegen() {
			s.bought(w, "regen", l.RegenLevel, price)
		}
	}
	if in.Pressed.QuickHeal {
		price := l.QuickHealCost
		if l.QuickHeal(h.Full()) {
			h.Restore()
			s.bought(w, "quick_heal", 0, price)
		}
	}
}

func (s *PlayerSystem) bought(w *ecs.World, kind string, level, price int) {
	w.Events().Push(ecs.Event{Type: ecs.EventUpgradeBought, Data: UpgradeBought{Kind: kind, Level: level, Price: price}})
	s.log.Info("upgrade bought", zap.String("kind", kind), zap.Int("level", level), zap.Int("price", price))
}

func (s *PlayerSystem) requestBullet(w *ecs.World, req component.BulletSpawnRequest) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.BulletSpawnRequestComponent.Kind(), &req); err != nil {
		s.log.Error("bullet request", zap.Error(err))
	}
}

func manageStamina(pl *component.Player) {
	if pl.Sprinting {
		pl.Stamina -= pl.StaminaDrain
		if pl.Stamina <= 0 {
			pl.Stamina = 0
			pl.Sprinting = false
			pl.Speed = pl.WalkSpeed
		}
		return
	}
	if pl.Stamina < pl.MaxStamina {
		pl.Stamina = min(pl.MaxStamina, pl.Stamina+pl.StaminaRegen)
	}
}

func status(pl *component.Player, b *component.Body, h *component.Health) component.PlayerStatus {
	switch {
	case h.Dead:
		return component.PlayerDead
	case b.Vel.Y < 0:
		return component.PlayerJump
	case b.Vel.Y > 0 && !b.OnGround:
		return component.PlayerFall
	case pl.MoveX != 0:
		return component.PlayerRun
	default:
		return component.PlayerIdle
	}
}
