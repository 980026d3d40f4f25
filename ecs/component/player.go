package component

import (
	"time"

	"github.com/milk9111/duskwatch/economy"
)

type PlayerStatus int

const (
	PlayerIdle PlayerStatus = iota
	PlayerRun
	PlayerJump
	PlayerFall
	PlayerDead
)

func (s PlayerStatus) String() string {
	switch s {
	case PlayerRun:
		return "run"
	case PlayerJump:
		return "jump"
	case PlayerFall:
		return "fall"
	case PlayerDead:
		return "dead"
	default:
		return "idle"
	}
}

// Player is the controllable character's movement, stamina, timers and
// wallet.
type Player struct {
	WalkSpeed   float64
	SprintSpeed float64
	JumpSpeed   float64
	Speed       float64
	MoveX       float64

	Stamina      float64
	MaxStamina   float64
	StaminaDrain float64
	StaminaRegen float64
	Sprinting    bool

	Invincible    bool
	HitAt         time.Duration
	InvincibleFor time.Duration
	Knockback     float64

	RegenEvery time.Duration
	LastRegen  time.Duration

	ShotCooldown  time.Duration
	LastShot      time.Duration
	BulletSpeed   float64
	BulletOffsetY float64

	Status PlayerStatus
	Ledger economy.Ledger
}

var PlayerComponent = NewComponent[Player]()
