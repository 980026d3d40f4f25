package component

import (
	"time"

	"github.com/milk9111/duskwatch/common"
)

// Tower is an automated defensive turret.
type Tower struct {
	Code string
	Name string

	Damage        int
	Cooldown      time.Duration
	Range         float64
	BulletSpeed   float64
	BulletGravity float64
	LastShot      time.Duration

	// Muzzle offset from the sprite's top-left corner, already scaled.
	MuzzleX float64
	MuzzleY float64

	Level          int
	MaxLevel       int
	UpgradeCost    int
	DamageFactor   float64
	CooldownFactor float64
	CooldownFloor  time.Duration
	CostFactor     float64
}

// CanUpgrade reports whether another level is available.
func (t *Tower) CanUpgrade() bool {
	return t != nil && t.Level < t.MaxLevel
}

// Upgrade raises the tower one level. The caller charges UpgradeCost first.
// Damage and cost always grow by at least one; cooldown shrinks by at least
// a millisecond until it reaches the floor.
func (t *Tower) Upgrade() bool {
	if !t.CanUpgrade() {
		return false
	}
	t.Level++
	t.Damage = max(t.Damage+1, int(float64(t.Damage)*t.DamageFactor))
	if t.Cooldown > t.CooldownFloor {
		cd := time.Duration(float64(t.Cooldown) * t.CooldownFactor).Truncate(time.Millisecond)
		t.Cooldown = max(t.CooldownFloor, min(t.Cooldown-time.Millisecond, cd))
	}
	t.UpgradeCost = max(t.UpgradeCost+1, int(float64(t.UpgradeCost)*t.CostFactor))
	return true
}

// Ready reports whether the cooldown has elapsed at now.
func (t *Tower) Ready(now time.Duration) bool {
	return now-t.LastShot >= t.Cooldown
}

// Muzzle returns the bullet spawn point for a tower occupying r. The
// horizontal offset is mirrored when the tower faces left.
func (t *Tower) Muzzle(r common.Rect, facingRight bool) (float64, float64) {
	x := r.Left() + t.MuzzleX
	if !facingRight {
		x = r.Left() + (r.W - t.MuzzleX)
	}
	return x, r.Top() + t.MuzzleY
}

var TowerComponent = NewComponent[Tower]()
