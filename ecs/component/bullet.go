package component

import "time"

type BulletSource int

const (
	FromPlayer BulletSource = iota
	FromTower
)

// Bullet is a projectile. Horizontal speed is fixed; arcing bullets gain
// Gravity on their vertical velocity each tick.
type Bullet struct {
	Speed    float64
	Gravity  float64
	Damage   int
	Source   BulletSource
	Born     time.Duration
	Lifetime time.Duration
	MaxY     float64
}

var BulletComponent = NewComponent[Bullet]()

// BulletSpawnRequest asks the spawn system to create a bullet centred on
// (X, Y). Shooters add it to a fresh entity instead of touching the bullet
// set directly.
type BulletSpawnRequest struct {
	X           float64
	Y           float64
	FacingRight bool
	Damage      int
	Speed       float64
	Gravity     float64
	Source      BulletSource
}

var BulletSpawnRequestComponent = NewComponent[BulletSpawnRequest]()
