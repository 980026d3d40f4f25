package system

import "github.com/milk9111/duskwatch/ecs/component"

// Payloads carried in ecs.Event.Data.

type ShotFired struct {
	Source component.BulletSource
	X      float64
	Y      float64
}

type PlayerHit struct {
	Damage    int
	Remaining int
}

type EnemyKilled struct {
	Variant component.EnemyVariant
	Reward  int
}

type WaveStarted struct {
	Day      int
	Count    int
	Cooldown int
}

type DayStarted struct {
	Day int
}

type TowerBought struct {
	Code  string
	Price int
}

type TowerUpgraded struct {
	Code  string
	Level int
	Price int
}

type UpgradeBought struct {
	Kind  string
	Level int
	Price int
}
