package component

import "fmt"

// EnemyVariant selects a row of the enemy stat table.
type EnemyVariant int

const (
	Enemy01 EnemyVariant = iota + 1
	Enemy02
	Enemy03
	Enemy04
	Enemy05
	Enemy06
)

// EnemyVariants lists every variant in table order.
var EnemyVariants = []EnemyVariant{Enemy01, Enemy02, Enemy03, Enemy04, Enemy05, Enemy06}

func (v EnemyVariant) String() string {
	if v < Enemy01 || v > Enemy06 {
		return fmt.Sprintf("enemy?%d", int(v))
	}
	return fmt.Sprintf("enemy%02d", int(v))
}

// ParseEnemyVariant accepts "enemy01".."enemy06" and the level codes
// "e01".."e06".
func ParseEnemyVariant(s string) (EnemyVariant, error) {
	for _, v := range EnemyVariants {
		if s == v.String() || s == fmt.Sprintf("e%02d", int(v)) {
			return v, nil
		}
	}
	return 0, fmt.Errorf("component: unknown enemy variant %q", s)
}

type EnemyMode int

const (
	EnemyPatrol EnemyMode = iota
	EnemyChase
)

func (m EnemyMode) String() string {
	if m == EnemyChase {
		return "chase"
	}
	return "patrol"
}

// Enemy is the AI state and combat stats of a hostile.
type Enemy struct {
	Variant EnemyVariant
	Mode    EnemyMode

	WalkSpeed  float64
	ChaseSpeed float64
	Speed      float64
	JumpSpeed  float64
	Damage     int
	Jumper     bool

	SightRange     float64
	ClimbThreshold float64
	LedgeLookAhead float64
}

var EnemyComponent = NewComponent[Enemy]()
