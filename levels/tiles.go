package levels

import (
	"strings"

	"github.com/milk9111/duskwatch/ecs/component"
)

// Kind classifies a tile code.
type Kind int

const (
	KindEmpty Kind = iota
	KindGround
	KindBorder
	KindDecor
	KindDestroyedTower
	KindEnemySpawn
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindGround:
		return "ground"
	case KindBorder:
		return "border"
	case KindDecor:
		return "decor"
	case KindDestroyedTower:
		return "destroyed_tower"
	case KindEnemySpawn:
		return "enemy_spawn"
	default:
		return "unknown"
	}
}

// TileDef is what a code means to the simulation.
type TileDef struct {
	Code    string
	Kind    Kind
	Solid   bool
	Visible bool

	// TowerCode is set for destroyed towers and names the tower they repair into.
	TowerCode string
	// Variant is set for enemy placement codes.
	Variant component.EnemyVariant
}

// Codes for the destroyed tower placeholders.
const (
	TowerCannon      = "200"
	TowerArcher      = "201"
	TowerHeavyArcher = "202"
)

// Lookup resolves a code. Unrecognised codes become a visible,
// non-colliding placeholder so a bad map never stops a level loading.
func Lookup(code string) TileDef {
	code = strings.TrimSpace(code)
	def := TileDef{Code: code}
	switch code {
	case "", "0", "-1":
		def.Kind = KindEmpty
	case "1", "2", "3", "4", "5", "6", "7", "8":
		def.Kind, def.Solid, def.Visible = KindGround, true, true
	case "99":
		def.Kind, def.Solid = KindBorder, true
	case "100", "101", "102", "103", "104", "105", "106", "107", "108":
		def.Kind, def.Visible = KindDecor, true
	case TowerCannon, TowerArcher, TowerHeavyArcher:
		def.Kind, def.Visible, def.TowerCode = KindDestroyedTower, true, code
	default:
		if v, err := component.ParseEnemyVariant(code); err == nil {
			def.Kind, def.Variant = KindEnemySpawn, v
			return def
		}
		def.Kind, def.Visible = KindUnknown, true
	}
	return def
}
