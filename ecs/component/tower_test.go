package component

import (
	"testing"
	"time"

	"github.com/milk9111/duskwatch/common"
	"pgregory.net/rapid"
)

func cannon() Tower {
	return Tower{
		Code:           "200",
		Damage:         30,
		Cooldown:       800 * time.Millisecond,
		Range:          400,
		Level:          1,
		MaxLevel:       5,
		UpgradeCost:    150,
		DamageFactor:   1.3,
		CooldownFactor: 0.9,
		CooldownFloor:  100 * time.Millisecond,
		CostFactor:     1.5,
		MuzzleX:        59 * 4,
		MuzzleY:        39 * 4,
	}
}

func TestTowerUpgradeSequence(t *testing.T) {
	tw := cannon()
	want := []struct {
		dmg  int
		cd   time.Duration
		cost int
	}{
		{39, 720 * time.Millisecond, 225},
		{50, 648 * time.Millisecond, 337},
		{65, 583 * time.Millisecond, 505},
		{84, 524 * time.Millisecond, 757},
	}
	for i, w := range want {
		if !tw.Upgrade() {
			t.Fatalf("upgrade %d rejected", i+2)
		}
		if tw.Damage != w.dmg || tw.Cooldown != w.cd || tw.UpgradeCost != w.cost {
			t.Fatalf("level %d: got dmg=%d cd=%v cost=%d", tw.Level, tw.Damage, tw.Cooldown, tw.UpgradeCost)
		}
	}
	before := tw
	if tw.Upgrade() {
		t.Fatalf("upgrade past max level accepted")
	}
	if tw != before {
		t.Fatalf("rejected upgrade mutated tower")
	}
}

func TestTowerUpgradeMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tw := cannon()
		tw.Damage = rapid.IntRange(0, 200).Draw(t, "damage")
		tw.Cooldown = time.Duration(rapid.IntRange(100, 3000).Draw(t, "cd_ms")) * time.Millisecond
		tw.UpgradeCost = rapid.IntRange(0, 1000).Draw(t, "cost")
		tw.DamageFactor = rapid.Float64Range(1.0001, 3).Draw(t, "damage_factor")
		tw.CooldownFactor = rapid.Float64Range(0.1, 0.9999).Draw(t, "cooldown_factor")
		tw.CostFactor = rapid.Float64Range(1.0001, 3).Draw(t, "cost_factor")
		for tw.CanUpgrade() {
			prev := tw
			tw.Upgrade()
			if tw.Damage <= prev.Damage || tw.UpgradeCost <= prev.UpgradeCost {
				t.Fatalf("damage and cost must strictly grow: %+v -> %+v", prev, tw)
			}
			if prev.Cooldown > prev.CooldownFloor && tw.Cooldown >= prev.Cooldown {
				t.Fatalf("cooldown must strictly shrink above the floor: %v -> %v", prev.Cooldown, tw.Cooldown)
			}
			if tw.Cooldown < tw.CooldownFloor {
				t.Fatalf("cooldown under floor: %v", tw.Cooldown)
			}
		}
		if tw.Level != tw.MaxLevel {
			t.Fatalf("ended at level %d", tw.Level)
		}
	})
}

func TestTowerUpgradeSmallValuesStillGrow(t *testing.T) {
	tw := cannon()
	tw.Damage = 3
	tw.UpgradeCost = 1
	tw.Cooldown = 101 * time.Millisecond
	tw.CooldownFactor = 0.999

	if !tw.Upgrade() {
		t.Fatalf("upgrade rejected")
	}
	if tw.Damage != 4 || tw.UpgradeCost != 2 || tw.Cooldown != 100*time.Millisecond {
		t.Fatalf("got dmg=%d cost=%d cd=%v", tw.Damage, tw.UpgradeCost, tw.Cooldown)
	}
	tw.Upgrade()
	if tw.Cooldown != 100*time.Millisecond {
		t.Fatalf("cooldown left the floor: %v", tw.Cooldown)
	}
}

func TestTowerMuzzleMirrors(t *testing.T) {
	tw := cannon()
	r := common.Rect{X: 1000, Y: 500, W: 80 * 4, H: 60 * 4}
	x, y := tw.Muzzle(r, true)
	if x != 1000+236 || y != 500+156 {
		t.Fatalf("right muzzle = (%v,%v)", x, y)
	}
	x, _ = tw.Muzzle(r, false)
	if x != 1000+(320-236) {
		t.Fatalf("left muzzle x = %v", x)
	}
}

func TestNewInputEdges(t *testing.T) {
	prev := Intents{UpgradeWeapon: true}
	cur := Intents{UpgradeWeapon: true, QuickHeal: true, Fire: true}
	in := NewInput(prev, cur)
	if in.Pressed.UpgradeWeapon {
		t.Fatalf("held upgrade must not re-trigger")
	}
	if !in.Pressed.QuickHeal || !in.Pressed.Fire || !in.Held.Fire {
		t.Fatalf("unexpected input %+v", in)
	}
}

func TestParseEnemyVariant(t *testing.T) {
	for _, v := range EnemyVariants {
		got, err := ParseEnemyVariant(v.String())
		if err != nil || got != v {
			t.Fatalf("round trip %v: %v %v", v, got, err)
		}
	}
	if v, err := ParseEnemyVariant("e05"); err != nil || v != Enemy05 {
		t.Fatalf("level code parse: %v %v", v, err)
	}
	if _, err := ParseEnemyVariant("dragon"); err == nil {
		t.Fatalf("expected error for unknown variant")
	}
}
