// Package economy tracks the player's currency, score and upgrade prices.
package economy

// Curve holds the starting prices and growth factors of the upgrade shop.
type Curve struct {
	StartingMoney      int     `yaml:"starting_money"`
	Damage             int     `yaml:"damage"`
	WeaponCost         int     `yaml:"weapon_cost"`
	WeaponDamageFactor float64 `yaml:"weapon_damage_factor"`
	WeaponCostFactor   float64 `yaml:"weapon_cost_factor"`
	RegenCost          int     `yaml:"regen_cost"`
	RegenCostFactor    float64 `yaml:"regen_cost_factor"`
	QuickHealCost      int     `yaml:"quick_heal_cost"`
	KillRewardMin      int     `yaml:"kill_reward_min"`
	KillRewardMax      int     `yaml:"kill_reward_max"`
}

// Ledger is the player's wallet and upgrade state.
//
// Invariant: Money never goes negative; every successful purchase deducts
// exactly the price quoted before the purchase.
type Ledger struct {
	Money int
	Score int

	Damage      int
	WeaponLevel int
	WeaponCost  int

	RegenLevel int
	RegenCost  int

	QuickHealCost int

	curve Curve
}

// NewLedger returns a ledger at level-one prices.
func NewLedger(c Curve) Ledger {
	return Ledger{
		Money:         max(0, c.StartingMoney),
		Damage:        c.Damage,
		WeaponLevel:   1,
		WeaponCost:    c.WeaponCost,
		RegenCost:     c.RegenCost,
		QuickHealCost: c.QuickHealCost,
		curve:         c,
	}
}

// Earn credits a kill reward to both money and score.
func (l *Ledger) Earn(amount int) {
	if l == nil || amount <= 0 {
		return
	}
	l.Money += amount
	l.Score += amount
}

// CanAfford reports whether cost can be paid.
func (l *Ledger) CanAfford(cost int) bool {
	return l != nil && cost >= 0 && l.Money >= cost
}

// Spend deducts cost if affordable. It is a no-op returning false otherwise.
func (l *Ledger) Spend(cost int) bool {
	if !l.CanAfford(cost) {
		return false
	}
	l.Money -= cost
	return true
}

// UpgradeWeapon buys the next damage tier.
func (l *Ledger) UpgradeWeapon() bool {
	if !l.Spend(l.WeaponCost) {
		return false
	}
	l.WeaponLevel++
	l.Damage = int(float64(l.Damage) * l.curve.WeaponDamageFactor)
	l.WeaponCost = int(float64(l.WeaponCost) * l.curve.WeaponCostFactor)
	return true
}

// UpgradeRegen buys one more point of passive regeneration.
func (l *Ledger) UpgradeRegen() bool {
	if !l.Spend(l.RegenCost) {
		return false
	}
	l.RegenLevel++
	l.RegenCost = int(float64(l.RegenCost) * l.curve.RegenCostFactor)
	return true
}

// QuickHeal charges for a full heal. Nothing is charged when the player is
// already at full health.
func (l *Ledger) QuickHeal(fullHealth bool) bool {
	if fullHealth {
		return false
	}
	return l.Spend(l.QuickHealCost)
}

// RewardRange returns the inclusive kill reward bounds.
func (l *Ledger) RewardRange() (int, int) {
	if l == nil {
		return 0, 0
	}
	return l.curve.KillRewardMin, l.curve.KillRewardMax
}
