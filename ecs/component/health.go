package component

// Health tracks hit points.
//
// Invariant: 0 <= Current <= Max, and Dead is set exactly when Current
// first reaches zero.
type Health struct {
	Current int
	Max     int
	Dead    bool
}

// NewHealth returns full health.
func NewHealth(max int) Health {
	if max < 1 {
		max = 1
	}
	return Health{Current: max, Max: max}
}

// Damage subtracts amount and reports whether this call killed the owner.
// Dead owners and non-positive amounts are ignored.
func (h *Health) Damage(amount int) bool {
	if h == nil || h.Dead || amount <= 0 {
		return false
	}
	h.Current -= amount
	if h.Current <= 0 {
		h.Current = 0
		h.Dead = true
		return true
	}
	return false
}

// Heal adds amount, capped at Max. Dead owners stay dead.
func (h *Health) Heal(amount int) {
	if h == nil || h.Dead || amount <= 0 {
		return
	}
	h.Current = min(h.Max, h.Current+amount)
}

// Restore sets Current to Max.
func (h *Health) Restore() {
	if h == nil || h.Dead {
		return
	}
	h.Current = h.Max
}

// Full reports whether Current equals Max.
func (h *Health) Full() bool {
	return h != nil && h.Current >= h.Max
}

// Ratio returns Current/Max in [0,1].
func (h *Health) Ratio() float64 {
	if h == nil || h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

var HealthComponent = NewComponent[Health]()
