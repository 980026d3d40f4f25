package physics

import "github.com/milk9111/duskwatch/common"

// MoveX shifts r by dx, then pushes its leading edge flush against every
// solid it overlaps. It reports whether a wall was hit. A zero dx never
// resolves anything.
func MoveX(r *common.Rect, dx float64, solids []common.Rect) bool {
	r.X += dx
	hit := false
	for _, s := range solids {
		if !r.Intersects(s) {
			continue
		}
		switch {
		case dx > 0:
			r.SetRight(s.Left())
			hit = true
		case dx < 0:
			r.SetLeft(s.Right())
			hit = true
		}
	}
	return hit
}

// MoveY adds gravity to vy, shifts r by it and snaps r onto or under any
// solid it overlaps, zeroing vy. It reports whether r landed this pass.
func MoveY(r *common.Rect, vy *float64, gravity float64, solids []common.Rect) bool {
	*vy += gravity
	r.Y += *vy
	landed := false
	for _, s := range solids {
		if !r.Intersects(s) {
			continue
		}
		switch {
		case *vy > 0:
			r.SetBottom(s.Top())
			*vy = 0
			landed = true
		case *vy < 0:
			r.SetTop(s.Bottom())
			*vy = 0
		}
	}
	return landed
}

// LedgeProbe returns the small box just ahead of r's leading foot.
func LedgeProbe(r common.Rect, facingRight bool, lookAhead float64) common.Rect {
	x := r.Left() - lookAhead
	if facingRight {
		x = r.Right() + lookAhead
	}
	y := r.Bottom() + 10
	return common.Rect{X: x - 5, Y: y - 10, W: 10, H: 20}
}

// LedgeSafe reports whether there is ground ahead of r. Airborne bodies
// (vy != 0) are always considered safe.
func LedgeSafe(r common.Rect, facingRight bool, vy, lookAhead float64, ix *TileIndex) bool {
	if vy != 0 {
		return true
	}
	probe := LedgeProbe(r, facingRight, lookAhead)
	for _, s := range ix.Around(probe.CenterX()) {
		if probe.Intersects(s) {
			return true
		}
	}
	return false
}
