package main

import "math"

// Camera tracks a world point and maps between world and screen space.
type Camera struct {
	PosX float64
	PosY float64

	screenW float64
	screenH float64
	zoom    float64

	// smooth is the per-tick follow factor in (0, 1]; 0 snaps.
	smooth float64
	// world bounds in pixels; 0 means unbounded
	worldW float64
	worldH float64
}

func NewCamera(screenW, screenH int, zoom float64) *Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return &Camera{
		PosX:    float64(screenW) / 2,
		PosY:    float64(screenH) / 2,
		screenW: float64(screenW),
		screenH: float64(screenH),
		zoom:    zoom,
		smooth:  0.15,
	}
}

func (c *Camera) SetScreenSize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	c.screenW = float64(w)
	c.screenH = float64(h)
}

func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = clamp(f, 0, 1)
}

func (c *Camera) Zoom() float64 { return c.zoom }

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.PosX - c.screenW/c.zoom/2, c.PosY - c.screenH/c.zoom/2
}

// ToWorld converts a screen pixel into world coordinates.
func (c *Camera) ToWorld(sx, sy int) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return vx + float64(sx)/c.zoom, vy + float64(sy)/c.zoom
}

// ToScreen converts a world point into screen coordinates.
func (c *Camera) ToScreen(wx, wy float64) (float64, float64) {
	vx, vy := c.ViewTopLeft()
	return (wx - vx) * c.zoom, (wy - vy) * c.zoom
}

// Visible reports whether a world rectangle overlaps the view.
func (c *Camera) Visible(x, y, w, h float64) bool {
	vx, vy := c.ViewTopLeft()
	vw, vh := c.screenW/c.zoom, c.screenH/c.zoom
	return x+w >= vx && x <= vx+vw && y+h >= vy && y <= vy+vh
}

// Follow eases toward the target. Call once per fixed tick.
func (c *Camera) Follow(targetX, targetY float64) {
	if c.smooth <= 0 {
		c.PosX, c.PosY = targetX, targetY
	} else {
		c.PosX += (targetX - c.PosX) * c.smooth
		c.PosY += (targetY - c.PosY) * c.smooth
	}
	c.settle()
}

// SnapTo places the camera immediately, e.g. after a restart.
func (c *Camera) SnapTo(x, y float64) {
	c.PosX, c.PosY = x, y
	c.settle()
}

// settle rounds to the pixel grid and clamps to the world.
func (c *Camera) settle() {
	c.PosX = math.Round(c.PosX*c.zoom) / c.zoom
	c.PosY = math.Round(c.PosY*c.zoom) / c.zoom
	c.PosX = clampAxis(c.PosX, c.screenW/c.zoom/2, c.worldW)
	c.PosY = clampAxis(c.PosY, c.screenH/c.zoom/2, c.worldH)
}

func clampAxis(pos, half, extent float64) float64 {
	if extent <= 0 {
		return pos
	}
	if extent-half < half {
		// world smaller than view: center on world
		return extent / 2
	}
	return clamp(pos, half, extent-half)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
