// Package wave drives the day/night cycle and the night-time enemy waves.
package wave

import (
	"math"

	"github.com/milk9111/duskwatch/common"
)

// Phase is the position within one day/night cycle.
type Phase int

const (
	PhaseDay Phase = iota
	PhaseDusk
	PhaseNight
	PhaseDawn
)

func (p Phase) String() string {
	switch p {
	case PhaseDusk:
		return "dusk"
	case PhaseNight:
		return "night"
	case PhaseDawn:
		return "dawn"
	default:
		return "day"
	}
}

// CycleSpec configures the clock. Thresholds are fractions of Length.
type CycleSpec struct {
	Length           int     `yaml:"cycle_length"`
	NightStart       float64 `yaml:"night_start"`
	NightEnd         float64 `yaml:"night_end"`
	Transition       float64 `yaml:"transition"`
	MaxDarkness      float64 `yaml:"max_darkness"`
	CelebrationTicks int     `yaml:"celebration_ticks"`
}

// Clock counts ticks and derives phase, darkness and the day number.
type Clock struct {
	spec        CycleSpec
	timer       int
	day         int
	celebration int
}

// NewClock starts on day 1 at the beginning of daylight.
func NewClock(spec CycleSpec) *Clock {
	if spec.Length <= 0 {
		spec.Length = 1
	}
	return &Clock{spec: spec, day: 1}
}

// Advance moves one tick and reports whether a new day began.
func (c *Clock) Advance() bool {
	c.timer++
	if c.celebration > 0 {
		c.celebration--
	}
	if c.timer%c.spec.Length != 0 {
		return false
	}
	c.day++
	c.celebration = c.spec.CelebrationTicks
	return true
}

// Progress is the fraction of the current cycle in [0,1).
func (c *Clock) Progress() float64 {
	return float64(c.timer%c.spec.Length) / float64(c.spec.Length)
}

// Phase classifies the current progress.
func (c *Clock) Phase() Phase {
	p := c.Progress()
	s := c.spec
	switch {
	case p < s.NightStart:
		return PhaseDay
	case p < s.NightStart+s.Transition:
		return PhaseDusk
	case p < s.NightEnd:
		return PhaseNight
	case p < s.NightEnd+s.Transition:
		return PhaseDawn
	default:
		return PhaseDay
	}
}

// Darkness is the overlay intensity: zero by day, MaxDarkness at night,
// interpolated through dusk and dawn.
func (c *Clock) Darkness() float64 {
	p := c.Progress()
	s := c.spec
	switch c.Phase() {
	case PhaseDusk:
		return common.Lerp(0, s.MaxDarkness, (p-s.NightStart)/s.Transition)
	case PhaseNight:
		return s.MaxDarkness
	case PhaseDawn:
		return common.Lerp(s.MaxDarkness, 0, (p-s.NightEnd)/s.Transition)
	default:
		return 0
	}
}

// IsNight reports whether enemies may spawn.
func (c *Clock) IsNight() bool {
	return c.Phase() == PhaseNight
}

// NightTicks is the length of the full-dark phase.
func (c *Clock) NightTicks() int {
	return int(math.Round((c.spec.NightEnd - c.spec.NightStart - c.spec.Transition) * float64(c.spec.Length)))
}

func (c *Clock) Day() int             { return c.day }
func (c *Clock) Timer() int           { return c.timer }
func (c *Clock) Celebrating() bool    { return c.celebration > 0 }
func (c *Clock) CelebrationLeft() int { return c.celebration }

// SetTimer jumps the clock, for tools and tests.
func (c *Clock) SetTimer(timer int) {
	c.timer = max(0, timer)
}
