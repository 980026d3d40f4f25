package wave

import (
	"fmt"
	"math"

	"github.com/d5/tengo/v2"
)

// Plan is the size and strength of one night's wave.
type Plan struct {
	Day        int
	Count      int
	HealthMult float64
	DamageMult float64
}

// Planner decides the wave for a day.
type Planner interface {
	Plan(day int) (Plan, error)
}

// Formula scales waves linearly with the day number.
type Formula struct {
	BaseCount    int     `yaml:"base_count"`
	CountPerDay  float64 `yaml:"count_per_day"`
	HealthPerDay float64 `yaml:"health_per_day"`
	DamagePerDay float64 `yaml:"damage_per_day"`
}

func (f Formula) Plan(day int) (Plan, error) {
	d := float64(day)
	return Plan{
		Day:        day,
		Count:      f.BaseCount + int(math.Floor(f.CountPerDay*d)),
		HealthMult: 1 + f.HealthPerDay*d,
		DamageMult: 1 + f.DamagePerDay*d,
	}, nil
}

// ScriptPlanner runs a tengo script with `day` bound and reads back the
// globals `count`, `health_mult` and `damage_mult`.
type ScriptPlanner struct {
	compiled *tengo.Compiled
}

// NewScriptPlanner compiles src once; each Plan call runs a clone.
func NewScriptPlanner(src []byte) (*ScriptPlanner, error) {
	script := tengo.NewScript(src)
	if err := script.Add("day", 0); err != nil {
		return nil, fmt.Errorf("wave: bind day: %w", err)
	}
	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("wave: compile script: %w", err)
	}
	return &ScriptPlanner{compiled: compiled}, nil
}

func (p *ScriptPlanner) Plan(day int) (Plan, error) {
	c := p.compiled.Clone()
	if err := c.Set("day", day); err != nil {
		return Plan{}, fmt.Errorf("wave: set day: %w", err)
	}
	if err := c.Run(); err != nil {
		return Plan{}, fmt.Errorf("wave: run script: %w", err)
	}
	for _, name := range []string{"count", "health_mult", "damage_mult"} {
		if c.Get(name).IsUndefined() {
			return Plan{}, fmt.Errorf("wave: script does not define %q", name)
		}
	}
	plan := Plan{
		Day:        day,
		Count:      c.Get("count").Int(),
		HealthMult: c.Get("health_mult").Float(),
		DamageMult: c.Get("damage_mult").Float(),
	}
	if plan.Count < 0 || plan.HealthMult <= 0 || plan.DamageMult <= 0 {
		return Plan{}, fmt.Errorf("wave: script returned invalid plan %+v", plan)
	}
	return plan, nil
}
