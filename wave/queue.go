package wave

import (
	"github.com/milk9111/duskwatch/common"
	"github.com/milk9111/duskwatch/ecs/component"
)

// Entry is one pending spawn.
type Entry struct {
	Variant    component.EnemyVariant
	HealthMult float64
	DamageMult float64
}

// Build draws plan.Count variants uniformly from pool.
func Build(plan Plan, pool []component.EnemyVariant, rng *common.RNG) []Entry {
	if len(pool) == 0 || plan.Count <= 0 {
		return nil
	}
	out := make([]Entry, plan.Count)
	for i := range out {
		out[i] = Entry{
			Variant:    pool[rng.Intn(len(pool))],
			HealthMult: plan.HealthMult,
			DamageMult: plan.DamageMult,
		}
	}
	return out
}

// Cadence spreads count spawns over window ticks, never faster than one
// per floor ticks.
func Cadence(window, count, floor int) int {
	if count <= 0 {
		return max(1, floor)
	}
	return max(floor, window/count)
}

// Queue releases entries one at a time on a fixed cooldown.
type Queue struct {
	entries  []Entry
	cooldown int
	timer    int
}

func NewQueue(entries []Entry, cooldown int) *Queue {
	return &Queue{entries: entries, cooldown: max(1, cooldown)}
}

// Tick accumulates one tick and pops the next entry when the cooldown
// is reached.
func (q *Queue) Tick() (Entry, bool) {
	if q == nil || len(q.entries) == 0 {
		return Entry{}, false
	}
	q.timer++
	if q.timer < q.cooldown {
		return Entry{}, false
	}
	q.timer = 0
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e, true
}

func (q *Queue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.entries)
}

func (q *Queue) Cooldown() int {
	if q == nil {
		return 0
	}
	return q.cooldown
}
