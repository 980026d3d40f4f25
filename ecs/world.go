package ecs

import (
	"time"

	"github.com/milk9111/duskwatch/ecs/component"
)

// Time is the simulation clock. Now only moves when the world is advanced,
// so every timer in the simulation is reproducible.
type Time struct {
	Tick uint64
	Now  time.Duration
	Step time.Duration
}

// World owns entities, component storage, pending events and the clock.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue
	time     Time
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: make(map[component.ComponentID]*SparseSet)}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components. It reports
// false for handles that are already dead.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.Remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns the live entities in creation order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return append([]Entity(nil), w.entities.order...)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Time returns the current simulation clock.
func (w *World) Time() Time {
	if w == nil {
		return Time{}
	}
	return w.time
}

// Advance moves the clock forward by one tick of length step.
func (w *World) Advance(step time.Duration) {
	if w == nil {
		return
	}
	w.time.Tick++
	w.time.Step = step
	w.time.Now += step
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}
