package ecs

import "fmt"

// Entity packs a slot id (low half) and the slot's generation (high half),
// so a handle to a destroyed entity never aliases the slot's next tenant.
type Entity uint64

type (
	entityID   uint32
	generation uint32
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID           { return entityID(e) }
func (e Entity) generation() generation { return generation(e >> 32) }

// String renders the handle as slot:generation for logs.
func (e Entity) String() string {
	return fmt.Sprintf("%d:%d", e.id(), e.generation())
}

// Valid reports whether the handle was ever issued. Slot 0 is reserved.
func (e Entity) Valid() bool {
	return e.id() > 0
}
