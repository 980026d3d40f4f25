package ecs

import (
	"fmt"
	"strings"
)

// System updates a world once per tick.
type System interface {
	Update(w *World)
}

// Scheduler runs a fixed list of systems in order, once per tick. The order
// is set at construction and never changes.
type Scheduler struct {
	systems []System
}

// NewScheduler skips nil systems.
func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{systems: make([]System, 0, len(systems))}
	for _, sys := range systems {
		if sys != nil {
			s.systems = append(s.systems, sys)
		}
	}
	return s
}

func (s *Scheduler) Update(w *World) {
	for _, sys := range s.systems {
		sys.Update(w)
	}
}

// Order lists the systems by type name, e.g. "DirectorSystem".
func (s *Scheduler) Order() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		name := fmt.Sprintf("%T", sys)
		names[i] = name[strings.LastIndex(name, ".")+1:]
	}
	return names
}
