// Package states runs finite state machines whose value lives in the world
// as a singleton component. Transition requests are applied by Apply at the
// frame boundary, firing exit and enter hooks exactly once per transition.
package states

import (
	"log"

	"github.com/automoto/dorian/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Machine binds a state component to its enter/exit hooks.
type Machine[S comparable] struct {
	name      string
	component *donburi.ComponentType[components.StateData[S]]
	initial   S
	onEnter   map[S][]ecs.System
	onExit    map[S][]ecs.System
}

// New creates a machine over the given singleton component.
func New[S comparable](name string, component *donburi.ComponentType[components.StateData[S]], initial S) *Machine[S] {
	return &Machine[S]{
		name:      name,
		component: component,
		initial:   initial,
		onEnter:   make(map[S][]ecs.System),
		onExit:    make(map[S][]ecs.System),
	}
}

// OnEnter registers systems run once each time the machine enters s.
func (m *Machine[S]) OnEnter(s S, systems ...ecs.System) *Machine[S] {
	m.onEnter[s] = append(m.onEnter[s], systems...)
	return m
}

// OnExit registers systems run once each time the machine leaves s.
func (m *Machine[S]) OnExit(s S, systems ...ecs.System) *Machine[S] {
	m.onExit[s] = append(m.onExit[s], systems...)
	return m
}

// Get returns the singleton state, creating it with the initial value if needed.
func (m *Machine[S]) Get(e *ecs.ECS) *components.StateData[S] {
	if _, ok := m.component.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(m.component))
		m.component.SetValue(ent, components.StateData[S]{
			Current: m.initial,
		})
	}

	ent, _ := m.component.First(e.World)
	return m.component.Get(ent)
}

// Current returns the active state.
func (m *Machine[S]) Current(e *ecs.ECS) S {
	return m.Get(e).Current
}

// Set requests a transition to s at the next frame boundary.
func (m *Machine[S]) Set(e *ecs.ECS, s S) {
	m.Get(e).Set(s)
}

// In returns a condition true while the machine is in s.
func (m *Machine[S]) In(s S) Condition {
	return func(e *ecs.ECS) bool {
		return m.Current(e) == s
	}
}

// Apply is the frame-boundary system. The first call enters the initial
// state; later calls apply a pending request. Requests for the state the
// machine is already in are dropped without running hooks.
func (m *Machine[S]) Apply(e *ecs.ECS) {
	state := m.Get(e)

	if !state.Entered {
		state.Entered = true
		m.run(e, m.onEnter[state.Current])
	}

	if !state.Pending {
		return
	}
	next := state.Next
	state.Pending = false
	if next == state.Current {
		return
	}

	prev := state.Current
	m.run(e, m.onExit[prev])
	// Hooks may look the state up again, so re-fetch before writing.
	m.Get(e).Current = next
	log.Printf("%s: %v -> %v", m.name, prev, next)
	m.run(e, m.onEnter[next])
}

func (m *Machine[S]) run(e *ecs.ECS, systems []ecs.System) {
	for _, sys := range systems {
		sys(e)
	}
}
