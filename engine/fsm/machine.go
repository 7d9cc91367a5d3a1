// Package fsm runs hierarchical state graphs declared in TOML
package fsm

import (
	"errors"
	"time"

	"github.com/Caizj-lg/block-breaker-game/events"
)

// ErrNotLoaded is returned by Init before a graph has been loaded
var ErrNotLoaded = errors.New("fsm: no state graph loaded")

// GuardFunc reports whether a transition may fire
type GuardFunc[T any] func(ctx T) bool

// ActionFunc runs on state entry, exit or update with the args declared in the graph
type ActionFunc[T any] func(ctx T, args map[string]any)

// GuardFactoryFunc builds a guard from the guard_args of one transition
type GuardFactoryFunc[T any] func(m *Machine[T], args map[string]any) (GuardFunc[T], error)

// Machine is a hierarchical state machine over context type T
// Events bubble from the active state up through its ancestors; the first
// transition whose guard passes wins. Not safe for concurrent use.
type Machine[T any] struct {
	states  map[string]*state[T]
	initial *state[T]
	current *state[T]
	elapsed time.Duration

	guards         map[string]GuardFunc[T]
	guardFactories map[string]GuardFactoryFunc[T]
	actions        map[string]ActionFunc[T]

	// OnTransition observes every completed state change
	OnTransition func(from, to string)
}

func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		guards:         make(map[string]GuardFunc[T]),
		guardFactories: make(map[string]GuardFactoryFunc[T]),
		actions:        make(map[string]ActionFunc[T]),
	}
}

// Registrations must happen before LoadConfig resolves names

func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guards[name] = fn
}

func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactories[name] = factory
}

func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actions[name] = fn
}

// Init enters the initial state, running on_enter from the outermost ancestor down
func (m *Machine[T]) Init(ctx T) error {
	if m.initial == nil {
		return ErrNotLoaded
	}
	m.current = m.initial
	m.elapsed = 0
	for _, s := range m.current.chain {
		run(ctx, s.onEnter)
	}
	return nil
}

// Update accumulates dt, runs the active state's on_update and evaluates Tick transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.current == nil {
		return
	}
	m.elapsed += dt
	run(ctx, m.current.onUpdate)
	m.fire(ctx, events.EventTick)
}

// HandleEvent routes an external event; Tick is reserved for Update
// Returns true if a transition fired
func (m *Machine[T]) HandleEvent(ctx T, et events.EventType) bool {
	if m.current == nil || et == events.EventTick {
		return false
	}
	return m.fire(ctx, et)
}

func (m *Machine[T]) fire(ctx T, et events.EventType) bool {
	for s := m.current; s != nil; s = s.parent {
		for _, e := range s.edges {
			if e.trigger != et {
				continue
			}
			if e.guard == nil || e.guard(ctx) {
				m.enter(ctx, e.target)
				return true
			}
		}
	}
	return false
}

// enter exits up to the deepest shared ancestor, then enters down to target
func (m *Machine[T]) enter(ctx T, target *state[T]) {
	from := m.current
	if from == target {
		return
	}

	shared := 0
	for shared < len(from.chain) && shared < len(target.chain) && from.chain[shared] == target.chain[shared] {
		shared++
	}
	for i := len(from.chain) - 1; i >= shared; i-- {
		run(ctx, from.chain[i].onExit)
	}
	for _, s := range target.chain[shared:] {
		run(ctx, s.onEnter)
	}

	m.current = target
	m.elapsed = 0
	if m.OnTransition != nil {
		m.OnTransition(from.name, target.name)
	}
}

// Reset exits the whole active chain and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.current != nil {
		for i := len(m.current.chain) - 1; i >= 0; i-- {
			run(ctx, m.current.chain[i].onExit)
		}
		m.current = nil
	}
	return m.Init(ctx)
}

// CurrentStateName returns the active state, empty before Init
func (m *Machine[T]) CurrentStateName() string {
	if m.current == nil {
		return ""
	}
	return m.current.name
}

// TimeInState is the time passed to Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.elapsed
}

// IsIn reports whether name is the active state or one of its ancestors
func (m *Machine[T]) IsIn(name string) bool {
	if m.current == nil {
		return false
	}
	for _, s := range m.current.chain {
		if s.name == name {
			return true
		}
	}
	return false
}

func run[T any](ctx T, actions []boundAction[T]) {
	for _, a := range actions {
		a.fn(ctx, a.args)
	}
}
