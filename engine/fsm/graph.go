package fsm

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/Caizj-lg/block-breaker-game/events"
)

// graphFile is the TOML layout of a state graph
type graphFile struct {
	Initial string                `toml:"initial"`
	States  map[string]*stateDecl `toml:"states"`
}

type stateDecl struct {
	Parent      string       `toml:"parent"`
	OnEnter     []actionDecl `toml:"on_enter"`
	OnUpdate    []actionDecl `toml:"on_update"`
	OnExit      []actionDecl `toml:"on_exit"`
	Transitions []edgeDecl   `toml:"transitions"`
}

// edgeDecl: Trigger is an event name or "Tick"; GuardArgs go to a guard factory
type edgeDecl struct {
	Trigger   string         `toml:"trigger"`
	Target    string         `toml:"target"`
	Guard     string         `toml:"guard"`
	GuardArgs map[string]any `toml:"guard_args"`
}

type actionDecl struct {
	Action string         `toml:"action"`
	Args   map[string]any `toml:"args"`
}

// state is a compiled graph node
type state[T any] struct {
	name   string
	parent *state[T]
	// chain runs from the outermost ancestor down to this state
	chain []*state[T]

	onEnter  []boundAction[T]
	onUpdate []boundAction[T]
	onExit   []boundAction[T]
	edges    []edge[T]
}

type edge[T any] struct {
	target  *state[T]
	trigger events.EventType
	guard   GuardFunc[T] // nil passes
}

type boundAction[T any] struct {
	fn   ActionFunc[T]
	args map[string]any
}

// LoadConfig replaces the graph with the one described by data
// Every state, parent, event, guard and action name must resolve
func (m *Machine[T]) LoadConfig(data []byte) error {
	var file graphFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("unmarshal state graph: %w", err)
	}

	states := make(map[string]*state[T], len(file.States))
	for name := range file.States {
		states[name] = &state[T]{name: name}
	}

	for name, decl := range file.States {
		s := states[name]
		if decl.Parent != "" {
			p, ok := states[decl.Parent]
			if !ok {
				return fmt.Errorf("state %q: unknown parent %q", name, decl.Parent)
			}
			s.parent = p
		}

		var err error
		if s.onEnter, err = m.bindActions(decl.OnEnter); err != nil {
			return fmt.Errorf("state %q on_enter: %w", name, err)
		}
		if s.onUpdate, err = m.bindActions(decl.OnUpdate); err != nil {
			return fmt.Errorf("state %q on_update: %w", name, err)
		}
		if s.onExit, err = m.bindActions(decl.OnExit); err != nil {
			return fmt.Errorf("state %q on_exit: %w", name, err)
		}
		for _, e := range decl.Transitions {
			compiled, err := m.bindEdge(e, states)
			if err != nil {
				return fmt.Errorf("state %q: %w", name, err)
			}
			s.edges = append(s.edges, compiled)
		}
	}

	for _, s := range states {
		for p := s; p != nil; p = p.parent {
			s.chain = append(s.chain, p)
			if len(s.chain) > len(states) {
				return fmt.Errorf("state %q: cyclic parent chain", s.name)
			}
		}
		for i, j := 0, len(s.chain)-1; i < j; i, j = i+1, j-1 {
			s.chain[i], s.chain[j] = s.chain[j], s.chain[i]
		}
	}

	initial, ok := states[file.Initial]
	if !ok {
		return fmt.Errorf("initial state %q not declared", file.Initial)
	}

	m.states = states
	m.initial = initial
	m.current = nil
	return nil
}

func (m *Machine[T]) bindActions(decls []actionDecl) ([]boundAction[T], error) {
	bound := make([]boundAction[T], 0, len(decls))
	for _, d := range decls {
		fn, ok := m.actions[d.Action]
		if !ok {
			return nil, fmt.Errorf("unknown action %q", d.Action)
		}
		bound = append(bound, boundAction[T]{fn: fn, args: d.Args})
	}
	return bound, nil
}

func (m *Machine[T]) bindEdge(d edgeDecl, states map[string]*state[T]) (edge[T], error) {
	target, ok := states[d.Target]
	if !ok {
		return edge[T]{}, fmt.Errorf("unknown target %q", d.Target)
	}
	trigger, ok := events.GetEventType(d.Trigger)
	if !ok {
		return edge[T]{}, fmt.Errorf("unknown event %q", d.Trigger)
	}

	e := edge[T]{target: target, trigger: trigger}
	if d.Guard == "" {
		return e, nil
	}
	// Factories take precedence over plain guards of the same name
	if factory, ok := m.guardFactories[d.Guard]; ok {
		g, err := factory(m, d.GuardArgs)
		if err != nil {
			return edge[T]{}, fmt.Errorf("guard %q: %w", d.Guard, err)
		}
		e.guard = g
		return e, nil
	}
	if g, ok := m.guards[d.Guard]; ok {
		e.guard = g
		return e, nil
	}
	return edge[T]{}, fmt.Errorf("unknown guard %q", d.Guard)
}
