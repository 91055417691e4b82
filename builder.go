package smf

import (
	"fmt"
	"strings"
)

// Builder assembles a state tree from dotted paths, so callers do not have to
// wire Parent and Initial pointers by hand (package-level State literals that
// point at each other are an initialization cycle in Go).
//
//	b := smf.NewBuilder[*Oven]()
//	b.State("closed").Initial("idle")
//	b.State("closed.idle").Run(idle)
//	b.State("closed.heating").Entry(heaterOn).Exit(heaterOff)
//	b.State("open")
//	table, err := b.Build()
type Builder[T any] struct {
	states  map[string]*State[T]
	order   []string
	initial map[string]string
	err     error
}

// StateBuilder provides fluent methods for configuring one state.
type StateBuilder[T any] struct {
	b     *Builder[T]
	state *State[T]
	path  string
}

// NewBuilder creates an empty builder.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{
		states:  make(map[string]*State[T]),
		initial: make(map[string]string),
	}
}

// State creates or retrieves a state by path. "parent.child" nests child
// under parent; missing parents are created on the way.
func (b *Builder[T]) State(path string) *StateBuilder[T] {
	return &StateBuilder[T]{b: b, state: b.get(path), path: path}
}

func (b *Builder[T]) get(path string) *State[T] {
	if s, ok := b.states[path]; ok {
		return s
	}
	parentPath, leaf := splitPath(path)
	if leaf == "" || strings.HasPrefix(path, ".") {
		if b.err == nil {
			b.err = fmt.Errorf("invalid state path %q", path)
		}
		return &State[T]{Name: path}
	}

	s := &State[T]{Name: path}
	if parentPath != "" {
		s.Parent = b.get(parentPath)
	}
	b.states[path] = s
	b.order = append(b.order, path)
	return s
}

// Build resolves Initial references, validates the tree and returns it.
func (b *Builder[T]) Build() (*Table[T], error) {
	if b.err != nil {
		return nil, b.err
	}
	for _, path := range b.order {
		rel, ok := b.initial[path]
		if !ok {
			continue
		}
		target, ok := b.states[path+"."+rel]
		if !ok {
			return nil, fmt.Errorf("state %q: initial %q: %w", path, rel, ErrUnknownState)
		}
		b.states[path].Initial = target
	}

	t := &Table[T]{byPath: b.states, order: make([]*State[T], 0, len(b.order))}
	for _, path := range b.order {
		t.order = append(t.order, b.states[path])
	}
	if err := Validate(t.order...); err != nil {
		return nil, err
	}
	return t, nil
}

// State creates or retrieves a child of this state.
func (sb *StateBuilder[T]) State(name string) *StateBuilder[T] {
	return sb.b.State(sb.path + "." + name)
}

// Entry sets the entry action.
func (sb *StateBuilder[T]) Entry(fn func(T)) *StateBuilder[T] {
	sb.state.Entry = fn
	return sb
}

// Run sets the run action.
func (sb *StateBuilder[T]) Run(fn func(T) Result) *StateBuilder[T] {
	sb.state.Run = fn
	return sb
}

// Exit sets the exit action.
func (sb *StateBuilder[T]) Exit(fn func(T)) *StateBuilder[T] {
	sb.state.Exit = fn
	return sb
}

// Initial names the descendant, relative to this state, entered when this
// state is targeted directly. Resolved by Build.
func (sb *StateBuilder[T]) Initial(rel string) *StateBuilder[T] {
	sb.b.initial[sb.path] = rel
	return sb
}

// Table is the result of Builder.Build.
type Table[T any] struct {
	byPath map[string]*State[T]
	order  []*State[T]
}

// Get returns the state registered under path, or nil.
func (t *Table[T]) Get(path string) *State[T] {
	return t.byPath[path]
}

// MustGet is Get that panics on unknown paths. Meant for static tables.
func (t *Table[T]) MustGet(path string) *State[T] {
	s, ok := t.byPath[path]
	if !ok {
		panic(fmt.Sprintf("smf: %v: %q", ErrUnknownState, path))
	}
	return s
}

// States returns every state in declaration order, parents before children.
func (t *Table[T]) States() []*State[T] {
	out := make([]*State[T], len(t.order))
	copy(out, t.order)
	return out
}

// splitPath splits a hierarchical path into parent and name components.
// For example, "parent.child" returns ("parent", "child").
// For "child", returns ("", "child").
func splitPath(path string) (parent, name string) {
	idx := strings.LastIndex(path, ".")
	if idx == -1 {
		return "", path
	}
	return path[:idx], path[idx+1:]
}
