// Package builder offers option-style constructors for state trees, for
// callers that prefer nesting literals over the path-based smf.Builder.
//
//	idle := builder.Leaf("idle", builder.OnRun(idleRun))
//	busy := builder.Leaf("busy", builder.OnEntry(start), builder.OnExit(stop))
//	root := builder.Composite("root", []*smf.State[*Job]{idle, busy})
package builder

import "github.com/comalice/smf"

// Option configures a state.
type Option[T any] func(*smf.State[T])

// Leaf creates a state without children.
func Leaf[T any](name string, opts ...Option[T]) *smf.State[T] {
	s := &smf.State[T]{Name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Composite creates a state owning children. The first child is the initial
// one unless WithInitial says otherwise.
func Composite[T any](name string, children []*smf.State[T], opts ...Option[T]) *smf.State[T] {
	s := &smf.State[T]{Name: name}
	for i, ch := range children {
		ch.Parent = s
		if i == 0 {
			s.Initial = ch
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OnEntry sets the action run when the state is entered.
func OnEntry[T any](fn func(T)) Option[T] {
	return func(s *smf.State[T]) { s.Entry = fn }
}

// OnExit sets the action run when the state is exited.
func OnExit[T any](fn func(T)) Option[T] {
	return func(s *smf.State[T]) { s.Exit = fn }
}

// OnRun sets the action run on every tick while the state is active.
func OnRun[T any](fn func(T) smf.Result) Option[T] {
	return func(s *smf.State[T]) { s.Run = fn }
}

// WithInitial overrides the initial child of a composite.
func WithInitial[T any](child *smf.State[T]) Option[T] {
	return func(s *smf.State[T]) { s.Initial = child }
}

// Flatten collects the given states and their ancestors without duplicates,
// parents before children. Passing every leaf yields the whole tree, ready
// for smf.Validate or production.ExportDOT.
func Flatten[T any](states ...*smf.State[T]) []*smf.State[T] {
	seen := make(map[*smf.State[T]]bool)
	var out []*smf.State[T]
	for _, s := range states {
		for _, x := range chain(s) {
			if !seen[x] {
				seen[x] = true
				out = append(out, x)
			}
		}
	}
	return out
}

// chain lists s and its ancestors, root first.
func chain[T any](s *smf.State[T]) []*smf.State[T] {
	var out []*smf.State[T]
	for x := s; x != nil; x = x.Parent {
		out = append([]*smf.State[T]{x}, out...)
	}
	return out
}
