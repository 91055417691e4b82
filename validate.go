package smf

import "fmt"

// MaxDepth bounds the parent chains Validate accepts. Deeper chains are
// reported as ErrCycle.
const MaxDepth = 64

// Validate checks that the given states form a well-shaped forest: no nil
// entries, parent chains that end within MaxDepth, and Initial links that
// point strictly below their owner. The engine assumes all of this and never
// checks it at runtime; call Validate from tests or at startup.
func Validate[T any](states ...*State[T]) error {
	for i, s := range states {
		if s == nil {
			return fmt.Errorf("state %d: %w", i, ErrNilState)
		}
		if depth(s, MaxDepth) > MaxDepth {
			return fmt.Errorf("state %q: %w", s, ErrCycle)
		}
	}
	for _, s := range states {
		if s.Initial == nil {
			continue
		}
		if depth(s.Initial, MaxDepth) > MaxDepth {
			return fmt.Errorf("state %q: initial %q: %w", s, s.Initial, ErrCycle)
		}
		if s.Initial == s || !isDescendantOf(s.Initial, s) {
			return fmt.Errorf("state %q: initial %q: %w", s, s.Initial, ErrInvalidInitial)
		}
	}
	return nil
}
