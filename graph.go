package smf

// Tree walks. All of them terminate by reaching a nil parent; Validate is the
// place to check that for a given table.

// isDescendantOf reports whether ancestor is s or one of its parents.
func isDescendantOf[T any](s, ancestor *State[T]) bool {
	for x := s; x != nil; x = x.Parent {
		if x == ancestor {
			return true
		}
	}
	return false
}

// childOf returns the state on the path from s to the root whose parent is
// parent. A nil parent yields the root of s. Nil if parent is not above s.
func childOf[T any](s, parent *State[T]) *State[T] {
	for x := s; x != nil; x = x.Parent {
		if x.Parent == parent {
			return x
		}
	}
	return nil
}

// lcaOf returns the nearest strict ancestor of source that also contains
// dest, or nil when the two live in different trees.
func lcaOf[T any](source, dest *State[T]) *State[T] {
	for a := source.Parent; a != nil; a = a.Parent {
		if isDescendantOf(dest, a) {
			return a
		}
	}
	return nil
}

// rootOf returns the topmost ancestor of s.
func rootOf[T any](s *State[T]) *State[T] {
	for s.Parent != nil {
		s = s.Parent
	}
	return s
}

// deepestInitial follows Initial links down to a state that has none.
func deepestInitial[T any](s *State[T]) *State[T] {
	for s.Initial != nil {
		s = s.Initial
	}
	return s
}

// topmostOf picks the exclusive boundary of a transition from source to
// target. Neither the entry nor the exit action of the returned state runs.
func topmostOf[T any](source, target *State[T]) *State[T] {
	switch {
	case source != target && source.Parent == target.Parent:
		return source.Parent
	case isDescendantOf(source, target):
		return target
	case isDescendantOf(target, source):
		return source
	default:
		return lcaOf(source, target)
	}
}

// depth counts the ancestors of s, stopping early once limit is exceeded.
func depth[T any](s *State[T], limit int) int {
	n := 0
	for x := s.Parent; x != nil; x = x.Parent {
		n++
		if n > limit {
			break
		}
	}
	return n
}
