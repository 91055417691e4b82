package smf

// Result is returned by a Run action to say whether it consumed the tick.
type Result int

const (
	// Propagate lets the parent's Run action see the tick.
	Propagate Result = iota
	// Handled stops bubbling to ancestors.
	Handled
)

func (r Result) String() string {
	switch r {
	case Propagate:
		return "propagate"
	case Handled:
		return "handled"
	default:
		return "unknown"
	}
}

// Mode selects how much of the hierarchy the engine honours.
type Mode int

const (
	// HierarchicalInitial follows parents and descends Initial links to the
	// deepest leaf on every Init and SetState.
	HierarchicalInitial Mode = iota
	// Hierarchical follows parents but targets states exactly as given.
	Hierarchical
	// Flat ignores Parent and Initial: a transition is exit(old), entry(new).
	Flat
)

func (m Mode) String() string {
	switch m {
	case HierarchicalInitial:
		return "hierarchical-initial"
	case Hierarchical:
		return "hierarchical"
	case Flat:
		return "flat"
	default:
		return "unknown"
	}
}

func (m Mode) ancestors() bool { return m != Flat }

func (m Mode) initial() bool { return m == HierarchicalInitial }

// State is an immutable node of the state tree. Descriptors are built once by
// the caller and shared by every machine instance; Parent and Initial are
// non-owning references into the same tree. Identity is the pointer.
//
// Nil callbacks are no-ops.
type State[T any] struct {
	// Name is used for diagnostics only.
	Name string

	Parent  *State[T]
	Initial *State[T]

	Entry func(T)
	Run   func(T) Result
	Exit  func(T)
}

func (s *State[T]) String() string {
	if s == nil {
		return "<nil>"
	}
	if s.Name == "" {
		return "<unnamed>"
	}
	return s.Name
}

