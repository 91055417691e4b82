package smf

// Ctx is the mutable bookkeeping of one machine instance. Embed it in the
// per-instance struct and pass that struct's pointer to Init:
//
//	type Door struct {
//		smf.Ctx[*Door]
//		open bool
//	}
//
// The zero value is ready for Init. Ctx is not safe for concurrent use.
type Ctx[T any] struct {
	current   *State[T]
	previous  *State[T]
	executing *State[T]
	// active is the deepest state whose entry action has started. It equals
	// current except while an entry or exit cascade is in flight.
	active *State[T]

	terminateVal int32

	newState  bool
	terminate bool
	isExit    bool
	handled   bool

	// transitions counts committed transitions. Cascades compare it across a
	// callback to detect a SetState issued from inside that callback.
	transitions uint64

	self        T
	initialized bool
	cfg         config
}

// Object is satisfied by any pointer to a struct embedding Ctx[T].
type Object[T any] interface {
	smfCtx() *Ctx[T]
}

func (c *Ctx[T]) smfCtx() *Ctx[T] { return c }

// Current is the state the machine is in; a leaf once a transition completes.
func (c *Ctx[T]) Current() *State[T] { return c.current }

// Previous is the state before the last committed transition.
func (c *Ctx[T]) Previous() *State[T] { return c.previous }

// Executing is the state whose action is running right now. Outside of
// callbacks it equals Current.
func (c *Ctx[T]) Executing() *State[T] { return c.executing }

// Terminated reports whether SetTerminate has been called since Init.
func (c *Ctx[T]) Terminated() bool { return c.terminate }

// TerminateVal returns the code passed to the last SetTerminate.
func (c *Ctx[T]) TerminateVal() int32 { return c.terminateVal }

// Mode returns the semantics selected at Init.
func (c *Ctx[T]) Mode() Mode { return c.cfg.mode }

// Transitions returns the number of transitions this Ctx has committed. It is
// never reset, not even by Init.
func (c *Ctx[T]) Transitions() uint64 { return c.transitions }

// CtxOf returns the Ctx embedded in obj. Drivers living outside the engine
// use it to poll Terminated or Current without knowing the concrete type.
func CtxOf[T Object[T]](obj T) *Ctx[T] {
	return obj.smfCtx()
}
