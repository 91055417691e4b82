package smf

import (
	"context"
	"log/slog"
)

// Init binds obj to initial and runs the entry actions from the root of its
// tree down to the starting leaf. With HierarchicalInitial the starting leaf
// is found by following Initial links from initial.
//
// Init resets termination and every internal flag, so it is also the way to
// restart a terminated machine. If an entry action terminates the machine the
// remaining entry actions are skipped; poll Terminated or RunState.
//
// Options replace the configuration of an earlier Init as a whole. A bare
// Init(obj, s) keeps it.
func Init[T Object[T]](obj T, initial *State[T], opts ...Option) {
	c := obj.smfCtx()
	if len(opts) > 0 {
		c.cfg = config{}
		for _, opt := range opts {
			opt(&c.cfg)
		}
	}
	if initial == nil {
		c.report("init", ErrNilState, nil)
		return
	}

	leaf := initial
	if c.cfg.mode.initial() {
		leaf = deepestInitial(leaf)
	}

	c.self = obj
	c.initialized = true
	c.newState = false
	c.terminate = false
	c.isExit = false
	c.handled = false
	c.terminateVal = 0
	c.current = leaf
	c.previous = leaf
	c.executing = leaf
	c.active = nil

	if l := c.cfg.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("init", "state", leaf.String(), "mode", c.cfg.mode.String())
	}

	seq := c.transitions
	if !c.cfg.mode.ancestors() {
		c.enter(leaf, seq)
		c.executing = c.current
		return
	}

	// The cascade never runs the entry of its boundary, so the root goes first.
	root := rootOf(leaf)
	if !c.enter(root, seq) {
		c.enterPath(leaf, root, seq)
	}
	c.executing = c.current
}

// SetState requests a transition to s. It is meant to be called from Entry
// and Run actions, or from outside the engine to force a transition.
//
// Calls with a nil state, from inside an Exit action, before Init or after
// termination are logged and ignored.
func (c *Ctx[T]) SetState(s *State[T]) {
	if err := c.checkSetState(s); err != nil {
		c.report("set state", err, s)
		return
	}
	c.newState = true

	if !c.cfg.mode.ancestors() {
		c.setFlat(s)
		return
	}

	source := c.executing
	topmost := topmostOf(source, s)
	self := source == s

	c.isExit = true
	if c.exitPath(topmost) {
		c.abort()
		return
	}
	// The exit cascade stops below topmost, which is s itself here.
	if self && c.leave(s) {
		c.abort()
		return
	}
	c.isExit = false

	seq := c.transitions
	if self && c.enter(s, seq) {
		c.abort()
		return
	}

	if c.cfg.mode.initial() {
		s = deepestInitial(s)
	}
	c.commit(s)
	if c.enterPath(s, topmost, c.transitions) {
		c.abort()
		return
	}
	c.executing = c.current
}

// RunState runs one tick: the Run action of the current state, then those of
// its ancestors from child to root until one returns Handled, requests a
// transition or terminates the machine. It returns the terminate value, zero
// while the machine is still running.
func (c *Ctx[T]) RunState() int32 {
	if c.terminate {
		return c.terminateVal
	}
	if !c.initialized {
		c.report("run state", ErrNotInitialized, nil)
		return 0
	}
	c.newState = false
	c.handled = false

	if !c.runOne(c.current) && c.cfg.mode.ancestors() {
		for s := c.current.Parent; s != nil; s = s.Parent {
			if c.runOne(s) {
				break
			}
		}
	}
	c.executing = c.current
	return c.terminateVal
}

// SetTerminate marks the machine terminated with val. It may be called from
// any callback; the engine stops the running cascade at the next callback
// boundary. A later call replaces the value.
func (c *Ctx[T]) SetTerminate(val int32) {
	c.terminate = true
	c.terminateVal = val
	c.cfg.terminate(val)
	if l := c.cfg.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("terminate", "code", val, "executing", c.executing.String())
	}
}

// SetState is SetState on the Ctx embedded in obj.
func SetState[T Object[T]](obj T, s *State[T]) {
	obj.smfCtx().SetState(s)
}

// RunState is RunState on the Ctx embedded in obj.
func RunState[T Object[T]](obj T) int32 {
	return obj.smfCtx().RunState()
}

// SetTerminate is SetTerminate on the Ctx embedded in obj.
func SetTerminate[T Object[T]](obj T, val int32) {
	obj.smfCtx().SetTerminate(val)
}

func (c *Ctx[T]) setFlat(s *State[T]) {
	c.isExit = true
	if c.leave(c.current) {
		c.abort()
		return
	}
	c.isExit = false

	c.commit(s)
	c.enter(s, c.transitions)
	c.executing = c.current
}

// commit records s as the new current state.
func (c *Ctx[T]) commit(s *State[T]) {
	from := c.current
	c.previous = from
	c.current = s
	c.executing = s
	c.transitions++
	c.cfg.transition(from.String(), s.String())
	if l := c.cfg.log(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("transition", "from", from.String(), "to", s.String())
	}
}

// exitPath runs exit actions from the deepest active state up to, but not
// including, topmost. It reports whether the machine was terminated.
func (c *Ctx[T]) exitPath(topmost *State[T]) bool {
	for s := c.active; s != nil && s != topmost; s = s.Parent {
		if c.leave(s) {
			return true
		}
	}
	return false
}

// enterPath runs entry actions from just below topmost down to target,
// outermost first. It reports whether the cascade was cut short, either by
// termination or by a transition requested from one of the entry actions.
func (c *Ctx[T]) enterPath(target, topmost *State[T], seq uint64) bool {
	if target == topmost {
		return false
	}
	for s := childOf(target, topmost); s != nil && s != target; s = childOf(target, s) {
		if c.enter(s, seq) {
			return true
		}
	}
	return c.enter(target, seq)
}

func (c *Ctx[T]) enter(s *State[T], seq uint64) bool {
	c.executing = s
	c.active = s
	c.cfg.entry(s.String())
	if s.Entry != nil {
		s.Entry(c.self)
	}
	return c.terminate || c.transitions != seq
}

func (c *Ctx[T]) leave(s *State[T]) bool {
	c.executing = s
	c.cfg.exit(s.String())
	if s.Exit != nil {
		s.Exit(c.self)
	}
	c.active = s.Parent
	return c.terminate
}

// runOne runs the Run action of s and reports whether bubbling must stop.
func (c *Ctx[T]) runOne(s *State[T]) bool {
	c.executing = s
	c.cfg.run(s.String())
	if s.Run != nil && s.Run(c.self) == Handled {
		c.handled = true
	}
	return c.terminate || c.newState || c.handled
}

func (c *Ctx[T]) abort() {
	c.isExit = false
	c.executing = c.current
}

func (c *Ctx[T]) checkSetState(s *State[T]) error {
	switch {
	case s == nil:
		return ErrNilState
	case c.isExit:
		return ErrSetStateInExit
	case !c.initialized:
		return ErrNotInitialized
	case c.terminate:
		return ErrTerminated
	}
	return nil
}

func (c *Ctx[T]) report(op string, err error, target *State[T]) {
	c.cfg.misuse(err)
	c.cfg.log().Error(op+" ignored", "err", err, "target", target.String(), "executing", c.executing.String())
}
