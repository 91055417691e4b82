/*
Package smf is a small, data-driven hierarchical state machine (HSM) engine.

A machine is a static graph of State descriptors. Each descriptor has an
optional parent, an optional initial child and optional Entry, Run and Exit
callbacks. The engine sequences entry and exit actions across ancestor chains
using least-common-ancestor (LCA) boundaries, bubbles unhandled run actions up
to ancestors, and supports cooperative termination from any callback.

# Usage

Embed Ctx in the per-instance struct. The embedded Ctx is the machine's
bookkeeping; the rest of the struct is the caller's extended state.

	type Light struct {
		smf.Ctx[*Light]
		presses int
	}

	var (
		on  = &smf.State[*Light]{Name: "on"}
		off = &smf.State[*Light]{Name: "off"}
	)

	func init() {
		off.Run = func(l *Light) smf.Result {
			if l.presses > 0 {
				l.SetState(on)
			}
			return smf.Handled
		}
	}

	l := &Light{}
	smf.Init(l, off)
	for l.RunState() == 0 {
		// one tick
	}

# Transition semantics

SetState computes an exclusive "topmost" boundary between the executing state
and the target: the shared parent for siblings, the target when moving to an
ancestor, the executing state when moving to a descendant, otherwise the LCA.
Exit actions run from the current leaf up to (not including) topmost, entry
actions run from just below topmost down to the target. A transition of a
state to itself runs its own exit and entry explicitly.

With HierarchicalInitial (the default) any target is resolved to the deepest
leaf reachable through Initial links. Flat mode ignores parents and reduces a
transition to exit(old) / entry(new).

# Termination

SetTerminate records a sticky code. Every cascade checks it after each
callback and stops; RunState on a terminated machine is a no-op that returns
the code. Init is the only way to restart.

# Concurrency

The engine has no locks and no goroutines. Drive a machine from one goroutine
(see package realtime) or guard it externally.
*/
package smf
