// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"github.com/comalice/smf"
)

// Bench is the machine object every benchmark drives.
type Bench struct {
	smf.Ctx[*Bench]
	// Next is the state the current Run action transitions to, if any.
	Next  *smf.State[*Bench]
	Count int
}

func count(b *Bench) { b.Count++ }

func hop(b *Bench) smf.Result {
	if b.Next != nil {
		b.SetState(b.Next)
	}
	return smf.Propagate
}

// GenFlat creates n unrelated root states.
func GenFlat(n int) []*smf.State[*Bench] {
	if n < 1 {
		n = 1
	}
	states := make([]*smf.State[*Bench], n)
	for i := range states {
		states[i] = &smf.State[*Bench]{Name: fmt.Sprintf("s%d", i), Entry: count, Exit: count, Run: hop}
	}
	return states
}

// GenDeep creates a chain of depth composites with two sibling leaves at the
// bottom and returns the leaves.
func GenDeep(depth int) (leaf1, leaf2 *smf.State[*Bench]) {
	parent := chain(nil, "c", depth)
	leaf1 = &smf.State[*Bench]{Name: "leaf1", Parent: parent, Entry: count, Exit: count, Run: hop}
	leaf2 = &smf.State[*Bench]{Name: "leaf2", Parent: parent, Entry: count, Exit: count, Run: hop}
	parent.Initial = leaf1
	return leaf1, leaf2
}

// GenBranches creates a root with two independent chains of depth composites
// below it and returns one leaf from each, so every transition between them
// exits and enters depth+1 states.
func GenBranches(depth int) (left, right *smf.State[*Bench]) {
	root := &smf.State[*Bench]{Name: "root", Entry: count, Exit: count, Run: hop}
	left = &smf.State[*Bench]{Name: "left", Parent: chain(root, "l", depth), Entry: count, Exit: count, Run: hop}
	right = &smf.State[*Bench]{Name: "right", Parent: chain(root, "r", depth), Entry: count, Exit: count, Run: hop}
	return left, right
}

func chain(top *smf.State[*Bench], prefix string, depth int) *smf.State[*Bench] {
	if depth < 1 {
		depth = 1
	}
	s := top
	for i := range depth {
		s = &smf.State[*Bench]{Name: fmt.Sprintf("%s%d", prefix, i), Parent: s, Entry: count, Exit: count, Run: hop}
	}
	return s
}
