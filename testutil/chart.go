package testutil

import (
	"github.com/comalice/smf"
	"github.com/comalice/smf/builder"
)

// Chart is the tree most engine tests run against:
//
//	root          c
//	├── a         └── c1
//	│   ├── a1
//	│   └── a2
//	└── b
//	    ├── b1
//	    └── b2
//
// Initial links follow the first child. c is a second, unrelated tree.
// Every state is instrumented for a Probe.
type Chart struct {
	Root, A, A1, A2, B, B1, B2 *smf.State[*Probe]
	C, C1                      *smf.State[*Probe]
}

// NewChart builds a fresh Chart. Each call returns new descriptors.
func NewChart() *Chart {
	ch := &Chart{
		A1: builder.Leaf[*Probe]("a1"),
		A2: builder.Leaf[*Probe]("a2"),
		B1: builder.Leaf[*Probe]("b1"),
		B2: builder.Leaf[*Probe]("b2"),
		C1: builder.Leaf[*Probe]("c1"),
	}
	ch.A = builder.Composite("a", []*smf.State[*Probe]{ch.A1, ch.A2})
	ch.B = builder.Composite("b", []*smf.State[*Probe]{ch.B1, ch.B2})
	ch.Root = builder.Composite("root", []*smf.State[*Probe]{ch.A, ch.B})
	ch.C = builder.Composite("c", []*smf.State[*Probe]{ch.C1})
	Instrument(ch.States()...)
	return ch
}

// States lists every state, parents before children.
func (ch *Chart) States() []*smf.State[*Probe] {
	return builder.Flatten(ch.A1, ch.A2, ch.B1, ch.B2, ch.C1)
}

// Get finds a state by name, or nil.
func (ch *Chart) Get(name string) *smf.State[*Probe] {
	for _, s := range ch.States() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
