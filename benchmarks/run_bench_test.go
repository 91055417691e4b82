package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/smf"
)

func depthName(d int) string {
	return fmt.Sprintf("depth=%d", d)
}

// BenchmarkRunBubbling measures a tick that bubbles through every ancestor.
func BenchmarkRunBubbling(b *testing.B) {
	for _, depth := range []int{1, 8, 32} {
		b.Run(depthName(depth), func(b *testing.B) {
			leaf, _ := GenDeep(depth)
			m := &Bench{}
			smf.Init(m, leaf)
			b.ReportAllocs()
			for b.Loop() {
				smf.RunState(m)
			}
		})
	}
}

// BenchmarkRunTransition measures ticks whose leaf transitions every time.
func BenchmarkRunTransition(b *testing.B) {
	leaf1, leaf2 := GenDeep(4)
	leaf1.Run = func(m *Bench) smf.Result { m.SetState(leaf2); return smf.Propagate }
	leaf2.Run = func(m *Bench) smf.Result { m.SetState(leaf1); return smf.Propagate }
	m := &Bench{}
	smf.Init(m, leaf1)
	b.ReportAllocs()
	for b.Loop() {
		smf.RunState(m)
	}
}

func BenchmarkRunTerminated(b *testing.B) {
	leaf, _ := GenDeep(8)
	m := &Bench{}
	smf.Init(m, leaf)
	smf.SetTerminate(m, 1)
	b.ReportAllocs()
	for b.Loop() {
		smf.RunState(m)
	}
}
