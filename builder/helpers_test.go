package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/smf"
	"github.com/comalice/smf/builder"
)

type job struct {
	smf.Ctx[*job]
	trace []string
}

func TestCompositeWiresTree(t *testing.T) {
	idle := builder.Leaf("idle", builder.OnRun(func(j *job) smf.Result {
		j.trace = append(j.trace, "tick")
		return smf.Propagate
	}))
	busy := builder.Leaf("busy",
		builder.OnEntry(func(j *job) { j.trace = append(j.trace, "start") }),
		builder.OnExit(func(j *job) { j.trace = append(j.trace, "stop") }),
	)
	root := builder.Composite("root", []*smf.State[*job]{idle, busy}, builder.WithInitial(busy))

	assert.Equal(t, root, idle.Parent)
	assert.Equal(t, root, busy.Parent)
	assert.Equal(t, busy, root.Initial)
	require.NoError(t, smf.Validate(builder.Flatten(idle, busy)...))

	j := &job{}
	smf.Init(j, root)
	assert.Equal(t, busy, j.Current())
	smf.SetState(j, idle)
	smf.RunState(j)
	assert.Equal(t, []string{"start", "stop", "tick"}, j.trace)
}

func TestCompositeDefaultInitial(t *testing.T) {
	a := builder.Leaf[*job]("a")
	b := builder.Leaf[*job]("b")
	root := builder.Composite("root", []*smf.State[*job]{a, b})
	assert.Equal(t, a, root.Initial)

	empty := builder.Composite[*job]("empty", nil)
	assert.Nil(t, empty.Initial)
}

func TestFlatten(t *testing.T) {
	a1 := builder.Leaf[*job]("a1")
	a2 := builder.Leaf[*job]("a2")
	b := builder.Leaf[*job]("b")
	a := builder.Composite("a", []*smf.State[*job]{a1, a2})
	root := builder.Composite("root", []*smf.State[*job]{a, b})
	other := builder.Leaf[*job]("other")

	got := builder.Flatten(a2, a1, b, other, a)
	assert.Equal(t, []*smf.State[*job]{root, a, a2, a1, b, other}, got)
	assert.Empty(t, builder.Flatten[*job]())
}
