package smf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/smf"
)

type oven struct {
	smf.Ctx[*oven]
	log []string
}

func note(s string) func(*oven) {
	return func(o *oven) { o.log = append(o.log, s) }
}

func TestBuilder(t *testing.T) {
	b := smf.NewBuilder[*oven]()
	b.State("closed").Initial("idle").Entry(note("closed"))
	b.State("closed.idle").Run(func(o *oven) smf.Result {
		o.log = append(o.log, "idle")
		return smf.Handled
	})
	b.State("closed").State("heating").Entry(note("heating on")).Exit(note("heating off"))
	b.State("open").Entry(note("open"))

	table, err := b.Build()
	require.NoError(t, err)

	closed := table.MustGet("closed")
	idle := table.MustGet("closed.idle")
	heating := table.Get("closed.heating")
	open := table.Get("open")
	require.NotNil(t, heating)
	assert.Equal(t, closed, idle.Parent)
	assert.Equal(t, idle, closed.Initial)
	assert.Nil(t, open.Parent)
	assert.Nil(t, table.Get("missing"))
	assert.Equal(t, []*smf.State[*oven]{closed, idle, heating, open}, table.States())

	o := &oven{}
	smf.Init(o, closed)
	assert.Equal(t, idle, o.Current())
	o.RunState()
	smf.SetState(o, heating)
	smf.SetState(o, open)
	assert.Equal(t, []string{"closed", "idle", "heating on", "heating off", "open"}, o.log)
}

func TestBuilderNestedInitial(t *testing.T) {
	b := smf.NewBuilder[*oven]()
	b.State("a").Initial("b.c")
	b.State("a.b.c")
	table, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, table.Get("a.b.c"), table.Get("a").Initial)
}

func TestBuilderErrors(t *testing.T) {
	t.Run("unknown initial", func(t *testing.T) {
		b := smf.NewBuilder[*oven]()
		b.State("a").Initial("nope")
		_, err := b.Build()
		assert.ErrorIs(t, err, smf.ErrUnknownState)
	})

	t.Run("first unknown initial in declaration order", func(t *testing.T) {
		for range 20 {
			b := smf.NewBuilder[*oven]()
			b.State("a").Initial("x")
			b.State("b").Initial("y")
			b.State("c").Initial("z")
			_, err := b.Build()
			require.ErrorIs(t, err, smf.ErrUnknownState)
			assert.Contains(t, err.Error(), `state "a": initial "x"`)
		}
	})

	for _, path := range []string{"", ".a", "a.", "a..b"} {
		t.Run("invalid path "+path, func(t *testing.T) {
			b := smf.NewBuilder[*oven]()
			b.State(path)
			_, err := b.Build()
			assert.ErrorContains(t, err, "invalid state path")
		})
	}

	t.Run("MustGet panics", func(t *testing.T) {
		table, err := smf.NewBuilder[*oven]().Build()
		require.NoError(t, err)
		assert.Panics(t, func() { table.MustGet("x") })
	})
}
