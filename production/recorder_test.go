package production_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/smf"
	"github.com/comalice/smf/production"
	"github.com/comalice/smf/testutil"
)

func drive(t *testing.T, opts ...smf.Option) *testutil.Probe {
	t.Helper()
	ch := testutil.NewChart()
	p := testutil.NewProbe()
	smf.Init(p, ch.Root, opts...)
	smf.SetState(p, ch.B2)
	smf.RunState(p)
	smf.SetTerminate(p, 3)
	smf.SetState(p, ch.A1)
	return p
}

func TestRecorderSteps(t *testing.T) {
	rec := production.NewRecorder("chart")
	p := drive(t, smf.WithHooks(rec.Hooks()))

	var got []string
	for _, s := range rec.Steps() {
		got = append(got, s.String())
	}
	assert.Equal(t, []string{
		"entry:root", "entry:a", "entry:a1",
		"exit:a1", "exit:a", "transition:a1->b2", "entry:b", "entry:b2",
		"run:b2", "run:b", "run:root",
		"terminate:3",
		"misuse:" + smf.ErrTerminated.Error(),
	}, got)

	// The recorder sees exactly what the states see.
	assert.Equal(t, p.Calls, rec.Calls())

	steps := rec.Steps()
	assert.Equal(t, 1, steps[0].Seq)
	assert.Equal(t, len(steps), steps[len(steps)-1].Seq)
}

func TestRecorderOptions(t *testing.T) {
	t.Run("limit", func(t *testing.T) {
		rec := production.NewRecorder("chart", production.WithLimit(2))
		drive(t, smf.WithHooks(rec.Hooks()))
		steps := rec.Steps()
		require.Len(t, steps, 2)
		assert.Equal(t, production.KindTerminate, steps[0].Kind)
		assert.Equal(t, production.KindMisuse, steps[1].Kind)
		assert.Equal(t, 13, steps[1].Seq)
	})

	t.Run("without run", func(t *testing.T) {
		rec := production.NewRecorder("chart", production.WithoutRun())
		drive(t, smf.WithHooks(rec.Hooks()))
		for _, s := range rec.Steps() {
			assert.NotEqual(t, production.KindRun, s.Kind)
		}
		assert.Len(t, rec.Steps(), 10)
	})

	t.Run("reset", func(t *testing.T) {
		rec := production.NewRecorder("chart")
		drive(t, smf.WithHooks(rec.Hooks()))
		rec.Reset()
		assert.Empty(t, rec.Steps())
		assert.Empty(t, rec.Calls())
	})
}

func TestRecorderWrite(t *testing.T) {
	rec := production.NewRecorder("chart")
	drive(t, smf.WithHooks(rec.Hooks()))

	var y bytes.Buffer
	require.NoError(t, rec.WriteYAML(&y))
	assert.True(t, strings.HasPrefix(y.String(), "machine: chart\nsteps:\n"))
	assert.Contains(t, y.String(), "kind: transition")
	assert.Contains(t, y.String(), "to: b2")

	var j bytes.Buffer
	require.NoError(t, rec.WriteJSON(&j))
	assert.Contains(t, j.String(), `"machine": "chart"`)
	assert.Contains(t, j.String(), `"code": 3`)

	for name, buf := range map[string]*bytes.Buffer{"yaml": &y, "json": &j} {
		t.Run(name, func(t *testing.T) {
			tr, err := production.ReadTrace(buf)
			require.NoError(t, err)
			assert.Equal(t, rec.Trace(), tr)
		})
	}

	_, err := production.ReadTrace(strings.NewReader("steps: [unterminated"))
	assert.Error(t, err)
}
