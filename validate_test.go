package smf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/smf"
)

func TestValidate(t *testing.T) {
	type S = smf.State[int]

	t.Run("well formed", func(t *testing.T) {
		r := &S{Name: "r"}
		a := &S{Name: "a", Parent: r}
		a1 := &S{Name: "a1", Parent: a}
		r.Initial = a1
		assert.NoError(t, smf.Validate(r, a, a1))
		assert.NoError(t, smf.Validate[int]())
	})

	t.Run("nil state", func(t *testing.T) {
		assert.ErrorIs(t, smf.Validate(&S{Name: "r"}, nil), smf.ErrNilState)
	})

	t.Run("cycle", func(t *testing.T) {
		a := &S{Name: "a"}
		b := &S{Name: "b", Parent: a}
		a.Parent = b
		assert.ErrorIs(t, smf.Validate(a), smf.ErrCycle)
	})

	t.Run("too deep", func(t *testing.T) {
		s := &S{Name: "0"}
		for range smf.MaxDepth + 1 {
			s = &S{Name: "n", Parent: s}
		}
		assert.ErrorIs(t, smf.Validate(s), smf.ErrCycle)
	})

	t.Run("initial outside", func(t *testing.T) {
		r := &S{Name: "r"}
		other := &S{Name: "other"}
		r.Initial = other
		assert.ErrorIs(t, smf.Validate(r, other), smf.ErrInvalidInitial)
	})

	t.Run("initial self", func(t *testing.T) {
		r := &S{Name: "r"}
		r.Initial = r
		assert.ErrorIs(t, smf.Validate(r), smf.ErrInvalidInitial)
	})

	t.Run("initial in a cycle", func(t *testing.T) {
		r := &S{Name: "r"}
		a := &S{Name: "a"}
		b := &S{Name: "b", Parent: a}
		a.Parent = b
		r.Initial = a
		assert.ErrorIs(t, smf.Validate(r), smf.ErrCycle)
	})
}
