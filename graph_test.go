package smf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type node = State[int]

// tree builds
//
//	r ── a ── a1
//	│    └─── a2
//	└─── b ── b1 ── b11
//	x
func tree() map[string]*node {
	m := map[string]*node{}
	add := func(name string, parent *node) *node {
		s := &node{Name: name, Parent: parent}
		m[name] = s
		return s
	}
	r := add("r", nil)
	a := add("a", r)
	add("a1", a)
	add("a2", a)
	b := add("b", r)
	b1 := add("b1", b)
	add("b11", b1)
	add("x", nil)
	r.Initial = a
	a.Initial = m["a1"]
	return m
}

func TestIsDescendantOf(t *testing.T) {
	m := tree()
	assert.True(t, isDescendantOf(m["a1"], m["a1"]))
	assert.True(t, isDescendantOf(m["a1"], m["a"]))
	assert.True(t, isDescendantOf(m["b11"], m["r"]))
	assert.False(t, isDescendantOf(m["a"], m["a1"]))
	assert.False(t, isDescendantOf(m["a1"], m["b"]))
	assert.False(t, isDescendantOf(m["x"], m["r"]))
}

func TestChildOf(t *testing.T) {
	m := tree()
	assert.Equal(t, m["b"], childOf(m["b11"], m["r"]))
	assert.Equal(t, m["b1"], childOf(m["b11"], m["b"]))
	assert.Equal(t, m["r"], childOf(m["b11"], nil))
	assert.Equal(t, m["x"], childOf(m["x"], nil))
	assert.Nil(t, childOf(m["b11"], m["a"]))
	assert.Nil(t, childOf(m["b11"], m["b11"]))
}

func TestLCAOf(t *testing.T) {
	m := tree()
	assert.Equal(t, m["a"], lcaOf(m["a1"], m["a2"]))
	assert.Equal(t, m["r"], lcaOf(m["a1"], m["b11"]))
	assert.Equal(t, m["r"], lcaOf(m["b11"], m["a"]))
	assert.Nil(t, lcaOf(m["a1"], m["x"]))
	assert.Nil(t, lcaOf(m["r"], m["a"]))
}

func TestTopmostOf(t *testing.T) {
	m := tree()
	tests := []struct {
		source, target string
		want           string
	}{
		{"a1", "a2", "a"},
		{"a", "b", "r"},
		{"a1", "a1", "a1"},
		{"b11", "b", "b"},
		{"b11", "r", "r"},
		{"b", "b11", "b"},
		{"r", "a2", "r"},
		{"a1", "b11", "r"},
		{"a2", "x", ""},
		{"r", "x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.source+"->"+tt.target, func(t *testing.T) {
			got := topmostOf(m[tt.source], m[tt.target])
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, m[tt.want], got)
		})
	}
}

func TestRootOfAndInitial(t *testing.T) {
	m := tree()
	assert.Equal(t, m["r"], rootOf(m["b11"]))
	assert.Equal(t, m["x"], rootOf(m["x"]))
	assert.Equal(t, m["a1"], deepestInitial(m["r"]))
	assert.Equal(t, m["b"], deepestInitial(m["b"]))
}

func TestDepth(t *testing.T) {
	m := tree()
	assert.Equal(t, 0, depth(m["r"], MaxDepth))
	assert.Equal(t, 3, depth(m["b11"], MaxDepth))
	assert.Equal(t, 2, depth(m["b11"], 1))

	loop := &node{Name: "loop"}
	loop.Parent = loop
	assert.Equal(t, 5, depth(loop, 4))
}
