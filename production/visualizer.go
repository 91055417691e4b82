package production

import (
	"bytes"
	"fmt"

	"github.com/comalice/smf"
)

// ExportDOT generates Graphviz DOT source for a state tree. Composite states
// become clusters, current and its ancestors are filled, and a dashed edge
// points from each composite to its initial child. States whose parent is
// not listed are drawn as roots.
func ExportDOT[T any](name string, states []*smf.State[T], current *smf.State[T]) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "digraph %q {\n", name)
	buf.WriteString(`  rankdir=LR;
  compound=true;
  node [shape=box, fontsize=10, style=rounded];
  edge [fontsize=9];
`)

	g := newGraph(states)
	active := make(map[*smf.State[T]]bool)
	for s := current; s != nil; s = s.Parent {
		active[s] = true
	}

	for _, s := range g.roots {
		g.render(&buf, s, active, "  ")
	}
	for _, s := range states {
		if s.Initial != nil && g.ids[s.Initial] != "" {
			fmt.Fprintf(&buf, "  %s -> %s [style=dashed, label=\"initial\"];\n", g.ids[s], g.ids[s.Initial])
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

type graph[T any] struct {
	ids      map[*smf.State[T]]string
	children map[*smf.State[T]][]*smf.State[T]
	roots    []*smf.State[T]
}

func newGraph[T any](states []*smf.State[T]) *graph[T] {
	g := &graph[T]{
		ids:      make(map[*smf.State[T]]string, len(states)),
		children: make(map[*smf.State[T]][]*smf.State[T]),
	}
	for _, s := range states {
		if s == nil || g.ids[s] != "" {
			continue
		}
		g.ids[s] = fmt.Sprintf("s%d", len(g.ids))
	}
	seen := make(map[*smf.State[T]]bool, len(states))
	for _, s := range states {
		if s == nil || seen[s] {
			continue
		}
		seen[s] = true
		if s.Parent != nil && g.ids[s.Parent] != "" {
			g.children[s.Parent] = append(g.children[s.Parent], s)
		} else {
			g.roots = append(g.roots, s)
		}
	}
	return g
}

// render writes s and, for composites, a cluster holding its subtree.
func (g *graph[T]) render(buf *bytes.Buffer, s *smf.State[T], active map[*smf.State[T]]bool, indent string) {
	id := g.ids[s]
	kids := g.children[s]
	if len(kids) == 0 {
		style := ""
		if active[s] {
			style = ", style=\"rounded,filled\", fillcolor=lightgreen"
		}
		fmt.Fprintf(buf, "%s%s [label=%q%s];\n", indent, id, s.String(), style)
		return
	}

	fmt.Fprintf(buf, "%ssubgraph cluster_%s {\n", indent, id)
	fmt.Fprintf(buf, "%s  label=%q;\n", indent, s.String())
	if active[s] {
		fmt.Fprintf(buf, "%s  style=filled;\n%s  fillcolor=orange;\n", indent, indent)
	}
	fmt.Fprintf(buf, "%s  %s [label=%q, shape=ellipse];\n", indent, id, s.String())
	for _, ch := range kids {
		g.render(buf, ch, active, indent+"  ")
	}
	fmt.Fprintf(buf, "%s}\n", indent)
}
