package hasse

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/posetviz/pkg/poset"
)

// Options configures Hasse-diagram rendering.
type Options struct {
	// Name is used as the graph title. Empty means no title.
	Name string

	// Highlight marks maximal and minimal members with a filled style so
	// the extremes of the order stand out.
	Highlight bool
}

// ToDOT converts a poset's Hasse diagram to Graphviz DOT format.
// Members are emitted in insertion order and edges run from each element
// down to its immediate children, so diagrams are stable across runs.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT[E comparable](p *poset.Poset[E], opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph hasse {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	if opts.Name != "" {
		fmt.Fprintf(&buf, "  label=%q;\n  labelloc=t;\n", opts.Name)
	}
	buf.WriteString("\n")

	maxima := asSet(p.Maxima())
	minima := asSet(p.Minima())
	for _, e := range p.Elements() {
		id := fmt.Sprintf("%v", e)
		attrs := fmt.Sprintf("label=%q", id)
		if opts.Highlight {
			if maxima[e] {
				attrs += ", fillcolor=lightgoldenrod1"
			} else if minima[e] {
				attrs += ", fillcolor=lightblue"
			}
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for _, e := range p.Elements() {
		children, _ := p.Children(e)
		for _, c := range children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", fmt.Sprintf("%v", e), fmt.Sprintf("%v", c))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func asSet[E comparable](elems []E) map[E]bool {
	set := make(map[E]bool, len(elems))
	for _, e := range elems {
		set[e] = true
	}
	return set
}
