package poset

import (
	"fmt"
	"io"
	"strings"
)

// Out writes a human-readable dump of the poset to w: a header with the
// member count, then one indented line per member in insertion order with
// its immediate parents and children. Sentinels are filtered out. An empty
// poset renders as "PartiallyOrderedSet size: 0 elements: {\n}".
func (p *Poset[E]) Out(w io.Writer) {
	fmt.Fprintf(w, "PartiallyOrderedSet size: %d elements: {\n", p.Size())
	for _, n := range p.order {
		fmt.Fprintf(w, "  %v parents: %s children: %s\n",
			n.elem, formatList(strip(n.parents)), formatList(strip(n.children)))
	}
	io.WriteString(w, "}")
}

// String returns the [Poset.Out] dump as a string.
func (p *Poset[E]) String() string {
	var sb strings.Builder
	p.Out(&sb)
	return sb.String()
}

// formatList renders elements as a bracketed, comma-separated list using
// each element's canonical string form, e.g. ['ab', 'bcd'] or [2, 3].
func formatList[E any](elems []E) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(']')
	return sb.String()
}
