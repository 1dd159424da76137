package poset

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrMisorderedEdge is returned by [Poset.Validate] when a recorded
	// cover edge connects elements the ordering does not relate, or an
	// element to itself.
	ErrMisorderedEdge = errors.New("cover edge endpoints are not ordered")

	// ErrNonMinimalCover is returned by [Poset.Validate] when a member lies
	// strictly between the endpoints of a recorded cover edge.
	ErrNonMinimalCover = errors.New("cover edge admits an intermediate member")

	// ErrMissingPath is returned by [Poset.Validate] when two ordered
	// members are not connected by a chain of cover edges.
	ErrMissingPath = errors.New("ordered members have no path of cover edges")

	// ErrAsymmetricEdge is returned by [Poset.Validate] when the parent and
	// child tables disagree about an edge.
	ErrAsymmetricEdge = errors.New("parent and child tables disagree")

	// ErrDuplicateEdge is returned by [Poset.Validate] when the same edge is
	// recorded twice.
	ErrDuplicateEdge = errors.New("duplicate cover edge")

	// ErrDetachedNode is returned by [Poset.Validate] when a member has no
	// parent or no child edge at all, not even to a sentinel.
	ErrDetachedNode = errors.New("member is not anchored to the diagram")

	// ErrSentinelMisuse is returned by [Poset.Validate] when a sentinel edge
	// coexists with real cover edges on the same side of a node, or when a
	// sentinel itself has edges it must not have.
	ErrSentinelMisuse = errors.New("sentinel bookkeeping edge misused")

	// ErrForeignNode is returned by [Poset.Validate] when an edge references
	// a node that is not in the node table. This indicates corruption.
	ErrForeignNode = errors.New("edge references a node outside the set")
)

// Validate brute-force checks every structural invariant of the diagram
// against the ordering predicate and returns nil if all hold:
//
//   - every cover edge connects distinct, ordered members (soundness)
//   - no member lies strictly between the endpoints of a cover edge
//     (tightness)
//   - every ordered pair of members is connected by a chain of cover edges
//     (completeness)
//   - parent and child tables mirror each other exactly, without duplicates
//   - every member has at least one parent and one child, counting
//     sentinels, and sentinel edges appear only on nodes with no real
//     relation on that side
//
// A non-nil error wraps one of the package's sentinel errors and describes
// the first violation found; the poset should then be considered corrupted.
// Validation is O(n^2) in the member count and intended for tests and
// debug-mode assertions, not production paths.
func (p *Poset[E]) Validate() error {
	if len(p.top.parents) != 0 {
		return fmt.Errorf("%w: top sentinel has parents", ErrSentinelMisuse)
	}
	if len(p.bottom.children) != 0 {
		return fmt.Errorf("%w: bottom sentinel has children", ErrSentinelMisuse)
	}
	if slices.Contains(p.top.children, p.bottom) {
		return fmt.Errorf("%w: top sentinel linked directly to bottom", ErrSentinelMisuse)
	}

	all := make([]*node[E], 0, len(p.order)+2)
	all = append(all, p.top, p.bottom)
	all = append(all, p.order...)

	for _, n := range all {
		for _, c := range n.children {
			if err := p.checkEndpoint(c); err != nil {
				return err
			}
			if !slices.Contains(c.parents, n) {
				return fmt.Errorf("%w: %s lists child %s, which does not list it back",
					ErrAsymmetricEdge, p.describe(n), p.describe(c))
			}
			if count(n.children, c) > 1 {
				return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, p.describe(n), p.describe(c))
			}
		}
		for _, pa := range n.parents {
			if err := p.checkEndpoint(pa); err != nil {
				return err
			}
			if !slices.Contains(pa.children, n) {
				return fmt.Errorf("%w: %s lists parent %s, which does not list it back",
					ErrAsymmetricEdge, p.describe(n), p.describe(pa))
			}
			if count(n.parents, pa) > 1 {
				return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, p.describe(pa), p.describe(n))
			}
		}
	}

	for _, n := range p.order {
		if p.nodes[n.elem] != n {
			return fmt.Errorf("%w: %v appears more than once", ErrForeignNode, n.elem)
		}
		if len(n.parents) == 0 {
			return fmt.Errorf("%w: %v has no parents", ErrDetachedNode, n.elem)
		}
		if len(n.children) == 0 {
			return fmt.Errorf("%w: %v has no children", ErrDetachedNode, n.elem)
		}
		if slices.Contains(n.parents, p.top) && len(n.parents) > 1 {
			return fmt.Errorf("%w: %v has the top sentinel beside real parents", ErrSentinelMisuse, n.elem)
		}
		if slices.Contains(n.children, p.bottom) && len(n.children) > 1 {
			return fmt.Errorf("%w: %v has the bottom sentinel beside real children", ErrSentinelMisuse, n.elem)
		}

		for _, pa := range n.parents {
			if pa.isSentinel() {
				continue
			}
			if pa.elem == n.elem || !p.leq(n.elem, pa.elem) {
				return fmt.Errorf("%w: %v -> %v", ErrMisorderedEdge, pa.elem, n.elem)
			}
			if p.hasBetween(n.elem, pa.elem, n.elem) {
				return fmt.Errorf("%w: %v -> %v", ErrNonMinimalCover, pa.elem, n.elem)
			}
		}
	}

	return p.checkCompleteness()
}

// checkCompleteness verifies that every ordered member pair is connected by
// a downward chain of cover edges, memoizing per-node descendant sets.
func (p *Poset[E]) checkCompleteness() error {
	reach := make(map[*node[E]]map[*node[E]]bool, len(p.order))
	var descend func(n *node[E]) map[*node[E]]bool
	descend = func(n *node[E]) map[*node[E]]bool {
		if set, ok := reach[n]; ok {
			return set
		}
		set := make(map[*node[E]]bool)
		reach[n] = set
		for _, c := range n.children {
			if c.isSentinel() {
				continue
			}
			set[c] = true
			for m := range descend(c) {
				set[m] = true
			}
		}
		return set
	}

	for _, a := range p.order {
		for _, b := range p.order {
			if a == b || !p.leq(a.elem, b.elem) {
				continue
			}
			if !descend(b)[a] {
				return fmt.Errorf("%w: %v <= %v", ErrMissingPath, a.elem, b.elem)
			}
		}
	}
	return nil
}

// checkEndpoint verifies that an edge endpoint is either a sentinel or a
// live entry of the node table.
func (p *Poset[E]) checkEndpoint(n *node[E]) error {
	if n.isSentinel() {
		return nil
	}
	if p.nodes[n.elem] != n {
		return fmt.Errorf("%w: %v", ErrForeignNode, n.elem)
	}
	return nil
}

func (p *Poset[E]) describe(n *node[E]) string {
	switch n.kind {
	case kindTop:
		return "<top>"
	case kindBottom:
		return "<bottom>"
	default:
		return fmt.Sprintf("%v", n.elem)
	}
}

func count[E comparable](list []*node[E], n *node[E]) int {
	c := 0
	for _, m := range list {
		if m == n {
			c++
		}
	}
	return c
}
