package poset

// Parents returns the immediate parents of member e, in the order their
// cover edges were recorded. The second return value is false when e is not
// a member; an empty slice with true means e is a maximal member. Sentinels
// are filtered out.
func (p *Poset[E]) Parents(e E) ([]E, bool) {
	n, ok := p.nodes[e]
	if !ok {
		return nil, false
	}
	return strip(n.parents), true
}

// Children returns the immediate children of member e. See [Poset.Parents]
// for the absent-member contract.
func (p *Poset[E]) Children(e E) ([]E, bool) {
	n, ok := p.nodes[e]
	if !ok {
		return nil, false
	}
	return strip(n.children), true
}

// CoveringParents returns the members that cover e from above, whether or
// not e is a member: for a member these are its stored immediate parents,
// for a non-member the immediate parents it would receive if inserted.
// The result is never an absent signal; it is empty when no member is
// greater than e.
func (p *Poset[E]) CoveringParents(e E) []E {
	if n, ok := p.nodes[e]; ok {
		return strip(n.parents)
	}
	return elemsOf(p.findCovers(e, above))
}

// CoveringChildren is the downward counterpart of [Poset.CoveringParents].
func (p *Poset[E]) CoveringChildren(e E) []E {
	if n, ok := p.nodes[e]; ok {
		return strip(n.children)
	}
	return elemsOf(p.findCovers(e, below))
}

// Ancestors returns every member strictly greater than e. e itself is never
// included and need not be a member. The result order is a breadth-first
// walk of the diagram and should be treated as unspecified.
func (p *Poset[E]) Ancestors(e E) []E {
	return p.closure(e, above)
}

// Descendants returns every member strictly less than e. See
// [Poset.Ancestors].
func (p *Poset[E]) Descendants(e E) []E {
	return p.closure(e, below)
}

// closure walks the diagram outward from e's covers, collecting members.
func (p *Poset[E]) closure(e E, dir direction) []E {
	next := func(n *node[E]) []*node[E] {
		if dir == above {
			return n.parents
		}
		return n.children
	}

	var frontier []*node[E]
	if n, ok := p.nodes[e]; ok {
		frontier = next(n)
	} else {
		frontier = p.findCovers(e, dir)
	}

	var out []E
	visited := make(map[*node[E]]bool)
	queue := append([]*node[E]{}, frontier...)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n] || n.isSentinel() {
			continue
		}
		visited[n] = true
		out = append(out, n.elem)
		queue = append(queue, next(n)...)
	}
	return out
}

// Maxima returns the members with no greater member, in the order they were
// attached to the top sentinel.
func (p *Poset[E]) Maxima() []E {
	return strip(p.top.children)
}

// Minima returns the members with no lesser member, in the order they were
// attached to the bottom sentinel.
func (p *Poset[E]) Minima() []E {
	return strip(p.bottom.parents)
}

func elemsOf[E comparable](nodes []*node[E]) []E {
	elems := make([]E, len(nodes))
	for i, n := range nodes {
		elems[i] = n.elem
	}
	return elems
}
