// Package poset provides a dynamic partially-ordered set that maintains its
// Hasse diagram (the cover relation) under insertions and deletions.
//
// # Overview
//
// A partial order is a reflexive, antisymmetric, transitive relation in which
// some pairs of elements are incomparable. Given such a relation as an
// [Ordering] predicate, a [Poset] tracks a set of distinct elements and keeps,
// for every member, its immediate parents and immediate children among the
// current members. Queries for parents, children, ancestors and descendants
// run against this reduced graph rather than the transitive closure.
//
// The hard part is incremental maintenance: inserting an element splices it
// between its covering members and demotes edges that stop being covers;
// removing an element reinstates exactly those covers for which it was the
// only route. Two synthetic sentinel nodes above and below every member
// anchor the diagram so that insertion and deletion have no root edge cases.
// Sentinels never appear in query results.
//
// # Basic Usage
//
// Create a poset with [New] and an ordering predicate, then mutate it with
// [Poset.Add] and [Poset.Remove]:
//
//	divides := func(a, b int) bool { return b%a == 0 }
//	p := poset.New(divides)
//	p.Add(2)
//	p.Add(4)
//	p.Add(12)
//	parents, _ := p.Parents(2) // [4]
//
// [Poset.Parents] and [Poset.Children] report the stored immediate relations
// of a member; the second return value is false for non-members.
// [Poset.CoveringParents] and [Poset.CoveringChildren] answer the same
// question for an element that need not be a member, as if it were inserted.
//
// # Candidate Hints
//
// Locating the covers of an element normally walks the diagram from the
// sentinels, probing the ordering predicate along the way. When the caller
// can enumerate the immediate abstract covers of any element cheaply (for
// example, one-bit variations of a bitmask), [NewHinted] accepts two
// generator functions that prune the search. Hints may over-approximate and
// may yield non-members; the engine filters. Results are identical with and
// without hints.
//
// # Validation
//
// [Poset.Validate] brute-force checks every structural invariant of the
// diagram against the ordering predicate and returns a wrapped sentinel
// error for the first violation found. It is intended for tests and for
// debug-mode assertions after mutations.
//
// # Concurrency
//
// Poset instances are not safe for concurrent use. All operations are
// synchronous and run to completion on the caller's goroutine; callers that
// share a poset across goroutines must synchronize externally. The ordering
// predicate and hint functions are invoked synchronously and must not call
// back into the same poset.
package poset
