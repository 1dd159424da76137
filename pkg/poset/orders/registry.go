package orders

import (
	"slices"

	"github.com/matzehuels/posetviz/pkg/poset"
)

// Domain identifies the element type an ordering applies to.
type Domain int

const (
	// DomainInt orderings compare integers.
	DomainInt Domain = iota
	// DomainString orderings compare strings.
	DomainString
)

// Entry describes a registered ordering. Exactly one of Int and Str is
// non-nil, matching Domain.
type Entry struct {
	Name        string
	Description string
	Domain      Domain
	Int         poset.Ordering[int]
	Str         poset.Ordering[string]
}

var registry = []Entry{
	{Name: "divisor", Description: "a <= b when a divides b", Domain: DomainInt, Int: Divisor},
	{Name: "divisor-inverse", Description: "a <= b when b divides a", Domain: DomainInt, Int: DivisorInverse},
	{Name: "bit-subset", Description: "a <= b when b's bits are within a's", Domain: DomainInt, Int: BitSubset},
	{Name: "bit-superset", Description: "a <= b when a's bits are within b's", Domain: DomainInt, Int: BitSuperset},
	{Name: "int-asc", Description: "the usual total order on integers", Domain: DomainInt, Int: LessOrEqual},
	{Name: "int-desc", Description: "the reversed total order on integers", Domain: DomainInt, Int: GreaterOrEqual},
	{Name: "char-subset", Description: "a <= b when every rune of a occurs in b", Domain: DomainString, Str: CharSubset},
}

// Lookup returns the ordering registered under name.
func Lookup(name string) (Entry, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the registered ordering names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.Name
	}
	return names
}

// All returns a copy of the registry in registration order.
func All() []Entry {
	return slices.Clone(registry)
}
