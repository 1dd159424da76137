// Package orders provides stock ordering predicates and candidate hints for
// common partial orders over integers and strings.
//
// Every predicate satisfies the [poset.Ordering] contract (reflexive,
// antisymmetric and transitive) on its stated domain: positive integers for
// the divisor orderings, strings that are distinct as rune sets for
// [CharSubset]. The package also maintains a name registry
// so poset descriptions can refer to orderings by key (see [Lookup]).
package orders

import (
	"strings"

	"github.com/matzehuels/posetviz/pkg/poset"
)

// Divisor reports whether a divides b. As an ordering over positive
// integers, 1 is the unique minimum and primes cover it.
func Divisor(a, b int) bool {
	return a != 0 && b%a == 0
}

// DivisorInverse is [Divisor] with the arguments swapped: a <= b when b
// divides a, turning 1 into the unique maximum.
func DivisorInverse(a, b int) bool {
	return Divisor(b, a)
}

// BitSubset reports whether the set bits of b are a subset of the set bits
// of a, so masks shrink upward: 14 (1110) <= 6 (0110).
func BitSubset(a, b int) bool {
	return a&b == b
}

// BitSuperset reports whether the set bits of a are a subset of the set
// bits of b, so masks grow upward: 6 (0110) <= 14 (1110).
func BitSuperset(a, b int) bool {
	return b&a == a
}

// LessOrEqual is the usual total order on integers.
func LessOrEqual(a, b int) bool {
	return a <= b
}

// GreaterOrEqual is the reversed total order on integers.
func GreaterOrEqual(a, b int) bool {
	return a >= b
}

// CharSubset reports whether every rune of a also occurs in b. Strings are
// compared as rune sets, so "ab" <= "ba" and "ba" <= "ab" never both matter
// in practice: callers must supply strings that are distinct as sets for
// antisymmetry to hold.
func CharSubset(a, b string) bool {
	for _, r := range a {
		if !strings.ContainsRune(b, r) {
			return false
		}
	}
	return true
}

// BitDrop enumerates every value obtained by clearing exactly one set bit
// of e. Under [BitSuperset] these are the immediate abstract children of e,
// making BitDrop a valid childrenOf hint for [poset.NewHinted].
func BitDrop(e int) []int {
	var out []int
	for r, z := e, 1; r != 0; z <<= 1 {
		if e&z != 0 {
			out = append(out, e^z)
			r ^= z
		}
	}
	return out
}

// BitRaise returns a parentsOf hint for [BitSuperset]: it enumerates every
// value obtained by setting one clear bit of e whose bit value is at most
// max, so the candidate walk terminates. Results may exceed max (BitRaise(8)
// maps 6 to 7 and 14).
func BitRaise(max int) poset.CandidateFunc[int] {
	return func(e int) []int {
		var out []int
		for z := 1; z <= max; z <<= 1 {
			if e&z == 0 {
				out = append(out, e|z)
			}
		}
		return out
	}
}
