package orders

import (
	"slices"
	"testing"
)

func TestDivisor(t *testing.T) {
	tests := []struct {
		a, b int
		want bool
	}{
		{1, 1, true},
		{1, 7, true},
		{3, 12, true},
		{12, 3, false},
		{5, 12, false},
		{0, 12, false},
	}
	for _, tt := range tests {
		if got := Divisor(tt.a, tt.b); got != tt.want {
			t.Errorf("Divisor(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
		if got := DivisorInverse(tt.b, tt.a); got != tt.want {
			t.Errorf("DivisorInverse(%d, %d) = %v, want %v", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestBitOrders(t *testing.T) {
	// 6 (0110) is contained in 14 (1110).
	if !BitSuperset(6, 14) {
		t.Error("BitSuperset(6, 14) = false, want true")
	}
	if BitSuperset(14, 6) {
		t.Error("BitSuperset(14, 6) = true, want false")
	}
	if !BitSubset(14, 6) {
		t.Error("BitSubset(14, 6) = false, want true")
	}
	if BitSubset(6, 14) {
		t.Error("BitSubset(6, 14) = true, want false")
	}
	// Reflexivity.
	if !BitSuperset(14, 14) || !BitSubset(14, 14) {
		t.Error("bit orderings are not reflexive")
	}
}

func TestCharSubset(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"", "abcd", true},
		{"ab", "abcd", true},
		{"bcd", "abcd", true},
		{"abcd", "ab", false},
		{"z", "abcd", false},
		{"aab", "ab", true},
	}
	for _, tt := range tests {
		if got := CharSubset(tt.a, tt.b); got != tt.want {
			t.Errorf("CharSubset(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestBitDrop(t *testing.T) {
	got := BitDrop(14) // 1110 -> 1100, 1010, 0110
	slices.Sort(got)
	if !slices.Equal(got, []int{6, 10, 12}) {
		t.Errorf("BitDrop(14) = %v, want [6 10 12]", got)
	}
	if got := BitDrop(0); len(got) != 0 {
		t.Errorf("BitDrop(0) = %v, want empty", got)
	}
}

func TestBitRaise(t *testing.T) {
	raise := BitRaise(8)
	got := raise(6) // 0110 -> 0111, 1110
	slices.Sort(got)
	if !slices.Equal(got, []int{7, 14}) {
		t.Errorf("BitRaise(8)(6) = %v, want [7 14]", got)
	}
	if got := raise(15); len(got) != 0 {
		t.Errorf("BitRaise(8)(15) = %v, want empty", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		e, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) missed a registered name", name)
		}
		switch e.Domain {
		case DomainInt:
			if e.Int == nil || e.Str != nil {
				t.Errorf("entry %q: int ordering wired incorrectly", name)
			}
		case DomainString:
			if e.Str == nil || e.Int != nil {
				t.Errorf("entry %q: string ordering wired incorrectly", name)
			}
		}
	}
	if _, ok := Lookup("no-such-order"); ok {
		t.Error("Lookup of an unknown name succeeded")
	}
}
