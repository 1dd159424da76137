package hasse

import (
	"strings"
	"testing"

	"github.com/matzehuels/posetviz/pkg/poset"
	"github.com/matzehuels/posetviz/pkg/poset/orders"
)

func TestToDOTStructure(t *testing.T) {
	p := poset.NewWith(orders.Divisor, []int{2, 3, 6})
	dot := ToDOT(p, Options{})

	for _, want := range []string{
		"digraph hasse {",
		"rankdir=TB;",
		`"2" [label="2"];`,
		`"3" [label="3"];`,
		`"6" [label="6"];`,
		`"6" -> "2";`,
		`"6" -> "3";`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "top") || strings.Contains(dot, "bottom") {
		t.Errorf("DOT leaks sentinels:\n%s", dot)
	}
}

func TestToDOTTitle(t *testing.T) {
	p := poset.NewWith(orders.Divisor, []int{2})
	dot := ToDOT(p, Options{Name: "divisors"})
	if !strings.Contains(dot, `label="divisors";`) {
		t.Errorf("DOT missing title:\n%s", dot)
	}
}

func TestToDOTHighlight(t *testing.T) {
	p := poset.NewWith(orders.Divisor, []int{2, 4, 8})
	dot := ToDOT(p, Options{Highlight: true})

	if !strings.Contains(dot, `"8" [label="8", fillcolor=lightgoldenrod1];`) {
		t.Errorf("maximal member not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"2" [label="2", fillcolor=lightblue];`) {
		t.Errorf("minimal member not highlighted:\n%s", dot)
	}
	if !strings.Contains(dot, `"4" [label="4"];`) {
		t.Errorf("interior member styled unexpectedly:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	build := func() string {
		p := poset.NewWith(orders.CharSubset, []string{"''", "'abcd'", "'ab'", "'bcd'"})
		return ToDOT(p, Options{Highlight: true})
	}
	if build() != build() {
		t.Error("ToDOT output is not deterministic for identical histories")
	}
}

func TestToDOTEmpty(t *testing.T) {
	p := poset.New(orders.Divisor)
	dot := ToDOT(p, Options{})
	if !strings.Contains(dot, "digraph hasse {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("empty DOT malformed:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("normalizeViewBox = %s", out)
	}

	// SVG without a viewBox passes through untouched.
	plain := []byte(`<svg xmlns="x">`)
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("normalizeViewBox altered viewBox-less SVG")
	}
}
