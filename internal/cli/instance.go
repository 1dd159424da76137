package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/posetviz/pkg/observability"
	"github.com/matzehuels/posetviz/pkg/poset"
	"github.com/matzehuels/posetviz/pkg/posetfile"
	"github.com/matzehuels/posetviz/pkg/render/hasse"
)

// buildInstance loads a description and builds its poset, emitting
// observability events around the construction.
func buildInstance(ctx context.Context, path string) (*posetfile.Instance, error) {
	f, err := posetfile.Load(path)
	if err != nil {
		return nil, err
	}

	elementCount := len(f.Ints) + len(f.Strings)
	if f.Range != nil {
		elementCount += f.Range.End - f.Range.Start + 1
	}
	observability.Build().OnBuildStart(ctx, f.Ordering, elementCount)

	start := time.Now()
	inst, err := f.Build()
	if err != nil {
		observability.Build().OnBuildComplete(ctx, f.Ordering, 0, time.Since(start), err)
		return nil, err
	}
	observability.Build().OnBuildComplete(ctx, f.Ordering, inst.Size(), time.Since(start), nil)
	return inst, nil
}

// checkInstance runs the invariant checker with observability events.
func checkInstance(ctx context.Context, inst *posetfile.Instance) error {
	start := time.Now()
	err := inst.Check()
	observability.Build().OnValidateComplete(ctx, inst.Size(), time.Since(start), err)
	return err
}

// instanceDOT renders an instance's Hasse diagram as DOT, whichever element
// domain it carries.
func instanceDOT(inst *posetfile.Instance, opts hasse.Options) string {
	if inst.Ints != nil {
		return hasse.ToDOT(inst.Ints, opts)
	}
	return hasse.ToDOT(inst.Strings, opts)
}

// instanceCovers counts the cover edges of the diagram.
func instanceCovers(inst *posetfile.Instance) int {
	if inst.Ints != nil {
		return coverCount(inst.Ints)
	}
	return coverCount(inst.Strings)
}

func coverCount[E comparable](p *poset.Poset[E]) int {
	n := 0
	for _, e := range p.Elements() {
		children, _ := p.Children(e)
		n += len(children)
	}
	return n
}

// instanceExtremes returns the maximal and minimal members in display form.
func instanceExtremes(inst *posetfile.Instance) (maxima, minima []string) {
	if inst.Ints != nil {
		return formatAll(inst.Ints.Maxima()), formatAll(inst.Ints.Minima())
	}
	return formatAll(inst.Strings.Maxima()), formatAll(inst.Strings.Minima())
}

func formatAll[E comparable](elems []E) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = fmt.Sprintf("%v", e)
	}
	return out
}
