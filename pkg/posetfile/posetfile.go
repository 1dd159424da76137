// Package posetfile loads TOML descriptions of partially-ordered sets.
//
// A description names an ordering from the registry in
// [github.com/matzehuels/posetviz/pkg/poset/orders] and lists the elements
// to insert, either explicitly or as an integer range:
//
//	name     = "divisors up to 999"
//	ordering = "divisor"
//
//	[range]
//	start = 1
//	end   = 999
//
// String orderings take their elements from `strings`, integer orderings
// from `ints` and/or `[range]`. Elements are inserted in document order
// (explicit elements first, then the range), so diagrams are reproducible.
package posetfile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/posetviz/pkg/errors"
	"github.com/matzehuels/posetviz/pkg/poset"
	"github.com/matzehuels/posetviz/pkg/poset/orders"
)

// File is a parsed poset description.
type File struct {
	Name     string   `toml:"name"`
	Ordering string   `toml:"ordering"`
	Ints     []int    `toml:"ints"`
	Strings  []string `toml:"strings"`
	Range    *Range   `toml:"range"`
}

// Range describes an inclusive run of integer elements.
type Range struct {
	Start int `toml:"start"`
	End   int `toml:"end"`
}

// Instance is a built poset together with its description metadata.
// Exactly one of Ints and Strings is non-nil, matching the ordering's
// domain.
type Instance struct {
	Name     string
	Ordering orders.Entry
	Ints     *poset.Poset[int]
	Strings  *poset.Poset[string]
}

// Load reads and validates a poset description from path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}

	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse %s", path)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks the description against the ordering registry.
func (f *File) Validate() error {
	if f.Ordering == "" {
		return errors.New(errors.ErrCodeInvalidOrdering, "ordering is required")
	}
	entry, ok := orders.Lookup(f.Ordering)
	if !ok {
		return errors.New(errors.ErrCodeInvalidOrdering, "unknown ordering: %s", f.Ordering)
	}

	switch entry.Domain {
	case orders.DomainInt:
		if len(f.Strings) > 0 {
			return errors.New(errors.ErrCodeInvalidElements,
				"ordering %s compares integers, but the description lists strings", f.Ordering)
		}
	case orders.DomainString:
		if len(f.Ints) > 0 || f.Range != nil {
			return errors.New(errors.ErrCodeInvalidElements,
				"ordering %s compares strings, but the description lists integers", f.Ordering)
		}
	}

	if f.Range != nil && f.Range.End < f.Range.Start {
		return errors.New(errors.ErrCodeInvalidElements,
			"range end %d precedes start %d", f.Range.End, f.Range.Start)
	}
	return nil
}

// Build constructs the described poset, inserting elements in document
// order: explicit elements first, then the range.
func (f *File) Build() (*Instance, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	entry, _ := orders.Lookup(f.Ordering)

	inst := &Instance{Name: f.Name, Ordering: entry}
	switch entry.Domain {
	case orders.DomainInt:
		inst.Ints = poset.NewWith(entry.Int, f.elements())
	case orders.DomainString:
		inst.Strings = poset.NewWith(entry.Str, f.Strings)
	}
	return inst, nil
}

// elements flattens the explicit integers and the range in document order.
func (f *File) elements() []int {
	out := make([]int, 0, len(f.Ints))
	out = append(out, f.Ints...)
	if f.Range != nil {
		for i := f.Range.Start; i <= f.Range.End; i++ {
			out = append(out, i)
		}
	}
	return out
}

// Size returns the member count of the built poset.
func (i *Instance) Size() int {
	if i.Ints != nil {
		return i.Ints.Size()
	}
	return i.Strings.Size()
}

// Dump returns the poset's text rendering.
func (i *Instance) Dump() string {
	if i.Ints != nil {
		return i.Ints.String()
	}
	return i.Strings.String()
}

// Check runs the structural invariant checker on the built poset.
func (i *Instance) Check() error {
	var err error
	if i.Ints != nil {
		err = i.Ints.Validate()
	} else {
		err = i.Strings.Validate()
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeCorrupt, err, "poset %q failed validation", i.Name)
	}
	return nil
}
