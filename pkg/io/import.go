package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/posetviz/pkg/poset"
)

// ReadJSON decodes a snapshot from r and rebuilds the poset under leq.
// Elements are re-inserted in document order; the snapshot's cover list is
// ignored because the diagram is fully determined by the elements and the
// ordering.
func ReadJSON[E comparable](leq poset.Ordering[E], r io.Reader) (*poset.Poset[E], Meta, error) {
	var doc document[E]
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, Meta{}, fmt.Errorf("decode: %w", err)
	}
	return poset.NewWith(leq, doc.Elements), Meta{Name: doc.Name, Ordering: doc.Ordering}, nil
}

// ImportJSON reads a snapshot file and rebuilds the poset under leq.
// This is a convenience wrapper around [ReadJSON] for file-based input.
func ImportJSON[E comparable](leq poset.Ordering[E], path string) (*poset.Poset[E], Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Meta{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(leq, f)
}
