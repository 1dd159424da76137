package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/posetviz/pkg/poset"
)

// Meta carries snapshot metadata alongside the structure itself.
type Meta struct {
	// Name labels the snapshot (optional).
	Name string
	// Ordering names the ordering the poset was built under. Import does
	// not resolve it; it is recorded so a reader knows how to rebuild.
	Ordering string
}

type document[E any] struct {
	Name     string     `json:"name,omitempty"`
	Ordering string     `json:"ordering,omitempty"`
	Elements []E        `json:"elements"`
	Covers   []cover[E] `json:"covers,omitempty"`
}

type cover[E any] struct {
	Parent E `json:"parent"`
	Child  E `json:"child"`
}

// WriteJSON encodes a poset snapshot as JSON and writes it to w.
// Elements appear in insertion order; one cover entry is written per edge
// of the Hasse diagram, sentinels excluded. The output can be re-imported
// with [ReadJSON].
func WriteJSON[E comparable](p *poset.Poset[E], meta Meta, w io.Writer) error {
	out := document[E]{
		Name:     meta.Name,
		Ordering: meta.Ordering,
		Elements: p.Elements(),
	}

	for _, e := range out.Elements {
		children, _ := p.Children(e)
		for _, c := range children {
			out.Covers = append(out.Covers, cover[E]{Parent: e, Child: c})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a poset snapshot to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON[E comparable](p *poset.Poset[E], meta Meta, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(p, meta, f)
}
