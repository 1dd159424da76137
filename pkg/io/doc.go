// Package io provides JSON import and export of poset snapshots.
//
// A snapshot records the members of a poset in insertion order together
// with its cover edges. The edges are informational: on import the poset is
// rebuilt by re-inserting the elements under the caller's ordering, so a
// tampered or stale edge list can never corrupt the structure.
//
// Snapshots complement the TOML poset descriptions consumed by the CLI
// (package posetfile): descriptions declare how to build a poset, snapshots
// record what one looked like.
package io
