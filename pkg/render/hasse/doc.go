// Package hasse renders the Hasse diagram of a poset as a picture.
//
// [ToDOT] converts the cover graph to Graphviz DOT: one box per member,
// one arrow per cover edge, greater elements above lesser ones. The
// sentinels that anchor the diagram internally are never drawn. [RenderSVG]
// and [RenderPNG] run the DOT through the embedded Graphviz engine.
//
// Because DOT output is deterministic for a given insertion history, the
// DOT text doubles as the cache key for rendered artifacts (see the cache
// package).
package hasse
