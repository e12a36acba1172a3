// Package mdtree computes the modular decomposition tree (MD-tree) of an
// undirected simple graph using the Corneil–Habib–Paul–Tedder (2008)
// linear-time algorithm.
//
// What
//
//   - Compute(g) returns the MD-tree as a *Tree of *Node: leaves (type
//     Normal) carry a vertex id, internal nodes (Series, Parallel, Prime)
//     carry an ordered list of children and nothing else. Consecutive
//     Series nodes, and consecutive Parallel nodes, are always merged.
//
// How
//
// Compute runs lexbfs.Compute once on the whole graph, then recursively
// decomposes contiguous ranges of the resulting ordering ("slices"):
//
//  1. Recursion: for each prefix pivot x, split the rest of the current
//     range into slices via XSliceLen and recursively decompose each one,
//     producing one or more MD-subtree roots per slice.
//  2. Marking: for every slice beyond the first, the set of vertices named
//     in that slice's lexicographic label must form a module relative to
//     the already-built subtrees. Marking mutates those subtrees — via a
//     partitive-forest algorithm — so that this holds, splitting
//     degenerate nodes that are only partially touched.
//  3. Parse-and-assemble: the marked, extracted roots are grouped into
//     clusters, bounded by Left/Right arrays, and iteratively combined
//     into SERIES, PARALLEL, or PRIME nodes working outward from the
//     pivot until the whole range collapses into one subtree.
//
// Three base cases terminate the recursion directly: an empty range, a
// single vertex, and a pair of vertices (SERIES if adjacent, else
// PARALLEL).
//
// Complexity (n = vertices, m = edges)
//
//   - Time:   O(n + m) for the recursion and marking passes. The
//     parse-and-assemble phase's PRIME-detection safety net rescans
//     adjacency on every step: for a PARALLEL step, modulePropertyViolated
//     computes each new vertex's external neighborhood by scanning all n
//     vertices, so that phase is not linear in the worst case.
//   - Memory: O(n + m); a single scratch buffer (clusters, Left, Right,
//     cluster-of-vertex) is reused across every recursive frame of one
//     Compute call rather than reallocated.
//
// Errors
//
//   - Compute never returns InvalidInput errors itself — those originate
//     from core.New/core.Graph.AddEdge before a Graph ever reaches this
//     package. Compute can return a wrapped ErrInternal if a defensive
//     invariant check fails; that indicates a bug in this package, not in
//     the caller's input.
//
// Concurrency
//
//   - A *core.Graph is read-only once built. Multiple goroutines may call
//     Compute on the same *core.Graph concurrently; each call allocates
//     its own private arena and scratch buffers and touches no shared
//     mutable state.
package mdtree
