// Package lexbfs implements extended Lexicographic Breadth-First Search
// (LexBFS) via partition refinement, the linear-time ordering pass that
// feeds the Corneil–Habib–Paul–Tedder modular decomposition engine in
// package mdtree.
//
// What
//
//   - Compute produces, in one O(n+m) pass, the LexBFS ordering sigma,
//     its inverse sigmaInv, the per-position slice-length array
//     XSliceLen, and the lexicographic label sequence LexLabel that
//     package mdtree consumes as immutable side tables.
//   - A slice is a maximal run of positions sharing the same
//     lexicographic-label prefix at the moment the pivot for that run is
//     visited; XSliceLen[i] records the length of the slice that starts
//     at position i.
//
// Why
//
//   - LexBFS orderings satisfy a "four-point condition": if a<b<c in the
//     ordering and (a,c) is an edge but (b,c) is not, some d<a has (d,b)
//     an edge and (d,c) not. mdtree's recursive slice decomposition
//     relies on this property to recurse correctly over contiguous
//     ranges of the ordering.
//
// Determinism
//
//   - Neighbors are visited in ascending vertex-id order (core.Graph.
//     Neighbors returns a sorted snapshot), so Compute is fully
//     reproducible for a given starting vertex.
//
// Complexity (n = vertices, m = edges)
//
//   - Time:   O(n + m). Each edge contributes O(1) amortized work to the
//     refinement step; see Compute's doc comment for the invariant that
//     makes this true.
//   - Memory: O(n + m) for the partition-refinement bookkeeping.
//
// Options
//
//   - WithStart(v): pin the first vertex visited instead of defaulting to
//     vertex 0. Any start vertex yields a valid LexBFS ordering; this
//     does not change Compute's asymptotic behavior or its guarantees.
package lexbfs
