// Package core provides the fundamental in-memory Graph representation
// consumed by lexbfs and mdtree.
//
// What
//
//   - Graph is a simple, undirected, unweighted graph on integer vertices
//     0..n-1, built once via New/AddEdge and read-only afterward.
//   - HasEdge(u, v) offers O(1) membership via an internal hash set, and
//     Neighbors(v) offers enumeration via a sorted, freshly materialized
//     snapshot.
//   - Self-loops are silently ignored; duplicate edges are idempotent.
//
// Why
//
//   - lexbfs and mdtree never mutate the graphs they are handed; giving
//     them a small, deliberately read-only type after construction keeps
//     the rest of the module free of locking concerns (see mdtree's
//     concurrency notes: many Compute calls may share one *Graph).
//
// Complexity (n = vertices, m = edges)
//
//   - AddEdge: O(1) amortized.
//   - HasEdge: O(1).
//   - Neighbors(v): O(deg(v) log deg(v)) for the sort; call once per
//     vertex and reuse the result, which is what lexbfs does (mdtree
//     queries adjacency through HasEdge only).
//   - Edges(): O(n + m log m), for the final sort.
//
// Errors
//
//   - ErrNegativeSize  if New is called with n < 0.
//   - ErrVertexOutOfRange  if AddEdge is given a vertex outside [0,n).
package core
