// Package chpt computes the modular decomposition tree (MD-tree) of an
// undirected simple graph in linear time, using the
// Corneil–Habib–Paul–Tedder (2008) algorithm.
//
// A module of a graph G=(V,E) is a subset M⊆V such that every vertex
// outside M is either adjacent to all of M or to none of M. The MD-tree is
// the canonical hierarchical decomposition of V: internal nodes are
// labelled SERIES (the quotient on their children is a complete graph),
// PARALLEL (the quotient is edgeless), or PRIME (neither); leaves are the
// vertices. Consecutive SERIES nodes, and consecutive PARALLEL nodes, are
// always merged, so the tree is unique.
//
// Three subpackages realize the algorithm:
//
//	core/   — the read-only Graph type: vertices 0..n-1, O(1) adjacency.
//	lexbfs/ — extended Lexicographic BFS via partition refinement,
//	          producing the ordering and side tables the decomposition
//	          engine consumes.
//	mdtree/ — the recursive slice decomposition, partitive-forest marking,
//	          and parse-and-assemble phases that build the final tree.
//
// Quick example:
//
//	g, _ := core.New(4)
//	g.AddEdge(0, 1)
//	g.AddEdge(1, 2)
//	g.AddEdge(2, 3)
//	tree, _ := mdtree.Compute(g) // PRIME[0,1,2,3] (P4 has no modules)
//
// This module is intentionally dependency-free in production code: it has
// no I/O, no logging, and no serialization — converting a host graph's
// edge list into a core.Graph, and a resulting *mdtree.Tree back into
// vertex identifiers or JSON, is left to the caller.
package chpt
