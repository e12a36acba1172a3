package mdtree

import "github.com/modtree/chpt/core"

// collectVertices appends every leaf vertex under n into into.
func collectVertices(a *arena, n nodeRef, into map[int]struct{}) {
	if a.isLeaf(n) {
		into[a.nodes[n].vertex] = struct{}{}
		return
	}
	for _, c := range a.nodes[n].children {
		collectVertices(a, c, into)
	}
}

// addToRoot grafts node onto root, which is being built as type
// rootType: if node already has that same degenerate type, its children
// are spliced in directly instead of nesting a redundant node, keeping
// the "no two adjacent same-type degenerate nodes" invariant.
func addToRoot(a *arena, root, node nodeRef, rootType NodeType) {
	if rootType != Prime && a.nodes[node].typ == rootType {
		for _, c := range a.nodes[node].children {
			a.addChild(root, c)
		}
		return
	}
	a.addChild(root, node)
}

// addToPrimeNode flattens node into primeRoot's children down to
// leaves: a PRIME root's children must themselves be leaves once the
// safety-net PRIME case fires, since at that point no structure below it
// can be trusted to be a real module.
func addToPrimeNode(a *arena, primeRoot, node nodeRef) {
	if a.isLeaf(node) {
		a.addChild(primeRoot, node)
		return
	}
	for _, c := range a.nodes[node].children {
		addToPrimeNode(a, primeRoot, c)
	}
}

func setsEqual(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for v := range a {
		if _, ok := b[v]; !ok {
			return false
		}
	}
	return true
}

func isClusterAdjacentToCurrentSet(g *core.Graph, a *arena, clusters [][]module, idx int, currentVertices map[int]struct{}) bool {
	if idx < 0 || idx >= len(clusters) {
		return false
	}
	for _, m := range clusters[idx] {
		u := a.nodes[m.leftmost].vertex
		for v := range currentVertices {
			if g.HasEdge(u, v) {
				return true
			}
		}
	}
	return false
}

// computeLeft fills scratch.left: Left(j)=j for j<=p (the pivot's own
// cluster and everything before it needs no tightening), and for every
// cluster to the pivot's right, the largest lp<p such that every cluster
// 0..lp-1's leftmost vertex is adjacent to that cluster's slice-leading
// vertex.
func computeLeft(g *core.Graph, a *arena, sigma, xsliceLen []int, offset, length, p int, sc *scratch) {
	sc.left = sc.left[:0]
	for j := 0; j <= p; j++ {
		sc.left = append(sc.left, j)
	}

	i := offset + 1
	s := 0
	k := p + 1
	for i < offset+length {
		if s > 0 {
			v := sigma[i]
			lp := 0
			for lp < p {
				adjacent := true
				for _, m := range sc.clusters[lp] {
					u := a.nodes[m.leftmost].vertex
					if !g.HasEdge(u, v) {
						adjacent = false
						break
					}
				}
				if !adjacent {
					break
				}
				lp++
			}
			for k < len(sc.clusters) && a.nodes[sc.clusters[k][0].root].sliceIdx == s {
				sc.left = append(sc.left, lp)
				k++
			}
		}
		i += xsliceLen[i]
		s++
	}
}

// computeRight fills scratch.right: Right(j)=p for j<=p (nothing before
// the pivot can be skipped over), Right(j)=j for p<j<=q, then tightened
// downward per cluster by scanning each slice's lex-label suffix.
func computeRight(sigma, xsliceLen []int, lexLabel [][]int, offset, length, lexLabelOffset, p, q int, a *arena, sc *scratch) {
	sc.right = sc.right[:0]
	for j := 0; j <= p; j++ {
		sc.right = append(sc.right, p)
	}
	for j := p + 1; j <= q; j++ {
		sc.right = append(sc.right, j)
	}

	i := offset + 1
	s := 0
	j := 0
	for i < offset+length {
		for j+1 < len(sc.clusters) && a.nodes[sc.clusters[j+1][0].root].sliceIdx == s {
			j++
		}

		if s > 0 {
			label := lexLabel[i]
			for idx := lexLabelOffset; idx < len(label); idx++ {
				v := label[idx]
				if clusterIdx, ok := sc.clusterOfVertex[v]; ok && j > sc.right[clusterIdx] {
					sc.right[clusterIdx] = j
				}
			}
		} else {
			j++
		}

		i += xsliceLen[i]
		s++
	}
}

// parseAndAssemble consumes clusters[0..q] (p is the pivot's own
// cluster, q the last) and iteratively grows a current SERIES or
// PARALLEL root outward from p, bounded each step by Left/Right, until
// it covers the whole range — or a step violates the module property, in
// which case every remaining cluster is flattened into one PRIME root.
func parseAndAssemble(g *core.Graph, a *arena, p, q int, sc *scratch) ([]nodeRef, error) {
	var roots []nodeRef
	for _, m := range sc.clusters[p] {
		roots = append(roots, m.root)
	}

	l, r := p, p
	currentVertices := make(map[int]struct{})
	for _, m := range sc.clusters[p] {
		collectVertices(a, m.root, currentVertices)
	}

	for l > 0 || r < q {
		oldL, oldR := l, r

		var lp, rp int
		var t NodeType
		switch {
		case l > 0 && isClusterAdjacentToCurrentSet(g, a, sc.clusters, l-1, currentVertices):
			lp, rp, t = l-1, r, Series
		case r < q:
			lp, rp, t = l, r+1, Parallel
		case l > 0:
			lp, rp, t = l-1, r, Parallel
		default:
			lp, rp, t = l, r, Series
		}

		expandedLeft, expandedRight := false, false
		for lp < l || r < rp {
			if lp < l {
				l--
				expandedLeft = true
			} else {
				r++
				expandedRight = true
			}

			idx := r
			if l < oldL {
				idx = l
			}
			if idx >= 0 && idx < len(sc.left) {
				if newLp := sc.left[idx]; newLp < lp {
					lp = newLp
				}
			}
			if idx >= 0 && idx < len(sc.right) {
				if newRp := sc.right[idx]; newRp > rp {
					rp = newRp
				}
			}
		}

		newVertices := make(map[int]struct{})
		for i := l; i < oldL; i++ {
			for _, m := range sc.clusters[i] {
				collectVertices(a, m.root, newVertices)
			}
		}
		for i := oldR + 1; i <= r; i++ {
			for _, m := range sc.clusters[i] {
				collectVertices(a, m.root, newVertices)
			}
		}

		totalExpansion := (oldL - l) + (r - oldR)
		forcedBothDirections := expandedLeft && expandedRight

		violatesModuleProperty := modulePropertyViolated(g, t, currentVertices, newVertices)

		if forcedBothDirections || totalExpansion > 1 || violatesModuleProperty {
			primeRoot := a.newInternal(Prime)
			for i := 0; i <= q; i++ {
				for _, m := range sc.clusters[i] {
					addToPrimeNode(a, primeRoot, m.root)
				}
			}
			return []nodeRef{primeRoot}, nil
		}

		root := a.newInternal(t)
		for i := l; i < oldL; i++ {
			for _, m := range sc.clusters[i] {
				addToRoot(a, root, m.root, t)
			}
		}
		if len(roots) > 0 {
			prev := roots[len(roots)-1]
			roots = roots[:len(roots)-1]
			addToRoot(a, root, prev, t)
		}
		for i := oldR + 1; i <= r; i++ {
			for _, m := range sc.clusters[i] {
				addToRoot(a, root, m.root, t)
			}
		}
		roots = append(roots, root)

		for v := range newVertices {
			currentVertices[v] = struct{}{}
		}
	}

	return roots, nil
}

// modulePropertyViolated checks whether adding newVertices to
// currentVertices under the tentative type t would break the module
// property: every new vertex must be adjacent to every current vertex
// (SERIES), or every new vertex's external neighborhood (outside the
// union) must match an arbitrary current vertex's external neighborhood
// (PARALLEL).
func modulePropertyViolated(g *core.Graph, t NodeType, currentVertices, newVertices map[int]struct{}) bool {
	if len(newVertices) == 0 || len(currentVertices) == 0 {
		return false
	}

	switch t {
	case Series:
		for nv := range newVertices {
			for cv := range currentVertices {
				if !g.HasEdge(nv, cv) {
					return true
				}
			}
		}
		return false

	case Parallel:
		allInSet := make(map[int]struct{}, len(currentVertices)+len(newVertices))
		for v := range currentVertices {
			allInSet[v] = struct{}{}
		}
		for v := range newVertices {
			allInSet[v] = struct{}{}
		}

		var firstCurrent int
		for v := range currentVertices {
			firstCurrent = v
			break
		}
		expected := externalNeighborhood(g, firstCurrent, allInSet)

		for nv := range newVertices {
			if !setsEqual(externalNeighborhood(g, nv, allInSet), expected) {
				return true
			}
		}
		return false

	default:
		return false
	}
}

func externalNeighborhood(g *core.Graph, v int, excluded map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{})
	for u := 0; u < g.Size(); u++ {
		if _, in := excluded[u]; in {
			continue
		}
		if g.HasEdge(v, u) {
			out[u] = struct{}{}
		}
	}
	return out
}
