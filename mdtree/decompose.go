package mdtree

import (
	"github.com/modtree/chpt/core"
	"github.com/modtree/chpt/lexbfs"
)

// Compute returns the modular decomposition tree of g, or (nil, nil) for
// the empty graph. The only errors Compute can return are wrapped
// ErrInternal: a defensive invariant check failing, which indicates a
// bug in this package rather than bad input.
func Compute(g *core.Graph) (*Tree, error) {
	if g.Size() == 0 {
		return nil, nil
	}

	lex := lexbfs.Compute(g)

	e := &engine{
		g:         g,
		sigma:     lex.Sigma,
		xsliceLen: lex.XSliceLen,
		lexLabel:  lex.LexLabel,
		arena:     newArena(g.Size() * 2),
		leaves:    make([]nodeRef, g.Size()),
		sc:        newScratch(),
	}
	for i := range e.leaves {
		e.leaves[i] = nilRef
	}

	roots, err := e.decompose(0, g.Size(), 0)
	if err != nil {
		return nil, err
	}
	if len(roots) != 1 {
		return nil, internalErrorf("decompose produced %d roots for a non-empty graph, expected exactly 1", len(roots))
	}

	root, err := e.convert(roots[0])
	if err != nil {
		return nil, err
	}

	return &Tree{Root: root}, nil
}

// engine carries the state threaded through every recursive decompose
// call for one Compute invocation: the graph and its LexBFS side
// tables, never mutated; the arena and per-vertex leaf index, append-
// only; and the scratch buffers reused by the connected/non-isolated
// case across every recursive frame.
type engine struct {
	g         *core.Graph
	sigma     []int
	xsliceLen []int
	lexLabel  [][]int

	arena  *arena
	leaves []nodeRef
	sc     *scratch
}

// decompose builds the MD-subtree for the LexBFS range
// [offset, offset+length), whose vertices' lex labels are understood to
// already have their first lexLabelOffset entries accounted for by an
// enclosing frame. It returns the subtree's root(s): normally one, except
// for the intermediate slice recursion where a slice can itself already
// be fully decomposed into one root (callers always get exactly one
// root back from the two base cases and from the three general-case
// branches; multiple values only flow internally between a slice
// recursion and its caller within this file).
func (e *engine) decompose(offset, length, lexLabelOffset int) ([]nodeRef, error) {
	switch length {
	case 0:
		return nil, nil
	case 1:
		x := e.sigma[offset]
		leaf := e.arena.newLeaf(x)
		e.leaves[x] = leaf
		return []nodeRef{leaf}, nil
	case 2:
		return e.decomposePair(offset, lexLabelOffset), nil
	}

	x := e.sigma[offset]

	var mdi [][]nodeRef
	i := offset + 1
	firstOfLastSlice := i
	for i < offset+length {
		firstOfLastSlice = i
		sliceLen := e.xsliceLen[i]

		sliceRoots, err := e.decompose(i, sliceLen, len(e.lexLabel[i]))
		if err != nil {
			return nil, err
		}
		for _, r := range sliceRoots {
			e.arena.setLabelFlagRecursive(r, labelEmpty, flagO)
		}
		mdi = append(mdi, sliceRoots)

		i += sliceLen
	}

	isConnected := len(e.lexLabel[firstOfLastSlice]) > lexLabelOffset
	xIsIsolated := len(e.lexLabel[offset+1]) <= lexLabelOffset

	switch {
	case xIsIsolated:
		return e.assembleIsolatedPivot(x, mdi), nil
	case !isConnected:
		return e.assembleDisconnected(x, offset, length, lexLabelOffset, mdi)
	default:
		return e.assembleConnected(x, offset, length, lexLabelOffset, mdi)
	}
}

func (e *engine) decomposePair(offset, lexLabelOffset int) []nodeRef {
	x := e.sigma[offset]
	y := e.sigma[offset+1]

	typ := Parallel
	if len(e.lexLabel[offset+1]) > lexLabelOffset {
		typ = Series
	}

	root := e.arena.newInternal(typ)
	leafX := e.arena.newLeaf(x)
	leafY := e.arena.newLeaf(y)
	e.arena.addChild(root, leafX)
	e.arena.addChild(root, leafY)
	e.leaves[x] = leafX
	e.leaves[y] = leafY

	return []nodeRef{root}
}

// assembleIsolatedPivot handles a pivot with no neighbors in the first
// slice: x joins the first slice's roots under a PARALLEL node, reusing
// that slice's own root if it is already a single PARALLEL node.
func (e *engine) assembleIsolatedPivot(x int, mdi [][]nodeRef) []nodeRef {
	md := mdi[0]

	leafX := e.arena.newLeaf(x)
	e.leaves[x] = leafX

	if len(md) == 1 && e.arena.nodes[md[0]].typ == Parallel {
		e.arena.addChild(md[0], leafX)
		return md
	}

	root := e.arena.newInternal(Parallel)
	e.arena.addChild(root, leafX)
	for _, n := range md {
		e.arena.addChild(root, n)
	}

	return []nodeRef{root}
}

// assembleDisconnected handles the case where the range splits into an
// x-connected component (x plus every slice reachable from it, which
// LexBFS places first) and one or more disconnected components. The
// x-component is assembled by assembleConnected over its own sub-range;
// it and the disconnected components become siblings under one
// top-level PARALLEL.
func (e *engine) assembleDisconnected(x, offset, length, lexLabelOffset int, mdi [][]nodeRef) ([]nodeRef, error) {
	var disconnected []nodeRef
	compLen, k := 1+e.xsliceLen[offset+1], 1

	sliceStart := offset + 1 + e.xsliceLen[offset+1]
	for sliceIdx := 1; sliceIdx < len(mdi); sliceIdx++ {
		if len(e.lexLabel[sliceStart]) > lexLabelOffset {
			compLen, k = compLen+e.xsliceLen[sliceStart], k+1
		} else {
			disconnected = append(disconnected, mdi[sliceIdx]...)
		}
		sliceStart += e.xsliceLen[sliceStart]
	}

	xComponent, err := e.assembleConnected(x, offset, compLen, lexLabelOffset, mdi[:k])
	if err != nil {
		return nil, err
	}

	root := e.arena.newInternal(Parallel)
	e.arena.addChild(root, xComponent[0])
	for _, n := range disconnected {
		if e.arena.nodes[n].typ == Parallel {
			for _, c := range e.arena.nodes[n].children {
				e.arena.addChild(root, c)
			}
		} else {
			e.arena.addChild(root, n)
		}
	}

	return []nodeRef{root}, nil
}

// assembleConnected is the main path: x has neighbors in the first
// slice and the whole range is connected through it. It tags connected
// components, marks the partitive forest for every non-pivot slice,
// extracts the marked/broken roots, groups everything into clusters, and
// finally runs parse-and-assemble to fold the clusters into one subtree.
func (e *engine) assembleConnected(x, offset, length, lexLabelOffset int, mdi [][]nodeRef) ([]nodeRef, error) {
	for sliceIdx, roots := range mdi {
		setConnectedComponentsTag(e.arena, roots, sliceIdx == 0)
	}

	i := offset + 1
	first := true
	for i < offset+length {
		if !first {
			label := e.lexLabel[i]
			if len(label) > lexLabelOffset {
				markPartitiveForestOneSet(e.arena, e.leaves, label[lexLabelOffset:])
			}
		}
		first = false
		i += e.xsliceLen[i]
	}

	for _, roots := range mdi {
		for _, n := range roots {
			markPartitiveForestFinish(e.arena, n)
		}
	}

	for sliceIdx := range mdi {
		mdi[sliceIdx] = extractAndSort(e.arena, mdi[sliceIdx], sliceIdx == 0)
	}

	sc := e.sc
	sc.reset()

	for sliceIdx, roots := range mdi {
		prevCC := -1
		for _, n := range roots {
			cc := e.arena.nodes[n].ccTag

			leaf := n
			for len(e.arena.nodes[leaf].children) > 0 {
				leaf = e.arena.nodes[leaf].children[0]
			}
			v := e.arena.nodes[leaf].vertex

			e.arena.nodes[n].sliceIdx = sliceIdx

			if cc == -1 || cc != prevCC {
				sc.clusters = append(sc.clusters, nil)
			}
			last := len(sc.clusters) - 1
			sc.clusters[last] = append(sc.clusters[last], module{root: n, leftmost: leaf})
			prevCC = cc

			sc.clusterOfVertex[v] = last
		}
	}

	leafX := e.arena.newLeaf(x)
	e.leaves[x] = leafX
	p := len(sc.clusters)
	sc.clusters = append(sc.clusters, []module{{root: leafX, leftmost: leafX}})
	q := len(sc.clusters) - 1

	computeLeft(e.g, e.arena, e.sigma, e.xsliceLen, offset, length, p, sc)
	computeRight(e.sigma, e.xsliceLen, e.lexLabel, offset, length, lexLabelOffset, p, q, e.arena, sc)

	return parseAndAssemble(e.g, e.arena, p, q, sc)
}

// convert turns an arena subtree into its public, immutable equivalent.
func (e *engine) convert(r nodeRef) (*Node, error) {
	n := &e.arena.nodes[r]
	if n.typ == Normal {
		return &Node{Type: Normal, Vertex: n.vertex}, nil
	}
	if len(n.children) < 2 {
		return nil, internalErrorf("internal %s node has %d children, want at least 2", n.typ, len(n.children))
	}

	out := &Node{Type: n.typ, Children: make([]*Node, 0, len(n.children))}
	for _, c := range n.children {
		child, err := e.convert(c)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, child)
	}

	return out, nil
}
