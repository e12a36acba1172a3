package mdtree

// markPartitiveForestOneSet enforces that the vertices in verts form a
// module against the MD-subtrees built so far, by walking from each
// vertex's leaf up to the root, marking every node whose full set of
// children is covered ("full") and splitting degenerate nodes that are
// only partially covered.
//
// verts need not be sorted; leaves not yet created (vertex not placed by
// an earlier recursive call) are skipped, which cannot happen for a
// well-formed lex label but is guarded defensively.
func markPartitiveForestOneSet(a *arena, leaves []nodeRef, verts []int) {
	marked := make(map[nodeRef]bool)
	full := make(map[nodeRef]bool)

	var explore []nodeRef
	for _, v := range verts {
		if leaf := leaves[v]; leaf != nilRef {
			explore = append(explore, leaf)
		}
	}

	for len(explore) > 0 {
		n := explore[0]
		explore = explore[1:]
		full[n] = true

		if a.nodes[n].label == labelEmpty {
			a.nodes[n].label = labelHomogeneous
		}

		p := a.nodes[n].parent
		if p == nilRef {
			continue
		}

		marked[p] = true
		allFull := true
		for _, c := range a.nodes[p].children {
			if !full[c] {
				allFull = false
				break
			}
		}
		if allFull {
			delete(marked, p)
			explore = append(explore, p)
		}
	}

	for n := range marked {
		if a.isDegenerate(n) {
			splitDegenerateMarked(a, n, full)
		}

		if a.nodes[n].label != labelDead {
			a.nodes[n].label = labelDead
			for _, c := range a.nodes[n].children {
				if full[c] {
					a.nodes[c].flag = flagStar
				}
			}
		}
	}
}

// splitDegenerateMarked replaces n's children with at most one "full"
// aggregate and one "non-full" aggregate of the same degenerate type,
// when there are 2+ children on a side (a single child on a side is left
// in place rather than wrapped). Leaving exactly one full and one
// non-full child untouched (nA==1 && nB==1) matches the reference this
// package ports: no rewrap is needed for a node that is already split
// two ways.
func splitDegenerateMarked(a *arena, n nodeRef, full map[nodeRef]bool) {
	typ := a.nodes[n].typ

	var inFull, notInFull []nodeRef
	for _, c := range a.nodes[n].children {
		if full[c] {
			inFull = append(inFull, c)
		} else {
			notInFull = append(notInFull, c)
		}
	}

	nA, nB := len(inFull), len(notInFull)
	if nA < 2 && nB < 2 {
		return
	}

	var newChildren []nodeRef

	switch {
	case nA >= 2:
		agg := a.newInternal(typ)
		a.nodes[agg].label = labelHomogeneous
		a.nodes[agg].flag = flagStar
		for _, c := range inFull {
			a.addChild(agg, c)
		}
		newChildren = append(newChildren, agg)
	case nA == 1:
		a.nodes[inFull[0]].parent = n
		newChildren = append(newChildren, inFull[0])
	}

	switch {
	case nB >= 2:
		agg := a.newInternal(typ)
		a.nodes[agg].label = labelEmpty
		a.nodes[agg].flag = flagO
		for _, c := range notInFull {
			a.addChild(agg, c)
		}
		newChildren = append(newChildren, agg)
	case nB == 1:
		a.nodes[notInFull[0]].parent = n
		newChildren = append(newChildren, notInFull[0])
	}

	a.nodes[n].children = newChildren
}

// markPartitiveForestFinish walks a subtree postorder, propagating DEAD
// descendants up as BROKEN on their parent, and regrouping a BROKEN
// degenerate node's non-dead children into one trailing sibling when
// there are 2+ of them.
func markPartitiveForestFinish(a *arena, n nodeRef) {
	nbHomogeneousOrEmpty := 0
	for _, c := range a.nodes[n].children {
		markPartitiveForestFinish(a, c)
		if a.nodes[c].label.homogeneousOrEmpty() {
			nbHomogeneousOrEmpty++
		}
	}

	if !a.nodes[n].label.deadOrBroken() {
		return
	}

	if p := a.nodes[n].parent; p != nilRef && a.nodes[p].label != labelDead {
		a.nodes[p].label = labelBroken
	}

	if a.nodes[n].label == labelBroken && a.isDegenerate(n) && nbHomogeneousOrEmpty > 1 {
		agg := a.newInternal(a.nodes[n].typ)
		a.nodes[agg].label = labelEmpty
		a.nodes[agg].flag = flagO

		var remaining []nodeRef
		for _, c := range a.nodes[n].children {
			if a.nodes[c].label.homogeneousOrEmpty() {
				a.addChild(agg, c)
			} else {
				remaining = append(remaining, c)
			}
		}
		remaining = append(remaining, agg)
		a.nodes[agg].parent = n
		a.nodes[n].children = remaining
	}
}
