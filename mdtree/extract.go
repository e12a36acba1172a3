package mdtree

// sortDeadRec reorders a DEAD node's children so that the ones on
// firstSlice's "kept" side (flagO vs flagStar, flipped by firstSlice)
// come first, recursing into dead/broken descendants first.
func sortDeadRec(a *arena, n nodeRef, firstSlice bool) {
	if !a.nodes[n].label.deadOrBroken() {
		return
	}
	for _, c := range a.nodes[n].children {
		sortDeadRec(a, c, firstSlice)
	}

	if a.nodes[n].label != labelDead {
		return
	}

	var front, back []nodeRef
	for _, c := range a.nodes[n].children {
		if firstSlice != (a.nodes[c].flag == flagO) {
			front = append(front, c)
		} else {
			back = append(back, c)
		}
	}
	a.nodes[n].children = append(front, back...)
}

// sortBrokenRec is sortDeadRec's counterpart for BROKEN nodes, ordering
// by homogeneous-or-empty instead of flag side.
func sortBrokenRec(a *arena, n nodeRef, firstSlice bool) {
	if !a.nodes[n].label.deadOrBroken() {
		return
	}
	for _, c := range a.nodes[n].children {
		sortBrokenRec(a, c, firstSlice)
	}

	if a.nodes[n].label != labelBroken {
		return
	}

	var front, back []nodeRef
	for _, c := range a.nodes[n].children {
		if firstSlice != a.nodes[c].label.homogeneousOrEmpty() {
			front = append(front, c)
		} else {
			back = append(back, c)
		}
	}
	a.nodes[n].children = append(front, back...)
}

// extractAndSort sorts every DEAD/BROKEN root's children into a stable
// order, then replaces each DEAD or BROKEN root in roots by its own
// (ordered) children, propagating its connected-component tag to them
// when it has one. A root that is neither DEAD nor BROKEN passes
// through unchanged.
func extractAndSort(a *arena, roots []nodeRef, firstSlice bool) []nodeRef {
	for _, r := range roots {
		sortDeadRec(a, r, firstSlice)
	}
	for _, r := range roots {
		sortBrokenRec(a, r, firstSlice)
	}

	var out []nodeRef
	for _, r := range roots {
		if !a.nodes[r].label.deadOrBroken() {
			out = append(out, r)
			continue
		}

		cc := a.nodes[r].ccTag
		for _, c := range a.nodes[r].children {
			if cc != -1 {
				a.nodes[c].ccTag = cc
			}
			a.nodes[c].parent = nilRef
			out = append(out, c)
		}
	}

	return out
}

// setConnectedComponentsTag assigns each root in roots a connected-
// component tag: a PRIME root, a PARALLEL root in the pivot slice, or a
// SERIES root in a non-pivot slice is "atomic" and gets its own running
// index; any other root gets -1 and its own children are tagged
// individually instead, each with its own running index.
func setConnectedComponentsTag(a *arena, roots []nodeRef, first bool) {
	i := 0
	for _, r := range roots {
		t := a.nodes[r].typ
		atomic := t == Prime || (first && t == Parallel) || (!first && t == Series)
		if atomic {
			a.nodes[r].ccTag = i
			i++
			continue
		}

		a.nodes[r].ccTag = -1
		for _, c := range a.nodes[r].children {
			a.nodes[c].ccTag = i
			i++
		}
	}
}
