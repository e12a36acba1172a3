package lexbfs

import "github.com/modtree/chpt/core"

// Compute runs extended LexBFS on g, returning the four side tables
// package mdtree needs to decompose g.
//
// The algorithm keeps a refining partition of the not-yet-processed
// positions of Sigma. Initially every position is in one part. Processing
// position i in increasing order:
//
//  1. Position i leaves its part; XSliceLen[i] is recorded as that part's
//     length just before removal.
//  2. For every neighbor u of Sigma[i] not yet processed, v=Sigma[i] is
//     appended to LexLabel at u's position, and u's position is moved
//     into a freshly split-off sub-part of its current part (lazily: a
//     part is split at most once per outer iteration of i, tracked via a
//     "subpart" pointer that is considered stale once a new round of
//     splitting begins).
//
// Each edge is inspected exactly once from each endpoint's perspective in
// the "j > i" direction, and each move between parts is an O(1) array
// swap, so the whole pass is O(n+m).
//
// Complexity: O(n + m).
func Compute(g *core.Graph, opts ...Option) *Result {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Size()
	sigma := make([]int, n)
	sigmaInv := make([]int, n)

	start := o.start
	if start < 0 || start >= n {
		start = 0
	}

	idx := 0
	if n > 0 {
		sigma[0] = start
		sigmaInv[start] = 0
		idx = 1
	}
	for v := 0; v < n; v++ {
		if v == start {
			continue
		}
		sigma[idx] = v
		sigmaInv[v] = idx
		idx++
	}

	// Partition-refinement bookkeeping. The number of parts ever created
	// is bounded by the number of edges plus the single initial part:
	// each edge triggers at most one split of the part it touches.
	edgeCount := 0
	for v := 0; v < n; v++ {
		edgeCount += g.Degree(v)
	}
	edgeCount /= 2
	maxParts := edgeCount + 1

	partOf := make([]int, n)
	partHead := make([]int, maxParts)
	subpart := make([]int, maxParts)
	partLen := make([]int, maxParts)
	if n > 0 {
		partLen[0] = n
	}
	nparts := 1

	xsliceLen := make([]int, n)
	lexLabel := make([][]int, n)

	for i := 0; i < n; i++ {
		oldNparts := nparts
		partOfI := partOf[i]

		partHead[partOfI]++
		xsliceLen[i] = partLen[partOfI]
		partLen[partOfI]--

		v := sigma[i]
		for _, u := range g.Neighbors(v) {
			j := sigmaInv[u]
			if j <= i {
				continue
			}

			lexLabel[j] = append(lexLabel[j], v)

			p := partOf[j]
			l := partHead[p]

			// If u is not already at the front of its part, and the
			// part is still contiguous past l, swap u to the front.
			if l < n-1 && partOf[l+1] == p {
				if l != j {
					t := sigma[l]
					sigmaInv[t] = j
					sigmaInv[u] = l
					sigma[j] = t
					sigma[l] = u
					lexLabel[j], lexLabel[l] = lexLabel[l], lexLabel[j]
					j = l
				}
				partHead[p]++
			}

			// Lazily allocate the sub-part for this round, if p hasn't
			// been split yet during the current outer iteration.
			if subpart[p] < oldNparts {
				subpart[p] = nparts
				partHead[nparts] = j
				partLen[nparts] = 0
				subpart[nparts] = 0
				nparts++
			}

			partOf[j] = subpart[p]
			partLen[p]--
			partLen[subpart[p]]++
		}
	}

	return &Result{
		Sigma:     sigma,
		SigmaInv:  sigmaInv,
		XSliceLen: xsliceLen,
		LexLabel:  lexLabel,
	}
}
