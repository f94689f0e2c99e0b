package mcf

import (
	"fmt"

	"github.com/namin/micado/mcferr"
)

// LoadNet builds the residual graph from dense arrays.
// nmx==mmx==0 (n==0 && m==0 here, since Solver is already sized to
// nmax/mmax at construction) tears down the instance and leaves it waiting
// for a fresh load.
func (s *Solver) LoadNet(n, m int, u []Flow, c []Cost, b []Flow, tail, head []int) error {
	if n == 0 && m == 0 {
		s.teardown()
		return nil
	}

	if n < 0 || n > s.a.nmax {
		return mcferr.New(mcferr.CodeInvalidInput, fmt.Sprintf("n=%d out of range [0,%d]", n, s.a.nmax))
	}
	if m < 0 || m > s.a.mmax {
		return mcferr.New(mcferr.CodeInvalidInput, fmt.Sprintf("m=%d out of range [0,%d]", m, s.a.mmax))
	}
	if len(u) < m || len(c) < m || len(tail) < m || len(head) < m || len(b) < n {
		return mcferr.New(mcferr.CodeInvalidInput, "array shorter than declared n/m")
	}
	for i := 0; i < m; i++ {
		if tail[i] < 0 || tail[i] >= n || head[i] < 0 || head[i] >= n {
			return mcferr.NewWithField(mcferr.CodeInvalidInput, fmt.Sprintf("arc %d endpoint out of range", i), "tail/head")
		}
		if tail[i] == head[i] {
			return mcferr.NewWithField(mcferr.CodeInvalidInput, fmt.Sprintf("arc %d is a self-loop", i), "arc")
		}
		if u[i] < 0 {
			return mcferr.NewWithField(mcferr.CodeInvalidInput, fmt.Sprintf("arc %d has negative capacity", i), "cap")
		}
	}

	s.a = newArena(s.a.nmax, s.a.mmax)
	s.a.n = n
	s.a.scale = int64(n)
	if s.a.scale == 0 {
		s.a.scale = 1
	}

	s.a.nodes = make([]node, n, s.a.nmax)
	for v := 0; v < n; v++ {
		s.a.nodes[v] = node{excess: -b[v], qNext: -1, bNext: -1, bPrev: -1}
	}

	closed := make([]bool, m)
	for i := 0; i < m; i++ {
		closed[i] = c[i] >= CInf
	}

	// Pass 1: append non-closed half-arcs so that each node's adjacency
	// list has its active/suspended entries before its closed entries.
	s.appendArcPairs(m, u, c, tail, head, closed, false)
	// Record, per node, where the closed entries will start.
	closedAt := make([]int, n)
	for v := 0; v < n; v++ {
		closedAt[v] = len(s.a.nodes[v].adj)
	}
	// Pass 2: append closed half-arcs.
	s.appendArcPairs(m, u, c, tail, head, closed, true)

	for v := 0; v < n; v++ {
		s.a.nodes[v].suspendedAt = len(s.a.nodes[v].adj) // all non-closed arcs start active
		s.a.nodes[v].closedAt = closedAt[v]
		// closedAt must not be after suspendedAt's eventual bound; since
		// closed entries were appended after all non-closed ones,
		// suspendedAt == closedAt here and both shift only during Solve's
		// cut_off rotation / CloseArc/OpenArc.
		s.a.nodes[v].suspendedAt = closedAt[v]
	}

	s.status = StatusUnsolved
	s.dirty = false
	s.objVal = 0
	s.unfCut = nil
	s.unbNodePred = nil
	s.unbArcPred = nil
	s.timer.reset()
	return nil
}

// appendArcPairs appends forward/reverse half-arc pairs for every user arc
// whose closed flag matches wantClosed, in arc-id order. Callers invoke this
// twice (false then true) over the same m: the first call sizes the pos[]/
// origCost/origCap/tailOf/headOf bookkeeping arrays to m, and each call
// fills in the entries of the arcs it appends.
func (s *Solver) appendArcPairs(m int, u []Flow, c []Cost, tail, head []int, closed []bool, wantClosed bool) {
	for len(s.a.pos) < m {
		s.a.pos = append(s.a.pos, -1)
		s.a.origCost = append(s.a.origCost, 0)
		s.a.origCap = append(s.a.origCap, 0)
		s.a.tailOf = append(s.a.tailOf, 0)
		s.a.headOf = append(s.a.headOf, 0)
	}
	for k := 0; k < m; k++ {
		if closed[k] != wantClosed {
			continue
		}
		fwdIdx := len(s.a.arcs)
		scaledCost := c[k] * s.a.scale
		if closed[k] {
			scaledCost = 0
		}
		s.a.arcs = append(s.a.arcs,
			arc{rCap: u[k], cost: scaledCost, head: head[k], position: k + 1, closed: closed[k]},
			arc{rCap: 0, cost: -scaledCost, head: tail[k], position: -(k + 1), closed: closed[k]},
		)
		revIdx := fwdIdx + 1
		s.a.nodes[tail[k]].adj = append(s.a.nodes[tail[k]].adj, fwdIdx)
		s.a.nodes[head[k]].adj = append(s.a.nodes[head[k]].adj, revIdx)

		s.a.pos[k] = fwdIdx
		s.a.origCost[k] = c[k]
		s.a.origCap[k] = u[k]
		s.a.tailOf[k] = tail[k]
		s.a.headOf[k] = head[k]
	}
}

func (s *Solver) teardown() {
	s.a = newArena(s.a.nmax, s.a.mmax)
	s.status = StatusUnsolved
	s.dirty = false
	s.objVal = 0
}

// Preprocess is the optional tightening hook; this backend performs none,
// matching the reference's default no-op.
func (s *Solver) Preprocess() error {
	return nil
}
