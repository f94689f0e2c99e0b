package mcf

import (
	"fmt"

	"github.com/namin/micado/mcferr"
)

// closeAt rotates the half-arc at adj[idx] (idx < closedAt) into the closed
// partition, shrinking the active/suspended region by one.
func (nd *node) closeAt(idx int) {
	v := nd.adj[idx]
	copy(nd.adj[idx:nd.closedAt-1], nd.adj[idx+1:nd.closedAt])
	nd.adj[nd.closedAt-1] = v
	if idx < nd.suspendedAt {
		nd.suspendedAt--
	}
	nd.closedAt--
}

// openAt rotates the half-arc at adj[idx] (idx >= closedAt) back into the
// active partition, the inverse of closeAt.
func (nd *node) openAt(idx int) {
	v := nd.adj[idx]
	copy(nd.adj[nd.suspendedAt+1:idx+1], nd.adj[nd.suspendedAt:idx])
	nd.adj[nd.suspendedAt] = v
	nd.suspendedAt++
	nd.closedAt++
}

// suspend rotates the half-arc at adj[idx] (idx < suspendedAt) from the
// active partition into the suspended one, shrinking the active region.
func (nd *node) suspend(idx int) {
	v := nd.adj[idx]
	copy(nd.adj[idx:nd.suspendedAt-1], nd.adj[idx+1:nd.suspendedAt])
	nd.adj[nd.suspendedAt-1] = v
	nd.suspendedAt--
}

// reactivate rotates the half-arc at adj[idx] (suspendedAt <= idx <
// closedAt) from the suspended partition back into the active one, the
// inverse of suspend.
func (nd *node) reactivate(idx int) {
	v := nd.adj[idx]
	copy(nd.adj[nd.suspendedAt+1:idx+1], nd.adj[nd.suspendedAt:idx])
	nd.adj[nd.suspendedAt] = v
	nd.suspendedAt++
}

// insertActive appends a brand-new half-arc index and rotates it into the
// active partition in one step.
func (nd *node) insertActive(arcIdx int) {
	nd.adj = append(nd.adj, arcIdx)
	nd.openAt(len(nd.adj) - 1)
}

// removeAny drops the half-arc at adj[idx], from whichever partition it
// currently sits in, used by ChangeArc to re-splice an endpoint.
func (nd *node) removeAny(idx int) {
	last := len(nd.adj) - 1
	copy(nd.adj[idx:last], nd.adj[idx+1:])
	nd.adj = nd.adj[:last]
	if idx < nd.suspendedAt {
		nd.suspendedAt--
		nd.closedAt--
	} else if idx < nd.closedAt {
		nd.closedAt--
	}
}

func indexOf(s []int, v int) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func (s *Solver) checkArcID(k int) error {
	if k < 0 || k >= s.a.arcCount() {
		return mcferr.New(mcferr.CodeInvalidInput, fmt.Sprintf("arc id %d out of range", k))
	}
	return nil
}

func (s *Solver) checkNodeID(v int) error {
	if v < 0 || v >= s.a.n {
		return mcferr.New(mcferr.CodeInvalidInput, fmt.Sprintf("node id %d out of range", v))
	}
	return nil
}

// CloseArc idles user arc k: both half-arcs are rotated behind their
// owning nodes' closed boundary and their residual capacity is set aside.
// An arc carrying flow cannot be closed — drain it first.
func (s *Solver) CloseArc(k int) error {
	if err := s.checkArcID(k); err != nil {
		return err
	}
	fwd := s.a.pos[k]
	af := &s.a.arcs[fwd]
	if af.closed {
		return nil
	}
	rev := sister(fwd)
	ar := &s.a.arcs[rev]
	if ar.rCap != 0 {
		return mcferr.NewWithField(mcferr.CodeIllegalMutation, "cannot close an arc carrying flow", "k")
	}

	tail, head := s.a.tailOf[k], s.a.headOf[k]
	tn, hn := &s.a.nodes[tail], &s.a.nodes[head]
	tn.closeAt(indexOf(tn.adj, fwd))
	hn.closeAt(indexOf(hn.adj, rev))
	af.closed = true
	ar.closed = true
	s.dirty = true
	return nil
}

// OpenArc reactivates a previously closed user arc, restoring its original
// capacity. Idempotent on an already-open arc.
func (s *Solver) OpenArc(k int) error {
	if err := s.checkArcID(k); err != nil {
		return err
	}
	fwd := s.a.pos[k]
	af := &s.a.arcs[fwd]
	if !af.closed {
		return nil
	}
	rev := sister(fwd)
	ar := &s.a.arcs[rev]

	tail, head := s.a.tailOf[k], s.a.headOf[k]
	tn, hn := &s.a.nodes[tail], &s.a.nodes[head]
	tn.openAt(indexOf(tn.adj, fwd))
	hn.openAt(indexOf(hn.adj, rev))
	af.closed = false
	ar.closed = false
	af.rCap = s.a.origCap[k]
	ar.rCap = 0
	s.dirty = true
	return nil
}

// DeleteArc aliases CloseArc: this backend never reuses an arc id, so
// "deleting" an arc and idling it are the same operation.
func (s *Solver) DeleteArc(k int) error {
	return s.CloseArc(k)
}

// AddNode appends a node with the given deficit and returns its id.
func (s *Solver) AddNode(deficit Flow) (int, error) {
	if s.a.n >= s.a.nmax {
		return -1, mcferr.New(mcferr.CodeNoRoom, "node arena exhausted")
	}
	id := s.a.n
	s.a.nodes = append(s.a.nodes, node{excess: -deficit, qNext: -1, bNext: -1, bPrev: -1})
	s.a.n++
	s.dirty = true
	return id, nil
}

// AddArc appends a new user arc between two existing nodes and returns its
// id. The new arc starts open with full residual capacity.
func (s *Solver) AddArc(tail, head int, cap Flow, cost Cost) (int, error) {
	if err := s.checkNodeID(tail); err != nil {
		return -1, err
	}
	if err := s.checkNodeID(head); err != nil {
		return -1, err
	}
	if tail == head {
		return -1, mcferr.New(mcferr.CodeInvalidInput, "arc endpoints must differ")
	}
	if cap < 0 {
		return -1, mcferr.NewWithField(mcferr.CodeInvalidInput, "negative capacity", "cap")
	}
	if len(s.a.pos) >= s.a.mmax {
		return -1, mcferr.New(mcferr.CodeNoRoom, "arc arena exhausted")
	}

	k := len(s.a.pos)
	fwdIdx := len(s.a.arcs)
	scaled := cost * s.a.scale
	s.a.arcs = append(s.a.arcs,
		arc{rCap: cap, cost: scaled, head: head, position: k + 1},
		arc{rCap: 0, cost: -scaled, head: tail, position: -(k + 1)},
	)
	revIdx := fwdIdx + 1

	s.a.nodes[tail].insertActive(fwdIdx)
	s.a.nodes[head].insertActive(revIdx)

	s.a.pos = append(s.a.pos, fwdIdx)
	s.a.origCost = append(s.a.origCost, cost)
	s.a.origCap = append(s.a.origCap, cap)
	s.a.tailOf = append(s.a.tailOf, tail)
	s.a.headOf = append(s.a.headOf, head)

	s.dirty = true
	return k, nil
}

// DeleteNode removes a node after closing every arc still incident to it.
// The node must carry zero excess; drain it with Solve first otherwise.
func (s *Solver) DeleteNode(v int) error {
	if err := s.checkNodeID(v); err != nil {
		return err
	}
	nd := &s.a.nodes[v]
	if nd.deleted {
		return nil
	}
	if !s.flowPolicy.IsZero(nd.excess) {
		return mcferr.NewWithField(mcferr.CodeIllegalMutation, "node has nonzero excess", "v")
	}
	for _, idx := range append([]int(nil), nd.adj...) {
		k := s.a.arcs[idx].position
		if k < 0 {
			k = -k
		}
		k--
		if err := s.CloseArc(k); err != nil {
			return err
		}
	}
	nd.deleted = true
	s.dirty = true
	return nil
}

// ChangeArc re-splices user arc k onto a new tail/head pair, preserving its
// open/closed state and current residual capacities.
func (s *Solver) ChangeArc(k, newTail, newHead int) error {
	if err := s.checkArcID(k); err != nil {
		return err
	}
	if err := s.checkNodeID(newTail); err != nil {
		return err
	}
	if err := s.checkNodeID(newHead); err != nil {
		return err
	}
	if newTail == newHead {
		return mcferr.New(mcferr.CodeInvalidInput, "arc endpoints must differ")
	}

	fwd := s.a.pos[k]
	rev := sister(fwd)
	af := &s.a.arcs[fwd]
	if af.rCap != s.a.origCap[k] || s.a.arcs[rev].rCap != 0 {
		return mcferr.NewWithField(mcferr.CodeIllegalMutation, "cannot re-splice an arc carrying flow", "k")
	}

	oldTail, oldHead := s.a.tailOf[k], s.a.headOf[k]
	otn, ohn := &s.a.nodes[oldTail], &s.a.nodes[oldHead]
	otn.removeAny(indexOf(otn.adj, fwd))
	ohn.removeAny(indexOf(ohn.adj, rev))

	af.head = newHead
	s.a.arcs[rev].head = newTail
	s.a.tailOf[k], s.a.headOf[k] = newTail, newHead

	ntn, nhn := &s.a.nodes[newTail], &s.a.nodes[newHead]
	if af.closed {
		ntn.adj = append(ntn.adj, fwd)
		nhn.adj = append(nhn.adj, rev)
	} else {
		ntn.insertActive(fwd)
		nhn.insertActive(rev)
	}
	s.dirty = true
	return nil
}

// resolveRange expands the (nms, strt, stp) selector shared by the Chg*/Get*
// family: an explicit id list takes precedence, otherwise [strt,stp) is
// used verbatim as a half-open index range.
func resolveRange(nms []int, strt, stp int) []int {
	if nms != nil {
		return nms
	}
	out := make([]int, 0, stp-strt)
	for i := strt; i < stp; i++ {
		out = append(out, i)
	}
	return out
}

// ChgCost updates the cost of every arc in the selection to newCost.
func (s *Solver) ChgCost(nms []int, strt, stp int, newCost Cost) error {
	for _, k := range resolveRange(nms, strt, stp) {
		if err := s.checkArcID(k); err != nil {
			return err
		}
		fwd := s.a.pos[k]
		scaled := newCost * s.a.scale
		s.a.arcs[fwd].cost = scaled
		s.a.arcs[sister(fwd)].cost = -scaled
		s.a.origCost[k] = newCost
	}
	s.dirty = true
	return nil
}

// ChgCap updates the capacity of every arc in the selection to newCap. If
// newCap still covers the arc's current flow, the forward residual
// capacity simply shrinks. If it doesn't, the arc is pulled down to carry
// exactly newCap and the shortfall is pushed onto the endpoints' excess
// (tail regains it as supply, head loses it as inflow) so conservation
// holds; re-establishing feasibility under the new excesses is left to
// the next Solve.
func (s *Solver) ChgCap(nms []int, strt, stp int, newCap Flow) error {
	for _, k := range resolveRange(nms, strt, stp) {
		if err := s.checkArcID(k); err != nil {
			return err
		}
		fwd := s.a.pos[k]
		rev := sister(fwd)
		flow := s.a.arcs[rev].rCap
		if newCap < flow {
			shortfall := flow - newCap
			tail, head := s.a.tailOf[k], s.a.headOf[k]
			s.a.nodes[tail].excess += shortfall
			s.a.nodes[head].excess -= shortfall
			s.a.arcs[rev].rCap = newCap
			s.a.arcs[fwd].rCap = 0
			s.a.origCap[k] = newCap
			continue
		}
		s.a.arcs[fwd].rCap = newCap - flow
		s.a.origCap[k] = newCap
	}
	s.dirty = true
	return nil
}

// ChgDeficit updates the deficit of every node in the selection.
func (s *Solver) ChgDeficit(nms []int, strt, stp int, newDeficit Flow) error {
	for _, v := range resolveRange(nms, strt, stp) {
		if err := s.checkNodeID(v); err != nil {
			return err
		}
		s.a.nodes[v].excess = -newDeficit
	}
	s.dirty = true
	return nil
}
