package mcf

import "github.com/namin/micado/mcferr"

func (s *Solver) checkSolved() error {
	if s.status == StatusUnsolved {
		return mcferr.New(mcferr.CodeInvalidInput, "Solve has not been called yet")
	}
	return nil
}

// GetX reports the flow carried by each arc in the selection.
func (s *Solver) GetX(nms []int, strt, stp int) ([]Flow, error) {
	if err := s.checkSolved(); err != nil {
		return nil, err
	}
	ids := resolveRange(nms, strt, stp)
	out := make([]Flow, len(ids))
	for i, k := range ids {
		if err := s.checkArcID(k); err != nil {
			return nil, err
		}
		fwd := s.a.pos[k]
		out[i] = s.a.arcs[sister(fwd)].rCap
	}
	return out, nil
}

// GetPi reports the dual price of each node in the selection, unscaled
// back down from the internal n-scaled units.
func (s *Solver) GetPi(nms []int, strt, stp int) ([]Cost, error) {
	if err := s.checkSolved(); err != nil {
		return nil, err
	}
	ids := resolveRange(nms, strt, stp)
	out := make([]Cost, len(ids))
	for i, v := range ids {
		if err := s.checkNodeID(v); err != nil {
			return nil, err
		}
		out[i] = s.a.nodes[v].price / Cost(s.a.scale)
	}
	return out, nil
}

// GetRC reports the reduced cost of each arc in the selection, unscaled.
func (s *Solver) GetRC(nms []int, strt, stp int) ([]Cost, error) {
	if err := s.checkSolved(); err != nil {
		return nil, err
	}
	ids := resolveRange(nms, strt, stp)
	out := make([]Cost, len(ids))
	for i, k := range ids {
		if err := s.checkArcID(k); err != nil {
			return nil, err
		}
		out[i] = s.reducedCost(k) / Cost(s.a.scale)
	}
	return out, nil
}

// reducedCost returns the scaled reduced cost of user arc k, using the
// same convention the kernel's admissibility test uses: cost(v,w) -
// price(v) + price(w), negative exactly when pushing from v to w helps.
func (s *Solver) reducedCost(k int) Cost {
	fwd := s.a.pos[k]
	af := s.a.arcs[fwd]
	tail, head := s.a.tailOf[k], s.a.headOf[k]
	return af.cost - s.a.nodes[tail].price + s.a.nodes[head].price
}

// GetFO returns the total cost of the current flow: +OInf if the last
// Solve found the network infeasible, -OInf if it found it unbounded,
// the computed objective otherwise.
func (s *Solver) GetFO() Objective {
	switch s.status {
	case StatusUnfeasible:
		return OInf
	case StatusUnbounded:
		return -OInf
	default:
		return s.objVal
	}
}

// GetDFO returns the dual objective (sum over nodes of price*excess),
// used to certify near-optimality alongside GetFO. It reports the same
// ±OInf sentinels GetFO does on infeasible/unbounded status.
func (s *Solver) GetDFO() Objective {
	switch s.status {
	case StatusUnfeasible:
		return OInf
	case StatusUnbounded:
		return -OInf
	}
	var dfo Objective
	for v := range s.a.nodes {
		nd := &s.a.nodes[v]
		if nd.deleted {
			continue
		}
		dfo += Objective(nd.price) * Objective(nd.excess) / Objective(s.a.scale)
	}
	return dfo
}

// GetUnfCut returns the source-side node set of the cut certifying
// infeasibility, terminated by InINF, and the demand of the nodes outside
// it that the flow leaves unmet. Both are populated only after a Solve
// call that ends in StatusUnfeasible.
func (s *Solver) GetUnfCut() ([]int, Flow) {
	return s.unfCut, s.unfDeficit
}

// GetUnbCycle returns the negative-cost infinite-capacity cycle
// certifying unboundedness (node sequence, arc sequence, and the index at
// which the cycle closes), populated only after a Solve call that ends in
// StatusUnbounded.
func (s *Solver) GetUnbCycle() ([]int, []int, int) {
	return s.unbNodePred, s.unbArcPred, s.unbStart
}
