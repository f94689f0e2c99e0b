package mcf

import (
	"fmt"

	"github.com/namin/micado/mcferr"
)

// CheckPrimal verifies that the current solution is a feasible flow:
// every arc's flow lies within [0, capacity] and every node balances
// its excess against its declared deficit, within the flow tolerance.
func (s *Solver) CheckPrimal() error {
	for k := range s.a.pos {
		fwd := s.a.pos[k]
		flow := s.a.arcs[sister(fwd)].rCap
		if s.flowPolicy.IsNeg(flow) {
			return mcferr.New(mcferr.CodeUnfeasible, fmt.Sprintf("arc %d carries negative flow", k))
		}
		if !s.a.arcs[fwd].closed && s.flowPolicy.Greater(flow, s.a.origCap[k]) {
			return mcferr.New(mcferr.CodeUnfeasible, fmt.Sprintf("arc %d exceeds its capacity", k))
		}
	}
	for v := range s.a.nodes {
		nd := &s.a.nodes[v]
		if nd.deleted {
			continue
		}
		if s.flowPolicy.Greater(abs(nd.excess), s.epsDfct) {
			return mcferr.New(mcferr.CodeUnfeasible, fmt.Sprintf("node %d has uncleared excess", v))
		}
	}
	return nil
}

// CheckDual verifies complementary slackness of the current prices: every
// arc's reduced cost is non-negative up to epsilon unless it is saturated,
// and non-positive up to epsilon unless it carries zero flow.
func (s *Solver) CheckDual() error {
	for k := range s.a.pos {
		fwd := s.a.pos[k]
		if s.a.arcs[fwd].closed {
			continue
		}
		flow := s.a.arcs[sister(fwd)].rCap
		rc := s.reducedCost(k)

		atFloor := s.flowPolicy.IsZero(flow)
		atCeiling := s.flowPolicy.IsZero(flow - s.a.origCap[k])

		if !atCeiling && s.costPolicy.Less(rc, -s.epsilon) {
			return mcferr.New(mcferr.CodeUnfeasible, fmt.Sprintf("arc %d violates dual feasibility below capacity", k))
		}
		if !atFloor && s.costPolicy.Greater(rc, s.epsilon) {
			return mcferr.New(mcferr.CodeUnfeasible, fmt.Sprintf("arc %d violates dual feasibility above zero flow", k))
		}
	}
	return nil
}

func abs(f Flow) Flow {
	if f < 0 {
		return -f
	}
	return f
}
