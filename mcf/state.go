package mcf

import (
	"github.com/google/uuid"

	"github.com/namin/micado/mcferr"
)

// snapshot is a deep copy of everything SaveState/RestoreState round-trips:
// the whole arena plus the scalar solver state a resumed Solve needs.
type snapshot struct {
	nodes []node
	arcs  []arc

	pos      []int
	origCost []Cost
	origCap  []Flow
	tailOf   []int
	headOf   []int
	n        int
	scale    int64

	status  Status
	epsilon Cost
	cutOff  Cost
	cutOn   Cost
	objVal  Objective
}

// SaveState captures the current arena and solver state and returns an
// opaque token that RestoreState can later apply. The token is valid only
// within this Solver instance's lifetime.
func (s *Solver) SaveState() (uuid.UUID, error) {
	snap := &snapshot{
		nodes:    append([]node(nil), s.a.nodes...),
		arcs:     append([]arc(nil), s.a.arcs...),
		pos:      append([]int(nil), s.a.pos...),
		origCost: append([]Cost(nil), s.a.origCost...),
		origCap:  append([]Flow(nil), s.a.origCap...),
		tailOf:   append([]int(nil), s.a.tailOf...),
		headOf:   append([]int(nil), s.a.headOf...),
		n:        s.a.n,
		scale:    s.a.scale,
		status:   s.status,
		epsilon:  s.epsilon,
		cutOff:   s.cutOff,
		cutOn:    s.cutOn,
		objVal:   s.objVal,
	}
	for i := range snap.nodes {
		snap.nodes[i].adj = append([]int(nil), snap.nodes[i].adj...)
	}
	id := uuid.New()
	s.snapshots[id] = snap
	return id, nil
}

// RestoreState replaces the current arena and solver state with a
// previously saved snapshot. The snapshot is not consumed and may be
// restored from again.
func (s *Solver) RestoreState(id uuid.UUID) error {
	snap, ok := s.snapshots[id]
	if !ok {
		return mcferr.NewWithField(mcferr.CodeInvalidInput, "unknown snapshot id", "id")
	}

	s.a.nodes = append([]node(nil), snap.nodes...)
	for i := range s.a.nodes {
		s.a.nodes[i].adj = append([]int(nil), snap.nodes[i].adj...)
	}
	s.a.arcs = append([]arc(nil), snap.arcs...)
	s.a.pos = append([]int(nil), snap.pos...)
	s.a.origCost = append([]Cost(nil), snap.origCost...)
	s.a.origCap = append([]Flow(nil), snap.origCap...)
	s.a.tailOf = append([]int(nil), snap.tailOf...)
	s.a.headOf = append([]int(nil), snap.headOf...)
	s.a.n = snap.n
	s.a.scale = snap.scale

	s.status = snap.status
	s.epsilon = snap.epsilon
	s.cutOff = snap.cutOff
	s.cutOn = snap.cutOn
	s.objVal = snap.objVal
	s.dirty = false
	s.haveNewX = false
	s.haveNewPi = false
	return nil
}
