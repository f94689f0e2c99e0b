// Package mcf implements the core of a minimum-cost flow solver: an arena +
// index residual graph, a DIMACS-style array loader, a mutation API, the
// CS2 cost-scaling push-relabel kernel, and the primal/dual checkers.
//
// Grounded throughout on _examples/original_source/src/MgCS2/CS2.h (the
// concrete kernel this was distilled from) and
// _examples/original_source/MgCS2/MCFClass.h (the abstract interface), with
// the pointer-chased C++ arena rewritten as Go slices indexed by int, per
// the arena+index design note.
package mcf

import "fmt"

// Flow is the flow/capacity scalar type (F in the reference). The solver
// trades the reference's template parameter for a concrete, widened integer
// type; see numeric.Policy for the epsilon-comparison machinery this is
// paired with.
type Flow = int64

// Cost is the arc cost / potential scalar type (C in the reference).
type Cost = int64

// Objective is the scalar the reported objective value is accumulated in.
// It is int64, the same width as Flow and Cost; a sum of |C|*|F| beyond
// the int64 range overflows and is not detected.
type Objective = int64

// FInf and CInf are the ±∞ sentinels for flow and cost domains
// respectively (F_INF / C_INF in the reference).
const (
	FInf = int64(1) << 40
	CInf = int64(1) << 40
)

// OInf is the ±∞ sentinel GetFO/GetDFO report when the objective isn't
// well-defined: +OInf after a Solve that ended in StatusUnfeasible
// (no feasible point exists), -OInf after one that ended in
// StatusUnbounded (the objective decreases without bound). Shifted well
// past FInf/CInf so it is never mistaken for a legitimate sum of scaled
// costs and flows.
const OInf = Objective(int64(1) << 62)

// Status mirrors MCFClass.h's MCFStatus enum exactly, including the
// negative "never solved" value — status < 0 means unsolved in both the
// reference and here.
type Status int

const (
	StatusUnsolved   Status = -1
	StatusOK         Status = 0
	StatusStopped    Status = 1
	StatusUnfeasible Status = 2
	StatusUnbounded  Status = 3
	StatusError      Status = 4
)

func (s Status) String() string {
	switch s {
	case StatusUnsolved:
		return "unsolved"
	case StatusOK:
		return "ok"
	case StatusStopped:
		return "stopped"
	case StatusUnfeasible:
		return "unfeasible"
	case StatusUnbounded:
		return "unbounded"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// NameBase selects whether externally-visible node/arc ids are 0-based or
// 1-based (USENAME0 in the reference). It never affects internal indexing.
type NameBase int

const (
	NameBase0 NameBase = 0
	NameBase1 NameBase = 1
)

// InINF terminates an Index_Set (e.g. the unfeasibility cut) the way the
// reference's Index_Set convention does.
const InINF = -1
