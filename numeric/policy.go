// Package numeric implements the flow/cost number types and epsilon-aware
// comparisons that the cost-scaling kernel runs on.
//
// The reference solver is templated on FNumber/CNumber/FONumber and
// switches, at compile time, between "plain" and epsilon-tolerant
// comparisons via the EPS_FLOW/EPS_COST macros (see
// _examples/original_source/src/MgCS2/OPTop.h). Policy replaces both the
// template parameter and the macro switch with a single generic type
// carrying a runtime-configurable epsilon.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Number is the set of scalar types a Policy can be instantiated over: F
// (flow) is commonly int64 for exact arithmetic, C (cost) may be int64 or
// float64 depending on the problem's numeric_policy configuration.
type Number interface {
	~int64 | ~float64
}

// Kind selects which of the two reference branches a Policy follows:
// KindInteger mirrors exact integer arithmetic (default epsilon 0);
// KindReal mirrors floating-point arithmetic (default epsilon F_em*100).
// Kind is independent of the Go type parameter T, and whether an epsilon
// applies at all is chosen separately by NewPolicy's epsEnabled, matching
// the reference's EPS_FLOW/EPS_COST being distinct knobs from the
// arithmetic type itself.
type Kind int

const (
	KindInteger Kind = iota
	KindReal
)

// Policy carries one epsilon and the infinity sentinel for one numeric
// domain (flow values or cost values). Two Policy[T] values are typically
// constructed per solver: one for flow, one for cost.
type Policy[T Number] struct {
	kind Kind
	eps  T
	inf  T
}

// machineEpsilonFloat64 stands in for the reference's F_em/C_em (machine
// epsilon for the underlying floating type); DefEpsFlw/DefEpsCst scale it by
// 100.
const machineEpsilonFloat64 = 2.220446049250313e-16

// NewPolicy builds a Policy for numeric domain T. eps is the absolute
// tolerance to use when epsEnabled is true, whatever the kind; it is
// ignored (forced to the zero value) otherwise, matching
// "otherwise strict". inf is the domain's ±∞ sentinel
// (F_INF or C_INF).
func NewPolicy[T Number](kind Kind, epsEnabled bool, eps T, inf T) Policy[T] {
	p := Policy[T]{kind: kind, inf: inf}
	if epsEnabled {
		p.eps = eps
	}
	return p
}

// DefaultFlowEpsilon returns DefEpsFlw for the given kind: F_em*100 for
// real-valued flows, 0 for integer flows.
func DefaultFlowEpsilon(kind Kind) float64 {
	if kind == KindReal {
		return machineEpsilonFloat64 * 100
	}
	return 0
}

// DefaultCostEpsilon returns the cost-domain counterpart of
// DefaultFlowEpsilon.
func DefaultCostEpsilon(kind Kind) float64 {
	return DefaultFlowEpsilon(kind)
}

// DefaultDeficitEpsilon returns EpsDfct = EpsFlw * max(1, nmax).
func DefaultDeficitEpsilon(epsFlow float64, nmax int) float64 {
	if nmax < 1 {
		nmax = 1
	}
	return epsFlow * float64(nmax)
}

// Kind reports whether this policy treats its domain as integer or real.
func (p Policy[T]) Kind() Kind { return p.kind }

// Inf returns the domain's +∞ sentinel.
func (p Policy[T]) Inf() T { return p.inf }

// NegInf returns the domain's −∞ sentinel.
func (p Policy[T]) NegInf() T { return -p.inf }

// Eps returns the tolerance currently in effect (zero when disabled).
func (p Policy[T]) Eps() T { return p.eps }

// IsZero implements FETZ/CETZ: x == 0, i.e. |x| <= eps.
func (p Policy[T]) IsZero(x T) bool {
	if p.eps == 0 {
		return x == 0
	}
	return p.withinEps(x, 0)
}

// IsPos implements FGTZ/CGTZ: x > 0.
func (p Policy[T]) IsPos(x T) bool {
	return x > p.eps
}

// IsNonNeg implements FGEZ/CGEZ: x >= 0.
func (p Policy[T]) IsNonNeg(x T) bool {
	return x >= -p.eps
}

// IsNeg implements FLTZ/CLTZ: x < 0.
func (p Policy[T]) IsNeg(x T) bool {
	return x < -p.eps
}

// IsNonPos implements FLEZ/CLEZ: x <= 0.
func (p Policy[T]) IsNonPos(x T) bool {
	return x <= p.eps
}

// Greater implements FGT/CGT: x > y.
func (p Policy[T]) Greater(x, y T) bool {
	return x > y+p.eps
}

// Less implements FLT/CLT: x < y.
func (p Policy[T]) Less(x, y T) bool {
	return x < y-p.eps
}

// withinEps reports whether a and b are within the policy's epsilon of each
// other. Real-valued domains delegate to gonum's EqualWithinAbs rather than
// a hand-rolled math.Abs(a-b) <= eps so that the float comparison rounds the
// same way the rest of the ecosystem's numeric code does.
func (p Policy[T]) withinEps(a, b T) bool {
	switch any(a).(type) {
	case float64:
		return scalar.EqualWithinAbs(float64(a), float64(b), float64(p.eps))
	default:
		diff := a - b
		if diff < 0 {
			diff = -diff
		}
		return diff <= p.eps
	}
}

// IntInf is F_INF/C_INF for int64-valued domains: large enough that no
// legitimate capacity, cost, or potential ever reaches it, small enough that
// Inf+Inf or Inf-Inf never overflows int64.
const IntInf int64 = math.MaxInt64 / 4

// FloatInf is F_INF/C_INF for float64-valued domains.
var FloatInf = math.Inf(1)
