package mcf

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/namin/micado/mcfconfig"
	"github.com/namin/micado/mcflog"
	"github.com/namin/micado/numeric"
	"github.com/namin/micado/stats"
)

// MCF is the abstract interface any cost-scaling (or alternative) backend
// must expose. Solver is this package's implementation of it; the
// interface exists so that callers can depend on behavior rather than on
// Solver's concrete type, and so a future alternative backend can be
// swapped in without touching callers.
type MCF interface {
	LoadNet(n, m int, u []Flow, c []Cost, b []Flow, tail, head []int) error
	Preprocess() error
	Solve() error
	GetStatus() Status

	GetX(nms []int, strt, stp int) ([]Flow, error)
	GetPi(nms []int, strt, stp int) ([]Cost, error)
	GetRC(nms []int, strt, stp int) ([]Cost, error)
	GetFO() Objective
	GetDFO() Objective
	HaveNewX() bool
	HaveNewPi() bool

	GetUnfCut() ([]int, Flow)
	GetUnbCycle() ([]int, []int, int)

	SaveState() (uuid.UUID, error)
	RestoreState(uuid.UUID) error

	SetTimeOn(bool)

	CloseArc(k int) error
	OpenArc(k int) error
	AddNode(deficit Flow) (int, error)
	AddArc(tail, head int, cap Flow, cost Cost) (int, error)
	DeleteArc(k int) error
	DeleteNode(v int) error
	ChangeArc(k, newTail, newHead int) error
	ChgCost(nms []int, strt, stp int, newCost Cost) error
	ChgCap(nms []int, strt, stp int, newCap Flow) error
	ChgDeficit(nms []int, strt, stp int, newDeficit Flow) error

	CheckPrimal() error
	CheckDual() error
}

// Solver is the CS2 cost-scaling push-relabel backend. It owns its arena
// exclusively: no field is shared across instances, nothing here blocks
// on I/O, and the caller must serialize all access.
type Solver struct {
	a   *arena
	cfg mcfconfig.SolverConfig

	flowPolicy numeric.Policy[Flow]
	costPolicy numeric.Policy[Cost]
	epsDfct    Flow // deficit tolerance derived from the flow epsilon and node count

	status Status
	dirty  bool // set by any mutation; invalidates status/cached solution

	epsilon Cost
	cutOff  Cost
	cutOn   Cost

	objVal Objective

	// unfeasibility / unboundedness certificates, populated on failure.
	unfCut     []int
	unfDeficit Flow
	unbNodePred []int
	unbArcPred  []int
	unbStart    int

	haveNewX  bool
	haveNewPi bool

	timeOn bool
	timer  cpuTimer

	log     *slog.Logger
	metrics stats.Recorder

	snapshots map[uuid.UUID]*snapshot

	// Kernel counters (n_bad_relabel / n_bad_pricein / n_rel / n_ref /
	// n_src), mirrored into metrics. They are only counted: none of them
	// gates when price_update or any other step runs.
	nBadRelabel int
	nBadPricein int
	nRel        int
	nRef        int
	nSrc        int
}

// Option configures a Solver at construction time.
type Option func(*Solver)

// WithConfig overrides the default SolverConfig.
func WithConfig(cfg mcfconfig.SolverConfig) Option {
	return func(s *Solver) { s.cfg = cfg }
}

// WithLogger injects a structured logger; nil falls back to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.log = l }
}

// WithMetrics injects a stats.Recorder; nil falls back to the package
// default (a no-op unless built with -tags stats).
func WithMetrics(r stats.Recorder) Option {
	return func(s *Solver) { s.metrics = r }
}

// NewSolver constructs a Solver sized for at most nmax nodes and mmax user
// arcs, matching the reference's preallocate-to-capacity constructor
// contract.
func NewSolver(nmax, mmax int, opts ...Option) *Solver {
	s := &Solver{
		a:      newArena(nmax, mmax),
		cfg:    mcfconfig.Default(),
		status: StatusUnsolved,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.timeOn = s.cfg.TimeOn
	s.log = mcflog.OrDefault(s.log)
	if s.metrics == nil {
		s.metrics = stats.New("micado", "kernel")
	}
	s.snapshots = make(map[uuid.UUID]*snapshot)
	s.rebuildPolicies()
	return s
}

func (s *Solver) rebuildPolicies() {
	flowKind := kindFromType(s.cfg.FlowType)
	costKind := kindFromType(s.cfg.CostType)
	s.flowPolicy = numeric.NewPolicy[Flow](flowKind, s.cfg.EpsFlowEnabled, Flow(numeric.DefaultFlowEpsilon(flowKind)), FInf)
	nmax := s.a.nmax
	if nmax < 1 {
		nmax = 1
	}
	s.epsDfct = Flow(numeric.DefaultDeficitEpsilon(numeric.DefaultFlowEpsilon(flowKind), nmax))
	s.costPolicy = numeric.NewPolicy[Cost](costKind, s.cfg.EpsCostEnabled, Cost(numeric.DefaultCostEpsilon(costKind)), CInf)
}

// kindFromType maps a SolverConfig FlowType/CostType string onto the
// numeric.Kind Policy expects, defaulting unset/unrecognized values to
// KindInteger.
func kindFromType(t string) numeric.Kind {
	if t == "real" {
		return numeric.KindReal
	}
	return numeric.KindInteger
}

// GetStatus returns the current status.
func (s *Solver) GetStatus() Status { return s.status }

// HaveNewX / HaveNewPi default to false: this backend enumerates a single
// optimum, it never revises a previously-reported solution in place
// without a fresh Solve.
func (s *Solver) HaveNewX() bool  { return s.haveNewX }
func (s *Solver) HaveNewPi() bool { return s.haveNewPi }

// SetTimeOn toggles the CPU timer. The accumulator is not reset by
// disabling it — only a fresh NewSolver/LoadNet resets it.
func (s *Solver) SetTimeOn(on bool) {
	s.timeOn = on
}
