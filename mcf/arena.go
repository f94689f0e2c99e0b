package mcf

// node holds the per-node state of the residual graph arena. It replaces
// the reference's node_st, with pointer fields rewritten as indices (the
// arena+index design note). Each node's outgoing half-arcs are tracked as
// an adjacency list (adj, a []int of arc indices) rather than a slice into
// one shared contiguous array: Go's garbage-collected slices make
// per-node adjacency lists the idiomatic equivalent of the reference's
// hand-managed contiguous memory blocks, while still satisfying the design
// note's real requirement — pointer chains become integer indices.
type node struct {
	adj []int // arc indices, partitioned: [0:suspendedAt) active, [suspendedAt:closedAt) suspended, [closedAt:len(adj)) closed

	// currentOut is reset to 0 at the start of each Solve. The kernel does
	// not read or advance it: findAdmissible scans adj from the start on
	// every call.
	currentOut int

	suspendedAt int
	closedAt    int

	excess Flow
	price  Cost

	// rank is the bucket index price_update assigns during its reverse
	// Dial's-algorithm scan.
	rank int

	// qNext is set to -1 when the node is created and not otherwise used:
	// refine keeps its FIFO excess queue in a local slice.
	qNext int
	// bNext/bPrev chain this node into its price_update bucket's
	// doubly-linked list.
	bNext int
	bPrev int

	deleted bool
}

// arc holds one half-edge. Two arcs form a user arc pair; sister(k) = k^1,
// since pairs are always appended together (design note: sister is index
// XOR 1 when laid out adjacently).
type arc struct {
	rCap     Flow
	cost     Cost // already scaled by n
	head     int  // node index
	position int  // +k+1 forward / -k-1 reverse, k = user arc id

	// closed marks a half-arc rotated past its owner's closedAt boundary
	// in the owning node's adj. The kernel skips closed half-arcs; their
	// rCap values are not zeroed (a closed forward half keeps its residual
	// capacity), and origCap holds the arc's capacity.
	closed bool
}

// arena is the preallocated node/arc storage a Solver owns exclusively.
// Slices are pre-sized (via make with capacity) to nmax/mmax at
// construction so mutation-time appends rarely reallocate.
type arena struct {
	nodes []node
	arcs  []arc

	// pos[k] gives the forward half-arc index for user arc k.
	pos []int

	// origCost/origCap hold the user-facing (unscaled) cost and the
	// original capacity U[k] for user arc k, so closed arcs can report
	// their identity and ChgCap can recompute residuals against U.
	origCost []Cost
	origCap  []Flow

	// tailOf/headOf record each user arc's endpoints for re-splicing in
	// ChangeArc and for DIMACS/MPS output.
	tailOf []int
	headOf []int

	n    int // live node count
	nmax int
	mmax int

	scale int64 // n used to scale costs
}

func newArena(nmax, mmax int) *arena {
	return &arena{
		nodes:    make([]node, 0, nmax),
		arcs:     make([]arc, 0, 2*mmax),
		pos:      make([]int, 0, mmax),
		origCost: make([]Cost, 0, mmax),
		origCap:  make([]Flow, 0, mmax),
		tailOf:   make([]int, 0, mmax),
		headOf:   make([]int, 0, mmax),
		nmax:     nmax,
		mmax:     mmax,
	}
}

// sister returns the index of a's opposite half.
func sister(a int) int { return a ^ 1 }

// arcCount returns the number of live (non-deleted-by-convention) user
// arcs; since DeleteArc aliases CloseArc, this is simply len(pos).
func (a *arena) arcCount() int { return len(a.pos) }
