package mcf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func diamondArcs() (u []Flow, c []Cost, tail, head []int) {
	// 0->1 cap3 c1, 0->2 cap3 c2, 1->3 cap3 c1, 2->3 cap3 c1, 1->2 cap2 c0
	u = []Flow{3, 3, 3, 3, 2}
	c = []Cost{1, 2, 1, 1, 0}
	tail = []int{0, 0, 1, 2, 1}
	head = []int{1, 2, 3, 3, 2}
	return
}

func TestSolveDiamond(t *testing.T) {
	u, c, tail, head := diamondArcs()
	b := []Flow{-4, 0, 0, 4}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(4, 5, u, c, b, tail, head))
	require.NoError(t, s.Solve())

	assert.Equal(t, StatusOK, s.GetStatus())
	assert.EqualValues(t, 9, s.GetFO())
	require.NoError(t, s.CheckPrimal())
	require.NoError(t, s.CheckDual())
}

func TestSolveInfeasibleCut(t *testing.T) {
	u := []Flow{2, 2}
	c := []Cost{1, 1}
	tail := []int{0, 1}
	head := []int{1, 2}
	b := []Flow{-5, 0, 5}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(3, 2, u, c, b, tail, head))
	err := s.Solve()
	require.Error(t, err)
	assert.Equal(t, StatusUnfeasible, s.GetStatus())

	cut, deficit := s.GetUnfCut()
	assert.Contains(t, cut, 0)
	assert.EqualValues(t, 3, deficit)
}

func TestReoptimizeAfterCostChange(t *testing.T) {
	u, c, tail, head := diamondArcs()
	b := []Flow{-4, 0, 0, 4}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(4, 5, u, c, b, tail, head))
	require.NoError(t, s.Solve())
	assert.EqualValues(t, 9, s.GetFO())

	require.NoError(t, s.ChgCost([]int{1}, 0, 0, 0))
	require.NoError(t, s.Solve())
	assert.EqualValues(t, 7, s.GetFO())
}

func TestCloseOpenIdempotence(t *testing.T) {
	u, c, tail, head := diamondArcs()
	b := []Flow{-4, 0, 0, 4}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(4, 5, u, c, b, tail, head))
	require.NoError(t, s.Solve())
	originalX, err := s.GetX([]int{4}, 0, 0)
	require.NoError(t, err)

	require.NoError(t, s.CloseArc(4))
	require.NoError(t, s.OpenArc(4))
	require.NoError(t, s.Solve())

	assert.EqualValues(t, 9, s.GetFO())
	newX, err := s.GetX([]int{4}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, originalX, newX)
}

func TestUnboundedCycle(t *testing.T) {
	u := []Flow{FInf, FInf}
	c := []Cost{-1, -1}
	tail := []int{0, 1}
	head := []int{1, 0}
	b := []Flow{0, 0}

	s := NewSolver(4, 4)
	require.NoError(t, s.LoadNet(2, 2, u, c, b, tail, head))
	err := s.Solve()
	require.Error(t, err)
	assert.Equal(t, StatusUnbounded, s.GetStatus())

	nodes, arcs, start := s.GetUnbCycle()
	assert.NotEmpty(t, nodes)
	assert.NotEmpty(t, arcs)
	assert.Equal(t, 0, start)
}

func TestSingleNodeNoArcs(t *testing.T) {
	s := NewSolver(1, 0)
	require.NoError(t, s.LoadNet(1, 0, nil, nil, []Flow{0}, nil, nil))
	require.NoError(t, s.Solve())
	assert.Equal(t, StatusOK, s.GetStatus())
	assert.EqualValues(t, 0, s.GetFO())
}

func TestAllArcsClosedUnfeasibleIffDeficit(t *testing.T) {
	u := []Flow{5}
	c := []Cost{1}
	tail := []int{0}
	head := []int{1}

	s := NewSolver(4, 4)
	require.NoError(t, s.LoadNet(2, 1, u, c, []Flow{0, 0}, tail, head))
	require.NoError(t, s.CloseArc(0))
	require.NoError(t, s.Solve())
	assert.Equal(t, StatusOK, s.GetStatus())

	s2 := NewSolver(4, 4)
	require.NoError(t, s2.LoadNet(2, 1, u, c, []Flow{-3, 3}, tail, head))
	require.NoError(t, s2.CloseArc(0))
	err := s2.Solve()
	require.Error(t, err)
	assert.Equal(t, StatusUnfeasible, s2.GetStatus())
}

func TestGetFOSentinelsOnFailure(t *testing.T) {
	u := []Flow{2, 2}
	c := []Cost{1, 1}
	tail := []int{0, 1}
	head := []int{1, 2}
	b := []Flow{-5, 0, 5}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(3, 2, u, c, b, tail, head))
	require.Error(t, s.Solve())
	assert.Equal(t, StatusUnfeasible, s.GetStatus())
	assert.EqualValues(t, OInf, s.GetFO())
	assert.EqualValues(t, OInf, s.GetDFO())

	uc := []Flow{FInf, FInf}
	cc := []Cost{-1, -1}
	tailc := []int{0, 1}
	headc := []int{1, 0}
	bc := []Flow{0, 0}

	u2 := NewSolver(4, 4)
	require.NoError(t, u2.LoadNet(2, 2, uc, cc, bc, tailc, headc))
	require.Error(t, u2.Solve())
	assert.Equal(t, StatusUnbounded, u2.GetStatus())
	assert.EqualValues(t, -OInf, u2.GetFO())
	assert.EqualValues(t, -OInf, u2.GetDFO())
}

func TestChgCapBelowFlowPushesExcess(t *testing.T) {
	u, c, tail, head := diamondArcs()
	b := []Flow{-4, 0, 0, 4}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(4, 5, u, c, b, tail, head))
	require.NoError(t, s.Solve())
	assert.EqualValues(t, 9, s.GetFO())

	x, err := s.GetX([]int{0}, 0, 0)
	require.NoError(t, err)
	require.EqualValues(t, 3, x[0], "arc 0 (0->1) must be saturated for this case to exercise a shortfall")

	require.NoError(t, s.ChgCap([]int{0}, 0, 0, 1))

	x, err = s.GetX([]int{0}, 0, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, x[0])

	require.NoError(t, s.Solve())
	assert.Equal(t, StatusOK, s.GetStatus())
	assert.EqualValues(t, 11, s.GetFO())
	require.NoError(t, s.CheckPrimal())
	require.NoError(t, s.CheckDual())
}

func TestSisterIsInvolution(t *testing.T) {
	for _, idx := range []int{0, 1, 2, 3, 100, 101} {
		assert.Equal(t, idx, sister(sister(idx)))
	}
}

func TestSaveRestoreState(t *testing.T) {
	u, c, tail, head := diamondArcs()
	b := []Flow{-4, 0, 0, 4}

	s := NewSolver(8, 8)
	require.NoError(t, s.LoadNet(4, 5, u, c, b, tail, head))
	require.NoError(t, s.Solve())
	id, err := s.SaveState()
	require.NoError(t, err)

	require.NoError(t, s.ChgCost([]int{1}, 0, 0, 0))
	require.NoError(t, s.Solve())
	assert.EqualValues(t, 7, s.GetFO())

	require.NoError(t, s.RestoreState(id))
	require.NoError(t, s.Solve())
	assert.EqualValues(t, 9, s.GetFO())
}
