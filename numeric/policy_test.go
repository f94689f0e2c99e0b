package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicyIntegerStrict(t *testing.T) {
	p := NewPolicy[int64](KindInteger, false, 0, IntInf)

	assert.True(t, p.IsZero(0))
	assert.False(t, p.IsZero(1))
	assert.True(t, p.IsPos(1))
	assert.False(t, p.IsPos(0))
	assert.True(t, p.IsNeg(-1))
	assert.True(t, p.Greater(3, 2))
	assert.False(t, p.Greater(2, 2))
	assert.True(t, p.Less(2, 3))
}

func TestPolicyRealEpsilonTolerant(t *testing.T) {
	p := NewPolicy[float64](KindReal, true, 1e-6, FloatInf)

	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"zero exact", p.IsZero(0), true},
		{"zero within eps", p.IsZero(5e-7), true},
		{"zero beyond eps", p.IsZero(5e-5), false},
		{"pos beyond eps", p.IsPos(1e-3), true},
		{"pos within eps is not pos", p.IsPos(5e-7), false},
		{"greater within eps is not greater", p.Greater(1.0000001, 1.0), false},
		{"greater beyond eps", p.Greater(1.1, 1.0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestPolicyRealEpsilonDisabled(t *testing.T) {
	// eps ignored when epsEnabled is false, even for a real-valued domain.
	p := NewPolicy[float64](KindReal, false, 1e-3, FloatInf)
	assert.False(t, p.IsZero(5e-7))
	assert.Equal(t, float64(0), p.Eps())
}

func TestDefaultEpsilons(t *testing.T) {
	assert.Equal(t, 0.0, DefaultFlowEpsilon(KindInteger))
	assert.Greater(t, DefaultFlowEpsilon(KindReal), 0.0)
	assert.Equal(t, DefaultFlowEpsilon(KindReal), DefaultCostEpsilon(KindReal))

	assert.Equal(t, 10.0, DefaultDeficitEpsilon(1.0, 10))
	assert.Equal(t, 1.0, DefaultDeficitEpsilon(1.0, 0), "nmax floors to 1")
}

func TestInfSentinels(t *testing.T) {
	p := NewPolicy[int64](KindInteger, false, 0, IntInf)
	assert.Equal(t, IntInf, p.Inf())
	assert.Equal(t, -IntInf, p.NegInf())
}
