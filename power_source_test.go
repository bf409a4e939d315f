package circuitsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A PowerVoltageSource driving a fixed resistive load is an LTI circuit,
// so spec.md section 4.5's control law should converge within a couple
// of steps (the quadratic target-vs-power relation is exact for a
// resistor).
func TestPowerVoltageSourceConverges(t *testing.T) {
	cb := NewCircuitBuilder()
	pv := NewPowerVoltageSource(1, 10) // 10W target into a 10ohm load
	r := NewResistor(10)
	must(t, cb.Add(pv))
	must(t, cb.Add(r))
	require.NoError(t, cb.Connect(pv, 0, r, 0))
	require.NoError(t, cb.Connect(r, 1, pv, 1))
	require.NoError(t, cb.Ground(pv, 1))

	circ := buildOrFail(t, cb)
	for i := 0; i < 4; i++ {
		require.True(t, circ.Step(0.01))
	}

	assert.InDelta(t, 10.0, r.Power(), 1e-6)
}

// PowerCurrentSource driving the same load should converge symmetrically.
func TestPowerCurrentSourceConverges(t *testing.T) {
	cb := NewCircuitBuilder()
	pi := NewPowerCurrentSource(0.1, 10) // 10W target into a 10ohm load
	r := NewResistor(10)
	must(t, cb.Add(pi))
	must(t, cb.Add(r))
	require.NoError(t, cb.Connect(pi, 0, r, 0))
	require.NoError(t, cb.Connect(r, 1, pi, 1))
	require.NoError(t, cb.Ground(pi, 1))

	circ := buildOrFail(t, cb)
	for i := 0; i < 4; i++ {
		require.True(t, circ.Step(0.01))
	}

	assert.InDelta(t, 10.0, r.Power(), 1e-6)
}

// A target clipped by targetAbsMax never exceeds the clip, even under a
// power target that would otherwise drive it further.
func TestPowerVoltageSourceRespectsAbsMax(t *testing.T) {
	cb := NewCircuitBuilder()
	pv := NewPowerVoltageSource(1, 1000) // would need a huge voltage
	pv.SetTargetAbsMax(5)
	r := NewResistor(10)
	must(t, cb.Add(pv))
	must(t, cb.Add(r))
	require.NoError(t, cb.Connect(pv, 0, r, 0))
	require.NoError(t, cb.Connect(r, 1, pv, 1))
	require.NoError(t, cb.Ground(pv, 1))

	circ := buildOrFail(t, cb)
	for i := 0; i < 4; i++ {
		require.True(t, circ.Step(0.01))
	}

	assert.LessOrEqual(t, pv.Voltage(), 5.0+1e-9)
}
