package circuitsim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Property 4/6: a Line's resistance is the sum of its Parts both right
// after construction and after any Part mutation; Part order defines the
// spatial order of the series decomposition.
func TestLinePartMutationKeepsSumInvariant(t *testing.T) {
	cb := NewCircuitBuilder()
	v := NewVoltageSource(10)
	vr1 := NewVirtualResistor(3)
	vr2 := NewVirtualResistor(4)
	vr3 := NewVirtualResistor(5)
	must(t, cb.Add(v))
	must(t, cb.Add(vr1))
	must(t, cb.Add(vr2))
	must(t, cb.Add(vr3))
	require.NoError(t, cb.Connect(v, 0, vr1, 0))
	require.NoError(t, cb.Connect(vr1, 1, vr2, 0))
	require.NoError(t, cb.Connect(vr2, 1, vr3, 0))
	require.NoError(t, cb.Connect(vr3, 1, v, 1))
	require.NoError(t, cb.Ground(v, 1))

	circ := buildOrFail(t, cb)
	var line *Line
	for _, c := range circ.Components() {
		if l, ok := c.(*Line); ok {
			line = l
		}
	}
	require.NotNil(t, line)
	assert.InDelta(t, 12.0, line.Resistance(), 1e-12)

	line.Parts()[1].SetResistance(40)
	assert.InDelta(t, 48.0, line.Resistance(), 1e-12)

	sum := 0.0
	for _, p := range line.Parts() {
		sum += p.Resistance()
	}
	assert.InDelta(t, sum, line.Resistance(), 1e-12)

	// mutating a Part marks the circuit dirty, so the next step restamps
	// with the new total.
	require.True(t, circ.Step(0.01))
	assert.InDelta(t, 10.0/48.0, line.Current(), 1e-9)
}

// Property 4: per-Part current equals the Line's overall current, and
// each Part's terminal-potential drop matches Ohm's law for its own
// resistance.
func TestLinePartObservablesAfterStep(t *testing.T) {
	cb := NewCircuitBuilder()
	v := NewVoltageSource(10)
	vr1 := NewVirtualResistor(2)
	vr2 := NewVirtualResistor(3)
	must(t, cb.Add(v))
	must(t, cb.Add(vr1))
	must(t, cb.Add(vr2))
	require.NoError(t, cb.Connect(v, 0, vr1, 0))
	require.NoError(t, cb.Connect(vr1, 1, vr2, 0))
	require.NoError(t, cb.Connect(vr2, 1, v, 1))
	require.NoError(t, cb.Ground(v, 1))

	circ := buildOrFail(t, cb)
	require.True(t, circ.Step(0.01))

	var line *Line
	for _, c := range circ.Components() {
		if l, ok := c.(*Line); ok {
			line = l
		}
	}
	require.NotNil(t, line)

	for _, p := range line.Parts() {
		assert.InDelta(t, line.Current(), p.Current(), 1e-9)
		assert.InDelta(t, p.PosPotential()-p.NegPotential(), p.Current()*p.Resistance(), 1e-9)
	}
}
