package circuitsim

import "circuitsim/mna"

// Resistor is a linear two-terminal Component: current flows from pos to
// neg in proportion to Potential() (spec.md section 3/4.3). Grounded on
// the teacher's element/base/Resistor.go, whose StampConductance call is
// reused verbatim as the stamp shape.
type Resistor struct {
	Port
	resistance float64
}

// NewResistor creates a detached Resistor of the given resistance in
// ohms.
func NewResistor(resistance float64) *Resistor {
	r := &Resistor{resistance: resistance}
	r.Port = newPort(r)
	return r
}

// Resistance returns the resistor's value in ohms.
func (r *Resistor) Resistance() float64 { return r.resistance }

// SetResistance changes the resistor's value. Per spec.md section 9's
// open question, this core always marks matrixChanged and re-stamps
// from scratch at the next step, rather than the teacher's un-stamp/
// re-stamp negated-value approach (see DESIGN.md).
func (r *Resistor) SetResistance(ohms float64) {
	r.resistance = ohms
	if r.circuit != nil {
		r.circuit.markMatrixChanged()
	}
}

// Current returns the most recently solved current through the
// resistor, from pos to neg.
func (r *Resistor) Current() float64 {
	if r.resistance == 0 {
		return 0
	}
	return r.Potential() / r.resistance
}

// Power returns the most recently solved dissipated power.
func (r *Resistor) Power() float64 { return r.Potential() * r.Current() }

func (r *Resistor) kind() componentKind { return kindResistor }

func (r *Resistor) stamp(ctx mna.Stamp) {
	ctx.StampImpedance(r.pins[0].node.matrixIndex(), r.pins[1].node.matrixIndex(), r.resistance)
}

func (r *Resistor) updateRHS(ctx mna.Stamp) {}

func (r *Resistor) postStep(ctx mna.Stamp, dt float64) {}
