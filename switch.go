package circuitsim

import "circuitsim/mna"

// Switch behaves as a Resistor whose value is closedResistance when
// closed and openResistance otherwise (spec.md section 4.3). Grounded on
// the teacher's element/base/Switch.go toggle/Stamp logic, reshaped onto
// Resistor's stamp rather than the teacher's own matrix calls.
type Switch struct {
	Port
	closedResistance float64
	openResistance   float64
	closed           bool
}

// NewSwitch creates a detached Switch with the given closed/open
// resistances in ohms, initially closed.
func NewSwitch(closedResistance, openResistance float64) *Switch {
	s := &Switch{closedResistance: closedResistance, openResistance: openResistance, closed: true}
	s.Port = newPort(s)
	return s
}

// Closed reports whether the switch is currently closed.
func (s *Switch) Closed() bool { return s.closed }

// Close closes the switch, if not already closed.
func (s *Switch) Close() { s.setClosed(true) }

// Open opens the switch, if not already open.
func (s *Switch) Open() { s.setClosed(false) }

// Toggle flips the switch's state.
func (s *Switch) Toggle() { s.setClosed(!s.closed) }

func (s *Switch) setClosed(closed bool) {
	if s.closed == closed {
		return
	}
	s.closed = closed
	if s.circuit != nil {
		s.circuit.markMatrixChanged()
	}
}

func (s *Switch) resistance() float64 {
	if s.closed {
		return s.closedResistance
	}
	return s.openResistance
}

// Current returns the most recently solved current through the switch,
// from pos to neg.
func (s *Switch) Current() float64 {
	r := s.resistance()
	if r == 0 {
		return 0
	}
	return s.Potential() / r
}

// Power returns the most recently solved dissipated power.
func (s *Switch) Power() float64 { return s.Potential() * s.Current() }

func (s *Switch) kind() componentKind { return kindSwitch }

func (s *Switch) stamp(ctx mna.Stamp) {
	ctx.StampImpedance(s.pins[0].node.matrixIndex(), s.pins[1].node.matrixIndex(), s.resistance())
}

func (s *Switch) updateRHS(ctx mna.Stamp) {}

func (s *Switch) postStep(ctx mna.Stamp, dt float64) {}
