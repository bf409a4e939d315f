package circuitsim

import "circuitsim/mna"

// Capacitor stamps a backward-Euler companion model: a conductance
// C/dt in parallel with a current source of C*V0/dt, where V0 is the
// potential stored from the previous step (spec.md section 4.3). dt is
// an attribute of the Capacitor itself, not of the Circuit's Step call,
// so build() can factor a correct A before the first step ever runs.
// Grounded on the teacher's element/base/Capacitor.go, whose companion
// model uses trapezoidal integration; this core uses backward-Euler per
// spec.md, which only changes the rhs coefficient (V0/dt instead of
// V0/dt + i0/2 etc.), not the overall shape.
type Capacitor struct {
	Port
	capacitance float64

	dt float64 // the step size this component's companion model is stamped for
	v0 float64 // potential stored from the previous step
}

// NewCapacitor creates a detached Capacitor of the given capacitance in
// farads and companion time step dt in seconds, uncharged (v0 = 0).
func NewCapacitor(farads, dt float64) *Capacitor {
	c := &Capacitor{capacitance: farads, dt: dt}
	c.Port = newPort(c)
	return c
}

// Capacitance returns the capacitor's value in farads.
func (c *Capacitor) Capacitance() float64 { return c.capacitance }

// TimeStep returns the dt the companion model is currently stamped for.
func (c *Capacitor) TimeStep() float64 { return c.dt }

// SetTimeStep changes the companion model's dt, marking matrixChanged
// since the stamped conductance C/dt depends on it.
func (c *Capacitor) SetTimeStep(dt float64) {
	if dt == c.dt {
		return
	}
	c.dt = dt
	if c.circuit != nil {
		c.circuit.markMatrixChanged()
	}
}

// StoredVoltage returns the potential the companion model is using for
// this step (the previous step's solved Potential()).
func (c *Capacitor) StoredVoltage() float64 { return c.v0 }

// Current returns the most recently solved current through the
// capacitor, from pos to neg.
func (c *Capacitor) Current() float64 {
	g := c.admittance()
	return g*c.Potential() - g*c.v0
}

// Power returns the most recently solved dissipated/stored power.
func (c *Capacitor) Power() float64 { return c.Potential() * c.Current() }

func (c *Capacitor) kind() componentKind { return kindCapacitor }

func (c *Capacitor) admittance() float64 {
	if c.dt == 0 {
		return 0
	}
	return c.capacitance / c.dt
}

func (c *Capacitor) stamp(ctx mna.Stamp) {
	g := c.admittance()
	n1, n2 := c.pins[0].node.matrixIndex(), c.pins[1].node.matrixIndex()
	ctx.StampAdmittance(n1, n2, g)
	ctx.StampCurrentSource(n2, n1, g*c.v0)
}

func (c *Capacitor) updateRHS(ctx mna.Stamp) {
	g := c.admittance()
	n1, n2 := c.pins[0].node.matrixIndex(), c.pins[1].node.matrixIndex()
	ctx.StampCurrentSource(n2, n1, g*c.v0)
}

// postStep stores the newly solved potential for next step's companion
// model. The stored voltage always changes, so rhsChanged is set every
// step; dt itself only changes via SetTimeStep.
func (c *Capacitor) postStep(ctx mna.Stamp, dt float64) {
	c.v0 = c.Potential()
	if c.circuit != nil {
		c.circuit.markRHSChanged()
	}
}
