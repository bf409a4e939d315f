package circuitsim

import "circuitsim/mna"

// Inductor stamps a backward-Euler Thevenin companion model: a branch
// variable (its own current) with a series L/dt resistance and a source
// term -L*I0/dt on the branch row, so the branch enforces
// v = (L/dt)*(i - I0), where I0 is the branch current stored from the
// previous step (spec.md section 4.3). dt is an attribute of the Inductor itself,
// not of the Circuit's Step call, so build() can factor a correct A
// before the first step ever runs. Grounded on the teacher's
// element/base/Inductor.go, whose companion model uses trapezoidal
// integration; backward-Euler changes only the source-term coefficient.
type Inductor struct {
	Port
	inductance float64
	branch     int

	dt float64
	i0 float64 // branch current stored from the previous step
}

// NewInductor creates a detached Inductor of the given inductance in
// henries and companion time step dt in seconds, with zero initial
// current.
func NewInductor(henries, dt float64) *Inductor {
	l := &Inductor{inductance: henries, dt: dt}
	l.Port = newPort(l)
	return l
}

// Inductance returns the inductor's value in henries.
func (l *Inductor) Inductance() float64 { return l.inductance }

// TimeStep returns the dt the companion model is currently stamped for.
func (l *Inductor) TimeStep() float64 { return l.dt }

// SetTimeStep changes the companion model's dt, marking matrixChanged
// since the stamped series resistance L/dt depends on it.
func (l *Inductor) SetTimeStep(dt float64) {
	if dt == l.dt {
		return
	}
	l.dt = dt
	if l.circuit != nil {
		l.circuit.markMatrixChanged()
	}
}

// StoredCurrent returns the branch current the companion model is using
// for this step (the previous step's solved branch current).
func (l *Inductor) StoredCurrent() float64 { return l.i0 }

// Current returns the most recently solved current through the
// inductor, from pos to neg.
func (l *Inductor) Current() float64 {
	if l.circuit == nil {
		return 0
	}
	return l.circuit.GetBranchCurrent(l.branch)
}

// Power returns the most recently solved dissipated/stored power.
func (l *Inductor) Power() float64 { return l.Potential() * l.Current() }

func (l *Inductor) kind() componentKind { return kindInductor }
func (l *Inductor) setBranch(idx int)   { l.branch = idx }

func (l *Inductor) seriesResistance() float64 {
	if l.dt == 0 {
		return 0
	}
	return l.inductance / l.dt
}

func (l *Inductor) sourceTerm() float64 {
	return -l.seriesResistance() * l.i0
}

func (l *Inductor) stamp(ctx mna.Stamp) {
	n1, n2 := l.pins[0].node.matrixIndex(), l.pins[1].node.matrixIndex()
	ctx.StampVoltageSource(n1, n2, l.branch, l.sourceTerm())
	ctx.StampMatrix(l.branch, l.branch, -l.seriesResistance())
}

func (l *Inductor) updateRHS(ctx mna.Stamp) {
	ctx.UpdateVoltageSource(l.branch, l.sourceTerm())
}

// postStep stores the newly solved branch current for next step's
// companion model. The stored current always changes, so rhsChanged is
// set every step; dt itself only changes via SetTimeStep.
func (l *Inductor) postStep(ctx mna.Stamp, dt float64) {
	l.i0 = ctx.GetBranchCurrent(l.branch)
	if l.circuit != nil {
		l.circuit.markRHSChanged()
	}
}
