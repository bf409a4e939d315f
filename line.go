package circuitsim

import "circuitsim/mna"

// Part is one element of a Line's ordered series decomposition (spec.md
// section 3). Parts are not Components: they hold no pins and are
// reached only through their owning Line. The back-reference to the
// owning Line is a weak relation per spec.md section 9 -- a Part never
// keeps its Line alive and is meaningless detached from it.
type Part struct {
	line *Line

	resistance   float64
	current      float64
	posPotential float64
	negPotential float64
}

// Resistance returns the part's own resistance in ohms.
func (p *Part) Resistance() float64 { return p.resistance }

// Current returns the part's most recently computed current, identical
// to the Line's overall current (spec.md section 8, property 4).
func (p *Part) Current() float64 { return p.current }

// PosPotential returns the part's positive-side terminal potential as of
// the most recent postStep.
func (p *Part) PosPotential() float64 { return p.posPotential }

// NegPotential returns the part's negative-side terminal potential as of
// the most recent postStep.
func (p *Part) NegPotential() float64 { return p.negPotential }

// SetResistance changes the part's resistance, recomputes the owning
// Line's total, and marks the Circuit (if installed) for restamping.
func (p *Part) SetResistance(ohms float64) {
	p.resistance = ohms
	if p.line != nil {
		p.line.recomputeTotal()
	}
}

// Line is the LineCompiler's output: a Resistor-typed Component whose
// resistance is the sum of an ordered list of Parts, per spec.md section
// 3. Grounded on the teacher's Resistor (element/base/Resistor.go) for
// the stamp shape; the Parts list and its sum invariant have no teacher
// analogue and come straight from spec.md section 4.2.
type Line struct {
	Port

	parts      []*Part
	resistance float64
}

// newLine builds a Line from pos/neg pins already resolved by the
// LineCompiler's chain walk (linecompiler.go), given an ordered Parts
// list running from pos to neg. The pins are reused as-is -- their
// union-find class membership is already correct -- with ownership
// simply reassigned from their former VirtualResistor to the new Line.
func newLine(pos, neg *Pin, parts []*Part) *Line {
	l := &Line{parts: parts}
	l.Port = newPort(l)
	pos.owner, pos.index = l, 0
	neg.owner, neg.index = l, 1
	l.pins[0] = pos
	l.pins[1] = neg
	for _, p := range parts {
		p.line = l
	}
	l.recomputeTotal()
	return l
}

// Parts returns the Line's ordered Part list, running pos to neg per
// spec.md section 3 ("Part order defines the spatial order between neg
// and pos").
func (l *Line) Parts() []*Part { return l.parts }

// Resistance returns Σ parts[i].resistance, maintained as an invariant
// after every Part mutation (spec.md section 4.2).
func (l *Line) Resistance() float64 { return l.resistance }

// Current returns the most recently solved current through the Line,
// from pos to neg; identical to every Part's Current() (spec.md section
// 8, property 4).
func (l *Line) Current() float64 {
	if l.resistance == 0 {
		return 0
	}
	return l.Potential() / l.resistance
}

// Power returns the most recently solved dissipated power.
func (l *Line) Power() float64 { return l.Potential() * l.Current() }

func (l *Line) recomputeTotal() {
	total := 0.0
	for _, p := range l.parts {
		total += p.resistance
	}
	l.resistance = total
	if l.circuit != nil {
		l.circuit.markMatrixChanged()
	}
}

func (l *Line) kind() componentKind { return kindLine }

func (l *Line) stamp(ctx mna.Stamp) {
	ctx.StampImpedance(l.pins[0].node.matrixIndex(), l.pins[1].node.matrixIndex(), l.resistance)
}

func (l *Line) updateRHS(ctx mna.Stamp) {}

// postStep propagates per-Part current and terminal potentials from the
// Line's solved endpoint potentials, splitting the voltage drop across
// Parts in proportion to each Part's share of the total resistance
// (spec.md section 4.4, step 5).
func (l *Line) postStep(ctx mna.Stamp, dt float64) {
	posV := l.pins[0].node.potential
	negV := l.pins[1].node.potential
	drop := posV - negV
	current := 0.0
	if l.resistance != 0 {
		current = drop / l.resistance
	}
	v := posV
	for _, p := range l.parts {
		p.current = current
		p.posPotential = v
		v -= current * p.resistance
		p.negPotential = v
	}
}
