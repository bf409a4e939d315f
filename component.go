package circuitsim

import "circuitsim/mna"

// componentKind is the closed tagged variant spec.md section 9 calls
// for: the core enumerates exactly these device shapes rather than using
// an open registry like the teacher's AddElement/reflection-driven
// ValueMap system (element/face.go, element/element.go). The tag decides
// branch allocation, virtual-vs-real pin marking and debug labels;
// stamp/updateRHS/postStep dispatch through the Component interface.
type componentKind int

const (
	kindResistor componentKind = iota
	kindVirtualResistor
	kindVoltageSource
	kindCurrentSource
	kindCapacitor
	kindInductor
	kindSwitch
	kindLine
	kindPowerVoltageSource
	kindPowerCurrentSource
)

// Component is the polymorphic device contract: a fixed-arity pin list
// plus the stamp/updateRHS/postStep hooks the Circuit drives during build
// and step. The lifecycle methods are unexported so that the variant set
// stays closed to this package, per spec.md section 9's "closed tagged
// variant" design note.
type Component interface {
	// Pins returns the component's fixed-arity pin list, in the order
	// fixed at construction (Port devices: index 0 = pos, index 1 = neg).
	Pins() []*Pin

	// ComponentID returns a stable identity assigned when the component
	// is added to a CircuitBuilder. Undefined before Add.
	ComponentID() int

	// InCircuit reports whether this component has been attached to a
	// built Circuit.
	InCircuit() bool

	kind() componentKind
	setID(id int)
	attach(c *Circuit)
	stamp(ctx mna.Stamp)
	updateRHS(ctx mna.Stamp)
	postStep(ctx mna.Stamp, dt float64)
}

// base holds the bookkeeping every Component needs: its pin list, its
// builder-assigned id, and a back-reference to the owning Circuit (nil
// until attach is called by Circuit.build).
type base struct {
	id      int
	circuit *Circuit
	pins    []*Pin
}

func newBase(self Component, n int) base {
	b := base{pins: make([]*Pin, n)}
	for i := range b.pins {
		b.pins[i] = newPin(self, i)
	}
	return b
}

func (b *base) Pins() []*Pin      { return b.pins }
func (b *base) ComponentID() int  { return b.id }
func (b *base) InCircuit() bool   { return b.circuit != nil }
func (b *base) setID(id int)      { b.id = id }
func (b *base) attach(c *Circuit) { b.circuit = c }

// Port specializes Component with exactly two pins, pos (index 0) and
// neg (index 1), per spec.md section 3/4. Devices embed Port to get
// Potential() for free; Current()/Power() stay device-specific since the
// sign convention and companion-model bookkeeping differ per device.
type Port struct {
	base
}

func newPort(self Component) Port {
	return Port{base: newBase(self, 2)}
}

// Pos returns the positive-reference pin (pin index 0).
func (p *Port) Pos() *Pin { return p.pins[0] }

// Neg returns the negative-reference pin (pin index 1).
func (p *Port) Neg() *Pin { return p.pins[1] }

// Potential returns pos.node.potential - neg.node.potential using the
// most recent solve. Returns 0 before build.
func (p *Port) Potential() float64 {
	if p.pins[0].node == nil || p.pins[1].node == nil {
		return 0
	}
	return p.pins[0].node.potential - p.pins[1].node.potential
}
