package circuitsim

import "circuitsim/mna"

// CurrentSource drives a fixed current from pos to neg through the source
// itself (the external circuit carries it back from neg to pos),
// contributing only to the rhs (spec.md section 4.3).
// Grounded on the teacher's element/base/CurrentSource.go
// StampCurrentSource call.
type CurrentSource struct {
	Port
	current float64
}

// NewCurrentSource creates a detached CurrentSource of the given value
// in amperes, flowing from pos to neg through the source.
func NewCurrentSource(amps float64) *CurrentSource {
	i := &CurrentSource{current: amps}
	i.Port = newPort(i)
	return i
}

// Current returns the source's configured value in amperes.
func (i *CurrentSource) Current() float64 { return i.current }

// SetCurrent changes the source's value. Unchanged structure: only
// rhsChanged is set.
func (i *CurrentSource) SetCurrent(amps float64) {
	i.current = amps
	if i.circuit != nil {
		i.circuit.markRHSChanged()
	}
}

// Power returns the most recently solved delivered power.
func (i *CurrentSource) Power() float64 { return i.Potential() * i.current }

func (i *CurrentSource) kind() componentKind { return kindCurrentSource }

func (i *CurrentSource) stamp(ctx mna.Stamp) {
	ctx.StampCurrentSource(i.pins[0].node.matrixIndex(), i.pins[1].node.matrixIndex(), i.current)
}

func (i *CurrentSource) updateRHS(ctx mna.Stamp) {
	ctx.StampCurrentSource(i.pins[0].node.matrixIndex(), i.pins[1].node.matrixIndex(), i.current)
}

func (i *CurrentSource) postStep(ctx mna.Stamp, dt float64) {}
