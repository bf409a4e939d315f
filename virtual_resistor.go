package circuitsim

import "circuitsim/mna"

// VirtualResistor is the raw input fed to the LineCompiler (spec.md
// section 4.2): a plain resistor that never survives to the built
// Circuit. CircuitBuilder.Build replaces every maximal chain of
// VirtualResistors with a single Line. Grounded on the teacher's
// GndBase/HeghBase panic-on-stamp idiom (types/elements.go): a
// VirtualResistor that somehow reaches the stamp/postStep phase
// indicates the LineCompiler failed to remove it, which is a bug, not a
// runtime condition callers should recover from.
type VirtualResistor struct {
	Port
	resistance float64
}

// NewVirtualResistor creates a VirtualResistor of the given resistance in
// ohms. resistance must be positive.
func NewVirtualResistor(resistance float64) *VirtualResistor {
	vr := &VirtualResistor{resistance: resistance}
	vr.Port = newPort(vr)
	return vr
}

// otherPin returns vr's pin other than p.
func (vr *VirtualResistor) otherPin(p *Pin) *Pin {
	if vr.pins[0] == p {
		return vr.pins[1]
	}
	return vr.pins[0]
}

func (vr *VirtualResistor) kind() componentKind { return kindVirtualResistor }

func (vr *VirtualResistor) stamp(ctx mna.Stamp) {
	panic("circuitsim: VirtualResistor reached stamp; LineCompiler should have consumed it")
}

func (vr *VirtualResistor) updateRHS(ctx mna.Stamp) {
	panic("circuitsim: VirtualResistor reached updateRHS; LineCompiler should have consumed it")
}

func (vr *VirtualResistor) postStep(ctx mna.Stamp, dt float64) {
	panic("circuitsim: VirtualResistor reached postStep; LineCompiler should have consumed it")
}
