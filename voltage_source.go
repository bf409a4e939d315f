package circuitsim

import "circuitsim/mna"

// VoltageSource holds pos and neg at a fixed potential difference,
// injecting a branch-current unknown into the augmented MNA system
// (spec.md section 3). Grounded on the teacher's element/base/Voltage.go
// StampVoltageSource call.
type VoltageSource struct {
	Port
	voltage float64
	branch  int
}

// NewVoltageSource creates a detached VoltageSource of the given value
// in volts, pos relative to neg.
func NewVoltageSource(volts float64) *VoltageSource {
	v := &VoltageSource{voltage: volts}
	v.Port = newPort(v)
	return v
}

// Voltage returns the source's configured value in volts.
func (v *VoltageSource) Voltage() float64 { return v.voltage }

// SetVoltage changes the source's value. The system's structure is
// unchanged, so this only marks rhsChanged (spec.md section 4.3).
func (v *VoltageSource) SetVoltage(volts float64) {
	v.voltage = volts
	if v.circuit != nil {
		v.circuit.markRHSChanged()
	}
}

// Current returns the most recently solved branch current, flowing from
// pos through the source to neg.
func (v *VoltageSource) Current() float64 {
	if v.circuit == nil {
		return 0
	}
	return v.circuit.GetBranchCurrent(v.branch)
}

// Power returns the most recently solved delivered power.
func (v *VoltageSource) Power() float64 { return v.Potential() * v.Current() }

func (v *VoltageSource) kind() componentKind { return kindVoltageSource }
func (v *VoltageSource) setBranch(idx int)   { v.branch = idx }

func (v *VoltageSource) stamp(ctx mna.Stamp) {
	ctx.StampVoltageSource(v.pins[0].node.matrixIndex(), v.pins[1].node.matrixIndex(), v.branch, v.voltage)
}

func (v *VoltageSource) updateRHS(ctx mna.Stamp) {
	ctx.UpdateVoltageSource(v.branch, v.voltage)
}

func (v *VoltageSource) postStep(ctx mna.Stamp, dt float64) {}
