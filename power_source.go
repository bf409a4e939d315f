package circuitsim

import (
	"math"

	"circuitsim/mna"
)

// powerControlEpsilon bounds the "close enough, no change" comparisons
// in the power control law (spec.md section 4.5).
const powerControlEpsilon = 1e-9

// powerControlUpdate implements spec.md section 4.5's fixed-point
// control law: given the current target (potential or current), the
// power observed this step, the ideal power, and an optional symmetric
// clip, it returns the next target value and the factor the decision was
// based on (kept for diagnostics). Shared by PowerVoltageSource and
// PowerCurrentSource since the law is identical modulo which quantity
// plays "target".
func powerControlUpdate(target, observedPower, idealPower, absMax float64) (newTarget, factor float64) {
	if math.Abs(idealPower) < powerControlEpsilon {
		return target, 0
	}
	factor = observedPower / idealPower
	if math.Abs(factor-1) < powerControlEpsilon {
		return target, factor
	}

	var mag float64
	if math.Abs(factor) < powerControlEpsilon {
		mag = absMax // near-open-circuit: jump to the clip (0 if unset)
	} else {
		mag = math.Sqrt(target * target / math.Abs(factor))
	}
	newTarget = mag
	if target < 0 {
		newTarget = -newTarget
	}

	if absMax != 0 {
		if newTarget > absMax {
			newTarget = absMax
		} else if newTarget < -absMax {
			newTarget = -absMax
		}
	}
	if math.Abs(newTarget-target) < powerControlEpsilon {
		return target, factor
	}
	return newTarget, factor
}

// PowerVoltageSource is a VoltageSource whose voltage is driven toward a
// target power by the control law in spec.md section 4.5. Composition
// over the VoltageSource variant, per spec.md section 9's "device
// adapters are composition, not inheritance" design note.
type PowerVoltageSource struct {
	*VoltageSource

	powerIdeal   float64
	targetAbsMax float64 // 0 means unbounded
	lastFactor   float64 // diagnostic: factor from the most recent control update
}

// NewPowerVoltageSource creates a detached PowerVoltageSource with the
// given initial voltage and ideal power target in watts.
func NewPowerVoltageSource(initialVolts, powerIdeal float64) *PowerVoltageSource {
	return &PowerVoltageSource{VoltageSource: NewVoltageSource(initialVolts), powerIdeal: powerIdeal}
}

// PowerIdeal returns the configured target power in watts.
func (p *PowerVoltageSource) PowerIdeal() float64 { return p.powerIdeal }

// SetPowerIdeal changes the target power.
func (p *PowerVoltageSource) SetPowerIdeal(watts float64) { p.powerIdeal = watts }

// TargetAbsMax returns the configured symmetric voltage clip, or 0 if
// unbounded.
func (p *PowerVoltageSource) TargetAbsMax() float64 { return p.targetAbsMax }

// SetTargetAbsMax changes the symmetric voltage clip; 0 means unbounded.
func (p *PowerVoltageSource) SetTargetAbsMax(volts float64) { p.targetAbsMax = volts }

// LastFactor returns power/powerIdeal as computed by the most recent
// postStep control update; a diagnostic, not part of the numerical
// contract.
func (p *PowerVoltageSource) LastFactor() float64 { return p.lastFactor }

func (p *PowerVoltageSource) kind() componentKind { return kindPowerVoltageSource }

// postStep runs the power control law: compute observed power from the
// just-solved potential/current, derive the next voltage target, and
// apply it via SetVoltage (which marks rhsChanged for the next step).
func (p *PowerVoltageSource) postStep(ctx mna.Stamp, dt float64) {
	observed := p.Potential() * p.Current()
	next, factor := powerControlUpdate(p.voltage, observed, p.powerIdeal, p.targetAbsMax)
	p.lastFactor = factor
	if next != p.voltage {
		p.SetVoltage(next)
	}
}

// PowerCurrentSource is a CurrentSource whose current is driven toward a
// target power by the control law in spec.md section 4.5. Composition
// over the CurrentSource variant, mirroring PowerVoltageSource.
type PowerCurrentSource struct {
	*CurrentSource

	powerIdeal   float64
	targetAbsMax float64
	lastFactor   float64
}

// NewPowerCurrentSource creates a detached PowerCurrentSource with the
// given initial current and ideal power target in watts.
func NewPowerCurrentSource(initialAmps, powerIdeal float64) *PowerCurrentSource {
	return &PowerCurrentSource{CurrentSource: NewCurrentSource(initialAmps), powerIdeal: powerIdeal}
}

// PowerIdeal returns the configured target power in watts.
func (p *PowerCurrentSource) PowerIdeal() float64 { return p.powerIdeal }

// SetPowerIdeal changes the target power.
func (p *PowerCurrentSource) SetPowerIdeal(watts float64) { p.powerIdeal = watts }

// TargetAbsMax returns the configured symmetric current clip, or 0 if
// unbounded.
func (p *PowerCurrentSource) TargetAbsMax() float64 { return p.targetAbsMax }

// SetTargetAbsMax changes the symmetric current clip; 0 means unbounded.
func (p *PowerCurrentSource) SetTargetAbsMax(amps float64) { p.targetAbsMax = amps }

// LastFactor returns power/powerIdeal as computed by the most recent
// postStep control update; a diagnostic, not part of the numerical
// contract.
func (p *PowerCurrentSource) LastFactor() float64 { return p.lastFactor }

func (p *PowerCurrentSource) kind() componentKind { return kindPowerCurrentSource }

func (p *PowerCurrentSource) postStep(ctx mna.Stamp, dt float64) {
	observed := p.Potential() * p.current
	next, factor := powerControlUpdate(p.current, observed, p.powerIdeal, p.targetAbsMax)
	p.lastFactor = factor
	if next != p.current {
		p.SetCurrent(next)
	}
}
