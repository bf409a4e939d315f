// Package mna implements the numeric core of Modified Nodal Analysis:
// the Stamp contract devices use to contribute to the system matrix and
// right-hand side, and a dense LU-backed Solver.
//
// Grounded on the teacher's mna/mnaFace.go Stamp[T] interface; the
// generic type parameter is dropped since this core fixes the numeric
// type to float64, and the method set is trimmed to the linear,
// two-terminal-device subset spec.md actually needs (no VCVS/VCCS/CCCS
// controlled-source stamps, since those device types are out of scope).
package mna

// Gnd is the row/column index used for the ground node. Stamps addressed
// to Gnd are silently dropped, matching the MNA convention that ground's
// equation is never part of the free-variable system.
const Gnd = -1

// Stamp is the contract a Component uses to contribute to the linear
// system A x = b. Node and branch indices of Gnd are ignored by every
// method here, so devices never need to special-case a grounded pin.
type Stamp interface {
	// StampMatrix adds value to A[i,j]. A no-op if i or j is Gnd.
	StampMatrix(i, j int, value float64)

	// StampRHS adds value to b[i]. A no-op if i is Gnd.
	StampRHS(i int, value float64)

	// StampImpedance stamps a two-terminal resistor of the given
	// resistance (ohms) between n1 and n2:
	//   A[n1,n1] += g; A[n2,n2] += g; A[n1,n2] -= g; A[n2,n1] -= g
	// where g = 1/resistance.
	StampImpedance(n1, n2 int, resistance float64)

	// StampAdmittance is StampImpedance expressed directly in terms of a
	// conductance (siemens) rather than a resistance.
	StampAdmittance(n1, n2 int, admittance float64)

	// StampCurrentSource stamps an independent current source of the
	// given value (amperes) flowing from n1 to n2:
	//   b[n1] -= current; b[n2] += current
	StampCurrentSource(n1, n2 int, current float64)

	// StampVoltageSource stamps an independent voltage source of the
	// given value (volts) between n1 (+) and n2 (-), introducing branch
	// variable branch:
	//   A[n1,branch] = 1; A[n2,branch] = -1
	//   A[branch,n1] = 1; A[branch,n2] = -1; b[branch] = voltage
	StampVoltageSource(n1, n2, branch int, voltage float64)

	// UpdateVoltageSource rewrites b[branch] for a voltage source
	// (independent or companion) already stamped structurally by
	// StampVoltageSource, without touching A.
	UpdateVoltageSource(branch int, voltage float64)

	// GetNodeVoltage returns the most recently solved potential at node
	// i, or 0 for Gnd.
	GetNodeVoltage(i int) float64

	// GetBranchCurrent returns the most recently solved current through
	// branch variable branch.
	GetBranchCurrent(branch int) float64
}
