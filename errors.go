package circuitsim

import "github.com/pkg/errors"

// Sentinel build-time and solve-time error kinds, per the core's error
// taxonomy. Test with errors.Is; construction helpers below attach the
// offending component/pin for context via pkg/errors.
var (
	// ErrSameComponent is returned by connect when both endpoints name the
	// same component.
	ErrSameComponent = errors.New("circuitsim: connect: same component on both ends")

	// ErrNotAdded is returned by connect or ground when a referenced
	// component has not been registered with the builder yet.
	ErrNotAdded = errors.New("circuitsim: component not added to builder")

	// ErrAlreadyBuilt is returned by any mutating builder call made after
	// build() has finalized the circuit.
	ErrAlreadyBuilt = errors.New("circuitsim: builder already built")

	// ErrDoubleBuild is returned by a second call to build() on the same
	// builder.
	ErrDoubleBuild = errors.New("circuitsim: build called twice")

	// ErrFloatingCircuit is returned by build() when no pin was ever
	// marked as ground.
	ErrFloatingCircuit = errors.New("circuitsim: no ground node in circuit")

	// ErrDanglingChain is returned by build() when the LineCompiler finds
	// a cycle of virtual resistors with no real pin anywhere in it.
	ErrDanglingChain = errors.New("circuitsim: dangling virtual resistor chain (cycle with no real node)")

	// ErrSingularMatrix is returned by build() when factorizing the system
	// matrix reports it singular; a later re-factor failing the same way
	// makes step() return false.
	ErrSingularMatrix = errors.New("circuitsim: singular matrix")

	// ErrNonFinite is a step()-time failure: the solved vector contains a
	// NaN or Inf.
	ErrNonFinite = errors.New("circuitsim: non-finite value in solution")
)

// wrapf attaches positional context to a sentinel error without losing
// errors.Is compatibility.
func wrapf(err error, format string, args ...any) error {
	return errors.Wrapf(err, format, args...)
}
