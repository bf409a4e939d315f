package mna

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 2x2 diagonal system solves exactly, per spec.md section 4.6's
// determinism requirement.
func TestSolverDiagonalSystem(t *testing.T) {
	s := NewSolver(2)
	s.StampMatrix(0, 0, 2)
	s.StampMatrix(1, 1, 4)
	s.StampRHS(0, 6)
	s.StampRHS(1, 8)

	require.NoError(t, s.Factorize())
	x, err := s.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 3.0, x[0], 1e-9)
	assert.InDelta(t, 2.0, x[1], 1e-9)
}

// An all-zero matrix is singular and must be reported as such rather
// than silently producing a garbage solution.
func TestSolverSingularMatrix(t *testing.T) {
	s := NewSolver(2)
	s.StampRHS(0, 1)

	err := s.Factorize()
	assert.ErrorIs(t, err, ErrSingular)
}

// Out-of-range (ground) indices are silently ignored rather than
// panicking, so devices never need to special-case a grounded pin.
func TestSolverIgnoresGroundIndex(t *testing.T) {
	s := NewSolver(1)
	s.StampMatrix(Gnd, Gnd, 5)
	s.StampMatrix(0, 0, 2)
	s.StampRHS(Gnd, 1)
	s.StampRHS(0, 4)

	require.NoError(t, s.Factorize())
	x, err := s.Solve()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-9)
}

// ZeroMatrix invalidates the cached factorization, so Solve before a
// fresh Factorize fails rather than reusing stale factors.
func TestSolverZeroMatrixInvalidatesFactorization(t *testing.T) {
	s := NewSolver(1)
	s.StampMatrix(0, 0, 2)
	s.StampRHS(0, 4)
	require.NoError(t, s.Factorize())

	s.ZeroMatrix()
	_, err := s.Solve()
	assert.ErrorIs(t, err, ErrSingular)
}
