// Package pgamath implements rigid-body motions with the projective
// geometric algebra of 3D space. Planes, lines and points are first-class
// values, and motors (the PGA form of dual quaternions) carry rotations and
// translations in one object that can be composed, interpolated and applied
// to any of the flat primitives.
package pgamath

import (
	"math"

	"github.com/golang/geo/r3"
)

const (
	// Epsilon is the tolerance used for approximate comparisons of
	// linear quantities.
	Epsilon = 1e-5
	// EpsilonSquared is the tolerance for squared quantities, so that
	// magnitude checks can skip the square root.
	EpsilonSquared = 1e-10
)

// ApproxZero returns true if x is within Epsilon of zero.
func ApproxZero(x float64) bool {
	return math.Abs(x) < Epsilon
}

// SquareApproxZero returns true if x, a squared quantity, is within
// EpsilonSquared of zero.
func SquareApproxZero(x float64) bool {
	return math.Abs(x) < EpsilonSquared
}

// ApproxEqual returns true if a and b are within Epsilon of each other.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// VecApproxZero returns true if the squared norm of v is within
// EpsilonSquared of zero.
func VecApproxZero(v r3.Vector) bool {
	return SquareApproxZero(v.Norm2())
}

// VecApproxEqual returns true if a and b differ by an approximately zero
// vector.
func VecApproxEqual(a, b r3.Vector) bool {
	return VecApproxZero(a.Sub(b))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return (1.0-t)*a + t*b
}

// LerpVec linearly interpolates between a and b componentwise.
func LerpVec(a, b r3.Vector, t float64) r3.Vector {
	return a.Mul(1.0 - t).Add(b.Mul(t))
}
