package pgamath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Point is a homogeneous point, the grade-3 element of the algebra. E032,
// E013, E021 carry the weighted position and E123 the weight. A point with
// zero weight is a direction at infinity.
type Point struct {
	E032, E013, E021, E123 float64
}

// Common points and directions.
var (
	Origin = Point{E123: 1}
	DirX   = Point{E032: 1}
	DirY   = Point{E013: 1}
	DirZ   = Point{E021: 1}
)

// NewPoint returns the unit-weight point at position v.
func NewPoint(v r3.Vector) Point {
	return Point{E032: v.X, E013: v.Y, E021: v.Z, E123: 1}
}

// NewDirection returns the ideal point (zero weight) along v.
func NewDirection(v r3.Vector) Point {
	return Point{E032: v.X, E013: v.Y, E021: v.Z}
}

// NewHomogeneousPoint returns the point at v with the given weight.
func NewHomogeneousPoint(v r3.Vector, weight float64) Point {
	return Point{E032: weight * v.X, E013: weight * v.Y, E021: weight * v.Z, E123: weight}
}

// Vec returns the Euclidean position of the point, dividing out the weight.
// For a vanishing point the raw direction components are returned.
func (p Point) Vec() r3.Vector {
	if !p.IsVanishing() {
		return r3.Vector{X: p.E032 / p.E123, Y: p.E013 / p.E123, Z: p.E021 / p.E123}
	}
	return r3.Vector{X: p.E032, Y: p.E013, Z: p.E021}
}

// Weight returns the homogeneous weight of the point.
func (p Point) Weight() float64 {
	return p.E123
}

// MagnitudeSquared returns the squared weight.
func (p Point) MagnitudeSquared() float64 {
	return p.E123 * p.E123
}

// Magnitude returns the absolute weight.
func (p Point) Magnitude() float64 {
	return math.Abs(p.E123)
}

// VanishingMagnitudeSquared returns the squared length of the position
// components.
func (p Point) VanishingMagnitudeSquared() float64 {
	return p.E032*p.E032 + p.E013*p.E013 + p.E021*p.E021
}

// VanishingMagnitude returns the length of the position components.
func (p Point) VanishingMagnitude() float64 {
	return math.Sqrt(p.VanishingMagnitudeSquared())
}

// IsVanishing reports whether the point lies at infinity. Unlike planes and
// lines this tests the weight against the linear epsilon.
func (p Point) IsVanishing() bool {
	return ApproxZero(p.E123)
}

// Normalized returns the point scaled to unit weight, or a vanishing point
// with unit direction. An exactly zero point cannot be normalized.
func (p Point) Normalized() (Point, error) {
	if !p.IsVanishing() {
		return p.Scale(1.0 / p.E123), nil
	}
	vm := p.VanishingMagnitude()
	if ApproxZero(vm) {
		return Point{}, errors.New("cannot normalize a zero point")
	}
	return p.Scale(1.0 / vm), nil
}

// Reverse returns the reverse of the point, negating all coefficients.
func (p Point) Reverse() Point {
	return p.Neg()
}

// Inverse returns the point q with p·q = 1. Vanishing points square to
// zero and have no inverse.
func (p Point) Inverse() (Point, error) {
	if p.IsVanishing() {
		return Point{}, errors.New("a vanishing point has no inverse")
	}
	return p.Reverse().Scale(1.0 / p.MagnitudeSquared()), nil
}

// Add returns the componentwise sum p + q.
func (p Point) Add(q Point) Point {
	return Point{
		E032: p.E032 + q.E032, E013: p.E013 + q.E013,
		E021: p.E021 + q.E021, E123: p.E123 + q.E123,
	}
}

// Sub returns the componentwise difference p - q.
func (p Point) Sub(q Point) Point {
	return p.Add(q.Neg())
}

// Scale returns the point scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{E032: s * p.E032, E013: s * p.E013, E021: s * p.E021, E123: s * p.E123}
}

// Neg returns the point with reversed orientation.
func (p Point) Neg() Point {
	return p.Scale(-1.0)
}

// ApproxEqual returns true if all coefficients of p and q are within
// Epsilon.
func (p Point) ApproxEqual(q Point) bool {
	return ApproxEqual(p.E032, q.E032) && ApproxEqual(p.E013, q.E013) &&
		ApproxEqual(p.E021, q.E021) && ApproxEqual(p.E123, q.E123)
}
