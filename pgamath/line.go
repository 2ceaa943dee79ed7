package pgamath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Line is a line in Plücker coordinates, the grade-2 element of the
// algebra. E23, E31, E12 carry the direction and E01, E02, E03 the moment
// about the origin. A line with a zero direction is vanishing: a pure
// direction at infinity stored in the moment slots.
type Line struct {
	E23, E31, E12, E01, E02, E03 float64
}

// Lines through the origin along the coordinate axes.
var (
	LineX = Line{E23: 1}
	LineY = Line{E31: 1}
	LineZ = Line{E12: 1}
)

// NewLine returns the line through point with the given direction.
func NewLine(direction, point r3.Vector) Line {
	m := point.Cross(direction)
	return Line{
		E23: direction.X, E31: direction.Y, E12: direction.Z,
		E01: m.X, E02: m.Y, E03: m.Z,
	}
}

// NewLineThroughOrigin returns the line through the origin with the given
// direction.
func NewLineThroughOrigin(direction r3.Vector) Line {
	return Line{E23: direction.X, E31: direction.Y, E12: direction.Z}
}

// NewLineFromPlucker builds a line directly from Plücker direction and
// moment. The pair describes a real line only when direction·moment = 0.
func NewLineFromPlucker(direction, moment r3.Vector) Line {
	return Line{
		E23: direction.X, E31: direction.Y, E12: direction.Z,
		E01: moment.X, E02: moment.Y, E03: moment.Z,
	}
}

// NewVanishingLine returns the ideal line with the given direction.
func NewVanishingLine(direction r3.Vector) Line {
	return Line{E01: direction.X, E02: direction.Y, E03: direction.Z}
}

// Direction returns the direction part of the line.
func (l Line) Direction() r3.Vector {
	return r3.Vector{X: l.E23, Y: l.E31, Z: l.E12}
}

// Moment returns the moment part of the line.
func (l Line) Moment() r3.Vector {
	return r3.Vector{X: l.E01, Y: l.E02, Z: l.E03}
}

// MagnitudeSquared returns the squared Euclidean magnitude, the squared
// length of the direction.
func (l Line) MagnitudeSquared() float64 {
	return l.E23*l.E23 + l.E31*l.E31 + l.E12*l.E12
}

// Magnitude returns the Euclidean magnitude of the line.
func (l Line) Magnitude() float64 {
	return math.Sqrt(l.MagnitudeSquared())
}

// VanishingMagnitudeSquared returns the squared ideal magnitude, the
// squared length of the moment.
func (l Line) VanishingMagnitudeSquared() float64 {
	return l.E01*l.E01 + l.E02*l.E02 + l.E03*l.E03
}

// VanishingMagnitude returns the ideal magnitude of the line.
func (l Line) VanishingMagnitude() float64 {
	return math.Sqrt(l.VanishingMagnitudeSquared())
}

// IsVanishing reports whether the line lies at infinity.
func (l Line) IsVanishing() bool {
	return SquareApproxZero(l.MagnitudeSquared())
}

// Normalized returns the line scaled to unit direction, or to unit moment
// when the line is vanishing. An exactly zero line cannot be normalized.
func (l Line) Normalized() (Line, error) {
	if !l.IsVanishing() {
		return l.Scale(1.0 / l.Magnitude()), nil
	}
	vm := l.VanishingMagnitude()
	if ApproxZero(vm) {
		return Line{}, errors.New("cannot normalize a zero line")
	}
	return l.Scale(1.0 / vm), nil
}

// Reverse returns the reverse of the line, negating all coefficients.
func (l Line) Reverse() Line {
	return l.Neg()
}

// Inverse returns the line k with l·k = 1. Vanishing lines square to zero
// and have no inverse.
func (l Line) Inverse() (Line, error) {
	if l.IsVanishing() {
		return Line{}, errors.New("a vanishing line has no inverse")
	}
	return l.Reverse().Scale(1.0 / l.MagnitudeSquared()), nil
}

// Add returns the componentwise sum l + k.
func (l Line) Add(k Line) Line {
	return Line{
		E23: l.E23 + k.E23, E31: l.E31 + k.E31, E12: l.E12 + k.E12,
		E01: l.E01 + k.E01, E02: l.E02 + k.E02, E03: l.E03 + k.E03,
	}
}

// Sub returns the componentwise difference l - k.
func (l Line) Sub(k Line) Line {
	return l.Add(k.Neg())
}

// Scale returns the line scaled by s.
func (l Line) Scale(s float64) Line {
	return Line{
		E23: s * l.E23, E31: s * l.E31, E12: s * l.E12,
		E01: s * l.E01, E02: s * l.E02, E03: s * l.E03,
	}
}

// Neg returns the line with reversed orientation.
func (l Line) Neg() Line {
	return l.Scale(-1.0)
}

// ApproxEqual returns true if all coefficients of l and k are within
// Epsilon.
func (l Line) ApproxEqual(k Line) bool {
	return ApproxEqual(l.E23, k.E23) && ApproxEqual(l.E31, k.E31) &&
		ApproxEqual(l.E12, k.E12) && ApproxEqual(l.E01, k.E01) &&
		ApproxEqual(l.E02, k.E02) && ApproxEqual(l.E03, k.E03)
}
