package pgamath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Plane is an oriented plane, the grade-1 element of the algebra. A point x
// lies on the plane when x·normal = distance. The coefficient layout keeps
// the homogeneous component in E0 = -distance; use the accessors rather
// than reading fields for geometric quantities.
type Plane struct {
	E1, E2, E3, E0 float64
}

// Common planes.
var (
	// VanishingPlane is the plane at infinity.
	VanishingPlane = Plane{E0: -1}
	PlaneYZ        = Plane{E1: 1}
	PlaneZX        = Plane{E2: 1}
	PlaneXY        = Plane{E3: 1}
)

// NewPlane returns the plane with the given normal whose closest point to
// the origin is at distance·normal (for a unit normal).
func NewPlane(normal r3.Vector, distance float64) Plane {
	return Plane{E1: normal.X, E2: normal.Y, E3: normal.Z, E0: -distance}
}

// NewVanishingPlane returns the plane at infinity scaled by delta.
func NewVanishingPlane(delta float64) Plane {
	return Plane{E0: -delta}
}

// Normal returns the normal vector of the plane. It is not normalized
// unless the plane is.
func (p Plane) Normal() r3.Vector {
	return r3.Vector{X: p.E1, Y: p.E2, Z: p.E3}
}

// Distance returns the signed distance of the plane from the origin, in
// units of the normal's length.
func (p Plane) Distance() float64 {
	return -p.E0
}

// MagnitudeSquared returns the squared Euclidean magnitude, the squared
// length of the normal.
func (p Plane) MagnitudeSquared() float64 {
	return p.E1*p.E1 + p.E2*p.E2 + p.E3*p.E3
}

// Magnitude returns the Euclidean magnitude of the plane.
func (p Plane) Magnitude() float64 {
	return math.Sqrt(p.MagnitudeSquared())
}

// VanishingMagnitudeSquared returns the squared ideal magnitude.
func (p Plane) VanishingMagnitudeSquared() float64 {
	return p.E0 * p.E0
}

// VanishingMagnitude returns the ideal magnitude, the plane's only
// meaningful size when it is vanishing.
func (p Plane) VanishingMagnitude() float64 {
	return math.Abs(p.E0)
}

// IsVanishing reports whether the plane lies at infinity.
func (p Plane) IsVanishing() bool {
	return SquareApproxZero(p.MagnitudeSquared())
}

// Normalized returns the plane scaled to unit magnitude. Vanishing planes
// normalize to the canonical plane at infinity. An exactly zero plane
// cannot be normalized.
func (p Plane) Normalized() (Plane, error) {
	if !p.IsVanishing() {
		return p.Scale(1.0 / p.Magnitude()), nil
	}
	if ApproxZero(p.E0) {
		return Plane{}, errors.New("cannot normalize a zero plane")
	}
	return VanishingPlane, nil
}

// Reverse returns the reverse of the plane, which is the plane itself.
func (p Plane) Reverse() Plane {
	return p
}

// Inverse returns the plane q with p·q = 1. Vanishing planes square to
// zero and have no inverse.
func (p Plane) Inverse() (Plane, error) {
	if p.IsVanishing() {
		return Plane{}, errors.New("a vanishing plane has no inverse")
	}
	return p.Scale(1.0 / p.MagnitudeSquared()), nil
}

// Dual returns the direction orthogonal to the plane.
func (p Plane) Dual() Point {
	return NewDirection(p.Normal())
}

// Add returns the componentwise sum p + q.
func (p Plane) Add(q Plane) Plane {
	return Plane{E1: p.E1 + q.E1, E2: p.E2 + q.E2, E3: p.E3 + q.E3, E0: p.E0 + q.E0}
}

// Sub returns the componentwise difference p - q.
func (p Plane) Sub(q Plane) Plane {
	return Plane{E1: p.E1 - q.E1, E2: p.E2 - q.E2, E3: p.E3 - q.E3, E0: p.E0 - q.E0}
}

// Scale returns the plane scaled by s.
func (p Plane) Scale(s float64) Plane {
	return Plane{E1: s * p.E1, E2: s * p.E2, E3: s * p.E3, E0: s * p.E0}
}

// Neg returns the plane with reversed orientation.
func (p Plane) Neg() Plane {
	return p.Scale(-1.0)
}

// ApproxEqual returns true if all coefficients of p and q are within
// Epsilon.
func (p Plane) ApproxEqual(q Plane) bool {
	return ApproxEqual(p.E1, q.E1) && ApproxEqual(p.E2, q.E2) &&
		ApproxEqual(p.E3, q.E3) && ApproxEqual(p.E0, q.E0)
}
