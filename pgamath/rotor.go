package pgamath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Rotor is the even-grade element (S, E23, E31, E12) of the Euclidean
// bivector subalgebra. Unit rotors represent rotations about lines through
// the origin and multiply exactly like unit quaternions. Applying a rotor
// to vectors uses the sandwich q v q̄, so NewRotorFromAxisAngle rotates
// right-handed about its axis.
type Rotor struct {
	S, E23, E31, E12 float64
}

// RotorIdentity is the identity rotation.
var RotorIdentity = Rotor{S: 1}

// NewRotor builds a rotor from a scalar and a bivector.
func NewRotor(s float64, b r3.Vector) Rotor {
	return Rotor{S: s, E23: b.X, E31: b.Y, E12: b.Z}
}

// NewRotorFromAxisAngle returns the rotor rotating by angle about the unit
// axis.
func NewRotorFromAxisAngle(axis r3.Vector, angle float64) Rotor {
	half := 0.5 * angle
	return NewRotor(math.Cos(half), axis.Mul(math.Sin(half)))
}

// Bivector returns the bivector part of the rotor.
func (r Rotor) Bivector() r3.Vector {
	return r3.Vector{X: r.E23, Y: r.E31, Z: r.E12}
}

// Mul returns the rotor product r·q. Applied to vectors, the product
// performs q's rotation first.
func (r Rotor) Mul(q Rotor) Rotor {
	return Rotor{
		S:   -r.E23*q.E23 - r.E31*q.E31 - r.E12*q.E12 + r.S*q.S,
		E23: r.S*q.E23 + r.E23*q.S + r.E31*q.E12 - r.E12*q.E31,
		E31: r.S*q.E31 + r.E31*q.S + r.E12*q.E23 - r.E23*q.E12,
		E12: r.S*q.E12 + r.E12*q.S + r.E23*q.E31 - r.E31*q.E23,
	}
}

// Reverse returns the reverse rotor, undoing r's rotation.
func (r Rotor) Reverse() Rotor {
	return Rotor{S: r.S, E23: -r.E23, E31: -r.E31, E12: -r.E12}
}

// NormSquared returns the squared norm of the rotor.
func (r Rotor) NormSquared() float64 {
	return r.S*r.S + r.E23*r.E23 + r.E31*r.E31 + r.E12*r.E12
}

// Norm returns the norm of the rotor.
func (r Rotor) Norm() float64 {
	return math.Sqrt(r.NormSquared())
}

// Normalized returns the unit rotor with r's orientation.
func (r Rotor) Normalized() (Rotor, error) {
	n := r.Norm()
	if ApproxZero(n) {
		return Rotor{}, errors.New("cannot normalize a zero rotor")
	}
	return r.Scale(1.0 / n), nil
}

// Inverse returns the rotor q with r·q = 1.
func (r Rotor) Inverse() (Rotor, error) {
	n2 := r.NormSquared()
	if SquareApproxZero(n2) {
		return Rotor{}, errors.New("cannot invert a zero rotor")
	}
	return r.Reverse().Scale(1.0 / n2), nil
}

// Add returns the componentwise sum r + q.
func (r Rotor) Add(q Rotor) Rotor {
	return Rotor{S: r.S + q.S, E23: r.E23 + q.E23, E31: r.E31 + q.E31, E12: r.E12 + q.E12}
}

// Sub returns the componentwise difference r - q.
func (r Rotor) Sub(q Rotor) Rotor {
	return r.Add(q.Scale(-1.0))
}

// Scale returns the rotor scaled by s.
func (r Rotor) Scale(s float64) Rotor {
	return Rotor{S: s * r.S, E23: s * r.E23, E31: s * r.E31, E12: s * r.E12}
}

// RotorExp exponentiates a rotor-valued logarithm: the scalar part scales
// the result and the bivector part becomes the rotation. The zero-angle
// branch keeps the first-order bivector so small logs round-trip.
func RotorExp(r Rotor) Rotor {
	v := r.Bivector()
	lenV := v.Norm()
	expW := math.Exp(r.S)
	if ApproxZero(lenV) {
		return NewRotor(expW, v.Mul(expW))
	}
	return NewRotor(expW*math.Cos(lenV), v.Mul(expW*math.Sin(lenV)/lenV))
}

// Log returns the rotor logarithm: ln of the norm in the scalar slot and
// the rotation's half-angle axis in the bivector.
func (r Rotor) Log() Rotor {
	n := r.Norm()
	v := r.Bivector()
	lenV := v.Norm()
	if ApproxZero(lenV) {
		return NewRotor(math.Log(n), r3.Vector{})
	}
	return NewRotor(math.Log(n), v.Mul(math.Acos(r.S/n)/lenV))
}

// Pow raises the rotor to the power t along its geodesic.
func (r Rotor) Pow(t float64) Rotor {
	return RotorExp(r.Log().Scale(t))
}

// Slerp interpolates from a to b along the rotor geodesic. The raw
// relative rotation is used, so a path longer than half a turn is taken as
// given rather than flipped; see SlerpShortest.
func Slerp(a, b Rotor, t float64) Rotor {
	return a.Mul(a.Reverse().Mul(b).Pow(t))
}

// SlerpShortest interpolates from a to b through the smaller of the two
// arcs, flipping b's cover when needed.
func SlerpShortest(a, b Rotor, t float64) Rotor {
	if a.S*b.S+a.E23*b.E23+a.E31*b.E31+a.E12*b.E12 < 0 {
		b = b.Scale(-1.0)
	}
	return Slerp(a, b, t)
}

// TransformVector rotates v by the unit rotor r.
func (r Rotor) TransformVector(v r3.Vector) r3.Vector {
	b := r.Bivector()
	t := b.Cross(v)
	return v.Add(t.Mul(2.0 * r.S)).Add(b.Cross(t).Mul(2.0))
}

// XBasis returns the image of the x axis under the unit rotor.
func (r Rotor) XBasis() r3.Vector {
	return r3.Vector{
		X: r.E23*r.E23 - r.E31*r.E31 - r.E12*r.E12 + r.S*r.S,
		Y: 2.0 * (r.E23*r.E31 + r.E12*r.S),
		Z: 2.0 * (r.E23*r.E12 - r.E31*r.S),
	}
}

// YBasis returns the image of the y axis under the unit rotor.
func (r Rotor) YBasis() r3.Vector {
	return r3.Vector{
		X: 2.0 * (r.E23*r.E31 - r.E12*r.S),
		Y: -r.E23*r.E23 + r.E31*r.E31 - r.E12*r.E12 + r.S*r.S,
		Z: 2.0 * (r.E31*r.E12 + r.E23*r.S),
	}
}

// ZBasis returns the image of the z axis under the unit rotor.
func (r Rotor) ZBasis() r3.Vector {
	return r3.Vector{
		X: 2.0 * (r.E23*r.E12 + r.E31*r.S),
		Y: 2.0 * (r.E31*r.E12 - r.E23*r.S),
		Z: -r.E23*r.E23 - r.E31*r.E31 + r.E12*r.E12 + r.S*r.S,
	}
}

// Mat3 returns the rotation matrix of the unit rotor, basis images as
// columns.
func (r Rotor) Mat3() mgl64.Mat3 {
	x, y, z := r.XBasis(), r.YBasis(), r.ZBasis()
	return mgl64.Mat3FromCols(
		mgl64.Vec3{x.X, x.Y, x.Z},
		mgl64.Vec3{y.X, y.Y, y.Z},
		mgl64.Vec3{z.X, z.Y, z.Z},
	)
}

// ApproxEqual returns true if all coefficients of r and q are within
// Epsilon.
func (r Rotor) ApproxEqual(q Rotor) bool {
	return ApproxEqual(r.S, q.S) && ApproxEqual(r.E23, q.E23) &&
		ApproxEqual(r.E31, q.E31) && ApproxEqual(r.E12, q.E12)
}
