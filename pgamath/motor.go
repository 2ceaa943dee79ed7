package pgamath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

// Motor is the even-grade element of the algebra: a rigid motion. The real
// part carries the rotation and (E0123, E01, E02, E03) the dual part
// carrying the translation, laid out so that Real and dual multiply as the
// two quaternions of a dual quaternion. A translation by t has dual vector
// t/2; a unit motor additionally satisfies ⟨Real, dual⟩ = 0.
//
// Mul composes right to left: a.Mul(b) applies b's motion first. The same
// convention makes a·X·rev(a) the sandwich all Transform methods expand.
type Motor struct {
	Real                 Rotor
	E0123, E01, E02, E03 float64
}

// MotorIdentity is the identity motion.
var MotorIdentity = Motor{Real: RotorIdentity}

// NewMotorFromRotor returns the motor rotating by r about the origin.
func NewMotorFromRotor(r Rotor) Motor {
	return Motor{Real: r}
}

// NewMotorFromTranslation returns the motor translating by t.
func NewMotorFromTranslation(t r3.Vector) Motor {
	return Motor{Real: RotorIdentity, E01: 0.5 * t.X, E02: 0.5 * t.Y, E03: 0.5 * t.Z}
}

// NewMotorFromRotorTranslation returns the motor rotating by r about the
// origin and then translating by t.
func NewMotorFromRotorTranslation(r Rotor, t r3.Vector) Motor {
	d := NewRotor(0, t.Mul(0.5)).Mul(r)
	return newMotor(r, d)
}

// NewMotorFromAxisAngleTranslation returns the motor rotating by angle
// about the unit axis through the origin and then translating by t.
func NewMotorFromAxisAngleTranslation(axis r3.Vector, angle float64, t r3.Vector) Motor {
	return NewMotorFromRotorTranslation(NewRotorFromAxisAngle(axis, angle), t)
}

// NewMotorFromPlanes returns the geometric product of two planes: the
// motion reflecting in b and then in a. Unit intersecting planes give the
// rotation about their meet line by twice their dihedral angle; parallel
// planes give the translation across twice their gap.
func NewMotorFromPlanes(a, b Plane) Motor {
	l := Meet(a, b)
	return Motor{
		Real:  NewRotor(InnerPlanes(a, b), l.Direction().Mul(-1.0)),
		E01:   -l.E01,
		E02:   -l.E02,
		E03:   -l.E03,
		E0123: 0,
	}
}

// NewMotorFromLines returns the geometric product of two lines: the half
// turn about b followed by the half turn about a. For unit lines this is
// the screw motion of twice the angle and twice the distance between them.
func NewMotorFromLines(a, b Line) Motor {
	ad, am := a.Direction(), a.Moment()
	bd, bm := b.Direction(), b.Moment()
	real := NewRotor(-ad.Dot(bd), ad.Cross(bd))
	dv := am.Cross(bd).Add(ad.Cross(bm))
	return newMotor(real, NewRotor(am.Dot(bd)+ad.Dot(bm), dv))
}

// NewMotorFromPoints returns the geometric product of two points: the
// central inversion through b followed by the one through a, a translation
// by twice the vector from b to a (negated in the scalar for unit
// weights, which the sandwich cancels out).
func NewMotorFromPoints(a, b Point) Motor {
	return Motor{
		Real: Rotor{S: -a.E123 * b.E123},
		E01:  a.E123*b.E032 - a.E032*b.E123,
		E02:  a.E123*b.E013 - a.E013*b.E123,
		E03:  a.E123*b.E021 - a.E021*b.E123,
	}
}

func newMotor(real, dual Rotor) Motor {
	return Motor{Real: real, E0123: dual.S, E01: dual.E23, E02: dual.E31, E03: dual.E12}
}

// dual returns the dual part as a quaternion-shaped rotor.
func (m Motor) dual() Rotor {
	return Rotor{S: m.E0123, E23: m.E01, E31: m.E02, E12: m.E03}
}

// Dual returns the pseudoscalar and ideal bivector coefficients of the
// motor.
func (m Motor) Dual() (float64, r3.Vector) {
	return m.E0123, r3.Vector{X: m.E01, Y: m.E02, Z: m.E03}
}

// Translation returns the translation the motor applies after its
// rotation.
func (m Motor) Translation() r3.Vector {
	n2 := m.Real.NormSquared()
	return m.dual().Mul(m.Real.Reverse()).Scale(2.0 / n2).Bivector()
}

// Mul returns the motor product m·o, the motion applying o first.
func (m Motor) Mul(o Motor) Motor {
	return newMotor(
		m.Real.Mul(o.Real),
		m.Real.Mul(o.dual()).Add(m.dual().Mul(o.Real)),
	)
}

// Div returns m·rev(o), the relative motion from o to m for unit motors.
func (m Motor) Div(o Motor) Motor {
	return m.Mul(o.Reverse())
}

// Reverse returns the reverse motor, undoing m's motion.
func (m Motor) Reverse() Motor {
	return newMotor(m.Real.Reverse(), m.dual().Reverse())
}

// NormSquared returns the squared norm of the real part.
func (m Motor) NormSquared() float64 {
	return m.Real.NormSquared()
}

// Norm returns the norm of the real part.
func (m Motor) Norm() float64 {
	return m.Real.Norm()
}

// IsSimple reports whether the motor is a simple motion, a pure rotation
// or pure translation with no pitch along its axis.
func (m Motor) IsSimple() bool {
	return ApproxZero(m.E0123)
}

// Scale returns the motor with all eight coefficients scaled by s.
func (m Motor) Scale(s float64) Motor {
	return newMotor(m.Real.Scale(s), m.dual().Scale(s))
}

// Neg returns the motor on the opposite sheet of the double cover. It
// performs the same rigid motion.
func (m Motor) Neg() Motor {
	return m.Scale(-1.0)
}

// Normalized scales the real part to a unit rotor and removes the dual
// component along it, yielding a proper rigid motion.
func (m Motor) Normalized() (Motor, error) {
	n2 := m.Real.NormSquared()
	if SquareApproxZero(n2) {
		return Motor{}, errors.New("cannot normalize a zero motor")
	}
	n := math.Sqrt(n2)
	d := m.dual()
	g := rotorDot(m.Real, d) / n2
	return newMotor(
		m.Real.Scale(1.0/n),
		d.Sub(m.Real.Scale(g)).Scale(1.0/n),
	), nil
}

func rotorDot(a, b Rotor) float64 {
	return a.S*b.S + a.E23*b.E23 + a.E31*b.E31 + a.E12*b.E12
}

// Sqrt returns the square root of a unit motor: half its motion. For
// motors with a negative scalar the root lies on the opposite sheet and
// squares to m.Neg(), the same rigid motion.
func (m Motor) Sqrt() Motor {
	d := m.dual()
	if m.Real.S >= 0 {
		real := Rotor{S: 1.0 + m.Real.S, E23: m.Real.E23, E31: m.Real.E31, E12: m.Real.E12}
		scale := 2.0 * (1.0 + m.Real.S)
		inv := 1.0 / math.Sqrt(scale)
		g := rotorDot(real, d) / scale
		return newMotor(real.Scale(inv), d.Sub(real.Scale(g)).Scale(inv))
	}
	real := Rotor{S: m.Real.S - 1.0, E23: m.Real.E23, E31: m.Real.E31, E12: m.Real.E12}
	scale := 2.0 * (1.0 - m.Real.S)
	inv := 1.0 / math.Sqrt(scale)
	g := rotorDot(real, d) / scale
	return newMotor(real.Scale(inv), d.Sub(real.Scale(g)).Scale(inv))
}

// FastSqrt returns the square root of a unit motor modulo a positive
// factor, skipping the normalization. The motor's scalar must exceed -1.
func (m Motor) FastSqrt() Motor {
	real := Rotor{S: 1.0 + m.Real.S, E23: m.Real.E23, E31: m.Real.E31, E12: m.Real.E12}
	scale := 2.0 * (1.0 + m.Real.S)
	d := m.dual().Scale(scale).Sub(real.Scale(m.E0123))
	return newMotor(real.Scale(scale), d)
}

// OrientedSqrt is Sqrt with an orientation continuity heuristic: close to
// a full turn (scalar below -1/2) the result is flipped half a turn about
// its own y basis, keeping blended frames from turning inside out.
func (m Motor) OrientedSqrt() Motor {
	n := m.Sqrt()
	if m.Real.S < -0.5 {
		flip := NewMotorFromRotor(NewRotorFromAxisAngle(n.Real.YBasis(), math.Pi))
		n = flip.Mul(n)
	}
	return n
}

// decompose splits the motor into its unit rotation and translation.
func (m Motor) decompose() (Rotor, r3.Vector) {
	n2 := m.Real.NormSquared()
	inv := 1.0 / math.Sqrt(n2)
	rhat := m.Real.Scale(inv)
	t := m.dual().Mul(m.Real.Reverse()).Scale(2.0 / n2).Bivector()
	return rhat, t
}

// TransformPoint applies the motor to a Euclidean position.
func (m Motor) TransformPoint(v r3.Vector) r3.Vector {
	rhat, t := m.decompose()
	return rhat.TransformVector(v).Add(t)
}

// TransformDirection applies only the rotation of the motor to v.
func (m Motor) TransformDirection(v r3.Vector) r3.Vector {
	rhat, _ := m.decompose()
	return rhat.TransformVector(v)
}

// TransformPlane applies the motor to a plane, rotating its normal and
// shifting its offset.
func (m Motor) TransformPlane(p Plane) Plane {
	rhat, t := m.decompose()
	n := rhat.TransformVector(p.Normal())
	return Plane{E1: n.X, E2: n.Y, E3: n.Z, E0: p.E0 - n.Dot(t)}
}

// TransformLine applies the motor to a line, rotating direction and moment
// and adding the translation's moment contribution.
func (m Motor) TransformLine(l Line) Line {
	rhat, t := m.decompose()
	d := rhat.TransformVector(l.Direction())
	mom := rhat.TransformVector(l.Moment()).Add(t.Cross(d))
	return NewLineFromPlucker(d, mom)
}

// TransformFlatPoint applies the motor to a homogeneous point. Vanishing
// points only rotate.
func (m Motor) TransformFlatPoint(p Point) Point {
	rhat, t := m.decompose()
	v := rhat.TransformVector(r3.Vector{X: p.E032, Y: p.E013, Z: p.E021}).Add(t.Mul(p.E123))
	return Point{E032: v.X, E013: v.Y, E021: v.Z, E123: p.E123}
}

// Mat4 returns the homogeneous transform matrix of the motor.
func (m Motor) Mat4() mgl64.Mat4 {
	rhat, t := m.decompose()
	x, y, z := rhat.XBasis(), rhat.YBasis(), rhat.ZBasis()
	return mgl64.Mat4FromCols(
		mgl64.Vec4{x.X, x.Y, x.Z, 0},
		mgl64.Vec4{y.X, y.Y, y.Z, 0},
		mgl64.Vec4{z.X, z.Y, z.Z, 0},
		mgl64.Vec4{t.X, t.Y, t.Z, 1},
	)
}

// ApproxEqual returns true if all eight coefficients of m and o are within
// Epsilon.
func (m Motor) ApproxEqual(o Motor) bool {
	return m.Real.ApproxEqual(o.Real) && ApproxEqual(m.E0123, o.E0123) &&
		ApproxEqual(m.E01, o.E01) && ApproxEqual(m.E02, o.E02) && ApproxEqual(m.E03, o.E03)
}

// ApproxEquivalent returns true if m and o perform the same rigid motion,
// comparing up to the sign of the double cover.
func (m Motor) ApproxEquivalent(o Motor) bool {
	return m.ApproxEqual(o) || m.ApproxEqual(o.Neg())
}
