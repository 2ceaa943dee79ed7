package pgamath

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// DualQuaternion is the same rigid motion a Motor encodes, laid out on
// gonum's dual quaternion type. The real quaternion carries
// (S, E23, E31, E12) and the dual one (E0123, E01, E02, E03); products,
// conjugates and sandwiches agree coefficient for coefficient with the
// motor ones, so the two encodings convert losslessly in both directions.
type DualQuaternion struct {
	Number dualquat.Number
}

// NewDualQuaternion returns the identity transformation. The real part of
// a dual quaternion must be a unit quaternion, not all zeroes, so this
// should be used instead of DualQuaternion{}.
func NewDualQuaternion() DualQuaternion {
	return DualQuaternion{dualquat.Number{
		Real: quat.Number{Real: 1},
	}}
}

// NewDualQuaternionFromRotorTranslation returns the dual quaternion
// rotating by r about the origin and then translating by t.
func NewDualQuaternionFromRotorTranslation(r Rotor, t r3.Vector) DualQuaternion {
	real := quat.Number{Real: r.S, Imag: r.E23, Jmag: r.E31, Kmag: r.E12}
	return DualQuaternion{dualquat.Number{
		Real: real,
		Dual: quat.Mul(quat.Number{Imag: 0.5 * t.X, Jmag: 0.5 * t.Y, Kmag: 0.5 * t.Z}, real),
	}}
}

// DualQuaternion re-encodes the motor on gonum's dual quaternion type.
func (m Motor) DualQuaternion() DualQuaternion {
	return DualQuaternion{dualquat.Number{
		Real: quat.Number{Real: m.Real.S, Imag: m.Real.E23, Jmag: m.Real.E31, Kmag: m.Real.E12},
		Dual: quat.Number{Real: m.E0123, Imag: m.E01, Jmag: m.E02, Kmag: m.E03},
	}}
}

// Motor re-encodes the dual quaternion as a motor.
func (q DualQuaternion) Motor() Motor {
	return Motor{
		Real:  Rotor{S: q.Number.Real.Real, E23: q.Number.Real.Imag, E31: q.Number.Real.Jmag, E12: q.Number.Real.Kmag},
		E0123: q.Number.Dual.Real,
		E01:   q.Number.Dual.Imag,
		E02:   q.Number.Dual.Jmag,
		E03:   q.Number.Dual.Kmag,
	}
}

// Rotation returns the rotation quaternion.
func (q DualQuaternion) Rotation() quat.Number {
	return q.Number.Real
}

// Translation multiplies the dual quaternion by its own conjugate, which
// for a unit dual quaternion leaves an identity real part and the full
// translation vector in the dual part.
func (q DualQuaternion) Translation() r3.Vector {
	tr := dualquat.Mul(q.Number, dualquat.Conj(q.Number))
	return r3.Vector{X: tr.Dual.Imag, Y: tr.Dual.Jmag, Z: tr.Dual.Kmag}
}

// Mul composes two transformations, applying o first.
func (q DualQuaternion) Mul(o DualQuaternion) DualQuaternion {
	return DualQuaternion{dualquat.Mul(q.Number, o.Number)}
}

// QuatConj conjugates both quaternions, reversing the motion.
func (q DualQuaternion) QuatConj() DualQuaternion {
	return DualQuaternion{dualquat.ConjQuat(q.Number)}
}

// DualConj negates the dual part only.
func (q DualQuaternion) DualConj() DualQuaternion {
	return DualQuaternion{dualquat.ConjDual(q.Number)}
}

// FullConj applies both conjugations, the one the point sandwich uses.
func (q DualQuaternion) FullConj() DualQuaternion {
	return DualQuaternion{dualquat.Conj(q.Number)}
}

// Norm returns the length of the real part.
func (q DualQuaternion) Norm() float64 {
	return quat.Abs(q.Number.Real)
}

// Normalized scales the real part to unit length and removes the dual
// component along it.
func (q DualQuaternion) Normalized() (DualQuaternion, error) {
	n := quat.Abs(q.Number.Real)
	if SquareApproxZero(n * n) {
		return DualQuaternion{}, errors.New("cannot normalize a zero dual quaternion")
	}
	real := quat.Scale(1/n, q.Number.Real)
	dual := quat.Scale(1/n, q.Number.Dual)
	g := real.Real*dual.Real + real.Imag*dual.Imag + real.Jmag*dual.Jmag + real.Kmag*dual.Kmag
	return DualQuaternion{dualquat.Number{
		Real: real,
		Dual: quat.Sub(dual, quat.Scale(g, real)),
	}}, nil
}

// Transform applies the transformation to a point: the sandwich
// q (1 + εp) conj(q) for a unit dual quaternion.
func (q DualQuaternion) Transform(v r3.Vector) r3.Vector {
	pt := dualquat.Number{
		Real: quat.Number{Real: 1},
		Dual: quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z},
	}
	res := dualquat.Mul(dualquat.Mul(q.Number, pt), dualquat.Conj(q.Number))
	return r3.Vector{X: res.Dual.Imag, Y: res.Dual.Jmag, Z: res.Dual.Kmag}
}

// ScLerp screw-interpolates from q to o through gonum's dual quaternion
// power, q·(q⁻¹o)ᵗ. It traces the same helix Sclerp does on motors.
func (q DualQuaternion) ScLerp(o DualQuaternion, t float64) DualQuaternion {
	delta := dualquat.Mul(dualquat.Inv(q.Number), o.Number)
	return DualQuaternion{dualquat.Mul(q.Number, dualquat.PowReal(delta, t))}
}

// SepLerp interpolates rotation and translation separately, slerping the
// real quaternions and lerping the extracted translations.
func (q DualQuaternion) SepLerp(o DualQuaternion, t float64) DualQuaternion {
	delta := quat.Mul(quat.Conj(q.Number.Real), o.Number.Real)
	rot := quat.Mul(q.Number.Real, quat.PowReal(delta, t))
	tr := LerpVec(q.Translation(), o.Translation(), t)
	return NewDualQuaternionFromRotorTranslation(
		Rotor{S: rot.Real, E23: rot.Imag, E31: rot.Jmag, E12: rot.Kmag},
		tr,
	)
}

// KenLerp blends ScLerp and SepLerp by beta, slerping their rotations and
// lerping their translations. beta of zero is pure ScLerp, one is pure
// SepLerp.
func (q DualQuaternion) KenLerp(o DualQuaternion, t, beta float64) DualQuaternion {
	sc := q.ScLerp(o, t)
	sep := q.SepLerp(o, t)
	delta := quat.Mul(quat.Conj(sc.Number.Real), sep.Number.Real)
	rot := quat.Mul(sc.Number.Real, quat.PowReal(delta, beta))
	tr := LerpVec(sc.Translation(), sep.Translation(), beta)
	return NewDualQuaternionFromRotorTranslation(
		Rotor{S: rot.Real, E23: rot.Imag, E31: rot.Jmag, E12: rot.Kmag},
		tr,
	)
}
