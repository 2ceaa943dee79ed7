package pgamath

import (
	"math"

	"github.com/pkg/errors"
)

// Multivector is a general element of the projective geometric algebra
// Cl(3,0,1). The sixteen coefficients are stored in basis order
// 1, e0..e3, e01, e02, e03, e12, e31, e23, e021, e013, e032, e123, e0123.
//
// The specialized Plane, Line, Point, Rotor and Motor types cover the
// grades that show up in practice with cheaper closed forms; Multivector is
// the general-grade escape hatch and the ground truth those closed forms
// are checked against.
type Multivector [16]float64

// Basis blade indices into a Multivector.
const (
	MvS = iota
	MvE0
	MvE1
	MvE2
	MvE3
	MvE01
	MvE02
	MvE03
	MvE12
	MvE31
	MvE23
	MvE021
	MvE013
	MvE032
	MvE123
	MvE0123
)

// NewScalar returns the multivector with scalar part s and no other
// components.
func NewScalar(s float64) Multivector {
	var m Multivector
	m[MvS] = s
	return m
}

// NewPseudoscalar returns p times the unit pseudoscalar e0123.
func NewPseudoscalar(p float64) Multivector {
	var m Multivector
	m[MvE0123] = p
	return m
}

// Mul computes the geometric product a·b.
func (a Multivector) Mul(b Multivector) Multivector {
	var res Multivector
	res[0] = b[0]*a[0] + b[2]*a[2] + b[3]*a[3] + b[4]*a[4] - b[8]*a[8] - b[9]*a[9] - b[10]*a[10] - b[14]*a[14]
	res[1] = b[1]*a[0] + b[0]*a[1] - b[5]*a[2] - b[6]*a[3] - b[7]*a[4] + b[2]*a[5] + b[3]*a[6] + b[4]*a[7] + b[11]*a[8] + b[12]*a[9] + b[13]*a[10] + b[8]*a[11] + b[9]*a[12] + b[10]*a[13] + b[15]*a[14] - b[14]*a[15]
	res[2] = b[2]*a[0] + b[0]*a[2] - b[8]*a[3] + b[9]*a[4] + b[3]*a[8] - b[4]*a[9] - b[14]*a[10] - b[10]*a[14]
	res[3] = b[3]*a[0] + b[8]*a[2] + b[0]*a[3] - b[10]*a[4] - b[2]*a[8] - b[14]*a[9] + b[4]*a[10] - b[9]*a[14]
	res[4] = b[4]*a[0] - b[9]*a[2] + b[10]*a[3] + b[0]*a[4] - b[14]*a[8] + b[2]*a[9] - b[3]*a[10] - b[8]*a[14]
	res[5] = b[5]*a[0] + b[2]*a[1] - b[1]*a[2] - b[11]*a[3] + b[12]*a[4] + b[0]*a[5] - b[8]*a[6] + b[9]*a[7] + b[6]*a[8] - b[7]*a[9] - b[15]*a[10] - b[3]*a[11] + b[4]*a[12] + b[14]*a[13] - b[13]*a[14] - b[10]*a[15]
	res[6] = b[6]*a[0] + b[3]*a[1] + b[11]*a[2] - b[1]*a[3] - b[13]*a[4] + b[8]*a[5] + b[0]*a[6] - b[10]*a[7] - b[5]*a[8] - b[15]*a[9] + b[7]*a[10] + b[2]*a[11] + b[14]*a[12] - b[4]*a[13] - b[12]*a[14] - b[9]*a[15]
	res[7] = b[7]*a[0] + b[4]*a[1] - b[12]*a[2] + b[13]*a[3] - b[1]*a[4] - b[9]*a[5] + b[10]*a[6] + b[0]*a[7] - b[15]*a[8] + b[5]*a[9] - b[6]*a[10] + b[14]*a[11] - b[2]*a[12] + b[3]*a[13] - b[11]*a[14] - b[8]*a[15]
	res[8] = b[8]*a[0] + b[3]*a[2] - b[2]*a[3] + b[14]*a[4] + b[0]*a[8] + b[10]*a[9] - b[9]*a[10] + b[4]*a[14]
	res[9] = b[9]*a[0] - b[4]*a[2] + b[14]*a[3] + b[2]*a[4] - b[10]*a[8] + b[0]*a[9] + b[8]*a[10] + b[3]*a[14]
	res[10] = b[10]*a[0] + b[14]*a[2] + b[4]*a[3] - b[3]*a[4] + b[9]*a[8] - b[8]*a[9] + b[0]*a[10] + b[2]*a[14]
	res[11] = b[11]*a[0] - b[8]*a[1] + b[6]*a[2] - b[5]*a[3] + b[15]*a[4] - b[3]*a[5] + b[2]*a[6] - b[14]*a[7] - b[1]*a[8] + b[13]*a[9] - b[12]*a[10] + b[0]*a[11] + b[10]*a[12] - b[9]*a[13] + b[7]*a[14] - b[4]*a[15]
	res[12] = b[12]*a[0] - b[9]*a[1] - b[7]*a[2] + b[15]*a[3] + b[5]*a[4] + b[4]*a[5] - b[14]*a[6] - b[2]*a[7] - b[13]*a[8] - b[1]*a[9] + b[11]*a[10] - b[10]*a[11] + b[0]*a[12] + b[8]*a[13] + b[6]*a[14] - b[3]*a[15]
	res[13] = b[13]*a[0] - b[10]*a[1] + b[15]*a[2] + b[7]*a[3] - b[6]*a[4] - b[14]*a[5] - b[4]*a[6] + b[3]*a[7] + b[12]*a[8] - b[11]*a[9] - b[1]*a[10] + b[9]*a[11] - b[8]*a[12] + b[0]*a[13] + b[5]*a[14] - b[2]*a[15]
	res[14] = b[14]*a[0] + b[10]*a[2] + b[9]*a[3] + b[8]*a[4] + b[4]*a[8] + b[3]*a[9] + b[2]*a[10] + b[0]*a[14]
	res[15] = b[15]*a[0] + b[14]*a[1] + b[13]*a[2] + b[12]*a[3] + b[11]*a[4] + b[10]*a[5] + b[9]*a[6] + b[8]*a[7] + b[7]*a[8] + b[6]*a[9] + b[5]*a[10] - b[4]*a[11] - b[3]*a[12] - b[2]*a[13] - b[1]*a[14] + b[0]*a[15]
	return res
}

// Wedge computes the outer product a∧b.
func (a Multivector) Wedge(b Multivector) Multivector {
	var res Multivector
	res[0] = b[0] * a[0]
	res[1] = b[1]*a[0] + b[0]*a[1]
	res[2] = b[2]*a[0] + b[0]*a[2]
	res[3] = b[3]*a[0] + b[0]*a[3]
	res[4] = b[4]*a[0] + b[0]*a[4]
	res[5] = b[5]*a[0] + b[2]*a[1] - b[1]*a[2] + b[0]*a[5]
	res[6] = b[6]*a[0] + b[3]*a[1] - b[1]*a[3] + b[0]*a[6]
	res[7] = b[7]*a[0] + b[4]*a[1] - b[1]*a[4] + b[0]*a[7]
	res[8] = b[8]*a[0] + b[3]*a[2] - b[2]*a[3] + b[0]*a[8]
	res[9] = b[9]*a[0] - b[4]*a[2] + b[2]*a[4] + b[0]*a[9]
	res[10] = b[10]*a[0] + b[4]*a[3] - b[3]*a[4] + b[0]*a[10]
	res[11] = b[11]*a[0] - b[8]*a[1] + b[6]*a[2] - b[5]*a[3] - b[3]*a[5] + b[2]*a[6] - b[1]*a[8] + b[0]*a[11]
	res[12] = b[12]*a[0] - b[9]*a[1] - b[7]*a[2] + b[5]*a[4] + b[4]*a[5] - b[2]*a[7] - b[1]*a[9] + b[0]*a[12]
	res[13] = b[13]*a[0] - b[10]*a[1] + b[7]*a[3] - b[6]*a[4] - b[4]*a[6] + b[3]*a[7] - b[1]*a[10] + b[0]*a[13]
	res[14] = b[14]*a[0] + b[10]*a[2] + b[9]*a[3] + b[8]*a[4] + b[4]*a[8] + b[3]*a[9] + b[2]*a[10] + b[0]*a[14]
	res[15] = b[15]*a[0] + b[14]*a[1] + b[13]*a[2] + b[12]*a[3] + b[11]*a[4] + b[10]*a[5] + b[9]*a[6] + b[8]*a[7] + b[7]*a[8] + b[6]*a[9] + b[5]*a[10] - b[4]*a[11] - b[3]*a[12] - b[2]*a[13] - b[1]*a[14] + b[0]*a[15]
	return res
}

// Regressive computes the regressive product a∨b, the join of a and b.
func (a Multivector) Regressive(b Multivector) Multivector {
	var res Multivector
	res[15] = a[15] * b[15]
	res[14] = a[14]*b[15] + a[15]*b[14]
	res[13] = a[13]*b[15] + a[15]*b[13]
	res[12] = a[12]*b[15] + a[15]*b[12]
	res[11] = a[11]*b[15] + a[15]*b[11]
	res[10] = a[10]*b[15] + a[13]*b[14] - a[14]*b[13] + a[15]*b[10]
	res[9] = a[9]*b[15] + a[12]*b[14] - a[14]*b[12] + a[15]*b[9]
	res[8] = a[8]*b[15] + a[11]*b[14] - a[14]*b[11] + a[15]*b[8]
	res[7] = a[7]*b[15] + a[12]*b[13] - a[13]*b[12] + a[15]*b[7]
	res[6] = a[6]*b[15] - a[11]*b[13] + a[13]*b[11] + a[15]*b[6]
	res[5] = a[5]*b[15] + a[11]*b[12] - a[12]*b[11] + a[15]*b[5]
	res[4] = a[4]*b[15] + a[7]*b[14] - a[9]*b[13] + a[10]*b[12] + a[12]*b[10] - a[13]*b[9] + a[14]*b[7] + a[15]*b[4]
	res[3] = a[3]*b[15] + a[6]*b[14] + a[8]*b[13] - a[10]*b[11] - a[11]*b[10] + a[13]*b[8] + a[14]*b[6] + a[15]*b[3]
	res[2] = a[2]*b[15] + a[5]*b[14] - a[8]*b[12] + a[9]*b[11] + a[11]*b[9] - a[12]*b[8] + a[14]*b[5] + a[15]*b[2]
	res[1] = a[1]*b[15] - a[5]*b[13] - a[6]*b[12] - a[7]*b[11] - a[11]*b[7] - a[12]*b[6] - a[13]*b[5] + a[15]*b[1]
	res[0] = a[0]*b[15] - a[1]*b[14] - a[2]*b[13] - a[3]*b[12] - a[4]*b[11] + a[5]*b[10] + a[6]*b[9] + a[7]*b[8] + a[8]*b[7] + a[9]*b[6] + a[10]*b[5] + a[11]*b[4] + a[12]*b[3] + a[13]*b[2] + a[14]*b[1] + a[15]*b[0]
	return res
}

// Dot computes the inner product a·b (left contraction flavor used across
// this package).
func (a Multivector) Dot(b Multivector) Multivector {
	var res Multivector
	res[0] = b[0]*a[0] + b[2]*a[2] + b[3]*a[3] + b[4]*a[4] - b[8]*a[8] - b[9]*a[9] - b[10]*a[10] - b[14]*a[14]
	res[1] = b[1]*a[0] + b[0]*a[1] - b[5]*a[2] - b[6]*a[3] - b[7]*a[4] + b[2]*a[5] + b[3]*a[6] + b[4]*a[7] + b[11]*a[8] + b[12]*a[9] + b[13]*a[10] + b[8]*a[11] + b[9]*a[12] + b[10]*a[13] + b[15]*a[14] - b[14]*a[15]
	res[2] = b[2]*a[0] + b[0]*a[2] - b[8]*a[3] + b[9]*a[4] + b[3]*a[8] - b[4]*a[9] - b[14]*a[10] - b[10]*a[14]
	res[3] = b[3]*a[0] + b[8]*a[2] + b[0]*a[3] - b[10]*a[4] - b[2]*a[8] - b[14]*a[9] + b[4]*a[10] - b[9]*a[14]
	res[4] = b[4]*a[0] - b[9]*a[2] + b[10]*a[3] + b[0]*a[4] - b[14]*a[8] + b[2]*a[9] - b[3]*a[10] - b[8]*a[14]
	res[5] = b[5]*a[0] - b[11]*a[3] + b[12]*a[4] + b[0]*a[5] - b[15]*a[10] - b[3]*a[11] + b[4]*a[12] - b[10]*a[15]
	res[6] = b[6]*a[0] + b[11]*a[2] - b[13]*a[4] + b[0]*a[6] - b[15]*a[9] + b[2]*a[11] - b[4]*a[13] - b[9]*a[15]
	res[7] = b[7]*a[0] - b[12]*a[2] + b[13]*a[3] + b[0]*a[7] - b[15]*a[8] - b[2]*a[12] + b[3]*a[13] - b[8]*a[15]
	res[8] = b[8]*a[0] + b[14]*a[4] + b[0]*a[8] + b[4]*a[14]
	res[9] = b[9]*a[0] + b[14]*a[3] + b[0]*a[9] + b[3]*a[14]
	res[10] = b[10]*a[0] + b[14]*a[2] + b[0]*a[10] + b[2]*a[14]
	res[11] = b[11]*a[0] + b[15]*a[4] + b[0]*a[11] - b[4]*a[15]
	res[12] = b[12]*a[0] + b[15]*a[3] + b[0]*a[12] - b[3]*a[15]
	res[13] = b[13]*a[0] + b[15]*a[2] + b[0]*a[13] - b[2]*a[15]
	res[14] = b[14]*a[0] + b[0]*a[14]
	res[15] = b[15]*a[0] + b[0]*a[15]
	return res
}

// Add returns a + b.
func (a Multivector) Add(b Multivector) Multivector {
	for i := range a {
		a[i] += b[i]
	}
	return a
}

// Sub returns a - b.
func (a Multivector) Sub(b Multivector) Multivector {
	for i := range a {
		a[i] -= b[i]
	}
	return a
}

// Scale returns a scaled by s.
func (a Multivector) Scale(s float64) Multivector {
	for i := range a {
		a[i] *= s
	}
	return a
}

// Neg returns -a.
func (a Multivector) Neg() Multivector {
	return a.Scale(-1.0)
}

// Dual returns the Hodge dual of a, swapping each blade with its
// complement (slot i maps to slot 15-i).
func (a Multivector) Dual() Multivector {
	var res Multivector
	for i := range a {
		res[i] = a[15-i]
	}
	return res
}

// Reverse returns the reverse of a, negating the grade 2 and 3 parts.
func (a Multivector) Reverse() Multivector {
	for i := MvE01; i <= MvE123; i++ {
		a[i] = -a[i]
	}
	return a
}

// Conjugate returns the Clifford conjugate of a, negating the grade 1 and 2
// parts.
func (a Multivector) Conjugate() Multivector {
	for i := MvE0; i <= MvE23; i++ {
		a[i] = -a[i]
	}
	return a
}

// Involute returns the grade involution of a, negating the odd grades.
func (a Multivector) Involute() Multivector {
	for i := MvE0; i <= MvE3; i++ {
		a[i] = -a[i]
	}
	for i := MvE021; i <= MvE123; i++ {
		a[i] = -a[i]
	}
	return a
}

// Grade returns the grade-g part of a. Grades outside [0,4] select nothing.
func (a Multivector) Grade(g int) Multivector {
	var res Multivector
	switch g {
	case 0:
		res[MvS] = a[MvS]
	case 1:
		for i := MvE0; i <= MvE3; i++ {
			res[i] = a[i]
		}
	case 2:
		for i := MvE01; i <= MvE23; i++ {
			res[i] = a[i]
		}
	case 3:
		for i := MvE021; i <= MvE123; i++ {
			res[i] = a[i]
		}
	case 4:
		res[MvE0123] = a[MvE0123]
	}
	return res
}

// NormSquared returns the scalar part of a·rev(a).
func (a Multivector) NormSquared() float64 {
	return a.Mul(a.Reverse())[MvS]
}

// Norm returns the metric norm of a. Purely ideal elements have norm zero;
// see INorm.
func (a Multivector) Norm() float64 {
	return math.Sqrt(a.NormSquared())
}

// INormSquared returns the squared ideal norm of a, the norm of its Hodge
// dual.
func (a Multivector) INormSquared() float64 {
	return a.Dual().NormSquared()
}

// INorm returns the ideal norm of a.
func (a Multivector) INorm() float64 {
	return math.Sqrt(a.INormSquared())
}

// Normalized returns a divided by its norm. An approximately null element
// cannot be normalized this way and returns an error; use the flat types'
// Normalized methods for their vanishing branches.
func (a Multivector) Normalized() (Multivector, error) {
	n := a.Norm()
	if ApproxZero(n) {
		return Multivector{}, errors.New("cannot normalize a null multivector")
	}
	return a.Scale(1.0 / n), nil
}

// ApproxEqual returns true if every coefficient of a and b is within
// Epsilon.
func (a Multivector) ApproxEqual(b Multivector) bool {
	for i := range a {
		if !ApproxEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Multivector embeds the plane into the full algebra.
func (p Plane) Multivector() Multivector {
	var m Multivector
	m[MvE0] = p.E0
	m[MvE1] = p.E1
	m[MvE2] = p.E2
	m[MvE3] = p.E3
	return m
}

// Multivector embeds the line into the full algebra.
func (l Line) Multivector() Multivector {
	var m Multivector
	m[MvE01] = l.E01
	m[MvE02] = l.E02
	m[MvE03] = l.E03
	m[MvE12] = l.E12
	m[MvE31] = l.E31
	m[MvE23] = l.E23
	return m
}

// Multivector embeds the point into the full algebra.
func (p Point) Multivector() Multivector {
	var m Multivector
	m[MvE021] = p.E021
	m[MvE013] = p.E013
	m[MvE032] = p.E032
	m[MvE123] = p.E123
	return m
}

// Multivector embeds the rotor into the full algebra.
func (r Rotor) Multivector() Multivector {
	var m Multivector
	m[MvS] = r.S
	m[MvE12] = r.E12
	m[MvE31] = r.E31
	m[MvE23] = r.E23
	return m
}

// Multivector embeds the motor into the full algebra.
func (m Motor) Multivector() Multivector {
	mv := m.Real.Multivector()
	mv[MvE01] = m.E01
	mv[MvE02] = m.E02
	mv[MvE03] = m.E03
	mv[MvE0123] = m.E0123
	return mv
}

// PlanePart extracts the grade-1 part of m as a Plane.
func (a Multivector) PlanePart() Plane {
	return Plane{E1: a[MvE1], E2: a[MvE2], E3: a[MvE3], E0: a[MvE0]}
}

// LinePart extracts the grade-2 Euclidean and ideal parts of m as a Line.
func (a Multivector) LinePart() Line {
	return Line{
		E23: a[MvE23], E31: a[MvE31], E12: a[MvE12],
		E01: a[MvE01], E02: a[MvE02], E03: a[MvE03],
	}
}

// PointPart extracts the grade-3 part of m as a Point.
func (a Multivector) PointPart() Point {
	return Point{E032: a[MvE032], E013: a[MvE013], E021: a[MvE021], E123: a[MvE123]}
}
