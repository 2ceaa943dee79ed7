package pgamath

import (
	"math"

	"github.com/golang/geo/r3"
)

// ScrewAxisKind discriminates the two shapes a rigid motion's axis can
// take. Rotational motions screw about a finite line; pure translations
// have no finite axis and slide along an ideal one.
type ScrewAxisKind int

const (
	ScrewAxisFinite ScrewAxisKind = iota
	ScrewAxisIdeal
)

// ScrewCoordinates are the invariant decomposition of a motor: a rotation
// by Angle about the axis line (Direction, Moment) combined with a
// Translation along it. For an ideal axis Angle and Moment are zero and
// the motion translates by Translation along Direction.
type ScrewCoordinates struct {
	Direction   r3.Vector
	Moment      r3.Vector
	Angle       float64
	Translation float64
	Axis        ScrewAxisKind
}

// NewMotorFromScrew builds the motor performing the screw motion sc. The
// direction must be unit length and the moment orthogonal to it for a
// finite axis.
func NewMotorFromScrew(sc ScrewCoordinates) Motor {
	if sc.Axis == ScrewAxisIdeal {
		return NewMotorFromTranslation(sc.Direction.Mul(sc.Translation))
	}
	c := math.Cos(0.5 * sc.Angle)
	s := math.Sin(0.5 * sc.Angle)
	h := 0.5 * sc.Translation
	dv := sc.Moment.Mul(s).Add(sc.Direction.Mul(h * c))
	return newMotor(
		NewRotor(c, sc.Direction.Mul(s)),
		NewRotor(-h*s, dv),
	)
}

// ScrewCoordinates decomposes a unit motor into its screw invariants.
// Sqrt, exponentials and the interpolators all route through here. The
// inverse of NewMotorFromScrew up to the double cover: a negative scalar
// decodes to an angle beyond a half turn rather than a flipped axis.
func (m Motor) ScrewCoordinates() ScrewCoordinates {
	b := m.Real.Bivector()
	s2 := b.Norm()
	if ApproxZero(s2) {
		t := m.Translation()
		d := t.Norm()
		sc := ScrewCoordinates{Translation: d, Axis: ScrewAxisIdeal}
		if !ApproxZero(d) {
			sc.Direction = t.Mul(1.0 / d)
		}
		return sc
	}
	dir := b.Mul(1.0 / s2)
	angle := 2.0 * math.Atan2(s2, m.Real.S)
	d := -2.0 * m.E0123 / s2
	_, dv := m.Dual()
	mom := dv.Sub(dir.Mul(0.5 * d * m.Real.S)).Mul(1.0 / s2)
	return ScrewCoordinates{
		Direction:   dir,
		Moment:      mom,
		Angle:       angle,
		Translation: d,
		Axis:        ScrewAxisFinite,
	}
}

// MotorExp maps a bivector generator, encoded as a line, to the motor
// that flows along it for unit time. The line need not be normalized: its
// magnitude carries half the angle and its pitch half the translation. An
// ideal line exponentiates to the translation by twice its moment.
func MotorExp(l Line) Motor {
	bd := l.Direction()
	bm := l.Moment()
	u := bd.Norm()
	if ApproxZero(u) {
		return NewMotorFromTranslation(bm.Mul(2.0))
	}
	dir := bd.Mul(1.0 / u)
	v := bd.Dot(bm) / u
	return NewMotorFromScrew(ScrewCoordinates{
		Direction:   dir,
		Moment:      bm.Sub(dir.Mul(v)).Mul(1.0 / u),
		Angle:       2.0 * u,
		Translation: 2.0 * v,
		Axis:        ScrewAxisFinite,
	})
}

// Log returns the bivector generator of a unit motor as a line, the
// inverse of MotorExp on the branch with angle in [0, 2π).
func (m Motor) Log() Line {
	sc := m.ScrewCoordinates()
	if sc.Axis == ScrewAxisIdeal {
		return NewVanishingLine(sc.Direction.Mul(0.5 * sc.Translation))
	}
	bd := sc.Direction.Mul(0.5 * sc.Angle)
	bm := sc.Moment.Mul(0.5 * sc.Angle).Add(sc.Direction.Mul(0.5 * sc.Translation))
	return NewLineFromPlucker(bd, bm)
}

// Pow returns the motor raised to a real power, the motion scaled along
// its own screw axis. Pow(0.5) halves a motion the way Sqrt does, without
// leaving the log branch.
func (m Motor) Pow(t float64) Motor {
	return MotorExp(m.Log().Scale(t))
}
