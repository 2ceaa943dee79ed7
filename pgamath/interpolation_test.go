package pgamath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func interpolationFixtures() (Motor, Motor) {
	a := NewMotorFromAxisAngleTranslation(r3.Vector{Z: 1}, 0.6, r3.Vector{X: 1, Y: -0.5})
	b := NewMotorFromAxisAngleTranslation(r3.Vector{X: 2.0 / 3.0, Y: 1.0 / 3.0, Z: 2.0 / 3.0}, 1.4, r3.Vector{Y: 2, Z: 1})
	return a, b
}

func TestInterpolationEndpoints(t *testing.T) {
	a, b := interpolationFixtures()
	for _, lerp := range []func(Motor, Motor, float64) Motor{
		Seplerp,
		Sclerp,
		LieLerp,
		func(a, b Motor, t float64) Motor { return KenLerp(a, b, t, 0.35) },
	} {
		test.That(t, lerp(a, b, 0.0).ApproxEqual(a), test.ShouldBeTrue)
		test.That(t, lerp(a, b, 1.0).ApproxEqual(b), test.ShouldBeTrue)
	}
}

func TestSclerpMatchesLieLerp(t *testing.T) {
	a, b := interpolationFixtures()
	for _, tt := range []float64{0.25, 0.5, 0.8} {
		test.That(t, Sclerp(a, b, tt).ApproxEqual(LieLerp(a, b, tt)), test.ShouldBeTrue)
	}
}

func TestSclerpHelix(t *testing.T) {
	// halfway along a half turn about the line through (2,0,0) parallel
	// to y, the origin has swung up to (2,0,2)
	b := NewMotorFromAxisAngleTranslation(r3.Vector{Y: 1}, math.Pi, r3.Vector{X: 4})
	mid := Sclerp(MotorIdentity, b, 0.5)
	test.That(t, VecApproxEqual(mid.TransformPoint(r3.Vector{}), r3.Vector{X: 2, Z: 2}), test.ShouldBeTrue)
	test.That(t, mid.ApproxEquivalent(b.Sqrt()), test.ShouldBeTrue)

	// between pure translations every interpolator is a straight lerp
	tr := NewMotorFromTranslation(r3.Vector{X: 3, Z: 4})
	test.That(t, VecApproxEqual(Sclerp(MotorIdentity, tr, 0.4).Translation(), r3.Vector{X: 1.2, Z: 1.6}), test.ShouldBeTrue)
	test.That(t, VecApproxEqual(Seplerp(MotorIdentity, tr, 0.4).Translation(), r3.Vector{X: 1.2, Z: 1.6}), test.ShouldBeTrue)
}

func TestSeplerpSplitsPaths(t *testing.T) {
	// the separable blend moves a tracked point on a chord, not the screw
	// arc: rotation and translation interpolate independently
	b := NewMotorFromAxisAngleTranslation(r3.Vector{Z: 1}, math.Pi/2, r3.Vector{X: 4})
	mid := Seplerp(MotorIdentity, b, 0.5)
	test.That(t, mid.Real.ApproxEqual(NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/4)), test.ShouldBeTrue)
	test.That(t, VecApproxEqual(mid.Translation(), r3.Vector{X: 2}), test.ShouldBeTrue)
}

func TestKenLerpBlend(t *testing.T) {
	a, b := interpolationFixtures()
	for _, tt := range []float64{0.3, 0.7} {
		test.That(t, KenLerp(a, b, tt, 0.0).ApproxEqual(Sclerp(a, b, tt)), test.ShouldBeTrue)
		test.That(t, KenLerp(a, b, tt, 1.0).ApproxEqual(Seplerp(a, b, tt)), test.ShouldBeTrue)

		// intermediate blends sit between the two translations
		kt := KenLerp(a, b, tt, 0.5).Translation()
		st := Sclerp(a, b, tt).Translation()
		pt := Seplerp(a, b, tt).Translation()
		test.That(t, VecApproxEqual(kt, LerpVec(st, pt, 0.5)), test.ShouldBeTrue)
	}
}
