package pgamath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestRotorAxisAngle(t *testing.T) {
	v := r3.Vector{X: 0.3, Y: -1.2, Z: 0.7}
	test.That(t, VecApproxEqual(RotorIdentity.TransformVector(v), v), test.ShouldBeTrue)

	// right-handed rotation about z
	r := NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/3)
	got := r.TransformVector(r3.Vector{X: 1})
	test.That(t, VecApproxEqual(got, r3.Vector{X: 0.5, Y: math.Sqrt(3) / 2}), test.ShouldBeTrue)

	// the basis images agree with the sandwich
	r = NewRotorFromAxisAngle(r3.Vector{X: 2.0 / 3.0, Y: -1.0 / 3.0, Z: 2.0 / 3.0}, 1.1)
	test.That(t, VecApproxEqual(r.XBasis(), r.TransformVector(r3.Vector{X: 1})), test.ShouldBeTrue)
	test.That(t, VecApproxEqual(r.YBasis(), r.TransformVector(r3.Vector{Y: 1})), test.ShouldBeTrue)
	test.That(t, VecApproxEqual(r.ZBasis(), r.TransformVector(r3.Vector{Z: 1})), test.ShouldBeTrue)
}

func TestRotorMul(t *testing.T) {
	a := NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	b := NewRotorFromAxisAngle(r3.Vector{X: 1}, math.Pi/2)

	// the right factor acts first: y goes to z under b, then stays
	got := a.Mul(b).TransformVector(r3.Vector{Y: 1})
	test.That(t, VecApproxEqual(got, r3.Vector{Z: 1}), test.ShouldBeTrue)

	// in the other order y first goes to -x, then to -x still under b
	got = b.Mul(a).TransformVector(r3.Vector{Y: 1})
	test.That(t, VecApproxEqual(got, r3.Vector{X: -1}), test.ShouldBeTrue)

	test.That(t, a.Mul(a.Reverse()).ApproxEqual(RotorIdentity), test.ShouldBeTrue)
}

func TestRotorNormalize(t *testing.T) {
	r := NewRotorFromAxisAngle(r3.Vector{Y: 1}, 0.8).Scale(3.0)
	test.That(t, r.Norm(), test.ShouldAlmostEqual, 3.0)

	n, err := r.Normalized()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, n.NormSquared(), test.ShouldAlmostEqual, 1.0)
	test.That(t, VecApproxEqual(n.XBasis(), NewRotorFromAxisAngle(r3.Vector{Y: 1}, 0.8).XBasis()), test.ShouldBeTrue)

	inv, err := r.Inverse()
	test.That(t, err, test.ShouldBeNil)
	test.That(t, r.Mul(inv).ApproxEqual(RotorIdentity), test.ShouldBeTrue)

	_, err = Rotor{}.Normalized()
	test.That(t, err, test.ShouldNotBeNil)
	_, err = Rotor{}.Inverse()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRotorExpLog(t *testing.T) {
	axis := r3.Vector{X: 1.0 / 3.0, Y: 2.0 / 3.0, Z: 2.0 / 3.0}
	r := NewRotorFromAxisAngle(axis, 1.2)

	l := r.Log()
	test.That(t, l.S, test.ShouldAlmostEqual, 0.0)
	test.That(t, VecApproxEqual(l.Bivector(), axis.Mul(0.6)), test.ShouldBeTrue)
	test.That(t, RotorExp(l).ApproxEqual(r), test.ShouldBeTrue)

	// small angles round-trip through the first-order branch
	small := NewRotorFromAxisAngle(axis, 1e-7)
	test.That(t, RotorExp(small.Log()).ApproxEqual(small), test.ShouldBeTrue)

	test.That(t, r.Pow(0.0).ApproxEqual(RotorIdentity), test.ShouldBeTrue)
	test.That(t, r.Pow(1.0).ApproxEqual(r), test.ShouldBeTrue)
	test.That(t, r.Pow(2.0).ApproxEqual(NewRotorFromAxisAngle(axis, 2.4)), test.ShouldBeTrue)
	test.That(t, r.Pow(0.5).Mul(r.Pow(0.5)).ApproxEqual(r), test.ShouldBeTrue)
}

func TestRotorSlerp(t *testing.T) {
	a := RotorIdentity
	b := NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)

	test.That(t, Slerp(a, b, 0.0).ApproxEqual(a), test.ShouldBeTrue)
	test.That(t, Slerp(a, b, 1.0).ApproxEqual(b), test.ShouldBeTrue)
	test.That(t, Slerp(a, b, 0.5).ApproxEqual(NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/4)), test.ShouldBeTrue)

	// the raw slerp honors the given cover, the shortest variant flips it
	test.That(t, Slerp(a, b.Scale(-1.0), 1.0).ApproxEqual(b.Scale(-1.0)), test.ShouldBeTrue)
	test.That(t, SlerpShortest(a, b.Scale(-1.0), 0.5).ApproxEqual(NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/4)), test.ShouldBeTrue)
}

func TestRotorMat3(t *testing.T) {
	r := NewRotorFromAxisAngle(r3.Vector{Z: 1}, math.Pi/2)
	want := mgl64.Mat3FromCols(
		mgl64.Vec3{0, 1, 0},
		mgl64.Vec3{-1, 0, 0},
		mgl64.Vec3{0, 0, 1},
	)
	test.That(t, r.Mat3().ApproxEqualThreshold(want, Epsilon), test.ShouldBeTrue)
}
