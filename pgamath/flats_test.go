package pgamath

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestPlaneLineMeet(t *testing.T) {
	p := NewPlane(r3.Vector{X: -1, Y: 6, Z: 2}, -4)
	vp := NewVanishingPlane(-4)
	l := NewLine(r3.Vector{X: 7, Y: -4, Z: 1}, r3.Vector{X: 1, Y: 6, Z: -2})
	vl := NewVanishingLine(r3.Vector{X: -4, Y: 3, Z: -1})

	test.That(t, MeetLine(p, l).ApproxEqual(Point{E032: -274, E013: -34, E021: 23, E123: -29}), test.ShouldBeTrue)
	test.That(t, MeetLine(p, vl).ApproxEqual(Point{E032: -12, E013: -9, E021: 21}), test.ShouldBeTrue)
	test.That(t, MeetLine(vp, l).ApproxEqual(Point{E032: -28, E013: 16, E021: -4}), test.ShouldBeTrue)
	test.That(t, MeetLine(vp, vl).ApproxEqual(Point{}), test.ShouldBeTrue)

	// the intersection point lies on both the plane and the line
	x := MeetLine(p, l)
	test.That(t, IsPointOnPlane(x, p), test.ShouldBeTrue)
	test.That(t, IsPointOnLine(x, l), test.ShouldBeTrue)
}

func TestPlaneLineInner(t *testing.T) {
	p := NewPlane(r3.Vector{X: -1, Y: 6, Z: 2}, -4)
	vp := NewVanishingPlane(-4)
	l := NewLine(r3.Vector{X: 7, Y: -4, Z: 1}, r3.Vector{X: 1, Y: 6, Z: -2})
	vl := NewVanishingLine(r3.Vector{X: -4, Y: 3, Z: -1})

	test.That(t, InnerPlaneLine(p, l).ApproxEqual(Plane{E1: -14, E2: -15, E3: 38, E0: 180}), test.ShouldBeTrue)
	test.That(t, InnerPlaneLine(p, vl).ApproxEqual(Plane{E0: -20}), test.ShouldBeTrue)
	test.That(t, InnerPlaneLine(vp, l).ApproxEqual(Plane{}), test.ShouldBeTrue)
	test.That(t, InnerPlaneLine(vp, vl).ApproxEqual(Plane{}), test.ShouldBeTrue)
}

func TestLinePointJoin(t *testing.T) {
	l := NewLine(r3.Vector{X: 7, Y: -4, Z: 1}, r3.Vector{X: 1, Y: 6, Z: -2})
	vl := NewVanishingLine(r3.Vector{X: -4, Y: 3, Z: -1})
	x := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})
	v := NewDirection(r3.Vector{X: -1, Y: 2, Z: 4})

	xl := JoinLine(l, x)
	test.That(t, xl.ApproxEqual(Plane{E1: -3, E2: -6, E3: -3, E0: 33}), test.ShouldBeTrue)
	test.That(t, JoinLine(vl, x).ApproxEqual(Plane{E1: -4, E2: 3, E3: -1, E0: -8}), test.ShouldBeTrue)
	test.That(t, JoinLine(l, v).ApproxEqual(Plane{E1: -18, E2: -29, E3: 10, E0: 212}), test.ShouldBeTrue)
	test.That(t, JoinLine(vl, v).ApproxEqual(Plane{E0: -6}), test.ShouldBeTrue)

	// the joined plane contains both the line and the point
	test.That(t, IsLineOnPlane(l, xl), test.ShouldBeTrue)
	test.That(t, IsPointOnPlane(x, xl), test.ShouldBeTrue)
}

func TestJoinMeetDuality(t *testing.T) {
	p1 := NewPoint(r3.Vector{X: 1, Y: -2, Z: 3})
	p2 := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})
	p3 := NewPoint(r3.Vector{X: -4, Y: 0, Z: 2})

	// lines joined through a shared point stay incident to it, and their
	// scalar meet vanishes because they intersect
	l12 := Join(p1, p2)
	l23 := Join(p2, p3)
	test.That(t, IsPointOnLine(p2, l12), test.ShouldBeTrue)
	test.That(t, IsPointOnLine(p2, l23), test.ShouldBeTrue)
	test.That(t, MeetLines(l12, l23), test.ShouldAlmostEqual, 0)

	// skew lines have a nonzero scalar meet
	skew := NewLine(r3.Vector{Z: 1}, r3.Vector{X: 9, Y: 9})
	test.That(t, ApproxZero(MeetLines(l12, skew)), test.ShouldBeFalse)

	// a contained line meets the plane of the three points degenerately,
	// and a line leaving the plane through p2 meets it back at p2
	pl := Join3(p1, p2, p3)
	test.That(t, IsPointOnPlane(p2, pl), test.ShouldBeTrue)
	test.That(t, IsLineOnPlane(l12, pl), test.ShouldBeTrue)
	out := Join(p2, NewPoint(r3.Vector{X: 3, Y: -1, Z: 7}))
	back := MeetLine(pl, out)
	test.That(t, back.ApproxEqual(p2.Scale(back.Weight())), test.ShouldBeTrue)
	test.That(t, ApproxZero(back.Weight()), test.ShouldBeFalse)
}

func TestLinePointInner(t *testing.T) {
	l := NewLine(r3.Vector{X: 7, Y: -4, Z: 1}, r3.Vector{X: 1, Y: 6, Z: -2})
	vl := NewVanishingLine(r3.Vector{X: -4, Y: 3, Z: -1})
	x := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})
	v := NewDirection(r3.Vector{X: -1, Y: 2, Z: 4})

	test.That(t, InnerLinePoint(l, x).ApproxEqual(Plane{E1: -7, E2: 4, E3: -1, E0: -7}), test.ShouldBeTrue)
	test.That(t, InnerLinePoint(vl, x).ApproxEqual(Plane{}), test.ShouldBeTrue)
	test.That(t, InnerLinePoint(l, v).ApproxEqual(Plane{E0: -11}), test.ShouldBeTrue)
	test.That(t, InnerLinePoint(vl, v).ApproxEqual(Plane{}), test.ShouldBeTrue)
}

func TestPlanePointMeetJoin(t *testing.T) {
	p := NewPlane(r3.Vector{X: -1, Y: 6, Z: 2}, -4)
	vp := NewVanishingPlane(-4)
	x := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})
	v := NewDirection(r3.Vector{X: -1, Y: 2, Z: 4})

	test.That(t, MeetPlanePoint(p, x), test.ShouldAlmostEqual, 30)
	test.That(t, MeetPlanePoint(vp, x), test.ShouldAlmostEqual, 4)
	test.That(t, MeetPlanePoint(p, v), test.ShouldAlmostEqual, 21)
	test.That(t, MeetPlanePoint(vp, v), test.ShouldAlmostEqual, 0)

	test.That(t, JoinPointPlane(x, p), test.ShouldAlmostEqual, 30)
	test.That(t, JoinPointPlane(v, p), test.ShouldAlmostEqual, 21)
}

func TestPlanePointInner(t *testing.T) {
	p := NewPlane(r3.Vector{X: -1, Y: 6, Z: 2}, -4)
	vp := NewVanishingPlane(-4)
	x := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})
	v := NewDirection(r3.Vector{X: -1, Y: 2, Z: 4})

	test.That(t, InnerPlanePoint(p, x).ApproxEqual(Line{E23: -1, E31: 6, E12: 2, E01: 16, E02: -3, E03: 17}), test.ShouldBeTrue)
	test.That(t, InnerPlanePoint(vp, x).ApproxEqual(Line{}), test.ShouldBeTrue)
	test.That(t, InnerPlanePoint(p, v).ApproxEqual(Line{E01: -20, E02: -2, E03: -4}), test.ShouldBeTrue)
	test.That(t, InnerPlanePoint(vp, v).ApproxEqual(Line{}), test.ShouldBeTrue)
}

func TestProjections(t *testing.T) {
	// project a point onto a plane
	x := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})
	onPlane, err := ProjectPointOntoPlane(x, NewPlane(r3.Vector{Z: 1}, 2))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, VecApproxEqual(onPlane.Vec(), r3.Vector{X: 2, Y: 5, Z: 2}), test.ShouldBeTrue)

	// project a point onto a line
	onLine, err := ProjectPointOntoLine(x, LineZ)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, VecApproxEqual(onLine.Vec(), r3.Vector{Z: -1}), test.ShouldBeTrue)

	// the projection is idempotent up to normalization
	again, err := ProjectPointOntoLine(onLine, LineZ)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, VecApproxEqual(again.Vec(), onLine.Vec()), test.ShouldBeTrue)

	// project a plane onto a point: same normal, passing through the point
	p := NewPlane(r3.Vector{X: 1, Y: 2, Z: -2}, 4)
	b := NewPoint(r3.Vector{X: 1, Y: 1, Z: 1})
	pp, err := ProjectPlaneOntoPoint(p, b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, IsPointOnPlane(b, pp), test.ShouldBeTrue)
	test.That(t, VecApproxZero(pp.Normal().Cross(p.Normal())), test.ShouldBeTrue)

	// project a line onto a point: same direction, passing through the point
	l := NewLine(r3.Vector{X: 3, Y: 0, Z: 4}, r3.Vector{X: 2, Y: -1, Z: 0})
	lp, err := ProjectLineOntoPoint(l, b)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, IsPointOnLine(b, lp), test.ShouldBeTrue)
	test.That(t, VecApproxZero(lp.Direction().Cross(l.Direction())), test.ShouldBeTrue)

	// projections onto vanishing carriers are rejected
	_, err = ProjectPointOntoPlane(x, NewVanishingPlane(1))
	test.That(t, err, test.ShouldNotBeNil)
	_, err = ProjectPointOntoLine(x, NewVanishingLine(r3.Vector{X: 1}))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRejections(t *testing.T) {
	p := NewPlane(r3.Vector{Z: 1}, 2)
	x := NewPoint(r3.Vector{X: 2, Y: 5, Z: -1})

	// a plane splits against a point into a parallel plane through the
	// point plus a vanishing remainder
	rp, err := RejectPlaneFromPoint(p, x)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rp.IsVanishing(), test.ShouldBeTrue)
	pp, err := ProjectPlaneOntoPoint(p, x)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pp.Add(rp).ApproxEqual(p), test.ShouldBeTrue)
	// the point sits 3 below the plane z=2
	test.That(t, rp.E0, test.ShouldAlmostEqual, -3)

	// same split for a line against a point
	l := NewLine(r3.Vector{Z: 1}, r3.Vector{X: 1, Y: 1})
	rl, err := RejectLineFromPoint(l, x)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rl.IsVanishing(), test.ShouldBeTrue)
	pl, err := ProjectLineOntoPoint(l, x)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pl.Add(rl).ApproxEqual(l), test.ShouldBeTrue)

	// rejecting a point from a plane leaves the normal offset
	rx, err := RejectPointFromPlane(x, p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rx.IsVanishing(), test.ShouldBeTrue)
	test.That(t, rx.ApproxEqual(NewDirection(r3.Vector{Z: -3})), test.ShouldBeTrue)
	px, err := ProjectPointOntoPlane(x, p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, px.Add(rx).ApproxEqual(x), test.ShouldBeTrue)

	// rejecting a point from a line leaves the perpendicular offset
	rxl, err := RejectPointFromLine(x, LineZ)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rxl.ApproxEqual(NewDirection(r3.Vector{X: 2, Y: 5})), test.ShouldBeTrue)

	_, err = RejectPlaneFromPoint(p, NewDirection(r3.Vector{X: 1}))
	test.That(t, err, test.ShouldNotBeNil)
	_, err = RejectPointFromPlane(x, NewVanishingPlane(1))
	test.That(t, err, test.ShouldNotBeNil)
}
