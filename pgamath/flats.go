package pgamath

import "github.com/pkg/errors"

// The functions below are the closed-form expansions of the algebra's
// products over the flat types. They produce the same coefficients as
// embedding both arguments in a Multivector and taking the corresponding
// product, without touching the unused grades.

// Meet returns the intersection line of two planes. Parallel planes meet
// in a vanishing line carrying their common direction.
func Meet(a, b Plane) Line {
	return Line{
		E23: a.E2*b.E3 - a.E3*b.E2,
		E31: a.E3*b.E1 - a.E1*b.E3,
		E12: a.E1*b.E2 - a.E2*b.E1,
		E01: a.E0*b.E1 - a.E1*b.E0,
		E02: a.E0*b.E2 - a.E2*b.E0,
		E03: a.E0*b.E3 - a.E3*b.E0,
	}
}

// Meet3 returns the intersection point of three planes.
func Meet3(a, b, c Plane) Point {
	return MeetLine(c, Meet(a, b))
}

// MeetLine returns the intersection point of a plane and a line. A line
// parallel to the plane meets it in a vanishing point along the line's
// direction.
func MeetLine(p Plane, l Line) Point {
	return Point{
		E032: p.E2*l.E03 - p.E3*l.E02 - p.E0*l.E23,
		E013: p.E3*l.E01 - p.E1*l.E03 - p.E0*l.E31,
		E021: p.E1*l.E02 - p.E2*l.E01 - p.E0*l.E12,
		E123: p.E1*l.E23 + p.E2*l.E31 + p.E3*l.E12,
	}
}

// Join returns the line through two points. Joining a point with a
// direction gives the line through the point along the direction.
func Join(a, b Point) Line {
	return Line{
		E23: a.E032*b.E123 - a.E123*b.E032,
		E31: a.E013*b.E123 - a.E123*b.E013,
		E12: a.E021*b.E123 - a.E123*b.E021,
		E01: a.E021*b.E013 - a.E013*b.E021,
		E02: a.E032*b.E021 - a.E021*b.E032,
		E03: a.E013*b.E032 - a.E032*b.E013,
	}
}

// Join3 returns the plane through three points.
func Join3(a, b, c Point) Plane {
	return JoinLine(Join(a, b), c)
}

// JoinLine returns the plane containing the line and the point.
func JoinLine(l Line, p Point) Plane {
	return Plane{
		E1: l.E01*p.E123 + l.E31*p.E021 - l.E12*p.E013,
		E2: l.E02*p.E123 + l.E12*p.E032 - l.E23*p.E021,
		E3: l.E03*p.E123 + l.E23*p.E013 - l.E31*p.E032,
		E0: -l.E01*p.E032 - l.E02*p.E013 - l.E03*p.E021,
	}
}

// MeetLines returns the pseudoscalar coefficient of the meet of two
// lines. It vanishes exactly when the lines are coplanar and is symmetric
// in its arguments.
func MeetLines(a, b Line) float64 {
	return a.E23*b.E01 + a.E31*b.E02 + a.E12*b.E03 +
		a.E01*b.E23 + a.E02*b.E31 + a.E03*b.E12
}

// JoinLines returns the scalar coefficient of the join of two lines, the
// same quantity MeetLines computes.
func JoinLines(a, b Line) float64 {
	return MeetLines(a, b)
}

// MeetPlanePoint returns the pseudoscalar coefficient of the meet of a
// plane and a point: the signed distance of the point from the plane
// scaled by both magnitudes. Swapping the arguments negates it.
func MeetPlanePoint(p Plane, x Point) float64 {
	return p.E1*x.E032 + p.E2*x.E013 + p.E3*x.E021 + p.E0*x.E123
}

// JoinPointPlane returns the scalar coefficient of the join of a point
// and a plane, equal to MeetPlanePoint of the same pair.
func JoinPointPlane(x Point, p Plane) float64 {
	return MeetPlanePoint(p, x)
}

// InnerPlanes returns the scalar inner product of two planes. For unit
// planes this is the cosine of their dihedral angle.
func InnerPlanes(a, b Plane) float64 {
	return a.E1*b.E1 + a.E2*b.E2 + a.E3*b.E3
}

// InnerLines returns the scalar inner product of two lines. For unit lines
// this is minus the cosine of the angle between their directions.
func InnerLines(a, b Line) float64 {
	return -(a.E23*b.E23 + a.E31*b.E31 + a.E12*b.E12)
}

// InnerPoints returns the scalar inner product of two points, minus the
// product of their weights.
func InnerPoints(a, b Point) float64 {
	return -a.E123 * b.E123
}

// InnerPlaneLine contracts a line onto a plane, yielding the plane through
// the line orthogonal to the argument plane. The product is antisymmetric:
// contracting in the other order negates the result.
func InnerPlaneLine(p Plane, l Line) Plane {
	return Plane{
		E1: p.E3*l.E31 - p.E2*l.E12,
		E2: p.E1*l.E12 - p.E3*l.E23,
		E3: p.E2*l.E23 - p.E1*l.E31,
		E0: -(p.E1*l.E01 + p.E2*l.E02 + p.E3*l.E03),
	}
}

// InnerLinePoint contracts a point onto a line, yielding the plane through
// the point orthogonal to the line.
func InnerLinePoint(l Line, p Point) Plane {
	return Plane{
		E1: -l.E23 * p.E123,
		E2: -l.E31 * p.E123,
		E3: -l.E12 * p.E123,
		E0: l.E23*p.E032 + l.E31*p.E013 + l.E12*p.E021,
	}
}

// InnerPlanePoint contracts a point onto a plane, yielding the line
// through the point orthogonal to the plane.
func InnerPlanePoint(p Plane, x Point) Line {
	return Line{
		E23: p.E1 * x.E123,
		E31: p.E2 * x.E123,
		E12: p.E3 * x.E123,
		E01: p.E3*x.E013 - p.E2*x.E021,
		E02: p.E1*x.E021 - p.E3*x.E032,
		E03: p.E2*x.E032 - p.E1*x.E013,
	}
}

// IsLineOnPlane reports whether every point of the line lies on the plane.
// A contained line meets its plane in the zero point.
func IsLineOnPlane(l Line, p Plane) bool {
	r := MeetLine(p, l)
	return ApproxZero(r.E032) && ApproxZero(r.E013) && ApproxZero(r.E021) && ApproxZero(r.E123)
}

// IsPointOnLine reports whether the point lies on the line. An incident
// pair joins to the zero plane.
func IsPointOnLine(x Point, l Line) bool {
	r := JoinLine(l, x)
	return ApproxZero(r.E1) && ApproxZero(r.E2) && ApproxZero(r.E3) && ApproxZero(r.E0)
}

// IsPointOnPlane reports whether the point lies on the plane. The meet of
// the pair is their signed separation, zero exactly at incidence.
func IsPointOnPlane(x Point, p Plane) bool {
	return ApproxZero(MeetPlanePoint(p, x))
}

// FastProjectPlaneOntoPoint projects a plane onto a point, modulo a
// positive factor: the parallel plane through the point.
func FastProjectPlaneOntoPoint(a Plane, b Point) Plane {
	return InnerLinePoint(InnerPlanePoint(a, b), b)
}

// FastProjectLineOntoPoint projects a line onto a point, modulo a positive
// factor: the parallel line through the point.
func FastProjectLineOntoPoint(a Line, b Point) Line {
	return InnerPlanePoint(InnerLinePoint(a, b), b)
}

// FastProjectPointOntoPlane projects a point onto a plane, modulo a
// positive factor.
func FastProjectPointOntoPlane(a Point, b Plane) Point {
	return MeetLine(b, InnerPlanePoint(b, a))
}

// FastProjectPointOntoLine projects a point onto a line, modulo a positive
// factor.
func FastProjectPointOntoLine(a Point, b Line) Point {
	return MeetLine(InnerLinePoint(b, a), b)
}

// ProjectPlaneOntoPoint returns the plane parallel to a through b. The
// point must not be vanishing.
func ProjectPlaneOntoPoint(a Plane, b Point) (Plane, error) {
	if b.IsVanishing() {
		return Plane{}, errors.New("cannot project onto a vanishing point")
	}
	return FastProjectPlaneOntoPoint(a, b).Scale(-1.0 / b.MagnitudeSquared()), nil
}

// ProjectLineOntoPoint returns the line parallel to a through b. The point
// must not be vanishing.
func ProjectLineOntoPoint(a Line, b Point) (Line, error) {
	if b.IsVanishing() {
		return Line{}, errors.New("cannot project onto a vanishing point")
	}
	return FastProjectLineOntoPoint(a, b).Scale(-1.0 / b.MagnitudeSquared()), nil
}

// ProjectPointOntoPlane returns the closest point of the plane to a. The
// plane must not be vanishing.
func ProjectPointOntoPlane(a Point, b Plane) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errors.New("cannot project onto a vanishing plane")
	}
	return FastProjectPointOntoPlane(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ProjectPointOntoLine returns the closest point of the line to a. The
// line must not be vanishing.
func ProjectPointOntoLine(a Point, b Line) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errors.New("cannot project onto a vanishing line")
	}
	return FastProjectPointOntoLine(a, b).Scale(-1.0 / b.MagnitudeSquared()), nil
}

// FastRejectPlaneFromPoint rejects a plane from a point, modulo a positive
// factor: the vanishing remainder of a after removing its projection onto
// b, so that a projection and a rejection sum back to the argument.
func FastRejectPlaneFromPoint(a Plane, b Point) Plane {
	return a.Scale(b.MagnitudeSquared()).Add(FastProjectPlaneOntoPoint(a, b))
}

// FastRejectLineFromPoint rejects a line from a point, modulo a positive
// factor: the vanishing remainder of a after removing its projection onto
// b.
func FastRejectLineFromPoint(a Line, b Point) Line {
	return a.Scale(b.MagnitudeSquared()).Add(FastProjectLineOntoPoint(a, b))
}

// FastRejectPointFromPlane rejects a point from a plane, modulo a positive
// factor: the vanishing point carrying the offset from the plane to a.
func FastRejectPointFromPlane(a Point, b Plane) Point {
	return a.Scale(b.MagnitudeSquared()).Sub(FastProjectPointOntoPlane(a, b))
}

// FastRejectPointFromLine rejects a point from a line, modulo a positive
// factor: the vanishing point carrying the offset from the line to a.
func FastRejectPointFromLine(a Point, b Line) Point {
	return a.Scale(b.MagnitudeSquared()).Add(FastProjectPointOntoLine(a, b))
}

// RejectPlaneFromPoint returns a minus its projection onto b. The point
// must not be vanishing.
func RejectPlaneFromPoint(a Plane, b Point) (Plane, error) {
	if b.IsVanishing() {
		return Plane{}, errors.New("cannot reject from a vanishing point")
	}
	return FastRejectPlaneFromPoint(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// RejectLineFromPoint returns a minus its projection onto b. The point
// must not be vanishing.
func RejectLineFromPoint(a Line, b Point) (Line, error) {
	if b.IsVanishing() {
		return Line{}, errors.New("cannot reject from a vanishing point")
	}
	return FastRejectLineFromPoint(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// RejectPointFromPlane returns a minus its projection onto b. The plane
// must not be vanishing.
func RejectPointFromPlane(a Point, b Plane) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errors.New("cannot reject from a vanishing plane")
	}
	return FastRejectPointFromPlane(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// RejectPointFromLine returns a minus its projection onto b. The line must
// not be vanishing.
func RejectPointFromLine(a Point, b Line) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errors.New("cannot reject from a vanishing line")
	}
	return FastRejectPointFromLine(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}
