package pgamath

import "github.com/pkg/errors"

// Reflections of one flat in another, as the sandwich product b a rev(b)
// expanded per type pair. The Fast variants assume nothing about b and are
// exact modulo the positive factor |b|²; the plain variants divide it out.

// FastReflectPointInPlane reflects a point through a plane, modulo |b|².
func FastReflectPointInPlane(a Point, b Plane) Point {
	return Point{
		E032: b.E1*b.E1*a.E032 + 2.0*a.E013*b.E2*b.E1 + 2.0*a.E021*b.E1*b.E3 + 2.0*a.E123*b.E0*b.E1 - a.E032*b.E2*b.E2 - a.E032*b.E3*b.E3,
		E013: a.E013*b.E2*b.E2 + 2.0*a.E032*b.E2*b.E1 + 2.0*a.E021*b.E3*b.E2 + 2.0*a.E123*b.E2*b.E0 - a.E013*b.E3*b.E3 - a.E013*b.E1*b.E1,
		E021: a.E021*b.E3*b.E3 + 2.0*a.E032*b.E1*b.E3 + 2.0*a.E013*b.E2*b.E3 + 2.0*a.E123*b.E3*b.E0 - a.E021*b.E1*b.E1 - a.E021*b.E2*b.E2,
		E123: -a.E123 * (b.E1*b.E1 + b.E2*b.E2 + b.E3*b.E3),
	}
}

// FastReflectPointInLine rotates a point half a turn about a line, modulo
// |b|².
func FastReflectPointInLine(a Point, b Line) Point {
	return Point{
		E032: -a.E032*b.E31*b.E31 - a.E032*b.E12*b.E12 + a.E032*b.E23*b.E23 + 2.0*a.E013*b.E23*b.E31 + 2.0*a.E021*b.E23*b.E12 - 2.0*a.E123*b.E02*b.E12 + 2.0*a.E123*b.E03*b.E31,
		E013: -a.E013*b.E23*b.E23 - a.E013*b.E12*b.E12 + a.E013*b.E31*b.E31 + 2.0*a.E032*b.E23*b.E31 + 2.0*a.E021*b.E12*b.E31 + 2.0*a.E123*b.E12*b.E01 - 2.0*a.E123*b.E23*b.E03,
		E021: -a.E021*b.E23*b.E23 - a.E021*b.E31*b.E31 + a.E021*b.E12*b.E12 + 2.0*a.E032*b.E12*b.E23 + 2.0*a.E013*b.E12*b.E31 - 2.0*a.E123*b.E31*b.E01 + 2.0*a.E123*b.E23*b.E02,
		E123: a.E123 * (b.E23*b.E23 + b.E31*b.E31 + b.E12*b.E12),
	}
}

// FastReflectPointInPoint reflects a point through another point, modulo
// |b|².
func FastReflectPointInPoint(a, b Point) Point {
	return Point{
		E032: a.E032*b.E123*b.E123 - 2.0*a.E123*b.E123*b.E032,
		E013: a.E013*b.E123*b.E123 - 2.0*a.E123*b.E123*b.E013,
		E021: a.E021*b.E123*b.E123 - 2.0*a.E123*b.E123*b.E021,
		E123: -a.E123 * b.E123 * b.E123,
	}
}

// FastReflectLineInPlane reflects a line through a plane, modulo |b|².
func FastReflectLineInPlane(a Line, b Plane) Line {
	return Line{
		E23: -a.E23*b.E2*b.E2 - a.E23*b.E3*b.E3 + a.E23*b.E1*b.E1 + 2.0*a.E12*b.E3*b.E1 + 2.0*a.E31*b.E2*b.E1,
		E31: -a.E31*b.E3*b.E3 - a.E31*b.E1*b.E1 + a.E31*b.E2*b.E2 + 2.0*a.E12*b.E2*b.E3 + 2.0*a.E23*b.E2*b.E1,
		E12: -a.E12*b.E1*b.E1 - a.E12*b.E2*b.E2 + a.E12*b.E3*b.E3 + 2.0*a.E31*b.E2*b.E3 + 2.0*a.E23*b.E3*b.E1,
		E01: -a.E01*b.E1*b.E1 - 2.0*a.E31*b.E3*b.E0 - 2.0*a.E02*b.E2*b.E1 - 2.0*a.E03*b.E3*b.E1 + a.E01*b.E2*b.E2 + a.E01*b.E3*b.E3 + 2.0*a.E12*b.E2*b.E0,
		E02: -a.E02*b.E2*b.E2 - 2.0*a.E12*b.E0*b.E1 - 2.0*a.E01*b.E2*b.E1 - 2.0*a.E03*b.E2*b.E3 + a.E02*b.E3*b.E3 + a.E02*b.E1*b.E1 + 2.0*a.E23*b.E3*b.E0,
		E03: -a.E03*b.E3*b.E3 - 2.0*a.E23*b.E2*b.E0 - 2.0*a.E01*b.E3*b.E1 - 2.0*a.E02*b.E2*b.E3 + a.E03*b.E1*b.E1 + a.E03*b.E2*b.E2 + 2.0*a.E31*b.E0*b.E1,
	}
}

// FastReflectLineInLine rotates a line half a turn about another line,
// modulo |b|².
func FastReflectLineInLine(a, b Line) Line {
	return Line{
		E23: -a.E23*b.E31*b.E31 - a.E23*b.E12*b.E12 + a.E23*b.E23*b.E23 + 2.0*a.E12*b.E12*b.E23 + 2.0*a.E31*b.E31*b.E23,
		E31: -a.E31*b.E23*b.E23 - a.E31*b.E12*b.E12 + a.E31*b.E31*b.E31 + 2.0*a.E23*b.E31*b.E23 + 2.0*a.E12*b.E31*b.E12,
		E12: -a.E12*b.E23*b.E23 - a.E12*b.E31*b.E31 + a.E12*b.E12*b.E12 + 2.0*a.E31*b.E31*b.E12 + 2.0*a.E23*b.E12*b.E23,
		E01: -b.E31*b.E31*a.E01 - b.E12*b.E12*a.E01 + a.E01*b.E23*b.E23 + 2.0*a.E23*b.E01*b.E23 + 2.0*a.E31*b.E01*b.E31 + 2.0*a.E12*b.E01*b.E12 + 2.0*a.E31*b.E02*b.E23 - 2.0*a.E23*b.E02*b.E31 + 2.0*a.E12*b.E03*b.E23 - 2.0*a.E23*b.E03*b.E12 + 2.0*a.E02*b.E31*b.E23 + 2.0*a.E03*b.E12*b.E23,
		E02: -a.E02*b.E23*b.E23 - a.E02*b.E12*b.E12 + a.E02*b.E31*b.E31 + 2.0*a.E23*b.E01*b.E31 - 2.0*a.E31*b.E01*b.E23 + 2.0*a.E31*b.E02*b.E31 + 2.0*a.E12*b.E02*b.E12 + 2.0*a.E23*b.E02*b.E23 - 2.0*a.E31*b.E03*b.E12 + 2.0*a.E12*b.E03*b.E31 + 2.0*a.E01*b.E31*b.E23 + 2.0*a.E03*b.E31*b.E12,
		E03: -a.E03*b.E23*b.E23 - a.E03*b.E31*b.E31 + a.E03*b.E12*b.E12 - 2.0*a.E12*b.E01*b.E23 + 2.0*a.E23*b.E01*b.E12 - 2.0*a.E12*b.E02*b.E31 + 2.0*a.E31*b.E02*b.E12 + 2.0*a.E23*b.E03*b.E23 + 2.0*a.E31*b.E03*b.E31 + 2.0*a.E12*b.E03*b.E12 + 2.0*a.E01*b.E12*b.E23 + 2.0*a.E02*b.E31*b.E12,
	}
}

// FastReflectLineInPoint reflects a line through a point, modulo |b|².
func FastReflectLineInPoint(a Line, b Point) Line {
	return Line{
		E23: a.E23 * b.E123 * b.E123,
		E31: a.E31 * b.E123 * b.E123,
		E12: a.E12 * b.E123 * b.E123,
		E01: -a.E01*b.E123*b.E123 - 2.0*a.E31*b.E021*b.E123 + 2.0*a.E12*b.E123*b.E013,
		E02: -a.E02*b.E123*b.E123 - 2.0*a.E12*b.E123*b.E032 + 2.0*a.E23*b.E021*b.E123,
		E03: -a.E03*b.E123*b.E123 - 2.0*a.E23*b.E123*b.E013 + 2.0*a.E31*b.E123*b.E032,
	}
}

// FastReflectPlaneInPlane reflects a plane through another plane, modulo
// |b|².
func FastReflectPlaneInPlane(a, b Plane) Plane {
	return Plane{
		E1: a.E1*b.E2*b.E2 + a.E1*b.E3*b.E3 - a.E1*b.E1*b.E1 - 2.0*a.E3*b.E1*b.E3 - 2.0*a.E2*b.E1*b.E2,
		E2: a.E2*b.E1*b.E1 + a.E2*b.E3*b.E3 - a.E2*b.E2*b.E2 - 2.0*a.E3*b.E2*b.E3 - 2.0*a.E1*b.E1*b.E2,
		E3: a.E3*b.E2*b.E2 + a.E3*b.E1*b.E1 - a.E3*b.E3*b.E3 - 2.0*a.E2*b.E2*b.E3 - 2.0*a.E1*b.E1*b.E3,
		E0: a.E0*b.E1*b.E1 + a.E0*b.E2*b.E2 + a.E0*b.E3*b.E3 - 2.0*a.E2*b.E2*b.E0 - 2.0*a.E3*b.E3*b.E0 - 2.0*a.E1*b.E1*b.E0,
	}
}

// FastReflectPlaneInLine rotates a plane half a turn about a line, modulo
// |b|².
func FastReflectPlaneInLine(a Plane, b Line) Plane {
	return Plane{
		E1: a.E1*b.E31*b.E31 - a.E1*b.E12*b.E12 + a.E1*b.E23*b.E23 + 2.0*a.E2*b.E23*b.E31 + 2.0*a.E3*b.E23*b.E12,
		E2: a.E2*b.E23*b.E23 - a.E2*b.E12*b.E12 + a.E2*b.E31*b.E31 + 2.0*a.E3*b.E31*b.E12 + 2.0*a.E1*b.E23*b.E31,
		E3: a.E3*b.E31*b.E31 - a.E3*b.E23*b.E23 + a.E3*b.E12*b.E12 + 2.0*a.E1*b.E23*b.E12 + 2.0*a.E2*b.E31*b.E12,
		E0: 2.0*a.E2*b.E23*b.E03 - 2.0*a.E1*b.E12*b.E02 - 2.0*a.E3*b.E31*b.E01 + a.E0*b.E23*b.E23 + a.E0*b.E31*b.E31 + a.E0*b.E12*b.E12 + 2.0*a.E3*b.E23*b.E02 + 2.0*a.E1*b.E31*b.E03 + 2.0*a.E2*b.E12*b.E01,
	}
}

// FastReflectPlaneInPoint reflects a plane through a point, modulo |b|².
func FastReflectPlaneInPoint(a Plane, b Point) Plane {
	return Plane{
		E1: -a.E1 * b.E123 * b.E123,
		E2: -a.E2 * b.E123 * b.E123,
		E3: -a.E3 * b.E123 * b.E123,
		E0: a.E0*b.E123*b.E123 + 2.0*a.E1*b.E123*b.E032 + 2.0*a.E2*b.E123*b.E013 + 2.0*a.E3*b.E123*b.E021,
	}
}

func errReflectVanishing() error {
	return errors.New("cannot reflect in a vanishing element")
}

// ReflectPointInPlane divides the fast reflection by |b|²; b must not be
// vanishing. The same applies to all Reflect variants below.
func ReflectPointInPlane(a Point, b Plane) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errReflectVanishing()
	}
	return FastReflectPointInPlane(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectPointInLine rotates a point half a turn about a line.
func ReflectPointInLine(a Point, b Line) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errReflectVanishing()
	}
	return FastReflectPointInLine(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectPointInPoint reflects a point through another point.
func ReflectPointInPoint(a, b Point) (Point, error) {
	if b.IsVanishing() {
		return Point{}, errReflectVanishing()
	}
	return FastReflectPointInPoint(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectLineInPlane reflects a line through a plane.
func ReflectLineInPlane(a Line, b Plane) (Line, error) {
	if b.IsVanishing() {
		return Line{}, errReflectVanishing()
	}
	return FastReflectLineInPlane(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectLineInLine rotates a line half a turn about another line.
func ReflectLineInLine(a, b Line) (Line, error) {
	if b.IsVanishing() {
		return Line{}, errReflectVanishing()
	}
	return FastReflectLineInLine(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectLineInPoint reflects a line through a point.
func ReflectLineInPoint(a Line, b Point) (Line, error) {
	if b.IsVanishing() {
		return Line{}, errReflectVanishing()
	}
	return FastReflectLineInPoint(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectPlaneInPlane reflects a plane through another plane.
func ReflectPlaneInPlane(a, b Plane) (Plane, error) {
	if b.IsVanishing() {
		return Plane{}, errReflectVanishing()
	}
	return FastReflectPlaneInPlane(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectPlaneInLine rotates a plane half a turn about a line.
func ReflectPlaneInLine(a Plane, b Line) (Plane, error) {
	if b.IsVanishing() {
		return Plane{}, errReflectVanishing()
	}
	return FastReflectPlaneInLine(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}

// ReflectPlaneInPoint reflects a plane through a point.
func ReflectPlaneInPoint(a Plane, b Point) (Plane, error) {
	if b.IsVanishing() {
		return Plane{}, errReflectVanishing()
	}
	return FastReflectPlaneInPoint(a, b).Scale(1.0 / b.MagnitudeSquared()), nil
}
