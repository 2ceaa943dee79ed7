package pgamath

// Seplerp interpolates rotation and translation separately: the rotors
// are slerped and the translations lerped, then recombined. The path of
// a tracked point is a straight blend rather than a screw arc.
func Seplerp(a, b Motor, t float64) Motor {
	return NewMotorFromRotorTranslation(
		Slerp(a.Real, b.Real, t),
		LerpVec(a.Translation(), b.Translation(), t),
	)
}

// Sclerp is screw linear interpolation: the relative motion from a to b
// is decomposed into screw coordinates and replayed at fraction t. The
// result follows a constant-pitch helix between the two poses.
func Sclerp(a, b Motor, t float64) Motor {
	sc := a.Reverse().Mul(b).ScrewCoordinates()
	sc.Angle *= t
	sc.Translation *= t
	return a.Mul(NewMotorFromScrew(sc))
}

// LieLerp interpolates through the exponential map, a.Mul(delta.Pow(t))
// for delta the relative motion. It traces the same helix as Sclerp and
// the two agree for unit motors.
func LieLerp(a, b Motor, t float64) Motor {
	return a.Mul(a.Reverse().Mul(b).Pow(t))
}

// KenLerp blends Sclerp and Seplerp by beta, slerping their rotors and
// lerping their translations. beta of zero is pure Sclerp, one is pure
// Seplerp.
func KenLerp(a, b Motor, t, beta float64) Motor {
	sc := Sclerp(a, b, t)
	sep := Seplerp(a, b, t)
	return NewMotorFromRotorTranslation(
		Slerp(sc.Real, sep.Real, beta),
		LerpVec(sc.Translation(), sep.Translation(), beta),
	)
}
