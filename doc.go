// Package angle provides typed wrappers for working with planar angles in
// both degrees and radians, so that code taking an angle can't silently be
// handed the wrong unit.
//
// Functions can take an Angle[float64] (or Angle[float32]) parameter to
// accept a Deg, a Rad, or a bare float, which is interpreted as the unit the
// function converts it to:
//
//	func addPi[A angle.Angle[float64]](a A) float64 {
//		return angle.AsRad[float64](a).Value() + math.Pi
//	}
//
//	addPi(math.Pi)                // 2π; bare floats are taken as radians here
//	addPi(angle.MakeDeg(180.0))   // 2π
package angle
