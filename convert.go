package angle

import "golang.org/x/exp/constraints"

// Angle is satisfied by anything convertible to an angle of width N: a Deg
// or Rad of the same width, or a bare float, which is interpreted as already
// being in whichever unit the call site asks for. Functions can take an
// Angle[float64] (or float32) parameter to accept all three.
type Angle[N constraints.Float] interface {
	Deg[N] | Rad[N] | float32 | float64
}

// AsDeg converts any angle-like value to degrees. Rad values are converted,
// Deg values pass through, and bare floats are wrapped as-is.
func AsDeg[N constraints.Float, A Angle[N]](a A) Deg[N] {
	switch v := any(a).(type) {
	case Deg[N]:
		return v
	case Rad[N]:
		return v.Deg()
	case float32:
		return Deg[N]{N(v)}
	case float64:
		return Deg[N]{N(v)}
	default:
		panic("invalid angle")
	}
}

// AsRad converts any angle-like value to radians. Deg values are converted,
// Rad values pass through, and bare floats are wrapped as-is.
func AsRad[N constraints.Float, A Angle[N]](a A) Rad[N] {
	switch v := any(a).(type) {
	case Rad[N]:
		return v
	case Deg[N]:
		return v.Rad()
	case float32:
		return Rad[N]{N(v)}
	case float64:
		return Rad[N]{N(v)}
	default:
		panic("invalid angle")
	}
}
