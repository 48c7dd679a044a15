package angle

import "golang.org/x/exp/constraints"

// Machine epsilon for each supported width: the gap between 1.0 and the
// next representable value.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// Number is any numeric type which can be widened to a float64 for
// comparison with InexactEq.
type Number interface {
	constraints.Integer | constraints.Float
}

// Epsilon returns the machine epsilon for N. The width is probed by
// rounding: adding half of the 32-bit epsilon to 1 is lost at 32 bits but
// not at 64.
func Epsilon[N constraints.Float]() N {
	if N(1)+N(epsilon32)/2 == N(1) {
		return N(epsilon32)
	}
	return N(epsilon64)
}

// InexactEq compares two numbers of any width for approximate equality.
// Both are widened to float64 and compared against the float64 machine
// epsilon, regardless of their own precision. Like ApproxEq, the bound is
// absolute, so this is only useful for values of moderate magnitude.
func InexactEq[A, B Number](a A, b B) bool {
	return approxEq(float64(a), float64(b))
}

func approxEq[N constraints.Float](a, b N) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < Epsilon[N]()
}
