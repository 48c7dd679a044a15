package angle

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Rad is an angle measured in radians, where 2π radians is one full turn.
// Like Deg, the value is never normalized.
type Rad[N constraints.Float] struct {
	v N
}

// MakeRad returns a new Rad wrapping the given number of radians.
func MakeRad[N constraints.Float](v N) Rad[N] {
	return Rad[N]{v}
}

// Value returns the underlying number of radians.
func (r Rad[N]) Value() N {
	return r.v
}

// Deg returns the same angle measured in degrees.
func (r Rad[N]) Deg() Deg[N] {
	return Deg[N]{r.v * (180 / N(math.Pi))}
}

// ApproxEq returns true if the two angles are within machine epsilon of each
// other. See Deg.ApproxEq for the caveats.
func (r Rad[N]) ApproxEq(o Rad[N]) bool {
	return approxEq(r.v, o.v)
}

func (r Rad[N]) String() string {
	return fmt.Sprintf("(%v)", r.v)
}
