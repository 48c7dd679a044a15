package angle

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Deg is an angle measured in degrees, where 360 degrees is one full turn.
// The value is never normalized; negative angles and angles beyond a full
// turn are kept as given.
type Deg[N constraints.Float] struct {
	v N
}

// MakeDeg returns a new Deg wrapping the given number of degrees.
func MakeDeg[N constraints.Float](v N) Deg[N] {
	return Deg[N]{v}
}

// Value returns the underlying number of degrees.
func (d Deg[N]) Value() N {
	return d.v
}

// Rad returns the same angle measured in radians.
func (d Deg[N]) Rad() Rad[N] {
	return Rad[N]{d.v * (N(math.Pi) / 180)}
}

// ApproxEq returns true if the two angles are within machine epsilon of each
// other. The bound is absolute rather than relative, so it is only reliable
// for angles of moderate magnitude. NaN is never equal to anything.
func (d Deg[N]) ApproxEq(o Deg[N]) bool {
	return approxEq(d.v, o.v)
}

func (d Deg[N]) String() string {
	return fmt.Sprintf("(%v)", d.v)
}
