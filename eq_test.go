package angle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpsilon(t *testing.T) {
	assert.Equal(t, float32(epsilon32), Epsilon[float32]())
	assert.Equal(t, float64(epsilon64), Epsilon[float64]())
}

func TestInexactEq(t *testing.T) {
	assert.True(t, InexactEq(45.0, 45.0))
	assert.True(t, InexactEq(45, 45.0))
	assert.True(t, InexactEq(float32(1.5), 1.5))
	assert.False(t, InexactEq(1.0, 1.0000000001))
	assert.False(t, InexactEq(math.NaN(), math.NaN()))
	assert.False(t, InexactEq(math.Inf(1), math.Inf(1)))
}
