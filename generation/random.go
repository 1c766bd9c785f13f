package generation

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidRange is returned by RandomRange when max is below min
var ErrInvalidRange = errors.New("invalid random range")

// Uniform01 is the single source of entropy for generation.
// Float64 must return a value in [0, 1). *rand.Rand satisfies it.
type Uniform01 interface {
	Float64() float64
}

// UniformFunc adapts a plain function (e.g. the browser's Math.random) to Uniform01
type UniformFunc func() float64

// Float64 implements Uniform01
func (f UniformFunc) Float64() float64 {
	return f()
}

// RandomRange returns min + floor((max-min) * U) with U drawn fresh from src.
// The result is min when min == max and lies in [min, max) otherwise.
// An inverted range returns 0 together with ErrInvalidRange.
func RandomRange(src Uniform01, min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: max %d < min %d", ErrInvalidRange, max, min)
	}

	delta := float64(max - min)
	return min + int(math.Floor(delta*src.Float64())), nil
}
