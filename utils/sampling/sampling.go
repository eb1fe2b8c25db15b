// Package sampling implements the deterministic sampling of float64 arguments
// used by the accuracy sweeps.
package sampling

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UniformSampler draws float64 values uniformly in [A, B) from a PRNG,
// consuming 8 bytes (53 random bits) per value.
type UniformSampler struct {
	prng PRNG
	A, B float64
	buff [8]byte
}

// NewUniformSampler returns a new UniformSampler over [a, b).
// Returns an error if the interval is empty or not finite.
func NewUniformSampler(prng PRNG, a, b float64) (*UniformSampler, error) {

	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return nil, fmt.Errorf("cannot NewUniformSampler: interval [%v, %v) is not finite", a, b)
	}

	if !(a < b) {
		return nil, fmt.Errorf("cannot NewUniformSampler: interval [%v, %v) is empty", a, b)
	}

	return &UniformSampler{prng: prng, A: a, B: b}, nil
}

// Float64 returns the next value of the stream.
func (s *UniformSampler) Float64() (y float64) {

	if _, err := s.prng.Read(s.buff[:]); err != nil {
		// Sanity check, this error should not happen.
		panic(err)
	}

	f := float64(binary.LittleEndian.Uint64(s.buff[:])>>11) / (1 << 53)

	if y = s.A + f*(s.B-s.A); y >= s.B {
		y = math.Nextafter(s.B, s.A)
	}

	return
}

// Read returns the next n values of the stream.
func (s *UniformSampler) Read(n int) (values []float64) {
	values = make([]float64, n)
	for i := range values {
		values[i] = s.Float64()
	}
	return
}
