// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import "fmt"

var _ Function = (*Random)(nil)

// Random emits a pseudo random amount in [Min, Max] derived only from the
// step, so every node computes the same amount.
type Random struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

func (f *Random) Evaluate(_ uint64, x uint64) (uint64, error) {
	if f.Min > f.Max {
		return 0, fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidParameter, f.Min, f.Max)
	}

	// SplitMix64 keyed on the step
	z := x + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z ^= z >> 31

	span := f.Max - f.Min + 1
	if span == 0 {
		// [0, MaxUint64]
		return z, nil
	}
	return f.Min + z%span, nil
}

// Verify always fails. Random emission can't be registered yet.
func (*Random) Verify(uint64) error {
	return fmt.Errorf("%w: random distribution", ErrUnsupported)
}

func (f *Random) Visit(visitor Visitor) error {
	return visitor.Random(f)
}

func (f *Random) String() string {
	return fmt.Sprintf("Random: tokens in [%d, %d] per period", f.Min, f.Max)
}
