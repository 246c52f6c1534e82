// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

// RewardRatio reduces the emission of an epoch, or a range of epochs, to
// Numerator / Denominator of its base amount.
type RewardRatio struct {
	Numerator   uint64 `json:"numerator"`
	Denominator uint64 `json:"denominator"`
}

// Apply returns floor(amount * Numerator / Denominator).
func (r RewardRatio) Apply(amount uint64) (uint64, error) {
	if r.Denominator == 0 {
		return 0, fmt.Errorf("%w: reward ratio %s", ErrDivideByZero, r)
	}
	scaled, err := safemath.Mul64(amount, r.Numerator)
	if err != nil {
		return 0, fmt.Errorf("applying reward ratio %s to %d: %w", r, amount, err)
	}
	return scaled / r.Denominator, nil
}

func (r RewardRatio) String() string {
	return fmt.Sprintf("%d/%d", r.Numerator, r.Denominator)
}
