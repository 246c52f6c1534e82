// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"
	"strings"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

var _ Function = (*StepDecreasingAmount)(nil)

// StepDecreasingAmount emits DistributionStartAmount and reduces it by
// DecreasePerIntervalNumerator / DecreasePerIntervalDenominator every
// StepCount steps. Once more than MaxIntervalCount reductions would have been
// applied, TrailingDistributionIntervalAmount is emitted instead.
//
// Bitcoin style halving is {StepCount: 210_000, 1, 2}.
type StepDecreasingAmount struct {
	StepCount                          uint32  `json:"stepCount"`
	DecreasePerIntervalNumerator       uint16  `json:"decreasePerIntervalNumerator"`
	DecreasePerIntervalDenominator     uint16  `json:"decreasePerIntervalDenominator"`
	StartDecreasingOffset              *uint64 `json:"startDecreasingOffset,omitempty"`
	MaxIntervalCount                   *uint16 `json:"maxIntervalCount,omitempty"`
	DistributionStartAmount            uint64  `json:"distributionStartAmount"`
	TrailingDistributionIntervalAmount uint64  `json:"trailingDistributionIntervalAmount"`
	MinValue                           *uint64 `json:"minValue,omitempty"`
}

func (f *StepDecreasingAmount) maxIntervalCount() uint64 {
	if f.MaxIntervalCount == nil {
		return uint64(DefaultStepDecreasingMaxIntervalCount)
	}
	return uint64(*f.MaxIntervalCount)
}

func (f *StepDecreasingAmount) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.DecreasePerIntervalDenominator == 0 {
		return 0, fmt.Errorf("%w: step decreasing denominator", ErrDivideByZero)
	}
	if f.StepCount == 0 {
		return 0, fmt.Errorf("%w: step decreasing step count", ErrDivideByZero)
	}
	if f.DecreasePerIntervalNumerator > f.DecreasePerIntervalDenominator {
		return 0, fmt.Errorf("%w: step decreasing numerator %d exceeds denominator %d",
			ErrDomain, f.DecreasePerIntervalNumerator, f.DecreasePerIntervalDenominator)
	}

	start := distributionStartStep
	if f.StartDecreasingOffset != nil {
		start = *f.StartDecreasingOffset
	}
	if x < start {
		return f.DistributionStartAmount, nil
	}

	intervals := (x - start) / uint64(f.StepCount)
	if intervals > f.maxIntervalCount() {
		return f.TrailingDistributionIntervalAmount, nil
	}

	var (
		denominator = uint64(f.DecreasePerIntervalDenominator)
		keep        = denominator - uint64(f.DecreasePerIntervalNumerator)
		amount      = f.DistributionStartAmount
		minValue    uint64
	)
	if f.MinValue != nil {
		minValue = *f.MinValue
	}
	for i := uint64(0); i < intervals && amount > minValue; i++ {
		reduced, err := safemath.MulDiv64(amount, keep, denominator)
		if err != nil {
			return 0, err
		}
		amount = reduced
	}
	return safemath.Max(amount, minValue), nil
}

func (f *StepDecreasingAmount) Verify(uint64) error {
	if err := verifyRange("distribution start amount", f.DistributionStartAmount, 1, MaxDistributionParam); err != nil {
		return err
	}
	if f.TrailingDistributionIntervalAmount > f.DistributionStartAmount {
		return fmt.Errorf("%w: trailing amount %d exceeds start amount %d",
			ErrInvalidParameter, f.TrailingDistributionIntervalAmount, f.DistributionStartAmount)
	}
	if f.MaxIntervalCount != nil {
		err := verifyRange("max interval count", *f.MaxIntervalCount, MinStepDecreasingMaxIntervalCount, MaxStepDecreasingMaxIntervalCount)
		if err != nil {
			return err
		}
	}
	if err := verifyNonZero("step count", f.StepCount); err != nil {
		return err
	}
	if err := verifyNonZero("decrease numerator", f.DecreasePerIntervalNumerator); err != nil {
		return err
	}
	if err := verifyNonZero("decrease denominator", f.DecreasePerIntervalDenominator); err != nil {
		return err
	}
	if f.DecreasePerIntervalNumerator >= f.DecreasePerIntervalDenominator {
		return fmt.Errorf("%w: decrease numerator %d must be less than denominator %d",
			ErrInvalidParameter, f.DecreasePerIntervalNumerator, f.DecreasePerIntervalDenominator)
	}
	if f.MinValue != nil && f.DistributionStartAmount < *f.MinValue {
		return fmt.Errorf("%w: start amount %d is below min value %d",
			ErrInvalidParameter, f.DistributionStartAmount, *f.MinValue)
	}
	return verifyOptionalMax("start decreasing offset", f.StartDecreasingOffset, MaxDistributionParam)
}

func (f *StepDecreasingAmount) Visit(visitor Visitor) error {
	return visitor.StepDecreasingAmount(f)
}

func (f *StepDecreasingAmount) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "StepDecreasingAmount: %d tokens, decreasing by %d/%d every %d steps",
		f.DistributionStartAmount,
		f.DecreasePerIntervalNumerator,
		f.DecreasePerIntervalDenominator,
		f.StepCount,
	)
	if f.StartDecreasingOffset != nil {
		fmt.Fprintf(&sb, ", starting at period %d", *f.StartDecreasingOffset)
	}
	fmt.Fprintf(&sb, ", with a maximum of %d intervals", f.maxIntervalCount())
	fmt.Fprintf(&sb, ", trailing distribution amount %d tokens", f.TrailingDistributionIntervalAmount)
	if f.MinValue != nil {
		fmt.Fprintf(&sb, ", minimum emission %d tokens", *f.MinValue)
	}
	return sb.String()
}
