// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"
	"math/big"
	"strings"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

var _ Function = (*Linear)(nil)

// Linear emits f(x) = A * (x - s) / D + StartingAmount where s is StartStep
// or the first step of the distribution.
type Linear struct {
	A              int64   `json:"a"`
	D              uint64  `json:"d"`
	StartStep      *uint64 `json:"startStep,omitempty"`
	StartingAmount uint64  `json:"startingAmount"`
	MinValue       *uint64 `json:"minValue,omitempty"`
	MaxValue       *uint64 `json:"maxValue,omitempty"`
}

func (f *Linear) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.D == 0 {
		return 0, fmt.Errorf("%w: linear divisor d", ErrDivideByZero)
	}
	s := distributionStartStep
	if f.StartStep != nil {
		s = *f.StartStep
	}

	diff := new(big.Int).SetUint64(safemath.SaturatingSub(x, s))
	value := diff.Mul(diff, big.NewInt(f.A))
	value.Quo(value, new(big.Int).SetUint64(f.D))
	value.Add(value, new(big.Int).SetUint64(f.StartingAmount))
	return clampInt(value, f.MinValue, f.MaxValue)
}

func (f *Linear) Verify(startMoment uint64) error {
	if err := verifyNonZero("d", f.D); err != nil {
		return err
	}
	if err := verifyNonZero("a", f.A); err != nil {
		return err
	}
	if err := verifyRange("a", f.A, MinLinearSlopeA, MaxLinearSlopeA); err != nil {
		return err
	}
	if err := verifyMinMax(f.MinValue, f.MaxValue); err != nil {
		return err
	}
	if err := verifyOptionalMax("start step", f.StartStep, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyOptionalMax("max value", f.MaxValue, MaxDistributionParam); err != nil {
		return err
	}

	start, err := f.Evaluate(startMoment, startMoment)
	if err != nil {
		return err
	}
	if f.A > 0 {
		return verifyNotPinned(start, f.MaxValue, "increasing")
	}
	return verifyNotPinned(start, f.MinValue, "decreasing")
}

func (f *Linear) Visit(visitor Visitor) error {
	return visitor.Linear(f)
}

func (f *Linear) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Linear: f(x) = %d * (x - s) / %d + %d", f.A, f.D, f.StartingAmount)
	writeStart(&sb, "s", f.StartStep)
	writeBounds(&sb, f.MinValue, f.MaxValue)
	return sb.String()
}

func writeStart(sb *strings.Builder, name string, start *uint64) {
	if start != nil {
		fmt.Fprintf(sb, ", %s = %d", name, *start)
	} else {
		fmt.Fprintf(sb, ", %s = distribution start", name)
	}
}

func writeBounds(sb *strings.Builder, minValue, maxValue *uint64) {
	if minValue != nil {
		fmt.Fprintf(sb, ", min %d", *minValue)
	}
	if maxValue != nil {
		fmt.Fprintf(sb, ", max %d", *maxValue)
	}
}
