// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var _ Function = (*InvertedLogarithmic)(nil)

// InvertedLogarithmic emits f(x) = A * ln(N / (M * (x - s + O))) / D + B
// where s is StartMoment or the first step of the distribution. With a
// positive A the emission decreases over time.
type InvertedLogarithmic struct {
	A           int64   `json:"a"`
	D           uint64  `json:"d"`
	M           uint64  `json:"m"`
	N           uint64  `json:"n"`
	O           int64   `json:"o"`
	StartMoment *uint64 `json:"startMoment,omitempty"`
	B           uint64  `json:"b"`
	MinValue    *uint64 `json:"minValue,omitempty"`
	MaxValue    *uint64 `json:"maxValue,omitempty"`
}

func (f *InvertedLogarithmic) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.D == 0 {
		return 0, fmt.Errorf("%w: inverted logarithmic divisor d", ErrDivideByZero)
	}
	if f.N == 0 {
		return 0, fmt.Errorf("%w: logarithm of 0", ErrDomain)
	}
	if f.M == 0 {
		return 0, fmt.Errorf("%w: inverted logarithmic multiplier m", ErrDivideByZero)
	}

	s := distributionStartStep
	if f.StartMoment != nil {
		s = *f.StartMoment
	}
	ln, err := lnArgument(offsetDiff(x, s, f.O), f.M, f.N, x)
	if err != nil {
		return 0, err
	}

	value := div(decimal.NewFromInt(f.A).Mul(ln.Neg()), decimal.NewFromUint64(f.D))
	value = value.Add(decimal.NewFromUint64(f.B))
	return clampDecimal(value, f.MinValue, f.MaxValue)
}

func (f *InvertedLogarithmic) Verify(startMoment uint64) error {
	if err := verifyNonZero("a", f.A); err != nil {
		return err
	}
	if err := verifyRange("a", f.A, MinLogA, MaxLogA); err != nil {
		return err
	}
	if err := verifyRange("b", f.B, 0, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyNonZero("d", f.D); err != nil {
		return err
	}
	if err := verifyNonZero("n", f.N); err != nil {
		return err
	}
	if err := verifyNonZero("m", f.M); err != nil {
		return err
	}
	if err := verifyOptionalMax("start moment", f.StartMoment, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyOffset(f.O); err != nil {
		return err
	}
	if err := verifyOptionalMax("max value", f.MaxValue, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyMinMax(f.MinValue, f.MaxValue); err != nil {
		return err
	}
	if err := verifyLnArgument(startMoment, f.StartMoment, f.O); err != nil {
		return err
	}

	start, err := f.Evaluate(startMoment, startMoment)
	if err != nil {
		return err
	}
	if f.A > 0 {
		return verifyNotPinned(start, f.MinValue, "decreasing")
	}
	return verifyNotPinned(start, f.MaxValue, "increasing")
}

func (f *InvertedLogarithmic) Visit(visitor Visitor) error {
	return visitor.InvertedLogarithmic(f)
}

func (f *InvertedLogarithmic) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "InvertedLogarithmic: f(x) = %d * ln(%d / (%d * (x - s + %d))) / %d + %d", f.A, f.N, f.M, f.O, f.D, f.B)
	writeStart(&sb, "s", f.StartMoment)
	writeBounds(&sb, f.MinValue, f.MaxValue)
	return sb.String()
}
