// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var _ Function = (*Exponential)(nil)

// Exponential emits f(x) = A * e^(M * (x - s + O) / N) / D + B where s is
// StartMoment or the first step of the distribution.
type Exponential struct {
	A           uint64  `json:"a"`
	D           uint64  `json:"d"`
	M           int64   `json:"m"`
	N           uint64  `json:"n"`
	O           int64   `json:"o"`
	StartMoment *uint64 `json:"startMoment,omitempty"`
	B           uint64  `json:"b"`
	MinValue    *uint64 `json:"minValue,omitempty"`
	MaxValue    *uint64 `json:"maxValue,omitempty"`
}

func (f *Exponential) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.D == 0 {
		return 0, fmt.Errorf("%w: exponential divisor d", ErrDivideByZero)
	}
	if f.N == 0 {
		return 0, fmt.Errorf("%w: exponential exponent denominator n", ErrDivideByZero)
	}

	s := distributionStartStep
	if f.StartMoment != nil {
		s = *f.StartMoment
	}

	b := decimal.NewFromUint64(f.B)
	if f.A == 0 {
		return clampDecimal(b, f.MinValue, f.MaxValue)
	}

	exponent := offsetDiff(x, s, f.O)
	exponent.Mul(exponent, big.NewInt(f.M))
	exp, result := expRat(exponent, new(big.Int).SetUint64(f.N))
	switch result {
	case expTooLarge:
		if f.MaxValue != nil {
			return *f.MaxValue, nil
		}
		return 0, fmt.Errorf("%w: exponential at step %d", ErrOverflow, x)
	case expNegligible:
		return clampDecimal(b, f.MinValue, f.MaxValue)
	}

	value := div(decimal.NewFromUint64(f.A).Mul(exp), decimal.NewFromUint64(f.D)).Add(b)
	return clampDecimal(value, f.MinValue, f.MaxValue)
}

func (f *Exponential) Verify(startMoment uint64) error {
	if err := verifyNonZero("d", f.D); err != nil {
		return err
	}
	if err := verifyNonZero("n", f.N); err != nil {
		return err
	}
	if err := verifyRange("n", f.N, 1, MaxExponentialN); err != nil {
		return err
	}
	if err := verifyNonZero("m", f.M); err != nil {
		return err
	}
	if err := verifyRange("m", f.M, MinExponentialM, MaxExponentialM); err != nil {
		return err
	}
	if err := verifyRange("a", f.A, 1, MaxExponentialA); err != nil {
		return err
	}
	if f.M > 0 && f.MaxValue == nil {
		return fmt.Errorf("%w: increasing exponential requires a max value", ErrInvalidParameter)
	}
	if err := verifyOptionalMax("start moment", f.StartMoment, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyOffset(f.O); err != nil {
		return err
	}
	if err := verifyRange("b", f.B, 0, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyOptionalMax("max value", f.MaxValue, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyMinMax(f.MinValue, f.MaxValue); err != nil {
		return err
	}

	start, err := f.Evaluate(startMoment, startMoment)
	if err != nil {
		return err
	}
	if f.M > 0 {
		return verifyNotPinned(start, f.MaxValue, "increasing")
	}
	return verifyNotPinned(start, f.MinValue, "decreasing")
}

func (f *Exponential) Visit(visitor Visitor) error {
	return visitor.Exponential(f)
}

func (f *Exponential) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Exponential: f(x) = %d * e^(%d * (x - s + %d) / %d) / %d + %d", f.A, f.M, f.O, f.N, f.D, f.B)
	writeStart(&sb, "s", f.StartMoment)
	writeBounds(&sb, f.MinValue, f.MaxValue)
	return sb.String()
}
