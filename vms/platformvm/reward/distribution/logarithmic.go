// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

var _ Function = (*Logarithmic)(nil)

// Logarithmic emits f(x) = A * ln(M * (x - s + O) / N) / D + B where s is
// StartMoment or the first step of the distribution.
type Logarithmic struct {
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

func (f *Logarithmic) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.D == 0 {
		return 0, fmt.Errorf("%w: logarithmic divisor d", ErrDivideByZero)
	}
	if f.N == 0 {
		return 0, fmt.Errorf("%w: logarithmic denominator n", ErrDivideByZero)
	}
	if f.M == 0 {
		return 0, fmt.Errorf("%w: logarithm of 0", ErrDomain)
	}

	s := distributionStartStep
	if f.StartMoment != nil {
		s = *f.StartMoment
	}
	ln, err := lnArgument(offsetDiff(x, s, f.O), f.M, f.N, x)
	if err != nil {
		return 0, err
	}

	value := div(decimal.NewFromInt(f.A).Mul(ln), decimal.NewFromUint64(f.D))
	value = value.Add(decimal.NewFromUint64(f.B))
	return clampDecimal(value, f.MinValue, f.MaxValue)
}

// lnArgument returns ln(m * diff / n) as ln(m * diff) - ln(n).
func lnArgument(diff *big.Int, m, n, x uint64) (decimal.Decimal, error) {
	if diff.Sign() <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: logarithm argument %s at step %d", ErrDomain, diff, x)
	}
	if !diff.IsUint64() {
		return decimal.Decimal{}, fmt.Errorf("%w: logarithm argument %s", ErrOverflow, diff)
	}
	num := diff.Mul(diff, new(big.Int).SetUint64(m))
	return lnInt(num).Sub(lnInt(new(big.Int).SetUint64(n))), nil
}

func (f *Logarithmic) Verify(startMoment uint64) error {
	if err := verifyNonZero("d", f.D); err != nil {
		return err
	}
	if err := verifyNonZero("n", f.N); err != nil {
		return err
	}
	if err := verifyRange("m", f.M, 1, MaxDistributionParam); err != nil {
		return err
	}
	if err := verifyNonZero("a", f.A); err != nil {
		return err
	}
	if err := verifyRange("a", f.A, MinLogA, MaxLogA); err != nil {
		return err
	}
	if err := verifyRange("b", f.B, 0, MaxDistributionParam); err != nil {
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
	return verifyNotPinned(start, f.MaxValue, "logarithmic")
}

// verifyLnArgument rejects curves whose logarithm is undefined at their first
// step.
func verifyLnArgument(startMoment uint64, s *uint64, o int64) error {
	start := startMoment
	if s != nil {
		start = *s
	}
	if diff := offsetDiff(startMoment, start, o); diff.Sign() <= 0 {
		return fmt.Errorf("%w: logarithm argument %s at start moment %d", ErrInvalidParameter, diff, startMoment)
	}
	return nil
}

func (f *Logarithmic) Visit(visitor Visitor) error {
	return visitor.Logarithmic(f)
}

func (f *Logarithmic) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Logarithmic: f(x) = %d * ln(%d * (x - s + %d) / %d) / %d + %d", f.A, f.M, f.O, f.N, f.D, f.B)
	writeStart(&sb, "s", f.StartMoment)
	writeBounds(&sb, f.MinValue, f.MaxValue)
	return sb.String()
}
