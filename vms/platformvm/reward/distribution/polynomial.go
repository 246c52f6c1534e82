// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"
	"math/big"
	"strings"
)

var _ Function = (*Polynomial)(nil)

// Polynomial emits f(x) = A * floor((x - s + O)^(M/N)) / D + B where s is
// StartMoment or the first step of the distribution.
type Polynomial struct {
	A           int64   `json:"a"`
	D           uint64  `json:"d"`
	M           int64   `json:"m"`
	N           uint64  `json:"n"`
	O           int64   `json:"o"`
	StartMoment *uint64 `json:"startMoment,omitempty"`
	B           uint64  `json:"b"`
	MinValue    *uint64 `json:"minValue,omitempty"`
	MaxValue    *uint64 `json:"maxValue,omitempty"`
}

func (f *Polynomial) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.D == 0 {
		return 0, fmt.Errorf("%w: polynomial divisor d", ErrDivideByZero)
	}
	if f.N == 0 {
		return 0, fmt.Errorf("%w: polynomial exponent denominator n", ErrDivideByZero)
	}
	if f.M < MinPolynomialM || f.M > MaxPolynomialM || f.N > MaxPolynomialN {
		return 0, fmt.Errorf("%w: polynomial exponent %d/%d", ErrInvalidParameter, f.M, f.N)
	}

	s := distributionStartStep
	if f.StartMoment != nil {
		s = *f.StartMoment
	}
	diff := offsetDiff(x, s, f.O)
	if diff.Sign() < 0 {
		return 0, fmt.Errorf("%w: polynomial base %s is negative at step %d", ErrDomain, diff, x)
	}
	if !diff.IsUint64() {
		return 0, fmt.Errorf("%w: polynomial base %s", ErrOverflow, diff)
	}

	var pow *big.Int
	switch {
	case f.M >= 0:
		pow = rootInt(new(big.Int).Exp(diff, big.NewInt(f.M), nil), f.N)
	case diff.Sign() == 0:
		return 0, fmt.Errorf("%w: polynomial with negative exponent at base 0", ErrDomain)
	case diff.Cmp(bigOne) == 0:
		pow = big.NewInt(1)
	default:
		// base > 1 with a negative exponent is in (0, 1)
		pow = new(big.Int)
	}

	value := pow.Mul(pow, big.NewInt(f.A))
	value.Quo(value, new(big.Int).SetUint64(f.D))
	value.Add(value, new(big.Int).SetUint64(f.B))
	return clampInt(value, f.MinValue, f.MaxValue)
}

func (f *Polynomial) Verify(startMoment uint64) error {
	if err := verifyNonZero("d", f.D); err != nil {
		return err
	}
	if err := verifyNonZero("n", f.N); err != nil {
		return err
	}
	if f.M > 0 && uint64(f.M) == f.N {
		return fmt.Errorf("%w: polynomial with exponent 1 should be linear", ErrInvalidParameter)
	}
	if err := verifyNonZero("a", f.A); err != nil {
		return err
	}
	if err := verifyRange("a", f.A, MinLogA, MaxLogA); err != nil {
		return err
	}
	if err := verifyNonZero("m", f.M); err != nil {
		return err
	}
	if err := verifyRange("m", f.M, MinPolynomialM, MaxPolynomialM); err != nil {
		return err
	}
	if err := verifyRange("n", f.N, 1, MaxPolynomialN); err != nil {
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

	start, err := f.Evaluate(startMoment, startMoment)
	if err != nil {
		return err
	}
	switch slope := f.A * f.M; {
	case slope > 0:
		return verifyNotPinned(start, f.MaxValue, "increasing")
	case slope < 0:
		return verifyNotPinned(start, f.MinValue, "decreasing")
	default:
		return nil
	}
}

func (f *Polynomial) Visit(visitor Visitor) error {
	return visitor.Polynomial(f)
}

func (f *Polynomial) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "Polynomial: f(x) = %d * (x - s + %d)^(%d/%d) / %d + %d", f.A, f.O, f.M, f.N, f.D, f.B)
	writeStart(&sb, "s", f.StartMoment)
	writeBounds(&sb, f.MinValue, f.MaxValue)
	return sb.String()
}
