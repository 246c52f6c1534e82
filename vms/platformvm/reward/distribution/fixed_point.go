// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"math"
	"math/big"
	"sync"

	"github.com/shopspring/decimal"
)

// fixedPointPrecision is the number of fractional digits kept by every
// intermediate result of the transcendental curves. Every multiplication is
// truncated to this precision so results don't depend on operation history.
const fixedPointPrecision int32 = 60

// expIntegerBound bounds the integer part of an exponent. e^91 divided by any
// uint64 still exceeds MaxUint64 and e^-91 multiplied by any uint64 is below
// one.
const expIntegerBound = 90

var (
	decimalOne       = decimal.NewFromInt(1)
	decimalMaxUint64 = decimal.NewFromUint64(math.MaxUint64)

	ln2Once sync.Once
	ln2     decimal.Decimal

	eOnce sync.Once
	e     decimal.Decimal
)

func truncate(d decimal.Decimal) decimal.Decimal {
	return d.Truncate(fixedPointPrecision)
}

func div(num, den decimal.Decimal) decimal.Decimal {
	return num.DivRound(den, fixedPointPrecision).Truncate(fixedPointPrecision)
}

// atanh returns the inverse hyperbolic tangent of z for 0 <= z < 1.
func atanh(z decimal.Decimal) decimal.Decimal {
	z2 := truncate(z.Mul(z))
	term := z
	sum := z
	for k := int64(3); ; k += 2 {
		term = truncate(term.Mul(z2))
		if term.IsZero() {
			return sum
		}
		sum = sum.Add(div(term, decimal.NewFromInt(k)))
	}
}

func getLn2() decimal.Decimal {
	ln2Once.Do(func() {
		third := div(decimalOne, decimal.NewFromInt(3))
		ln2 = atanh(third).Mul(decimal.NewFromInt(2))
	})
	return ln2
}

// lnInt returns the natural logarithm of [n] which must be positive.
//
// n = 2^k * r with r in [1, 2), and ln(r) = 2 * atanh((r - 1) / (r + 1)).
func lnInt(n *big.Int) decimal.Decimal {
	k := n.BitLen() - 1
	pow := new(big.Int).Lsh(big.NewInt(1), uint(k))
	r := div(decimal.NewFromBigInt(n, 0), decimal.NewFromBigInt(pow, 0))
	z := div(r.Sub(decimalOne), r.Add(decimalOne))
	lnR := atanh(z).Mul(decimal.NewFromInt(2))
	return getLn2().Mul(decimal.NewFromInt(int64(k))).Add(lnR)
}

// expFraction returns e^f for 0 <= f <= 1 using its Taylor series.
func expFraction(f decimal.Decimal) decimal.Decimal {
	sum := decimalOne
	term := decimalOne
	for k := int64(1); ; k++ {
		term = div(truncate(term.Mul(f)), decimal.NewFromInt(k))
		if term.IsZero() {
			return sum
		}
		sum = sum.Add(term)
	}
}

func getE() decimal.Decimal {
	eOnce.Do(func() {
		e = expFraction(decimalOne)
	})
	return e
}

// expUint returns e^n by repeated squaring.
func expUint(n uint64) decimal.Decimal {
	result := decimalOne
	base := getE()
	for n > 0 {
		if n&1 == 1 {
			result = truncate(result.Mul(base))
		}
		n >>= 1
		if n > 0 {
			base = truncate(base.Mul(base))
		}
	}
	return result
}

type expResult int

const (
	expFinite expResult = iota
	// expTooLarge means the scaled exponential can't fit in a uint64.
	expTooLarge
	// expNegligible means the scaled exponential is below one credit.
	expNegligible
)

// expRat returns e^(num/den) for den > 0.
func expRat(num, den *big.Int) (decimal.Decimal, expResult) {
	// Euclidean division, so rem is in [0, den).
	quo, rem := new(big.Int).DivMod(num, den, new(big.Int))
	switch {
	case quo.Cmp(big.NewInt(expIntegerBound)) > 0:
		return decimal.Decimal{}, expTooLarge
	case quo.Cmp(big.NewInt(-expIntegerBound-1)) < 0:
		return decimal.Decimal{}, expNegligible
	}

	fraction := expFraction(div(decimal.NewFromBigInt(rem, 0), decimal.NewFromBigInt(den, 0)))
	i := quo.Int64()
	if i >= 0 {
		return truncate(fraction.Mul(expUint(uint64(i)))), expFinite
	}
	return div(fraction, expUint(uint64(-i))), expFinite
}

// clampDecimal converts a curve value to an amount.
//
// The max value is applied before the overflow check, negative values emit
// the min value (or nothing), and the floor is clamped to the min value.
func clampDecimal(value decimal.Decimal, minValue, maxValue *uint64) (uint64, error) {
	if maxValue != nil && value.Cmp(decimal.NewFromUint64(*maxValue)) > 0 {
		return *maxValue, nil
	}
	if value.Cmp(decimalMaxUint64) > 0 {
		return 0, ErrOverflow
	}
	if value.IsNegative() {
		if minValue != nil {
			return *minValue, nil
		}
		return 0, nil
	}
	amount := value.Floor().BigInt().Uint64()
	if minValue != nil && amount < *minValue {
		return *minValue, nil
	}
	return amount, nil
}
