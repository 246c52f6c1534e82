// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import "math/big"

var bigOne = big.NewInt(1)

// rootInt returns floor(x^(1/n)) for x >= 0 and n >= 1.
func rootInt(x *big.Int, n uint64) *big.Int {
	if x.Sign() == 0 || n == 1 {
		return new(big.Int).Set(x)
	}
	bitLen := uint64(x.BitLen())
	if n >= bitLen {
		// x < 2^n so the root is in [1, 2).
		return big.NewInt(1)
	}

	// Newton's method from an overestimate decreases monotonically to the
	// floor of the root.
	bigN := new(big.Int).SetUint64(n)
	nMinusOne := new(big.Int).SetUint64(n - 1)
	r := new(big.Int).Lsh(bigOne, uint((bitLen+n-1)/n))
	for {
		// y = ((n - 1) * r + x / r^(n - 1)) / n
		pow := new(big.Int).Exp(r, nMinusOne, nil)
		y := new(big.Int).Quo(x, pow)
		y.Add(y, new(big.Int).Mul(nMinusOne, r))
		y.Quo(y, bigN)
		if y.Cmp(r) >= 0 {
			return r
		}
		r = y
	}
}

// offsetDiff returns x - s + o.
func offsetDiff(x, s uint64, o int64) *big.Int {
	diff := new(big.Int).SetUint64(x)
	diff.Sub(diff, new(big.Int).SetUint64(s))
	return diff.Add(diff, big.NewInt(o))
}

// clampInt converts an integer curve value to an amount.
//
// Negative values emit nothing before the min value is applied. Values that
// can't be represented emit the max value if one is set.
func clampInt(value *big.Int, minValue, maxValue *uint64) (uint64, error) {
	var amount uint64
	switch {
	case value.Sign() < 0:
		amount = 0
	case value.IsUint64():
		amount = value.Uint64()
	case maxValue != nil:
		return *maxValue, nil
	default:
		return 0, ErrOverflow
	}
	if minValue != nil && amount < *minValue {
		return *minValue, nil
	}
	if maxValue != nil && amount > *maxValue {
		return *maxValue, nil
	}
	return amount, nil
}
