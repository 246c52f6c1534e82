// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

const (
	// MaxDistributionParam bounds amounts, offsets and start moments (2^48 - 1).
	MaxDistributionParam uint64 = 281_474_976_710_655

	// MaxDistributionCyclesParam bounds step counts (2^15 - 1).
	MaxDistributionCyclesParam uint64 = 32_767

	// DefaultStepDecreasingMaxIntervalCount is the number of decreasing
	// intervals before the trailing amount is emitted when none is configured.
	DefaultStepDecreasingMaxIntervalCount uint16 = 128

	MinStepDecreasingMaxIntervalCount uint16 = 2
	MaxStepDecreasingMaxIntervalCount uint16 = 1024

	MaxLinearSlopeA int64 = 256
	MinLinearSlopeA int64 = -255

	MinPolynomialM int64  = -8
	MaxPolynomialM int64  = 8
	MaxPolynomialN uint64 = 32

	MinLogA int64 = -32_766
	MaxLogA int64 = 32_767

	MaxExponentialA uint64 = 256
	MinExponentialM int64  = -8
	MaxExponentialM int64  = 8
	MaxExponentialN uint64 = 32
)
