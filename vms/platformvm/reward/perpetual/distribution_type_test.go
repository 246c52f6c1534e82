// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perpetual

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"
)

func TestCurrentCycleMoment(t *testing.T) {
	info := moment.BlockInfo{
		Height:     1_234,
		TimeMs:     1_700_000_123_456,
		CoreHeight: 10,
		Epoch:      7,
	}
	tests := []struct {
		name     string
		d        DistributionType
		expected moment.Moment
	}{
		{
			name: "block",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 100,
			},
			expected: moment.Block(1_200),
		},
		{
			name: "time",
			d: DistributionType{
				Kind:     moment.TimeBased,
				Interval: 3_600_000,
			},
			expected: moment.Time(1_699_999_200_000),
		},
		{
			name: "epoch",
			d: DistributionType{
				Kind:     moment.EpochBased,
				Interval: 1,
			},
			expected: moment.Epoch(7),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			current, err := test.d.CurrentCycleMoment(info)
			require.NoError(err)
			require.Equal(test.expected, current)
		})
	}
}

func TestMaxCycleMoment(t *testing.T) {
	tests := []struct {
		name        string
		d           DistributionType
		start       moment.Moment
		current     moment.Moment
		maxCycles   uint64
		expected    moment.Moment
		expectedErr error
	}{
		{
			name: "limited by max cycles",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 10,
			},
			start:     moment.Block(100),
			current:   moment.Block(1_000),
			maxCycles: 5,
			expected:  moment.Block(150),
		},
		{
			name: "limited by current",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 10,
			},
			start:     moment.Block(100),
			current:   moment.Block(1_000),
			maxCycles: 128,
			expected:  moment.Block(1_000),
		},
		{
			name: "span saturates",
			d: DistributionType{
				Kind:     moment.EpochBased,
				Interval: math.MaxUint64,
			},
			start:     moment.Epoch(1),
			current:   moment.Epoch(50),
			maxCycles: 2,
			expected:  moment.Epoch(50),
		},
		{
			name: "limit saturates",
			d: DistributionType{
				Kind:     moment.TimeBased,
				Interval: 60_000,
			},
			start:     moment.Time(math.MaxUint64 - 1),
			current:   moment.Time(math.MaxUint64),
			maxCycles: 2,
			expected:  moment.Time(math.MaxUint64),
		},
		{
			name: "mismatched start",
			d: DistributionType{
				Kind:     moment.EpochBased,
				Interval: 1,
			},
			start:       moment.Block(1),
			current:     moment.Epoch(50),
			maxCycles:   2,
			expectedErr: moment.ErrMismatchedMomentTypes,
		},
		{
			name: "mismatched current",
			d: DistributionType{
				Kind:     moment.EpochBased,
				Interval: 1,
			},
			start:       moment.Epoch(1),
			current:     moment.Time(50),
			maxCycles:   2,
			expectedErr: moment.ErrMismatchedMomentTypes,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			maxCycle, err := test.d.MaxCycleMoment(test.start, test.current, test.maxCycles)
			require.ErrorIs(err, test.expectedErr)
			require.Equal(test.expected, maxCycle)
		})
	}
}

func TestRewardsInInterval(t *testing.T) {
	require := require.New(t)

	d := DistributionType{
		Kind:     moment.EpochBased,
		Interval: 1,
		Function: &distribution.FixedAmount{Amount: 10_000},
	}
	amount, err := d.RewardsInInterval(moment.Epoch(0), moment.Epoch(7_555), moment.Epoch(7_740), nil)
	require.NoError(err)
	require.Equal(uint64(1_850_000), amount)

	halve := func(distribution.EpochRange) (distribution.RewardRatio, bool) {
		return distribution.RewardRatio{Numerator: 1, Denominator: 2}, true
	}
	amount, err = d.RewardsInInterval(moment.Epoch(0), moment.Epoch(7_555), moment.Epoch(7_740), halve)
	require.NoError(err)
	require.Equal(uint64(925_000), amount)

	d.Function = nil
	_, err = d.RewardsInInterval(moment.Epoch(0), moment.Epoch(7_555), moment.Epoch(7_740), nil)
	require.ErrorIs(err, ErrMissingFunction)
}

func TestDistributionTypeVerify(t *testing.T) {
	maxValue := uint64(1_000)
	tests := []struct {
		name        string
		d           DistributionType
		creation    moment.Moment
		expectedErr error
	}{
		{
			name: "valid",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 10,
				Function: &distribution.FixedAmount{Amount: 1},
			},
			creation: moment.Block(100),
		},
		{
			name: "linear starts at creation step",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 10,
				Function: &distribution.Linear{
					A:        1,
					D:        1,
					MaxValue: &maxValue,
				},
			},
			creation: moment.Block(100),
		},
		{
			name: "unknown kind",
			d: DistributionType{
				Kind:     moment.Kind(3),
				Interval: 10,
				Function: &distribution.FixedAmount{Amount: 1},
			},
			creation:    moment.Block(100),
			expectedErr: moment.ErrUnknownKind,
		},
		{
			name: "zero interval",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Function: &distribution.FixedAmount{Amount: 1},
			},
			creation:    moment.Block(100),
			expectedErr: ErrInvalidInterval,
		},
		{
			name: "unaligned time interval",
			d: DistributionType{
				Kind:     moment.TimeBased,
				Interval: 90_000,
				Function: &distribution.FixedAmount{Amount: 1},
			},
			creation:    moment.Time(0),
			expectedErr: ErrInvalidInterval,
		},
		{
			name: "missing function",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 10,
			},
			creation:    moment.Block(100),
			expectedErr: ErrMissingFunction,
		},
		{
			name: "mismatched creation",
			d: DistributionType{
				Kind:     moment.EpochBased,
				Interval: 1,
				Function: &distribution.FixedAmount{Amount: 1},
			},
			creation:    moment.Block(100),
			expectedErr: moment.ErrMismatchedMomentTypes,
		},
		{
			name: "invalid function",
			d: DistributionType{
				Kind:     moment.BlockBased,
				Interval: 10,
				Function: &distribution.FixedAmount{},
			},
			creation:    moment.Block(100),
			expectedErr: distribution.ErrInvalidParameter,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.ErrorIs(t, test.d.Verify(test.creation), test.expectedErr)
		})
	}
}
