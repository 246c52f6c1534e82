// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
)

func TestParticipationRatios(t *testing.T) {
	evonode := ids.GenerateTestID()
	other := ids.GenerateTestID()
	getRatio := ParticipationRatios(
		map[uint64]FinalizedEpochInfo{
			4: {
				TotalBlocks:    10,
				BlockProposers: map[ids.ID]uint64{evonode: 4, other: 6},
			},
			5: {
				TotalBlocks:    30,
				BlockProposers: map[ids.ID]uint64{other: 30},
			},
			6: {},
			8: {
				TotalBlocks:    20,
				BlockProposers: map[ids.ID]uint64{evonode: 20},
			},
		},
		evonode,
	)

	tests := []struct {
		name          string
		epochs        distribution.EpochRange
		expected      distribution.RewardRatio
		expectedFound bool
	}{
		{
			name:          "single epoch",
			epochs:        distribution.EpochRange{First: 4, Last: 4},
			expected:      distribution.RewardRatio{Numerator: 4, Denominator: 10},
			expectedFound: true,
		},
		{
			name:          "single epoch not proposing",
			epochs:        distribution.EpochRange{First: 5, Last: 5},
			expected:      distribution.RewardRatio{Numerator: 0, Denominator: 30},
			expectedFound: true,
		},
		{
			name:   "single epoch without blocks",
			epochs: distribution.EpochRange{First: 6, Last: 6},
		},
		{
			name:   "missing epoch",
			epochs: distribution.EpochRange{First: 7, Last: 7},
		},
		{
			name:          "range skips missing epochs",
			epochs:        distribution.EpochRange{First: 4, Last: 9},
			expected:      distribution.RewardRatio{Numerator: 24, Denominator: 60},
			expectedFound: true,
		},
		{
			name:   "range without epochs",
			epochs: distribution.EpochRange{First: 9, Last: 20},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			ratio, found := getRatio(test.epochs)
			require.Equal(test.expectedFound, found)
			require.Equal(test.expected, ratio)
		})
	}
}

func TestParticipationRatiosBoundedProperty(t *testing.T) {
	properties := gopter.NewProperties(nil)

	evonode := ids.GenerateTestID()
	properties.Property("participation never exceeds the full amount", prop.ForAll(
		func(proposed []uint32, others []uint32, amount uint64) string {
			epochs := make(map[uint64]FinalizedEpochInfo, len(proposed))
			for i, p := range proposed {
				var o uint64
				if i < len(others) {
					o = uint64(others[i])
				}
				epochs[uint64(i)] = FinalizedEpochInfo{
					TotalBlocks:    uint64(p) + o,
					BlockProposers: map[ids.ID]uint64{evonode: uint64(p)},
				}
			}

			ratio, found := ParticipationRatios(epochs, evonode)(distribution.EpochRange{
				First: 0,
				Last:  uint64(len(proposed)),
			})
			if !found {
				return ""
			}
			if ratio.Numerator > ratio.Denominator {
				return fmt.Sprintf("ratio %s exceeds 1", ratio)
			}
			paid, err := ratio.Apply(amount)
			if err != nil {
				return ""
			}
			if paid > amount {
				return fmt.Sprintf("paid %d of %d", paid, amount)
			}
			return ""
		},
		gen.SliceOf(gen.UInt32()),
		gen.SliceOf(gen.UInt32()),
		gen.UInt64(),
	))

	properties.TestingRun(t)
}
