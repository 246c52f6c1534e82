// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"context"

	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

// FinalizedEpochInfo is the block production record of a finalized epoch.
type FinalizedEpochInfo struct {
	TotalBlocks    uint64            `json:"totalBlocks"`
	BlockProposers map[ids.ID]uint64 `json:"blockProposers"`
}

// EpochInfoGetter provides the block production records of finalized epochs.
type EpochInfoGetter interface {
	// GetFinalizedEpochInfos returns the finalized epochs with an index in
	// [startIncluded, endExcluded). Epochs that are not finalized are omitted.
	GetFinalizedEpochInfos(ctx context.Context, startIncluded, endExcluded uint64) (map[uint64]FinalizedEpochInfo, error)
}

// ParticipationRatios returns the share of [epochs] proposed by [proposer].
//
// A range is resolved over the epochs that are available. An empty range, or
// one in which no block was produced, is unresolved.
func ParticipationRatios(epochs map[uint64]FinalizedEpochInfo, proposer ids.ID) distribution.RewardRatioFunc {
	return func(r distribution.EpochRange) (distribution.RewardRatio, bool) {
		var proposed, total uint64
		for index, info := range epochs {
			if index < r.First || index > r.Last {
				continue
			}
			var err error
			proposed, err = safemath.Add64(proposed, info.BlockProposers[proposer])
			if err != nil {
				return distribution.RewardRatio{}, false
			}
			total, err = safemath.Add64(total, info.TotalBlocks)
			if err != nil {
				return distribution.RewardRatio{}, false
			}
		}
		if total == 0 {
			return distribution.RewardRatio{}, false
		}
		return distribution.RewardRatio{
			Numerator:   proposed,
			Denominator: total,
		}, true
	}
}
