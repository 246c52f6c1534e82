// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package moment

// BlockInfo is the position of the block currently being executed.
type BlockInfo struct {
	Height     uint64 `json:"height"`
	TimeMs     uint64 `json:"timeMs"`
	CoreHeight uint32 `json:"coreHeight"`
	Epoch      uint64 `json:"epoch"`
}

// FromBlockInfo returns the moment of [info] measured in [kind].
func FromBlockInfo(kind Kind, info BlockInfo) Moment {
	switch kind {
	case TimeBased:
		return Time(info.TimeMs)
	case EpochBased:
		return Epoch(info.Epoch)
	default:
		return Block(info.Height)
	}
}
