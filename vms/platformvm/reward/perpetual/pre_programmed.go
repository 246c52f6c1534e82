// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package perpetual

import (
	"errors"
	"fmt"

	"github.com/google/btree"

	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
)

const defaultTreeDegree = 2

var ErrEmptySchedule = errors.New("empty pre-programmed schedule")

// Payout is the set of amounts released to identities at [TimestampMs].
type Payout struct {
	TimestampMs uint64            `json:"timestampMs"`
	Amounts     map[ids.ID]uint64 `json:"amounts"`
}

func (p Payout) Less(other Payout) bool {
	return p.TimestampMs < other.TimestampMs
}

// PreProgrammed releases fixed amounts to fixed identities at fixed times.
type PreProgrammed struct {
	schedule *btree.BTreeG[Payout]
}

func NewPreProgrammed(schedule map[uint64]map[ids.ID]uint64) *PreProgrammed {
	p := &PreProgrammed{
		schedule: btree.NewG(defaultTreeDegree, Payout.Less),
	}
	for timestampMs, amounts := range schedule {
		p.schedule.ReplaceOrInsert(Payout{
			TimestampMs: timestampMs,
			Amounts:     amounts,
		})
	}
	return p
}

func (p *PreProgrammed) Len() int {
	if p == nil || p.schedule == nil {
		return 0
	}
	return p.schedule.Len()
}

// NextUnpaid returns the earliest payout to [identity] after [lastPaidMs] that
// isn't after [nowMs]. If [lastPaidMs] is nil, the identity was never paid.
func (p *PreProgrammed) NextUnpaid(identity ids.ID, lastPaidMs *uint64, nowMs uint64) (uint64, uint64, bool) {
	if p.Len() == 0 {
		return 0, 0, false
	}

	var pivot uint64
	if lastPaidMs != nil {
		if *lastPaidMs >= nowMs {
			return 0, 0, false
		}
		pivot = *lastPaidMs + 1
	}

	var (
		timestampMs uint64
		amount      uint64
		found       bool
	)
	p.schedule.AscendGreaterOrEqual(Payout{TimestampMs: pivot}, func(payout Payout) bool {
		if payout.TimestampMs > nowMs {
			return false
		}
		amount, found = payout.Amounts[identity]
		timestampMs = payout.TimestampMs
		return !found
	})
	if !found {
		return 0, 0, false
	}
	return timestampMs, amount, true
}

func (p *PreProgrammed) Verify() error {
	if p.Len() == 0 {
		return ErrEmptySchedule
	}

	var err error
	p.schedule.Ascend(func(payout Payout) bool {
		for identity, amount := range payout.Amounts {
			if amount == 0 || amount > distribution.MaxDistributionParam {
				err = fmt.Errorf("%w: amount %d for %s at %dms",
					distribution.ErrInvalidParameter, amount, identity, payout.TimestampMs)
				return false
			}
		}
		return true
	})
	return err
}
