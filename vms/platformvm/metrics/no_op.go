// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import "github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"

var Noop Metrics = noopMetrics{}

type noopMetrics struct{}

func (noopMetrics) MarkClaimed(distribution.Function, uint64) error {
	return nil
}

func (noopMetrics) MarkPreProgrammedClaimed(uint64) {}

func (noopMetrics) MarkClaimFailed() {}
