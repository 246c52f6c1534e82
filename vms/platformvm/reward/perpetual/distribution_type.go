// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package perpetual describes token distributions that emit a reward every
// interval for as long as the token exists.
package perpetual

import (
	"errors"
	"fmt"
	"math"

	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

// TimeIntervalAlignment is the granularity of time based intervals in
// milliseconds.
const TimeIntervalAlignment = 60_000

var (
	ErrInvalidInterval = errors.New("invalid distribution interval")
	ErrMissingFunction = errors.New("missing distribution function")
)

// DistributionType emits [Function] once every [Interval] units of [Kind].
type DistributionType struct {
	Kind     moment.Kind
	Interval uint64
	Function distribution.Function
}

// IntervalMoment returns the interval as a moment of the distribution's kind.
func (d DistributionType) IntervalMoment() moment.Moment {
	return moment.Moment{
		Kind:  d.Kind,
		Value: d.Interval,
	}
}

// CurrentCycleMoment returns the start of the cycle containing the block.
func (d DistributionType) CurrentCycleMoment(info moment.BlockInfo) (moment.Moment, error) {
	return moment.FromBlockInfo(d.Kind, info).CycleStart(d.IntervalMoment())
}

// MaxCycleMoment returns the last moment a single claim starting at [start]
// may be paid up to, which is [current] unless more than [maxCycles] intervals
// have elapsed.
func (d DistributionType) MaxCycleMoment(start, current moment.Moment, maxCycles uint64) (moment.Moment, error) {
	interval := d.IntervalMoment()
	if _, err := start.Compare(interval); err != nil {
		return moment.Moment{}, err
	}
	if _, err := current.Compare(interval); err != nil {
		return moment.Moment{}, err
	}

	span, err := safemath.Mul64(d.Interval, maxCycles)
	if err != nil {
		span = math.MaxUint64
	}
	limit, err := safemath.Add64(start.Value, span)
	if err != nil {
		limit = math.MaxUint64
	}
	return moment.Moment{
		Kind:  d.Kind,
		Value: safemath.Min(current.Value, limit),
	}, nil
}

// RewardsInInterval returns the amount emitted in (startExcluded, endIncluded]
// by a distribution that started at [distributionStart].
func (d DistributionType) RewardsInInterval(
	distributionStart moment.Moment,
	startExcluded moment.Moment,
	endIncluded moment.Moment,
	getRewardRatio distribution.RewardRatioFunc,
) (uint64, error) {
	if d.Function == nil {
		return 0, ErrMissingFunction
	}
	return distribution.EvaluateInterval(
		d.Function,
		distributionStart,
		startExcluded,
		endIncluded,
		d.IntervalMoment(),
		getRewardRatio,
	)
}

// Verify returns nil iff the distribution can be registered at [creation].
func (d DistributionType) Verify(creation moment.Moment) error {
	switch {
	case !d.Kind.Valid():
		return fmt.Errorf("%w: %d", moment.ErrUnknownKind, d.Kind)
	case d.Interval == 0:
		return fmt.Errorf("%w: interval must not be 0", ErrInvalidInterval)
	case d.Kind == moment.TimeBased && d.Interval%TimeIntervalAlignment != 0:
		return fmt.Errorf("%w: time interval %dms is not a multiple of %dms",
			ErrInvalidInterval, d.Interval, TimeIntervalAlignment)
	case d.Function == nil:
		return ErrMissingFunction
	}

	startStep, err := creation.DivideBy(d.IntervalMoment())
	if err != nil {
		return err
	}
	return d.Function.Verify(startStep.Value)
}

func (d DistributionType) String() string {
	return fmt.Sprintf("every %d %s units: %s", d.Interval, d.Kind, d.Function)
}
