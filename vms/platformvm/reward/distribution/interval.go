// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"fmt"

	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

// EpochRange is the inclusive range of epochs [First, Last].
type EpochRange struct {
	First uint64
	Last  uint64
}

// RewardRatioFunc returns the reward ratio of the epochs in the range, or
// false if it isn't known.
type RewardRatioFunc func(EpochRange) (RewardRatio, bool)

// EvaluateInterval returns the total amount emitted by [f] at every step in
// (startExcluded, endIncluded].
//
// If [getRewardRatio] is non-nil and the moments are epochs, the emission of
// every epoch is reduced by its reward ratio.
func EvaluateInterval(
	f Function,
	distributionStart moment.Moment,
	startExcluded moment.Moment,
	endIncluded moment.Moment,
	step moment.Moment,
	getRewardRatio RewardRatioFunc,
) (uint64, error) {
	if !startExcluded.SameKind(endIncluded) || !startExcluded.SameKind(step) {
		return 0, fmt.Errorf("%w: interval (%s, %s] with step %s",
			ErrMismatchedMomentTypes, startExcluded, endIncluded, step)
	}
	if step.Value == 0 {
		return 0, ErrInvalidDistributionStep
	}
	if startExcluded.Value >= endIncluded.Value {
		return 0, nil
	}

	applyRatios := getRewardRatio != nil && startExcluded.Kind == moment.EpochBased

	if fixed, ok := f.(*FixedAmount); ok {
		steps, err := startExcluded.StepsTill(endIncluded, step, false, true)
		if err != nil {
			return 0, err
		}
		total, err := safemath.Mul64(fixed.Amount, steps)
		if err != nil {
			return 0, fmt.Errorf("%w: %d steps of %d", ErrOverflow, steps, fixed.Amount)
		}
		if !applyRatios {
			return total, nil
		}
		epochs := EpochRange{
			First: startExcluded.Value + 1,
			Last:  endIncluded.Value,
		}
		ratio, ok := getRewardRatio(epochs)
		if !ok {
			return 0, fmt.Errorf("%w: epochs [%d, %d]", ErrMissingEpochInfo, epochs.First, epochs.Last)
		}
		return ratio.Apply(total)
	}

	firstStep := startExcluded.Value/step.Value + 1
	lastStep := endIncluded.Value / step.Value
	if firstStep > lastStep {
		return 0, nil
	}
	distributionStartStep, err := distributionStart.DivideBy(step)
	if err != nil {
		return 0, err
	}

	var total uint64
	for current := firstStep; ; current++ {
		amount, err := f.Evaluate(distributionStartStep.Value, current)
		if err != nil {
			return 0, fmt.Errorf("evaluating step %d: %w", current, err)
		}
		if applyRatios {
			ratio, ok := getRewardRatio(EpochRange{First: current, Last: current})
			if !ok {
				return 0, fmt.Errorf("%w: epoch %d", ErrMissingEpochInfo, current)
			}
			amount, err = ratio.Apply(amount)
			if err != nil {
				return 0, err
			}
		}
		total, err = safemath.Add64(total, amount)
		if err != nil {
			return 0, fmt.Errorf("%w: total emission at step %d", ErrOverflow, current)
		}
		if current == lastStep {
			return total, nil
		}
	}
}
