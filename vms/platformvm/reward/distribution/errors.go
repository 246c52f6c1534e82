// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

var (
	ErrMismatchedMomentTypes   = moment.ErrMismatchedMomentTypes
	ErrInvalidDistributionStep = moment.ErrInvalidDistributionStep
	ErrOverflow                = safemath.ErrOverflow
	ErrDivideByZero            = safemath.ErrDivideByZero

	ErrMissingEpochInfo = errors.New("missing epoch info")
	ErrDomain           = errors.New("function undefined at step")
	ErrInvalidParameter = errors.New("invalid distribution parameter")
	ErrUnsupported      = errors.New("unsupported distribution function")
)

func verifyRange[T constraints.Integer](name string, value, lower, upper T) error {
	if value < lower || value > upper {
		return fmt.Errorf("%w: %s must be in [%d, %d] but is %d", ErrInvalidParameter, name, lower, upper, value)
	}
	return nil
}

func verifyNonZero[T constraints.Integer](name string, value T) error {
	if value == 0 {
		return fmt.Errorf("%w: %s must not be 0", ErrInvalidParameter, name)
	}
	return nil
}

func verifyOptionalMax(name string, value *uint64, upper uint64) error {
	if value == nil {
		return nil
	}
	return verifyRange(name, *value, 0, upper)
}

func verifyMinMax(minValue, maxValue *uint64) error {
	if minValue != nil && maxValue != nil && *minValue > *maxValue {
		return fmt.Errorf("%w: min value %d is greater than max value %d", ErrInvalidParameter, *minValue, *maxValue)
	}
	return nil
}

func verifyOffset(o int64) error {
	return verifyRange("o", o, -int64(MaxDistributionParam), int64(MaxDistributionParam))
}

// verifyNotPinned rejects functions that start at the bound they are moving
// towards, as they would never emit a different amount.
func verifyNotPinned(start uint64, bound *uint64, direction string) error {
	if bound != nil && start == *bound {
		return fmt.Errorf("%w: %s function starts at its bound %d", ErrInvalidParameter, direction, start)
	}
	return nil
}
