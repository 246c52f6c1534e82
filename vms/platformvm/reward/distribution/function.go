// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package distribution implements the emission curves of perpetual token
// distributions and the evaluation of their total emission over an interval.
//
// All evaluation is integer or fixed point decimal arithmetic so that every
// node computes the same amounts.
package distribution

import "fmt"

// Function is an emission curve. It returns the number of credits emitted at
// a given step.
type Function interface {
	fmt.Stringer

	// Evaluate returns the amount emitted at step [x] of a distribution whose
	// first step is [distributionStartStep].
	Evaluate(distributionStartStep uint64, x uint64) (uint64, error)

	// Verify returns nil iff the parameters are allowed for a distribution
	// registered at [startMoment].
	Verify(startMoment uint64) error

	// Visit calls the method of [visitor] that matches this function.
	Visit(visitor Visitor) error
}

// Visitor allows exhaustive dispatch over every Function implementation.
type Visitor interface {
	FixedAmount(*FixedAmount) error
	Random(*Random) error
	StepDecreasingAmount(*StepDecreasingAmount) error
	Stepwise(*Stepwise) error
	Linear(*Linear) error
	Polynomial(*Polynomial) error
	Exponential(*Exponential) error
	Logarithmic(*Logarithmic) error
	InvertedLogarithmic(*InvertedLogarithmic) error
}
