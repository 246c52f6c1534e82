// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Juneo-io/tokenemission/utils/wrappers"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
)

var _ distribution.Visitor = (*functionMetrics)(nil)

type functionMetrics struct {
	numFixedAmountClaims,
	numRandomClaims,
	numStepDecreasingAmountClaims,
	numStepwiseClaims,
	numLinearClaims,
	numPolynomialClaims,
	numExponentialClaims,
	numLogarithmicClaims,
	numInvertedLogarithmicClaims prometheus.Counter
}

func newFunctionMetrics(
	namespace string,
	registerer prometheus.Registerer,
) (*functionMetrics, error) {
	errs := wrappers.Errs{}
	m := &functionMetrics{
		numFixedAmountClaims:          newFunctionMetric(namespace, "fixed_amount", registerer, &errs),
		numRandomClaims:               newFunctionMetric(namespace, "random", registerer, &errs),
		numStepDecreasingAmountClaims: newFunctionMetric(namespace, "step_decreasing_amount", registerer, &errs),
		numStepwiseClaims:             newFunctionMetric(namespace, "stepwise", registerer, &errs),
		numLinearClaims:               newFunctionMetric(namespace, "linear", registerer, &errs),
		numPolynomialClaims:           newFunctionMetric(namespace, "polynomial", registerer, &errs),
		numExponentialClaims:          newFunctionMetric(namespace, "exponential", registerer, &errs),
		numLogarithmicClaims:          newFunctionMetric(namespace, "logarithmic", registerer, &errs),
		numInvertedLogarithmicClaims:  newFunctionMetric(namespace, "inverted_logarithmic", registerer, &errs),
	}
	return m, errs.Err
}

func newFunctionMetric(
	namespace string,
	functionName string,
	registerer prometheus.Registerer,
	errs *wrappers.Errs,
) prometheus.Counter {
	functionMetric := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      fmt.Sprintf("%s_claims", functionName),
		Help:      fmt.Sprintf("Number of claims paid out by %s distributions", functionName),
	})
	errs.Add(registerer.Register(functionMetric))
	return functionMetric
}

func (m *functionMetrics) FixedAmount(*distribution.FixedAmount) error {
	m.numFixedAmountClaims.Inc()
	return nil
}

func (m *functionMetrics) Random(*distribution.Random) error {
	m.numRandomClaims.Inc()
	return nil
}

func (m *functionMetrics) StepDecreasingAmount(*distribution.StepDecreasingAmount) error {
	m.numStepDecreasingAmountClaims.Inc()
	return nil
}

func (m *functionMetrics) Stepwise(*distribution.Stepwise) error {
	m.numStepwiseClaims.Inc()
	return nil
}

func (m *functionMetrics) Linear(*distribution.Linear) error {
	m.numLinearClaims.Inc()
	return nil
}

func (m *functionMetrics) Polynomial(*distribution.Polynomial) error {
	m.numPolynomialClaims.Inc()
	return nil
}

func (m *functionMetrics) Exponential(*distribution.Exponential) error {
	m.numExponentialClaims.Inc()
	return nil
}

func (m *functionMetrics) Logarithmic(*distribution.Logarithmic) error {
	m.numLogarithmicClaims.Inc()
	return nil
}

func (m *functionMetrics) InvertedLogarithmic(*distribution.InvertedLogarithmic) error {
	m.numInvertedLogarithmicClaims.Inc()
	return nil
}
