// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Juneo-io/tokenemission/utils/wrappers"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/distribution"
)

var _ Metrics = (*metrics)(nil)

type Metrics interface {
	// Mark that a perpetual claim paying [amount] credits emitted by [f] was
	// persisted.
	MarkClaimed(f distribution.Function, amount uint64) error
	// Mark that a pre-programmed payout of [amount] credits was persisted.
	MarkPreProgrammedClaimed(amount uint64)
	// Mark that a claim was rejected.
	MarkClaimFailed()
}

func New(
	namespace string,
	registerer prometheus.Registerer,
) (Metrics, error) {
	functionMetrics, err := newFunctionMetrics(namespace, registerer)
	m := &metrics{
		functionMetrics: functionMetrics,

		claimedCredits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "claimed_credits",
			Help:      "Total amount of credits paid out by perpetual claims",
		}),
		preProgrammedCredits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pre_programmed_credits",
			Help:      "Total amount of credits paid out by pre-programmed claims",
		}),
		numPreProgrammedClaims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pre_programmed_claims",
			Help:      "Number of pre-programmed claims paid out",
		}),
		numFailedClaims: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failed_claims",
			Help:      "Number of rejected claims",
		}),
	}

	errs := wrappers.Errs{Err: err}
	errs.Add(
		registerer.Register(m.claimedCredits),
		registerer.Register(m.preProgrammedCredits),
		registerer.Register(m.numPreProgrammedClaims),
		registerer.Register(m.numFailedClaims),
	)
	return m, errs.Err
}

type metrics struct {
	functionMetrics *functionMetrics

	claimedCredits       prometheus.Gauge
	preProgrammedCredits prometheus.Gauge

	numPreProgrammedClaims, numFailedClaims prometheus.Counter
}

func (m *metrics) MarkClaimed(f distribution.Function, amount uint64) error {
	m.claimedCredits.Add(float64(amount))
	return f.Visit(m.functionMetrics)
}

func (m *metrics) MarkPreProgrammedClaimed(amount uint64) {
	m.numPreProgrammedClaims.Inc()
	m.preProgrammedCredits.Add(float64(amount))
}

func (m *metrics) MarkClaimFailed() {
	m.numFailedClaims.Inc()
}
