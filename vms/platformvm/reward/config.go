// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"errors"
	"fmt"
)

var (
	errNoRedemptionCycles = errors.New("max token redemption cycles must be > 0")

	DefaultConfig = Config{
		MaxTokenRedemptionCycles: 128,
		MetricsNamespace:         "token_emission",
	}
)

type Config struct {
	// MaxTokenRedemptionCycles is the maximum number of intervals paid out by
	// a single perpetual claim. Claims lagging further behind are paid over
	// multiple claims.
	// Restrictions:
	// - Must be > 0
	MaxTokenRedemptionCycles uint32 `json:"maxTokenRedemptionCycles"`
	// MetricsNamespace prefixes every claim metric.
	MetricsNamespace string `json:"metricsNamespace"`
}

func (c *Config) Verify() error {
	if c.MaxTokenRedemptionCycles == 0 {
		return fmt.Errorf("%w: got %d", errNoRedemptionCycles, c.MaxTokenRedemptionCycles)
	}
	return nil
}
