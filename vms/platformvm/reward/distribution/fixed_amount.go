// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import "fmt"

var _ Function = (*FixedAmount)(nil)

// FixedAmount emits the same amount at every step.
type FixedAmount struct {
	Amount uint64 `json:"amount"`
}

func (f *FixedAmount) Evaluate(uint64, uint64) (uint64, error) {
	return f.Amount, nil
}

func (f *FixedAmount) Verify(uint64) error {
	return verifyRange("amount", f.Amount, 1, MaxDistributionParam)
}

func (f *FixedAmount) Visit(visitor Visitor) error {
	return visitor.FixedAmount(f)
}

func (f *FixedAmount) String() string {
	return fmt.Sprintf("FixedAmount: %d tokens per period", f.Amount)
}
