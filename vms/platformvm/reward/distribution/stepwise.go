// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/btree"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

const defaultTreeDegree = 2

var _ Function = (*Stepwise)(nil)

// Step is a Stepwise entry: Amount is emitted from Step until the next entry.
type Step struct {
	Step   uint64 `json:"step"`
	Amount uint64 `json:"amount"`
}

func (s Step) Less(other Step) bool {
	return s.Step < other.Step
}

// Stepwise emits piecewise constant amounts. Steps are relative to the first
// step of the distribution.
type Stepwise struct {
	steps *btree.BTreeG[Step]
}

// NewStepwise returns a Stepwise function emitting the given amounts. If a
// step is provided multiple times, the last amount wins.
func NewStepwise(steps map[uint64]uint64) *Stepwise {
	f := &Stepwise{
		steps: btree.NewG(defaultTreeDegree, Step.Less),
	}
	for step, amount := range steps {
		f.steps.ReplaceOrInsert(Step{Step: step, Amount: amount})
	}
	return f
}

// Len returns the number of steps.
func (f *Stepwise) Len() int {
	if f.steps == nil {
		return 0
	}
	return f.steps.Len()
}

// Steps returns the steps in increasing order.
func (f *Stepwise) Steps() []Step {
	steps := make([]Step, 0, f.Len())
	if f.steps == nil {
		return steps
	}
	f.steps.Ascend(func(s Step) bool {
		steps = append(steps, s)
		return true
	})
	return steps
}

func (f *Stepwise) Evaluate(distributionStartStep uint64, x uint64) (uint64, error) {
	if f.steps == nil {
		return 0, nil
	}
	relative := safemath.SaturatingSub(x, distributionStartStep)

	var amount uint64
	f.steps.DescendLessOrEqual(Step{Step: relative}, func(s Step) bool {
		amount = s.Amount
		return false
	})
	return amount, nil
}

func (f *Stepwise) Verify(uint64) error {
	if f.Len() < 2 {
		return fmt.Errorf("%w: stepwise requires at least 2 steps but has %d", ErrInvalidParameter, f.Len())
	}
	return nil
}

func (f *Stepwise) Visit(visitor Visitor) error {
	return visitor.Stepwise(f)
}

func (f *Stepwise) String() string {
	sb := strings.Builder{}
	sb.WriteString("Stepwise emission: ")
	for i, s := range f.Steps() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "[Step %d → %d tokens]", s.Step, s.Amount)
	}
	return sb.String()
}

func (f *Stepwise) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Steps())
}

func (f *Stepwise) UnmarshalJSON(b []byte) error {
	var steps []Step
	if err := json.Unmarshal(b, &steps); err != nil {
		return err
	}
	f.steps = btree.NewG(defaultTreeDegree, Step.Less)
	for _, s := range steps {
		f.steps.ReplaceOrInsert(s)
	}
	return nil
}
