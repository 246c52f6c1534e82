// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package distribution

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

type evaluation struct {
	x           uint64
	expected    uint64
	expectedErr error
}

func requireEvaluations(t *testing.T, f Function, distributionStartStep uint64, evaluations []evaluation) {
	t.Helper()

	for _, e := range evaluations {
		t.Run(fmt.Sprintf("step %d", e.x), func(t *testing.T) {
			require := require.New(t)

			amount, err := f.Evaluate(distributionStartStep, e.x)
			require.ErrorIs(err, e.expectedErr)
			require.Equal(e.expected, amount)
		})
	}
}

func TestFixedAmountEvaluate(t *testing.T) {
	requireEvaluations(t, &FixedAmount{Amount: 42}, 3, []evaluation{
		{x: 0, expected: 42},
		{x: 3, expected: 42},
		{x: math.MaxUint64, expected: 42},
	})
}

func TestRandomEvaluate(t *testing.T) {
	require := require.New(t)

	f := &Random{Min: 10, Max: 20}
	seen := make(map[uint64]struct{})
	for x := uint64(0); x < 1_000; x++ {
		amount, err := f.Evaluate(0, x)
		require.NoError(err)
		require.GreaterOrEqual(amount, f.Min)
		require.LessOrEqual(amount, f.Max)

		again, err := f.Evaluate(7, x)
		require.NoError(err)
		require.Equal(amount, again)

		seen[amount] = struct{}{}
	}
	require.Len(seen, 11)

	single := &Random{Min: 5, Max: 5}
	amount, err := single.Evaluate(0, 123)
	require.NoError(err)
	require.Equal(uint64(5), amount)

	full := &Random{Min: 0, Max: math.MaxUint64}
	_, err = full.Evaluate(0, 123)
	require.NoError(err)

	invalid := &Random{Min: 6, Max: 5}
	_, err = invalid.Evaluate(0, 123)
	require.ErrorIs(err, ErrInvalidParameter)
}

func TestStepDecreasingAmountEvaluate(t *testing.T) {
	t.Run("one percent", func(t *testing.T) {
		f := &StepDecreasingAmount{
			StepCount:                      1,
			DecreasePerIntervalNumerator:   1,
			DecreasePerIntervalDenominator: 100,
			DistributionStartAmount:        10_000,
		}
		expected := []uint64{10_000, 9_900, 9_801, 9_702, 9_604, 9_507, 9_411, 9_316, 9_222, 9_129, 9_037, 8_946}
		evaluations := make([]evaluation, len(expected))
		for x, amount := range expected {
			evaluations[x] = evaluation{x: uint64(x), expected: amount}
		}
		requireEvaluations(t, f, 0, evaluations)
	})

	t.Run("halving", func(t *testing.T) {
		f := &StepDecreasingAmount{
			StepCount:                      10,
			DecreasePerIntervalNumerator:   1,
			DecreasePerIntervalDenominator: 2,
			DistributionStartAmount:        100_000,
		}
		expected := []uint64{
			100_000, 50_000, 25_000, 12_500, 6_250, 3_125, 1_562, 781, 390,
			195, 97, 48, 24, 12, 6, 3, 1, 0, 0,
		}
		evaluations := make([]evaluation, 0, 2*len(expected))
		for i, amount := range expected {
			evaluations = append(evaluations,
				evaluation{x: uint64(i * 10), expected: amount},
				evaluation{x: uint64(i*10 + 9), expected: amount},
			)
		}
		requireEvaluations(t, f, 0, evaluations)
	})

	t.Run("relative to distribution start", func(t *testing.T) {
		f := &StepDecreasingAmount{
			StepCount:                      10,
			DecreasePerIntervalNumerator:   1,
			DecreasePerIntervalDenominator: 2,
			DistributionStartAmount:        100_000,
		}
		requireEvaluations(t, f, 100, []evaluation{
			{x: 50, expected: 100_000},
			{x: 109, expected: 100_000},
			{x: 110, expected: 50_000},
		})
	})

	t.Run("start decreasing offset", func(t *testing.T) {
		f := &StepDecreasingAmount{
			StepCount:                      10,
			DecreasePerIntervalNumerator:   1,
			DecreasePerIntervalDenominator: 2,
			StartDecreasingOffset:          ptr[uint64](100),
			DistributionStartAmount:        100_000,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 50, expected: 100_000},
			{x: 110, expected: 50_000},
		})
	})

	t.Run("trailing amount", func(t *testing.T) {
		f := &StepDecreasingAmount{
			StepCount:                          10,
			DecreasePerIntervalNumerator:       1,
			DecreasePerIntervalDenominator:     2,
			MaxIntervalCount:                   ptr[uint16](2),
			DistributionStartAmount:            100_000,
			TrailingDistributionIntervalAmount: 7,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 20, expected: 25_000},
			{x: 29, expected: 25_000},
			{x: 30, expected: 7},
			{x: math.MaxUint64, expected: 7},
		})
	})

	t.Run("min value", func(t *testing.T) {
		f := &StepDecreasingAmount{
			StepCount:                      10,
			DecreasePerIntervalNumerator:   1,
			DecreasePerIntervalDenominator: 2,
			DistributionStartAmount:        100_000,
			MinValue:                       ptr[uint64](5_000),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 40, expected: 6_250},
			{x: 50, expected: 5_000},
			{x: 1_000, expected: 5_000},
		})
	})

	t.Run("invalid", func(t *testing.T) {
		zeroDenominator := &StepDecreasingAmount{
			StepCount:               1,
			DistributionStartAmount: 100,
		}
		requireEvaluations(t, zeroDenominator, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})

		zeroStepCount := &StepDecreasingAmount{
			DecreasePerIntervalNumerator:   1,
			DecreasePerIntervalDenominator: 2,
			DistributionStartAmount:        100,
		}
		requireEvaluations(t, zeroStepCount, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})

		increasing := &StepDecreasingAmount{
			StepCount:                      1,
			DecreasePerIntervalNumerator:   3,
			DecreasePerIntervalDenominator: 2,
			DistributionStartAmount:        100,
		}
		requireEvaluations(t, increasing, 0, []evaluation{
			{x: 1, expectedErr: ErrDomain},
		})
	})
}

func TestStepwiseEvaluate(t *testing.T) {
	f := NewStepwise(map[uint64]uint64{
		0:  100,
		10: 50,
		20: 10,
	})
	requireEvaluations(t, f, 5, []evaluation{
		{x: 3, expected: 100},
		{x: 5, expected: 100},
		{x: 14, expected: 100},
		{x: 15, expected: 50},
		{x: 25, expected: 10},
		{x: math.MaxUint64, expected: 10},
	})

	late := NewStepwise(map[uint64]uint64{
		5:  100,
		10: 50,
	})
	requireEvaluations(t, late, 0, []evaluation{
		{x: 4, expected: 0},
		{x: 5, expected: 100},
	})

	requireEvaluations(t, &Stepwise{}, 0, []evaluation{
		{x: 4, expected: 0},
	})
}

func TestStepwiseJSON(t *testing.T) {
	require := require.New(t)

	f := NewStepwise(map[uint64]uint64{
		20: 10,
		0:  100,
	})
	b, err := json.Marshal(f)
	require.NoError(err)
	require.JSONEq(`[{"step":0,"amount":100},{"step":20,"amount":10}]`, string(b))

	parsed := &Stepwise{}
	require.NoError(json.Unmarshal(b, parsed))
	require.Equal(f.Steps(), parsed.Steps())
}

func TestLinearEvaluate(t *testing.T) {
	t.Run("decreasing", func(t *testing.T) {
		f := &Linear{
			A:              -1,
			D:              10,
			StartingAmount: 100,
			MinValue:       ptr[uint64](50),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expected: 100},
			{x: 9, expected: 100},
			{x: 10, expected: 99},
			{x: 500, expected: 50},
			{x: 600, expected: 50},
		})
	})

	t.Run("increasing", func(t *testing.T) {
		f := &Linear{
			A:              2,
			D:              1,
			StartStep:      ptr[uint64](5),
			StartingAmount: 0,
			MaxValue:       ptr[uint64](10),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 3, expected: 0},
			{x: 6, expected: 2},
			{x: 9, expected: 8},
			{x: 10, expected: 10},
			{x: math.MaxUint64, expected: 10},
		})
	})

	t.Run("relative to distribution start", func(t *testing.T) {
		f := &Linear{
			A:              1,
			D:              1,
			StartingAmount: 10,
		}
		requireEvaluations(t, f, 100, []evaluation{
			{x: 100, expected: 10},
			{x: 105, expected: 15},
		})
	})

	t.Run("negative", func(t *testing.T) {
		f := &Linear{
			A:              -1,
			D:              1,
			StartingAmount: 10,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 20, expected: 0},
		})
	})

	t.Run("overflow", func(t *testing.T) {
		f := &Linear{
			A:              256,
			D:              1,
			StartingAmount: 0,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: math.MaxUint64, expectedErr: ErrOverflow},
		})
	})

	t.Run("zero divisor", func(t *testing.T) {
		requireEvaluations(t, &Linear{A: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
	})
}

func TestPolynomialEvaluate(t *testing.T) {
	t.Run("ones", func(t *testing.T) {
		f := &Polynomial{
			A:           1,
			D:           1,
			M:           1,
			N:           1,
			O:           1,
			StartMoment: ptr[uint64](1),
			B:           100_000,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 100_001},
			{x: 10, expected: 100_010},
		})
	})

	t.Run("square root", func(t *testing.T) {
		f := &Polynomial{
			A: 1,
			D: 1,
			M: 1,
			N: 2,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expected: 0},
			{x: 16, expected: 4},
			{x: 17, expected: 4},
			{x: 99, expected: 9},
		})
	})

	t.Run("rational exponent", func(t *testing.T) {
		f := &Polynomial{
			A: 3,
			D: 2,
			M: 2,
			N: 3,
			B: 1,
		}
		requireEvaluations(t, f, 0, []evaluation{
			// 3 * 9 / 2 + 1
			{x: 27, expected: 14},
			{x: 28, expected: 14},
		})
	})

	t.Run("cubic", func(t *testing.T) {
		f := &Polynomial{
			A:        1,
			D:        1,
			M:        3,
			N:        1,
			MaxValue: ptr[uint64](1_000_000),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 10, expected: 1_000},
			{x: 100, expected: 1_000_000},
			{x: 1_000, expected: 1_000_000},
		})
	})

	t.Run("negative exponent", func(t *testing.T) {
		f := &Polynomial{
			A: 1_000,
			D: 1,
			M: -1,
			N: 1,
			B: 5,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expectedErr: ErrDomain},
			{x: 1, expected: 1_005},
			{x: 2, expected: 5},
		})
	})

	t.Run("decreasing", func(t *testing.T) {
		f := &Polynomial{
			A:        -2,
			D:        1,
			M:        1,
			N:        2,
			B:        100,
			MinValue: ptr[uint64](10),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expected: 100},
			{x: 100, expected: 80},
			{x: 10_000, expected: 10},
		})
	})

	t.Run("negative base", func(t *testing.T) {
		f := &Polynomial{
			A: 1,
			D: 1,
			M: 1,
			N: 2,
			O: -5,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 2, expectedErr: ErrDomain},
			{x: 9, expected: 2},
		})
	})

	t.Run("invalid exponent", func(t *testing.T) {
		f := &Polynomial{
			A: 1,
			D: 1,
			M: 9,
			N: 1,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 2, expectedErr: ErrInvalidParameter},
		})
	})
}

func TestExponentialEvaluate(t *testing.T) {
	t.Run("increasing", func(t *testing.T) {
		f := &Exponential{
			A:        1,
			D:        1,
			M:        1,
			N:        1,
			MaxValue: ptr[uint64](1_000_000_000_000),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expected: 1},
			{x: 1, expected: 2},
			{x: 10, expected: 22_026},
			{x: 20, expected: 485_165_195},
			{x: 30, expected: 1_000_000_000_000},
			{x: 100, expected: 1_000_000_000_000},
		})
	})

	t.Run("unbounded", func(t *testing.T) {
		f := &Exponential{
			A: 1,
			D: 1,
			M: 1,
			N: 1,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 20, expected: 485_165_195},
			{x: 50, expectedErr: ErrOverflow},
			{x: 100, expectedErr: ErrOverflow},
		})
	})

	t.Run("decreasing", func(t *testing.T) {
		f := &Exponential{
			A: 100,
			D: 1,
			M: -1,
			N: 10,
			B: 3,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expected: 103},
			{x: 5, expected: 63},
			{x: 10, expected: 39},
			{x: 20, expected: 16},
			{x: 10_000, expected: 3},
		})
	})

	t.Run("relative to distribution start", func(t *testing.T) {
		f := &Exponential{
			A: 100,
			D: 1,
			M: -1,
			N: 10,
		}
		requireEvaluations(t, f, 50, []evaluation{
			{x: 50, expected: 100},
			{x: 60, expected: 36},
		})
	})

	t.Run("invalid", func(t *testing.T) {
		requireEvaluations(t, &Exponential{A: 1, N: 1, M: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
		requireEvaluations(t, &Exponential{A: 1, D: 1, M: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
	})
}

func TestLogarithmicEvaluate(t *testing.T) {
	t.Run("ones", func(t *testing.T) {
		f := &Logarithmic{
			A:           1,
			D:           1,
			M:           1,
			N:           1,
			O:           1,
			StartMoment: ptr[uint64](1),
			B:           1,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 1},
			{x: 2, expected: 1},
			{x: 3, expected: 2},
			{x: 8, expected: 3},
			{x: 21, expected: 4},
		})
	})

	t.Run("scaled", func(t *testing.T) {
		f := &Logarithmic{
			A: 1_000,
			D: 1,
			M: 1,
			N: 1,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expectedErr: ErrDomain},
			{x: 1, expected: 0},
			{x: 10, expected: 2_302},
			{x: 100, expected: 4_605},
		})
	})

	t.Run("negative slope", func(t *testing.T) {
		f := &Logarithmic{
			A: -1_000,
			D: 1,
			M: 1,
			N: 1,
			B: 10_000,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 10_000},
			{x: 10, expected: 7_697},
		})
	})

	t.Run("large denominator", func(t *testing.T) {
		f := &Logarithmic{
			A: 1,
			D: 1,
			M: 1,
			N: math.MaxUint64,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 0},
			{x: 5, expected: 0},
		})

		f.MinValue = ptr[uint64](5)
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 5},
		})
	})

	t.Run("negative slope over large denominator", func(t *testing.T) {
		f := &Logarithmic{
			A:           -1,
			D:           1,
			M:           1,
			N:           math.MaxUint64,
			StartMoment: ptr[uint64](0),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 44},
			{x: 2, expected: 43},
			{x: 3, expected: 43},
			{x: 4, expected: 42},
			{x: 5, expected: 42},
		})
	})

	t.Run("invalid", func(t *testing.T) {
		requireEvaluations(t, &Logarithmic{A: 1, D: 1, N: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDomain},
		})
		requireEvaluations(t, &Logarithmic{A: 1, D: 1, M: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
		requireEvaluations(t, &Logarithmic{A: 1, M: 1, N: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
		requireEvaluations(t, &Logarithmic{A: 1, D: 1, M: 1, N: 1, O: -3}, 0, []evaluation{
			{x: 2, expectedErr: ErrDomain},
		})
	})
}

func TestInvertedLogarithmicEvaluate(t *testing.T) {
	t.Run("decreasing", func(t *testing.T) {
		f := &InvertedLogarithmic{
			A: 1_000,
			D: 1,
			M: 1,
			N: 100,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 0, expectedErr: ErrDomain},
			{x: 1, expected: 4_605},
			{x: 10, expected: 2_302},
			{x: 100, expected: 0},
			{x: 200, expected: 0},
		})
	})

	t.Run("reduced emission", func(t *testing.T) {
		f := &InvertedLogarithmic{
			A:           10_000,
			D:           1,
			M:           1,
			N:           5_000,
			StartMoment: ptr[uint64](0),
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 1, expected: 85_171},
			{x: 2, expected: 78_240},
			{x: 1_000, expected: 16_094},
			{x: 4_000, expected: 2_231},
			{x: 5_000, expected: 0},
			{x: 6_000, expected: 0},
		})
	})

	t.Run("with base", func(t *testing.T) {
		f := &InvertedLogarithmic{
			A: 1_000,
			D: 1,
			M: 1,
			N: 100,
			B: 1_000,
		}
		requireEvaluations(t, f, 0, []evaluation{
			{x: 100, expected: 1_000},
			{x: 200, expected: 306},
		})
	})

	t.Run("invalid", func(t *testing.T) {
		requireEvaluations(t, &InvertedLogarithmic{A: 1, D: 1, N: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
		requireEvaluations(t, &InvertedLogarithmic{A: 1, M: 1, N: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDivideByZero},
		})
		requireEvaluations(t, &InvertedLogarithmic{A: 1, D: 1, M: 1}, 0, []evaluation{
			{x: 1, expectedErr: ErrDomain},
		})
	})
}

type recordingVisitor struct {
	visited []string
}

func (v *recordingVisitor) record(name string) error {
	v.visited = append(v.visited, name)
	return nil
}

func (v *recordingVisitor) FixedAmount(*FixedAmount) error { return v.record("fixed") }
func (v *recordingVisitor) Random(*Random) error { return v.record("random") }
func (v *recordingVisitor) StepDecreasingAmount(*StepDecreasingAmount) error {
	return v.record("step decreasing")
}
func (v *recordingVisitor) Stepwise(*Stepwise) error { return v.record("stepwise") }
func (v *recordingVisitor) Linear(*Linear) error { return v.record("linear") }
func (v *recordingVisitor) Polynomial(*Polynomial) error { return v.record("polynomial") }
func (v *recordingVisitor) Exponential(*Exponential) error { return v.record("exponential") }
func (v *recordingVisitor) Logarithmic(*Logarithmic) error { return v.record("logarithmic") }
func (v *recordingVisitor) InvertedLogarithmic(*InvertedLogarithmic) error {
	return v.record("inverted logarithmic")
}

func TestVisit(t *testing.T) {
	require := require.New(t)

	functions := []Function{
		&FixedAmount{},
		&Random{},
		&StepDecreasingAmount{},
		NewStepwise(nil),
		&Linear{},
		&Polynomial{},
		&Exponential{},
		&Logarithmic{},
		&InvertedLogarithmic{},
	}
	v := &recordingVisitor{}
	for _, f := range functions {
		require.NoError(f.Visit(v))
	}
	require.Equal([]string{
		"fixed",
		"random",
		"step decreasing",
		"stepwise",
		"linear",
		"polynomial",
		"exponential",
		"logarithmic",
		"inverted logarithmic",
	}, v.visited)
}

func TestString(t *testing.T) {
	tests := []struct {
		f        Function
		expected string
	}{
		{
			f:        &FixedAmount{Amount: 10},
			expected: "FixedAmount: 10 tokens per period",
		},
		{
			f:        &Random{Min: 1, Max: 2},
			expected: "Random: tokens in [1, 2] per period",
		},
		{
			f: NewStepwise(map[uint64]uint64{
				10: 5,
				0:  10,
			}),
			expected: "Stepwise emission: [Step 0 → 10 tokens], [Step 10 → 5 tokens]",
		},
		{
			f: &Linear{
				A:              -1,
				D:              10,
				StartingAmount: 100,
				MinValue:       ptr[uint64](50),
			},
			expected: "Linear: f(x) = -1 * (x - s) / 10 + 100, s = distribution start, min 50",
		},
		{
			f: &Exponential{
				A:           1,
				D:           2,
				M:           -3,
				N:           4,
				O:           5,
				StartMoment: ptr[uint64](6),
				B:           7,
				MaxValue:    ptr[uint64](8),
			},
			expected: "Exponential: f(x) = 1 * e^(-3 * (x - s + 5) / 4) / 2 + 7, s = 6, max 8",
		},
	}
	for _, test := range tests {
		t.Run(test.expected, func(t *testing.T) {
			require.Equal(t, test.expected, test.f.String())
		})
	}
}
