// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package moment defines positions in consensus time. A Moment is tagged with
// the unit it is measured in and arithmetic is only defined between moments
// of the same unit.
package moment

import (
	"encoding/binary"
	"errors"
	"fmt"

	safemath "github.com/Juneo-io/tokenemission/utils/math"
)

// Len is the number of bytes in the serialized form of a Moment.
const Len = 1 + 8

var (
	ErrMismatchedMomentTypes   = errors.New("mismatched moment types")
	ErrInvalidDistributionStep = errors.New("invalid distribution step")
	ErrUnknownKind             = errors.New("unknown moment kind")
	errWrongLength             = errors.New("wrong moment length")
)

// Kind is the unit a Moment is measured in.
type Kind byte

const (
	// BlockBased moments are block heights.
	BlockBased Kind = iota
	// TimeBased moments are unix timestamps in milliseconds.
	TimeBased
	// EpochBased moments are epoch indices.
	EpochBased
)

func (k Kind) Valid() bool {
	return k <= EpochBased
}

func (k Kind) String() string {
	switch k {
	case BlockBased:
		return "block"
	case TimeBased:
		return "time"
	case EpochBased:
		return "epoch"
	default:
		return "unknown"
	}
}

type Moment struct {
	Kind  Kind
	Value uint64
}

func Block(height uint64) Moment {
	return Moment{Kind: BlockBased, Value: height}
}

func Time(timestampMs uint64) Moment {
	return Moment{Kind: TimeBased, Value: timestampMs}
}

func Epoch(index uint64) Moment {
	return Moment{Kind: EpochBased, Value: index}
}

// SameKind returns true if both moments are measured in the same unit.
func (m Moment) SameKind(other Moment) bool {
	return m.Kind == other.Kind
}

func (m Moment) checkKind(others ...Moment) error {
	for _, other := range others {
		if !m.SameKind(other) {
			return fmt.Errorf("%w: %s and %s", ErrMismatchedMomentTypes, m.Kind, other.Kind)
		}
	}
	return nil
}

// Compare returns -1, 0 or 1 if m is before, at or after other.
func (m Moment) Compare(other Moment) (int, error) {
	if err := m.checkKind(other); err != nil {
		return 0, err
	}
	switch {
	case m.Value < other.Value:
		return -1, nil
	case m.Value > other.Value:
		return 1, nil
	default:
		return 0, nil
	}
}

// DivideBy returns the index of the step that contains m.
func (m Moment) DivideBy(step Moment) (Moment, error) {
	if err := m.checkKind(step); err != nil {
		return Moment{}, err
	}
	if step.Value == 0 {
		return Moment{}, ErrInvalidDistributionStep
	}
	return Moment{Kind: m.Kind, Value: m.Value / step.Value}, nil
}

func (m Moment) Increment() (Moment, error) {
	value, err := safemath.Add64(m.Value, 1)
	if err != nil {
		return Moment{}, fmt.Errorf("incrementing %s: %w", m, err)
	}
	return Moment{Kind: m.Kind, Value: value}, nil
}

func (m Moment) Add(other Moment) (Moment, error) {
	if err := m.checkKind(other); err != nil {
		return Moment{}, err
	}
	value, err := safemath.Add64(m.Value, other.Value)
	if err != nil {
		return Moment{}, fmt.Errorf("adding %s to %s: %w", other, m, err)
	}
	return Moment{Kind: m.Kind, Value: value}, nil
}

func (m Moment) Mul(factor uint64) (Moment, error) {
	value, err := safemath.Mul64(m.Value, factor)
	if err != nil {
		return Moment{}, fmt.Errorf("multiplying %s by %d: %w", m, factor, err)
	}
	return Moment{Kind: m.Kind, Value: value}, nil
}

// CycleStart returns the greatest multiple of step that is not after m.
func (m Moment) CycleStart(step Moment) (Moment, error) {
	if err := m.checkKind(step); err != nil {
		return Moment{}, err
	}
	if step.Value == 0 {
		return Moment{}, ErrInvalidDistributionStep
	}
	return Moment{Kind: m.Kind, Value: m.Value - m.Value%step.Value}, nil
}

// StepsTill returns the number of multiples of step between m and end.
//
// If m is not before end, 0 is returned.
func (m Moment) StepsTill(end Moment, step Moment, startInclusive bool, endInclusive bool) (uint64, error) {
	if err := m.checkKind(end, step); err != nil {
		return 0, err
	}
	if step.Value == 0 {
		return 0, ErrInvalidDistributionStep
	}
	if m.Value >= end.Value {
		return 0, nil
	}

	// Multiples in (m, end]
	steps := end.Value/step.Value - m.Value/step.Value
	if !endInclusive && end.Value%step.Value == 0 {
		steps--
	}
	if startInclusive && m.Value%step.Value == 0 {
		var err error
		steps, err = safemath.Add64(steps, 1)
		if err != nil {
			return 0, fmt.Errorf("counting steps from %s to %s: %w", m, end, err)
		}
	}
	return steps, nil
}

// Bytes returns the kind byte followed by the big endian value.
func (m Moment) Bytes() []byte {
	b := make([]byte, Len)
	b[0] = byte(m.Kind)
	binary.BigEndian.PutUint64(b[1:], m.Value)
	return b
}

// Parse is the inverse of Moment.Bytes()
func Parse(b []byte) (Moment, error) {
	if len(b) != Len {
		return Moment{}, fmt.Errorf("%w: expected %d bytes but got %d", errWrongLength, Len, len(b))
	}
	kind := Kind(b[0])
	if !kind.Valid() {
		return Moment{}, fmt.Errorf("%w: %d", ErrUnknownKind, b[0])
	}
	return Moment{
		Kind:  kind,
		Value: binary.BigEndian.Uint64(b[1:]),
	}, nil
}

func (m Moment) String() string {
	switch m.Kind {
	case TimeBased:
		return fmt.Sprintf("time %dms", m.Value)
	default:
		return fmt.Sprintf("%s %d", m.Kind, m.Value)
	}
}
