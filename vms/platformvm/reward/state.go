// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"errors"
	"fmt"

	"github.com/Juneo-io/tokenemission/database"
	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"
)

const (
	perpetualPrefix byte = iota
	preProgrammedPrefix
)

const keyLen = 1 + 2*ids.IDLen

var errUnexpectedKind = errors.New("unexpected moment kind")

var _ State = (*state)(nil)

// State stores the last moment every identity was paid up to.
type State interface {
	GetPerpetualLastPaid(tokenID ids.ID, identity ids.ID) (moment.Moment, bool, error)
	SetPerpetualLastPaid(tokenID ids.ID, identity ids.ID, lastPaid moment.Moment) error

	GetPreProgrammedLastPaid(tokenID ids.ID, identity ids.ID) (uint64, bool, error)
	SetPreProgrammedLastPaid(tokenID ids.ID, identity ids.ID, timestampMs uint64) error
}

type state struct {
	db database.KeyValueReaderWriter
}

func NewState(db database.KeyValueReaderWriter) State {
	return &state{db: db}
}

func (s *state) GetPerpetualLastPaid(tokenID ids.ID, identity ids.ID) (moment.Moment, bool, error) {
	return s.get(key(perpetualPrefix, tokenID, identity))
}

func (s *state) SetPerpetualLastPaid(tokenID ids.ID, identity ids.ID, lastPaid moment.Moment) error {
	return s.db.Put(key(perpetualPrefix, tokenID, identity), lastPaid.Bytes())
}

func (s *state) GetPreProgrammedLastPaid(tokenID ids.ID, identity ids.ID) (uint64, bool, error) {
	lastPaid, found, err := s.get(key(preProgrammedPrefix, tokenID, identity))
	if err != nil || !found {
		return 0, false, err
	}
	if lastPaid.Kind != moment.TimeBased {
		return 0, false, fmt.Errorf("%w: pre-programmed payment at %s", errUnexpectedKind, lastPaid)
	}
	return lastPaid.Value, true, nil
}

func (s *state) SetPreProgrammedLastPaid(tokenID ids.ID, identity ids.ID, timestampMs uint64) error {
	return s.db.Put(key(preProgrammedPrefix, tokenID, identity), moment.Time(timestampMs).Bytes())
}

func (s *state) get(key []byte) (moment.Moment, bool, error) {
	b, found, err := database.GetOptional(s.db, key)
	if err != nil || !found {
		return moment.Moment{}, false, err
	}
	m, err := moment.Parse(b)
	return m, err == nil, err
}

func key(prefix byte, tokenID ids.ID, identity ids.ID) []byte {
	k := make([]byte, keyLen)
	k[0] = prefix
	copy(k[1:], tokenID[:])
	copy(k[1+ids.IDLen:], identity[:])
	return k
}
