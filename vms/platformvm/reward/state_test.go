// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reward

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Juneo-io/tokenemission/database"
	"github.com/Juneo-io/tokenemission/database/leveldb"
	"github.com/Juneo-io/tokenemission/database/memdb"
	"github.com/Juneo-io/tokenemission/database/pebble"
	"github.com/Juneo-io/tokenemission/ids"
	"github.com/Juneo-io/tokenemission/utils/logging"
	"github.com/Juneo-io/tokenemission/vms/platformvm/reward/moment"
)

func TestStatePerpetualLastPaid(t *testing.T) {
	require := require.New(t)

	s := NewState(memdb.New())
	tokenID := ids.GenerateTestID()
	alice := ids.GenerateTestID()
	bob := ids.GenerateTestID()

	_, found, err := s.GetPerpetualLastPaid(tokenID, alice)
	require.NoError(err)
	require.False(found)

	require.NoError(s.SetPerpetualLastPaid(tokenID, alice, moment.Epoch(12)))
	require.NoError(s.SetPerpetualLastPaid(tokenID, bob, moment.Block(40)))

	lastPaid, found, err := s.GetPerpetualLastPaid(tokenID, alice)
	require.NoError(err)
	require.True(found)
	require.Equal(moment.Epoch(12), lastPaid)

	lastPaid, found, err = s.GetPerpetualLastPaid(tokenID, bob)
	require.NoError(err)
	require.True(found)
	require.Equal(moment.Block(40), lastPaid)

	_, found, err = s.GetPerpetualLastPaid(ids.GenerateTestID(), alice)
	require.NoError(err)
	require.False(found)
}

func TestStatePreProgrammedLastPaid(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := NewState(db)
	tokenID := ids.GenerateTestID()
	alice := ids.GenerateTestID()

	_, found, err := s.GetPreProgrammedLastPaid(tokenID, alice)
	require.NoError(err)
	require.False(found)

	require.NoError(s.SetPreProgrammedLastPaid(tokenID, alice, 1_700_000_000_000))
	lastPaid, found, err := s.GetPreProgrammedLastPaid(tokenID, alice)
	require.NoError(err)
	require.True(found)
	require.Equal(uint64(1_700_000_000_000), lastPaid)

	require.NoError(db.Put(key(preProgrammedPrefix, tokenID, alice), moment.Block(1).Bytes()))
	_, _, err = s.GetPreProgrammedLastPaid(tokenID, alice)
	require.ErrorIs(err, errUnexpectedKind)
}

func TestStateCorruptValue(t *testing.T) {
	require := require.New(t)

	db := memdb.New()
	s := NewState(db)
	tokenID := ids.GenerateTestID()
	alice := ids.GenerateTestID()

	require.NoError(db.Put(key(perpetualPrefix, tokenID, alice), append([]byte{9}, make([]byte, moment.Len-1)...)))
	_, found, err := s.GetPerpetualLastPaid(tokenID, alice)
	require.ErrorIs(err, moment.ErrUnknownKind)
	require.False(found)
}

func TestStateSurvivesRestart(t *testing.T) {
	tests := []struct {
		name string
		open func(dir string) (database.Database, error)
	}{
		{
			name: "leveldb",
			open: func(dir string) (database.Database, error) {
				return leveldb.New(dir, logging.NoLog{})
			},
		},
		{
			name: "pebble",
			open: func(dir string) (database.Database, error) {
				return pebble.New(dir, pebble.DefaultConfig, logging.NoLog{})
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			dir := t.TempDir()
			tokenID := ids.GenerateTestID()
			evonode := ids.GenerateTestID()

			db, err := test.open(dir)
			require.NoError(err)
			require.NoError(NewState(db).SetPerpetualLastPaid(tokenID, evonode, moment.Epoch(42)))
			require.NoError(NewState(db).SetPreProgrammedLastPaid(tokenID, evonode, 5_000))
			require.NoError(db.Close())

			db, err = test.open(dir)
			require.NoError(err)
			s := NewState(db)

			lastPaid, found, err := s.GetPerpetualLastPaid(tokenID, evonode)
			require.NoError(err)
			require.True(found)
			require.Equal(moment.Epoch(42), lastPaid)

			lastPaidMs, found, err := s.GetPreProgrammedLastPaid(tokenID, evonode)
			require.NoError(err)
			require.True(found)
			require.Equal(uint64(5_000), lastPaidMs)
			require.NoError(db.Close())
		})
	}
}
