// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Juneo-io/tokenemission/database"
)

// Tests is a list of all database tests
var Tests = map[string]func(t *testing.T, db database.Database){
	"SimpleKeyValue":       TestSimpleKeyValue,
	"OverwriteKeyValue":    TestOverwriteKeyValue,
	"EmptyKey":             TestEmptyKey,
	"KeyEmptyValue":        TestKeyEmptyValue,
	"MemorySafetyDatabase": TestMemorySafetyDatabase,
	"GetOptional":          TestGetOptional,
	"Close":                TestClose,
}

// TestSimpleKeyValue tests to make sure that simple Put + Get + Delete + Has
// calls return the expected values.
func TestSimpleKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.Equal(database.ErrNotFound, err)

	require.NoError(db.Delete(key))
	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Delete(key))

	has, err = db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.Equal(database.ErrNotFound, err)

	require.NoError(db.Delete(key))
}

// TestOverwriteKeyValue tests to make sure that a Put on an existing key
// replaces the stored value.
func TestOverwriteKeyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value1 := []byte("world1")
	value2 := []byte("world2")

	require.NoError(db.Put(key, value1))
	require.NoError(db.Put(key, value2))

	gotValue, err := db.Get(key)
	require.NoError(err)
	require.Equal(value2, gotValue)
}

func TestEmptyKey(t *testing.T, db database.Database) {
	require := require.New(t)

	var (
		nilKey   = []byte(nil)
		emptyKey = []byte{}
		val1     = []byte("hi")
		val2     = []byte("hello")
	)

	// Test that nil key can be retrieved by empty key
	_, err := db.Get(nilKey)
	require.Equal(database.ErrNotFound, err)

	require.NoError(db.Put(nilKey, val1))

	value, err := db.Get(emptyKey)
	require.NoError(err)
	require.Equal(val1, value)

	// Test that empty key can be retrieved by nil key
	require.NoError(db.Put(emptyKey, val2))

	value, err = db.Get(nilKey)
	require.NoError(err)
	require.Equal(val2, value)
}

// TestKeyEmptyValue tests that a key with an empty value is still present.
func TestKeyEmptyValue(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	val := []byte(nil)

	_, err := db.Get(key)
	require.Equal(database.ErrNotFound, err)

	require.NoError(db.Put(key, val))

	value, err := db.Get(key)
	require.NoError(err)
	require.Empty(value)
}

// TestMemorySafetyDatabase ensures it is safe to modify a key after passing it
// to Database.Put and Database.Get.
func TestMemorySafetyDatabase(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("1key")
	keyCopy := []byte("1key")
	value := []byte("value")
	key2 := []byte("2key")
	value2 := []byte("value2")

	// Put both K/V pairs in the database
	require.NoError(db.Put(key, value))
	require.NoError(db.Put(key2, value2))

	// Get the value for [key]
	gotVal, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, gotVal)

	// Modify [key]; make sure the value we got before hasn't changed
	key[0] = key2[0]
	gotVal2, err := db.Get(key)
	require.NoError(err)
	require.Equal(value2, gotVal2)
	require.Equal(value, gotVal)

	// Reset [key] to its original value and make sure it's correct
	key[0] = keyCopy[0]
	gotVal, err = db.Get(key)
	require.NoError(err)
	require.Equal(value, gotVal)
}

func TestGetOptional(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("lastPaid")
	value := []byte{0x01, 0x02}

	_, ok, err := database.GetOptional(db, key)
	require.NoError(err)
	require.False(ok)

	require.NoError(db.Put(key, value))

	got, ok, err := database.GetOptional(db, key)
	require.NoError(err)
	require.True(ok)
	require.Equal(value, got)
}

// TestClose tests that operations after closing the database fail with
// ErrClosed.
func TestClose(t *testing.T, db database.Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	require.NoError(db.Close())

	_, err := db.Has(key)
	require.Equal(database.ErrClosed, err)

	_, err = db.Get(key)
	require.Equal(database.ErrClosed, err)

	require.Equal(database.ErrClosed, db.Put(key, value))
	require.Equal(database.ErrClosed, db.Delete(key))
	require.Equal(database.ErrClosed, db.Close())
}
