// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"errors"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	"github.com/Juneo-io/tokenemission/database"
	"github.com/Juneo-io/tokenemission/utils/logging"
)

const Name = "pebble"

var (
	_ database.Database = (*Database)(nil)

	DefaultConfig = Config{
		CacheSize:                   512 * 1024 * 1024,
		BytesPerSync:                512 * 1024,
		WALBytesPerSync:             0, // Default to no background syncing.
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * 1024 * 1024,
		MaxOpenFiles:                4096,
		MaxConcurrentCompactions:    1,
		Sync:                        true,
	}
)

type Config struct {
	CacheSize                   int64  `json:"cacheSize"`
	BytesPerSync                int    `json:"bytesPerSync"`
	WALBytesPerSync             int    `json:"walBytesPerSync"` // 0 means no background syncing
	MemTableStopWritesThreshold int    `json:"memTableStopWritesThreshold"`
	MemTableSize                int    `json:"memTableSize"`
	MaxOpenFiles                int    `json:"maxOpenFiles"`
	MaxConcurrentCompactions    int    `json:"maxConcurrentCompactions"`
	// Sync forces every write to be fsynced before returning.
	Sync bool `json:"sync"`
}

type Database struct {
	lock      sync.RWMutex
	pebbleDB  *pebble.DB
	closed    bool
	writeOpts *pebble.WriteOptions
}

// New returns a pebble database stored under [file].
func New(file string, cfg Config, log logging.Logger) (*Database, error) {
	opts := &pebble.Options{
		Cache:                       pebble.NewCache(cfg.CacheSize),
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.MaxConcurrentCompactions },
	}
	opts.Experimental.ReadSamplingMultiplier = -1 // Disable seek compaction
	defer opts.Cache.Unref()

	log.Info("opening pebble",
		zap.String("path", file),
		zap.Reflect("config", cfg),
	)
	return open(file, opts, cfg.Sync)
}

// NewMem returns a pebble database backed by an in-memory filesystem.
func NewMem() (*Database, error) {
	return open("", &pebble.Options{FS: vfs.NewMem()}, false)
}

func open(file string, opts *pebble.Options, syncWrites bool) (*Database, error) {
	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, err
	}
	writeOpts := pebble.NoSync
	if syncWrites {
		writeOpts = pebble.Sync
	}
	return &Database{
		pebbleDB:  db,
		writeOpts: writeOpts,
	}, nil
}

func (db *Database) Close() error {
	db.lock.Lock()
	defer db.lock.Unlock()

	if db.closed {
		return database.ErrClosed
	}
	db.closed = true
	return updateError(db.pebbleDB.Close())
}

func (db *Database) Has(key []byte) (bool, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return false, database.ErrClosed
	}

	_, closer, err := db.pebbleDB.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, updateError(err)
	}
	return true, closer.Close()
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}

	data, closer, err := db.pebbleDB.Get(key)
	if err != nil {
		return nil, updateError(err)
	}
	defer closer.Close()
	return slices.Clone(data), nil
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return updateError(db.pebbleDB.Set(key, value, db.writeOpts))
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return updateError(db.pebbleDB.Delete(key, db.writeOpts))
}

func updateError(err error) error {
	switch {
	case errors.Is(err, pebble.ErrClosed):
		return database.ErrClosed
	case errors.Is(err, pebble.ErrNotFound):
		return database.ErrNotFound
	default:
		return err
	}
}
