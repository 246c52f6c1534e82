// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import "errors"

// GetOptional returns the value stored at [key], or nil and false if [key]
// isn't present.
func GetOptional(db KeyValueReader, key []byte) ([]byte, bool, error) {
	value, err := db.Get(key)
	if errors.Is(err, ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}
