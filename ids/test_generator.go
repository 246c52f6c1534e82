// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ids

import "sync/atomic"

var offset = uint64(0)

// GenerateTestID returns a new ID that should only be used for testing
func GenerateTestID() ID {
	return Empty.prefixCounter(atomic.AddUint64(&offset, 1))
}

func (id ID) prefixCounter(counter uint64) ID {
	newID := id
	for i := 0; i < 8; i++ {
		newID[i] = byte(counter >> (56 - 8*i))
	}
	return newID
}
