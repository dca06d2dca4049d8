// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "sync/atomic"

// ReservedUUIDs is the top of the identifier range reserved for
// built-in toolkit handles (the invalid identifier 0, the application
// handle, and the standard tool windows). [NextUUID] never returns
// an identifier in this range.
const ReservedUUIDs = 20

// InvalidUUID is the zero identifier, which never refers to a live node.
const InvalidUUID = 0

// uuidCounter is an atomically incremented uint64 used for assigning
// new node identifiers, seeded past the reserved range.
var uuidCounter uint64 = ReservedUUIDs

// NextUUID returns a new unique node identifier. Identifiers are
// process-unique and never reused for the lifetime of the process.
func NextUUID() uint64 {
	return atomic.AddUint64(&uuidCounter, 1)
}
