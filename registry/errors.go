// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

import "fmt"

// NotFoundError is returned by [Registry.Resolve] when a tag or numeric
// identifier does not currently resolve to a live item, including when
// the item has been reclaimed by the runtime.
type NotFoundError struct {

	// Key is the offending tag or identifier.
	Key any
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("registry: no item found with index %v", e.Key)
}

// AliasCollisionError is returned by [Registry.BindTag] when the tag is
// already bound to a different identifier. Tags are never silently
// rebound away from their current owner.
type AliasCollisionError struct {

	// Tag is the contested tag.
	Tag string

	// Bound is the identifier the tag is currently bound to.
	Bound uint64

	// ID is the identifier the failed bind was for.
	ID uint64
}

func (e *AliasCollisionError) Error() string {
	return fmt.Sprintf("registry: tag %q already in use by item %d", e.Tag, e.Bound)
}

// InvalidKeyTypeError is returned by [Registry.Resolve] when the key is
// neither a live item, a string tag, nor a numeric identifier.
type InvalidKeyTypeError struct {

	// Key is the offending key.
	Key any
}

func (e *InvalidKeyTypeError) Error() string {
	return fmt.Sprintf("registry: %T is an invalid index type", e.Key)
}
