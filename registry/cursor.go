// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package registry

// Cursor tracks the most recently constructed item and container for one
// constructing goroutine. It supports the declarative construction style
// where a block of code builds several items and later, context-free code
// (a tooltip helper, for example) needs to find the most recent item or
// container without an explicit reference.
//
// A Cursor is deliberately not shared: each constructing goroutine creates
// its own with [Registry.NewCursor], so goroutines constructing
// concurrently never observe each other's "last created" values. A Cursor
// must not be used from multiple goroutines at once.
type Cursor struct {
	reg           *Registry
	lastItem      uint64
	lastContainer uint64
}

// NewCursor returns a new construction cursor for this registry,
// for use by a single constructing goroutine.
func (r *Registry) NewCursor() *Cursor {
	return &Cursor{reg: r}
}

// Registry returns the registry this cursor resolves through.
func (c *Cursor) Registry() *Registry {
	return c.reg
}

// noteCreated records a successful construction: the identifier becomes
// the last item, and the last container as well if it can hold children.
func (c *Cursor) noteCreated(id uint64, container bool) {
	c.lastItem = id
	if container {
		c.lastContainer = id
	}
}

// LastItem returns the most recently constructed item on this cursor,
// or nil if none has been constructed or the last one no longer resolves.
func (c *Cursor) LastItem() Item {
	return c.live(c.lastItem)
}

// LastContainer returns the most recently constructed container on this
// cursor, or nil if none has been constructed or the last one no longer
// resolves.
func (c *Cursor) LastContainer() Item {
	return c.live(c.lastContainer)
}

// SetLast explicitly resets what "last created" refers to, for constructs
// that must redirect implicit attachment.
func (c *Cursor) SetLast(it Item) {
	c.noteCreated(it.UUID(), it.Container())
}

func (c *Cursor) live(id uint64) Item {
	if id == 0 {
		return nil
	}
	it, err := c.reg.Resolve(id)
	if err != nil {
		return nil
	}
	return it
}
