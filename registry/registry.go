// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package registry maps opaque numeric identifiers and user-chosen string
// tags to live tree items, holding only non-owning references. It provides
// the lookup primitive used wherever foreign code accepts "an id or a tag
// or an item", and the per-goroutine construction [Cursor] that supports
// implicit "attach to whatever was built last" tree construction.
package registry

import (
	"fmt"
	"runtime"
	"sync"
	"weak"
)

// Item is the capability set that everything registrable must expose:
// a stable numeric identifier, a container query, and generic attribute
// setting by name. tree.NodeBase and tree.Value both satisfy it.
type Item interface {

	// UUID returns the stable numeric identifier of the item,
	// unique for the item's lifetime.
	UUID() uint64

	// Container reports whether the item can hold child items.
	Container() bool

	// SetAttribute sets the named attribute to the given value.
	SetAttribute(name string, value any) error
}

// itemRef is a non-owning reference to a registered item.
// It returns nil once the item has been reclaimed by the runtime.
type itemRef func() Item

// Registry owns the mapping from numeric identifiers to live items and
// from string tags to identifiers. References to items are weak: the
// registry is never an ownership path, so dropping an item from its tree
// is sufficient to eventually make it unresolvable with no further
// registry interaction.
//
// Mutating operations ([Register], [Registry.BindTag], [Registry.Release])
// are serialized against each other and against concurrent reads
// ([Registry.Resolve], [Registry.TagOf]), so resolution is safe from
// other goroutines while construction proceeds.
type Registry struct {
	mu        sync.RWMutex
	items     map[uint64]itemRef
	uuidToTag map[uint64]string
	tagToUUID map[string]uint64
}

// New returns a new empty [Registry].
func New() *Registry {
	return &Registry{
		items:     map[uint64]itemRef{},
		uuidToTag: map[uint64]string{},
		tagToUUID: map[string]uint64{},
	}
}

// Register stores a non-owning reference to the given item under its
// identifier and notes the creation on the given cursor (which may be nil
// for items constructed outside of any declarative block). The item must
// be passed as its concrete pointer type so that the reference can be
// weak. A cleanup is attached so that an item reclaimed by the runtime
// without an explicit release still has its identifier and tag entries
// removed eventually.
//
// The identifier must not be currently live in the registry; identifiers
// are toolkit-assigned and unique, so a live duplicate is a programmer
// error and is reported as one.
func Register[T any](r *Registry, cur *Cursor, it *T) error {
	itm, ok := any(it).(Item)
	if !ok {
		return fmt.Errorf("registry: %T does not implement the item capability set", it)
	}
	id := itm.UUID()
	container := itm.Container()
	wp := weak.Make(it)
	ref := func() Item {
		if p := wp.Value(); p != nil {
			return any(p).(Item)
		}
		return nil
	}
	r.mu.Lock()
	if old, ok := r.items[id]; ok && old() != nil {
		r.mu.Unlock()
		return fmt.Errorf("registry: identifier %d is already registered", id)
	}
	r.items[id] = ref
	r.mu.Unlock()
	runtime.AddCleanup(it, r.releaseCollected, id)
	if cur != nil {
		cur.noteCreated(id, container)
	}
	return nil
}

// releaseCollected is the AddCleanup target for items reclaimed by the
// runtime; it must never fail, even during process teardown.
func (r *Registry) releaseCollected(id uint64) {
	r.Release(id)
}

// BindTag binds the given tag to the given identifier. An empty tag
// unbinds any tag currently bound to the identifier. Binding fails with
// [AliasCollisionError] if the tag is already bound to a different
// identifier, leaving the registry unchanged; rebinding an identifier to
// the tag it already owns is a no-op; binding a new tag to an identifier
// releases the identifier's previous tag first.
func (r *Registry) BindTag(id uint64, tag string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.uuidToTag[id]
	if old == tag {
		return nil
	}
	if tag != "" {
		if bound, ok := r.tagToUUID[tag]; ok && bound != id {
			return &AliasCollisionError{Tag: tag, Bound: bound, ID: id}
		}
	}
	if old != "" {
		delete(r.tagToUUID, old)
		delete(r.uuidToTag, id)
	}
	if tag != "" {
		r.uuidToTag[id] = tag
		r.tagToUUID[tag] = id
	}
	return nil
}

// Release removes the identifier's item entry and any tag bound to it.
// It is idempotent and never fails: releasing an identifier that is
// partially or fully absent, or releasing during teardown when the
// backing maps are already gone, is a no-op. Release legitimately races
// with runtime reclamation of items, so every removal is guarded.
func (r *Registry) Release(id uint64) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.items == nil || r.uuidToTag == nil || r.tagToUUID == nil {
		return
	}
	delete(r.items, id)
	if tag, ok := r.uuidToTag[id]; ok {
		delete(r.uuidToTag, id)
		delete(r.tagToUUID, tag)
	}
}

// Resolve retrieves the item associated with the given key, which is one
// of: a live [Item] (returned as is), a string tag, or a numeric
// identifier (int, int64, uint, or uint64). It fails with
// [NotFoundError] if the tag or identifier does not currently resolve to
// a live item; an identifier whose item has been reclaimed resolves the
// same as an absent one. Any other key type fails with
// [InvalidKeyTypeError].
func (r *Registry) Resolve(key any) (Item, error) {
	if it, ok := key.(Item); ok {
		return it, nil
	}
	var id uint64
	switch k := key.(type) {
	case string:
		r.mu.RLock()
		tid, ok := r.tagToUUID[k]
		r.mu.RUnlock()
		if !ok {
			return nil, &NotFoundError{Key: key}
		}
		id = tid
	case int:
		id = uint64(k)
	case int64:
		id = uint64(k)
	case uint:
		id = uint64(k)
	case uint64:
		id = k
	default:
		return nil, &InvalidKeyTypeError{Key: key}
	}
	r.mu.RLock()
	ref := r.items[id]
	r.mu.RUnlock()
	if ref == nil {
		return nil, &NotFoundError{Key: key}
	}
	it := ref()
	if it == nil {
		return nil, &NotFoundError{Key: key}
	}
	return it, nil
}

// TagOf returns the tag bound to the given item's identifier,
// or "" if it has none.
func (r *Registry) TagOf(it Item) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.uuidToTag[it.UUID()]
}

// NumItems returns the number of identifier entries currently held.
// Entries whose items have been reclaimed but not yet cleaned up
// are included.
func (r *Registry) NumItems() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}
