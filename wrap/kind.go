// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package wrap retrofits identity registration, foreign attribute
// translation, and lifecycle cleanup onto an open set of node kinds
// without requiring the kinds to cooperate. Node kinds are described by
// [Kind] descriptors; [Wrap] produces the augmented variant of a kind,
// and [Translator.New] is the construction entry point that layers the
// registry hooks around ordinary node construction.
package wrap

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"github.com/emberkit/ember/registry"
	"github.com/emberkit/ember/tree"
)

// Kind describes a registered node kind.
type Kind struct {

	// Name is the fully package-path-qualified name of the underlying
	// type (eg: github.com/emberkit/ember/tree/testdata.Button).
	Name string

	// IDName is the short, kind-registry-unique name used to look the
	// kind up (eg: button).
	IDName string

	// Instance is an instance of the underlying type, used to probe
	// its capabilities.
	Instance any

	// New returns a new uninitialized instance of the underlying type.
	New func() any

	// ID is the unique kind ID number.
	ID uint64

	// register stores a non-owning registry reference to a constructed
	// node. It is bound by [NewKind], which knows the concrete type that
	// weak references require.
	register func(r *registry.Registry, cur *registry.Cursor, n tree.Node) error

	// wrapped caches the augmented variant produced by [Wrap].
	wrapped *Kind

	// injected marks a kind produced by [Wrap].
	injected bool
}

func (k *Kind) String() string {
	return k.Name
}

var (
	// Kinds records all registered node kinds, keyed by [Kind.IDName].
	// Kinds are registered at startup; the map is not protected for
	// concurrent registration.
	Kinds = map[string]*Kind{}

	// kindIDCounter is an atomically incremented uint64 used
	// for assigning new [Kind.ID] numbers.
	kindIDCounter uint64
)

// AddKind adds a constructed [Kind] to the registry and returns it.
// This sets the ID. If a kind with the same IDName is already
// registered, it is returned unchanged instead.
func AddKind(k *Kind) *Kind {
	if old, has := Kinds[k.IDName]; has {
		return old
	}
	k.ID = atomic.AddUint64(&kindIDCounter, 1)
	Kinds[k.IDName] = k
	return k
}

// KindByName returns the kind registered under the given IDName,
// or nil if there is none.
func KindByName(name string) *Kind {
	return Kinds[name]
}

// NewKind constructs and registers a [Kind] for the given underlying
// type under the given IDName. The concrete type is captured here so
// that constructed nodes can be held weakly by the identity registry.
func NewKind[T any](idName string) *Kind {
	t := reflect.TypeFor[T]()
	name := t.String()
	if pp := t.PkgPath(); pp != "" {
		name = pp + "." + t.Name()
	}
	k := &Kind{
		Name:     name,
		IDName:   idName,
		Instance: new(T),
		New:      func() any { return new(T) },
		register: func(r *registry.Registry, cur *registry.Cursor, n tree.Node) error {
			ct, ok := any(n).(*T)
			if !ok {
				return fmt.Errorf("wrap: node %v is not a %v", n, name)
			}
			return registry.Register(r, cur, ct)
		},
	}
	return AddKind(k)
}
