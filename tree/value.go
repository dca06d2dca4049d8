// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"sync"
)

// Value is a shareable backing value for nodes. Multiple nodes can hold
// the same *Value, decoupling the displayed state from any one node: the
// foreign "source" construction argument resolves to another node and
// substitutes that node's Value for the new node's. A Value carries its
// own identifier so that it can pass through registry resolution the same
// way a node does.
type Value struct {
	mu   sync.RWMutex
	uuid uint64
	data any
}

// NewValue returns a new [Value] holding the given data.
func NewValue(data any) *Value {
	return &Value{uuid: NextUUID(), data: data}
}

// UUID returns the stable numeric identifier of this value.
func (v *Value) UUID() uint64 {
	return v.uuid
}

// Container reports false: values never hold children.
func (v *Value) Container() bool {
	return false
}

// Get returns the current data.
func (v *Value) Get() any {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.data
}

// Set replaces the current data.
func (v *Value) Set(data any) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.data = data
}

// SharedValue returns the value itself, so a Value resolved through the
// registry can stand in for a node's backing value directly.
func (v *Value) SharedValue() *Value {
	return v
}

// SetAttribute implements generic attribute setting for values.
// The only settable attribute of a value is "value", its data.
func (v *Value) SetAttribute(name string, value any) error {
	if AttrFold(name) != "value" {
		return fmt.Errorf("tree.Value: no attribute %q", name)
	}
	v.Set(value)
	return nil
}
