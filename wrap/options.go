// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"fmt"
	"maps"
	"reflect"
	"sync"

	"github.com/emberkit/ember/logx"
	"github.com/emberkit/ember/registry"
	"github.com/emberkit/ember/tree"
)

// Options is the foreign keyword vocabulary accepted by [Translator.New]
// and [Translator.Configure]. The typed fields cover the recognized keys;
// everything else goes in Attrs and is applied by name through generic
// attribute setting.
type Options struct {

	// Tag is a string alias to bind to the node. Empty means no tag.
	Tag string

	// ClearTag unbinds the node's current tag in
	// [Translator.Configure]. It applies only when Tag is empty;
	// a non-empty Tag rebinds instead.
	ClearTag bool

	// Parent is the node to attach to: a registered numeric identifier,
	// a tag, or a live item. Nil or 0 defers to implicit attachment
	// under the construction cursor's last container.
	Parent any

	// Before is the sibling to insert the node before, given the same
	// way as Parent. Nil or 0 means append.
	Before any

	// Source is the item whose shareable backing value this node should
	// display, given the same way as Parent. Nil or a non-positive
	// integer means the node keeps its own value.
	Source any

	// Pos is the (x, y) position of the node: relative to its window for
	// ordinary kinds, or relative to the viewport for top-level kinds.
	// Empty means no explicit position.
	Pos []float32

	// Callback is the node's callback; it is renamed to the native
	// plural callbacks attribute.
	Callback func(n tree.Node)

	// Attrs holds the remaining foreign attributes, applied by name.
	Attrs map[string]any
}

// Construction holds the translated arguments that feed construction
// itself rather than post-construction configuration.
type Construction struct {

	// Parent is the resolved explicit parent, or nil to defer
	// to implicit attachment.
	Parent tree.Node

	// Before is the resolved sibling to insert before, or nil.
	Before tree.Node
}

// Translator normalizes the foreign keyword vocabulary into native
// attribute names and values, with a defaults-tolerant fallback for
// unrecognized attributes: an attribute that fails to apply is dropped
// silently when its value equals the documented default, and reported
// once per attribute/value otherwise. A Translator is safe for use from
// multiple goroutines.
type Translator struct {

	// Defaults is the documented default value table consulted by the
	// fallback policy. It defaults to [DefaultAttrs] and can be extended
	// or loaded from TOML with [ReadDefaults].
	Defaults Defaults

	mu     sync.Mutex
	warned map[string]bool
}

// NewTranslator returns a [Translator] with the standard defaults table.
func NewTranslator() *Translator {
	return &Translator{Defaults: DefaultAttrs(), warned: map[string]bool{}}
}

// Translate resolves the recognized foreign keys of opts against the
// given registry and splits them into construction arguments and
// configuration attributes for the given node. Reference resolution
// errors (unknown tags or identifiers, invalid key types) are returned
// to the caller. A nil opts translates to nothing.
func (t *Translator) Translate(reg *registry.Registry, n tree.Node, opts *Options) (Construction, map[string]any, error) {
	var cons Construction
	cfg := map[string]any{}
	if opts == nil {
		return cons, cfg, nil
	}
	maps.Copy(cfg, opts.Attrs)

	p, err := resolveNodeRef(reg, opts.Parent)
	if err != nil {
		return cons, nil, fmt.Errorf("parent: %w", err)
	}
	cons.Parent = p

	b, err := resolveNodeRef(reg, opts.Before)
	if err != nil {
		return cons, nil, fmt.Errorf("before: %w", err)
	}
	cons.Before = b

	if src := opts.Source; !emptySourceRef(src) {
		it, err := reg.Resolve(src)
		if err != nil {
			return cons, nil, fmt.Errorf("source: %w", err)
		}
		sv, ok := it.(interface{ SharedValue() *tree.Value })
		if !ok {
			return cons, nil, fmt.Errorf("source: %v has no shareable value", src)
		}
		cfg["value"] = sv.SharedValue()
	}

	if len(opts.Pos) == 2 {
		pos := [2]float32{opts.Pos[0], opts.Pos[1]}
		if n != nil && n.AsTree().TopLevel {
			cfg["pos_to_viewport"] = pos
		} else {
			cfg["pos_to_window"] = pos
		}
	}

	if opts.Callback != nil {
		cfg["callbacks"] = opts.Callback
	}
	return cons, cfg, nil
}

// resolveNodeRef resolves a parent/before style reference into a live
// tree node. Nil and the zero identifier mean "not given".
func resolveNodeRef(reg *registry.Registry, key any) (tree.Node, error) {
	if emptyNodeRef(key) {
		return nil, nil
	}
	it, err := reg.Resolve(key)
	if err != nil {
		return nil, err
	}
	n, ok := it.(tree.Node)
	if !ok {
		return nil, fmt.Errorf("%v does not refer to a tree node", key)
	}
	return n, nil
}

func emptyNodeRef(key any) bool {
	switch k := key.(type) {
	case nil:
		return true
	case int:
		return k == 0
	case int64:
		return k == 0
	case uint:
		return k == 0
	case uint64:
		return k == 0
	}
	return false
}

// emptySourceRef reports whether a source reference means "no source":
// nil, or any non-positive integer.
func emptySourceRef(key any) bool {
	switch k := key.(type) {
	case nil:
		return true
	case int:
		return k <= 0
	case int64:
		return k <= 0
	case uint:
		return k == 0
	case uint64:
		return k == 0
	}
	return false
}

// orderedAttrs are applied before all other configuration attributes:
// the display format affects the rendered extent, so it must be in
// place before any explicit size.
var orderedAttrs = []string{"format", "size"}

// apply sets the translated configuration attributes on the node, the
// order-sensitive ones first and the rest in any order. Attributes that
// fail to apply never abort configuration: they are dropped silently
// when the value equals the documented default for that attribute, and
// reported once per attribute/value otherwise. This keeps one generic
// configure entry point usable across a heterogeneous set of node kinds.
func (t *Translator) apply(n tree.Node, cfg map[string]any) {
	for _, ord := range orderedAttrs {
		for k, v := range cfg {
			if tree.AttrFold(k) != ord {
				continue
			}
			t.applyOne(n, k, v)
			delete(cfg, k)
		}
	}
	for k, v := range cfg {
		t.applyOne(n, k, v)
	}
}

func (t *Translator) applyOne(n tree.Node, name string, value any) {
	err := n.AsTree().SetAttribute(name, value)
	if err == nil {
		return
	}
	if def, ok := t.Defaults.Lookup(name); ok && reflect.DeepEqual(value, def) {
		return
	}
	key := fmt.Sprintf("%s=%v", name, value)
	t.mu.Lock()
	seen := t.warned[key]
	t.warned[key] = true
	t.mu.Unlock()
	if !seen {
		logx.Warn("wrap: unhandled configure attribute", "node", n.AsTree().String(), "attr", name, "value", value)
	}
}
