// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"fmt"

	"github.com/emberkit/ember/logx"
	"github.com/emberkit/ember/registry"
	"github.com/emberkit/ember/tree"
)

// Wrap returns the augmented variant of the given kind: constructing
// through the augmented kind registers identity, translates foreign
// attributes, and releases identity on destruction. Wrapping is
// idempotent: wrapping an already augmented kind returns it unchanged,
// and wrapping the same base kind twice returns the same augmented kind.
//
// If the kind's underlying type does not satisfy the [registry.Item]
// and [tree.Node] capability set, the kind cannot be augmented; the
// original kind is returned unchanged and the fallback is logged.
// Callers must treat both outcomes as valid and must not assume the
// augmented behavior is present.
func Wrap(k *Kind) *Kind {
	if k.injected {
		return k
	}
	if k.wrapped != nil {
		return k.wrapped
	}
	_, isItem := k.Instance.(registry.Item)
	_, isNode := k.Instance.(tree.Node)
	if !isItem || !isNode || k.register == nil {
		logx.Warn("wrap: kind cannot be augmented, using it as is", "kind", k.IDName, "type", k.Name)
		return k
	}
	w := &Kind{
		Name:     k.Name,
		IDName:   k.IDName,
		Instance: k.Instance,
		New:      k.New,
		ID:       k.ID,
		register: k.register,
		injected: true,
	}
	k.wrapped = w
	return w
}

// WrapAll replaces every registered kind with its augmented variant,
// leaving unwrappable kinds in place. It is called once at startup,
// after all kinds are registered.
func WrapAll() {
	for name, k := range Kinds {
		Kinds[name] = Wrap(k)
	}
}

// New is the construction entry point for a node kind. It constructs a
// node of the given kind on the given cursor's registry, translating the
// foreign construction options: parent and before references are resolved
// to live nodes and determine attachment, with no explicit reference
// deferring to implicit attachment under the cursor's last container; the
// node's identity is registered and noted on the cursor; the tag, if any,
// is bound; and the remaining options are applied as configuration
// attributes.
//
// An explicit before sibling determines both the parent and the position:
// the node is inserted before the sibling in the sibling's parent. A
// before sibling that has no parent, or that disagrees with an explicit
// parent, is a programmer error and fails construction before the node
// acquires identity.
//
// For a kind that could not be augmented (see [Wrap]), New performs
// plain construction only: the node is initialized and attached to an
// explicitly given parent node, with no registration or translation.
func (t *Translator) New(cur *registry.Cursor, k *Kind, opts *Options) (tree.Node, error) {
	if k == nil {
		return nil, fmt.Errorf("wrap: nil kind")
	}
	if cur == nil {
		return nil, fmt.Errorf("wrap: nil construction cursor")
	}
	n, ok := k.New().(tree.Node)
	if !ok {
		return nil, fmt.Errorf("wrap: kind %q does not construct a tree node", k.IDName)
	}
	tree.InitNode(n)
	if !k.injected {
		if opts != nil {
			if p, ok := opts.Parent.(tree.Node); ok {
				p.AsTree().AddChild(n)
			}
		}
		return n, nil
	}
	reg := cur.Registry()
	cons, cfg, err := t.Translate(reg, n, opts)
	if err != nil {
		return nil, err
	}
	// attachment: an explicit sibling determines both parent and
	// position, then an explicit parent, then the cursor's last container
	switch {
	case cons.Before != nil:
		bt := cons.Before.AsTree()
		if bt.Parent == nil {
			return nil, fmt.Errorf("wrap: before: %v has no parent", cons.Before)
		}
		if cons.Parent != nil && bt.Parent != cons.Parent {
			return nil, fmt.Errorf("wrap: before: %v is not a child of %v", cons.Before, cons.Parent)
		}
		bt.Parent.AsTree().InsertChildBefore(n, cons.Before)
	case cons.Parent != nil:
		cons.Parent.AsTree().AddChild(n)
	default:
		if lc := cur.LastContainer(); lc != nil {
			if pn, ok := lc.(tree.Node); ok {
				pn.AsTree().AddChild(n)
			}
		}
	}
	if err := k.register(reg, cur, n); err != nil {
		return nil, err
	}
	if opts != nil && opts.Tag != "" {
		if err := reg.BindTag(n.AsTree().UUID(), opts.Tag); err != nil {
			return nil, err
		}
	}
	t.apply(n, cfg)
	return n, nil
}

// Configure applies the same foreign attribute translation used at
// construction time to an existing node: parent and before references
// move the node, a tag rebinds the node's alias (or [Options.ClearTag]
// unbinds it), and the remaining options are applied as configuration
// attributes. The before/parent rules of [Translator.New] apply: a
// before sibling with no parent, or one disagreeing with an explicit
// parent, fails before the node is moved.
func (t *Translator) Configure(reg *registry.Registry, n tree.Node, opts *Options) error {
	cons, cfg, err := t.Translate(reg, n, opts)
	if err != nil {
		return err
	}
	switch {
	case cons.Before != nil:
		bt := cons.Before.AsTree()
		if bt.Parent == nil {
			return fmt.Errorf("wrap: before: %v has no parent", cons.Before)
		}
		if cons.Parent != nil && bt.Parent != cons.Parent {
			return fmt.Errorf("wrap: before: %v is not a child of %v", cons.Before, cons.Parent)
		}
		detach(n)
		bt.Parent.AsTree().InsertChildBefore(n, cons.Before)
	case cons.Parent != nil:
		detach(n)
		cons.Parent.AsTree().AddChild(n)
	}
	if opts != nil {
		if opts.Tag != "" {
			if err := reg.BindTag(n.AsTree().UUID(), opts.Tag); err != nil {
				return err
			}
		} else if opts.ClearTag {
			if err := reg.BindTag(n.AsTree().UUID(), ""); err != nil {
				return err
			}
		}
	}
	t.apply(n, cfg)
	return nil
}

// detach removes the node from its parent's children list without
// destroying it, in preparation for reattachment.
func detach(n tree.Node) {
	nt := n.AsTree()
	if nt.Parent == nil {
		return
	}
	pt := nt.Parent.AsTree()
	if idx := tree.IndexOf(pt.Children, n); idx >= 0 {
		pt.Children = append(pt.Children[:idx], pt.Children[idx+1:]...)
	}
	nt.Parent = nil
}

// Delete releases the identity of the given node and of all of its
// descendants, then deletes the node from its parent and destroys the
// subtree. Identifiers of nodes reclaimed by the runtime without an
// explicit Delete are released by the registry's cleanup path instead.
func Delete(reg *registry.Registry, n tree.Node) {
	n.AsTree().WalkDown(func(c tree.Node) bool {
		reg.Release(c.AsTree().UUID())
		return tree.Continue
	})
	n.AsTree().Delete()
}
