// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the retained-mode item tree that the identity
// registry and capability injection layers operate on, centered on the
// core [Node] interface.
package tree

// Node is an interface that all tree nodes satisfy. The core functionality
// of a tree node is defined on [NodeBase], and all higher-level node types
// must embed it. This interface only contains the functionality that
// higher-level node types may need to override. You can call [Node.AsTree]
// to get the [NodeBase] of a Node and access the core tree functionality.
// All values that implement [Node] are pointer values.
type Node interface {

	// AsTree returns the [NodeBase] of this Node. Most core
	// tree functionality is implemented on [NodeBase].
	AsTree() *NodeBase

	// Init is called when the node is first initialized.
	// It is called before the node is added to the tree,
	// and it will be called only once in the lifetime of the node.
	// It does nothing by default, but it can be implemented by
	// higher-level types; it is the main place that kind flags
	// such as [NodeBase.CanHaveChildren] should be set.
	Init()

	// Destroy recursively deletes and destroys the node, all of its children,
	// and all of its children's children, etc. Node types can implement this
	// to do additional necessary destruction; if they do, they should call
	// [NodeBase.Destroy] at the end of their implementation.
	Destroy()
}

const (
	// Continue = true can be returned from tree iteration functions to continue
	// processing down the tree, as compared to Break = false which stops this branch.
	Continue = true

	// Break = false can be returned from tree iteration functions to stop processing
	// this branch of the tree.
	Break = false
)

// IsRoot returns whether the given node is the root node
// in its tree (it has no parent).
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root node of the given node's tree.
func Root(n Node) Node {
	if IsRoot(n) {
		return n
	}
	return Root(n.AsTree().Parent)
}

// InitNode initializes the node: it sets the node's [NodeBase.This] to the
// node itself, assigns the node's identifier from the toolkit counter, and
// calls [Node.Init]. It is a no-op if the node is already initialized.
// All nodes must be initialized before being added to a tree; the child
// helper functions on [NodeBase] do this automatically.
func InitNode(n Node) {
	nb := n.AsTree()
	if nb.This != nil {
		return
	}
	nb.This = n
	nb.uuid = NextUUID()
	nb.Show = true
	n.Init()
}

// SetParent just sets the parent of the given node to the given parent,
// without doing any tree management. It is used by the [NodeBase] child
// helper functions; you should typically not call it directly.
func SetParent(child Node, parent *NodeBase) {
	child.AsTree().Parent = parent.This
}
