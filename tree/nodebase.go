// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/jinzhu/copier"
)

// NodeBase implements the [Node] interface and provides the core
// functionality for the item tree. You must use NodeBase as an embedded
// struct in all higher-level node types.
//
// All nodes must be properly initialized by using [InitNode], one of the
// child helper functions ([NodeBase.AddChild], [NodeBase.InsertChild],
// [NodeBase.InsertChildBefore]), or [NodeBase.Clone]. This ensures that
// the [NodeBase.This] field is set correctly, the node has an identifier,
// and the [Node.Init] method is called.
type NodeBase struct {

	// Name is the name of this node, which is typically unique relative to
	// other children of the same parent. It can be used for finding and
	// serializing nodes. If not otherwise set, it defaults to the lowercase
	// type name of the node combined with its identifier.
	Name string `copier:"-"`

	// This is the value of this Node as its true underlying type. This allows
	// methods defined on base types to call methods defined on higher-level
	// types. This is set to nil when the node is destroyed.
	This Node `copier:"-" json:"-"`

	// Parent is the parent of this node, which is set automatically when this
	// node is added as a child of a parent. Nodes can only have one parent at
	// a time, and the parent owns the node: the parent to child references are
	// the only strong references keeping a tree alive.
	Parent Node `copier:"-" json:"-"`

	// Children is the list of children of this node. All of them are set to
	// have this node as their parent. Use the child helper functions when
	// applicable so that everything is updated properly.
	Children []Node `copier:"-" json:",omitempty"`

	// CanHaveChildren is whether this node is a container kind, capable of
	// holding child nodes, as opposed to a leaf. Kind types set this in
	// their [Node.Init] method.
	CanHaveChildren bool

	// TopLevel is whether this node is a window kind positioned in viewport
	// space rather than in window space. The attribute translation layer
	// uses it to pick the coordinate space for position attributes.
	TopLevel bool

	// Label is the display label of the node.
	Label string

	// Show is whether the node is shown. It defaults to true.
	Show bool

	// PosToWindow is the position of the node relative to its containing
	// window, if explicitly set.
	PosToWindow [2]float32

	// PosToViewport is the position of the node relative to the viewport,
	// used for [NodeBase.TopLevel] kinds.
	PosToViewport [2]float32

	// Callbacks are the callback functions invoked by the host toolkit's
	// event dispatch for this node. The attribute translation layer renames
	// the foreign singular "callback" key to this attribute.
	Callbacks []func(n Node) `copier:"-" json:"-"`

	// Value is the shareable backing value displayed by this node, if any.
	// Multiple nodes may share one Value; see [NodeBase.SharedValue].
	Value *Value `copier:"-" json:"-"`

	// uuid is the stable numeric identifier assigned at initialization.
	uuid uint64

	// index is the last value of our index, which is used as a starting
	// point for finding us in our parent next time. It is not guaranteed
	// to be accurate; use the [NodeBase.IndexInParent] method.
	index int
}

// NewNodeBase returns a new initialized [NodeBase].
func NewNodeBase() *NodeBase {
	n := &NodeBase{}
	InitNode(n)
	return n
}

// String implements the [fmt.Stringer] interface by returning the path of the node.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

// AsTree returns the [NodeBase] for this Node.
func (n *NodeBase) AsTree() *NodeBase {
	return n
}

// UUID returns the stable numeric identifier assigned to this node by
// [InitNode]. It is unique for the lifetime of the process.
func (n *NodeBase) UUID() uint64 {
	return n.uuid
}

// Container reports whether this node is a container kind, capable of
// holding child nodes.
func (n *NodeBase) Container() bool {
	return n.CanHaveChildren
}

// SharedValue returns the shareable backing [Value] of this node, creating
// an empty one if the node does not have one yet. Assign the result to
// another node's Value attribute to have both display one backing value.
func (n *NodeBase) SharedValue() *Value {
	if n.Value == nil {
		n.Value = NewValue(nil)
	}
	return n.Value
}

// NewInstance returns a new, uninitialized instance of this node's type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// Parents:

// IndexInParent returns our index within our parent node. It caches the
// last value and uses that as a starting point for the search so subsequent
// calls are typically quite fast. Returns -1 if we don't have a parent.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	idx := IndexOf(n.Parent.AsTree().Children, n.This)
	n.index = idx
	return idx
}

// Children:

// HasChildren returns whether this node has any children.
func (n *NodeBase) HasChildren() bool {
	return len(n.Children) > 0
}

// NumChildren returns the number of children this node has.
func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child of this node at the given index and returns nil if
// the index is out of range.
func (n *NodeBase) Child(i int) Node {
	if i >= len(n.Children) || i < 0 {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first child that has the given name, and nil
// if no such child is found.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(IndexByName(n.Children, name))
}

// Paths:

// EscapePathName returns a name that replaces any / with \\
func EscapePathName(name string) string {
	return strings.ReplaceAll(name, "/", `\\`)
}

// UnescapePathName returns a name that replaces any \\ with /
func UnescapePathName(name string) string {
	return strings.ReplaceAll(name, `\\`, "/")
}

// Path returns the path to this node from the tree root,
// using [NodeBase.Name]s separated by / delimiters. Any
// existing / characters in names are escaped to \\
func (n *NodeBase) Path() string {
	if n.Parent != nil {
		return n.Parent.AsTree().Path() + "/" + EscapePathName(n.Name)
	}
	return "/" + EscapePathName(n.Name)
}

// FindPath returns the node at the given path from this node.
// FindPath only works correctly when names are unique.
// It returns nil if no node is found at the given path.
func (n *NodeBase) FindPath(path string) Node {
	cur := n.This
	parts := strings.Split(strings.TrimSpace(path), "/")
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		idx := IndexByName(cur.AsTree().Children, UnescapePathName(p))
		if idx < 0 {
			return nil
		}
		cur = cur.AsTree().Children[idx]
	}
	return cur
}

// Adding and Inserting Children:

// AddChild adds given child at the end of the children list. The child is
// initialized if it has not been already, and its existing name should be
// unique among children.
func (n *NodeBase) AddChild(kid Node) {
	InitNode(kid)
	n.Children = append(n.Children, kid)
	SetParent(kid, n)
	if kid.AsTree().Name == "" {
		kid.AsTree().Name = autoName(kid)
	}
}

// InsertChild adds given child at the given position in the children list.
func (n *NodeBase) InsertChild(kid Node, index int) {
	InitNode(kid)
	n.Children = slices.Insert(n.Children, index, kid)
	SetParent(kid, n)
	if kid.AsTree().Name == "" {
		kid.AsTree().Name = autoName(kid)
	}
}

// InsertChildBefore adds the given child immediately before the given
// existing sibling in the children list. If the sibling is not actually
// a child of this node, the child is added at the end instead.
func (n *NodeBase) InsertChildBefore(kid Node, sibling Node) {
	idx := IndexOf(n.Children, sibling)
	if idx < 0 {
		n.AddChild(kid)
		return
	}
	n.InsertChild(kid, idx)
}

// autoName returns the default name for a newly added node:
// the lowercase type name plus the node's identifier.
func autoName(n Node) string {
	tn := reflect.TypeOf(n).Elem().Name()
	return fmt.Sprintf("%s-%d", strings.ToLower(tn), n.AsTree().UUID())
}

// Deleting Children:

// DeleteChildAt deletes the child at the given index. It returns false
// if there is no child at the given index.
func (n *NodeBase) DeleteChildAt(index int) bool {
	child := n.Child(index)
	if child == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	child.Destroy()
	return true
}

// DeleteChild deletes the given child node, returning false if
// it can not find it.
func (n *NodeBase) DeleteChild(child Node) bool {
	if child == nil {
		return false
	}
	idx := IndexOf(n.Children, child)
	if idx < 0 {
		return false
	}
	return n.DeleteChildAt(idx)
}

// DeleteChildren deletes all children nodes.
func (n *NodeBase) DeleteChildren() {
	kids := n.Children
	n.Children = n.Children[:0] // preserves capacity
	for _, kid := range kids {
		if kid == nil {
			continue
		}
		kid.Destroy()
	}
}

// Delete deletes this node from its parent's children list
// and then destroys itself.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		if n.This != nil {
			n.This.Destroy()
		}
	} else {
		n.Parent.AsTree().DeleteChild(n.This)
	}
}

// Destroy recursively deletes and destroys the node and all of its
// children. It is safe to call on an already destroyed node.
func (n *NodeBase) Destroy() {
	if n.This == nil { // already destroyed
		return
	}
	n.DeleteChildren()
	n.This = nil
}

// IsDestroyed reports whether the node has been destroyed.
func (n *NodeBase) IsDestroyed() bool {
	return n.This == nil
}

// Tree Walking:

// WalkUp calls the given function on the node and all of its parents,
// sequentially in the current goroutine. It stops walking if the function
// returns [Break] and keeps walking if it returns [Continue]. It returns
// whether walking was finished (false if it was aborted with [Break]).
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	cur := n.This
	for {
		if !fun(cur) {
			return false
		}
		parent := cur.AsTree().Parent
		if parent == nil || parent == cur { // prevent loops
			return true
		}
		cur = parent
	}
}

// WalkDown calls the given function on the node and all of its children
// in a depth-first manner, sequentially in the current goroutine. It stops
// walking the current branch of the tree if the function returns [Break]
// and keeps walking if it returns [Continue].
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) {
		return
	}
	// fun can delete children, so walk a snapshot
	kids := slices.Clone(n.Children)
	for _, kid := range kids {
		if kid != nil && kid.AsTree().This != nil {
			kid.AsTree().WalkDown(fun)
		}
	}
}

// Deep Copy:

// CopyFieldsFrom copies the fields of the node from the given node.
// By default, it does a deep copy of all of the fields of the node that do
// not have a `copier:"-"` struct tag; identity, parent and children are
// never copied. Node types should only implement a custom CopyFieldsFrom
// method when they have fields that need special copying logic, and should
// call [NodeBase.CopyFieldsFrom] first.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsTree().This, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("tree.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Clone creates and returns a deep copy of the tree from this node down.
// Cloned nodes are freshly initialized, so they carry new identifiers and
// are not registered anywhere.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	InitNode(nc)
	nc.AsTree().Name = n.Name
	nc.AsTree().CopyFieldsFrom(n.This)
	for _, kid := range n.Children {
		if kid == nil || kid.AsTree().This == nil {
			continue
		}
		nc.AsTree().AddChild(kid.AsTree().Clone())
	}
	return nc
}

// Init is a placeholder implementation of [Node.Init] that does nothing.
func (n *NodeBase) Init() {}
