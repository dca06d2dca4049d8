// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/emberkit/ember/tree"
	"github.com/emberkit/ember/tree/testdata"
)

func TestNodeAddChild(t *testing.T) {
	parent := testdata.NewGroup()
	parent.Name = "parent"
	child := &testdata.Button{}
	parent.AddChild(child)
	child.Name = "child1"
	assert.Len(t, parent.Children, 1)
	assert.Equal(t, Node(parent), child.Parent)
	assert.Equal(t, "/parent/child1", child.Path())
}

func TestNodeAutoName(t *testing.T) {
	parent := testdata.NewGroup()
	child := &testdata.Button{}
	parent.AddChild(child)
	assert.NotEmpty(t, child.Name)
	assert.Contains(t, child.Name, "button-")
}

func TestNodeUUID(t *testing.T) {
	a := testdata.NewButton()
	b := testdata.NewButton()
	assert.Greater(t, a.UUID(), uint64(ReservedUUIDs))
	assert.NotEqual(t, a.UUID(), b.UUID())
}

func TestNodeContainerKinds(t *testing.T) {
	assert.True(t, testdata.NewWindow().Container())
	assert.True(t, testdata.NewGroup().Container())
	assert.False(t, testdata.NewButton().Container())
	assert.True(t, testdata.NewWindow().TopLevel)
	assert.False(t, testdata.NewGroup().TopLevel)
}

func TestInsertChildBefore(t *testing.T) {
	parent := testdata.NewGroup()
	a := testdata.NewButton()
	b := testdata.NewButton()
	parent.AddChild(a)
	parent.AddChild(b)
	c := testdata.NewButton()
	parent.InsertChildBefore(c, b)
	require.Equal(t, 3, parent.NumChildren())
	assert.Equal(t, Node(c), parent.Child(1))
	assert.Equal(t, Node(b), parent.Child(2))
	assert.Equal(t, 1, c.IndexInParent())
}

func TestInsertChildBeforeMissingSibling(t *testing.T) {
	parent := testdata.NewGroup()
	a := testdata.NewButton()
	stranger := testdata.NewButton()
	kid := testdata.NewButton()
	parent.AddChild(a)
	parent.InsertChildBefore(kid, stranger)
	assert.Equal(t, Node(kid), parent.Child(1))
}

func TestNodeDeleteChild(t *testing.T) {
	parent := testdata.NewGroup()
	child := testdata.NewButton()
	parent.AddChild(child)
	assert.True(t, parent.DeleteChild(child))
	assert.Equal(t, 0, parent.NumChildren())
	assert.True(t, child.IsDestroyed())
	assert.False(t, parent.DeleteChild(child))
}

func TestNodeDestroyIdempotent(t *testing.T) {
	w := testdata.NewWindow()
	g := testdata.NewGroup()
	b := testdata.NewButton()
	w.AddChild(g)
	g.AsTree().AddChild(b)
	w.Destroy()
	assert.True(t, w.IsDestroyed())
	assert.True(t, g.IsDestroyed())
	assert.True(t, b.IsDestroyed())
	w.Destroy() // must be a no-op
	assert.True(t, w.IsDestroyed())
}

func TestNodeFindPath(t *testing.T) {
	w := testdata.NewWindow()
	w.Name = "win"
	g := testdata.NewGroup()
	w.AddChild(g)
	g.Name = "grp"
	b := testdata.NewButton()
	g.AddChild(b)
	b.Name = "btn"
	assert.Equal(t, Node(b), w.FindPath("grp/btn"))
	assert.Nil(t, w.FindPath("grp/nope"))
	assert.Equal(t, "/win/grp/btn", b.Path())
}

func TestNodeWalkDown(t *testing.T) {
	w := testdata.NewWindow()
	g := testdata.NewGroup()
	b1 := testdata.NewButton()
	b2 := testdata.NewButton()
	w.AddChild(g)
	g.AddChild(b1)
	g.AddChild(b2)
	var visited []uint64
	w.WalkDown(func(n Node) bool {
		visited = append(visited, n.AsTree().UUID())
		return Continue
	})
	assert.Equal(t, []uint64{w.UUID(), g.UUID(), b1.UUID(), b2.UUID()}, visited)
}

func TestNodeWalkUp(t *testing.T) {
	w := testdata.NewWindow()
	g := testdata.NewGroup()
	b := testdata.NewButton()
	w.AddChild(g)
	g.AddChild(b)
	var count int
	b.WalkUp(func(n Node) bool {
		count++
		return Continue
	})
	assert.Equal(t, 3, count)
	assert.Equal(t, Node(w), Root(b))
	assert.True(t, IsRoot(w))
}

func TestNodeClone(t *testing.T) {
	w := testdata.NewWindow()
	w.Label = "main"
	w.Modal = true
	b := testdata.NewButton()
	w.AddChild(b)
	b.Small = true

	nc := w.Clone()
	cw := nc.(*testdata.Window)
	assert.Equal(t, "main", cw.Label)
	assert.True(t, cw.Modal)
	assert.NotEqual(t, w.UUID(), cw.UUID())
	require.Equal(t, 1, cw.NumChildren())
	cb := cw.Child(0).(*testdata.Button)
	assert.True(t, cb.Small)
	assert.NotEqual(t, b.UUID(), cb.UUID())
}

func TestInitNodeOnce(t *testing.T) {
	b := testdata.NewButton()
	id := b.UUID()
	InitNode(b)
	assert.Equal(t, id, b.UUID())
	assert.True(t, b.Show)
}
