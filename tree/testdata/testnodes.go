// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package testdata provides concrete node kinds for testing the tree,
// registry and wrap packages.
package testdata

import "github.com/emberkit/ember/tree"

// Window is a top-level container node positioned in viewport space.
type Window struct {
	tree.NodeBase

	// Modal is whether the window blocks interaction with other windows.
	Modal bool
}

func NewWindow() *Window {
	w := &Window{}
	tree.InitNode(w)
	return w
}

func (w *Window) Init() {
	w.CanHaveChildren = true
	w.TopLevel = true
}

// Group is an ordinary container node.
type Group struct {
	tree.NodeBase

	// Horizontal lays out children in a row instead of a column.
	Horizontal bool
}

func NewGroup() *Group {
	g := &Group{}
	tree.InitNode(g)
	return g
}

func (g *Group) Init() {
	g.CanHaveChildren = true
}

// Button is a leaf node with no backing value.
type Button struct {
	tree.NodeBase

	// Small renders the button at reduced height.
	Small bool
}

func NewButton() *Button {
	b := &Button{}
	tree.InitNode(b)
	return b
}

// Text is a leaf node displaying its backing value.
type Text struct {
	tree.NodeBase

	// Wrap is the wrapping width in pixels, 0 for no wrapping.
	Wrap int
}

func NewText() *Text {
	t := &Text{}
	tree.InitNode(t)
	return t
}

// Slider is a leaf node whose Format must be applied before Size,
// since the format affects the rendered extent.
type Slider struct {
	tree.NodeBase

	// Format is the printf-style display format for the value.
	Format string

	// Size is the widget extent in pixels.
	Size float32

	// TrackOffset is the normalized initial track position.
	TrackOffset float32
}

func NewSlider() *Slider {
	s := &Slider{}
	tree.InitNode(s)
	return s
}
