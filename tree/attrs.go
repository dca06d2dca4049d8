// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"reflect"
	"strings"
)

// AttrFold normalizes an attribute name for matching against struct field
// names: it lowercases the name and strips underscores, so that the foreign
// snake_case vocabulary (e.g. "filter_key") matches exported Go fields
// (FilterKey).
func AttrFold(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if r == '_' {
			continue
		}
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SetAttribute sets the attribute with the given foreign name on the node's
// underlying type to the given value, converting the value to the field's
// type where a safe conversion exists. Attribute names are matched
// case-insensitively and ignoring underscores, so "filter_key" sets a
// FilterKey field. It returns an error if no such settable attribute
// exists or the value can not be converted.
func (n *NodeBase) SetAttribute(name string, value any) error {
	if n.This == nil {
		return fmt.Errorf("tree: cannot set attribute %q on destroyed node", name)
	}
	rv := reflect.ValueOf(n.This).Elem()
	want := AttrFold(name)
	f := rv.FieldByNameFunc(func(fn string) bool {
		return AttrFold(fn) == want
	})
	if !f.IsValid() || !f.CanSet() {
		return fmt.Errorf("tree: %v has no attribute %q", reflect.TypeOf(n.This).Elem().Name(), name)
	}
	if err := setValue(f, value); err != nil {
		return fmt.Errorf("tree: attribute %q: %w", name, err)
	}
	return nil
}

// setValue assigns value to the given settable field, applying numeric,
// slice/array and callback conversions.
func setValue(f reflect.Value, value any) error {
	ft := f.Type()
	if value == nil {
		f.Set(reflect.Zero(ft))
		return nil
	}
	v := reflect.ValueOf(value)
	vt := v.Type()
	if vt.AssignableTo(ft) {
		f.Set(v)
		return nil
	}
	if convertible(vt, ft) {
		f.Set(v.Convert(ft))
		return nil
	}
	// element sequences: slices, arrays and fixed pairs like positions
	if (vt.Kind() == reflect.Slice || vt.Kind() == reflect.Array) &&
		(ft.Kind() == reflect.Slice || ft.Kind() == reflect.Array) {
		return setSequence(f, v)
	}
	// a single callback assigned to a callback list
	if ft.Kind() == reflect.Slice && vt.AssignableTo(ft.Elem()) {
		s := reflect.MakeSlice(ft, 1, 1)
		s.Index(0).Set(v)
		f.Set(s)
		return nil
	}
	return fmt.Errorf("cannot use %v as %v", vt, ft)
}

// convertible reports whether a value of type from can be safely converted
// to type to: both numeric, or both string kinds. Blanket reflect
// convertibility is too permissive here (it would turn integers into
// strings).
func convertible(from, to reflect.Type) bool {
	if numericKind(from.Kind()) && numericKind(to.Kind()) {
		return true
	}
	return from.Kind() == reflect.String && to.Kind() == reflect.String
}

func numericKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64 && k != reflect.Uintptr
}

// setSequence assigns the elements of v to the sequence field f,
// converting elements as needed. Array lengths must match.
func setSequence(f reflect.Value, v reflect.Value) error {
	ft := f.Type()
	n := v.Len()
	var dst reflect.Value
	switch ft.Kind() {
	case reflect.Array:
		if n != ft.Len() {
			return fmt.Errorf("need %d elements, got %d", ft.Len(), n)
		}
		dst = reflect.New(ft).Elem()
	default:
		dst = reflect.MakeSlice(ft, n, n)
	}
	et := ft.Elem()
	for i := 0; i < n; i++ {
		ev := v.Index(i)
		if ev.Kind() == reflect.Interface {
			ev = ev.Elem()
		}
		switch {
		case ev.Type().AssignableTo(et):
			dst.Index(i).Set(ev)
		case convertible(ev.Type(), et):
			dst.Index(i).Set(ev.Convert(et))
		default:
			return fmt.Errorf("cannot use element %v as %v", ev.Type(), et)
		}
	}
	f.Set(dst)
	return nil
}
