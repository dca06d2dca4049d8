// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wrap

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/emberkit/ember/tree"
)

// Defaults is the documented default value for each foreign attribute
// name, keyed by folded name (see [tree.AttrFold]). An unrecognized
// configure attribute whose value equals its entry here is silently
// dropped; many foreign attributes are only meaningful for certain node
// kinds, and tolerating their defaults keeps a single generic configure
// usable across all of them.
type Defaults map[string]any

// Lookup returns the documented default for the given attribute name,
// folding the name first.
func (d Defaults) Lookup(name string) (any, bool) {
	v, ok := d[tree.AttrFold(name)]
	return v, ok
}

// Set records the documented default for the given attribute name,
// folding the name first.
func (d Defaults) Set(name string, value any) {
	d[tree.AttrFold(name)] = value
}

// DefaultAttrs returns the standard defaults table for the foreign
// attribute vocabulary.
func DefaultAttrs() Defaults {
	return Defaults{
		"payloadtype":  "$$EMBER_PAYLOAD",
		"dragcallback": nil,
		"dropcallback": nil,
		"filterkey":    "",
		"tracked":      false,
		"trackoffset":  0.5,
		"show":         true,
		"uvmin":        [2]float32{0, 0},
		"uvmax":        [2]float32{1, 1},
		"color":        -1,
		"minscale":     0.0,
		"maxscale":     0.0,
		"ordermode":    0,
		"autosizex":    false,
		"autosizey":    false,
		"alphabar":     false,
		"alphapreview": 0,
		"cornercolors": nil,
		"sort":         false,
		"label":        "",
	}
}

// ReadDefaults reads a TOML table of attribute defaults from the given
// reader and returns it merged over the standard [DefaultAttrs] table,
// with keys folded. This lets an application document defaults for its
// own attribute vocabulary without code changes.
func ReadDefaults(r io.Reader) (Defaults, error) {
	var m map[string]any
	if err := toml.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("wrap: reading defaults: %w", err)
	}
	d := DefaultAttrs()
	for k, v := range m {
		d.Set(k, v)
	}
	return d, nil
}
