// Copyright (c) 2026, Ember Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] that writes human-readable lines with the
// level label colored for terminals. Its level gate follows [UserLevel]
// dynamically.
type Handler struct {
	mu      *sync.Mutex
	w       io.Writer
	profile termenv.Profile
	attrs   []slog.Attr
	groups  []string
}

// NewHandler returns a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{
		mu:      &sync.Mutex{},
		w:       w,
		profile: termenv.ColorProfile(),
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= UserLevel
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(h.levelLabel(r.Level))
	b.WriteString(" ")
	b.WriteString(r.Message)
	prefix := strings.Join(h.groups, ".")
	writeAttr := func(a slog.Attr) bool {
		if a.Key == "" {
			return true
		}
		b.WriteString(" ")
		if prefix != "" {
			b.WriteString(prefix)
			b.WriteString(".")
		}
		b.WriteString(a.Key)
		b.WriteString("=")
		fmt.Fprintf(&b, "%v", a.Value.Any())
		return true
	}
	for _, a := range h.attrs {
		writeAttr(a)
	}
	r.Attrs(writeAttr)
	b.WriteString("\n")
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	nh := h.clone()
	nh.attrs = append(nh.attrs, attrs...)
	return nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	nh := h.clone()
	nh.groups = append(nh.groups, name)
	return nh
}

func (h *Handler) clone() *Handler {
	return &Handler{
		mu:      h.mu,
		w:       h.w,
		profile: h.profile,
		attrs:   append([]slog.Attr{}, h.attrs...),
		groups:  append([]string{}, h.groups...),
	}
}

// levelLabel returns the colored label for the given level.
func (h *Handler) levelLabel(level slog.Level) string {
	label := level.String()
	var color string
	switch {
	case level >= slog.LevelError:
		color = "1" // red
	case level >= slog.LevelWarn:
		color = "3" // yellow
	case level >= slog.LevelInfo:
		color = "4" // blue
	default:
		color = "8" // gray
	}
	return termenv.String(label).Foreground(h.profile.Color(color)).String()
}
