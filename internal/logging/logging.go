// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logging builds the structured logger used by the searchsort
// command. The logger is always a *slog.Logger; the backend decides how
// records are written.
package logging

import (
	"io"

	"golang.org/x/exp/slices"
	"golang.org/x/exp/slog"
	"golang.org/x/xerrors"
)

// Backends lists the accepted backend names.
var Backends = []string{"text", "json", "zap", "logrus", "zerolog", "gokit", "logr"}

// New returns a logger writing to w through the named backend. Records
// below level are dropped.
func New(w io.Writer, backend string, level slog.Leveler) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch backend {
	case "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	case "zap":
		h = newZapHandler(w, level)
	case "logrus":
		h = newLogrusHandler(w, level)
	case "zerolog":
		h = newZerologHandler(w, level)
	case "gokit":
		h = newGokitHandler(w, level)
	case "logr":
		h = newLogrHandler(w, level)
	default:
		return nil, xerrors.Errorf("unknown log backend %q (want one of %v)", backend, Backends)
	}
	return slog.New(h), nil
}

// field is an attribute flattened to a single key, with the names of
// enclosing groups joined by dots.
type field struct {
	key   string
	value any
}

// fields holds what the forwarding handlers have in common: level
// filtering and the attributes and group added by With and WithGroup.
type fields struct {
	level  slog.Leveler
	prefix string
	attrs  []field
}

func (fs fields) enabled(l slog.Level) bool {
	return l >= fs.level.Level()
}

func (fs fields) withAttrs(as []slog.Attr) fields {
	fs.attrs = slices.Clip(fs.attrs)
	for _, a := range as {
		fs.attrs = appendAttr(fs.attrs, fs.prefix, a)
	}
	return fs
}

func (fs fields) withGroup(name string) fields {
	if name != "" {
		fs.prefix += name + "."
	}
	return fs
}

// record returns the handler's attributes followed by those of r.
func (fs fields) record(r slog.Record) []field {
	out := make([]field, len(fs.attrs), len(fs.attrs)+r.NumAttrs())
	copy(out, fs.attrs)
	r.Attrs(func(a slog.Attr) bool {
		out = appendAttr(out, fs.prefix, a)
		return true
	})
	return out
}

func appendAttr(out []field, prefix string, a slog.Attr) []field {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range v.Group() {
			out = appendAttr(out, prefix, ga)
		}
		return out
	}
	if a.Key == "" {
		return out
	}
	return append(out, field{key: prefix + a.Key, value: v.Any()})
}
