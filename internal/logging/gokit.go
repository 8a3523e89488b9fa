// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"golang.org/x/exp/slog"
)

type gokitHandler struct {
	fields
	logger log.Logger
}

var _ slog.Handler = (*gokitHandler)(nil)

func newGokitHandler(w io.Writer, min slog.Leveler) *gokitHandler {
	return &gokitHandler{
		fields: fields{level: min},
		logger: log.NewJSONLogger(log.NewSyncWriter(w)),
	}
}

func (h *gokitHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.enabled(l)
}

func (h *gokitHandler) Handle(_ context.Context, r slog.Record) error {
	fs := h.record(r)
	kv := make([]interface{}, 0, 6+2*len(fs))
	if !r.Time.IsZero() {
		kv = append(kv, "ts", r.Time)
	}
	kv = append(kv, level.Key(), gokitLevel(r.Level), "msg", r.Message)
	for _, f := range fs {
		kv = append(kv, f.key, f.value)
	}
	return h.logger.Log(kv...)
}

func (h *gokitHandler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.fields = h.withAttrs(as)
	return &h2
}

func (h *gokitHandler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.fields = h.withGroup(name)
	return &h2
}

func gokitLevel(l slog.Level) level.Value {
	switch {
	case l < slog.LevelInfo:
		return level.DebugValue()
	case l < slog.LevelWarn:
		return level.InfoValue()
	case l < slog.LevelError:
		return level.WarnValue()
	}
	return level.ErrorValue()
}
