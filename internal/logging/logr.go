// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"golang.org/x/exp/slog"
)

type logrHandler struct {
	fields
	logger logr.Logger
}

var _ slog.Handler = (*logrHandler)(nil)

func newLogrHandler(w io.Writer, level slog.Leveler) *logrHandler {
	write := func(obj string) {
		io.WriteString(w, obj+"\n")
	}
	return &logrHandler{
		fields: fields{level: level},
		// slog does the filtering; let every verbosity through.
		logger: funcr.NewJSON(write, funcr.Options{Verbosity: logrVerbosity(slog.LevelDebug)}),
	}
}

func (h *logrHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.enabled(l)
}

func (h *logrHandler) Handle(_ context.Context, r slog.Record) error {
	fs := h.record(r)
	kv := make([]interface{}, 0, 2*len(fs))
	for _, f := range fs {
		kv = append(kv, f.key, f.value)
	}
	if r.Level >= slog.LevelError {
		h.logger.Error(nil, r.Message, kv...)
		return nil
	}
	h.logger.V(logrVerbosity(r.Level)).Info(r.Message, kv...)
	return nil
}

func (h *logrHandler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.fields = h.withAttrs(as)
	return &h2
}

func (h *logrHandler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.fields = h.withGroup(name)
	return &h2
}

// logrVerbosity maps levels below error to logr verbosity: debug is V(1),
// info and warn are V(0). Errors go through Logger.Error instead.
func logrVerbosity(l slog.Level) int {
	if l < slog.LevelInfo {
		return 1
	}
	return 0
}
