// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"golang.org/x/exp/slog"
)

type zerologHandler struct {
	fields
	logger zerolog.Logger
}

var _ slog.Handler = (*zerologHandler)(nil)

func newZerologHandler(w io.Writer, level slog.Leveler) *zerologHandler {
	return &zerologHandler{
		fields: fields{level: level},
		logger: zerolog.New(w).Level(zerolog.TraceLevel),
	}
}

func (h *zerologHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.enabled(l)
}

func (h *zerologHandler) Handle(_ context.Context, r slog.Record) error {
	ev := h.logger.WithLevel(zerologLevel(r.Level))
	if ev == nil {
		return nil
	}
	if !r.Time.IsZero() {
		ev = ev.Time(zerolog.TimestampFieldName, r.Time)
	}
	for _, f := range h.record(r) {
		ev = ev.Interface(f.key, f.value)
	}
	ev.Msg(r.Message)
	return nil
}

func (h *zerologHandler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.fields = h.withAttrs(as)
	return &h2
}

func (h *zerologHandler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.fields = h.withGroup(name)
	return &h2
}

func zerologLevel(l slog.Level) zerolog.Level {
	switch {
	case l < slog.LevelInfo:
		return zerolog.DebugLevel
	case l < slog.LevelWarn:
		return zerolog.InfoLevel
	case l < slog.LevelError:
		return zerolog.WarnLevel
	}
	return zerolog.ErrorLevel
}
