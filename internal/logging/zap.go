// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/slog"
)

type zapHandler struct {
	fields
	core zapcore.Core
}

var _ slog.Handler = (*zapHandler)(nil)

func newZapHandler(w io.Writer, level slog.Leveler) *zapHandler {
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return &zapHandler{
		fields: fields{level: level},
		core:   zapcore.NewCore(enc, zapcore.AddSync(w), zapcore.DebugLevel),
	}
}

func (h *zapHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.enabled(l) && h.core.Enabled(zapLevel(l))
}

func (h *zapHandler) Handle(_ context.Context, r slog.Record) error {
	ent := zapcore.Entry{
		Level:   zapLevel(r.Level),
		Time:    r.Time,
		Message: r.Message,
	}
	ce := h.core.Check(ent, nil)
	if ce == nil {
		return nil
	}
	fs := h.record(r)
	zfs := make([]zapcore.Field, len(fs))
	for i, f := range fs {
		zfs[i] = zap.Any(f.key, f.value)
	}
	ce.Write(zfs...)
	return nil
}

func (h *zapHandler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.fields = h.withAttrs(as)
	return &h2
}

func (h *zapHandler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.fields = h.withGroup(name)
	return &h2
}

func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l < slog.LevelInfo:
		return zapcore.DebugLevel
	case l < slog.LevelWarn:
		return zapcore.InfoLevel
	case l < slog.LevelError:
		return zapcore.WarnLevel
	}
	return zapcore.ErrorLevel
}
