// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logging

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slog"
)

type logrusHandler struct {
	fields
	logger *logrus.Logger
}

var _ slog.Handler = (*logrusHandler)(nil)

func newLogrusHandler(w io.Writer, level slog.Leveler) *logrusHandler {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	// slog does the filtering.
	l.SetLevel(logrus.TraceLevel)
	return &logrusHandler{fields: fields{level: level}, logger: l}
}

func (h *logrusHandler) Enabled(_ context.Context, l slog.Level) bool {
	return h.enabled(l)
}

func (h *logrusHandler) Handle(_ context.Context, r slog.Record) error {
	fs := h.record(r)
	data := make(logrus.Fields, len(fs))
	for _, f := range fs {
		data[f.key] = f.value
	}
	e := h.logger.WithFields(data)
	if !r.Time.IsZero() {
		e = e.WithTime(r.Time)
	}
	e.Log(logrusLevel(r.Level), r.Message)
	return nil
}

func (h *logrusHandler) WithAttrs(as []slog.Attr) slog.Handler {
	h2 := *h
	h2.fields = h.withAttrs(as)
	return &h2
}

func (h *logrusHandler) WithGroup(name string) slog.Handler {
	h2 := *h
	h2.fields = h.withGroup(name)
	return &h2
}

func logrusLevel(l slog.Level) logrus.Level {
	switch {
	case l < slog.LevelInfo:
		return logrus.DebugLevel
	case l < slog.LevelWarn:
		return logrus.InfoLevel
	case l < slog.LevelError:
		return logrus.WarnLevel
	}
	return logrus.ErrorLevel
}
