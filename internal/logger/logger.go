// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger for the go-contacts server.
//
// Every component receives a *Logger at construction time. Request-scoped
// code uses FromContext or FromRequest to pick up the child logger that the
// trace-id middleware attached to the request.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger embeds zerolog.Logger, so the whole zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a debug-level JSON logger on stdout tagged with role.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New returns a debug-level JSON logger writing to w. Each entry carries the
// role, a timestamp and the calling function name under "func".
func New(role string, w io.Writer) *Logger {
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{
		zerolog.New(w).
			Level(zerolog.DebugLevel).
			With().
			Str("role", role).
			Timestamp().
			Caller().
			Logger(),
	}
}

// Nop returns a logger that writes nothing. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy that can be enriched without touching l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one it returns a
// disabled logger, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
