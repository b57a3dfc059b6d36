// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter records the status code and body size written through it.
// WriteHeader is forwarded to the underlying writer at most once.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until the first WriteHeader or Write.
	status      int
	wroteHeader bool

	// size is the running total of body bytes.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies a 200 status when no header was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets http.ResponseController and the compress middleware reach the
// underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
