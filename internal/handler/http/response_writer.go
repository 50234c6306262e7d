// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Courtlens

package http

import "net/http"

// responseWriter is a thin decorator around [http.ResponseWriter] that
// captures the status code and body size for the logging middleware.
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, matching the standard library's documented contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards b to the underlying writer, implicitly recording a 200
// status when WriteHeader was never called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
