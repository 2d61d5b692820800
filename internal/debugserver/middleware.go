// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package debugserver

import (
	"net/http"

	"github.com/go-chi/chi/middleware"
)

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug("debugserver: ->", "method", r.Method, "url", r.URL.String())
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := http.StatusOK
		if ww.Status() != 0 {
			status = ww.Status()
		}
		if status/100 != 2 && status != http.StatusSwitchingProtocols {
			s.log.Warn("debugserver: <-", "url", r.URL.String(), "status", status)
		} else {
			s.log.Debug("debugserver: <-", "url", r.URL.String(), "status", status)
		}
	})
}
