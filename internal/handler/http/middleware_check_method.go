// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns an [http.HandlerFunc] that is intended to be
// registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Every endpoint accepts exactly one method. When a request path matches a
// registered route but uses another method, the handler answers with
// HTTP 405 and a JSON error naming the accepted method, e.g.
// {"error":"Only POST method allowed"}.
//
// The lookup is performed by iterating over all routes registered on router
// (including nested groups) and comparing each route's pattern against the
// raw request path ([http.Request.URL.Path]). Only exact pattern matches are
// considered; parameterised or wildcard segments are not expanded.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router chi.Routes) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed := allowedMethod(router, r.URL.Path)
		if allowed == "" {
			writeErrorMessage(w, r, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			return
		}

		writeErrorMessage(w, r, http.StatusMethodNotAllowed, "Only "+allowed+" method allowed")
	}
}

// allowedMethod returns the single method registered for pattern, preferring
// POST over GET, or "" when the pattern is unknown.
func allowedMethod(router chi.Routes, pattern string) string {
	var handlers map[string]http.Handler
	_ = chi.Walk(router, func(method, route string, handler http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route != pattern {
			return nil
		}
		if handlers == nil {
			handlers = make(map[string]http.Handler)
		}
		handlers[method] = handler
		return nil
	})

	for _, method := range []string{http.MethodPost, http.MethodGet} {
		if _, ok := handlers[method]; ok {
			return method
		}
	}
	return ""
}
