// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/fraud-shield/internal/app"
	"github.com/MKhiriev/fraud-shield/internal/utils"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns the handler registered as the router's
// MethodNotAllowed handler via [chi.Mux.MethodNotAllowed].
//
// It answers 405 with the standard JSON error body and an Allow header
// listing the methods registered for the matched pattern. When the method
// turns out to be registered after all, the request is handed back to the
// router. Only exact pattern matches are considered.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; ok {
			router.ServeHTTP(w, r)
			return
		}

		for method := range foundRoute.Handlers {
			w.Header().Add("Allow", method)
		}
		utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
	}
}
