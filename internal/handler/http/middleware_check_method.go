// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// notFound answers unknown routes with the JSON error envelope. It is
// registered both as the router's NotFound and MethodNotAllowed handler, so
// a path that exists but does not accept the requested method looks exactly
// like an unknown path: 404, never 405.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.NotFound(notFound)
//	router.MethodNotAllowed(notFound)
func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, app.MsgNotFound)
}
