package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// requireAuth rejects requests that reached it without an identity. The
// response never tells the caller why its credential was refused.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.IdentityFromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}

		event := logger.FromRequest(r).Info().Str("uri", r.RequestURI)
		if reason, rejected := utils.AuthRejectionFromContext(r.Context()); rejected {
			event = event.Str("reason", string(reason))
		}
		event.Msg("anonymous access to protected route")

		unauthorized(w)
	})
}

// unauthorized is the entry point: the single place that writes the 401
// response for unauthenticated access.
func unauthorized(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="`+app.BearerRealm+`"`)
	utils.WriteError(w, http.StatusUnauthorized, app.CodeUnauthorized, app.MsgFullAuthenticationRequired)
}
