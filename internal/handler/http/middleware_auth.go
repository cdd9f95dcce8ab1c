package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// authenticate is the request gate. It runs before every handler and
// never rejects a request by itself.
//
// It inspects the "Authorization" header and:
//   - passes the request on anonymously when the header is absent;
//   - records [models.ReasonMalformed] when the header is not a bearer
//     credential;
//   - resolves the token via [service.AuthService.ResolveToken] and either
//     attaches the resulting [models.Identity] to the request context or
//     records the rejection reason.
//
// Rejection reasons are logged and stored with [utils.WithAuthRejection] for
// server-side diagnostics only. Enforcement is left to requireAuth.
func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Info().Err(err).Str("reason", string(models.ReasonMalformed)).Msg("credential rejected")
			next.ServeHTTP(w, r.WithContext(utils.WithAuthRejection(ctx, models.ReasonMalformed)))
			return
		}

		identity, validation := h.services.AuthService.ResolveToken(ctx, tokenString)
		if !validation.Valid {
			log.Info().Str("reason", string(validation.Reason)).Msg("credential rejected")
			next.ServeHTTP(w, r.WithContext(utils.WithAuthRejection(ctx, validation.Reason)))
			return
		}

		log.Debug().Int64("id", identity.UserID).Str("username", identity.Username).Msg("request authenticated")
		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}
