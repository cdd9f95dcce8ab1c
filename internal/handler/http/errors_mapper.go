package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/store"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// errorResponse describes how a failure is shown to the client.
type errorResponse struct {
	status  int
	code    string
	message string
	// detailed replaces message with the error text; only for errors whose
	// text is safe to expose.
	detailed bool
}

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	errorResponse
}{
	{service.ErrRegistrationConflict, errorResponse{http.StatusBadRequest, app.CodeRegistrationConflict, app.MsgRegistrationConflict, false}},
	{store.ErrUserAlreadyExists, errorResponse{http.StatusBadRequest, app.CodeRegistrationConflict, app.MsgRegistrationConflict, false}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.CodeInvalidRequest, app.MsgInvalidDataProvided, true}},
	{ErrInvalidJSON, errorResponse{http.StatusBadRequest, app.CodeInvalidRequest, app.MsgInvalidJSON, false}},
	{ErrInvalidUserID, errorResponse{http.StatusBadRequest, app.CodeInvalidRequest, app.MsgInvalidUserID, false}},
	{service.ErrInvalidCredentials, errorResponse{http.StatusUnauthorized, app.CodeInvalidCredentials, app.MsgInvalidCredentials, false}},
	{store.ErrUserNotFound, errorResponse{http.StatusNotFound, app.CodeNotFound, app.MsgUserNotFound, false}},
	{store.ErrStoreUnavailable, errorResponse{http.StatusServiceUnavailable, app.CodeServiceUnavailable, app.MsgServiceUnavailable, false}},
}

var internalErrorResponse = errorResponse{http.StatusInternalServerError, app.CodeInternalError, app.MsgInternalServerError, false}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.target) {
			return entry.errorResponse
		}
	}
	return internalErrorResponse
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeError logs err and writes the JSON failure envelope mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	message := resp.message
	if resp.detailed {
		message = err.Error()
	}

	utils.WriteError(w, resp.status, resp.code, message)
}
