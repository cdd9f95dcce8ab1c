package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
	"github.com/stretchr/testify/assert"
)

func TestRequireAuth(t *testing.T) {
	tests := []struct {
		name       string
		ctx        func(r *http.Request) *http.Request
		wantStatus int
		wantNext   bool
	}{
		{
			name:       "anonymous",
			ctx:        func(r *http.Request) *http.Request { return r },
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "rejected credential",
			ctx: func(r *http.Request) *http.Request {
				return r.WithContext(utils.WithAuthRejection(r.Context(), models.ReasonExpired))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "authenticated",
			ctx: func(r *http.Request) *http.Request {
				return r.WithContext(utils.WithIdentity(r.Context(), aliceIdentity))
			},
			wantStatus: http.StatusNoContent,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &Handler{}
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusNoContent)
			})

			req := tt.ctx(httptest.NewRequest(http.MethodGet, "/user", nil))
			rec := httptest.NewRecorder()
			h.requireAuth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestUnauthorized_BodyNeverLeaksReason(t *testing.T) {
	h := &Handler{}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/user", nil)
	req = req.WithContext(utils.WithAuthRejection(req.Context(), models.ReasonSignatureMismatch))
	rec := httptest.NewRecorder()
	h.requireAuth(next).ServeHTTP(rec, req)

	assert.JSONEq(t,
		`{"error":"unauthorized","message":"Full authentication is required to access this resource"}`,
		rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
}
