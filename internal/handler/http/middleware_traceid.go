package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// maxTraceIDLength caps client-supplied trace identifiers.
const maxTraceIDLength = 128

var traceIDs = utils.NewUUIDGenerator()

// withTraceID attaches a request-scoped logger carrying trace_id to the
// request context. The identifier is taken from the X-Trace-ID header or
// generated, and is echoed back in the response.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		r = r.WithContext(l.WithContext(r.Context()))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
