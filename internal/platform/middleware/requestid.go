package middleware

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"ftts-booking/pkg/requestcontext"
)

const requestIDHeader = "X-Request-ID"

// RequestContext stamps every request with a correlation ID and the request
// time. The ID is taken from the inbound header when present so upstream
// correlation survives, and always echoed back to the caller.
func RequestContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		ctx = requestcontext.WithTime(ctx, time.Now())

		w.Header().Set(requestIDHeader, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
