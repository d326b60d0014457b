package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"ftts-booking/pkg/domain"
	"ftts-booking/pkg/requestcontext"
)

// BookingClaims is the middleware's view of a validated manage-booking token.
type BookingClaims struct {
	SessionID        string
	BookingReference string
}

// TokenValidator validates a manage-booking token string.
type TokenValidator interface {
	ValidateToken(tokenString string) (*BookingClaims, error)
}

// RequireBookingToken guards the manage-booking routes. A valid bearer token
// binds the request to one session and one booking reference; both are
// injected into the context for handlers to check against path parameters.
func RequireBookingToken(validator TokenValidator, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			const bearerPrefix = "Bearer "
			token, ok := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
			if !ok {
				logger.WarnContext(ctx, "unauthorized access - missing token",
					"request_id", requestcontext.RequestID(ctx),
				)
				writeUnauthorized(w, "Missing or invalid Authorization header")
				return
			}

			claims, err := validator.ValidateToken(token)
			if err != nil {
				logger.WarnContext(ctx, "unauthorized access - invalid token",
					"error", err,
					"request_id", requestcontext.RequestID(ctx),
				)
				writeUnauthorized(w, "Invalid or expired token")
				return
			}

			if sessionID, err := domain.ParseSessionID(claims.SessionID); err == nil {
				ctx = requestcontext.WithSessionID(ctx, sessionID)
			}
			ctx = requestcontext.WithBookingReference(ctx, claims.BookingReference)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"unauthorized","error_description":"` + description + `"}`))
}
