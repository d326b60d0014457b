package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"ftts-booking/pkg/domain"
	dErrors "ftts-booking/pkg/domain-errors"
)

// ManageBookingClaims binds a session to one booking reference. The token
// gates the manage-booking routes: a candidate can only act on the booking
// they authenticated for.
type ManageBookingClaims struct {
	SessionID        string `json:"session_id"`
	BookingReference string `json:"booking_ref"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and validates the short-lived manage-booking tokens.
type TokenIssuer struct {
	signingKey []byte
	issuer     string
	ttl        time.Duration
}

func NewTokenIssuer(signingKey string, issuer string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		ttl:        ttl,
	}
}

// Issue signs a token for the session and booking reference.
func (t *TokenIssuer) Issue(sessionID domain.SessionID, bookingReference string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ManageBookingClaims{
		SessionID:        sessionID.String(),
		BookingReference: bookingReference,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    t.issuer,
			ID:        uuid.NewString(),
		},
	})
	return token.SignedString(t.signingKey)
}

// Validate parses and verifies a token, returning its claims.
func (t *TokenIssuer) Validate(tokenString string) (*ManageBookingClaims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &ManageBookingClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return t.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	claims, ok := parsed.Claims.(*ManageBookingClaims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}
