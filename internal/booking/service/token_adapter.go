package service

import (
	"ftts-booking/internal/platform/middleware"
)

// TokenIssuerAdapter exposes the token issuer through the middleware's
// validator interface.
type TokenIssuerAdapter struct {
	issuer *TokenIssuer
}

func NewTokenIssuerAdapter(issuer *TokenIssuer) *TokenIssuerAdapter {
	return &TokenIssuerAdapter{issuer: issuer}
}

func (a *TokenIssuerAdapter) ValidateToken(tokenString string) (*middleware.BookingClaims, error) {
	claims, err := a.issuer.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.BookingClaims{
		SessionID:        claims.SessionID,
		BookingReference: claims.BookingReference,
	}, nil
}
