// Package store persists session state keyed by session id. The session is a
// single-writer-per-request key space; no cross-request coordination happens
// here.
package store

import (
	"context"

	"ftts-booking/internal/session"
	"ftts-booking/pkg/domain"
)

// Store is the session persistence contract. Get returns
// sentinel.ErrNotFound for a missing or expired session.
type Store interface {
	Get(ctx context.Context, id domain.SessionID) (session.State, error)
	Put(ctx context.Context, state session.State) error
	Delete(ctx context.Context, id domain.SessionID) error
}
