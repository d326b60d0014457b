// Package domain defines typed identifiers shared across the booking core.
//
// Each ID is a distinct type over uuid.UUID so a CandidateID can never be
// passed where a BookingID is expected. Parse functions enforce the trust
// boundary rule: IDs arriving from the outside must be valid, non-empty,
// non-nil UUIDs.
package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "ftts-booking/pkg/domain-errors"
)

type (
	// CandidateID identifies a CRM contact record for a candidate.
	CandidateID uuid.UUID
	// LicenceID identifies a CRM driving licence record.
	LicenceID uuid.UUID
	// BookingID identifies a CRM booking record.
	BookingID uuid.UUID
	// BookingProductID identifies a CRM booking product record.
	BookingProductID uuid.UUID
	// SessionID identifies a per-user journey session.
	SessionID uuid.UUID
)

func (id CandidateID) String() string      { return uuid.UUID(id).String() }
func (id LicenceID) String() string        { return uuid.UUID(id).String() }
func (id BookingID) String() string        { return uuid.UUID(id).String() }
func (id BookingProductID) String() string { return uuid.UUID(id).String() }
func (id SessionID) String() string        { return uuid.UUID(id).String() }

func (id CandidateID) IsZero() bool { return uuid.UUID(id) == uuid.Nil }
func (id LicenceID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }
func (id BookingID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }
func (id SessionID) IsZero() bool   { return uuid.UUID(id) == uuid.Nil }

// Text marshalling delegates to uuid.UUID so the IDs travel as canonical
// UUID strings in JSON and in the redis store, not as raw byte arrays.
// Defined types do not inherit the underlying type's methods, so each ID
// carries its own pair.

func (id CandidateID) MarshalText() ([]byte, error)      { return uuid.UUID(id).MarshalText() }
func (id LicenceID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }
func (id BookingID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }
func (id BookingProductID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id SessionID) MarshalText() ([]byte, error)        { return uuid.UUID(id).MarshalText() }

func (id *CandidateID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

func (id *LicenceID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

func (id *BookingID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

func (id *BookingProductID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

func (id *SessionID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// NewSessionID returns a fresh random session identifier.
func NewSessionID() SessionID { return SessionID(uuid.New()) }

func parse(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is not a valid UUID")
	}
	if parsed == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id cannot be the nil UUID")
	}
	return parsed, nil
}

// ParseCandidateID parses and validates a candidate ID.
func ParseCandidateID(raw string) (CandidateID, error) {
	parsed, err := parse(raw)
	return CandidateID(parsed), err
}

// ParseLicenceID parses and validates a licence ID.
func ParseLicenceID(raw string) (LicenceID, error) {
	parsed, err := parse(raw)
	return LicenceID(parsed), err
}

// ParseBookingID parses and validates a booking ID.
func ParseBookingID(raw string) (BookingID, error) {
	parsed, err := parse(raw)
	return BookingID(parsed), err
}

// ParseBookingProductID parses and validates a booking product ID.
func ParseBookingProductID(raw string) (BookingProductID, error) {
	parsed, err := parse(raw)
	return BookingProductID(parsed), err
}

// ParseSessionID parses and validates a session ID.
func ParseSessionID(raw string) (SessionID, error) {
	parsed, err := parse(raw)
	return SessionID(parsed), err
}
