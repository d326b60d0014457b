// Package session holds the per-user journey state and the pure transition
// rules applied to it. State is plain data: the reducer takes a state in and
// returns a new one, and storage lives behind the store subpackage. Nothing
// here is shared between requests.
package session

import (
	"ftts-booking/internal/booking/models"
	"ftts-booking/pkg/domain"
)

// EditedLocationTime is the in-flight centre/slot change during an edit flow,
// kept separate from the booking until the candidate confirms.
type EditedLocationTime struct {
	Centre   *models.TestCentre `json:"centre,omitempty"`
	DateTime string             `json:"dateTime,omitempty"`
}

// ManageBooking is the manage-booking sub-state: the bookings retrieved for
// the candidate and which one is selected for change or cancellation.
type ManageBooking struct {
	Bookings    []models.Booking `json:"bookings,omitempty"`
	SelectedRef string           `json:"selectedRef,omitempty"`
}

// State is the full session snapshot for one user journey.
type State struct {
	SessionID domain.SessionID `json:"sessionId"`

	Candidate *models.Candidate `json:"candidate,omitempty"`
	Booking   *models.Booking   `json:"booking,omitempty"`
	Journey   models.Journey    `json:"journey"`

	TestCentreSearch   string              `json:"testCentreSearch,omitempty"`
	TestCentres        []models.TestCentre `json:"testCentres,omitempty"`
	EditedLocationTime *EditedLocationTime `json:"editedLocationTime,omitempty"`

	ManageBooking      *ManageBooking  `json:"manageBooking,omitempty"`
	ManageBookingEdits *models.Booking `json:"manageBookingEdits,omitempty"`

	// PriceLists caches the provider's priced entries per test type for the
	// life of the journey.
	PriceLists map[models.TestType]models.PriceListItem `json:"priceLists,omitempty"`
}

// New returns an empty session with a fresh identifier and default journey
// flags.
func New() State {
	return State{
		SessionID: domain.NewSessionID(),
		Journey:   models.DefaultJourney(),
	}
}
