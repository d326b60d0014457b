package models

// Journey holds the per-session flags steering the booking flow.
//
// Invariants:
//   - InEditMode and InManagedBookingEditMode are never both required to be
//     true by any transition; the reducer sets them independently
//   - StandardAccommodation defaults to true and flips only when the support
//     flow is entered
type Journey struct {
	InEditMode                     bool   `json:"inEditMode"`
	InManagedBookingEditMode       bool   `json:"inManagedBookingEditMode"`
	ManagedBookingRescheduleChoice string `json:"managedBookingRescheduleChoice"`
	InManageBookingMode            bool   `json:"inManageBookingMode"`
	StandardAccommodation          bool   `json:"standardAccommodation"`
	Support                        bool   `json:"support"`
}

// DefaultJourney returns the fixed journey flag set applied on a full
// session reset.
func DefaultJourney() Journey {
	return Journey{
		InEditMode:                     false,
		InManagedBookingEditMode:       false,
		ManagedBookingRescheduleChoice: "",
		InManageBookingMode:            false,
		StandardAccommodation:          true,
		Support:                        false,
	}
}
