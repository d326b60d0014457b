package session

import "ftts-booking/internal/booking/models"

// EnterManagedBookingEdit starts an edit flow on a booking retrieved through
// manage-booking. The selected booking is copied into the current-booking
// slot and any pending centre search is dropped so the edit starts from a
// consistent snapshot.
func EnterManagedBookingEdit(state State, selected models.Booking) State {
	next := state
	next.Journey.InManagedBookingEditMode = true
	booking := selected
	next.Booking = &booking
	next.TestCentreSearch = ""
	next.TestCentres = nil
	next.EditedLocationTime = nil
	return next
}

// Reset clears the whole session and assigns a fresh identifier. Journey
// flags return to the fixed default set.
func Reset(State) State {
	return New()
}

// ResetBooking clears the in-progress booking and centre search state,
// preserving the candidate and journey flags.
func ResetBooking(state State) State {
	next := state
	next.Booking = nil
	next.TestCentreSearch = ""
	next.TestCentres = nil
	return next
}

// ResetBookingKeepSupportText behaves like ResetBooking but carries the
// candidate's free-text support answers over to the fresh booking, so a
// restarted flow never asks them to re-type support explanations.
func ResetBookingKeepSupportText(state State) State {
	next := ResetBooking(state)
	if state.Booking == nil {
		return next
	}
	next.Booking = &models.Booking{
		CustomSupport:           state.Booking.CustomSupport,
		PreferredDay:            state.Booking.PreferredDay,
		PreferredDayOption:      state.Booking.PreferredDayOption,
		PreferredLocation:       state.Booking.PreferredLocation,
		PreferredLocationOption: state.Booking.PreferredLocationOption,
	}
	return next
}
