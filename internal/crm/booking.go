package crm

import (
	"time"

	"ftts-booking/internal/booking/models"
	dErrors "ftts-booking/pkg/domain-errors"
)

// EvidenceRouter classifies whether a candidate must supply medical evidence
// before an NSA request proceeds. The routing rules live outside this
// package; mapping code only branches on the returned route.
type EvidenceRouter interface {
	DetermineEvidenceRoute(selected []models.SupportType, hasExistingCRMSupportNeeds bool) models.EvidenceRoute
}

// bookingProductReferenceSuffix distinguishes the single product created per
// booking. A booking always carries exactly one product from this channel.
const bookingProductReferenceSuffix = "-01"

// ToCRMBooking builds the parent booking write payload. The additional
// support option lives on the booking product, not here; see
// ToCRMBookingProduct.
//
// Preconditions are enforced by returning an invariant-violation error, never
// by defaulting: a malformed CRM write could corrupt booking state
// downstream. The candidate must have first names, surname, licence number
// and date of birth. A standard-accommodation booking must additionally have
// a date/time, a test centre and a test type; a non-standard booking must
// instead have a candidate owner for the draft NSA record, and router must be
// able to derive an NSA status from the booking (see DeriveNSAStatus).
func ToCRMBooking(
	candidate models.Candidate,
	booking models.Booking,
	candidateID string,
	licenceID string,
	isStandardAccommodation bool,
	priceListID string,
	router EvidenceRouter,
) (CRMBooking, error) {
	if err := requireCandidateFields(candidate); err != nil {
		return CRMBooking{}, err
	}
	if !isStandardAccommodation && candidate.OwnerID == "" {
		return CRMBooking{}, dErrors.New(dErrors.CodeInvariantViolation,
			"ToCRMBooking: candidate owner id is required for a non-standard accommodation booking")
	}
	if isStandardAccommodation {
		if booking.DateTime == nil {
			return CRMBooking{}, dErrors.New(dErrors.CodeInvariantViolation,
				"ToCRMBooking: booking date/time is required for a standard accommodation booking")
		}
		if booking.Centre == nil || booking.Centre.AccountID == "" {
			return CRMBooking{}, dErrors.New(dErrors.CodeInvariantViolation,
				"ToCRMBooking: test centre account id is required for a standard accommodation booking")
		}
		if booking.TestType == "" {
			return CRMBooking{}, dErrors.New(dErrors.CodeInvariantViolation,
				"ToCRMBooking: test type is required for a standard accommodation booking")
		}
	}

	if priceListID == "" && booking.CompensationBooking != nil {
		priceListID = booking.CompensationBooking.PriceListID
	}

	status := CRMBookingStatusReserved
	if !isStandardAccommodation {
		status = CRMBookingStatusDraft
	}

	payload := CRMBooking{
		CandidateBinding: ContactBinding(candidateID),
		LicenceBinding:   LicenceBinding(licenceID),
		PriceListBinding: PriceLevelBinding(priceListID),
		Name:             candidate.Firstnames + " " + candidate.Surname,
		FirstName:        candidate.Firstnames,
		LastName:         candidate.Surname,
		LicenceNumber:    candidate.LicenceNumber,
		DOB:              candidate.DateOfBirth,
		Price:            booking.Price(),
		BookingStatus:    status,
		Origin:           CRMOriginCitizenPortal,
		GovernmentAgency: GovernmentAgencyForTarget(booking.GovernmentAgency),
		TestLanguage:     TestLanguageToCRM(booking.Language),
	}

	if booking.TestType != "" {
		if number, ok := ProductNumberForTestType(booking.TestType); ok {
			payload.TestType = &number
		}
	}
	if booking.DateTime != nil {
		testDate := booking.DateTime.UTC().Format(time.RFC3339)
		payload.TestDate = &testDate
	}

	if isStandardAccommodation {
		binding := AccountBinding(booking.Centre.AccountID)
		payload.TestCentreBinding = &binding
		return payload, nil
	}

	// Non-standard accommodation: the draft booking carries the support
	// details and no test centre; the centre is assigned once the NSA
	// workflow resolves a slot.
	owner := TeamBinding(candidate.OwnerID)
	payload.OwnerBinding = &owner

	nsaStatus, err := DeriveNSAStatus(booking, router)
	if err != nil {
		return CRMBooking{}, err
	}
	payload.NsaStatus = &nsaStatus

	voiceover := VoiceoverToCRM(booking.Voiceover)
	payload.NiVoiceoverOptions = &voiceover

	if requirements := BuildSupportRequirements(booking); requirements != "" {
		payload.SupportRequirements = &requirements
	}
	communication := PreferredCommunicationMethod(candidate, false)
	payload.PreferredCommunicationMethod = &communication
	payload.VoicemailPermitted = booking.VoicemailPermitted

	if booking.PreferredDayOption == models.PreferredDayOptionParticular {
		selected := true
		payload.PreferredDaySelected = &selected
		if booking.PreferredDay != "" {
			day := booking.PreferredDay
			payload.PreferredDay = &day
		}
	}
	if booking.PreferredLocationOption == models.PreferredLocationOptionParticular {
		selected := true
		payload.PreferredLocationSelected = &selected
		if booking.PreferredLocation != "" {
			location := booking.PreferredLocation
			payload.PreferredLocation = &location
		}
	}

	if booking.DateAvailableOnOrBeforeToday != "" {
		value := booking.DateAvailableOnOrBeforeToday
		payload.DateAvailableOnOrBeforeToday = &value
	}
	if booking.DateAvailableOnOrAfterToday != "" {
		value := booking.DateAvailableOnOrAfterToday
		payload.DateAvailableOnOrAfterToday = &value
	}
	if booking.DateAvailableOnOrAfterPreferredDate != "" {
		value := booking.DateAvailableOnOrAfterPreferredDate
		payload.DateAvailableOnOrAfterPreferredDate = &value
	}

	return payload, nil
}

// ToCRMBookingProduct builds the child booking product from the parent
// create response. Only eligible products are ever created, so Eligible is
// always true; the eligibility window is copied from the session booking.
func ToCRMBookingProduct(
	candidate models.Candidate,
	booking models.Booking,
	bookingResponse CRMBookingResponse,
	isStandardAccommodation bool,
	additionalSupport *CRMAdditionalSupport,
) (CRMBookingProduct, error) {
	if bookingResponse.ID == "" || bookingResponse.Reference == "" {
		return CRMBookingProduct{}, dErrors.New(dErrors.CodeInvariantViolation,
			"ToCRMBookingProduct: booking response is missing id or reference")
	}
	if booking.PriceList == nil {
		return CRMBookingProduct{}, dErrors.New(dErrors.CodeInvariantViolation,
			"ToCRMBookingProduct: booking has no price list entry")
	}

	status := CRMBookingStatusReserved
	if !isStandardAccommodation {
		status = CRMBookingStatusDraft
	}

	payload := CRMBookingProduct{
		BookingBinding:    BookingBinding(bookingResponse.ID),
		CandidateBinding:  ContactBinding(candidate.CandidateID),
		LicenceBinding:    LicenceBinding(candidate.LicenceID),
		ProductBinding:    ProductBinding(booking.PriceList.Product.ProductID),
		Reference:         bookingResponse.Reference + bookingProductReferenceSuffix,
		Price:             booking.Price(),
		Eligible:          true,
		TestLanguage:      TestLanguageToCRM(booking.Language),
		BookingStatus:     status,
		AdditionalSupport: additionalSupport,
	}

	if booking.Eligibility != nil {
		if booking.Eligibility.EligibleFrom != "" {
			from := booking.Eligibility.EligibleFrom
			payload.EligibleFrom = &from
		}
		if booking.Eligibility.EligibleTo != "" {
			to := booking.Eligibility.EligibleTo
			payload.EligibleTo = &to
		}
	}
	if booking.DateTime != nil {
		testDate := booking.DateTime.UTC().Format(time.RFC3339)
		payload.TestDate = &testDate
	}
	if isStandardAccommodation {
		voiceover := VoiceoverToCRM(booking.Voiceover)
		payload.VoiceoverLanguage = &voiceover
	}
	if booking.SalesReference != "" {
		sales := booking.SalesReference
		payload.SalesReference = &sales
	}

	return payload, nil
}

func requireCandidateFields(candidate models.Candidate) error {
	switch {
	case candidate.Firstnames == "":
		return dErrors.New(dErrors.CodeInvariantViolation, "ToCRMBooking: candidate is missing first names")
	case candidate.Surname == "":
		return dErrors.New(dErrors.CodeInvariantViolation, "ToCRMBooking: candidate is missing surname")
	case candidate.LicenceNumber == "":
		return dErrors.New(dErrors.CodeInvariantViolation, "ToCRMBooking: candidate is missing licence number")
	case candidate.DateOfBirth == "":
		return dErrors.New(dErrors.CodeInvariantViolation, "ToCRMBooking: candidate is missing date of birth")
	}
	return nil
}
