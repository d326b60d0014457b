package crm

import (
	"fmt"
	"strings"

	"ftts-booking/internal/booking/models"
)

// otherTitleDisplay normalises the literal CRM value "OTHER" to its display
// string; every other unrecognised title travels verbatim.
const otherTitleDisplay = "Other"

// ToCRMContact builds the contact write payload for a candidate. It accepts
// partial candidates and leaves absent data out of the payload; mandatory
// field enforcement happens in ToCRMBooking, not here.
//
// Title handling: recognised titles carry the option-set code and leave
// OtherTitle unset; any other non-empty title is placed verbatim into
// OtherTitle with Title unset. The two fields are mutually exclusive.
func ToCRMContact(candidate models.Candidate) CRMContact {
	contact := CRMContact{
		FirstName: candidate.Firstnames,
		LastName:  candidate.Surname,
	}

	if code, ok := PeopleTitleFromString(candidate.Title); ok {
		contact.Title = &code
	} else if trimmed := strings.TrimSpace(candidate.Title); trimmed != "" {
		other := trimmed
		if strings.EqualFold(other, "OTHER") {
			other = otherTitleDisplay
		}
		contact.OtherTitle = &other
	}

	if candidate.Gender != "" {
		gender := GenderCodeFromString(candidate.Gender)
		contact.Gender = &gender
	}
	if candidate.DateOfBirth != "" {
		dob := candidate.DateOfBirth
		contact.DateOfBirth = &dob
	}
	if candidate.Email != "" {
		email := candidate.Email
		contact.Email = &email
	}
	if candidate.Telephone != "" {
		telephone := candidate.Telephone
		contact.Telephone = &telephone
	}

	return contact
}

// ToCRMLicence builds the licence write payload binding the candidate's
// address to their contact record. When licenceNumber is empty the licence
// field is omitted entirely, which the CRM interprets as an address-only
// update rather than a licence creation.
func ToCRMLicence(candidateID string, licenceNumber string, address models.Address) CRMLicence {
	licence := CRMLicence{
		CandidateBinding: ContactBinding(candidateID),
		AddressLine1:     address.Line1,
		AddressLine2:     address.Line2,
		AddressLine3:     address.Line3,
		AddressLine4:     address.Line4,
		AddressLine5:     address.Line5,
		Postcode:         address.Postcode,
	}
	if licenceNumber != "" {
		licence.LicenceNumber = &licenceNumber
	}
	return licence
}

// FromCRMCandidate reconstructs the internal candidate from a CRM contact
// read. Title and gender use the inverse lookups; codes with no internal
// equivalent leave the field empty rather than failing.
func FromCRMCandidate(response CRMCandidateResponse) models.Candidate {
	candidate := models.Candidate{
		CandidateID: response.ContactID,
		Firstnames:  response.FirstName,
		Surname:     response.LastName,
		DateOfBirth: response.DateOfBirth,
		Email:       response.Email,
		Telephone:   response.Telephone,
		Address: models.Address{
			Line1:    response.AddressLine1,
			Line2:    response.AddressLine2,
			Line3:    response.AddressLine3,
			Line4:    response.AddressLine4,
			Line5:    response.AddressLine5,
			Postcode: response.Postcode,
		},
		LicenceID:             response.LicenceID,
		LicenceNumber:         response.LicenceNumber,
		OwnerID:               response.OwnerID,
		SupportNeedName:       response.SupportNeedName,
		SupportEvidenceStatus: response.SupportEvidenceStatus,
	}

	if response.Title != nil {
		candidate.Title = TitleFromCRM(*response.Title)
	}
	if candidate.Title == "" && response.OtherTitle != nil {
		candidate.Title = *response.OtherTitle
	}
	if response.Gender != nil {
		candidate.Gender = GenderFromCRM(*response.Gender)
	}

	return candidate
}

// OData relationship-binding strings. The CRM gateway submits these verbatim;
// the formats are part of the write contract and must not drift.

// ContactBinding renders a contact relationship binding.
func ContactBinding(contactID string) string {
	return fmt.Sprintf("contacts(%s)", contactID)
}

// AccountBinding renders a test-centre account relationship binding.
func AccountBinding(accountID string) string {
	return fmt.Sprintf("accounts(%s)", accountID)
}

// LicenceBinding renders a licence relationship binding.
func LicenceBinding(licenceID string) string {
	return fmt.Sprintf("ftts_licences(%s)", licenceID)
}

// PriceLevelBinding renders a price-list relationship binding.
func PriceLevelBinding(priceListID string) string {
	return fmt.Sprintf("pricelevels(%s)", priceListID)
}

// ProductBinding renders a product relationship binding.
func ProductBinding(productID string) string {
	return fmt.Sprintf("products(%s)", productID)
}

// BookingBinding renders a parent-booking relationship binding.
func BookingBinding(bookingID string) string {
	return fmt.Sprintf("ftts_bookings(%s)", bookingID)
}

// TeamBinding renders an owning-team relationship binding for draft NSA
// bookings.
func TeamBinding(teamID string) string {
	return fmt.Sprintf("teams(%s)", teamID)
}
