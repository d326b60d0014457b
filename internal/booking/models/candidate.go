package models

// Address is the candidate's correspondence address: five free-text lines
// plus a postcode, exactly as the CRM stores it.
type Address struct {
	Line1    string `json:"line1"`
	Line2    string `json:"line2,omitempty"`
	Line3    string `json:"line3,omitempty"`
	Line4    string `json:"line4,omitempty"`
	Line5    string `json:"line5,omitempty"`
	Postcode string `json:"postcode"`
}

// Candidate is the person booking a test, owned by the session for the
// duration of the journey and persisted externally by the CRM gateway.
//
// Telephone semantics follow the source system: an empty string means the
// candidate declined to give a number, which in turn drives the preferred
// communication method for NSA bookings.
type Candidate struct {
	CandidateID string  `json:"candidateId,omitempty"`
	Title       string  `json:"title,omitempty"`
	Firstnames  string  `json:"firstnames"`
	Surname     string  `json:"surname"`
	Gender      string  `json:"gender,omitempty"`
	DateOfBirth string  `json:"dateOfBirth"` // YYYY-MM-DD
	Email       string  `json:"email,omitempty"`
	Telephone   string  `json:"telephone,omitempty"`
	Address     Address `json:"address"`

	LicenceID     string `json:"licenceId,omitempty"`
	LicenceNumber string `json:"licenceNumber"`

	// OwnerID is the CRM team/user that owns draft NSA bookings raised for
	// this candidate. Required before an NSA booking can be written.
	OwnerID string `json:"ownerId,omitempty"`

	// Support-need flags sourced from the CRM.
	SupportNeedName       string `json:"supportNeedName,omitempty"`
	SupportEvidenceStatus string `json:"supportEvidenceStatus,omitempty"`

	// Set by the payments flow when the candidate is owed a compensation
	// booking; its price overrides the price list on the next booking.
	OwedCompensationBooking bool `json:"owedCompensationBooking,omitempty"`
}

// HasTelephone reports whether the candidate supplied a phone number.
func (c Candidate) HasTelephone() bool { return c.Telephone != "" }
