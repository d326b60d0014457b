package crm

// Wire shapes for the CRM boundary. Write payloads use the CRM's field names
// and OData binding strings verbatim; the gateway collaborator submits them
// unchanged. Read shapes use pointers for every optional field so presence
// can be distinguished from a zero value, which the field validator relies on.

// CRMContact is the write payload for a candidate's contact record.
// Title and OtherTitle are mutually exclusive: recognised titles carry the
// option-set code, anything else travels verbatim in OtherTitle.
type CRMContact struct {
	FirstName   string          `json:"ftts_firstandmiddlenames"`
	LastName    string          `json:"lastname"`
	Title       *CRMPeopleTitle `json:"ftts_title,omitempty"`
	OtherTitle  *string         `json:"ftts_othertitle,omitempty"`
	Gender      *CRMGenderCode  `json:"gendercode,omitempty"`
	DateOfBirth *string         `json:"birthdate,omitempty"`
	Email       *string         `json:"emailaddress1,omitempty"`
	Telephone   *string         `json:"telephone2,omitempty"`
}

// CRMLicence is the write payload for a driving licence record. The licence
// number is omitted entirely on address-only updates so the CRM does not
// treat the write as a licence creation.
type CRMLicence struct {
	LicenceNumber    *string `json:"ftts_licence,omitempty"`
	CandidateBinding string  `json:"ftts_Person@odata.bind"`
	AddressLine1     string  `json:"ftts_address1_street1"`
	AddressLine2     string  `json:"ftts_address1_street2,omitempty"`
	AddressLine3     string  `json:"ftts_address1street3,omitempty"`
	AddressLine4     string  `json:"ftts_address1street4,omitempty"`
	AddressLine5     string  `json:"ftts_address1_city,omitempty"`
	Postcode         string  `json:"ftts_address1_postalcode"`
}

// CRMBooking is the write payload for a parent booking record.
type CRMBooking struct {
	CandidateBinding  string  `json:"ftts_candidateid@odata.bind"`
	LicenceBinding    string  `json:"ftts_LicenceId@odata.bind"`
	PriceListBinding  string  `json:"ftts_pricelist@odata.bind"`
	TestCentreBinding *string `json:"ftts_testcentre@odata.bind,omitempty"`
	OwnerBinding      *string `json:"ownerid@odata.bind,omitempty"`

	Name             string              `json:"ftts_name"`
	FirstName        string              `json:"ftts_firstname"`
	LastName         string              `json:"ftts_lastname"`
	LicenceNumber    string              `json:"ftts_licencenumber"`
	DOB              string              `json:"ftts_dob"`
	Price            float64             `json:"ftts_price"`
	BookingStatus    CRMBookingStatus    `json:"ftts_bookingstatus"`
	Origin           CRMOrigin           `json:"ftts_origin"`
	GovernmentAgency CRMGovernmentAgency `json:"ftts_governmentagency"`
	TestLanguage     CRMTestLanguage     `json:"ftts_language"`
	TestDate         *string             `json:"ftts_testdate,omitempty"`
	TestType         *CRMProductNumber   `json:"ftts_testtype,omitempty"`

	// NSA-only fields, absent on standard bookings.
	NsaStatus                    *CRMNsaStatus                    `json:"ftts_nonstandardaccommodation,omitempty"`
	NiVoiceoverOptions           *CRMVoiceOver                    `json:"ftts_nivoiceoveroptions,omitempty"`
	SupportRequirements          *string                          `json:"ftts_supportrequirements,omitempty"`
	PreferredDay                 *string                          `json:"ftts_preferredday,omitempty"`
	PreferredDaySelected         *bool                            `json:"ftts_preferreddateselected,omitempty"`
	PreferredLocation            *string                          `json:"ftts_preferredtestcentrelocation,omitempty"`
	PreferredLocationSelected    *bool                            `json:"ftts_preferredlocationselected,omitempty"`
	PreferredCommunicationMethod *CRMPreferredCommunicationMethod `json:"ftts_preferredcommunicationmethod,omitempty"`
	VoicemailPermitted           *bool                            `json:"ftts_voicemailmessagespermitted,omitempty"`

	// Scheduling KPIs for reporting.
	DateAvailableOnOrBeforeToday        *string `json:"ftts_dateavailableonorbeforetoday,omitempty"`
	DateAvailableOnOrAfterToday         *string `json:"ftts_dateavailableonoraftertoday,omitempty"`
	DateAvailableOnOrAfterPreferredDate *string `json:"ftts_dateavailableonorafterpreferreddate,omitempty"`
}

// CRMBookingResponse is the CRM's acknowledgement of a booking create.
type CRMBookingResponse struct {
	ID        string `json:"ftts_bookingid"`
	Reference string `json:"ftts_reference"`
}

// CRMBookingProduct is the write payload for the child booking product.
type CRMBookingProduct struct {
	BookingBinding   string `json:"ftts_bookingid@odata.bind"`
	CandidateBinding string `json:"ftts_CandidateId@odata.bind"`
	LicenceBinding   string `json:"ftts_drivinglicencenumber@odata.bind"`
	ProductBinding   string `json:"ftts_productid@odata.bind"`

	Reference         string                `json:"ftts_reference"`
	Price             float64               `json:"ftts_price"`
	Eligible          bool                  `json:"ftts_eligible"`
	EligibleFrom      *string               `json:"ftts_eligiblefrom,omitempty"`
	EligibleTo        *string               `json:"ftts_eligibleto,omitempty"`
	TestDate          *string               `json:"ftts_testdate,omitempty"`
	TestLanguage      CRMTestLanguage       `json:"ftts_testlanguage"`
	VoiceoverLanguage *CRMVoiceOver         `json:"ftts_voiceoverlanguage,omitempty"`
	AdditionalSupport *CRMAdditionalSupport `json:"ftts_additionalsupportoptions,omitempty"`
	BookingStatus     CRMBookingStatus      `json:"ftts_bookingstatus"`
	SalesReference    *string               `json:"ftts_salesreference,omitempty"`
}

// CRMTestCentre is the nested test-centre account on a booking read.
type CRMTestCentre struct {
	AccountID       string    `json:"accountid"`
	Name            string    `json:"name,omitempty"`
	AddressLine1    string    `json:"address1_line1,omitempty"`
	AddressLine2    string    `json:"address1_line2,omitempty"`
	AddressCity     string    `json:"address1_city,omitempty"`
	AddressPostcode string    `json:"address1_postalcode,omitempty"`
	Remit           *CRMRemit `json:"ftts_remit,omitempty"`
	SiteID          *string   `json:"ftts_siteid,omitempty"`
	RegionA         bool      `json:"ftts_regiona"`
	RegionB         bool      `json:"ftts_regionb"`
	RegionC         bool      `json:"ftts_regionc"`
	TCNTestCentreID *string   `json:"ftts_tcntestcentreid,omitempty"`
}

// CRMBookingDetailsBooking is the parent ftts_bookingid sub-entity on a
// booking-details read.
type CRMBookingDetailsBooking struct {
	BookingID               string               `json:"ftts_bookingid,omitempty"`
	Reference               string               `json:"ftts_reference,omitempty"`
	Origin                  *CRMOrigin           `json:"ftts_origin,omitempty"`
	GovernmentAgency        *CRMGovernmentAgency `json:"ftts_governmentagency,omitempty"`
	NsaStatus               *CRMNsaStatus        `json:"ftts_nonstandardaccommodation,omitempty"`
	NiVoiceoverOptions      *CRMVoiceOver        `json:"ftts_nivoiceoveroptions,omitempty"`
	EnableEligibilityBypass *bool                `json:"ftts_enableeligibilitybypass,omitempty"`
	TestCentre              *CRMTestCentre       `json:"ftts_testcentre,omitempty"`
}

// CRMBookingDetailsProduct is the ftts_productid sub-entity.
type CRMBookingDetailsProduct struct {
	ProductID       string           `json:"productid,omitempty"`
	ParentProductID string           `json:"parentproductid,omitempty"`
	Name            string           `json:"name,omitempty"`
	ProductNumber   CRMProductNumber `json:"productnumber,omitempty"`
}

// CRMBookingDetails is the nested entity graph the CRM returns for one
// booking product.
type CRMBookingDetails struct {
	BookingProductID         string                `json:"ftts_bookingproductid"`
	Reference                string                `json:"ftts_reference,omitempty"`
	BookingStatus            *CRMBookingStatus     `json:"ftts_bookingstatus,omitempty"`
	TestDate                 *string               `json:"ftts_testdate,omitempty"`
	TestLanguage             *CRMTestLanguage      `json:"ftts_testlanguage,omitempty"`
	VoiceoverLanguage        *CRMVoiceOver         `json:"ftts_voiceoverlanguage,omitempty"`
	AdditionalSupport        *CRMAdditionalSupport `json:"ftts_additionalsupportoptions,omitempty"`
	PaymentStatus            *CRMPaymentStatus     `json:"ftts_paymentstatus,omitempty"`
	Price                    float64               `json:"ftts_price,omitempty"`
	SalesReference           *string               `json:"ftts_salesreference,omitempty"`
	TestSupportNeed          *string               `json:"ftts_testsupportneed,omitempty"` // comma-joined codes, see parseTestSupportNeed
	ForeignLanguage          *string               `json:"ftts_foreignlanguageselected,omitempty"`
	NonStandardAccommodation *bool                 `json:"ftts_nonstandardaccommodation,omitempty"`
	VoicemailPermitted       *bool                 `json:"ftts_voicemailmessagespermitted,omitempty"`
	CreatedOn                string                `json:"createdon,omitempty"`

	CompensationAssigned   *string `json:"ftts_owedcompbookingassigned,omitempty"`
	CompensationRecognised *string `json:"ftts_owedcompbookingrecognised,omitempty"`

	Booking CRMBookingDetailsBooking `json:"ftts_bookingid"`
	Product CRMBookingDetailsProduct `json:"ftts_productid"`
}

// CRMFlatBookingDetails is the flattened variant delivered by joined
// queries: every nested field arrives as a dot-prefixed flat key.
type CRMFlatBookingDetails struct {
	BookingProductID  string                `json:"ftts_bookingproductid"`
	Reference         string                `json:"ftts_reference,omitempty"`
	BookingStatus     *CRMBookingStatus     `json:"ftts_bookingstatus,omitempty"`
	TestDate          *string               `json:"ftts_testdate,omitempty"`
	TestLanguage      *CRMTestLanguage      `json:"ftts_testlanguage,omitempty"`
	VoiceoverLanguage *CRMVoiceOver         `json:"ftts_voiceoverlanguage,omitempty"`
	AdditionalSupport *CRMAdditionalSupport `json:"ftts_additionalsupportoptions,omitempty"`
	PaymentStatus     *CRMPaymentStatus     `json:"ftts_paymentstatus,omitempty"`
	Price             float64               `json:"ftts_price,omitempty"`
	SalesReference    *string               `json:"ftts_salesreference,omitempty"`
	TestSupportNeed   *string               `json:"ftts_testsupportneed,omitempty"`
	ForeignLanguage   *string               `json:"ftts_foreignlanguageselected,omitempty"`
	CreatedOn         string                `json:"createdon,omitempty"`

	CompensationAssigned   *string `json:"ftts_owedcompbookingassigned,omitempty"`
	CompensationRecognised *string `json:"ftts_owedcompbookingrecognised,omitempty"`

	BookingID                      string               `json:"booking.ftts_bookingid,omitempty"`
	BookingReference               string               `json:"booking.ftts_reference,omitempty"`
	BookingOrigin                  *CRMOrigin           `json:"booking.ftts_origin,omitempty"`
	BookingGovernmentAgency        *CRMGovernmentAgency `json:"booking.ftts_governmentagency,omitempty"`
	BookingNsaStatus               *CRMNsaStatus        `json:"booking.ftts_nonstandardaccommodation,omitempty"`
	BookingNiVoiceoverOptions      *CRMVoiceOver        `json:"booking.ftts_nivoiceoveroptions,omitempty"`
	BookingEnableEligibilityBypass *bool                `json:"booking.ftts_enableeligibilitybypass,omitempty"`

	ProductID       string           `json:"product.productid,omitempty"`
	ParentProductID string           `json:"product.parentproductid,omitempty"`
	ProductName     string           `json:"product.name,omitempty"`
	ProductNumber   CRMProductNumber `json:"product.productnumber,omitempty"`

	AccountID           string    `json:"account.accountid,omitempty"`
	AccountName         string    `json:"account.name,omitempty"`
	AccountAddressLine1 string    `json:"account.address1_line1,omitempty"`
	AccountAddressLine2 string    `json:"account.address1_line2,omitempty"`
	AccountAddressCity  string    `json:"account.address1_city,omitempty"`
	AccountPostcode     string    `json:"account.address1_postalcode,omitempty"`
	AccountRemit        *CRMRemit `json:"parentaccountid.ftts_remit,omitempty"`
	AccountSiteID       *string   `json:"parentaccountid.ftts_siteid,omitempty"`
	AccountRegionA      bool      `json:"parentaccountid.ftts_regiona,omitempty"`
	AccountRegionB      bool      `json:"parentaccountid.ftts_regionb,omitempty"`
	AccountRegionC      bool      `json:"parentaccountid.ftts_regionc,omitempty"`
	TCNTestCentreID     *string   `json:"account.ftts_tcntestcentreid,omitempty"`
}

// CRMCandidateResponse is the contact record the CRM returns for a
// candidate lookup.
type CRMCandidateResponse struct {
	ContactID   string          `json:"contactid"`
	FirstName   string          `json:"ftts_firstandmiddlenames,omitempty"`
	LastName    string          `json:"lastname,omitempty"`
	Title       *CRMPeopleTitle `json:"ftts_title,omitempty"`
	OtherTitle  *string         `json:"ftts_othertitle,omitempty"`
	Gender      *CRMGenderCode  `json:"gendercode,omitempty"`
	DateOfBirth string          `json:"birthdate,omitempty"`
	Email       string          `json:"emailaddress1,omitempty"`
	Telephone   string          `json:"telephone2,omitempty"`

	LicenceID     string `json:"ftts_licenceid,omitempty"`
	LicenceNumber string `json:"ftts_licence,omitempty"`
	AddressLine1  string `json:"ftts_address1_street1,omitempty"`
	AddressLine2  string `json:"ftts_address1_street2,omitempty"`
	AddressLine3  string `json:"ftts_address1street3,omitempty"`
	AddressLine4  string `json:"ftts_address1street4,omitempty"`
	AddressLine5  string `json:"ftts_address1_city,omitempty"`
	Postcode      string `json:"ftts_address1_postalcode,omitempty"`

	OwnerID               string `json:"_ownerid_value,omitempty"`
	SupportNeedName       string `json:"ftts_supportneedname,omitempty"`
	SupportEvidenceStatus string `json:"ftts_supportevidencestatus,omitempty"`
}
