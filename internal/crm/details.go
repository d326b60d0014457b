package crm

import (
	"encoding/json"
	"time"

	"ftts-booking/internal/booking/models"
	dErrors "ftts-booking/pkg/domain-errors"
)

// TCNRegion is the test-centre network region derived from the three CRM
// region booleans.
type TCNRegion string

const (
	TCNRegionA TCNRegion = "a"
	TCNRegionB TCNRegion = "b"
	TCNRegionC TCNRegion = "c"
)

// TestCentreDetails is the internal view of a booking's test centre.
type TestCentreDetails struct {
	AccountID       string
	Name            string
	AddressLine1    string
	AddressLine2    string
	AddressCity     string
	AddressPostcode string
	Remit           *CRMRemit
	SiteID          string
	Region          TCNRegion
	TCNTestCentreID string
}

// ProductDetails is the internal view of the CRM product sub-entity.
type ProductDetails struct {
	ProductID       string
	ParentProductID string
	Name            string
	ProductNumber   CRMProductNumber
}

// BookingDetails is the internal representation of a booking read back from
// the CRM, built only after the field validator has passed the raw payload.
type BookingDetails struct {
	BookingProductID string
	Reference        string

	BookingID        string
	BookingReference string

	BookingStatus           *CRMBookingStatus
	TestDate                *time.Time
	Language                models.Language
	Voiceover               models.Voiceover
	AdditionalSupport       *CRMAdditionalSupport
	PaymentStatus           *CRMPaymentStatus
	Price                   float64
	SalesReference          string
	TestSupportNeed         []models.SupportType
	TranslatorLanguage      string
	VoicemailPermitted      *bool
	CreatedOn               string
	Origin                  *CRMOrigin
	GovernmentAgency        models.Target
	NsaStatus               *CRMNsaStatus
	EnableEligibilityBypass *bool

	TestType models.TestType
	Product  ProductDetails

	// Centre is never nil on this path: an unassigned centre becomes an
	// empty placeholder so consumers need no presence check. The flat-read
	// path in FromFlatBookingDetails deliberately behaves differently.
	Centre *TestCentreDetails

	OwedCompensationBooking bool
}

// FromBookingDetails reconstructs the internal booking view from the nested
// CRM read shape.
//
// Voiceover source depends on the booking kind: a draft NSA booking stores it
// on the parent booking's NI-voiceover field, everything else on the booking
// product. The two CRM attributes carry the same semantic value and must not
// be mixed up. isNSADraft is determined by the caller from the booking status
// and NSA flag.
func FromBookingDetails(raw CRMBookingDetails, isNSADraft bool) (BookingDetails, error) {
	details := BookingDetails{
		BookingProductID:        raw.BookingProductID,
		Reference:               raw.Reference,
		BookingID:               raw.Booking.BookingID,
		BookingReference:        raw.Booking.Reference,
		BookingStatus:           raw.BookingStatus,
		AdditionalSupport:       raw.AdditionalSupport,
		PaymentStatus:           raw.PaymentStatus,
		Price:                   raw.Price,
		VoicemailPermitted:      raw.VoicemailPermitted,
		CreatedOn:               raw.CreatedOn,
		Origin:                  raw.Booking.Origin,
		NsaStatus:               raw.Booking.NsaStatus,
		EnableEligibilityBypass: raw.Booking.EnableEligibilityBypass,
		OwedCompensationBooking: owedCompensation(raw.CompensationAssigned, raw.CompensationRecognised),
		Product: ProductDetails{
			ProductID:       raw.Product.ProductID,
			ParentProductID: raw.Product.ParentProductID,
			Name:            raw.Product.Name,
			ProductNumber:   raw.Product.ProductNumber,
		},
	}

	if raw.TestDate != nil {
		parsed, err := time.Parse(time.RFC3339, *raw.TestDate)
		if err != nil {
			return BookingDetails{}, dErrors.Wrap(err, dErrors.CodeInternal,
				"FromBookingDetails: malformed test date")
		}
		details.TestDate = &parsed
	}
	if raw.TestLanguage != nil {
		details.Language = LanguageFromCRM(*raw.TestLanguage)
	}
	if raw.SalesReference != nil {
		details.SalesReference = *raw.SalesReference
	}
	if raw.ForeignLanguage != nil {
		details.TranslatorLanguage = *raw.ForeignLanguage
	}
	if raw.Booking.GovernmentAgency != nil {
		details.GovernmentAgency = TargetFromGovernmentAgency(*raw.Booking.GovernmentAgency)
	}
	if testType, ok := TestTypeFromProductNumber(raw.Product.ProductNumber); ok {
		details.TestType = testType
	}

	// Draft NSA bookings carry voiceover on the parent record.
	if isNSADraft {
		details.Voiceover = models.VoiceoverNone
		if raw.Booking.NiVoiceoverOptions != nil {
			details.Voiceover = VoiceoverFromCRM(*raw.Booking.NiVoiceoverOptions)
		}
	} else {
		details.Voiceover = models.VoiceoverNone
		if raw.VoiceoverLanguage != nil {
			details.Voiceover = VoiceoverFromCRM(*raw.VoiceoverLanguage)
		}
	}

	supportNeeds, err := parseTestSupportNeed(raw.TestSupportNeed)
	if err != nil {
		return BookingDetails{}, err
	}
	details.TestSupportNeed = supportNeeds

	if raw.Booking.TestCentre != nil {
		centre, err := fromCRMTestCentre(*raw.Booking.TestCentre)
		if err != nil {
			return BookingDetails{}, err
		}
		details.Centre = centre
	} else {
		details.Centre = &TestCentreDetails{}
	}

	return details, nil
}

// FromFlatBookingDetails reconstructs the internal booking view from the
// flattened joined-query shape, where nested fields arrive as dot-prefixed
// flat keys. Unlike FromBookingDetails, a missing TCN test centre id yields a
// nil Centre: this path means "centre not yet resolved", not "never
// applicable", and the two are kept distinct on purpose.
func FromFlatBookingDetails(raw CRMFlatBookingDetails, isNSADraft bool) (BookingDetails, error) {
	nested := CRMBookingDetails{
		BookingProductID:       raw.BookingProductID,
		Reference:              raw.Reference,
		BookingStatus:          raw.BookingStatus,
		TestDate:               raw.TestDate,
		TestLanguage:           raw.TestLanguage,
		VoiceoverLanguage:      raw.VoiceoverLanguage,
		AdditionalSupport:      raw.AdditionalSupport,
		PaymentStatus:          raw.PaymentStatus,
		Price:                  raw.Price,
		SalesReference:         raw.SalesReference,
		TestSupportNeed:        raw.TestSupportNeed,
		ForeignLanguage:        raw.ForeignLanguage,
		CreatedOn:              raw.CreatedOn,
		CompensationAssigned:   raw.CompensationAssigned,
		CompensationRecognised: raw.CompensationRecognised,
		Booking: CRMBookingDetailsBooking{
			BookingID:               raw.BookingID,
			Reference:               raw.BookingReference,
			Origin:                  raw.BookingOrigin,
			GovernmentAgency:        raw.BookingGovernmentAgency,
			NsaStatus:               raw.BookingNsaStatus,
			NiVoiceoverOptions:      raw.BookingNiVoiceoverOptions,
			EnableEligibilityBypass: raw.BookingEnableEligibilityBypass,
		},
		Product: CRMBookingDetailsProduct{
			ProductID:       raw.ProductID,
			ParentProductID: raw.ParentProductID,
			Name:            raw.ProductName,
			ProductNumber:   raw.ProductNumber,
		},
	}
	if raw.TCNTestCentreID != nil && *raw.TCNTestCentreID != "" {
		nested.Booking.TestCentre = &CRMTestCentre{
			AccountID:       raw.AccountID,
			Name:            raw.AccountName,
			AddressLine1:    raw.AccountAddressLine1,
			AddressLine2:    raw.AccountAddressLine2,
			AddressCity:     raw.AccountAddressCity,
			AddressPostcode: raw.AccountPostcode,
			Remit:           raw.AccountRemit,
			SiteID:          raw.AccountSiteID,
			RegionA:         raw.AccountRegionA,
			RegionB:         raw.AccountRegionB,
			RegionC:         raw.AccountRegionC,
			TCNTestCentreID: raw.TCNTestCentreID,
		}
	}

	details, err := FromBookingDetails(nested, isNSADraft)
	if err != nil {
		return BookingDetails{}, err
	}
	if nested.Booking.TestCentre == nil {
		details.Centre = nil
	}
	return details, nil
}

func fromCRMTestCentre(raw CRMTestCentre) (*TestCentreDetails, error) {
	region, err := regionFromFlags(raw.RegionA, raw.RegionB, raw.RegionC)
	if err != nil {
		return nil, err
	}
	centre := &TestCentreDetails{
		AccountID:       raw.AccountID,
		Name:            raw.Name,
		AddressLine1:    raw.AddressLine1,
		AddressLine2:    raw.AddressLine2,
		AddressCity:     raw.AddressCity,
		AddressPostcode: raw.AddressPostcode,
		Remit:           raw.Remit,
		Region:          region,
	}
	if raw.SiteID != nil {
		centre.SiteID = *raw.SiteID
	}
	if raw.TCNTestCentreID != nil {
		centre.TCNTestCentreID = *raw.TCNTestCentreID
	}
	return centre, nil
}

// regionFromFlags picks the centre's network region from the three CRM
// booleans. A centre with none set is corrupt reference data, not a
// defaultable case.
func regionFromFlags(a, b, c bool) (TCNRegion, error) {
	switch {
	case a:
		return TCNRegionA, nil
	case b:
		return TCNRegionB, nil
	case c:
		return TCNRegionC, nil
	}
	return "", dErrors.New(dErrors.CodeInternal,
		"fromCRMTestCentre: test centre has no region flag set")
}

// parseTestSupportNeed decodes the ftts_testsupportneed multi-select field.
// Bulk queries serialise the multi-select as a bare comma-joined code list,
// so the raw string is wrapped in brackets and decoded as a JSON array.
// Unknown codes degrade per element to SupportTypeNone.
func parseTestSupportNeed(raw *string) ([]models.SupportType, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var codes []CRMTestSupportNeed
	if err := json.Unmarshal([]byte("["+*raw+"]"), &codes); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal,
			"parseTestSupportNeed: malformed test support need list")
	}
	supportTypes := make([]models.SupportType, 0, len(codes))
	for _, code := range codes {
		supportTypes = append(supportTypes, SupportTypeFromCRM(code))
	}
	return supportTypes, nil
}

// owedCompensation reports whether the candidate is owed a replacement
// booking: compensation was assigned but never recognised against a new
// booking.
func owedCompensation(assigned, recognised *string) bool {
	return assigned != nil && recognised == nil
}
