package crm

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"ftts-booking/internal/booking/models"
	dErrors "ftts-booking/pkg/domain-errors"
)

func ptr[T any](v T) *T { return &v }

// staticRouter returns the same evidence route for every classification.
type staticRouter struct {
	route models.EvidenceRoute
}

func (r staticRouter) DetermineEvidenceRoute([]models.SupportType, bool) models.EvidenceRoute {
	return r.route
}

func validCandidate() models.Candidate {
	return models.Candidate{
		CandidateID:   "9e6f3c0a-5b2d-4d37-9f0a-1c2d3e4f5a6b",
		Firstnames:    "Wendy",
		Surname:       "Jones",
		DateOfBirth:   "2002-11-10",
		LicenceNumber: "JONES061102W97YT",
		LicenceID:     "7f1a2b3c-4d5e-6f70-8192-a3b4c5d6e7f8",
		OwnerID:       "team-nsa-dvsa",
		Email:         "wendy@example.com",
	}
}

func standardBooking() models.Booking {
	testDate := time.Date(2026, time.September, 14, 10, 15, 0, 0, time.UTC)
	return models.Booking{
		TestType:         models.TestTypeCar,
		GovernmentAgency: models.TargetGB,
		Centre:           &models.TestCentre{AccountID: "centre-account-1"},
		DateTime:         &testDate,
		Language:         models.LanguageEnglish,
		Voiceover:        models.VoiceoverWelsh,
		PriceList: &models.PriceListItem{
			TestType: models.TestTypeCar,
			Price:    23,
			Product:  models.Product{ProductID: "product-1"},
		},
	}
}

func nsaBooking() models.Booking {
	booking := standardBooking()
	booking.Centre = nil
	booking.DateTime = nil
	booking.SelectSupportType = []models.SupportType{models.SupportTypeExtraTime}
	booking.HasSupportNeedsInCRM = ptr(false)
	return booking
}

type ToCRMBookingSuite struct {
	suite.Suite
	router staticRouter
}

func TestToCRMBookingSuite(t *testing.T) {
	suite.Run(t, new(ToCRMBookingSuite))
}

func (s *ToCRMBookingSuite) SetupTest() {
	s.router = staticRouter{route: models.EvidenceRouteNotRequired}
}

func (s *ToCRMBookingSuite) TestCandidatePreconditions() {
	cases := []struct {
		name   string
		mutate func(*models.Candidate)
	}{
		{"missing first names", func(c *models.Candidate) { c.Firstnames = "" }},
		{"missing surname", func(c *models.Candidate) { c.Surname = "" }},
		{"missing licence number", func(c *models.Candidate) { c.LicenceNumber = "" }},
		{"missing date of birth", func(c *models.Candidate) { c.DateOfBirth = "" }},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			candidate := validCandidate()
			tc.mutate(&candidate)
			_, err := ToCRMBooking(candidate, standardBooking(), candidate.CandidateID, candidate.LicenceID, true, "pricelist-1", s.router)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})
	}
}

func (s *ToCRMBookingSuite) TestStandardBookingPreconditions() {
	cases := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"missing date time", func(b *models.Booking) { b.DateTime = nil }},
		{"missing centre", func(b *models.Booking) { b.Centre = nil }},
		{"missing centre account id", func(b *models.Booking) { b.Centre = &models.TestCentre{} }},
		{"missing test type", func(b *models.Booking) { b.TestType = "" }},
	}
	for _, tc := range cases {
		s.Run(tc.name+" fails for standard accommodation", func() {
			candidate := validCandidate()
			booking := standardBooking()
			tc.mutate(&booking)
			_, err := ToCRMBooking(candidate, booking, candidate.CandidateID, candidate.LicenceID, true, "pricelist-1", s.router)
			s.Require().Error(err)
			s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
		})

		s.Run(tc.name+" is allowed for non-standard accommodation", func() {
			candidate := validCandidate()
			booking := nsaBooking()
			tc.mutate(&booking)
			_, err := ToCRMBooking(candidate, booking, candidate.CandidateID, candidate.LicenceID, false, "pricelist-1", s.router)
			s.NoError(err)
		})
	}
}

func (s *ToCRMBookingSuite) TestNSAOwnerPrecondition() {
	candidate := validCandidate()
	candidate.OwnerID = ""
	_, err := ToCRMBooking(candidate, nsaBooking(), candidate.CandidateID, candidate.LicenceID, false, "pricelist-1", s.router)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func (s *ToCRMBookingSuite) TestStandardPayload() {
	candidate := validCandidate()
	payload, err := ToCRMBooking(candidate, standardBooking(), candidate.CandidateID, candidate.LicenceID, true, "pricelist-1", s.router)
	s.Require().NoError(err)

	s.Equal("contacts("+candidate.CandidateID+")", payload.CandidateBinding)
	s.Equal("ftts_licences("+candidate.LicenceID+")", payload.LicenceBinding)
	s.Equal("pricelevels(pricelist-1)", payload.PriceListBinding)
	s.Require().NotNil(payload.TestCentreBinding)
	s.Equal("accounts(centre-account-1)", *payload.TestCentreBinding)
	s.Nil(payload.OwnerBinding)

	s.Equal(CRMBookingStatusReserved, payload.BookingStatus)
	s.Equal(CRMOriginCitizenPortal, payload.Origin)
	s.Equal(CRMGovernmentAgencyDvsa, payload.GovernmentAgency)
	s.Equal(CRMTestLanguageEnglish, payload.TestLanguage)
	s.Equal("Wendy Jones", payload.Name)
	s.Equal(float64(23), payload.Price)
	s.Require().NotNil(payload.TestDate)
	s.Equal("2026-09-14T10:15:00Z", *payload.TestDate)
	s.Require().NotNil(payload.TestType)
	s.Equal(CRMProductNumberCar, *payload.TestType)

	s.Nil(payload.NsaStatus)
	s.Nil(payload.NiVoiceoverOptions)
	s.Nil(payload.SupportRequirements)
	s.Nil(payload.PreferredCommunicationMethod)

	// The licence number and date of birth travel under their own CRM
	// attributes only.
	encoded, err := json.Marshal(payload)
	s.Require().NoError(err)
	s.Contains(string(encoded), `"ftts_licencenumber":"JONES061102W97YT"`)
	s.Contains(string(encoded), `"ftts_dob":"2002-11-10"`)
	s.NotContains(string(encoded), "ftts_drivinglicencenumber")
}

func (s *ToCRMBookingSuite) TestNSAPayload() {
	candidate := validCandidate()
	booking := nsaBooking()
	booking.Voiceover = models.VoiceoverPolish
	booking.PreferredDayOption = models.PreferredDayOptionParticular
	booking.PreferredDay = "Weekday mornings"
	booking.PreferredLocationOption = models.PreferredLocationOptionDecideLater
	booking.PreferredLocation = "should not be copied"
	booking.VoicemailPermitted = ptr(true)

	payload, err := ToCRMBooking(candidate, booking, candidate.CandidateID, candidate.LicenceID, false, "pricelist-1", s.router)
	s.Require().NoError(err)

	s.Nil(payload.TestCentreBinding)
	s.Require().NotNil(payload.OwnerBinding)
	s.Equal("teams(team-nsa-dvsa)", *payload.OwnerBinding)
	s.Equal(CRMBookingStatusDraft, payload.BookingStatus)

	s.Require().NotNil(payload.NsaStatus)
	s.Equal(CRMNsaStatusAwaitingCscResponse, *payload.NsaStatus)
	s.Require().NotNil(payload.NiVoiceoverOptions)
	s.Equal(CRMVoiceOverPolish, *payload.NiVoiceoverOptions)

	s.Require().NotNil(payload.SupportRequirements)
	s.Contains(*payload.SupportRequirements, "Extra time")

	s.Require().NotNil(payload.PreferredCommunicationMethod)
	s.Equal(CRMPreferredCommunicationMethodEmail, *payload.PreferredCommunicationMethod)
	s.Require().NotNil(payload.VoicemailPermitted)
	s.True(*payload.VoicemailPermitted)

	s.Require().NotNil(payload.PreferredDaySelected)
	s.True(*payload.PreferredDaySelected)
	s.Require().NotNil(payload.PreferredDay)
	s.Equal("Weekday mornings", *payload.PreferredDay)
	s.Nil(payload.PreferredLocationSelected)
	s.Nil(payload.PreferredLocation)
}

func (s *ToCRMBookingSuite) TestCompensationPriceOverride() {
	candidate := validCandidate()
	booking := standardBooking()
	booking.CompensationBooking = &models.CompensationBooking{
		BookingProductID: "old-product",
		PricePaid:        17.50,
		PriceListID:      "comp-pricelist",
	}

	payload, err := ToCRMBooking(candidate, booking, candidate.CandidateID, candidate.LicenceID, true, "", s.router)
	s.Require().NoError(err)
	s.Equal(17.50, payload.Price)
	s.Equal("pricelevels(comp-pricelist)", payload.PriceListBinding)
}

type ToCRMBookingProductSuite struct {
	suite.Suite
	response CRMBookingResponse
}

func TestToCRMBookingProductSuite(t *testing.T) {
	suite.Run(t, new(ToCRMBookingProductSuite))
}

func (s *ToCRMBookingProductSuite) SetupTest() {
	s.response = CRMBookingResponse{ID: "booking-id-1", Reference: "B-000-016-105"}
}

func (s *ToCRMBookingProductSuite) TestPreconditions() {
	s.Run("missing response id fails", func() {
		_, err := ToCRMBookingProduct(validCandidate(), standardBooking(), CRMBookingResponse{Reference: "B-1"}, true, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("missing response reference fails", func() {
		_, err := ToCRMBookingProduct(validCandidate(), standardBooking(), CRMBookingResponse{ID: "id-1"}, true, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("missing price list fails", func() {
		booking := standardBooking()
		booking.PriceList = nil
		_, err := ToCRMBookingProduct(validCandidate(), booking, s.response, true, nil)
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *ToCRMBookingProductSuite) TestStandardProduct() {
	booking := standardBooking()
	booking.Eligibility = &models.Eligibility{EligibleFrom: "2026-01-01", EligibleTo: "2028-01-01"}
	additionalSupport := CRMAdditionalSupportNone

	payload, err := ToCRMBookingProduct(validCandidate(), booking, s.response, true, &additionalSupport)
	s.Require().NoError(err)

	s.Equal("ftts_bookings(booking-id-1)", payload.BookingBinding)
	s.Equal("products(product-1)", payload.ProductBinding)
	s.Equal("B-000-016-105-01", payload.Reference)
	s.True(payload.Eligible)
	s.Equal(CRMBookingStatusReserved, payload.BookingStatus)
	s.Require().NotNil(payload.EligibleFrom)
	s.Equal("2026-01-01", *payload.EligibleFrom)
	s.Require().NotNil(payload.EligibleTo)
	s.Equal("2028-01-01", *payload.EligibleTo)
	s.Require().NotNil(payload.VoiceoverLanguage)
	s.Equal(CRMVoiceOverWelsh, *payload.VoiceoverLanguage)
	s.Require().NotNil(payload.AdditionalSupport)
	s.Equal(CRMAdditionalSupportNone, *payload.AdditionalSupport)
}

func (s *ToCRMBookingProductSuite) TestNSAProductOmitsVoiceover() {
	booking := nsaBooking()
	booking.Voiceover = models.VoiceoverPolish

	payload, err := ToCRMBookingProduct(validCandidate(), booking, s.response, false, nil)
	s.Require().NoError(err)

	s.Equal(CRMBookingStatusDraft, payload.BookingStatus)
	s.Nil(payload.VoiceoverLanguage)
	s.Nil(payload.TestDate)
}
