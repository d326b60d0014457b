package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"ftts-booking/internal/booking/models"
	"ftts-booking/internal/booking/ports/mocks"
	"ftts-booking/internal/crm"
	"ftts-booking/internal/nsa"
	dErrors "ftts-booking/pkg/domain-errors"
)

func ptr[T any](v T) *T { return &v }

// queueFake records queue interactions; the real queue is integration-tested
// against PostgreSQL.
type queueFake struct {
	enqueued   []nsa.Entry
	resolved   []nsa.Entry
	applied    [][]string
	enqueueErr error
	listErr    error
	applyErr   error
}

func (q *queueFake) Enqueue(_ context.Context, bookingID, bookingReference string) error {
	if q.enqueueErr != nil {
		return q.enqueueErr
	}
	q.enqueued = append(q.enqueued, nsa.Entry{BookingID: bookingID, BookingReference: bookingReference})
	return nil
}

func (q *queueFake) ListResolved(_ context.Context, limit int) ([]nsa.Entry, error) {
	if q.listErr != nil {
		return nil, q.listErr
	}
	if limit < len(q.resolved) {
		return q.resolved[:limit], nil
	}
	return q.resolved, nil
}

func (q *queueFake) MarkApplied(_ context.Context, bookingIDs []string) error {
	if q.applyErr != nil {
		return q.applyErr
	}
	q.applied = append(q.applied, bookingIDs)
	return nil
}

type ServiceSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	gateway *mocks.MockCRMGateway
	router  *mocks.MockEvidenceRouter
	prices  *mocks.MockPriceProvider
	queue   *queueFake
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.gateway = mocks.NewMockCRMGateway(s.ctrl)
	s.router = mocks.NewMockEvidenceRouter(s.ctrl)
	s.prices = mocks.NewMockPriceProvider(s.ctrl)
	s.queue = &queueFake{}

	var err error
	s.service, err = New(s.gateway, s.router, s.prices, s.queue)
	s.Require().NoError(err)
}

func (s *ServiceSuite) TestNew() {
	s.Run("requires a gateway", func() {
		_, err := New(nil, s.router, s.prices, s.queue)
		s.Require().EqualError(err, "crm gateway is required")
	})

	s.Run("requires an evidence router", func() {
		_, err := New(s.gateway, nil, s.prices, s.queue)
		s.Require().EqualError(err, "evidence router is required")
	})

	s.Run("price provider and queue are optional", func() {
		svc, err := New(s.gateway, s.router, nil, nil)
		s.Require().NoError(err)
		s.Require().NotNil(svc)
	})
}

func completeBookingDetails() crm.CRMBookingDetails {
	return crm.CRMBookingDetails{
		BookingProductID:  "bp-1",
		Reference:         "B-000-016-105-01",
		BookingStatus:     ptr(crm.CRMBookingStatusConfirmed),
		TestDate:          ptr("2026-09-14T10:15:00Z"),
		TestLanguage:      ptr(crm.CRMTestLanguageEnglish),
		VoiceoverLanguage: ptr(crm.CRMVoiceOverWelsh),
		AdditionalSupport: ptr(crm.CRMAdditionalSupportNone),
		PaymentStatus:     ptr(crm.CRMPaymentStatusSuccess),
		Price:             23,
		SalesReference:    ptr("FTT-SALES-1"),
		CreatedOn:         "2026-08-01T09:00:00Z",
		Booking: crm.CRMBookingDetailsBooking{
			BookingID:        "booking-1",
			Reference:        "B-000-016-105",
			Origin:           ptr(crm.CRMOriginCitizenPortal),
			GovernmentAgency: ptr(crm.CRMGovernmentAgencyDvsa),
			TestCentre: &crm.CRMTestCentre{
				AccountID: "centre-account-1",
				Name:      "Birmingham",
				Remit:     ptr(crm.CRMRemitEngland),
				SiteID:    ptr("SITE-0135"),
				RegionA:   true,
			},
		},
		Product: crm.CRMBookingDetailsProduct{
			ProductID:     "product-1",
			ProductNumber: crm.CRMProductNumberCar,
		},
	}
}

func candidateResponse() crm.CRMCandidateResponse {
	return crm.CRMCandidateResponse{
		ContactID:     "candidate-1",
		FirstName:     "Wendy",
		LastName:      "Jones",
		DateOfBirth:   "2002-11-10",
		Email:         "wendy@example.com",
		LicenceID:     "licence-1",
		LicenceNumber: "JONES061102W97YT",
	}
}

func validCandidate() models.Candidate {
	return models.Candidate{
		CandidateID:   "candidate-1",
		Firstnames:    "Wendy",
		Surname:       "Jones",
		DateOfBirth:   "2002-11-10",
		Email:         "wendy@example.com",
		LicenceID:     "licence-1",
		LicenceNumber: "JONES061102W97YT",
		OwnerID:       "team-1",
	}
}

func standardBooking() models.Booking {
	dateTime := time.Date(2026, 9, 14, 10, 15, 0, 0, time.UTC)
	return models.Booking{
		TestType:         models.TestTypeCar,
		GovernmentAgency: models.TargetGB,
		Centre:           &models.TestCentre{AccountID: "centre-account-1"},
		DateTime:         &dateTime,
		Language:         models.LanguageEnglish,
		Voiceover:        models.VoiceoverWelsh,
		Eligibility:      &models.Eligibility{EligibleFrom: "2026-01-01", EligibleTo: "2027-01-01"},
		PriceList: &models.PriceListItem{
			PriceListID: "pl-1",
			TestType:    models.TestTypeCar,
			Price:       23,
			Product:     models.Product{ProductID: "product-1"},
		},
	}
}

func nsaBooking() models.Booking {
	booking := standardBooking()
	booking.Centre = nil
	booking.DateTime = nil
	booking.Voiceover = models.VoiceoverPolish
	booking.SelectSupportType = []models.SupportType{models.SupportTypeExtraTime}
	booking.HasSupportNeedsInCRM = ptr(false)
	return booking
}

func (s *ServiceSuite) TestRetrieveBooking() {
	ctx := context.Background()

	s.Run("maps a complete standard booking", func() {
		s.gateway.EXPECT().GetBookingDetails(gomock.Any(), "B-000-016-105").
			Return(completeBookingDetails(), nil)
		s.gateway.EXPECT().GetCandidate(gomock.Any(), "JONES061102W97YT").
			Return(candidateResponse(), nil)

		record, err := s.service.RetrieveBooking(ctx, "B-000-016-105", "JONES061102W97YT")
		s.Require().NoError(err)

		s.Equal("bp-1", record.Details.BookingProductID)
		s.Equal("B-000-016-105", record.Details.BookingReference)
		s.Equal(models.VoiceoverWelsh, record.Details.Voiceover)
		s.Equal(models.TestTypeCar, record.Details.TestType)
		s.Require().NotNil(record.Details.Centre)
		s.Equal("centre-account-1", record.Details.Centre.AccountID)
		s.Equal("Wendy", record.Candidate.Firstnames)
		s.Equal("licence-1", record.Candidate.LicenceID)
	})

	s.Run("rejects an incomplete payload without mapping it", func() {
		details := completeBookingDetails()
		details.SalesReference = nil
		s.gateway.EXPECT().GetBookingDetails(gomock.Any(), "B-000-016-105").
			Return(details, nil)
		s.gateway.EXPECT().GetCandidate(gomock.Any(), "JONES061102W97YT").
			Return(candidateResponse(), nil)

		_, err := s.service.RetrieveBooking(ctx, "B-000-016-105", "JONES061102W97YT")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
		s.Contains(err.Error(), "ftts_salesreference")
	})

	s.Run("nsa draft skips the standard-only fields", func() {
		details := completeBookingDetails()
		details.BookingStatus = ptr(crm.CRMBookingStatusDraft)
		details.Booking.NsaStatus = ptr(crm.CRMNsaStatusAwaitingCscResponse)
		details.Booking.NiVoiceoverOptions = ptr(crm.CRMVoiceOverPortuguese)
		details.SalesReference = nil
		details.TestDate = nil
		details.VoiceoverLanguage = nil
		s.gateway.EXPECT().GetBookingDetails(gomock.Any(), "B-000-016-105").
			Return(details, nil)
		s.gateway.EXPECT().GetCandidate(gomock.Any(), "JONES061102W97YT").
			Return(candidateResponse(), nil)

		record, err := s.service.RetrieveBooking(ctx, "B-000-016-105", "JONES061102W97YT")
		s.Require().NoError(err)
		s.Equal(models.VoiceoverPortuguese, record.Details.Voiceover)
	})

	s.Run("nsa draft still requires ni voiceover options", func() {
		details := completeBookingDetails()
		details.BookingStatus = ptr(crm.CRMBookingStatusDraft)
		details.Booking.NsaStatus = ptr(crm.CRMNsaStatusAwaitingCscResponse)
		s.gateway.EXPECT().GetBookingDetails(gomock.Any(), "B-000-016-105").
			Return(details, nil)
		s.gateway.EXPECT().GetCandidate(gomock.Any(), "JONES061102W97YT").
			Return(candidateResponse(), nil)

		_, err := s.service.RetrieveBooking(ctx, "B-000-016-105", "JONES061102W97YT")
		s.Require().Error(err)
		s.Contains(err.Error(), "ftts_nivoiceoveroptions")
	})

	s.Run("propagates gateway failures", func() {
		s.gateway.EXPECT().GetBookingDetails(gomock.Any(), "B-000-016-105").
			Return(crm.CRMBookingDetails{}, errors.New("crm unavailable"))
		s.gateway.EXPECT().GetCandidate(gomock.Any(), "JONES061102W97YT").
			Return(candidateResponse(), nil).
			AnyTimes()

		_, err := s.service.RetrieveBooking(ctx, "B-000-016-105", "JONES061102W97YT")
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestConfirmBooking() {
	ctx := context.Background()

	s.Run("confirms a standard booking", func() {
		var created crm.CRMBooking
		s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload crm.CRMBooking) (crm.CRMBookingResponse, error) {
				created = payload
				return crm.CRMBookingResponse{ID: "booking-1", Reference: "B-000-016-105"}, nil
			})
		var product crm.CRMBookingProduct
		s.gateway.EXPECT().CreateBookingProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload crm.CRMBookingProduct) (string, error) {
				product = payload
				return "bp-1", nil
			})

		result, err := s.service.ConfirmBooking(ctx, validCandidate(), standardBooking())
		s.Require().NoError(err)

		s.Equal("booking-1", result.BookingID)
		s.Equal("B-000-016-105", result.BookingReference)
		s.Equal("bp-1", result.BookingProductID)

		s.Equal(crm.CRMBookingStatusReserved, created.BookingStatus)
		s.Equal("pricelevels(pl-1)", created.PriceListBinding)
		s.Require().NotNil(created.TestCentreBinding)
		s.Equal("accounts(centre-account-1)", *created.TestCentreBinding)
		s.Nil(created.NsaStatus)

		s.Equal("B-000-016-105-01", product.Reference)
		s.Require().NotNil(product.VoiceoverLanguage)
		s.Equal(crm.CRMVoiceOverWelsh, *product.VoiceoverLanguage)
		s.Require().NotNil(product.AdditionalSupport)
		s.Equal(crm.CRMAdditionalSupportVoiceover, *product.AdditionalSupport)

		s.Empty(s.queue.enqueued)
	})

	s.Run("fetches price list and eligibility when the session has none", func() {
		booking := standardBooking()
		booking.PriceList = nil
		booking.Eligibility = nil

		s.prices.EXPECT().GetPriceList(gomock.Any(), models.TargetGB, models.TestTypeCar).
			Return(models.PriceListItem{
				PriceListID: "pl-2",
				TestType:    models.TestTypeCar,
				Price:       23,
				Product:     models.Product{ProductID: "product-1"},
			}, nil)
		s.prices.EXPECT().GetEligibility(gomock.Any(), "JONES061102W97YT", models.TestTypeCar).
			Return(models.Eligibility{EligibleFrom: "2026-01-01", EligibleTo: "2027-01-01"}, nil)
		s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload crm.CRMBooking) (crm.CRMBookingResponse, error) {
				s.Equal("pricelevels(pl-2)", payload.PriceListBinding)
				return crm.CRMBookingResponse{ID: "booking-2", Reference: "B-000-016-106"}, nil
			})
		s.gateway.EXPECT().CreateBookingProduct(gomock.Any(), gomock.Any()).
			Return("bp-2", nil)

		_, err := s.service.ConfirmBooking(ctx, validCandidate(), booking)
		s.Require().NoError(err)
	})

	s.Run("confirms an nsa booking and enqueues it", func() {
		s.router.EXPECT().
			DetermineEvidenceRoute([]models.SupportType{models.SupportTypeExtraTime}, false).
			Return(models.EvidenceRouteRequired)
		var created crm.CRMBooking
		s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload crm.CRMBooking) (crm.CRMBookingResponse, error) {
				created = payload
				return crm.CRMBookingResponse{ID: "booking-3", Reference: "B-000-016-107"}, nil
			})
		var product crm.CRMBookingProduct
		s.gateway.EXPECT().CreateBookingProduct(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload crm.CRMBookingProduct) (string, error) {
				product = payload
				return "bp-3", nil
			})

		_, err := s.service.ConfirmBooking(ctx, validCandidate(), nsaBooking())
		s.Require().NoError(err)

		s.Equal(crm.CRMBookingStatusDraft, created.BookingStatus)
		s.Nil(created.TestCentreBinding)
		s.Require().NotNil(created.OwnerBinding)
		s.Equal("teams(team-1)", *created.OwnerBinding)
		s.Require().NotNil(created.NsaStatus)
		s.Equal(crm.CRMNsaStatusAwaitingCandidateMedicalEvidence, *created.NsaStatus)
		s.Require().NotNil(created.NiVoiceoverOptions)
		s.Equal(crm.CRMVoiceOverPolish, *created.NiVoiceoverOptions)

		s.Nil(product.VoiceoverLanguage)
		s.Nil(product.AdditionalSupport)

		s.Require().Len(s.queue.enqueued, 1)
		s.Equal("booking-3", s.queue.enqueued[0].BookingID)
		s.Equal("B-000-016-107", s.queue.enqueued[0].BookingReference)
	})

	s.Run("rejects an invalid candidate before touching the gateway", func() {
		candidate := validCandidate()
		candidate.Surname = ""

		_, err := s.service.ConfirmBooking(ctx, candidate, standardBooking())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("propagates a create failure", func() {
		s.gateway.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			Return(crm.CRMBookingResponse{}, errors.New("crm unavailable"))

		_, err := s.service.ConfirmBooking(ctx, validCandidate(), standardBooking())
		s.Require().Error(err)
		s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	})
}

func (s *ServiceSuite) TestUpdateNSABookings() {
	ctx := context.Background()

	s.Run("returns zero when nothing has resolved", func() {
		count, err := s.service.UpdateNSABookings(ctx, 10)
		s.Require().NoError(err)
		s.Zero(count)
	})

	s.Run("moves resolved drafts to standard test booked", func() {
		s.queue.resolved = []nsa.Entry{
			{BookingID: "booking-1", BookingReference: "B-000-016-105"},
			{BookingID: "booking-2", BookingReference: "B-000-016-106"},
		}
		s.gateway.EXPECT().
			UpdateBookingStatuses(gomock.Any(), []string{"booking-1", "booking-2"},
				crm.CRMBookingStatusConfirmed, crm.CRMNsaStatusStandardTestBooked).
			Return(nil)

		count, err := s.service.UpdateNSABookings(ctx, 10)
		s.Require().NoError(err)
		s.Equal(2, count)
		s.Require().Len(s.queue.applied, 1)
		s.Equal([]string{"booking-1", "booking-2"}, s.queue.applied[0])
	})

	s.Run("does not mark applied when the status update fails", func() {
		s.queue.resolved = []nsa.Entry{{BookingID: "booking-1"}}
		s.gateway.EXPECT().
			UpdateBookingStatuses(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("crm unavailable"))

		_, err := s.service.UpdateNSABookings(ctx, 10)
		s.Require().Error(err)
		s.Empty(s.queue.applied)
	})

	s.Run("no queue means nothing to do", func() {
		svc, err := New(s.gateway, s.router, s.prices, nil)
		s.Require().NoError(err)

		count, err := svc.UpdateNSABookings(ctx, 10)
		s.Require().NoError(err)
		s.Zero(count)
	})
}
